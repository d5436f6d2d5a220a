package components

// AirObstacle 空中的轴对齐矩形障碍物
// 满足 Left < Right，Top < Bottom（屏幕坐标），创建后不再修改
type AirObstacle struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// NewAirObstacle 创建空中障碍物
func NewAirObstacle(left, right, top, bottom float64) AirObstacle {
	return AirObstacle{Left: left, Right: right, Top: top, Bottom: bottom}
}

// Width 返回障碍物宽度
func (o AirObstacle) Width() float64 {
	return o.Right - o.Left
}

// Height 返回障碍物高度
func (o AirObstacle) Height() float64 {
	return o.Bottom - o.Top
}

// ClosestPoint 返回矩形上距离 (x, y) 最近的点
// 分别把两个坐标夹到矩形边界内；点在矩形内部时返回点本身
func (o AirObstacle) ClosestPoint(x, y float64) (float64, float64) {
	return clamp(x, o.Left, o.Right), clamp(y, o.Top, o.Bottom)
}

func clamp(value, minimum, maximum float64) float64 {
	if value < minimum {
		return minimum
	}
	if value > maximum {
		return maximum
	}
	return value
}
