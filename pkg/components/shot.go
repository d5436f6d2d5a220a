package components

// ShotContext 一次击球的输入
type ShotContext struct {
	PowerPercentage           float64 // 力度百分比 0~100
	TerrainDistanceMultiplier float64 // 地形距离系数，0 表示水障碍，1 表示最佳球位
}

// ShotResult 球杆计算出的平地预期射程
// 尚未按出球角分解为速度分量
type ShotResult struct {
	ExpectedHorizontalRangePixels float64
}
