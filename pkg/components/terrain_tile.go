package components

import "github.com/decker502/golf/pkg/types"

// TerrainTile 一段水平地面
// 覆盖半开区间 [StartX, EndX)，创建后不再修改（按值传递）
type TerrainTile struct {
	StartX        float64           // 起始X（像素，包含）
	EndX          float64           // 结束X（像素，不包含）
	GroundCenterY float64           // 地面高度（像素，屏幕坐标，y 向下为正）
	Type          types.TerrainType // 地形类型
}

// NewTerrainTile 创建地形格子
func NewTerrainTile(startX, endX, groundCenterY float64, terrainType types.TerrainType) TerrainTile {
	return TerrainTile{
		StartX:        startX,
		EndX:          endX,
		GroundCenterY: groundCenterY,
		Type:          terrainType,
	}
}

// ContainsX 判断 x 是否落在 [StartX, EndX) 内
func (t TerrainTile) ContainsX(x float64) bool {
	return x >= t.StartX && x < t.EndX
}

// Width 返回格子宽度
func (t TerrainTile) Width() float64 {
	return t.EndX - t.StartX
}

// CenterX 返回格子水平中心
func (t TerrainTile) CenterX() float64 {
	return (t.StartX + t.EndX) * 0.5
}
