package components

import (
	"math"

	"github.com/decker502/golf/pkg/types"
)

const (
	// TeeOffsetRatio 球座位于首个格子宽度的 1/4 处
	TeeOffsetRatio = 0.25

	// MinPar / MaxPar 标准杆的取值范围
	MinPar = 3
	MaxPar = 5

	// 以一号木满力度射程为单位的标准杆分档
	parThreeMaxDriverLengths = 2.0
	parFourMaxDriverLengths  = 3.0
)

// GolfCourse 一个球洞：从左到右连续排列的地形格子、空中障碍物和标准杆
// 构造后只读，访问器返回副本
type GolfCourse struct {
	tiles      []TerrainTile
	obstacles  []AirObstacle
	parStrokes int
}

// NewGolfCourse 创建球洞
//
// 参数:
//   - tiles: 地形格子，从左到右，至少一个
//   - obstacles: 空中障碍物，可为空
//   - parStrokes: 预估标准杆
func NewGolfCourse(tiles []TerrainTile, obstacles []AirObstacle, parStrokes int) *GolfCourse {
	return &GolfCourse{
		tiles:      append([]TerrainTile(nil), tiles...),
		obstacles:  append([]AirObstacle(nil), obstacles...),
		parStrokes: parStrokes,
	}
}

// TileAtX 返回包含 x 的格子
//
// 线性扫描，取第一个满足 x ∈ [StartX, EndX) 的格子。
// x 在首个格子左侧时返回首个格子，超出末尾时返回最后一个格子。
func (c *GolfCourse) TileAtX(x float64) TerrainTile {
	for _, tile := range c.tiles {
		if tile.ContainsX(x) {
			return tile
		}
	}
	if len(c.tiles) > 0 && x < c.tiles[0].StartX {
		return c.tiles[0]
	}
	return c.LastTile()
}

// StartTile 返回球座所在格子
func (c *GolfCourse) StartTile() TerrainTile {
	return c.tiles[0]
}

// LastTile 返回最后一个格子
func (c *GolfCourse) LastTile() TerrainTile {
	return c.tiles[len(c.tiles)-1]
}

// HoleTile 返回第一个 HOLE 格子，没有标记时以最后一个格子为球洞
func (c *GolfCourse) HoleTile() TerrainTile {
	for _, tile := range c.tiles {
		if tile.Type == types.TerrainHole {
			return tile
		}
	}
	return c.LastTile()
}

// TeeX 返回球座的 X 坐标
func (c *GolfCourse) TeeX() float64 {
	start := c.StartTile()
	return start.StartX + start.Width()*TeeOffsetRatio
}

// HoleLengthPixels 返回球座到球洞格子中心的水平距离，不小于 0
func (c *GolfCourse) HoleLengthPixels() float64 {
	return math.Max(0, c.HoleTile().CenterX()-c.TeeX())
}

// StartX 返回球场左边界
func (c *GolfCourse) StartX() float64 {
	return c.tiles[0].StartX
}

// EndX 返回球场右边界
func (c *GolfCourse) EndX() float64 {
	return c.LastTile().EndX
}

// Tiles 返回全部格子（副本）
func (c *GolfCourse) Tiles() []TerrainTile {
	return append([]TerrainTile(nil), c.tiles...)
}

// Obstacles 返回全部空中障碍物（副本）
func (c *GolfCourse) Obstacles() []AirObstacle {
	return append([]AirObstacle(nil), c.obstacles...)
}

// TileCount 返回格子数量
func (c *GolfCourse) TileCount() int {
	return len(c.tiles)
}

// ParStrokes 返回构造时给出的标准杆
func (c *GolfCourse) ParStrokes() int {
	return c.parStrokes
}

// CountTerrain 统计指定类型的格子数量
func (c *GolfCourse) CountTerrain(terrain types.TerrainType) int {
	count := 0
	for _, tile := range c.tiles {
		if tile.Type == terrain {
			count++
		}
	}
	return count
}

// ComputePar 按一号木射程估算标准杆
//
// 用满力度、球道系数下的一号木射程去除球洞长度：
// 不超过 2 杆距离为 3 杆洞，不超过 3 杆距离为 4 杆洞，否则为 5 杆洞。
// 没有一号木或射程不为正时，退回到构造时给出的标准杆（夹到 [3, 5]）。
//
// 参数:
//   - clubs: 可用球杆
//   - maxPower: 最大力度百分比
//   - fairwayMultiplier: 球道地形系数
//
// 返回:
//   - int: 标准杆 3、4 或 5
func (c *GolfCourse) ComputePar(clubs map[types.ClubType]*GolfClub, maxPower, fairwayMultiplier float64) int {
	fallback := clampInt(c.parStrokes, MinPar, MaxPar)

	driver, ok := clubs[types.ClubDriver]
	if !ok || driver == nil {
		return fallback
	}

	driverRange := driver.ComputeShot(ShotContext{
		PowerPercentage:           maxPower,
		TerrainDistanceMultiplier: fairwayMultiplier,
	}).ExpectedHorizontalRangePixels
	if driverRange <= 0 {
		return fallback
	}

	ratio := c.HoleLengthPixels() / driverRange
	switch {
	case ratio <= parThreeMaxDriverLengths:
		return 3
	case ratio <= parFourMaxDriverLengths:
		return 4
	default:
		return 5
	}
}

func clampInt(value, minimum, maximum int) int {
	if value < minimum {
		return minimum
	}
	if value > maximum {
		return maximum
	}
	return value
}
