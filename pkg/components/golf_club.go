package components

import (
	"math"

	"github.com/decker502/golf/pkg/types"
)

// GolfClub 球杆
//
// 三种球杆共用同一个射程模板：
//
//	raw = BaseDistancePixels * power/100 * terrainMultiplier
//
// 区别只在最后的调整步骤，由 Kind 选择：
//   - Driver: 不调整
//   - Wedge:  raw * WedgeBonus
//   - Putter: min(raw, PutterCapPixels)
type GolfClub struct {
	Kind               types.ClubType
	DisplayName        string
	BaseDistancePixels float64 // 满力度、球道球位下的平地射程
	WedgeBonus         float64 // 仅 Wedge 使用
	PutterCapPixels    float64 // 仅 Putter 使用
}

// NewDriver 创建一号木
func NewDriver(displayName string, baseDistance float64) *GolfClub {
	return &GolfClub{Kind: types.ClubDriver, DisplayName: displayName, BaseDistancePixels: baseDistance}
}

// NewWedge 创建挖起杆
func NewWedge(displayName string, baseDistance, bonus float64) *GolfClub {
	return &GolfClub{Kind: types.ClubWedge, DisplayName: displayName, BaseDistancePixels: baseDistance, WedgeBonus: bonus}
}

// NewPutter 创建推杆
func NewPutter(displayName string, baseDistance, capPixels float64) *GolfClub {
	return &GolfClub{Kind: types.ClubPutter, DisplayName: displayName, BaseDistancePixels: baseDistance, PutterCapPixels: capPixels}
}

// ComputeShot 计算预期平地射程
//
// 纯函数。地形系数为 0（水障碍）时结果为 0，调用方应在调用前处理水障碍。
//
// 参数:
//   - ctx: 力度与地形系数
//
// 返回:
//   - ShotResult: 调整后的预期射程
func (c *GolfClub) ComputeShot(ctx ShotContext) ShotResult {
	return ShotResult{
		ExpectedHorizontalRangePixels: computeRange(c.BaseDistancePixels, ctx, c.adjustment()),
	}
}

// computeRange 共用的射程模板
func computeRange(baseDistance float64, ctx ShotContext, adjust func(float64) float64) float64 {
	raw := baseDistance * (ctx.PowerPercentage / 100.0) * ctx.TerrainDistanceMultiplier
	return adjust(raw)
}

// adjustment 按球杆种类返回最后的调整函数
func (c *GolfClub) adjustment() func(float64) float64 {
	switch c.Kind {
	case types.ClubWedge:
		bonus := c.WedgeBonus
		return func(raw float64) float64 { return raw * bonus }
	case types.ClubPutter:
		capPixels := c.PutterCapPixels
		return func(raw float64) float64 { return math.Min(raw, capPixels) }
	default:
		return func(raw float64) float64 { return raw }
	}
}
