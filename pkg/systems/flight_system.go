package systems

import (
	"github.com/charmbracelet/log"
	"github.com/decker502/golf/pkg/components"
	"github.com/decker502/golf/pkg/types"
)

// RestKind 球停下时所处位置的分类
type RestKind int

const (
	// RestNone 球仍在运动
	RestNone RestKind = iota
	// RestSafe 停在普通地形上，已记为安全位置
	RestSafe
	// RestHole 停在球洞格子上
	RestHole
	// RestWater 停在水障碍中，已回到安全位置
	RestWater
	// RestOutOfBounds 停在球场范围之外，已回到安全位置
	RestOutOfBounds
	// RestPastHole 越过球洞格子后停下，已回到安全位置
	RestPastHole
)

// String 返回分类名称
func (k RestKind) String() string {
	switch k {
	case RestNone:
		return "none"
	case RestSafe:
		return "safe"
	case RestHole:
		return "hole"
	case RestWater:
		return "water"
	case RestOutOfBounds:
		return "out-of-bounds"
	case RestPastHole:
		return "past-hole"
	default:
		return "unknown"
	}
}

// IsPenalty 水障碍、出界和越过球洞需要罚杆
func (k RestKind) IsPenalty() bool {
	return k == RestWater || k == RestOutOfBounds || k == RestPastHole
}

// StepResult 一帧模拟的结果
type StepResult struct {
	Moving   bool                   // 本帧结束后球是否仍在运动
	Stopped  bool                   // 球在本帧停下
	Collided bool                   // 本帧与空中障碍物发生了碰撞
	Tile     components.TerrainTile // 本帧使用的地形格子
	Rest     RestKind               // 仅在 Stopped 时有意义
}

// FlightSystem 每帧驱动飞行中的球
//
// 先处理空中障碍物碰撞，再根据球心 X 查找地形格子并推进弹道；
// 球停下的那一帧对停球位置分类并执行相应的复位或存档。
type FlightSystem struct {
	physics *ProjectilePhysics
	logger  *log.Logger
}

// NewFlightSystem 创建飞行系统
func NewFlightSystem(physics *ProjectilePhysics) *FlightSystem {
	return &FlightSystem{
		physics: physics,
		logger:  log.WithPrefix("FlightSystem"),
	}
}

// Step 推进一帧
//
// 参数:
//   - ball: 会话持有的球
//   - course: 当前球洞
//   - dt: 时间步长（秒）
//
// 返回:
//   - StepResult: 本帧结果；球本来就静止时返回零值结果
func (fs *FlightSystem) Step(ball *components.GolfBall, course *components.GolfCourse, dt float64) StepResult {
	if !ball.IsMoving() {
		return StepResult{}
	}

	result := StepResult{}
	result.Collided = fs.physics.HandleAirObstacleCollisions(ball, course.Obstacles())

	result.Tile = course.TileAtX(ball.X())
	groundY := result.Tile.GroundCenterY - ball.Radius()
	result.Moving = fs.physics.UpdateBallWithTerrain(ball, result.Tile, groundY, dt)

	if !result.Moving {
		result.Stopped = true
		result.Rest = fs.settle(ball, course)
	}
	return result
}

// settle 对停球位置分类
// 水障碍、出界和越过球洞回到安全位置，普通地形记为新的安全位置。
// 击球只能向右，停在球洞右侧的球无法再打回球洞，因此不能成为安全位置。
func (fs *FlightSystem) settle(ball *components.GolfBall, course *components.GolfCourse) RestKind {
	x := ball.X()
	if x < course.StartX() || x >= course.EndX() {
		fs.logger.Debug("ball out of bounds, returning to safe position", "x", x)
		ball.ResetToSafePosition()
		return RestOutOfBounds
	}

	tile := course.TileAtX(x)
	switch {
	case tile.Type.IsHazard():
		fs.logger.Debug("ball in hazard, returning to safe position", "terrain", tile.Type, "x", x)
		ball.ResetToSafePosition()
		return RestWater
	case tile.Type == types.TerrainHole:
		fs.logger.Debug("ball at rest on hole tile", "x", x)
		return RestHole
	case x >= course.HoleTile().EndX:
		fs.logger.Debug("ball past the hole, returning to safe position", "x", x, "holeEnd", course.HoleTile().EndX)
		ball.ResetToSafePosition()
		return RestPastHole
	default:
		ball.MarkSafePosition()
		return RestSafe
	}
}
