package systems

import (
	"errors"
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"github.com/decker502/golf/pkg/components"
	"github.com/decker502/golf/pkg/config"
	"github.com/decker502/golf/pkg/types"
)

// minLaunchSpeed 低于此速度的击球视为瞄准无效
const minLaunchSpeed = 1e-6

var (
	// ErrBallMoving 球仍在运动时不能击球
	ErrBallMoving = errors.New("ball is still moving")

	// ErrNoClub 没有选择球杆
	ErrNoClub = errors.New("no club selected")

	// ErrInvalidAim 出球角或力度无法产生有效的出球速度
	ErrInvalidAim = errors.New("invalid aim")
)

// ShotOutcome 一次击球的结果
type ShotOutcome struct {
	// Reset 球位于水障碍，已回到安全位置，本次不计杆
	Reset bool

	Terrain    types.TerrainType // 击球时球下方的地形
	Multiplier float64           // 使用的地形距离系数
	Range      float64           // 球杆给出的预期平地射程
	Speed      float64           // 出球速度 px/s
}

// ShotSystem 把球杆、角度和力度转换为球的初速度
type ShotSystem struct {
	physics *ProjectilePhysics
	shot    config.ShotConfig
	logger  *log.Logger
}

// NewShotSystem 创建击球系统
//
// 参数:
//   - physics: 用于反求出球速度的弹道模拟
//   - shot: 击球配置（地形距离系数）
func NewShotSystem(physics *ProjectilePhysics, shot config.ShotConfig) *ShotSystem {
	return &ShotSystem{
		physics: physics,
		shot:    shot,
		logger:  log.WithPrefix("ShotSystem"),
	}
}

// PerformShot 击球
//
// 地形系数取自球下方的格子。系数为 0（水障碍）时不发射，
// 球回到安全位置并返回 Reset 结果。
//
// 参数:
//   - ball: 会话持有的球
//   - course: 当前球洞
//   - club: 选中的球杆
//   - angleDegrees: 出球角（度）
//   - power: 力度百分比
//
// 返回:
//   - ShotOutcome: 击球结果
//   - error: ErrBallMoving、ErrNoClub 或 ErrInvalidAim
func (s *ShotSystem) PerformShot(
	ball *components.GolfBall,
	course *components.GolfCourse,
	club *components.GolfClub,
	angleDegrees, power float64,
) (ShotOutcome, error) {
	if ball.IsMoving() {
		return ShotOutcome{}, ErrBallMoving
	}
	if club == nil {
		return ShotOutcome{}, ErrNoClub
	}

	tile := course.TileAtX(ball.X())
	multiplier := s.shot.DistanceMultiplierFor(tile.Type)
	outcome := ShotOutcome{Terrain: tile.Type, Multiplier: multiplier}

	if multiplier <= 0 {
		ball.ResetToSafePosition()
		outcome.Reset = true
		s.logger.Info("ball in hazard, returned to safe position", "terrain", tile.Type)
		return outcome, nil
	}

	outcome.Range = club.ComputeShot(components.ShotContext{
		PowerPercentage:           power,
		TerrainDistanceMultiplier: multiplier,
	}).ExpectedHorizontalRangePixels

	outcome.Speed = s.physics.ComputeInitialSpeed(outcome.Range, angleDegrees)
	if outcome.Speed < minLaunchSpeed {
		return outcome, fmt.Errorf("%w: angle=%.1f power=%.1f", ErrInvalidAim, angleDegrees, power)
	}

	theta := degreesToRadians(angleDegrees)
	ball.Launch(outcome.Speed*math.Cos(theta), -outcome.Speed*math.Sin(theta))

	s.logger.Debug("shot", "club", club.Kind, "terrain", tile.Type,
		"range", outcome.Range, "speed", outcome.Speed, "angle", angleDegrees, "power", power)
	return outcome, nil
}
