package game

import (
	"errors"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/decker502/golf/pkg/components"
	"github.com/decker502/golf/pkg/config"
	"github.com/decker502/golf/pkg/entities"
	"github.com/decker502/golf/pkg/systems"
	"github.com/decker502/golf/pkg/types"
)

var (
	// ErrNoActiveHole 还没有开始任何球洞
	ErrNoActiveHole = errors.New("no active hole")

	// ErrHoleComplete 当前球洞已完成，不能继续击球
	ErrHoleComplete = errors.New("hole already complete")

	// ErrHoleInProgress 当前球洞尚未完成，不能进入下一洞
	ErrHoleInProgress = errors.New("hole still in progress")

	// ErrRoundComplete 回合已经结束
	ErrRoundComplete = errors.New("round already complete")
)

// HoleResult 一个已完成球洞的成绩
type HoleResult struct {
	Number  int // 从 1 开始
	Par     int
	Strokes int // 含罚杆
}

// RelativeToPar 返回该洞相对标准杆的杆数
func (r HoleResult) RelativeToPar() int {
	return r.Strokes - r.Par
}

// Session 一局比赛的全部状态
//
// 持有随机数来源、球杆、当前球洞和球。球只属于会话，
// 物理系统通过指针原地修改它。单线程使用，不加锁。
type Session struct {
	cfg     *config.GolfConfig
	rng     *rand.Rand
	clubs   map[types.ClubType]*components.GolfClub
	physics *systems.ProjectilePhysics
	shots   *systems.ShotSystem
	flight  *systems.FlightSystem
	records *BestRoundManager // 可为 nil，表示不记录最佳成绩

	maxHeightOffset float64

	course       *components.GolfCourse
	ball         *components.GolfBall
	par          int
	strokes      int
	holeComplete bool
	results      []HoleResult

	lastRoundImproved bool

	logger *log.Logger
}

// NewSession 创建会话
//
// 参数:
//   - cfg: 已校验的配置
//   - seed: 随机种子，相同种子生成相同的球洞序列
//   - records: 最佳成绩管理器，可为 nil
//
// 返回:
//   - *Session: 尚未开始回合的会话，需调用 StartRound()
func NewSession(cfg *config.GolfConfig, seed int64, records *BestRoundManager) *Session {
	physics := systems.NewProjectilePhysics(cfg.Physics)
	clubs := entities.NewClubSet(cfg.Clubs)

	s := &Session{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(seed)),
		clubs:   clubs,
		physics: physics,
		shots:   systems.NewShotSystem(physics, cfg.Shot),
		flight:  systems.NewFlightSystem(physics),
		records: records,
		logger:  log.WithPrefix("Session"),
	}
	s.maxHeightOffset = physics.ComputeMaximumHeightOffsetForCourse(
		clubs[types.ClubWedge], cfg.Course, cfg.Shot.MaxPower, cfg.Shot.FairwayMultiplier())

	s.logger.Debug("session created", "seed", seed, "maxHeightOffset", s.maxHeightOffset)
	return s
}

// StartRound 开始新的回合并生成第一洞
func (s *Session) StartRound() {
	s.results = s.results[:0]
	s.lastRoundImproved = false
	s.StartHole()
}

// StartHole 生成新的球洞并把球放到球座上
func (s *Session) StartHole() {
	co := s.cfg.Course
	course := entities.GenerateSingleHole(s.rng, co.TileCount, co.TileWidthPixels, co.BaseGroundYPixels, s.maxHeightOffset)
	s.startHoleOn(course)
}

// startHoleOn 在指定球洞上开球
func (s *Session) startHoleOn(course *components.GolfCourse) {
	s.course = course
	s.par = course.ComputePar(s.clubs, s.cfg.Shot.MaxPower, s.cfg.Shot.FairwayMultiplier())
	s.strokes = 0
	s.holeComplete = false

	teeX, teeY := s.teePosition()
	if s.ball == nil {
		s.ball = components.NewGolfBall(teeX, teeY, s.cfg.Course.BallRadiusPixels)
	} else {
		s.ball.ResetToTee(teeX, teeY)
	}

	s.logger.Info("hole started", "hole", s.HoleNumber(), "par", s.par,
		"length", math.Round(course.HoleLengthPixels()), "obstacles", len(course.Obstacles()))
}

// teePosition 球座位置：首个非水障碍格子 1/4 处，球底贴地
// 生成器允许第一个格子是水障碍，此时球座顺延到后面第一个可击球的格子
func (s *Session) teePosition() (float64, float64) {
	tee := s.course.StartTile()
	for _, tile := range s.course.Tiles() {
		if !tile.Type.IsHazard() {
			tee = tile
			break
		}
	}
	return tee.StartX + tee.Width()*components.TeeOffsetRatio, tee.GroundCenterY - s.cfg.Course.BallRadiusPixels
}

// Shoot 击球
//
// 角度和力度会被限制在配置范围内。成功发射计一杆；
// 球位于水障碍时回到安全位置，不计杆。
//
// 参数:
//   - club: 球杆类型
//   - angleDegrees: 出球角
//   - power: 力度百分比
//
// 返回:
//   - systems.ShotOutcome: 击球结果
//   - error: ErrNoActiveHole、ErrHoleComplete 或击球系统返回的错误
func (s *Session) Shoot(club types.ClubType, angleDegrees, power float64) (systems.ShotOutcome, error) {
	if s.course == nil {
		return systems.ShotOutcome{}, ErrNoActiveHole
	}
	if s.holeComplete {
		return systems.ShotOutcome{}, ErrHoleComplete
	}

	angleDegrees, power = s.ClampAim(angleDegrees, power)
	outcome, err := s.shots.PerformShot(s.ball, s.course, s.clubs[club], angleDegrees, power)
	if err != nil {
		return outcome, err
	}
	if !outcome.Reset {
		s.strokes++
	}
	return outcome, nil
}

// ClampAim 把角度和力度限制在配置范围内
func (s *Session) ClampAim(angleDegrees, power float64) (float64, float64) {
	shot := s.cfg.Shot
	angleDegrees = math.Max(shot.MinAngleDegrees, math.Min(shot.MaxAngleDegrees, angleDegrees))
	power = math.Max(shot.MinPower, math.Min(shot.MaxPower, power))
	return angleDegrees, power
}

// Update 推进一帧
//
// 水障碍、出界和越过球洞罚一杆，停在球洞格子上完成本洞；
// 最后一洞完成时提交最佳成绩。
//
// 参数:
//   - dt: 时间步长（秒）
//
// 返回:
//   - systems.StepResult: 本帧飞行结果
func (s *Session) Update(dt float64) systems.StepResult {
	if s.course == nil || s.holeComplete {
		return systems.StepResult{}
	}

	result := s.flight.Step(s.ball, s.course, dt)
	if !result.Stopped {
		return result
	}

	switch {
	case result.Rest.IsPenalty():
		s.strokes++
		s.logger.Info("penalty stroke", "reason", result.Rest, "strokes", s.strokes)
	case result.Rest == systems.RestHole:
		s.completeHole()
	}
	return result
}

func (s *Session) completeHole() {
	number := len(s.results) + 1
	s.holeComplete = true
	s.results = append(s.results, HoleResult{
		Number:  number,
		Par:     s.par,
		Strokes: s.strokes,
	})
	s.logger.Info("hole complete", "hole", number, "strokes", s.strokes, "par", s.par)

	if s.IsRoundComplete() {
		s.submitRound()
	}
}

func (s *Session) submitRound() {
	if s.records == nil {
		return
	}

	improved, err := s.records.Submit(BestRound{
		RelativeToPar: s.RelativeToPar(),
		Strokes:       s.TotalStrokes(),
		Par:           s.TotalPar(),
		Holes:         len(s.results),
	})
	if err != nil {
		s.logger.Error("failed to save best round", "err", err)
	}
	s.lastRoundImproved = improved
}

// AdvanceHole 进入下一洞
//
// 返回:
//   - error: 当前洞未完成返回 ErrHoleInProgress，回合已结束返回 ErrRoundComplete
func (s *Session) AdvanceHole() error {
	if s.course == nil {
		return ErrNoActiveHole
	}
	if !s.holeComplete {
		return ErrHoleInProgress
	}
	if s.IsRoundComplete() {
		return ErrRoundComplete
	}
	s.StartHole()
	return nil
}

// IsRoundComplete 所有球洞都已完成
func (s *Session) IsRoundComplete() bool {
	return len(s.results) >= s.cfg.Round.HolesPerRound
}

// RelativeToPar 已完成球洞的总杆数减总标准杆
func (s *Session) RelativeToPar() int {
	return s.TotalStrokes() - s.TotalPar()
}

// TotalStrokes 已完成球洞的总杆数
func (s *Session) TotalStrokes() int {
	total := 0
	for _, r := range s.results {
		total += r.Strokes
	}
	return total
}

// TotalPar 已完成球洞的总标准杆
func (s *Session) TotalPar() int {
	total := 0
	for _, r := range s.results {
		total += r.Par
	}
	return total
}

// Results 返回已完成球洞的成绩（副本）
func (s *Session) Results() []HoleResult {
	return append([]HoleResult(nil), s.results...)
}

// HoleNumber 返回当前球洞编号（从 1 开始）
func (s *Session) HoleNumber() int {
	if s.holeComplete {
		return len(s.results)
	}
	return len(s.results) + 1
}

// HolesPerRound 返回每回合球洞数
func (s *Session) HolesPerRound() int { return s.cfg.Round.HolesPerRound }

// Ball 返回会话持有的球
func (s *Session) Ball() *components.GolfBall { return s.ball }

// Course 返回当前球洞，未开始时为 nil
func (s *Session) Course() *components.GolfCourse { return s.course }

// Club 返回指定类型的球杆
func (s *Session) Club(kind types.ClubType) *components.GolfClub { return s.clubs[kind] }

// Config 返回配置
func (s *Session) Config() *config.GolfConfig { return s.cfg }

// Par 返回当前球洞的标准杆
func (s *Session) Par() int { return s.par }

// Strokes 返回当前球洞已用杆数（含罚杆）
func (s *Session) Strokes() int { return s.strokes }

// IsHoleComplete 当前球洞是否已完成
func (s *Session) IsHoleComplete() bool { return s.holeComplete }

// MaxHeightOffset 返回生成球洞时使用的地面起伏上限
func (s *Session) MaxHeightOffset() float64 { return s.maxHeightOffset }

// LastRoundImproved 上一个完成的回合是否刷新了最佳成绩
func (s *Session) LastRoundImproved() bool { return s.lastRoundImproved }

// BestRelativeToPar 返回最佳成绩
func (s *Session) BestRelativeToPar() (int, bool) {
	if s.records == nil {
		return 0, false
	}
	return s.records.Best()
}
