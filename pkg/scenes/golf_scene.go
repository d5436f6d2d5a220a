package scenes

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/decker502/golf/pkg/game"
	"github.com/decker502/golf/pkg/systems"
	"github.com/decker502/golf/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	_ game.Scene    = (*GolfScene)(nil)
	_ game.Saveable = (*GolfScene)(nil)
)

// previewPanSpeed 开球前预览球洞时镜头的平移速度（像素/秒）
const previewPanSpeed = 600.0

// scenePhase 场景所处的阶段
type scenePhase int

const (
	phasePreview       scenePhase = iota // 镜头预览球洞
	phaseAiming                          // 等待击球
	phaseFlight                          // 球在运动
	phaseHoleComplete                    // 本洞完成，等待进入下一洞
	phaseRoundComplete                   // 回合结束
)

// controls 一帧内读取到的玩家输入
type controls struct {
	club        types.ClubType
	clubChanged bool
	angleDir    float64 // -1 减小，+1 增大
	powerDir    float64
	shoot       bool
	nextHole    bool
	newRound    bool
	toggleGuide bool
}

// clubKeys 数字键到球杆的映射
var clubKeys = []struct {
	key  ebiten.Key
	club types.ClubType
}{
	{ebiten.Key1, types.ClubDriver},
	{ebiten.Key2, types.ClubWedge},
	{ebiten.Key3, types.ClubPutter},
}

// readControls 从 ebiten 读取本帧输入
func readControls() controls {
	var c controls

	for _, ck := range clubKeys {
		if inpututil.IsKeyJustPressed(ck.key) {
			c.club = ck.club
			c.clubChanged = true
		}
	}

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		c.angleDir--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		c.angleDir++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		c.powerDir--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		c.powerDir++
	}

	c.shoot = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	c.nextHole = inpututil.IsKeyJustPressed(ebiten.KeyN)
	c.newRound = inpututil.IsKeyJustPressed(ebiten.KeyR)
	c.toggleGuide = inpututil.IsKeyJustPressed(ebiten.KeyG)
	return c
}

// GolfScene 高尔夫主场景
//
// 负责把玩家输入转换为会话操作、驱动镜头，并绘制球场和 HUD。
// 模拟本身全部在 game.Session 中完成。
type GolfScene struct {
	session  *game.Session
	settings *game.SettingsManager // 可为 nil
	camera   *systems.CameraSystem

	club      types.ClubType
	angle     float64
	power     float64
	showGuide bool

	phase        scenePhase
	previewLeg   int // 0: 平移到球洞，1: 返回球座
	message      string
	windowWidth  float64
	windowHeight float64

	logger *log.Logger
}

// NewGolfScene 创建高尔夫场景并开始第一回合
//
// 参数:
//   - session: 尚未开始回合的会话
//   - settings: 设置管理器，用于恢复和记住瞄准参数（可为 nil）
//
// 返回:
//   - *GolfScene: 场景实例，处于球洞预览阶段
func NewGolfScene(session *game.Session, settings *game.SettingsManager) *GolfScene {
	cfg := session.Config()
	s := &GolfScene{
		session:      session,
		settings:     settings,
		camera:       systems.NewCameraSystem(float64(cfg.Window.Width)),
		club:         types.ClubDriver,
		angle:        cfg.Shot.DefaultAngleDegrees,
		power:        cfg.Shot.DefaultPower,
		showGuide:    true,
		windowWidth:  float64(cfg.Window.Width),
		windowHeight: float64(cfg.Window.Height),
		logger:       log.WithPrefix("GolfScene"),
	}

	if settings != nil {
		shot := cfg.Shot
		s.club = settings.LastClub()
		s.angle, s.power = settings.ResolveAim(
			shot.MinAngleDegrees, shot.MaxAngleDegrees, shot.DefaultAngleDegrees,
			shot.MinPower, shot.MaxPower, shot.DefaultPower)
		s.showGuide = settings.GetSettings().ShowGuide
	}

	s.startRound()
	return s
}

// startRound 开始新回合
func (s *GolfScene) startRound() {
	s.session.StartRound()
	s.beginHole()
}

// beginHole 新球洞开始：重置镜头并开始预览
func (s *GolfScene) beginHole() {
	course := s.session.Course()
	s.camera.Reset(course.EndX())
	s.camera.MoveTo(course.EndX(), previewPanSpeed)
	s.previewLeg = 0
	s.phase = phasePreview
	s.message = fmt.Sprintf("Hole %d - Par %d", s.session.HoleNumber(), s.session.Par())
}

// Update 更新场景
func (s *GolfScene) Update(deltaTime float64) {
	s.handleControls(readControls(), deltaTime)
	s.step(deltaTime)
}

// handleControls 处理一帧输入
func (s *GolfScene) handleControls(c controls, deltaTime float64) {
	if c.toggleGuide {
		s.showGuide = !s.showGuide
		if s.settings != nil {
			s.settings.SetShowGuide(s.showGuide)
		}
	}

	if c.newRound {
		s.logger.Info("new round requested")
		s.startRound()
		return
	}

	switch s.phase {
	case phasePreview:
		if c.shoot {
			s.endPreview()
		}

	case phaseAiming:
		if c.clubChanged {
			s.club = c.club
		}
		shot := s.session.Config().Shot
		s.angle, s.power = s.session.ClampAim(
			s.angle+c.angleDir*shot.AngleStepDegrees*deltaTime,
			s.power+c.powerDir*shot.PowerStep*deltaTime,
		)
		if c.shoot {
			s.shoot()
		}

	case phaseHoleComplete:
		if c.nextHole || c.shoot {
			s.nextHole()
		}

	case phaseRoundComplete:
		if c.nextHole || c.shoot {
			s.startRound()
		}
	}
}

// endPreview 结束预览，镜头回到球的位置
func (s *GolfScene) endPreview() {
	s.camera.StopAnimation()
	s.camera.Follow(s.session.Ball().X())
	s.phase = phaseAiming
}

func (s *GolfScene) shoot() {
	outcome, err := s.session.Shoot(s.club, s.angle, s.power)
	if err != nil {
		s.logger.Warn("shot rejected", "err", err)
		s.message = fmt.Sprintf("Cannot shoot: %v", err)
		return
	}

	if s.settings != nil {
		s.settings.RememberAim(s.club, s.angle, s.power)
	}

	if outcome.Reset {
		s.message = "Ball in water, returned to safe position"
		return
	}

	s.logger.Debug("shot", "club", s.club, "angle", s.angle, "power", s.power,
		"terrain", outcome.Terrain, "range", outcome.Range)
	s.message = ""
	s.phase = phaseFlight
}

func (s *GolfScene) nextHole() {
	err := s.session.AdvanceHole()
	switch {
	case err == nil:
		s.beginHole()
	case errors.Is(err, game.ErrRoundComplete):
		s.phase = phaseRoundComplete
	default:
		s.logger.Warn("cannot advance", "err", err)
	}
}

// step 推进镜头和球
func (s *GolfScene) step(deltaTime float64) {
	switch s.phase {
	case phasePreview:
		s.camera.Update(deltaTime)
		if s.camera.IsAnimating() {
			return
		}
		if s.previewLeg == 0 {
			s.previewLeg = 1
			s.camera.MoveTo(0, previewPanSpeed)
			return
		}
		s.endPreview()

	case phaseFlight:
		result := s.session.Update(deltaTime)
		s.camera.Follow(s.session.Ball().X())
		if result.Stopped {
			s.onBallStopped(result.Rest)
		}

	case phaseAiming:
		s.camera.Follow(s.session.Ball().X())
	}
}

// onBallStopped 根据停球结果切换阶段
func (s *GolfScene) onBallStopped(rest systems.RestKind) {
	switch {
	case s.session.IsRoundComplete():
		s.phase = phaseRoundComplete
		s.message = s.roundSummary()
	case s.session.IsHoleComplete():
		s.phase = phaseHoleComplete
		s.message = fmt.Sprintf("Hole complete in %d (par %d). Press N for the next hole",
			s.session.Strokes(), s.session.Par())
	default:
		s.phase = phaseAiming
		switch rest {
		case systems.RestWater:
			s.message = "Water hazard! +1 penalty stroke"
		case systems.RestOutOfBounds:
			s.message = "Out of bounds! +1 penalty stroke"
		case systems.RestPastHole:
			s.message = "Past the hole! +1 penalty stroke"
		default:
			s.message = ""
		}
	}
}

func (s *GolfScene) roundSummary() string {
	summary := fmt.Sprintf("Round complete: %d strokes, %s", s.session.TotalStrokes(), formatRelative(s.session.RelativeToPar()))
	if s.session.LastRoundImproved() {
		summary += " - new best!"
	}
	return summary + ". Press N or R for a new round"
}

// SaveOnExit 退出时记住最后的瞄准参数
func (s *GolfScene) SaveOnExit() bool {
	if s.settings == nil {
		return true
	}
	s.settings.RememberAim(s.club, s.angle, s.power)
	if err := s.settings.Save(); err != nil {
		s.logger.Error("failed to save settings", "err", err)
		return false
	}
	return true
}

// formatRelative 把相对标准杆格式化为 "E"、"+2"、"-1"
func formatRelative(relative int) string {
	if relative == 0 {
		return "E"
	}
	return fmt.Sprintf("%+d", relative)
}
