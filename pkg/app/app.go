// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/decker502/golf/pkg/config"
	"github.com/decker502/golf/pkg/game"
	"github.com/decker502/golf/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "golf"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 第一局使用的随机种子
	Seed int64
	// Golf 已校验的高尔夫配置，为 nil 时使用内置默认值
	Golf *config.GolfConfig
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settings                 *game.SettingsManager
	golf                     *config.GolfConfig
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
	logger                   *log.Logger
}

// NewApp 创建并初始化游戏应用
//
// 存储不可用时以降级模式运行（设置和最佳成绩只保存在内存中）。
func NewApp(cfg Config) (*App, error) {
	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
	logger := log.WithPrefix("App")

	golf := cfg.Golf
	if golf == nil {
		golf = config.DefaultGolfConfig()
	}
	if err := golf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid golf config: %w", err)
	}

	gdataManager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		logger.Warn("persistent storage unavailable, running in memory", "err", err)
		gdataManager = nil
	}

	settings, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create settings manager: %w", err)
	}
	records := game.NewBestRoundManager(gdataManager)

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(seed int64) game.Scene {
		return scenes.NewGolfScene(game.NewSession(golf, seed, records), settings)
	})
	if !sceneManager.NewGame(cfg.Seed) {
		return nil, fmt.Errorf("failed to start game with seed %d", cfg.Seed)
	}

	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	logger.Info("app initialized", "seed", cfg.Seed, "holes", golf.Round.HolesPerRound)

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		golf:         golf,
		verbose:      cfg.Verbose,
		logger:       logger,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 窗口关闭时先保存，再结束游戏循环
	if ebiten.IsWindowBeingClosed() {
		a.Shutdown()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.golf.Window.Width, a.golf.Window.Height)
			a.logger.Debug("delayed window size reset", "width", a.golf.Window.Width, "height", a.golf.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.settings.SetFullscreen(false)
		return
	}
	ebiten.SetFullscreen(true)
	a.settings.SetFullscreen(true)
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.golf.Window.Width, a.golf.Window.Height
}

// WindowSize 返回配置的窗口尺寸
func (a *App) WindowSize() (int, int) {
	return a.golf.Window.Width, a.golf.Window.Height
}

// Shutdown 退出前保存当前场景和设置
func (a *App) Shutdown() {
	if !a.sceneManager.SaveOnExit() {
		a.logger.Warn("scene failed to save on exit")
	}
	if err := a.settings.Save(); err != nil {
		a.logger.Error("failed to save settings", "err", err)
	}
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
