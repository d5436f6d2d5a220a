package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/decker502/golf/pkg/app"
	"github.com/decker502/golf/pkg/config"
	"github.com/decker502/golf/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

// defaultConfigPath 内嵌的默认配置
const defaultConfigPath = "data/golf.yaml"

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	configPath = flag.String("config", "", "高尔夫配置文件路径（默认使用内嵌的 data/golf.yaml）")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	golf, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal("配置加载失败", "err", err)
	}

	gameSeed := *seed
	if gameSeed == 0 {
		gameSeed = time.Now().UnixNano()
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Seed:    gameSeed,
		Golf:    golf,
	})
	if err != nil {
		log.Fatal("游戏初始化失败", "err", err)
	}

	width, height := gameApp.WindowSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(fmt.Sprintf("Golf (seed %d)", gameSeed))
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Error("game loop stopped", "err", err)
		os.Exit(1)
	}
}

// loadConfig 从文件或内嵌资源加载配置
func loadConfig(path string) (*config.GolfConfig, error) {
	if path != "" {
		return config.LoadGolfConfig(path)
	}

	data, err := embedded.ReadFile(defaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded config: %w", err)
	}
	return config.ParseGolfConfig(data)
}
