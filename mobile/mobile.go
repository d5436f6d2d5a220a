//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.golf -o build/android/golf.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Golf.xcframework -v ./mobile
package mobile

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/golf/pkg/app"
	"github.com/decker502/golf/pkg/config"
	"github.com/decker502/golf/pkg/embedded"
)

func init() {
	embedded.Init(dataFS)

	data, err := embedded.ReadFile("data/golf.yaml")
	if err != nil {
		log.Fatal("配置读取失败", "err", err)
	}
	golf, err := config.ParseGolfConfig(data)
	if err != nil {
		log.Fatal("配置解析失败", "err", err)
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose: true,
		Seed:    time.Now().UnixNano(),
		Golf:    golf,
	})
	if err != nil {
		log.Fatal("游戏初始化失败", "err", err)
	}

	// 注册游戏到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
