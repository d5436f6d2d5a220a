//go:build !mobile

// Package mobile 的桌面端占位文件
//
// ebitenmobile 绑定入口（mobile.go、embed.go）只在 -tags mobile 时编译。
// 桌面端由根目录的 main.go 启动，这里只保留包声明，让 go build ./... 和
// go vet ./... 在不带标签时也能遍历到此目录。
package mobile
