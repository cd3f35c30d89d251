//go:build mobile

// Package mobile 提供曲线查看器的 ebitenmobile 绑定入口
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.gonewx.easing -o build/android/easing.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Easing.xcframework -v ./mobile
package mobile

import (
	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/gonewx/easing/pkg/settings"
	"github.com/gonewx/easing/pkg/viewer"
)

func init() {
	// 移动端没有命令行参数，使用已保存的设置和内置预设
	mobile.SetGame(viewer.New(settings.Open("easing_curves"), nil))
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
