package main

import (
	"errors"
	"log"

	"github.com/gonewx/easing/pkg/config"
	"github.com/gonewx/easing/pkg/settings"
	"github.com/gonewx/easing/pkg/viewer"
	"github.com/hajimehoshi/ebiten/v2"
)

// main 以已保存的设置和嵌入的预设文件启动曲线查看器
func main() {
	presets, err := config.ParseCurvePresets(curvePresetsYAML)
	if err != nil {
		log.Printf("[Main] Warning: embedded presets invalid: %v (using built-in presets)", err)
		presets = nil
	}

	sm := settings.Open("easing_curves")

	ebiten.SetWindowSize(viewer.ScreenWidth, viewer.ScreenHeight)
	ebiten.SetWindowTitle("Easing Curve Viewer")

	// Q/Escape returns viewer.ErrQuit
	if err := ebiten.RunGame(viewer.New(sm, presets)); err != nil && !errors.Is(err, viewer.ErrQuit) {
		log.Fatal(err)
	}
}
