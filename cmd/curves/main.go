// Package main provides an easing curve viewer for inspecting and tuning
// animation curves.
//
// Usage:
//
//	go run ./cmd/curves [flags]
//
// Flags:
//
//	--curve <name>      Start with a specific curve (e.g., --curve=back-in-bounce-out)
//	--preset <name>     Start with a named preset (e.g., --preset=drop)
//	--presets <file>    Load presets from a YAML file (default: built-in presets)
//	--dump              Print a sample table for the curve and exit (no window);
//	                    with --preset the table includes the preset's keyframe track
//	--list              Print the preset list and exit (no window)
//	--samples <n>       Sample count for --dump and the plot
//	--verbose           Enable verbose logging (default off)
//
// See package viewer for the window controls.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gonewx/easing/pkg/config"
	"github.com/gonewx/easing/pkg/easing"
	"github.com/gonewx/easing/pkg/settings"
	"github.com/gonewx/easing/pkg/viewer"
	"github.com/hajimehoshi/ebiten/v2"
)

const appName = "easing_curves"

var (
	curveFlag   = flag.String("curve", "", "Start with specific curve name")
	presetFlag  = flag.String("preset", "", "Start with specific preset name")
	presetsFlag = flag.String("presets", "", "Curve preset YAML file")
	dumpFlag    = flag.Bool("dump", false, "Print sample table and exit")
	listFlag    = flag.Bool("list", false, "Print preset list and exit")
	samplesFlag = flag.Int("samples", 0, "Sample count (0 = saved setting)")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

func main() {
	flag.Parse()

	// 默认静音运行；如需详细调试，传入 --verbose
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	log.Println("=== Easing Curve Viewer ===")
	log.Printf("Curve: %q", *curveFlag)
	log.Printf("Preset: %q", *presetFlag)
	log.Printf("Presets file: %q", *presetsFlag)

	presets, err := loadPresets(*presetsFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *listFlag {
		fmt.Print(presetTable(presets))
		return
	}

	sm := settings.Open(appName)
	if *samplesFlag > 0 {
		sm.SetSamples(*samplesFlag)
	}

	curve, err := startCurve(sm.Get().Curve, presets)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *dumpFlag {
		n := sm.Get().Samples
		if *samplesFlag > 0 {
			n = *samplesFlag
		}
		if err := dump(curve, presets, n); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	v := viewer.New(sm, presets)
	if *presetFlag != "" {
		v.SelectPreset(*presetFlag)
	} else {
		v.SetCurve(curve)
	}

	ebiten.SetWindowSize(viewer.ScreenWidth, viewer.ScreenHeight)
	ebiten.SetWindowTitle("Easing Curve Viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, viewer.ErrQuit) {
		log.Fatal(err)
	}

	log.Println("Curve viewer closed")
}

// loadPresets 读取预设文件；未指定文件时使用内置预设
func loadPresets(path string) (*config.CurvePresetConfig, error) {
	if path == "" {
		return config.DefaultCurvePresets(), nil
	}
	presets, err := config.LoadCurvePresets(path)
	if err != nil {
		return nil, err
	}
	log.Printf("[Curves] Loaded %d presets from %s", len(presets.Presets), path)
	return presets, nil
}

// startCurve 按 --preset、--curve、已保存设置的优先级确定初始曲线
func startCurve(saved easing.Curve, presets *config.CurvePresetConfig) (easing.Curve, error) {
	if *presetFlag != "" {
		preset, ok := presets.Find(*presetFlag)
		if !ok {
			return easing.Curve{}, fmt.Errorf("unknown preset %q (available: %v)", *presetFlag, presets.Names())
		}
		return preset.Curve, nil
	}
	if *curveFlag != "" {
		curve, err := easing.Parse(*curveFlag)
		if err != nil {
			return easing.Curve{}, fmt.Errorf("invalid --curve: %w", err)
		}
		return curve, nil
	}
	return saved, nil
}

// dump 输出采样表；指定 --preset 时输出带关键帧轨道的预设采样表
func dump(curve easing.Curve, presets *config.CurvePresetConfig, n int) error {
	if *presetFlag == "" {
		fmt.Print(sampleTable(curve, n))
		return nil
	}
	preset, _ := presets.Find(*presetFlag)
	out, err := trackTable(preset, n)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
