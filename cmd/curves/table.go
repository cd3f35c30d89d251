package main

import (
	"fmt"
	"strings"

	"github.com/gonewx/easing/pkg/config"
	"github.com/gonewx/easing/pkg/easing"
)

// sampleTable 在 [0, 1] 上均匀采样 n 个区间，输出 n+1 行 "t value"
func sampleTable(c easing.Curve, n int) string {
	if n < 1 {
		n = 1
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# curve: %s (%d samples)\n", c, n)
	fmt.Fprintf(&sb, "%8s  %10s\n", "t", "value")
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		fmt.Fprintf(&sb, "%8.4f  %10.6f\n", t, c.Apply(t))
	}
	return sb.String()
}

// trackTable 对预设的关键帧轨道采样 n 个区间，
// 每行输出归一化时间、实际时间（秒）、曲线值和轨道取值
func trackTable(preset config.CurvePreset, n int) (string, error) {
	track, err := preset.KeyframeTrack()
	if err != nil {
		return "", fmt.Errorf("preset %q: %w", preset.Name, err)
	}
	if n < 1 {
		n = 1
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# preset: %s (%s, %.2fs) track: %s\n", preset.Name, preset.Curve, preset.Duration, track)
	fmt.Fprintf(&sb, "%8s  %8s  %10s  %12s\n", "t", "seconds", "value", "track")
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		fmt.Fprintf(&sb, "%8.4f  %8.4f  %10.6f  %12.4f\n", t, t*preset.Duration, preset.Curve.Apply(t), track.Evaluate(t))
	}
	return sb.String(), nil
}

// presetTable 列出所有预设
func presetTable(cfg *config.CurvePresetConfig) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-12s  %-28s  %8s  %s\n", "NAME", "CURVE", "DURATION", "TRACK")
	for _, preset := range cfg.Presets {
		track := preset.Track
		if track == "" {
			track = "-"
		}
		fmt.Fprintf(&sb, "%-12s  %-28s  %7.2fs  %s\n", preset.Name, preset.Curve, preset.Duration, track)
	}
	return sb.String()
}
