package config

import (
	"fmt"
	"os"

	"github.com/gonewx/easing/internal/keyframe"
	"github.com/gonewx/easing/pkg/easing"
	"gopkg.in/yaml.v3"
)

// CurvePresetConfig 缓动曲线预设文件的根结构
//
// 文件格式示例：
//
//	presets:
//	  - name: fade_in
//	    curve: sine-in-out
//	    duration: 0.5
//	  - name: drop
//	    curve: bounce-out
//	    duration: 1.2
//	    track: "0,-120 1,0"
type CurvePresetConfig struct {
	Presets []CurvePreset `yaml:"presets"`
}

// CurvePreset 单个具名曲线预设
type CurvePreset struct {
	// Name 预设名称，文件内唯一
	Name string `yaml:"name"`

	// Curve 缓动曲线，使用规范名称（如 "cubic-in-out"），省略时为 none
	Curve easing.Curve `yaml:"curve"`

	// Duration 动画时长（秒），必须大于 0
	Duration float64 `yaml:"duration"`

	// Track 可选的关键帧声明，格式同 keyframe.ParseTrack；
	// 声明中没有曲线名时使用 Curve
	Track string `yaml:"track,omitempty"`
}

// LoadCurvePresets 从 YAML 文件加载曲线预设
//
// 参数：
//   - path: 配置文件路径
//
// 返回：
//   - *CurvePresetConfig: 解析后的配置
//   - error: 读取、解析或验证错误
func LoadCurvePresets(path string) (*CurvePresetConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("无法读取曲线预设文件 %s: %w", path, err)
	}

	config, err := ParseCurvePresets(data)
	if err != nil {
		return nil, fmt.Errorf("曲线预设文件 %s: %w", path, err)
	}
	return config, nil
}

// ParseCurvePresets 解析并验证 YAML 格式的曲线预设
func ParseCurvePresets(data []byte) (*CurvePresetConfig, error) {
	var config CurvePresetConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("无法解析曲线预设: %w", err)
	}

	if err := validateCurvePresets(&config); err != nil {
		return nil, fmt.Errorf("曲线预设验证失败: %w", err)
	}

	return &config, nil
}

func validateCurvePresets(config *CurvePresetConfig) error {
	seen := make(map[string]bool, len(config.Presets))
	for i, preset := range config.Presets {
		if preset.Name == "" {
			return fmt.Errorf("presets[%d]: name 不能为空", i)
		}
		if seen[preset.Name] {
			return fmt.Errorf("presets[%d]: 重复的预设名称 %q", i, preset.Name)
		}
		seen[preset.Name] = true

		if preset.Duration <= 0 {
			return fmt.Errorf("预设 %q: duration 必须大于 0，当前为 %v", preset.Name, preset.Duration)
		}

		if preset.Track != "" {
			if _, err := keyframe.ParseTrack(preset.Track); err != nil {
				return fmt.Errorf("预设 %q: track 无效: %w", preset.Name, err)
			}
		}
	}
	return nil
}

// Find 按名称查找预设
func (c *CurvePresetConfig) Find(name string) (CurvePreset, bool) {
	for _, preset := range c.Presets {
		if preset.Name == name {
			return preset, true
		}
	}
	return CurvePreset{}, false
}

// Names 返回所有预设名称，保持文件中的顺序
func (c *CurvePresetConfig) Names() []string {
	names := make([]string, len(c.Presets))
	for i, preset := range c.Presets {
		names[i] = preset.Name
	}
	return names
}

// KeyframeTrack 返回预设的关键帧轨道
//
// 没有 track 声明时返回 0→1 的单区间轨道；声明中未写曲线名时使用预设的 Curve。
func (p CurvePreset) KeyframeTrack() (keyframe.Track, error) {
	if p.Track == "" {
		return keyframe.Track{
			Keyframes: []keyframe.Keyframe{{Time: 0, Value: 0}, {Time: 1, Value: 1}},
			Curve:     p.Curve,
		}, nil
	}

	return keyframe.ParseTrackDefault(p.Track, p.Curve)
}

// DefaultCurvePresets 内置预设，未提供预设文件时使用
func DefaultCurvePresets() *CurvePresetConfig {
	return &CurvePresetConfig{
		Presets: []CurvePreset{
			{Name: "fade", Curve: easing.New(easing.Sine, easing.InOut), Duration: 0.5},
			{Name: "slide", Curve: easing.New(easing.Cubic, easing.Out), Duration: 0.35},
			{Name: "pop", Curve: easing.New(easing.Back, easing.Out), Duration: 0.3},
			{Name: "drop", Curve: easing.New(easing.Bounce, easing.Out), Duration: 1.2, Track: "0,-120 1,0"},
			{Name: "wobble", Curve: easing.New(easing.Elastic, easing.Out), Duration: 1.0},
			{Name: "launch", Curve: easing.NewPair(easing.Back, easing.Exponential), Duration: 0.8},
		},
	}
}
