// Package settings 管理曲线查看器的持久化设置
package settings

import (
	"fmt"
	"log"

	"github.com/gonewx/easing/pkg/easing"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ViewerSettings 曲线查看器设置
type ViewerSettings struct {
	Curve      easing.Curve `yaml:"curve"`      // 当前选中的曲线
	Samples    int          `yaml:"samples"`    // 绘制曲线时的采样段数
	ShowMirror bool         `yaml:"showMirror"` // 同时绘制反转后的曲线
	Speed      float64      `yaml:"speed"`      // 演示动画的播放速度倍率
}

// 取值范围
const (
	MinSamples = 8
	MaxSamples = 1024
	MinSpeed   = 0.1
	MaxSpeed   = 4.0
)

// DefaultViewerSettings 返回默认设置
func DefaultViewerSettings() *ViewerSettings {
	return &ViewerSettings{
		Curve:      easing.New(easing.Cubic, easing.InOut),
		Samples:    128,
		ShowMirror: false,
		Speed:      1.0,
	}
}

// Manager 设置管理器
// 负责设置的加载、保存和内存管理
type Manager struct {
	gdataManager *gdata.Manager  // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *ViewerSettings // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "viewer"
)

// NewManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 加载已保存设置失败不是致命错误，记录警告后使用默认设置。
func NewManager(gdataManager *gdata.Manager) *Manager {
	m := &Manager{
		gdataManager: gdataManager,
		settings:     DefaultViewerSettings(),
	}

	if err := m.Load(); err != nil {
		log.Printf("[Settings] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return m
}

// Open 打开名为 appName 的设置存储并加载设置
//
// 存储无法打开时记录警告，返回降级模式的管理器（设置不会持久化）。
func Open(appName string) *Manager {
	gdataManager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Settings] Warning: Failed to open settings storage: %v (settings will not persist)", err)
		gdataManager = nil
	}

	return NewManager(gdataManager)
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
func (m *Manager) Load() error {
	// 降级模式：无法持久化，使用默认设置
	if m.gdataManager == nil {
		m.settings = DefaultViewerSettings()
		return nil
	}

	if !m.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		m.settings = DefaultViewerSettings()
		return nil
	}

	data, err := m.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		m.settings = DefaultViewerSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 先填入默认值，旧版本文件缺少的字段保持默认
	loaded := DefaultViewerSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		m.settings = DefaultViewerSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.Samples = clampSamples(loaded.Samples)
	loaded.Speed = clampSpeed(loaded.Speed)

	m.settings = loaded
	log.Printf("[Settings] Settings loaded successfully (curve=%s)", loaded.Curve)
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (m *Manager) Save() error {
	if m.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := m.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[Settings] Settings saved successfully")
	return nil
}

// Get 获取当前设置
func (m *Manager) Get() *ViewerSettings {
	return m.settings
}

// SetCurve 设置当前曲线
//
// 自定义回调曲线无法持久化，返回 easing.ErrCallbackCurve 且不修改设置。
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (m *Manager) SetCurve(c easing.Curve) error {
	if c.HasCallback() {
		return fmt.Errorf("cannot store curve %s: %w", c, easing.ErrCallbackCurve)
	}
	m.settings.Curve = c
	return nil
}

// SetSamples 设置采样段数，限制在 MinSamples ~ MaxSamples
func (m *Manager) SetSamples(n int) {
	m.settings.Samples = clampSamples(n)
}

// SetShowMirror 设置是否绘制反转曲线
func (m *Manager) SetShowMirror(enabled bool) {
	m.settings.ShowMirror = enabled
}

// SetSpeed 设置播放速度，限制在 MinSpeed ~ MaxSpeed
func (m *Manager) SetSpeed(speed float64) {
	m.settings.Speed = clampSpeed(speed)
}

func clampSamples(n int) int {
	if n < MinSamples {
		return MinSamples
	}
	if n > MaxSamples {
		return MaxSamples
	}
	return n
}

func clampSpeed(speed float64) float64 {
	if speed < MinSpeed {
		return MinSpeed
	}
	if speed > MaxSpeed {
		return MaxSpeed
	}
	return speed
}
