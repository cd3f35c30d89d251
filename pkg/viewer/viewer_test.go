package viewer

import (
	"math"
	"testing"

	"github.com/gonewx/easing/pkg/config"
	"github.com/gonewx/easing/pkg/easing"
	"github.com/gonewx/easing/pkg/settings"
)

func newTestViewer(t *testing.T) *Viewer {
	t.Helper()
	return New(settings.NewManager(nil), nil)
}

// TestNewUsesSettingsCurve 初始曲线来自设置
func TestNewUsesSettingsCurve(t *testing.T) {
	v := newTestViewer(t)

	if v.Curve() != easing.New(easing.Cubic, easing.InOut) {
		t.Errorf("初始曲线 = %v, 期望 cubic-in-out", v.Curve())
	}
	if easing.Families()[v.familyIndex] != easing.Cubic {
		t.Errorf("familyIndex 指向 %v, 期望 cubic", easing.Families()[v.familyIndex])
	}
	if directions[v.dirIndex] != easing.InOut {
		t.Errorf("dirIndex 指向 %v, 期望 in-out", directions[v.dirIndex])
	}
	if v.presetIndex != -1 {
		t.Errorf("presetIndex = %d, 期望 -1", v.presetIndex)
	}
}

// TestStepFamily 左右切换曲线族，首尾循环
func TestStepFamily(t *testing.T) {
	v := newTestViewer(t)

	v.stepFamily(1)
	if v.Curve() != easing.New(easing.Elastic, easing.InOut) {
		t.Errorf("下一个曲线族 = %v, 期望 elastic-in-out", v.Curve())
	}

	v.SetCurve(easing.New(easing.Back, easing.Out))
	v.stepFamily(-1)
	if v.Curve() != easing.New(easing.Sine, easing.Out) {
		t.Errorf("从 back 向前 = %v, 期望 sine-out", v.Curve())
	}

	v.stepFamily(1)
	if v.Curve() != easing.New(easing.Back, easing.Out) {
		t.Errorf("从 sine 向后 = %v, 期望 back-out", v.Curve())
	}
}

// TestStepDirection 上下循环方向
func TestStepDirection(t *testing.T) {
	v := newTestViewer(t)

	expected := []easing.Curve{
		easing.New(easing.Cubic, easing.In),
		easing.New(easing.Cubic, easing.Out),
		easing.New(easing.Cubic, easing.InOut),
	}
	for i, want := range expected {
		v.stepDirection(1)
		if v.Curve() != want {
			t.Errorf("第 %d 次切换 = %v, 期望 %v", i+1, v.Curve(), want)
		}
	}

	v.stepDirection(-1)
	if v.Curve() != easing.New(easing.Cubic, easing.Out) {
		t.Errorf("反向切换 = %v, 期望 cubic-out", v.Curve())
	}
}

// TestReverse R 键交换入口和出口曲线
func TestReverse(t *testing.T) {
	v := newTestViewer(t)
	v.SetCurve(easing.NewPair(easing.Back, easing.Bounce))

	v.reverse()
	if v.Curve() != easing.NewPair(easing.Bounce, easing.Back) {
		t.Errorf("反转后 = %v, 期望 bounce-in-back-out", v.Curve())
	}

	// 反转同时写入设置
	if v.settings.Get().Curve != v.Curve() {
		t.Errorf("设置中的曲线 = %v, 期望 %v", v.settings.Get().Curve, v.Curve())
	}
}

// TestSelectPreset 按名称选择预设
func TestSelectPreset(t *testing.T) {
	v := newTestViewer(t)

	if !v.SelectPreset("drop") {
		t.Fatal("SelectPreset(drop) 应成功")
	}
	if v.Curve() != easing.New(easing.Bounce, easing.Out) {
		t.Errorf("drop 曲线 = %v, 期望 bounce-out", v.Curve())
	}
	if v.presetIndex != 3 {
		t.Errorf("presetIndex = %d, 期望 3", v.presetIndex)
	}

	if v.SelectPreset("missing") {
		t.Error("SelectPreset(missing) 应返回 false")
	}

	// 预设索引首尾循环
	v.selectPresetIndex(-1)
	last := config.DefaultCurvePresets().Presets[len(config.DefaultCurvePresets().Presets)-1]
	if v.Curve() != last.Curve {
		t.Errorf("selectPresetIndex(-1) = %v, 期望 %v", v.Curve(), last.Curve)
	}

	// 手动切换曲线族后退出预设模式
	v.stepFamily(1)
	if v.presetIndex != -1 {
		t.Errorf("切换曲线族后 presetIndex = %d, 期望 -1", v.presetIndex)
	}
}

// TestSelectPresetEmpty 空预设列表不改变曲线
func TestSelectPresetEmpty(t *testing.T) {
	v := New(settings.NewManager(nil), &config.CurvePresetConfig{})
	before := v.Curve()

	v.selectPresetIndex(0)
	if v.Curve() != before || v.presetIndex != -1 {
		t.Errorf("空预设列表: 曲线 %v, presetIndex %d", v.Curve(), v.presetIndex)
	}
}

// TestAdvance 演示时钟：播放、停顿、循环
func TestAdvance(t *testing.T) {
	v := newTestViewer(t)

	tests := []struct {
		name     string
		dt       float64
		expected float64
	}{
		{"播放一半", 1.0, 0.5},
		{"进入停顿", 1.25, 1.0},
		{"循环回起点", 0.25, 0.0},
		{"再次播放", 0.5, 0.25},
	}

	for _, tt := range tests {
		v.advance(tt.dt)
		if math.Abs(v.progress-tt.expected) > 1e-9 {
			t.Errorf("%s: advance(%v) 后 progress = %v, 期望 %v", tt.name, tt.dt, v.progress, tt.expected)
		}
	}
}

// TestAdvancePausedAndSpeed 暂停时时钟不动，速度缩放时钟
func TestAdvancePausedAndSpeed(t *testing.T) {
	v := newTestViewer(t)

	v.paused = true
	v.advance(1.0)
	if v.progress != 0 {
		t.Errorf("暂停时 progress = %v, 期望 0", v.progress)
	}

	v.paused = false
	v.settings.SetSpeed(2.0)
	v.advance(0.5)
	if math.Abs(v.progress-0.5) > 1e-9 {
		t.Errorf("2x 速度 advance(0.5) 后 progress = %v, 期望 0.5", v.progress)
	}
}

// TestPresetDuration 预设的时长决定一次播放的时间
func TestPresetDuration(t *testing.T) {
	v := newTestViewer(t)
	if !v.SelectPreset("drop") {
		t.Fatal("SelectPreset(drop) 应成功")
	}
	preset, _ := config.DefaultCurvePresets().Find("drop")

	v.advance(preset.Duration / 2)
	if math.Abs(v.progress-0.5) > 1e-9 {
		t.Errorf("播放一半时长后 progress = %v, 期望 0.5", v.progress)
	}

	v.advance(preset.Duration / 2)
	if v.progress != 1 {
		t.Errorf("播放完整时长后 progress = %v, 期望 1", v.progress)
	}

	// 停顿结束后回到起点
	v.advance(holdSeconds)
	if v.progress != 0 {
		t.Errorf("停顿结束后 progress = %v, 期望 0", v.progress)
	}

	// 退出预设后恢复默认时长
	v.SetCurve(easing.New(easing.Sine, easing.Out))
	v.advance(preset.Duration)
	if math.Abs(v.progress-preset.Duration/cycleSeconds) > 1e-9 {
		t.Errorf("退出预设后 progress = %v, 期望 %v", v.progress, preset.Duration/cycleSeconds)
	}
}

// TestPresetTrack 预设的关键帧轨道随进度求值，R 键倒放轨道
func TestPresetTrack(t *testing.T) {
	v := newTestViewer(t)

	if _, ok := v.trackValue(); ok {
		t.Error("未选中预设时不应有轨道")
	}

	v.SelectPreset("drop") // track "0,-120 1,0", bounce-out, 1.2s
	if value, ok := v.trackValue(); !ok || value != -120 {
		t.Errorf("起点轨道取值 = (%v, %v), 期望 (-120, true)", value, ok)
	}

	v.advance(1.2)
	if value, _ := v.trackValue(); math.Abs(value) > 1e-9 {
		t.Errorf("终点轨道取值 = %v, 期望 0", value)
	}

	v.reverse()
	if v.presetIndex != 3 {
		t.Errorf("倒放后 presetIndex = %d, 期望仍为 3", v.presetIndex)
	}
	if v.Curve() != easing.New(easing.Bounce, easing.In) {
		t.Errorf("倒放后曲线 = %v, 期望 bounce-in", v.Curve())
	}
	if value, _ := v.trackValue(); math.Abs(value) > 1e-9 {
		t.Errorf("倒放后起点轨道取值 = %v, 期望 0", value)
	}
	if lo, hi := v.track.Range(); lo != -120 || hi != 0 {
		t.Errorf("倒放后轨道范围 = (%v, %v), 期望 (-120, 0)", lo, hi)
	}

	// 无 track 声明的预设使用 0→1 轨道
	v.SelectPreset("fade")
	v.advance(0.25)
	want := easing.New(easing.Sine, easing.InOut).Apply(0.5)
	if value, ok := v.trackValue(); !ok || math.Abs(value-want) > 1e-9 {
		t.Errorf("fade 轨道取值 = (%v, %v), 期望 %v", value, ok, want)
	}
}

// TestSetCurveResetsClock 切换曲线后从头播放
func TestSetCurveResetsClock(t *testing.T) {
	v := newTestViewer(t)
	v.advance(1.0)

	v.SetCurve(easing.New(easing.Sine, easing.Out))
	if v.progress != 0 {
		t.Errorf("切换曲线后 progress = %v, 期望 0", v.progress)
	}
}

// TestSetCurveCallback 回调曲线可以显示，但不会写入设置
func TestSetCurveCallback(t *testing.T) {
	v := newTestViewer(t)
	before := v.settings.Get().Curve

	c := easing.FromFunc(easing.QuadraticIn, easing.Out)
	v.SetCurve(c)
	if !v.Curve().Equal(c) {
		t.Errorf("显示的曲线 = %v, 期望回调曲线", v.Curve())
	}
	if v.settings.Get().Curve != before {
		t.Errorf("设置中的曲线被改为 %v, 期望保持 %v", v.settings.Get().Curve, before)
	}
}

// TestLayout 逻辑屏幕尺寸固定
func TestLayout(t *testing.T) {
	v := newTestViewer(t)
	w, h := v.Layout(1920, 1080)
	if w != ScreenWidth || h != ScreenHeight {
		t.Errorf("Layout = %dx%d, 期望 %dx%d", w, h, ScreenWidth, ScreenHeight)
	}
}
