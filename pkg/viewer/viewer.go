// Package viewer implements an interactive easing curve viewer on top of ebiten.
//
// Controls:
//
//	Left/Right Arrow  - Switch to previous/next curve family
//	Up/Down Arrow     - Cycle direction (in / out / in-out)
//	Page Up/Down      - Switch to previous/next preset
//	R                 - Reverse the current curve (swap in/out)
//	M                 - Toggle mirrored (reversed) curve overlay
//	[ / ]             - Decrease/increase playback speed
//	- / =             - Decrease/increase sample count
//	Space             - Toggle pause
//	S                 - Save settings
//	Q/Escape          - Quit
package viewer

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/gonewx/easing/internal/keyframe"
	"github.com/gonewx/easing/pkg/config"
	"github.com/gonewx/easing/pkg/easing"
	"github.com/gonewx/easing/pkg/settings"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

const (
	ScreenWidth  = 1024
	ScreenHeight = 768

	// 未选中预设时播放一次曲线（不含停顿）的时长（秒）
	cycleSeconds = 2.0
	// 每次播放结束后的停顿（秒）
	holdSeconds = 0.5
)

// ErrQuit is returned from Update when the user asks to close the viewer.
var ErrQuit = errors.New("quit requested")

var directions = []easing.Direction{easing.In, easing.Out, easing.InOut}

var (
	backgroundColor = color.RGBA{25, 25, 38, 255}
	gridColor       = color.RGBA{60, 60, 80, 255}
	linearColor     = color.RGBA{90, 90, 110, 255}
	curveColor      = colornames.Orange
	mirrorColor     = colornames.Steelblue
	dotColor        = colornames.White
)

// Viewer implements the ebiten.Game interface for the curve viewer.
type Viewer struct {
	settings *settings.Manager
	presets  *config.CurvePresetConfig

	familyIndex int // index into easing.Families()
	dirIndex    int // index into directions
	presetIndex int // -1 when the curve was chosen by family/direction

	curve    easing.Curve
	track    *keyframe.Track // active preset's keyframe track, nil without a preset
	duration float64         // play time of one cycle in seconds

	elapsed  float64
	progress float64 // normalized time of the current cycle, 0-1
	paused   bool

	statusMessage string
}

// New creates a viewer. presets may be nil, in which case the built-in presets are used.
// The initial curve is taken from the settings.
func New(sm *settings.Manager, presets *config.CurvePresetConfig) *Viewer {
	if presets == nil {
		presets = config.DefaultCurvePresets()
	}

	v := &Viewer{
		settings:    sm,
		presets:     presets,
		presetIndex: -1,
		duration:    cycleSeconds,
	}
	v.SetCurve(sm.Get().Curve)
	return v
}

// Curve returns the curve currently displayed.
func (v *Viewer) Curve() easing.Curve {
	return v.curve
}

// SetCurve leaves preset mode and displays c.
func (v *Viewer) SetCurve(c easing.Curve) {
	v.presetIndex = -1
	v.track = nil
	v.duration = cycleSeconds
	v.showCurve(c)
}

// showCurve displays c, restarts the clock and syncs the family/direction
// cursors with it where possible. Preset state is left untouched.
func (v *Viewer) showCurve(c easing.Curve) {
	v.curve = c
	v.elapsed = 0
	v.progress = 0

	family := c.In()
	if family == easing.None {
		family = c.Out()
	}
	for i, f := range easing.Families() {
		if f == family {
			v.familyIndex = i
			break
		}
	}
	for i, d := range directions {
		if easing.New(family, d) == c {
			v.dirIndex = i
			break
		}
	}

	if err := v.settings.SetCurve(c); err != nil {
		log.Printf("[Viewer] Warning: %v", err)
	}
	v.statusMessage = fmt.Sprintf("Selected: %s", c)
}

// SelectPreset switches to the named preset. It reports whether the preset exists.
func (v *Viewer) SelectPreset(name string) bool {
	for i, preset := range v.presets.Presets {
		if preset.Name == name {
			v.selectPresetIndex(i)
			return true
		}
	}
	return false
}

func (v *Viewer) selectPresetIndex(i int) {
	n := len(v.presets.Presets)
	if n == 0 {
		return
	}
	i = ((i % n) + n) % n
	preset := v.presets.Presets[i]
	v.showCurve(preset.Curve)
	v.presetIndex = i
	v.duration = preset.Duration

	v.track = nil
	track, err := preset.KeyframeTrack()
	if err != nil {
		log.Printf("[Viewer] Warning: preset %q has no usable track: %v", preset.Name, err)
	} else {
		v.track = &track
	}

	v.statusMessage = fmt.Sprintf("Preset: %s (%s, %.2fs)", preset.Name, preset.Curve, preset.Duration)
}

func (v *Viewer) stepFamily(delta int) {
	families := easing.Families()
	v.familyIndex = ((v.familyIndex+delta)%len(families) + len(families)) % len(families)
	v.SetCurve(easing.New(families[v.familyIndex], directions[v.dirIndex]))
}

func (v *Viewer) stepDirection(delta int) {
	v.dirIndex = ((v.dirIndex+delta)%len(directions) + len(directions)) % len(directions)
	v.SetCurve(easing.New(easing.Families()[v.familyIndex], directions[v.dirIndex]))
}

// reverse 倒放：交换曲线的入口和出口；预设的关键帧轨道一并倒放
func (v *Viewer) reverse() {
	c := v.curve
	c.Reverse()
	v.showCurve(c)
	if v.track != nil {
		v.track.Reverse()
	}
	v.statusMessage = fmt.Sprintf("Reversed: %s", c)
}

// advance moves the demo clock forward by dt seconds and updates progress.
// One cycle is the play time (v.duration) followed by holdSeconds at the end.
func (v *Viewer) advance(dt float64) {
	if !v.paused {
		v.elapsed += dt * v.settings.Get().Speed
	}
	total := v.duration + holdSeconds
	for v.elapsed >= total {
		v.elapsed -= total
	}
	if v.elapsed >= v.duration {
		v.progress = 1
	} else {
		v.progress = v.elapsed / v.duration
	}
}

// trackValue 返回预设关键帧轨道在当前进度的取值；没有轨道时 ok 为 false
func (v *Viewer) trackValue() (value float64, ok bool) {
	if v.track == nil {
		return 0, false
	}
	return v.track.Evaluate(v.progress), true
}

// Update handles input and advances the demo animation.
func (v *Viewer) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrQuit
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		v.stepFamily(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		v.stepFamily(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		v.stepDirection(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		v.stepDirection(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		v.selectPresetIndex(v.presetIndex - 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		v.selectPresetIndex(v.presetIndex + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		v.reverse()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		v.settings.SetShowMirror(!v.settings.Get().ShowMirror)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		v.settings.SetSpeed(v.settings.Get().Speed / 1.5)
		v.statusMessage = fmt.Sprintf("Speed: %.2fx", v.settings.Get().Speed)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		v.settings.SetSpeed(v.settings.Get().Speed * 1.5)
		v.statusMessage = fmt.Sprintf("Speed: %.2fx", v.settings.Get().Speed)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		v.settings.SetSamples(v.settings.Get().Samples / 2)
		v.statusMessage = fmt.Sprintf("Samples: %d", v.settings.Get().Samples)
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		v.settings.SetSamples(v.settings.Get().Samples * 2)
		v.statusMessage = fmt.Sprintf("Samples: %d", v.settings.Get().Samples)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		v.paused = !v.paused
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		if err := v.settings.Save(); err != nil {
			log.Printf("[Viewer] Failed to save settings: %v", err)
			v.statusMessage = fmt.Sprintf("Error: %v", err)
		} else {
			v.statusMessage = "Settings saved"
		}
	}

	v.advance(dt)
	return nil
}

// Draw renders the plot and the overlay UI.
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	box := DefaultPlotBox()
	v.drawGrid(screen, box)

	s := v.settings.Get()
	if s.ShowMirror {
		drawPolyline(screen, box.Points(v.curve.Reversed(), s.Samples), mirrorColor)
	}
	drawPolyline(screen, box.Points(v.curve, s.Samples), curveColor)

	// 沿曲线移动的点，以及右侧的进度条；有关键帧轨道时进度条显示轨道取值
	p := v.progress
	x, y := box.Map(p, v.curve.Apply(p))
	vector.DrawFilledCircle(screen, float32(x), float32(y), 6, dotColor, true)

	level := v.curve.Apply(p)
	if value, ok := v.trackValue(); ok {
		lo, hi := v.track.Range()
		level = normalize(value, lo, hi)
	}
	barX := box.X + box.Size + 60
	_, barY := box.Map(0, level)
	vector.StrokeLine(screen, float32(barX-20), float32(barY), float32(barX+20), float32(barY), 3, curveColor, true)

	v.drawUI(screen)
}

func (v *Viewer) drawGrid(screen *ebiten.Image, box PlotBox) {
	vector.StrokeRect(screen, float32(box.X), float32(box.Y), float32(box.Size), float32(box.Size), 1, gridColor, false)
	for i := 1; i < 4; i++ {
		x, _ := box.Map(float64(i)/4, 0)
		_, y := box.Map(0, float64(i)/4)
		vector.StrokeLine(screen, float32(x), float32(box.Y), float32(x), float32(box.Y+box.Size), 1, gridColor, false)
		vector.StrokeLine(screen, float32(box.X), float32(y), float32(box.X+box.Size), float32(y), 1, gridColor, false)
	}
	x0, y0 := box.Map(0, 0)
	x1, y1 := box.Map(1, 1)
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, linearColor, true)
}

func drawPolyline(screen *ebiten.Image, points []Point, clr color.Color) {
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 2, clr, true)
	}
}

func (v *Viewer) drawUI(screen *ebiten.Image) {
	s := v.settings.Get()
	p := v.progress

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Easing Curve Viewer - %s", v.curve), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("t = %.3f  value = %.4f", p, v.curve.Apply(p)), 10, 30)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Samples: %d  Speed: %.2fx  Mirror: %v", s.Samples, s.Speed, s.ShowMirror), 10, 50)
	if v.presetIndex >= 0 {
		preset := v.presets.Presets[v.presetIndex]
		line := fmt.Sprintf("Preset %d/%d: %s  %.2fs", v.presetIndex+1, len(v.presets.Presets), preset.Name, preset.Duration)
		if value, ok := v.trackValue(); ok {
			line += fmt.Sprintf("  track [%s] = %.3f", v.track, value)
		}
		ebitenutil.DebugPrintAt(screen, line, 10, 70)
	}
	if v.statusMessage != "" {
		ebitenutil.DebugPrintAt(screen, v.statusMessage, 10, 90)
	}

	controls := []string{
		"Curve:    <-/-> = Family  Up/Down = Direction  PgUp/PgDn = Preset  R = Reverse",
		"View:     M = Mirror  [/] = Speed  -/= = Samples  Space = Pause  S = Save  Q = Quit",
	}
	y := ScreenHeight - len(controls)*20 - 10
	for i, line := range controls {
		ebitenutil.DebugPrintAt(screen, line, 10, y+i*20)
	}

	if v.paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED (Press Space to resume)", ScreenWidth-220, 10)
	}
}

// Layout returns the viewer's logical screen size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
