package easing

// Direction 曲线方向，位掩码
type Direction uint8

const (
	In    Direction = 1 << iota // 缓入：从静止加速
	Out                         // 缓出：减速到静止
	InOut = In | Out            // 缓入缓出
)

// String 返回方向名称（"in"、"out"、"in-out"），其他值返回 "unknown"
func (d Direction) String() string {
	switch d {
	case In:
		return "in"
	case Out:
		return "out"
	case InOut:
		return "in-out"
	}
	return "unknown"
}

// ShapeFunc 自定义塑形函数
type ShapeFunc func(t float64) float64

// Shaper 装箱后的自定义塑形函数，对应曲线族 Callback
//
// Curve 之间按 *Shaper 指针身份比较：即使两个 Shaper 包装了行为相同的函数，
// 只要不是同一个实例，对应的曲线就不相等。
type Shaper struct {
	fn ShapeFunc
}

// NewShaper 包装一个自定义塑形函数
func NewShaper(fn ShapeFunc) *Shaper {
	return &Shaper{fn: fn}
}

// Shape 调用被包装的函数；nil 或空函数按恒等映射处理
func (s *Shaper) Shape(t float64) float64 {
	if s == nil || s.fn == nil {
		return t
	}
	return s.fn(t)
}

// Curve 缓动曲线
//
// Curve 是值类型，可直接复制和用 == 比较。零值是恒等曲线（"none"）。
// 除 Reverse 外所有方法都是只读的，同一实例可以被多个 goroutine 并发求值；
// Reverse 与其他调用之间需要由调用方自行同步。
type Curve struct {
	in       Family  // 前半段（或仅有 In 时）使用的曲线族
	out      Family  // 后半段（或仅有 Out 时）使用的曲线族
	callback *Shaper // 仅当某个槽位为 Callback 时有意义
}

// New 按曲线族和方向创建曲线
//
// dir 包含 In 时设置入口曲线族，包含 Out 时设置出口曲线族；
// InOut 得到对称曲线。
func New(family Family, dir Direction) Curve {
	var c Curve
	if dir&In != 0 {
		c.in = family
	}
	if dir&Out != 0 {
		c.out = family
	}
	return c
}

// Default 返回默认曲线 linear-out，用于声明中省略曲线的场合
func Default() Curve {
	return New(Linear, Out)
}

// NewPair 直接指定入口和出口曲线族，得到非对称曲线
func NewPair(in, out Family) Curve {
	return Curve{in: in, out: out}
}

// NewFunc 用自定义回调创建曲线
//
// 按 dir 选中的槽位被设为 Callback。每条曲线只保存一个回调，
// 以 InOut 创建时前后两半调用的是同一个函数。
func NewFunc(s *Shaper, dir Direction) Curve {
	c := New(Callback, dir)
	c.callback = s
	return c
}

// FromFunc 是 NewFunc(NewShaper(fn), dir) 的简写
func FromFunc(fn ShapeFunc, dir Direction) Curve {
	return NewFunc(NewShaper(fn), dir)
}

// In 返回入口曲线族
func (c Curve) In() Family { return c.in }

// Out 返回出口曲线族
func (c Curve) Out() Family { return c.out }

// Shaper 返回曲线持有的回调，可能为 nil
func (c Curve) Shaper() *Shaper { return c.callback }

// Apply 计算进度 t 对应的缓动值
//
// t 通常位于 [0, 1]，但不做截断，超出范围时沿用同一闭式公式。
func (c Curve) Apply(t float64) float64 {
	switch {
	case c.in != None && c.out == None:
		return c.evalIn(t)
	case c.in == None && c.out != None:
		return c.evalOut(t)
	case c.in != None && c.out != None:
		return c.evalInOut(t)
	}
	return t
}

// Reverse 交换入口和出口曲线族（用于倒放），不改变回调绑定
func (c *Curve) Reverse() {
	c.in, c.out = c.out, c.in
}

// Reversed 返回交换入口和出口后的副本
func (c Curve) Reversed() Curve {
	c.Reverse()
	return c
}

// Equal 报告两条曲线是否相同：曲线族相同且回调为同一实例
func (c Curve) Equal(other Curve) bool {
	return c == other
}

// HasCallback 报告曲线是否有槽位使用自定义回调
func (c Curve) HasCallback() bool {
	return c.in == Callback || c.out == Callback
}

func (c Curve) shape(f Family, t float64) float64 {
	if f == Callback {
		return c.callback.Shape(t)
	}
	return f.Shape(t)
}

func (c Curve) evalIn(t float64) float64 {
	return c.shape(c.in, t)
}

// evalOut: 时间反转 + 数值反转，把 In 曲线变成 Out 曲线
func (c Curve) evalOut(t float64) float64 {
	return 1 - c.shape(c.out, 1-t)
}

func (c Curve) evalInOut(t float64) float64 {
	if t < 0.5 {
		return c.shape(c.in, 2*t) * 0.5
	}
	return 0.5 + c.evalOut(2*t-1)*0.5
}
