// Package easing 提供动画缓动曲线（Easing Curve）
//
// 缓动曲线把归一化进度 t ∈ [0, 1] 映射为塑形后的进度，用于驱动属性插值。
// 支持的曲线族：back, bounce, circular, cubic, elastic, exponential,
// linear, quadratic, quartic, quintic, sine，以及恒等曲线 none 和自定义回调。
//
// 每个曲线族都可以按三种方向使用：
//   - In: 从静止开始加速（原始曲线）
//   - Out: 减速到静止（原始曲线关于 (0.5, 0.5) 的点对称）
//   - InOut: 前半段用 In，后半段用 Out，在 (0.5, 0.5) 处拼接
//
// 参考：http://libclaw.sourceforge.net/tweeners.html
package easing

import "math"

// Family 曲线族
type Family uint8

const (
	None Family = iota
	Back
	Bounce
	Circular
	Cubic
	Elastic
	Exponential
	Linear
	Quadratic
	Quartic
	Quintic
	Sine
	Callback

	familyCount // 哨兵值，不是可用的曲线族
)

var familyNames = [familyCount]string{
	"none",
	"back",
	"bounce",
	"circular",
	"cubic",
	"elastic",
	"exponential",
	"linear",
	"quadratic",
	"quartic",
	"quintic",
	"sine",
	"callback",
}

// Families 返回所有具名曲线族（不含 None 和 Callback），按枚举顺序排列
func Families() []Family {
	return []Family{Back, Bounce, Circular, Cubic, Elastic, Exponential, Linear, Quadratic, Quartic, Quintic, Sine}
}

// Valid 报告 f 是否在已知枚举范围内
func (f Family) Valid() bool {
	return f < familyCount
}

// String 返回曲线族的小写名称，越界值返回 "unknown"
func (f Family) String() string {
	if !f.Valid() {
		return "unknown"
	}
	return familyNames[f]
}

// Shape 计算曲线族的原始 In 形状
//
// None、未绑定函数的 Callback 以及越界值都按恒等映射处理（返回 t），
// 这是约定的降级行为而不是错误。绑定了函数的 Callback 由 Curve 负责分派。
func (f Family) Shape(t float64) float64 {
	switch f {
	case Back:
		return BackIn(t)
	case Bounce:
		return BounceIn(t)
	case Circular:
		return CircularIn(t)
	case Cubic:
		return CubicIn(t)
	case Elastic:
		return ElasticIn(t)
	case Exponential:
		return ExponentialIn(t)
	case Linear:
		return LinearIn(t)
	case Quadratic:
		return QuadraticIn(t)
	case Quartic:
		return QuarticIn(t)
	case Quintic:
		return QuinticIn(t)
	case Sine:
		return SineIn(t)
	case None:
		return t
	case Callback:
		// 没有回调可调用
		return t
	default:
		// 越界的枚举值
		return t
	}
}

// 以下为各曲线族的 In 形状。公式只在 [0, 1] 上有意义，
// 但对任意实数都按同一闭式计算，不做截断。

// BackIn 回退缓入：先向反方向少许回拉再加速
// 公式：f(t) = t²(2.70158t - 1.70158)
func BackIn(t float64) float64 {
	return t * t * (2.70158*t - 1.70158)
}

// BounceIn 弹跳缓入
//
// 由四段抛物线拼接，区间宽度依次为 1/2.75、2/2.75、2.5/2.75、2.625/2.75（自 t=1 向左），
// 每个断点处左右两段取值相同。
func BounceIn(t float64) float64 {
	const k = 7.5625
	switch {
	case t > 1-1/2.75:
		return 1 - k*square(1-t)
	case t > 1-2/2.75:
		return 1 - (k*square(1-t-1.5/2.75) + 0.75)
	case t > 1-2.5/2.75:
		return 1 - (k*square(1-t-2.25/2.75) + 0.9375)
	}
	return 1 - (k*square(1-t-2.625/2.75) + 0.984375)
}

// CircularIn 圆弧缓入
// 公式：f(t) = 1 - √(1 - t²)
func CircularIn(t float64) float64 {
	return 1 - math.Sqrt(1-t*t)
}

// CubicIn 三次方缓入
func CubicIn(t float64) float64 {
	return t * t * t
}

// ElasticIn 弹性缓入，边界处精确返回 0 和 1
// 公式：f(t) = -e^(7.24(t-1)) · sin((t-1.1)·2π/0.4)
func ElasticIn(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	return -math.Exp(7.24*(t-1)) * math.Sin((t-1.1)*2*math.Pi/0.4)
}

// ExponentialIn 指数缓入，边界处精确返回 0 和 1
// 公式：f(t) = e^(7.24(t-1))
func ExponentialIn(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	return math.Exp(7.24 * (t - 1))
}

// LinearIn 线性（无缓动）
func LinearIn(t float64) float64 {
	return t
}

// QuadraticIn 二次方缓入
func QuadraticIn(t float64) float64 {
	return t * t
}

// QuarticIn 四次方缓入
func QuarticIn(t float64) float64 {
	return t * t * t * t
}

// QuinticIn 五次方缓入
func QuinticIn(t float64) float64 {
	return t * t * t * t * t
}

// SineIn 正弦缓入
// 公式：f(t) = 1 - cos(tπ/2)
func SineIn(t float64) float64 {
	return 1 - math.Cos(t*math.Pi*0.5)
}

func square(t float64) float64 {
	return t * t
}
