package viewer

import "github.com/gonewx/easing/pkg/easing"

// Point 屏幕坐标
type Point struct {
	X, Y float64
}

// PlotBox 曲线绘图区域
//
// 单位正方形 [0,1]×[0,1] 映射到以 (X, Y) 为左上角、边长为 Size 的方形，
// y 轴向上。back、elastic 等曲线会超出方形，不做裁剪。
type PlotBox struct {
	X, Y float64
	Size float64
}

// DefaultPlotBox 返回居中偏左、上下留出过冲空间的绘图区域
func DefaultPlotBox() PlotBox {
	size := float64(ScreenHeight) * 0.55
	return PlotBox{
		X:    (float64(ScreenWidth) - size) / 2,
		Y:    (float64(ScreenHeight) - size) / 2,
		Size: size,
	}
}

// Map 将曲线坐标 (t, v) 转换为屏幕坐标
func (b PlotBox) Map(t, v float64) (x, y float64) {
	return b.X + t*b.Size, b.Y + (1-v)*b.Size
}

// Points 在 [0, 1] 上均匀采样 samples 个区间，返回 samples+1 个屏幕坐标点
func (b PlotBox) Points(c easing.Curve, samples int) []Point {
	if samples < 1 {
		samples = 1
	}
	points := make([]Point, samples+1)
	for i := 0; i <= samples; i++ {
		t := float64(i) / float64(samples)
		x, y := b.Map(t, c.Apply(t))
		points[i] = Point{X: x, Y: y}
	}
	return points
}

// normalize 把 [lo, hi] 上的值线性映射到 [0, 1]；区间为空时返回 0.5
func normalize(value, lo, hi float64) float64 {
	if hi <= lo {
		return 0.5
	}
	return (value - lo) / (hi - lo)
}
