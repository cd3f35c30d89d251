// Package keyframe 提供按关键帧插值的属性轨道
//
// 轨道由若干 (time, value) 关键帧和一条缓动曲线组成。求值时先找到 t 所在的区间，
// 用曲线对区间内的比例塑形，再在两个关键帧之间线性插值。
package keyframe

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/gonewx/easing/pkg/easing"
)

// ErrBadKeyframe 关键帧格式错误
var ErrBadKeyframe = errors.New("malformed keyframe")

// Keyframe 轨道上的单个关键帧
type Keyframe struct {
	Time  float64 // 归一化时间 (0-1)
	Value float64 // 该时刻的取值
}

// Track 关键帧轨道
type Track struct {
	Keyframes []Keyframe   // 按 Time 升序排列
	Curve     easing.Curve // 每个区间内使用的缓动曲线
}

// legacyKeywords 粒子配置中的旧插值关键字到缓动曲线的映射
//
// FastInOutWeak 原本是 smoothstep (3t² - 2t³)，曲线目录中没有，用 sine-in-out 近似。
var legacyKeywords = map[string]easing.Curve{
	"Linear":        easing.New(easing.Linear, easing.Out),
	"EaseIn":        easing.New(easing.Quadratic, easing.In),
	"EaseOut":       easing.New(easing.Quadratic, easing.Out),
	"FastInOutWeak": easing.New(easing.Sine, easing.InOut),
}

// ParseTrack 解析关键帧轨道声明
//
// 支持的格式：
//   - 关键帧: "0,2 1,2 4,21" → 三个 (time,value) 关键帧，曲线为默认的 linear-out
//   - 带曲线: "0,0 cubic-in-out 1,100" → 曲线名可出现在任意位置
//   - 旧关键字: "0,1 EaseIn 1,0" → 使用 legacyKeywords 中的映射
//
// 关键帧按时间排序（稳定排序，同一时刻保持声明顺序）。
func ParseTrack(s string) (Track, error) {
	return ParseTrackDefault(s, easing.Default())
}

// ParseTrackDefault 与 ParseTrack 相同，但声明中没有曲线名时使用 def
func ParseTrackDefault(s string, def easing.Curve) (Track, error) {
	track := Track{Curve: def}
	curveSeen := false

	for _, part := range strings.Fields(s) {
		if !strings.Contains(part, ",") {
			if curveSeen {
				return Track{}, fmt.Errorf("%w: more than one curve in %q", ErrBadKeyframe, s)
			}
			curve, err := parseCurveToken(part)
			if err != nil {
				return Track{}, err
			}
			track.Curve = curve
			curveSeen = true
			continue
		}

		pair := strings.Split(part, ",")
		if len(pair) != 2 {
			return Track{}, fmt.Errorf("%w: %q", ErrBadKeyframe, part)
		}
		time, err1 := strconv.ParseFloat(pair[0], 64)
		value, err2 := strconv.ParseFloat(pair[1], 64)
		if err1 != nil || err2 != nil {
			return Track{}, fmt.Errorf("%w: %q", ErrBadKeyframe, part)
		}
		track.Keyframes = append(track.Keyframes, Keyframe{Time: time, Value: value})
	}

	sort.SliceStable(track.Keyframes, func(i, j int) bool {
		return track.Keyframes[i].Time < track.Keyframes[j].Time
	})
	return track, nil
}

func parseCurveToken(token string) (easing.Curve, error) {
	if curve, ok := legacyKeywords[token]; ok {
		return curve, nil
	}
	curve, err := easing.Parse(token)
	if err != nil {
		return easing.Curve{}, fmt.Errorf("keyframe curve %q: %w", token, err)
	}
	return curve, nil
}

// Evaluate 计算 t (0-1) 时刻的插值结果
//
// t 会被限制在 [0, 1]；曲线本身不截断，但轨道在区间外直接返回端点值。
func (tr Track) Evaluate(t float64) float64 {
	keyframes := tr.Keyframes
	if len(keyframes) == 0 {
		return 0
	}
	if len(keyframes) == 1 {
		return keyframes[0].Value
	}

	t = math.Max(0, math.Min(1, t))

	if t < keyframes[0].Time {
		return keyframes[0].Value
	}

	for i := 0; i < len(keyframes)-1; i++ {
		k0 := keyframes[i]
		k1 := keyframes[i+1]

		if t >= k0.Time && t <= k1.Time {
			duration := k1.Time - k0.Time
			if duration <= 0 {
				return k0.Value
			}
			ratio := tr.Curve.Apply((t - k0.Time) / duration)
			return Lerp(k0.Value, k1.Value, ratio)
		}
	}

	return keyframes[len(keyframes)-1].Value
}

// Reverse 倒放轨道：关键帧时间镜像为 1-time，曲线入口出口互换
func (tr *Track) Reverse() {
	n := len(tr.Keyframes)
	reversed := make([]Keyframe, n)
	for i, k := range tr.Keyframes {
		reversed[n-1-i] = Keyframe{Time: 1 - k.Time, Value: k.Value}
	}
	tr.Keyframes = reversed
	tr.Curve.Reverse()
}

// Range 返回轨道关键帧取值的最小值和最大值；空轨道返回 (0, 0)
func (tr Track) Range() (lo, hi float64) {
	for i, k := range tr.Keyframes {
		if i == 0 || k.Value < lo {
			lo = k.Value
		}
		if i == 0 || k.Value > hi {
			hi = k.Value
		}
	}
	return lo, hi
}

// String 以 ParseTrack 可读取的格式输出轨道
func (tr Track) String() string {
	parts := make([]string, 0, len(tr.Keyframes)+1)
	for i, k := range tr.Keyframes {
		if i == 1 {
			parts = append(parts, tr.Curve.String())
		}
		parts = append(parts, strconv.FormatFloat(k.Time, 'g', -1, 64)+","+strconv.FormatFloat(k.Value, 'g', -1, 64))
	}
	if len(tr.Keyframes) < 2 {
		parts = append(parts, tr.Curve.String())
	}
	return strings.Join(parts, " ")
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
