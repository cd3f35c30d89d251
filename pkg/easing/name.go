package easing

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownFamily 无法识别的曲线族名称
	ErrUnknownFamily = errors.New("unknown easing family")
	// ErrBadCurve 曲线名称格式错误
	ErrBadCurve = errors.New("malformed easing curve name")
	// ErrCallbackCurve 自定义回调曲线无法用文本表示
	ErrCallbackCurve = errors.New("callback curve has no textual form")
)

// String 返回曲线的规范名称
//
// 规则：
//   - 两端都是 None: "none"
//   - 两端相同（包括都是 Callback）: "<a>-in-out"
//   - 仅有出口: "<b>-out"
//   - 仅有入口: "<a>-in"
//   - 两端不同: "<a>-in-<b>-out"
//   - 任一端越界: "unknown"
func (c Curve) String() string {
	if !c.in.Valid() || !c.out.Valid() {
		return "unknown"
	}

	switch {
	case c.in == None && c.out == None:
		return "none"
	case c.in == c.out:
		return c.in.String() + "-in-out"
	case c.in == None:
		return c.out.String() + "-out"
	case c.out == None:
		return c.in.String() + "-in"
	}
	return c.in.String() + "-in-" + c.out.String() + "-out"
}

// ParseFamily 按名称查找曲线族（不区分大小写）
//
// "callback" 会被识别，由调用方决定是否接受。
func ParseFamily(name string) (Family, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range familyNames {
		if n == name {
			return Family(i), nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownFamily, name)
}

// Parse 把规范名称解析为曲线，是 String 的逆操作
//
// 接受的格式：
//
//	none
//	<family>-in
//	<family>-out
//	<family>-in-out
//	<in>-in-<out>-out
//
// 对所有不含回调的曲线 c 有 Parse(c.String()) == c。
func Parse(s string) (Curve, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "none" {
		return Curve{}, nil
	}

	parts := strings.Split(s, "-")
	switch {
	case len(parts) == 2 && parts[1] == "in":
		f, err := parseNamedFamily(parts[0])
		return New(f, In), err
	case len(parts) == 2 && parts[1] == "out":
		f, err := parseNamedFamily(parts[0])
		return New(f, Out), err
	case len(parts) == 3 && parts[1] == "in" && parts[2] == "out":
		f, err := parseNamedFamily(parts[0])
		return New(f, InOut), err
	case len(parts) == 4 && parts[1] == "in" && parts[3] == "out":
		in, err := parseNamedFamily(parts[0])
		if err != nil {
			return Curve{}, err
		}
		out, err := parseNamedFamily(parts[2])
		if err != nil {
			return Curve{}, err
		}
		return NewPair(in, out), nil
	}
	return Curve{}, fmt.Errorf("%w: %q", ErrBadCurve, s)
}

// MustParse 与 Parse 相同，解析失败时 panic。用于包级常量式的预设
func MustParse(s string) Curve {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// parseNamedFamily 只接受具名曲线族：none 只能单独出现，callback 无法从文本构造
func parseNamedFamily(name string) (Family, error) {
	f, err := ParseFamily(name)
	if err != nil {
		return None, err
	}
	switch f {
	case None:
		return None, fmt.Errorf("%w: %q cannot take a direction", ErrBadCurve, name)
	case Callback:
		return None, ErrCallbackCurve
	}
	return f, nil
}
