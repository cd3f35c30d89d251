package easing

import (
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type curveDoc struct {
	Name  string `yaml:"name"`
	Curve Curve  `yaml:"curve"`
}

// TestYAMLMarshal 曲线以规范名称写入 YAML
func TestYAMLMarshal(t *testing.T) {
	tests := []struct {
		curve    Curve
		expected string
	}{
		{New(Cubic, InOut), "curve: cubic-in-out"},
		{NewPair(Back, Bounce), "curve: back-in-bounce-out"},
		{Curve{}, "curve: none"},
	}

	for _, tt := range tests {
		data, err := yaml.Marshal(curveDoc{Name: "x", Curve: tt.curve})
		if err != nil {
			t.Fatalf("yaml.Marshal 失败: %v", err)
		}
		if !strings.Contains(string(data), tt.expected) {
			t.Errorf("yaml.Marshal(%v) = %q, 期望包含 %q", tt.curve, data, tt.expected)
		}
	}
}

// TestYAMLUnmarshal 从 YAML 读取曲线
func TestYAMLUnmarshal(t *testing.T) {
	var doc curveDoc
	if err := yaml.Unmarshal([]byte("name: fade\ncurve: back-in-bounce-out\n"), &doc); err != nil {
		t.Fatalf("yaml.Unmarshal 失败: %v", err)
	}
	if doc.Curve != NewPair(Back, Bounce) {
		t.Errorf("Curve = %v, 期望 back-in-bounce-out", doc.Curve)
	}

	// 缺省字段保持零值
	doc = curveDoc{}
	if err := yaml.Unmarshal([]byte("name: fade\n"), &doc); err != nil {
		t.Fatalf("yaml.Unmarshal 失败: %v", err)
	}
	if doc.Curve != (Curve{}) {
		t.Errorf("缺省曲线 = %v, 期望 none", doc.Curve)
	}
}

// TestYAMLUnmarshalErrors 测试非法 YAML 曲线
func TestYAMLUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"未知曲线族", "curve: wobble-in\n", ErrUnknownFamily},
		{"非标量", "curve: [cubic, in]\n", ErrBadCurve},
		{"回调", "curve: callback-in\n", ErrCallbackCurve},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc curveDoc
			err := yaml.Unmarshal([]byte(tt.input), &doc)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("yaml.Unmarshal(%q) error = %v, 期望 %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

// TestMarshalCallbackCurve 回调曲线无法序列化
func TestMarshalCallbackCurve(t *testing.T) {
	c := FromFunc(QuadraticIn, In)
	if _, err := c.MarshalText(); !errors.Is(err, ErrCallbackCurve) {
		t.Errorf("MarshalText error = %v, 期望 ErrCallbackCurve", err)
	}
	if _, err := yaml.Marshal(curveDoc{Curve: c}); err == nil {
		t.Error("yaml.Marshal 回调曲线应失败")
	}
	if _, err := NewPair(Family(77), None).MarshalText(); !errors.Is(err, ErrBadCurve) {
		t.Errorf("越界曲线 MarshalText error = %v, 期望 ErrBadCurve", err)
	}
}

// TestTextRoundTrip 测试 encoding.TextMarshaler 往返
func TestTextRoundTrip(t *testing.T) {
	for _, f := range Families() {
		for _, dir := range []Direction{In, Out, InOut} {
			c := New(f, dir)
			text, err := c.MarshalText()
			if err != nil {
				t.Fatalf("MarshalText(%v) 失败: %v", c, err)
			}
			var back Curve
			if err := back.UnmarshalText(text); err != nil {
				t.Fatalf("UnmarshalText(%q) 失败: %v", text, err)
			}
			if back != c {
				t.Errorf("往返结果 %v, 期望 %v", back, c)
			}
		}
	}
}
