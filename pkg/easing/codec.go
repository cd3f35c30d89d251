package easing

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML 以规范名称序列化曲线
func (c Curve) MarshalYAML() (interface{}, error) {
	text, err := c.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML 从规范名称反序列化曲线
func (c *Curve) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: easing curve must be a scalar: %w", value.Line, ErrBadCurve)
	}
	parsed, err := Parse(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalText 实现 encoding.TextMarshaler
//
// 含回调或越界曲线族的曲线无法往返，返回错误。
func (c Curve) MarshalText() ([]byte, error) {
	if c.HasCallback() {
		return nil, ErrCallbackCurve
	}
	if !c.in.Valid() || !c.out.Valid() {
		return nil, fmt.Errorf("%w: family out of range", ErrBadCurve)
	}
	return []byte(c.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler
func (c *Curve) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
