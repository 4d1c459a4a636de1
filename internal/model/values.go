package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value is one of ZeroValue, ConstantValue, IntValue, FloatValue or
// CombinationValue. Rendering is pure.
type Value interface {
	Render() string
	isValue()
}

// ZeroValue value-initializes the target.
type ZeroValue struct{}

func (ZeroValue) Render() string { return "{}" }
func (ZeroValue) isValue()       {}

// ConstantValue is a token emitted verbatim, such as "true",
// "WGPU_WHOLE_SIZE" or "TextureDimension::_2D".
type ConstantValue struct {
	Token string
}

func (v ConstantValue) Render() string { return v.Token }
func (ConstantValue) isValue()         {}

type IntValue struct {
	Value int64
	Hex   bool
}

func (v IntValue) Render() string {
	if v.Hex {
		return fmt.Sprintf("0x%x", v.Value)
	}
	return strconv.FormatInt(v.Value, 10)
}

func (IntValue) isValue() {}

// FloatValue renders as a float literal with an 'f' suffix.
type FloatValue struct {
	Value float64
}

func (v FloatValue) Render() string {
	return formatFloat(v.Value) + "f"
}

func (FloatValue) isValue() {}

// CombinationValue ORs variants of the enclosing enum together.
type CombinationValue struct {
	Variants []string
}

func (v CombinationValue) Render() string {
	return strings.Join(v.Variants, " | ")
}

func (CombinationValue) isValue() {}

// formatFloat uses the shortest representation, switching to an exponent
// outside [1e-4, 1e16) and always keeping a decimal point: 1 -> "1.0",
// 0.00001 -> "1e-05".
func formatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	if f != 0 {
		exp := math.Floor(math.Log10(math.Abs(f)))
		if exp < -4 || exp >= 16 {
			return strconv.FormatFloat(f, 'e', -1, 64)
		}
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
