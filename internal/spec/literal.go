package spec

import (
	"fmt"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"
)

// LiteralKind classifies a literal once, when the document is decoded.
type LiteralKind int

const (
	LiteralBool LiteralKind = iota
	LiteralInt
	LiteralFloat
	LiteralHex
	LiteralConstant
	LiteralZero
	LiteralName
)

func (k LiteralKind) String() string {
	switch k {
	case LiteralBool:
		return "bool"
	case LiteralInt:
		return "int"
	case LiteralFloat:
		return "float"
	case LiteralHex:
		return "hex"
	case LiteralConstant:
		return "constant"
	case LiteralZero:
		return "zero"
	case LiteralName:
		return "name"
	default:
		return "unknown"
	}
}

const (
	hexPrefix      = "0x"
	constantPrefix = "constant."
	zeroSentinel   = "zero"
)

// Literal is a scalar from the document: a default value, an explicit enum
// value or the enum prefix.
type Literal struct {
	Kind  LiteralKind
	Bool  bool
	Int   int64
	Hex   uint64
	Float float64
	// Text is the constant name (without "constant.") or the variant name.
	Text string
}

// ParseLiteral classifies a string scalar.
func ParseLiteral(s string) (Literal, error) {
	switch {
	case strings.HasPrefix(s, hexPrefix):
		v, err := strconv.ParseUint(s[len(hexPrefix):], 16, 64)
		if err != nil {
			return Literal{}, fmt.Errorf("invalid hex literal %q: %w", s, err)
		}
		return Literal{Kind: LiteralHex, Hex: v}, nil
	case strings.HasPrefix(s, constantPrefix):
		return Literal{Kind: LiteralConstant, Text: s[len(constantPrefix):]}, nil
	case s == zeroSentinel:
		return Literal{Kind: LiteralZero}, nil
	default:
		return Literal{Kind: LiteralName, Text: s}, nil
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *Literal) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: literal must be a scalar", node.Line)
	}

	switch node.ShortTag() {
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return err
		}
		*l = Literal{Kind: LiteralBool, Bool: b}
	case "!!int":
		var i int64
		if err := node.Decode(&i); err != nil {
			return fmt.Errorf("line %d: integer literal %q: %w", node.Line, node.Value, err)
		}
		*l = Literal{Kind: LiteralInt, Int: i}
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return err
		}
		*l = Literal{Kind: LiteralFloat, Float: f}
	case "!!str":
		parsed, err := ParseLiteral(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*l = parsed
	default:
		return fmt.Errorf("line %d: unsupported literal tag %s", node.Line, node.ShortTag())
	}
	return nil
}

// Integer returns the unsigned value of an integer-shaped literal. Decimal
// strings are accepted so that "enum_prefix" may be quoted either way.
func (l Literal) Integer() (uint64, bool) {
	switch l.Kind {
	case LiteralHex:
		return l.Hex, true
	case LiteralInt:
		if l.Int < 0 {
			return 0, false
		}
		return uint64(l.Int), true
	case LiteralName:
		v, err := strconv.ParseUint(l.Text, 10, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	default:
		return 0, false
	}
}
