package resolver

import (
	"strings"

	"github.com/seitarof/gen-webgpu-hpp/internal/model"
	"github.com/seitarof/gen-webgpu-hpp/internal/naming"
)

// DefaultRules returns built-in type rules in priority order.
func DefaultRules() []TypeRule {
	return []TypeRule{
		&VoidRule{},
		&PrimitiveRule{Table: DefaultPrimitives()},
		&ArrayRule{},
		&DottedKindRule{},
	}
}

// DefaultPrimitives maps primitive spec tokens to their C++ spelling.
func DefaultPrimitives() map[string]string {
	return map[string]string{
		"bool":                      "Bool",
		"nullable_string":           "StringView",
		"string_with_default_empty": "StringView",
		"out_string":                "StringView",
		"int8":                      "int8_t",
		"uint8":                     "uint8_t",
		"int16":                     "int16_t",
		"uint16":                    "uint16_t",
		"int32":                     "int32_t",
		"uint32":                    "uint32_t",
		"int64":                     "int64_t",
		"uint64":                    "uint64_t",
		"usize":                     "size_t",
		"float32":                   "float",
		"nullable_float32":          "float",
		"float64":                   "double",
		"float64_supertype":         "double",
	}
}

// VoidRule: "c_void" -> void.
type VoidRule struct{}

func (r *VoidRule) Name() string { return "void" }

func (r *VoidRule) Try(_ TypeResolver, token string) (model.Type, bool, error) {
	if token == "c_void" {
		return model.VoidType{}, true, nil
	}
	return nil, false, nil
}

// PrimitiveRule: table lookup for scalar tokens.
type PrimitiveRule struct {
	Table map[string]string
}

func (r *PrimitiveRule) Name() string { return "primitive" }

func (r *PrimitiveRule) Try(_ TypeResolver, token string) (model.Type, bool, error) {
	if name, ok := r.Table[token]; ok {
		return model.PrimitiveType{Name: name}, true, nil
	}
	return nil, false, nil
}

// ArrayRule: "array<T>" -> Array(T). Must run before DottedKindRule since
// the element token usually contains a dot.
type ArrayRule struct{}

func (r *ArrayRule) Name() string { return "array" }

func (r *ArrayRule) Try(tr TypeResolver, token string) (model.Type, bool, error) {
	inner, ok := strings.CutPrefix(token, "array<")
	if !ok || !strings.HasSuffix(inner, ">") {
		return nil, false, nil
	}
	elem, err := tr.ResolveType(strings.TrimSuffix(inner, ">"))
	if err != nil {
		return nil, false, err
	}
	return model.ArrayType{Inner: elem}, true, nil
}

// DottedKindRule: "kind.name" -> Named(PascalCase(name), kind), with
// bitflags becoming Flags and callbacks gaining a "_callback_info" suffix.
type DottedKindRule struct{}

func (r *DottedKindRule) Name() string { return "dotted-kind" }

func (r *DottedKindRule) Try(_ TypeResolver, token string) (model.Type, bool, error) {
	kind, name, ok := strings.Cut(token, ".")
	if !ok || kind == "" || name == "" || strings.Contains(name, ".") {
		return nil, false, nil
	}

	switch model.Kind(kind) {
	case model.KindBitflag:
		return model.FlagsType{Name: naming.PascalCase(name)}, true, nil
	case model.KindCallback:
		name += callbackInfoSuffix
	}
	return model.NamedType{Name: naming.PascalCase(name), Kind: model.Kind(kind)}, true, nil
}

const callbackInfoSuffix = "_callback_info"
