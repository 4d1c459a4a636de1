package resolver

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"github.com/seitarof/gen-webgpu-hpp/internal/model"
	"github.com/seitarof/gen-webgpu-hpp/internal/naming"
	"github.com/seitarof/gen-webgpu-hpp/internal/spec"
)

// ResolveParameter resolves the type of p, wraps it in a pointer when the
// spec asks for one, and resolves its default value against that type.
func (r *resolverImpl) ResolveParameter(p spec.Parameter) (model.Parameter, error) {
	typ, err := r.ResolveType(spec.Str(p.Type))
	if err != nil {
		return model.Parameter{}, err
	}

	if _, isArray := typ.(model.ArrayType); p.Pointer != "" && !isArray {
		reference := !p.Optional
		// a reference to an untyped pointee is meaningless
		if _, isVoid := typ.(model.VoidType); isVoid {
			reference = false
		}
		typ = model.PointerType{
			Inner:     typ,
			Mutable:   p.Pointer == spec.PointerMutable,
			Reference: reference,
		}
	}

	out := model.Parameter{
		Type: typ,
		Doc:  spec.Str(p.Doc),
	}
	if p.Name != nil {
		out.Name = naming.CamelCase(*p.Name)
	}
	if p.Default != nil {
		v, err := r.ResolveDefault(*p.Default, typ)
		if err != nil {
			return model.Parameter{}, err
		}
		out.Default = v
	}
	return out, nil
}

// ResolveDefault maps a literal onto a Value. A bare name must be a variant
// of t, so t has to be an enum or a flags type.
func (r *resolverImpl) ResolveDefault(lit spec.Literal, t model.Type) (model.Value, error) {
	switch lit.Kind {
	case spec.LiteralBool:
		if lit.Bool {
			return model.ConstantValue{Token: "true"}, nil
		}
		return model.ConstantValue{Token: "false"}, nil
	case spec.LiteralInt:
		return model.IntValue{Value: lit.Int}, nil
	case spec.LiteralFloat:
		return model.FloatValue{Value: lit.Float}, nil
	case spec.LiteralHex:
		v, err := safecast.Conv[int64](lit.Hex)
		if err != nil {
			return nil, &spec.SchemaError{Reason: fmt.Sprintf("hex default 0x%x out of range: %v", lit.Hex, err)}
		}
		return model.IntValue{Value: v, Hex: true}, nil
	case spec.LiteralConstant:
		return model.ConstantValue{Token: r.abi.ConstantPrefix + strings.ToUpper(lit.Text)}, nil
	case spec.LiteralZero:
		return model.ZeroValue{}, nil
	case spec.LiteralName:
		variant := naming.SanitizeIdentifier(naming.PascalCase(lit.Text))
		switch v := t.(type) {
		case model.FlagsType:
			return model.ConstantValue{Token: v.Name + "::" + variant}, nil
		case model.NamedType:
			if v.Kind == model.KindEnum {
				return model.ConstantValue{Token: v.Wrapper() + "::" + variant}, nil
			}
		}
		return nil, &spec.SchemaError{
			Reason: fmt.Sprintf("default %q names a variant but %s is neither an enum nor a flags type", lit.Text, t.Wrapper()),
		}
	default:
		return nil, &spec.SchemaError{Reason: fmt.Sprintf("unsupported default literal kind %v", lit.Kind)}
	}
}

// enumValue computes the value of the entry at index i. Explicit values and
// combinations win; otherwise bitflags get prefix for index 0 and
// prefix|1<<(i-1) afterwards, and plain enums get prefix|i.
func enumValue(entry *spec.EnumEntry, i int, prefix uint64, bitflag bool) (model.Value, error) {
	if len(entry.ValueCombination) > 0 {
		names := make([]string, 0, len(entry.ValueCombination))
		for _, n := range entry.ValueCombination {
			names = append(names, naming.SanitizeIdentifier(naming.PascalCase(n)))
		}
		return model.CombinationValue{Variants: names}, nil
	}

	if entry.Value != nil {
		switch entry.Value.Kind {
		case spec.LiteralInt:
			return model.IntValue{Value: entry.Value.Int}, nil
		case spec.LiteralHex:
			v, err := safecast.Conv[int64](entry.Value.Hex)
			if err != nil {
				return nil, &spec.SchemaError{Reason: fmt.Sprintf("value 0x%x out of range: %v", entry.Value.Hex, err)}
			}
			return model.IntValue{Value: v, Hex: true}, nil
		default:
			return nil, &spec.SchemaError{Reason: fmt.Sprintf("enum value must be an integer, got %v", entry.Value.Kind)}
		}
	}

	var raw uint64
	switch {
	case !bitflag:
		if _, err := safecast.Conv[uint32](prefix | uint64(i)); err != nil {
			return nil, &spec.SchemaError{Reason: fmt.Sprintf("implicit value of entry %d does not fit uint32_t: %v", i, err)}
		}
		raw = prefix | uint64(i)
	case i == 0:
		raw = prefix
	case i-1 < 64:
		raw = prefix | 1<<(i-1)
	default:
		return nil, &spec.SchemaError{Reason: fmt.Sprintf("bitflag entry %d exceeds 64 bits", i)}
	}

	v, err := safecast.Conv[int64](raw)
	if err != nil {
		return nil, &spec.SchemaError{Reason: fmt.Sprintf("implicit value of entry %d out of range: %v", i, err)}
	}
	return model.IntValue{Value: v}, nil
}
