package resolver

import (
	"fmt"
	"strings"

	"github.com/seitarof/gen-webgpu-hpp/internal/model"
	"github.com/seitarof/gen-webgpu-hpp/internal/naming"
	"github.com/seitarof/gen-webgpu-hpp/internal/spec"
)

// futureType is returned by every function completing through a callback.
var futureType = model.NamedType{Name: "Future", Kind: model.KindStruct}

func (r *resolverImpl) resolveEnum(e spec.Enum, prefix uint64, bitflag bool) (model.Enum, error) {
	out := model.Enum{
		Name:     naming.PascalCase(spec.Str(e.Name)),
		Doc:      spec.Str(e.Doc),
		BaseType: model.PrimitiveType{Name: "uint32_t"},
		Bitflag:  bitflag,
	}
	if bitflag {
		out.BaseType = model.PrimitiveType{Name: r.abi.TypeName("Flags")}
	}

	for i, entry := range *e.Entries {
		if entry == nil {
			continue
		}
		value, err := enumValue(entry, i, prefix, bitflag)
		if err != nil {
			return model.Enum{}, fmt.Errorf("entries[%d]: %w", i, err)
		}
		out.Variants = append(out.Variants, model.Variant{
			Name:  naming.SanitizeIdentifier(naming.PascalCase(spec.Str(entry.Name))),
			Doc:   spec.Str(entry.Doc),
			Value: value,
		})
	}
	return out, nil
}

func (r *resolverImpl) resolveStruct(s spec.Struct) (model.Struct, error) {
	out := model.Struct{
		Name:       naming.PascalCase(spec.Str(s.Name)),
		Doc:        spec.Str(s.Doc),
		Kind:       model.StructKind(spec.Str(s.Type)),
		HasRelease: s.FreeMembers,
	}
	for i, m := range *s.Members {
		p, err := r.ResolveParameter(m)
		if err != nil {
			return model.Struct{}, fmt.Errorf("members[%d]: %w", i, err)
		}
		out.Members = append(out.Members, p)
	}
	return out, nil
}

func (r *resolverImpl) resolveFunction(f spec.Function) (model.Function, error) {
	out := model.Function{
		Name:       naming.CamelCase(spec.Str(f.Name)),
		Doc:        spec.Str(f.Doc),
		ReturnType: model.VoidType{},
	}

	if f.Returns != nil {
		ret, err := r.ResolveParameter(*f.Returns)
		if err != nil {
			return model.Function{}, fmt.Errorf("returns: %w", err)
		}
		out.ReturnType = ret.Type
	}

	for i, a := range f.Args {
		p, err := r.ResolveParameter(a)
		if err != nil {
			return model.Function{}, fmt.Errorf("args[%d]: %w", i, err)
		}
		out.Args = append(out.Args, p)
	}

	if f.Callback != "" {
		if _, isVoid := out.ReturnType.(model.VoidType); !isVoid {
			return model.Function{}, &spec.SchemaError{Reason: "a function with a callback cannot declare a return value"}
		}
		name := strings.TrimPrefix(f.Callback, string(model.KindCallback)+".") + callbackInfoSuffix
		out.Args = append(out.Args, model.Parameter{
			Type: model.NamedType{Name: naming.PascalCase(name), Kind: model.KindCallback},
			Name: "callbackInfo",
		})
		out.ReturnType = futureType
	}

	return out, nil
}

func (r *resolverImpl) resolveObject(o spec.Object) (model.ObjectClass, error) {
	out := model.ObjectClass{
		Name: naming.PascalCase(spec.Str(o.Name)),
		Doc:  spec.Str(o.Doc),
	}
	for i, m := range *o.Methods {
		f, err := r.resolveFunction(m)
		if err != nil {
			return model.ObjectClass{}, fmt.Errorf("methods[%d]: %w", i, err)
		}
		out.Methods = append(out.Methods, f)
	}
	return out, nil
}

func (r *resolverImpl) resolveCallback(c spec.Callback) (model.Callback, error) {
	out := model.Callback{
		Name:    naming.PascalCase(spec.Str(c.Name)) + "CallbackInfo",
		Doc:     spec.Str(c.Doc),
		HasMode: spec.Str(c.Style) == spec.StyleCallbackMode,
	}
	for i, a := range *c.Args {
		p, err := r.ResolveParameter(a)
		if err != nil {
			return model.Callback{}, fmt.Errorf("args[%d]: %w", i, err)
		}
		out.Args = append(out.Args, p.Type)
	}
	return out, nil
}
