package resolver

import (
	"fmt"

	"github.com/seitarof/gen-webgpu-hpp/internal/model"
	"github.com/seitarof/gen-webgpu-hpp/internal/spec"
)

// Resolver turns a decoded API description into the IR.
type Resolver interface {
	TypeResolver
	ResolveParameter(p spec.Parameter) (model.Parameter, error)
	ResolveDefault(lit spec.Literal, t model.Type) (model.Value, error)
	Resolve(doc *spec.Document) (*model.API, error)
}

// TypeResolver resolves spec type tokens such as "array<struct.bind_group_entry>".
type TypeResolver interface {
	ResolveType(token string) (model.Type, error)
}

// TypeRule tries to resolve one type token. Rules are tried in order and the
// first one reporting ok wins.
type TypeRule interface {
	Name() string
	Try(r TypeResolver, token string) (model.Type, bool, error)
}

type resolverImpl struct {
	abi   model.ABI
	rules []TypeRule
}

// New builds a resolver with a type rule chain.
func New(abi model.ABI, rules ...TypeRule) Resolver {
	return &resolverImpl{abi: abi, rules: rules}
}

func (r *resolverImpl) ResolveType(token string) (model.Type, error) {
	for _, rule := range r.rules {
		t, ok, err := rule.Try(r, token)
		if err != nil {
			return nil, err
		}
		if ok {
			return t, nil
		}
	}
	return nil, &UnknownTypeError{Token: token}
}

// Resolve builds the whole API. Entities keep their document order.
func (r *resolverImpl) Resolve(doc *spec.Document) (*model.API, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	prefix, ok := doc.EnumPrefix.Integer()
	if !ok {
		return nil, &spec.SchemaError{Path: "enum_prefix", Reason: "must be an integer or a 0x-prefixed string"}
	}

	api := &model.API{
		Copyright:  spec.Str(doc.Copyright),
		EnumPrefix: prefix,
	}

	for i, e := range *doc.Enums {
		out, err := r.resolveEnum(e, prefix, false)
		if err != nil {
			return nil, fmt.Errorf("enums[%d]: %w", i, err)
		}
		api.Enums = append(api.Enums, out)
	}
	for i, e := range *doc.Bitflags {
		out, err := r.resolveEnum(e, prefix, true)
		if err != nil {
			return nil, fmt.Errorf("bitflags[%d]: %w", i, err)
		}
		api.Bitflags = append(api.Bitflags, out)
	}
	for i, c := range *doc.Callbacks {
		out, err := r.resolveCallback(c)
		if err != nil {
			return nil, fmt.Errorf("callbacks[%d]: %w", i, err)
		}
		api.Callbacks = append(api.Callbacks, out)
	}
	for i, o := range *doc.Objects {
		out, err := r.resolveObject(o)
		if err != nil {
			return nil, fmt.Errorf("objects[%d]: %w", i, err)
		}
		api.Objects = append(api.Objects, out)
	}
	for i, s := range *doc.Structs {
		out, err := r.resolveStruct(s)
		if err != nil {
			return nil, fmt.Errorf("structs[%d]: %w", i, err)
		}
		api.Structs = append(api.Structs, out)
	}
	for i, f := range *doc.Functions {
		out, err := r.resolveFunction(f)
		if err != nil {
			return nil, fmt.Errorf("functions[%d]: %w", i, err)
		}
		api.Functions = append(api.Functions, out)
	}

	return api, nil
}
