package model

// Kind is the dotted prefix of a named spec type such as "struct" in
// "struct.limits".
type Kind string

const (
	KindEnum     Kind = "enum"
	KindStruct   Kind = "struct"
	KindObject   Kind = "object"
	KindCallback Kind = "callback"
	KindBitflag  Kind = "bitflag"
)

// Type is one of VoidType, PrimitiveType, NamedType, FlagsType, PointerType
// or ArrayType.
type Type interface {
	// Wrapper renders the type as exposed by the generated header.
	Wrapper() string
	// Raw returns the equivalent raw ABI type.
	Raw(abi ABI) Type
	isType()
}

type VoidType struct{}

func (VoidType) Wrapper() string { return "void" }
func (t VoidType) Raw(ABI) Type  { return t }
func (VoidType) isType()         {}

// PrimitiveType is a scalar whose spelling is identical on both sides.
type PrimitiveType struct {
	Name string
}

func (t PrimitiveType) Wrapper() string { return t.Name }
func (t PrimitiveType) Raw(ABI) Type    { return t }
func (PrimitiveType) isType()           {}

// NamedType references an enum, struct, object or callback by its wrapper name.
type NamedType struct {
	Name string
	Kind Kind
}

func (t NamedType) Wrapper() string { return t.Name }

func (t NamedType) Raw(abi ABI) Type {
	return NamedType{Name: abi.TypeName(t.Name)}
}

func (NamedType) isType() {}

// FlagsType is a bitflag set over the enum called Name.
type FlagsType struct {
	Name string
}

func (t FlagsType) Wrapper() string { return "Flags<" + t.Name + ">" }

func (t FlagsType) Raw(abi ABI) Type {
	return NamedType{Name: abi.TypeName(t.Name)}
}

func (FlagsType) isType() {}

// PointerType points at Inner. A Reference renders as '&' instead of '*'.
type PointerType struct {
	Inner     Type
	Mutable   bool
	Reference bool
}

func (t PointerType) Wrapper() string {
	symbol := "*"
	if t.Reference {
		symbol = "&"
	}
	if !t.Mutable {
		return t.Inner.Wrapper() + " const" + symbol
	}
	return t.Inner.Wrapper() + symbol
}

// Raw never yields a reference: the C side only knows pointers.
func (t PointerType) Raw(abi ABI) Type {
	return PointerType{Inner: t.Inner.Raw(abi), Mutable: t.Mutable}
}

func (PointerType) isType() {}

// ArrayType only appears as a parameter; it is expanded into a count and a
// data pointer when forwarded to the raw ABI.
type ArrayType struct {
	Inner Type
}

func (t ArrayType) Wrapper() string { return "Array<" + t.Inner.Wrapper() + ">" }

// Raw panics: an array has no standalone raw equivalent.
func (t ArrayType) Raw(ABI) Type {
	panic("model: array type " + t.Wrapper() + " has no raw ABI equivalent")
}

func (ArrayType) isType() {}

// IsNamed reports whether t is a NamedType of the given kind.
func IsNamed(t Type, kind Kind) bool {
	n, ok := t.(NamedType)
	return ok && n.Kind == kind
}
