package model

// StructKind classifies the chaining role of a struct.
type StructKind string

const (
	StructStandalone       StructKind = "standalone"
	StructBaseIn           StructKind = "base_in"
	StructBaseOut          StructKind = "base_out"
	StructBaseInOrOut      StructKind = "base_in_or_out"
	StructExtensionIn      StructKind = "extension_in"
	StructExtensionOut     StructKind = "extension_out"
	StructExtensionInOrOut StructKind = "extension_in_or_out"
)

// IsBase reports whether the struct owns a mutable "next" link.
func (k StructKind) IsBase() bool {
	switch k {
	case StructBaseIn, StructBaseOut, StructBaseInOrOut:
		return true
	}
	return false
}

// IsExtension reports whether the struct carries a chain header tagged with
// its own struct type.
func (k StructKind) IsExtension() bool {
	switch k {
	case StructExtensionIn, StructExtensionOut, StructExtensionInOrOut:
		return true
	}
	return false
}

// Parameter is a struct member or a function argument. Name is empty for
// return values and callback arguments; Default is nil when unset.
type Parameter struct {
	Type    Type
	Name    string
	Doc     string
	Default Value
}

type Variant struct {
	Name  string
	Doc   string
	Value Value
}

type Enum struct {
	Name     string
	Doc      string
	Variants []Variant
	BaseType Type
	Bitflag  bool
}

type Struct struct {
	Name       string
	Doc        string
	Kind       StructKind
	Members    []Parameter
	HasRelease bool
}

type Function struct {
	Name       string
	Doc        string
	Args       []Parameter
	ReturnType Type
}

// ObjectClass is an opaque reference-counted handle.
type ObjectClass struct {
	Name    string
	Doc     string
	Methods []Function
}

type Callback struct {
	Name    string
	Doc     string
	Args    []Type
	HasMode bool
}

// API is everything a generation run knows about the wrapped library.
type API struct {
	Copyright  string
	EnumPrefix uint64
	Enums      []Enum
	Bitflags   []Enum
	Callbacks  []Callback
	Objects    []ObjectClass
	Structs    []Struct
	Functions  []Function
}
