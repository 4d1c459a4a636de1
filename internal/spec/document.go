// Package spec holds the YAML API description the header is generated from.
//
// Required fields are pointers (or pointers to slices) so that an absent key
// can be told apart from an empty value; Validate reports every absent field
// as a SchemaError.
package spec

// Document is the root of an API description file.
type Document struct {
	EnumPrefix *Literal    `yaml:"enum_prefix"`
	Copyright  *string     `yaml:"copyright"`
	Enums      *[]Enum     `yaml:"enums"`
	Bitflags   *[]Enum     `yaml:"bitflags"`
	Callbacks  *[]Callback `yaml:"callbacks"`
	Objects    *[]Object   `yaml:"objects"`
	Structs    *[]Struct   `yaml:"structs"`
	Functions  *[]Function `yaml:"functions"`
}

// Enum describes an enum or a bitflag set. Nil entries are placeholders that
// still consume an index when implicit values are computed.
type Enum struct {
	Name    *string       `yaml:"name"`
	Doc     *string       `yaml:"doc"`
	Entries *[]*EnumEntry `yaml:"entries"`
}

// EnumEntry is one variant of an Enum.
type EnumEntry struct {
	Name             *string  `yaml:"name"`
	Doc              *string  `yaml:"doc"`
	Value            *Literal `yaml:"value"`
	ValueCombination []string `yaml:"value_combination"`
}

// Parameter is shared by struct members, function arguments, return values
// and callback arguments.
type Parameter struct {
	Name     *string  `yaml:"name"`
	Doc      *string  `yaml:"doc"`
	Type     *string  `yaml:"type"`
	Pointer  string   `yaml:"pointer"`
	Optional bool     `yaml:"optional"`
	Default  *Literal `yaml:"default"`
}

// Struct describes a plain or chainable struct.
type Struct struct {
	Name        *string      `yaml:"name"`
	Doc         *string      `yaml:"doc"`
	Type        *string      `yaml:"type"`
	Members     *[]Parameter `yaml:"members"`
	FreeMembers bool         `yaml:"free_members"`
}

// Function describes a free function or an object method.
type Function struct {
	Name     *string     `yaml:"name"`
	Doc      *string     `yaml:"doc"`
	Returns  *Parameter  `yaml:"returns"`
	Args     []Parameter `yaml:"args"`
	Callback string      `yaml:"callback"`
}

// Object describes an opaque reference-counted handle.
type Object struct {
	Name    *string     `yaml:"name"`
	Doc     *string     `yaml:"doc"`
	Methods *[]Function `yaml:"methods"`
}

// Callback describes a callback-info record.
type Callback struct {
	Name  *string      `yaml:"name"`
	Doc   *string      `yaml:"doc"`
	Style *string      `yaml:"style"`
	Args  *[]Parameter `yaml:"args"`
}

// PointerMutable marks a pointer parameter whose pointee may be written.
const PointerMutable = "mutable"

// StyleCallbackMode marks callbacks that carry a delivery mode.
const StyleCallbackMode = "callback_mode"

// Str dereferences a validated required string.
func Str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
