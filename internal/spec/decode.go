package spec

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"
)

// Loader reads API description documents.
type Loader interface {
	Load(path string) (*Document, error)
}

type fileLoader struct{}

// NewLoader returns a Loader reading YAML (or JSON) files from disk.
func NewLoader() Loader {
	return &fileLoader{}
}

func (l *fileLoader) Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open spec: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Decode parses and validates a document.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &SchemaError{Reason: "empty document"}
		}
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks that every required field is present. It stops at the
// first missing field.
func (d *Document) Validate() error {
	if d.EnumPrefix == nil {
		return Missing("", "enum_prefix")
	}
	if d.Copyright == nil {
		return Missing("", "copyright")
	}
	if d.Enums == nil {
		return Missing("", "enums")
	}
	if d.Bitflags == nil {
		return Missing("", "bitflags")
	}
	if d.Callbacks == nil {
		return Missing("", "callbacks")
	}
	if d.Objects == nil {
		return Missing("", "objects")
	}
	if d.Structs == nil {
		return Missing("", "structs")
	}
	if d.Functions == nil {
		return Missing("", "functions")
	}

	for i, e := range *d.Enums {
		if err := e.validate(fmt.Sprintf("enums[%d]", i)); err != nil {
			return err
		}
	}
	for i, e := range *d.Bitflags {
		if err := e.validate(fmt.Sprintf("bitflags[%d]", i)); err != nil {
			return err
		}
	}
	for i, c := range *d.Callbacks {
		if err := c.validate(fmt.Sprintf("callbacks[%d]", i)); err != nil {
			return err
		}
	}
	for i, o := range *d.Objects {
		if err := o.validate(fmt.Sprintf("objects[%d]", i)); err != nil {
			return err
		}
	}
	for i, s := range *d.Structs {
		if err := s.validate(fmt.Sprintf("structs[%d]", i)); err != nil {
			return err
		}
	}
	for i, f := range *d.Functions {
		if err := f.validate(fmt.Sprintf("functions[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

func (e *Enum) validate(path string) error {
	if e.Name == nil {
		return Missing(path, "name")
	}
	if e.Doc == nil {
		return Missing(path, "doc")
	}
	if e.Entries == nil {
		return Missing(path, "entries")
	}
	for i, entry := range *e.Entries {
		if entry == nil {
			continue
		}
		entryPath := fmt.Sprintf("%s.entries[%d]", path, i)
		if entry.Name == nil {
			return Missing(entryPath, "name")
		}
		if entry.Doc == nil {
			return Missing(entryPath, "doc")
		}
	}
	return nil
}

func (c *Callback) validate(path string) error {
	if c.Name == nil {
		return Missing(path, "name")
	}
	if c.Doc == nil {
		return Missing(path, "doc")
	}
	if c.Style == nil {
		return Missing(path, "style")
	}
	if c.Args == nil {
		return Missing(path, "args")
	}
	for i, a := range *c.Args {
		if err := a.validate(fmt.Sprintf("%s.args[%d]", path, i), false); err != nil {
			return err
		}
	}
	return nil
}

func (o *Object) validate(path string) error {
	if o.Name == nil {
		return Missing(path, "name")
	}
	if o.Doc == nil {
		return Missing(path, "doc")
	}
	if o.Methods == nil {
		return Missing(path, "methods")
	}
	for i, m := range *o.Methods {
		if err := m.validate(fmt.Sprintf("%s.methods[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Struct) validate(path string) error {
	if s.Name == nil {
		return Missing(path, "name")
	}
	if s.Doc == nil {
		return Missing(path, "doc")
	}
	if s.Type == nil {
		return Missing(path, "type")
	}
	if s.Members == nil {
		return Missing(path, "members")
	}
	for i, m := range *s.Members {
		if err := m.validate(fmt.Sprintf("%s.members[%d]", path, i), true); err != nil {
			return err
		}
	}
	return nil
}

func (f *Function) validate(path string) error {
	if f.Name == nil {
		return Missing(path, "name")
	}
	if f.Doc == nil {
		return Missing(path, "doc")
	}
	if f.Returns != nil {
		if err := f.Returns.validate(path+".returns", false); err != nil {
			return err
		}
		if f.Callback != "" {
			return &SchemaError{Path: path, Reason: "a function with a callback cannot declare a return value"}
		}
	}
	for i, a := range f.Args {
		if err := a.validate(fmt.Sprintf("%s.args[%d]", path, i), true); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parameter) validate(path string, named bool) error {
	if named && p.Name == nil {
		return Missing(path, "name")
	}
	if p.Doc == nil {
		return Missing(path, "doc")
	}
	if p.Type == nil {
		return Missing(path, "type")
	}
	return nil
}
