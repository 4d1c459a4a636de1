// Package generator renders the wrapper header from the resolved API.
package generator

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/seitarof/gen-webgpu-hpp/internal/model"
)

//go:embed templates/*.hpp.tmpl
var templateFS embed.FS

const (
	documentTemplate = "webgpu.hpp.tmpl"
	disabledLints    = "*-explicit-constructor, *-explicit-constructor, *-noexcept-*"
	sourcePath       = "internal/generator"
)

// Generator renders headers from a resolved API.
type Generator interface {
	// Render returns the whole header. Structs are emitted in the order
	// given; callers order them with order.Structs first.
	Render(api *model.API) (string, error)
	Generate(cfg Config, api *model.API) error
}

// Config is the minimum config contract required by generator.
type Config interface {
	OutputFilename() string
}

// FileWriter writes generated code to disk.
type FileWriter interface {
	Write(filename string, data []byte) error
}

// Options tune the names baked into the header.
type Options struct {
	Namespace string
	Header    string
	ABI       model.ABI
}

// DefaultOptions reproduces the stock WebGPU header.
func DefaultOptions() Options {
	return Options{
		Namespace: "wgpu",
		Header:    "webgpu/webgpu.h",
		ABI:       model.DefaultABI(),
	}
}

type generatorImpl struct {
	opts   Options
	writer FileWriter
	tmpl   *template.Template
}

type fileWriter struct{}

type templateData struct {
	Copyright     string
	Source        string
	Header        string
	DisabledLints string
	Namespace     string
	ABI           model.ABI

	ForwardDeclarations string
	Enums               string
	Bitflags            string
	Callbacks           string
	Objects             string
	Structs             string
	Functions           string
	Methods             string
}

// New creates a header generator.
func New(opts Options, w FileWriter) Generator {
	tmpl := template.Must(template.New("").ParseFS(templateFS, "templates/*.hpp.tmpl"))
	return &generatorImpl{opts: opts, writer: w, tmpl: tmpl}
}

// NewFileWriter creates a plain file writer.
func NewFileWriter() FileWriter {
	return &fileWriter{}
}

func (g *generatorImpl) Render(api *model.API) (string, error) {
	if api == nil {
		return "", fmt.Errorf("no api to render")
	}

	e := &emitter{abi: g.opts.ABI}
	data := templateData{
		Copyright:           docComment(api.Copyright),
		Source:              sourcePath,
		Header:              g.opts.Header,
		DisabledLints:       disabledLints,
		Namespace:           g.opts.Namespace,
		ABI:                 g.opts.ABI,
		ForwardDeclarations: e.forwardDeclarations(api),
		Enums:               joinSections(api.Enums, e.enum),
		Bitflags:            joinSections(api.Bitflags, e.bitflag),
		Callbacks:           joinSections(api.Callbacks, e.callback),
		Objects:             joinSections(api.Objects, e.object),
		Structs:             joinSections(api.Structs, e.structDef),
		Functions:           joinSections(api.Functions, e.freeFunction),
		Methods:             joinSections(api.Objects, e.methods),
	}

	var buf bytes.Buffer
	if err := g.tmpl.ExecuteTemplate(&buf, documentTemplate, data); err != nil {
		return "", fmt.Errorf("template: %w", err)
	}
	return buf.String(), nil
}

func (g *generatorImpl) Generate(cfg Config, api *model.API) error {
	src, err := g.Render(api)
	if err != nil {
		return err
	}
	if err := g.writer.Write(cfg.OutputFilename(), []byte(src)); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func (w *fileWriter) Write(filename string, data []byte) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(filename, data, 0o644)
}
