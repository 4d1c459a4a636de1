package generator

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/seitarof/gen-webgpu-hpp/internal/model"
	"github.com/seitarof/gen-webgpu-hpp/internal/order"
	"github.com/seitarof/gen-webgpu-hpp/internal/resolver"
	"github.com/seitarof/gen-webgpu-hpp/internal/spec"
)

type testConfig struct {
	filename string
}

func (c testConfig) OutputFilename() string { return c.filename }

type mockWriter struct {
	filename string
	data     []byte
	err      error
}

func (w *mockWriter) Write(filename string, data []byte) error {
	w.filename = filename
	w.data = data
	return w.err
}

func buildAPI(t testing.TB, src string) *model.API {
	t.Helper()
	doc, err := spec.Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	api, err := resolver.New(model.DefaultABI(), resolver.DefaultRules()...).Resolve(doc)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	api.Structs = order.Structs(api.Structs)
	return api
}

func loadFixture(t testing.TB, path string) (*model.API, []txtar.File) {
	t.Helper()
	ar, err := txtar.ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}

	var doc string
	var fragments []txtar.File
	for _, f := range ar.Files {
		if f.Name == "spec.yaml" {
			doc = string(f.Data)
			continue
		}
		fragments = append(fragments, f)
	}
	if doc == "" {
		t.Fatalf("%s: missing spec.yaml", path)
	}
	return buildAPI(t, doc), fragments
}

func TestRender_Fixtures(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil {
		t.Fatalf("Glob() error = %v", err)
	}
	if len(paths) == 0 {
		t.Fatal("no fixtures found")
	}

	g := New(DefaultOptions(), &mockWriter{})
	for _, path := range paths {
		t.Run(strings.TrimSuffix(filepath.Base(path), ".txtar"), func(t *testing.T) {
			api, fragments := loadFixture(t, path)
			got, err := g.Render(api)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			for _, f := range fragments {
				if !strings.Contains(got, string(f.Data)) {
					t.Errorf("fragment %s not found in output.\nwant:\n%s\ngot:\n%s", f.Name, f.Data, got)
				}
			}
		})
	}
}

func TestRender_SectionOrder(t *testing.T) {
	api, _ := loadFixture(t, filepath.Join("testdata", "api.txtar"))
	got, err := New(DefaultOptions(), &mockWriter{}).Render(api)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	sections := []string{
		"#pragma once",
		"!! THIS FILE IS AUTOMATICALLY GENERATED !!",
		"#include <webgpu/webgpu.h>",
		"namespace wgpu {",
		"typedef WGPUBool Bool;",
		"// -- FORWARD DECLARATIONS --",
		"// -- ENUMS --",
		"// -- WRAPPER DECLARATIONS --",
		"// -- BITFLAG HELPERS --",
		"// -- BITFLAGS --",
		"// -- CALLBACKS --",
		"// -- OBJECTS --",
		"// -- STRUCTS --",
		"// -- FUNCTIONS --",
		"// -- METHODS --",
		"// NOLINTEND(",
	}
	last := -1
	for _, s := range sections {
		i := strings.Index(got, s)
		if i < 0 {
			t.Fatalf("section %q not found", s)
		}
		if i <= last {
			t.Fatalf("section %q is out of order", s)
		}
		last = i
	}
	if !strings.HasSuffix(got, "// NOLINTEND(*-explicit-constructor, *-explicit-constructor, *-noexcept-*)\n") {
		t.Fatalf("unexpected document tail: %q", got[len(got)-80:])
	}
}

func TestRender_StructsFollowDependencies(t *testing.T) {
	api, _ := loadFixture(t, filepath.Join("testdata", "structs.txtar"))
	got, err := New(DefaultOptions(), &mockWriter{}).Render(api)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	dep := strings.Index(got, "struct PassTimestampWrites {")
	user := strings.Index(got, "struct RenderPassDescriptor {")
	if dep < 0 || user < 0 || dep > user {
		t.Fatalf("PassTimestampWrites must be defined before RenderPassDescriptor (%d, %d)", dep, user)
	}
}

func TestRender_Deterministic(t *testing.T) {
	g := New(DefaultOptions(), &mockWriter{})
	for _, name := range []string{"enums.txtar", "structs.txtar", "api.txtar"} {
		api, _ := loadFixture(t, filepath.Join("testdata", name))
		first, err := g.Render(api)
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		for range 5 {
			again, err := g.Render(api)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if again != first {
				t.Fatalf("%s: output differs between runs", name)
			}
		}
	}
}

func TestRender_Scaffolding(t *testing.T) {
	got, err := New(DefaultOptions(), &mockWriter{}).Render(&model.API{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	wants := []string{
		"constexpr Flags operator~() const { return Flags(m_bits ^ static_cast<BitType>(FlagTraits<T>::allFlags)); }",
		"constexpr operator WGPUStringView() const { return { data, length }; }",
		" * See `internal/generator` for the code that generates this file.\n",
		"#pragma once\n\n\n/**\n * !! THIS FILE IS AUTOMATICALLY GENERATED !!",
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output", want)
		}
	}
	if strings.Contains(got, "m_mask") {
		t.Fatal("complement operator must not reference a mask member")
	}
}

func TestRender_CustomOptions(t *testing.T) {
	opts := Options{
		Namespace: "xgpu",
		Header:    "xgpu/xgpu.h",
		ABI:       model.ABI{TypePrefix: "XGPU", FunctionPrefix: "xgpu", ConstantPrefix: "XGPU_"},
	}
	api := &model.API{
		Objects: []model.ObjectClass{{
			Name: "Queue",
			Methods: []model.Function{{
				Name:       "submit",
				Args:       []model.Parameter{{Type: model.ArrayType{Inner: model.NamedType{Name: "CommandBuffer", Kind: model.KindObject}}, Name: "commands"}},
				ReturnType: model.VoidType{},
			}},
		}},
	}

	got, err := New(opts, &mockWriter{}).Render(api)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	wants := []string{
		"#include <xgpu/xgpu.h>",
		"namespace xgpu {",
		"typedef XGPUBool Bool;",
		"constexpr operator XGPUStringView() const",
		"constexpr Queue(XGPUQueue ptr) : m_ptr(ptr) { }",
		"XGPUQueueImpl* m_ptr {};",
		"xgpuQueueAddRef(m_ptr);",
		"    xgpuQueueSubmit(m_ptr, commands.count, reinterpret_cast<XGPUCommandBuffer const*>(commands.data));\n",
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output:\n%s", want, got)
		}
	}
}

func TestRender_NilAPI(t *testing.T) {
	if _, err := New(DefaultOptions(), &mockWriter{}).Render(nil); err == nil {
		t.Fatal("expected error for nil api")
	}
}

func TestGenerate_WritesFile(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "include", "webgpu", "webgpu.hpp")

	api, _ := loadFixture(t, filepath.Join("testdata", "api.txtar"))
	g := New(DefaultOptions(), NewFileWriter())
	if err := g.Generate(testConfig{filename: filename}, api); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	b, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	want, err := g.Render(api)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if string(b) != want {
		t.Fatal("written file differs from rendered output")
	}
}

func TestGenerate_WrapsWriterError(t *testing.T) {
	errDisk := errors.New("disk full")
	w := &mockWriter{err: errDisk}

	err := New(DefaultOptions(), w).Generate(testConfig{filename: "out.hpp"}, &model.API{})
	if !errors.Is(err, errDisk) {
		t.Fatalf("expected writer error, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "write: ") {
		t.Fatalf("writer error should be wrapped with stage: %v", err)
	}
	if w.filename != "out.hpp" || len(w.data) == 0 {
		t.Fatalf("writer received %q with %d bytes", w.filename, len(w.data))
	}
}
