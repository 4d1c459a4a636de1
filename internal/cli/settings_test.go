package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/seitarof/gen-webgpu-hpp/internal/model"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gen.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestLoadSettings_Defaults(t *testing.T) {
	s, err := LoadSettings("")
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if s.Namespace != "wgpu" || s.Header != "webgpu/webgpu.h" || s.ABI != model.DefaultABI() {
		t.Fatalf("unexpected defaults: %#v", s)
	}
}

func TestLoadSettings_OverridesPresentKeys(t *testing.T) {
	path := writeSettings(t, `
namespace = "dawn"

[abi]
function_prefix = "dawn"
`)
	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if s.Namespace != "dawn" || s.ABI.FunctionPrefix != "dawn" {
		t.Fatalf("overrides not applied: %#v", s)
	}
	if s.Header != "webgpu/webgpu.h" || s.ABI.TypePrefix != "WGPU" || s.ABI.ConstantPrefix != "WGPU_" {
		t.Fatalf("absent keys should keep defaults: %#v", s)
	}

	opts := s.GeneratorOptions()
	if opts.Namespace != "dawn" || opts.ABI.FunctionPrefix != "dawn" {
		t.Fatalf("unexpected generator options: %#v", opts)
	}
}

func TestLoadSettings_UnknownKey(t *testing.T) {
	path := writeSettings(t, `
namespace = "wgpu"
nmaespace = "typo"
`)
	_, err := LoadSettings(path)
	if err == nil || !strings.Contains(err.Error(), "nmaespace") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestLoadSettings_EmptyRequiredValue(t *testing.T) {
	path := writeSettings(t, `
[abi]
type_prefix = ""
`)
	_, err := LoadSettings(path)
	if err == nil || !strings.Contains(err.Error(), "abi.type_prefix") {
		t.Fatalf("expected empty value error, got %v", err)
	}
}

func TestLoadSettings_InvalidTOML(t *testing.T) {
	path := writeSettings(t, `namespace = `)
	if _, err := LoadSettings(path); err == nil {
		t.Fatal("expected parse error, got nil")
	}
}

func TestLoadSettings_MissingFile(t *testing.T) {
	if _, err := LoadSettings(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error, got nil")
	}
}
