package naming

import "testing"

func TestPascalCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"render_pass_encoder", "RenderPassEncoder"},
		{"buffer", "Buffer"},
		{"2D_array", "2DArray"},
		{"ASTC_4x4_unorm", "ASTC4x4Unorm"},
		{"", ""},
		{"trailing_", "Trailing"},
	}
	for _, tt := range tests {
		if got := PascalCase(tt.in); got != tt.want {
			t.Fatalf("PascalCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCamelCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"get_bind_group_layout", "getBindGroupLayout"},
		{"release", "release"},
		{"next_in_chain", "nextInChain"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CamelCase(tt.in); got != tt.want {
			t.Fatalf("CamelCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSanitizeIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2d", "_2D"},
		{"2DArray", "_2DArray"},
		{"1D", "_1D"},
		{"42", "_42"},
		{"Undefined", "Undefined"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SanitizeIdentifier(tt.in); got != tt.want {
			t.Fatalf("SanitizeIdentifier(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCapitalizeFirst(t *testing.T) {
	if got := CapitalizeFirst("buffer"); got != "Buffer" {
		t.Fatalf("CapitalizeFirst() = %q, want Buffer", got)
	}
	if got := CapitalizeFirst("mapAsync"); got != "MapAsync" {
		t.Fatalf("CapitalizeFirst() = %q, want MapAsync", got)
	}
}
