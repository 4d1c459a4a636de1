package model

import "testing"

func TestTypeWrapperAndRaw(t *testing.T) {
	abi := DefaultABI()
	tests := []struct {
		name    string
		typ     Type
		wrapper string
		raw     string
	}{
		{"void", VoidType{}, "void", "void"},
		{"primitive", PrimitiveType{Name: "uint32_t"}, "uint32_t", "uint32_t"},
		{"named", NamedType{Name: "Limits", Kind: KindStruct}, "Limits", "WGPULimits"},
		{"flags", FlagsType{Name: "BufferUsage"}, "Flags<BufferUsage>", "WGPUBufferUsage"},
		{
			"const reference",
			PointerType{Inner: NamedType{Name: "Limits", Kind: KindStruct}, Reference: true},
			"Limits const&",
			"WGPULimits const*",
		},
		{
			"mutable pointer",
			PointerType{Inner: NamedType{Name: "Limits", Kind: KindStruct}, Mutable: true},
			"Limits*",
			"WGPULimits*",
		},
		{"void pointer", PointerType{Inner: VoidType{}}, "void const*", "void const*"},
	}
	for _, tt := range tests {
		if got := tt.typ.Wrapper(); got != tt.wrapper {
			t.Fatalf("%s: Wrapper() = %q, want %q", tt.name, got, tt.wrapper)
		}
		if got := tt.typ.Raw(abi).Wrapper(); got != tt.raw {
			t.Fatalf("%s: Raw().Wrapper() = %q, want %q", tt.name, got, tt.raw)
		}
	}
}

func TestArrayType(t *testing.T) {
	arr := ArrayType{Inner: NamedType{Name: "BindGroupEntry", Kind: KindStruct}}
	if got := arr.Wrapper(); got != "Array<BindGroupEntry>" {
		t.Fatalf("Wrapper() = %q", got)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("Raw() on an array should panic")
		}
	}()
	arr.Raw(DefaultABI())
}

func TestValueRender(t *testing.T) {
	tests := []struct {
		value Value
		want  string
	}{
		{ZeroValue{}, "{}"},
		{ConstantValue{Token: "WGPU_WHOLE_SIZE"}, "WGPU_WHOLE_SIZE"},
		{IntValue{Value: 42}, "42"},
		{IntValue{Value: 0x30000, Hex: true}, "0x30000"},
		{IntValue{Value: -1}, "-1"},
		{FloatValue{Value: 1}, "1.0f"},
		{FloatValue{Value: 0.5}, "0.5f"},
		{FloatValue{Value: 0.00001}, "1e-05f"},
		{CombinationValue{Variants: []string{"Vertex", "Fragment"}}, "Vertex | Fragment"},
	}
	for _, tt := range tests {
		if got := tt.value.Render(); got != tt.want {
			t.Fatalf("%#v.Render() = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestValueRenderIsIdempotent(t *testing.T) {
	values := []Value{
		ZeroValue{},
		ConstantValue{Token: "OptionalBool::Undefined"},
		IntValue{Value: 255, Hex: true},
		FloatValue{Value: 0.25},
		CombinationValue{Variants: []string{"Read", "Write"}},
	}
	for _, v := range values {
		first, second := v.Render(), v.Render()
		if first != second {
			t.Fatalf("%#v rendered %q then %q", v, first, second)
		}
	}
}

func TestStructKind(t *testing.T) {
	if !StructBaseInOrOut.IsBase() || StructBaseInOrOut.IsExtension() {
		t.Fatal("base_in_or_out should be a base kind")
	}
	if !StructExtensionOut.IsExtension() || StructExtensionOut.IsBase() {
		t.Fatal("extension_out should be an extension kind")
	}
	if StructStandalone.IsBase() || StructStandalone.IsExtension() {
		t.Fatal("standalone is neither base nor extension")
	}
}
