// Package model defines the intermediate representation of a wrapped C API:
// the type algebra, literal values and the entity records built from a spec.
package model

// ABI names the raw C interface that the wrapper forwards to.
type ABI struct {
	// TypePrefix prefixes raw type names, e.g. "WGPU" in WGPUBuffer.
	TypePrefix string `toml:"type_prefix"`
	// FunctionPrefix prefixes raw entry points, e.g. "wgpu" in wgpuBufferRelease.
	FunctionPrefix string `toml:"function_prefix"`
	// ConstantPrefix prefixes library-wide constants, e.g. "WGPU_" in WGPU_WHOLE_SIZE.
	ConstantPrefix string `toml:"constant_prefix"`
}

// DefaultABI returns the WebGPU C naming.
func DefaultABI() ABI {
	return ABI{
		TypePrefix:     "WGPU",
		FunctionPrefix: "wgpu",
		ConstantPrefix: "WGPU_",
	}
}

// TypeName returns the raw name of a wrapper type name.
func (a ABI) TypeName(name string) string {
	return a.TypePrefix + name
}

// FunctionName returns the raw entry point for an already capitalized name.
func (a ABI) FunctionName(name string) string {
	return a.FunctionPrefix + name
}
