package cli

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/seitarof/gen-webgpu-hpp/internal/generator"
	"github.com/seitarof/gen-webgpu-hpp/internal/model"
)

// Settings are the naming knobs read from the optional TOML file.
type Settings struct {
	Namespace string    `toml:"namespace"`
	Header    string    `toml:"header"`
	ABI       model.ABI `toml:"abi"`
}

// DefaultSettings reproduce the stock WebGPU header.
func DefaultSettings() Settings {
	opts := generator.DefaultOptions()
	return Settings{
		Namespace: opts.Namespace,
		Header:    opts.Header,
		ABI:       opts.ABI,
	}
}

// LoadSettings reads path on top of DefaultSettings. An empty path yields the
// defaults.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	meta, err := toml.DecodeFile(path, &s)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Settings{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	required := []struct {
		key   string
		value string
	}{
		{"namespace", s.Namespace},
		{"header", s.Header},
		{"abi.type_prefix", s.ABI.TypePrefix},
		{"abi.function_prefix", s.ABI.FunctionPrefix},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return Settings{}, fmt.Errorf("%s: %s must not be empty", path, r.key)
		}
	}
	return s, nil
}

// GeneratorOptions converts the settings for the generator layer.
func (s Settings) GeneratorOptions() generator.Options {
	return generator.Options{
		Namespace: s.Namespace,
		Header:    s.Header,
		ABI:       s.ABI,
	}
}
