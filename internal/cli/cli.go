package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// ParseArgs parses command line arguments into Config.
func ParseArgs(args []string) (*Config, error) {
	cfg := &Config{}

	fs := pflag.NewFlagSet("gen-webgpu-hpp", pflag.ContinueOnError)
	fs.StringVarP(&cfg.SpecPath, "spec", "s", "", "path to the YAML or JSON API description")
	fs.StringVarP(&cfg.Filename, "output", "o", "", "output header path")
	fs.StringVarP(&cfg.ConfigPath, "config", "c", "", "optional TOML settings file")
	fs.BoolVar(&cfg.Strict, "strict", false, "fail when structs cannot be ordered by their dependencies")
	fs.CountVar(&cfg.Verbosity, "verbose", "increase log verbosity (repeatable)")
	fs.StringVar(&cfg.Color, "color", ColorAuto, "colorize errors (auto|on|off)")
	fs.BoolVarP(&cfg.ShowVersion, "version", "v", false, "show version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.ShowVersion {
		return cfg, nil
	}

	if strings.TrimSpace(cfg.SpecPath) == "" {
		return nil, fmt.Errorf("--spec is required")
	}
	if strings.TrimSpace(cfg.Filename) == "" {
		return nil, fmt.Errorf("--output is required")
	}
	switch cfg.Color {
	case ColorAuto, ColorOn, ColorOff:
	default:
		return nil, fmt.Errorf("--color must be one of auto, on, off (got %q)", cfg.Color)
	}
	return cfg, nil
}
