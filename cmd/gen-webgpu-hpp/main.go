package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/seitarof/gen-webgpu-hpp/internal/cli"
	"github.com/seitarof/gen-webgpu-hpp/internal/generator"
	"github.com/seitarof/gen-webgpu-hpp/internal/resolver"
	"github.com/seitarof/gen-webgpu-hpp/internal/spec"
)

var version = "dev"

var errorPrefix = color.New(color.FgRed, color.Bold)

func main() {
	cfg, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		fail(err)
	}
	if cfg.ShowVersion {
		fmt.Println(version)
		return
	}

	cli.ApplyColorMode(cfg.Color, os.Stderr)
	commonlog.Configure(cfg.Verbosity, nil)

	settings, err := cli.LoadSettings(cfg.ConfigPath)
	if err != nil {
		fail(err)
	}

	l := spec.NewLoader()
	r := resolver.New(settings.ABI, resolver.DefaultRules()...)
	w := generator.NewFileWriter()
	g := generator.New(settings.GeneratorOptions(), w)

	runner := cli.NewRunner(l, r, g)
	if err := runner.Run(cfg); err != nil {
		fail(err)
	}
}

func fail(err error) {
	errorPrefix.Fprint(os.Stderr, "error:")
	fmt.Fprintln(os.Stderr, " "+err.Error())
	os.Exit(1)
}
