package cli

import (
	"errors"
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/seitarof/gen-webgpu-hpp/internal/generator"
	"github.com/seitarof/gen-webgpu-hpp/internal/model"
	"github.com/seitarof/gen-webgpu-hpp/internal/order"
	"github.com/seitarof/gen-webgpu-hpp/internal/resolver"
	"github.com/seitarof/gen-webgpu-hpp/internal/spec"
)

var log = commonlog.GetLogger("gen-webgpu-hpp.cli")

// Runner orchestrates loader/resolver/order/generator layers.
type Runner interface {
	Run(cfg *Config) error
}

type runnerImpl struct {
	loader    spec.Loader
	resolver  resolver.Resolver
	generator generator.Generator
}

// NewRunner creates a default runner implementation.
func NewRunner(l spec.Loader, r resolver.Resolver, g generator.Generator) Runner {
	return &runnerImpl{
		loader:    l,
		resolver:  r,
		generator: g,
	}
}

// Run executes a single generation cycle. Nothing is written unless every
// stage succeeds.
func (r *runnerImpl) Run(cfg *Config) error {
	doc, err := r.loader.Load(cfg.SpecPath)
	if err != nil {
		return fmt.Errorf("load spec: %w", err)
	}
	logSkippedEntries(doc)

	api, err := r.resolver.Resolve(doc)
	if err != nil {
		return fmt.Errorf("resolve: %w", err)
	}
	log.Infof("resolved %d enums, %d bitflags, %d callbacks, %d objects, %d structs, %d functions",
		len(api.Enums), len(api.Bitflags), len(api.Callbacks), len(api.Objects), len(api.Structs), len(api.Functions))

	if err := orderStructs(api, cfg.Strict); err != nil {
		return fmt.Errorf("order structs: %w", err)
	}

	if err := r.generator.Generate(cfg, api); err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	log.Infof("wrote %s", cfg.OutputFilename())
	return nil
}

// orderStructs sorts api.Structs in place. Leftover anomalies are warnings,
// or an error in strict mode.
func orderStructs(api *model.API, strict bool) error {
	api.Structs = order.Structs(api.Structs)

	anomalies := order.Verify(api.Structs)
	if len(anomalies) == 0 {
		return nil
	}

	errs := make([]error, 0, len(anomalies))
	for _, a := range anomalies {
		log.Warningf("%s", a)
		errs = append(errs, a)
	}
	if strict {
		return errors.Join(errs...)
	}
	return nil
}

func logSkippedEntries(doc *spec.Document) {
	logNull := func(kind string, enums *[]spec.Enum) {
		if enums == nil {
			return
		}
		for _, e := range *enums {
			if e.Entries == nil {
				continue
			}
			for i, entry := range *e.Entries {
				if entry == nil {
					log.Debugf("%s %s: skipping null entry %d", kind, spec.Str(e.Name), i)
				}
			}
		}
	}
	logNull("enum", doc.Enums)
	logNull("bitflag", doc.Bitflags)
}
