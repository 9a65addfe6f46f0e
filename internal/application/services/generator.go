// Package services contains application use cases.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/monado-tools/xrbindgen/internal/codegen"
	"github.com/monado-tools/xrbindgen/internal/domain/entities"
	domainServices "github.com/monado-tools/xrbindgen/internal/domain/services"
	"github.com/monado-tools/xrbindgen/internal/domain/values"
	"github.com/monado-tools/xrbindgen/internal/infrastructure/config"
	"github.com/monado-tools/xrbindgen/internal/infrastructure/output"
	"golang.org/x/sync/errgroup"
)

// GeneratorOptions configure a single generation run.
type GeneratorOptions struct {
	// BindingsPath is the interaction profile definition file.
	BindingsPath string
	// OutputPaths are the requested output files. Names with an
	// unrecognized suffix are skipped.
	OutputPaths []string
	// ExclusiveProfiles restricts generation to the named profiles.
	// Empty means all profiles.
	ExclusiveProfiles []string
	// FilterExpression optionally narrows profiles with a boolean
	// expression over profile attributes.
	FilterExpression string
}

// Generator runs the whole pipeline: load definitions, resolve
// profiles, emit C sources, write artifacts.
type Generator struct {
	loader *config.BindingsLoader
	writer *output.FileWriter
}

// NewGenerator creates a generator with default infrastructure.
func NewGenerator() *Generator {
	return &Generator{
		loader: config.NewBindingsLoader(),
		writer: output.NewFileWriter(),
	}
}

// Generate produces every recognized artifact among opts.OutputPaths.
// Profiles are resolved in parallel; emission and writing stay in
// definition order so output bytes are stable across runs.
func (g *Generator) Generate(ctx context.Context, opts GeneratorOptions) error {
	generationID := values.NewGenerationID()
	logger := slog.With("generation_id", generationID.String())

	bindings, err := g.loader.LoadAndParse(opts.BindingsPath)
	if err != nil {
		return fmt.Errorf("loading bindings from %q: %w", opts.BindingsPath, err)
	}
	logger.Debug("loaded bindings", "path", opts.BindingsPath, "profiles", len(bindings.Profiles))

	profiles, err := g.selectProfiles(bindings, opts)
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		logger.Warn("no profiles selected, outputs will contain an empty template array")
	}

	resolved, err := g.resolveProfiles(ctx, profiles)
	if err != nil {
		return err
	}

	for _, path := range opts.OutputPaths {
		artifact := output.ArtifactForPath(path)
		if artifact == output.ArtifactNone {
			logger.Debug("skipping unrecognized output", "path", path)
			continue
		}

		content, err := g.emit(artifact, resolved)
		if err != nil {
			return fmt.Errorf("emitting %s: %w", artifact, err)
		}
		if err := g.writer.Write(path, content); err != nil {
			return fmt.Errorf("writing %s: %w", artifact, err)
		}
		logger.Info("wrote artifact", "artifact", artifact.String(), "path", path, "bytes", len(content))
	}

	return nil
}

// selectProfiles applies the exclusive name list and filter expression
// in definition order.
func (g *Generator) selectProfiles(bindings *entities.Bindings, opts GeneratorOptions) ([]*entities.Profile, error) {
	filter := domainServices.NewProfileFilter()
	if len(opts.ExclusiveProfiles) > 0 {
		filter = filter.WithExclusiveProfiles(opts.ExclusiveProfiles)
	}
	filter, err := filter.WithExpression(opts.FilterExpression)
	if err != nil {
		return nil, fmt.Errorf("building profile filter: %w", err)
	}
	return filter.Apply(bindings.Profiles)
}

// resolveProfiles fans resolution out across profiles. Results land in
// an indexed slice so parallelism never reorders emission.
func (g *Generator) resolveProfiles(ctx context.Context, profiles []*entities.Profile) ([]*domainServices.ResolvedProfile, error) {
	resolver := domainServices.NewProfileResolver()

	resolved := make([]*domainServices.ResolvedProfile, len(profiles))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, profile := range profiles {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			rp, err := resolver.Resolve(profile)
			if err != nil {
				return fmt.Errorf("resolving profile %s: %w", profile.Name, err)
			}
			resolved[i] = rp
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return resolved, nil
}

func (g *Generator) emit(artifact output.Artifact, resolved []*domainServices.ResolvedProfile) ([]byte, error) {
	switch artifact {
	case output.ArtifactFullImplementation:
		return codegen.NewFullEmitter().EmitImplementation(resolved)
	case output.ArtifactFullInterface:
		return codegen.NewFullEmitter().EmitHeader(resolved)
	case output.ArtifactReducedImplementation:
		return codegen.NewReducedEmitter().EmitImplementation(resolved)
	case output.ArtifactReducedInterface:
		return codegen.NewReducedEmitter().EmitHeader(resolved)
	default:
		return nil, fmt.Errorf("no emitter for artifact %d", artifact)
	}
}
