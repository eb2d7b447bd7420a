package application

import (
	"fmt"

	"github.com/archforge/archforge/internal/domain"
	"github.com/archforge/archforge/internal/domain/generate"
	"github.com/archforge/archforge/internal/domain/parse"
	"github.com/archforge/archforge/internal/domain/template"
)

// ScaffoldService orchestrates the scaffold pipeline:
// load config -> build layer graph -> parse schema -> generate -> write.
type ScaffoldService struct {
	loader domain.ConfigLoader
	writer domain.ArtifactWriter
}

func NewScaffoldService(loader domain.ConfigLoader, writer domain.ArtifactWriter) *ScaffoldService {
	return &ScaffoldService{loader: loader, writer: writer}
}

// ScaffoldRequest describes one feature slice to generate.
type ScaffoldRequest struct {
	EntityName       string
	RawProperties    string
	RawRelationships string
	// KnownEntities are already-scaffolded entity names that property types
	// and relationship targets may reference.
	KnownEntities []string
	// Layers restricts generation; empty means the configured layers.
	Layers []domain.LayerID
	// AggregateRoot forces the aggregate-root flag regardless of the
	// parser's collection heuristic.
	AggregateRoot bool
	// DryRun returns artifacts without writing them.
	DryRun bool
	// Force overwrites existing files.
	Force bool
}

// Scaffold generates the feature slice described by req. Generation is
// all-or-nothing; on a dry run the artifacts are returned without touching
// disk.
func (s *ScaffoldService) Scaffold(projectPath string, req ScaffoldRequest) ([]domain.GeneratedArtifact, error) {
	cfg, err := s.loader.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	// Fail early on a broken rule table, before any parsing or generation.
	if _, err := cfg.Graph(); err != nil {
		return nil, err
	}

	schema, err := parse.New(req.KnownEntities...).Parse(req.EntityName, req.RawProperties, req.RawRelationships)
	if err != nil {
		return nil, err
	}
	if req.AggregateRoot {
		schema.IsAggregateRoot = true
	}

	layers := req.Layers
	if len(layers) == 0 {
		layers = cfg.EffectiveLayers()
	}

	registry := template.ForBundle(cfg.Bundle).ApplicableTo(schema)

	artifacts, err := generate.Generate(schema, layers, registry, generate.Options{
		RootNamespace: cfg.RootNamespace,
	})
	if err != nil {
		return nil, err
	}

	if !req.DryRun {
		if err := s.writer.Write(projectPath, artifacts, req.Force); err != nil {
			return nil, fmt.Errorf("writing artifacts: %w", err)
		}
	}

	return artifacts, nil
}
