package domain

import "fmt"

// BundleName selects a built-in template bundle.
type BundleName string

const (
	BundleFastEndpoints BundleName = "fastendpoints"
	BundleMinimalAPI    BundleName = "minimal-api"
)

// ValidBundles enumerates all built-in template bundles.
var ValidBundles = []BundleName{BundleFastEndpoints, BundleMinimalAPI}

// ProjectConfig holds project-level configuration loaded from .archforge.yaml.
type ProjectConfig struct {
	Bundle        BundleName           `yaml:"bundle"          json:"bundle,omitempty"`
	RootNamespace string               `yaml:"root_namespace"  json:"root_namespace,omitempty"`
	SourceRoot    string               `yaml:"source_root"     json:"source_root,omitempty"`
	Layers        []LayerID            `yaml:"layers"          json:"layers,omitempty"`
	ExcludePaths  []string             `yaml:"exclude_paths"   json:"exclude_paths,omitempty"`
	LayerRules    map[LayerID][]LayerID `yaml:"layer_rules"    json:"layer_rules,omitempty"`
	LayerAliases  map[string]LayerID   `yaml:"layer_aliases"   json:"layer_aliases,omitempty"`
}

// DefaultConfig returns the configuration used when no .archforge.yaml exists:
// the FastEndpoints bundle, all four layers, and the standard rule table.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		Bundle:        BundleFastEndpoints,
		RootNamespace: "App",
		SourceRoot:    "src",
		Layers:        append([]LayerID(nil), ValidLayers...),
	}
}

// Graph builds the active LayerGraph: the layer_rules override when present,
// otherwise the default table.
func (c ProjectConfig) Graph() (*LayerGraph, error) {
	if len(c.LayerRules) == 0 {
		return DefaultLayerGraph(), nil
	}
	return NewLayerGraph(c.LayerRules)
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	// 1. bundle must be known or empty
	if c.Bundle != "" {
		valid := false
		for _, b := range ValidBundles {
			if c.Bundle == b {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("unknown bundle %q (valid: fastendpoints, minimal-api)", c.Bundle)
		}
	}

	// 2. layers must be known
	for _, l := range c.Layers {
		if l.Rank() < 0 {
			return fmt.Errorf("unknown layer %q in layers", l)
		}
	}

	// 3. layer_rules keys and targets must be known layers
	for from, targets := range c.LayerRules {
		if from.Rank() < 0 {
			return fmt.Errorf("unknown layer %q in layer_rules", from)
		}
		for _, to := range targets {
			if to.Rank() < 0 {
				return fmt.Errorf("unknown layer %q in layer_rules[%s]", to, from)
			}
		}
	}

	// 4. aliases must map to known layers
	for alias, l := range c.LayerAliases {
		if alias == "" {
			return fmt.Errorf("empty alias in layer_aliases")
		}
		if l.Rank() < 0 {
			return fmt.Errorf("alias %q maps to unknown layer %q", alias, l)
		}
	}

	return nil
}

// EffectiveLayers returns the configured layers, defaulting to all four.
func (c ProjectConfig) EffectiveLayers() []LayerID {
	if len(c.Layers) > 0 {
		return c.Layers
	}
	return append([]LayerID(nil), ValidLayers...)
}
