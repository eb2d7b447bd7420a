// Package template models reusable code shapes with named placeholders.
// Slots form a closed, tagged set of fill rules so that unresolved or
// mistyped placeholders surface as explicit generation errors instead of
// silently producing malformed output.
package template

import "github.com/archforge/archforge/internal/domain"

// ArtifactKind classifies what a template unit produces within its layer.
type ArtifactKind string

const (
	KindEntity         ArtifactKind = "entity"
	KindInterface      ArtifactKind = "interface"
	KindImplementation ArtifactKind = "implementation"
	KindConfiguration  ArtifactKind = "configuration"
	KindEndpoint       ArtifactKind = "endpoint"
	KindTest           ArtifactKind = "test"
)

// SlotSource names the schema field a slot draws its value from.
type SlotSource string

const (
	SourceEntityName    SlotSource = "entity_name"
	SourceNamespace     SlotSource = "namespace"
	SourceProperties    SlotSource = "properties"
	SourceRelationships SlotSource = "relationships"
)

// FillRule declares how a slot's source value is transformed before
// substitution.
type FillRule string

const (
	// Scalar rules.
	FillVerbatim    FillRule = "verbatim"
	FillPascal      FillRule = "pascal"
	FillCamel       FillRule = "camel"
	FillSnake       FillRule = "snake"
	FillPlural      FillRule = "plural"       // pluralized, PascalCase
	FillPluralSnake FillRule = "plural_snake" // pluralized, snake_case (tables, routes)

	// List rules: one rendered Line per item, in schema order.
	FillList FillRule = "list"
)

// Slot is one named placeholder inside a unit body. The body marker is
// {{Name}}. For list slots, Line is the per-item template; its own markers
// are fixed per source (see the generate package).
type Slot struct {
	Name   string
	Source SlotSource
	Rule   FillRule
	Line   string
}

// Unit is one reusable code shape scoped to a single layer and artifact
// kind. PathPattern uses the same {{Slot}} markers as Body. Immutable after
// registration.
type Unit struct {
	Layer       domain.LayerID
	Kind        ArtifactKind
	PathPattern string
	Slots       []Slot
	Body        string
}

// Registry holds template units in registration order. Populated once at
// startup and shared read-only afterward, so it needs no synchronization.
type Registry struct {
	units []Unit
}

// NewRegistry creates a registry from units, preserving their order.
func NewRegistry(units ...Unit) *Registry {
	r := &Registry{units: make([]Unit, len(units))}
	copy(r.units, units)
	return r
}

// UnitsFor returns the units registered for a layer, in registration order.
func (r *Registry) UnitsFor(layer domain.LayerID) []Unit {
	var out []Unit
	for _, u := range r.units {
		if u.Layer == layer {
			out = append(out, u)
		}
	}
	return out
}

// Len returns the number of registered units.
func (r *Registry) Len() int { return len(r.units) }

// ForBundle returns the built-in registry for a bundle name, defaulting to
// the FastEndpoints bundle.
func ForBundle(bundle domain.BundleName) *Registry {
	switch bundle {
	case domain.BundleMinimalAPI:
		return MinimalAPIBundle()
	default:
		return FastEndpointsBundle()
	}
}
