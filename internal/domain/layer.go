package domain

import "sort"

// LayerID identifies one architectural tier.
type LayerID string

const (
	LayerDomain         LayerID = "domain"
	LayerInfrastructure LayerID = "infrastructure"
	LayerPresentation   LayerID = "presentation"
	LayerTest           LayerID = "test"
)

// ValidLayers enumerates all recognized layers in rank order.
var ValidLayers = []LayerID{
	LayerDomain,
	LayerInfrastructure,
	LayerPresentation,
	LayerTest,
}

// Rank returns the layer's position in the dependency ordering.
// Lower ranks may be depended on by higher ranks; -1 for unknown layers.
func (l LayerID) Rank() int {
	for i, v := range ValidLayers {
		if v == l {
			return i
		}
	}
	return -1
}

// ParseLayer resolves a layer name to a LayerID.
func ParseLayer(name string) (LayerID, bool) {
	l := LayerID(name)
	return l, l.Rank() >= 0
}

// Violation severities, ordered worst-first.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// LayerGraph encodes which layers each layer is permitted to depend on.
// Immutable after construction; safe for concurrent use.
type LayerGraph struct {
	allowed map[LayerID]map[LayerID]bool
	layers  []LayerID // known layers, rank order
}

// NewLayerGraph builds a graph from an adjacency table mapping each layer to
// the layers it may depend on. The table is transitively closed, so a rule
// like presentation→infrastructure→domain implies presentation→domain.
// Fails with *ConfigError if the table contains a cycle or names an unknown
// layer.
func NewLayerGraph(adjacency map[LayerID][]LayerID) (*LayerGraph, error) {
	for from, targets := range adjacency {
		if from.Rank() < 0 {
			return nil, &ConfigError{Detail: "unknown layer " + string(from) + " in dependency rules"}
		}
		for _, to := range targets {
			if to.Rank() < 0 {
				return nil, &ConfigError{Detail: "unknown layer " + string(to) + " in rules for " + string(from)}
			}
		}
	}

	if cycle := findCycle(adjacency); len(cycle) > 0 {
		return nil, &ConfigError{Detail: "dependency rules contain a cycle: " + joinLayers(cycle)}
	}

	g := &LayerGraph{allowed: make(map[LayerID]map[LayerID]bool)}
	for _, l := range ValidLayers {
		if _, ok := adjacency[l]; ok {
			g.layers = append(g.layers, l)
			g.allowed[l] = make(map[LayerID]bool)
		}
	}

	// Transitive closure via DFS from each layer.
	for from := range g.allowed {
		var visit func(l LayerID)
		visit = func(l LayerID) {
			for _, to := range adjacency[l] {
				if !g.allowed[from][to] {
					g.allowed[from][to] = true
					visit(to)
				}
			}
		}
		visit(from)
	}

	return g, nil
}

// DefaultLayerGraph returns the standard Clean Architecture rule table:
// domain depends on nothing, infrastructure and presentation depend on
// domain only, and test may depend on everything.
func DefaultLayerGraph() *LayerGraph {
	g, err := NewLayerGraph(map[LayerID][]LayerID{
		LayerDomain:         {},
		LayerInfrastructure: {LayerDomain},
		LayerPresentation:   {LayerDomain},
		LayerTest:           {LayerDomain, LayerInfrastructure, LayerPresentation},
	})
	if err != nil {
		// The built-in table is acyclic by construction.
		panic(err)
	}
	return g
}

// Layers returns the layers the graph knows about, in rank order.
func (g *LayerGraph) Layers() []LayerID {
	out := make([]LayerID, len(g.layers))
	copy(out, g.layers)
	return out
}

// Knows reports whether the layer participates in this graph.
func (g *LayerGraph) Knows(l LayerID) bool {
	_, ok := g.allowed[l]
	return ok
}

// AllowedTargets returns the layers the given layer may depend on,
// sorted by rank.
func (g *LayerGraph) AllowedTargets(l LayerID) []LayerID {
	var out []LayerID
	for to := range g.allowed[l] {
		out = append(out, to)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rank() < out[j].Rank() })
	return out
}

// IsViolation reports whether a dependency from→to breaks the rules.
// Self-dependencies are never violations.
func (g *LayerGraph) IsViolation(from, to LayerID) bool {
	if from == to {
		return false
	}
	return !g.allowed[from][to]
}

// SeverityFor returns the severity of a from→to violation per the fixed
// table: any outgoing edge from domain is high (the core must stay pure),
// presentation reaching into infrastructure is medium (direct data access
// bypassing domain abstractions), everything else is low.
func SeverityFor(from, to LayerID) string {
	switch {
	case from == LayerDomain:
		return SeverityHigh
	case from == LayerPresentation && to == LayerInfrastructure:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// findCycle runs DFS with grey/black coloring over the adjacency table and
// returns the first cycle found, or nil.
func findCycle(adjacency map[LayerID][]LayerID) []LayerID {
	const (
		white = 0
		grey  = 1
		black = 2
	)

	color := make(map[LayerID]int)
	parent := make(map[LayerID]LayerID)

	// Sort keys for deterministic traversal.
	keys := make([]LayerID, 0, len(adjacency))
	for k := range adjacency {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	var cycle []LayerID
	var dfs func(u LayerID) bool
	dfs = func(u LayerID) bool {
		color[u] = grey
		for _, v := range adjacency[u] {
			if color[v] == grey {
				// Back edge. Walk parents to extract the cycle.
				cycle = []LayerID{v}
				for cur := u; cur != v; cur = parent[cur] {
					cycle = append(cycle, cur)
				}
				for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
					cycle[i], cycle[j] = cycle[j], cycle[i]
				}
				return true
			}
			if color[v] == white {
				parent[v] = u
				if dfs(v) {
					return true
				}
			}
		}
		color[u] = black
		return false
	}

	for _, k := range keys {
		if color[k] == white && dfs(k) {
			return cycle
		}
	}
	return nil
}

func joinLayers(layers []LayerID) string {
	s := ""
	for i, l := range layers {
		if i > 0 {
			s += " -> "
		}
		s += string(l)
	}
	return s
}
