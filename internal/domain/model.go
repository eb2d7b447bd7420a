package domain

// PropertyType is one of the fixed primitive property types, or an entity
// reference (the referenced entity's name).
type PropertyType string

const (
	TypeString  PropertyType = "string"
	TypeInt     PropertyType = "int"
	TypeDecimal PropertyType = "decimal"
	TypeBool    PropertyType = "bool"
	TypeDate    PropertyType = "date"
	TypeGuid    PropertyType = "guid"
)

// PrimitiveTypes enumerates the recognized primitive property types.
var PrimitiveTypes = []PropertyType{
	TypeString, TypeInt, TypeDecimal, TypeBool, TypeDate, TypeGuid,
}

// IsPrimitive reports whether t is one of the fixed primitive types.
func (t PropertyType) IsPrimitive() bool {
	for _, p := range PrimitiveTypes {
		if t == p {
			return true
		}
	}
	return false
}

// PropertySpec is one property of an entity schema.
type PropertySpec struct {
	Name string       `json:"name"`
	Type PropertyType `json:"type"`
}

// Cardinality of a relationship between two entities.
type Cardinality string

const (
	OneToMany Cardinality = "one-to-many"
	ManyToOne Cardinality = "many-to-one"
	OneToOne  Cardinality = "one-to-one"
)

// ValidCardinalities enumerates the recognized relationship cardinalities.
var ValidCardinalities = []Cardinality{OneToMany, ManyToOne, OneToOne}

// RelationshipSpec links an entity schema to another entity.
type RelationshipSpec struct {
	TargetEntity string      `json:"target_entity"`
	Cardinality  Cardinality `json:"cardinality"`
}

// EntitySchema is the parsed, validated description of a domain object to
// scaffold. Created once by the parser, immutable thereafter. Property order
// is the order of appearance in the input, so repeated generation from the
// same input is byte-for-byte reproducible.
type EntitySchema struct {
	Name            string             `json:"name"`
	Properties      []PropertySpec     `json:"properties"`
	Relationships   []RelationshipSpec `json:"relationships,omitempty"`
	IsAggregateRoot bool               `json:"is_aggregate_root"`
}

// Property returns the property with the given name, if present.
func (s *EntitySchema) Property(name string) (PropertySpec, bool) {
	for _, p := range s.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return PropertySpec{}, false
}

// GeneratedArtifact is one emitted file-content unit. Ownership transfers to
// the caller on return; the engine never persists artifacts itself.
type GeneratedArtifact struct {
	Path    string  `json:"path"`
	Content string  `json:"content"`
	Layer   LayerID `json:"layer"`
}

// DependencyFact is one observed source-level dependency edge, extracted by
// the source scanner and consumed by the conformance checker. Ephemeral:
// exists only for the duration of one audit pass.
type DependencyFact struct {
	FromFile  string  `json:"from_file"`
	FromLayer LayerID `json:"from_layer"`
	ToLayer   LayerID `json:"to_layer"`
}

// Violation is one dependency fact that breaks the layer graph.
type Violation struct {
	Fact     DependencyFact `json:"fact"`
	Severity string         `json:"severity"`
	Reason   string         `json:"reason"`
}

// AuditReport holds the result of one conformance audit. Violations preserve
// the input order of their facts. Never mutated after construction.
type AuditReport struct {
	Violations        []Violation `json:"violations"`
	TotalFactsScanned int         `json:"total_facts_scanned"`
	PassCount         int         `json:"pass_count"`
	CommitHash        string      `json:"commit_hash,omitempty"`
}

// HighestSeverity returns the worst severity present in the report,
// or "" for a clean report.
func (r *AuditReport) HighestSeverity() string {
	worst := ""
	rank := map[string]int{SeverityLow: 1, SeverityMedium: 2, SeverityHigh: 3}
	for _, v := range r.Violations {
		if rank[v.Severity] > rank[worst] {
			worst = v.Severity
		}
	}
	return worst
}
