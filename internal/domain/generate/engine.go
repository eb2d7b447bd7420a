// Package generate renders template units into file-content artifacts by
// substituting a validated entity schema into each unit's slots.
//
// Generation is all-or-nothing: any unresolved slot or uncovered layer
// aborts the whole call so a half-scaffolded feature slice is never emitted.
// Output is deterministic: artifacts are ordered by layer rank, then by
// unit registration order, and repeated generation from identical input is
// byte-for-byte reproducible.
package generate

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/archforge/archforge/internal/domain"
	"github.com/archforge/archforge/internal/domain/template"
)

// Options carries the per-invocation naming context.
type Options struct {
	// RootNamespace prefixes every generated namespace; defaults to "App".
	RootNamespace string
}

var markerPattern = regexp.MustCompile(`\{\{[A-Za-z]+\}\}`)

// Generate renders every unit registered for the requested layers against
// the schema. Side-effect-free: artifacts are returned in memory and writing
// them is the caller's responsibility.
func Generate(schema *domain.EntitySchema, layers []domain.LayerID, reg *template.Registry, opts Options) ([]domain.GeneratedArtifact, error) {
	if opts.RootNamespace == "" {
		opts.RootNamespace = "App"
	}

	ordered := orderLayers(layers)

	var artifacts []domain.GeneratedArtifact
	for _, layer := range ordered {
		units := reg.UnitsFor(layer)
		if len(units) == 0 {
			return nil, &domain.GenError{
				Kind:   domain.GenNoTemplateForLayer,
				Detail: fmt.Sprintf("no template registered for layer %q", layer),
			}
		}

		for _, u := range units {
			artifact, err := render(u, schema, opts)
			if err != nil {
				return nil, err
			}
			artifacts = append(artifacts, artifact)
		}
	}

	return artifacts, nil
}

// orderLayers deduplicates and sorts the requested layers by ascending rank.
func orderLayers(layers []domain.LayerID) []domain.LayerID {
	seen := make(map[domain.LayerID]bool, len(layers))
	var out []domain.LayerID
	for _, l := range layers {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rank() < out[j].Rank() })
	return out
}

func render(u template.Unit, schema *domain.EntitySchema, opts Options) (domain.GeneratedArtifact, error) {
	body := u.Body
	path := u.PathPattern

	for _, slot := range u.Slots {
		value, err := resolveSlot(slot, schema, opts)
		if err != nil {
			return domain.GeneratedArtifact{}, err
		}
		marker := "{{" + slot.Name + "}}"
		body = strings.ReplaceAll(body, marker, value)
		path = strings.ReplaceAll(path, marker, value)
	}

	// A marker that survived substitution means the unit references a slot
	// it never declared.
	if m := markerPattern.FindString(body + "\n" + path); m != "" {
		return domain.GeneratedArtifact{}, &domain.GenError{
			Kind:   domain.GenUnresolvedSlot,
			Detail: fmt.Sprintf("unit %s/%s references undeclared slot %s", u.Layer, u.Kind, m),
		}
	}

	return domain.GeneratedArtifact{Path: path, Content: body, Layer: u.Layer}, nil
}

func resolveSlot(slot template.Slot, schema *domain.EntitySchema, opts Options) (string, error) {
	if slot.Rule == template.FillList {
		return resolveList(slot, schema)
	}

	var source string
	switch slot.Source {
	case template.SourceEntityName:
		source = schema.Name
	case template.SourceNamespace:
		source = opts.RootNamespace
	default:
		return "", unresolved(slot, "unknown source %q", slot.Source)
	}
	if source == "" {
		return "", unresolved(slot, "empty %s", slot.Source)
	}

	switch slot.Rule {
	case template.FillVerbatim:
		return source, nil
	case template.FillPascal:
		return pascal(source), nil
	case template.FillCamel:
		return camel(source), nil
	case template.FillSnake:
		return snake(source), nil
	case template.FillPlural:
		return plural(source), nil
	case template.FillPluralSnake:
		return pluralSnake(source), nil
	default:
		return "", unresolved(slot, "unknown fill rule %q", slot.Rule)
	}
}

// resolveList renders one Line per item in schema order. An empty collection
// is an error, not an empty expansion: a list slot on a schema that cannot
// feed it means the caller forgot to pre-filter applicable units.
func resolveList(slot template.Slot, schema *domain.EntitySchema) (string, error) {
	switch slot.Source {
	case template.SourceProperties:
		if len(schema.Properties) == 0 {
			return "", unresolved(slot, "schema has no properties")
		}
		lines := make([]string, len(schema.Properties))
		for i, p := range schema.Properties {
			lines[i] = renderPropertyLine(slot.Line, p)
		}
		return strings.Join(lines, "\n"), nil

	case template.SourceRelationships:
		if len(schema.Relationships) == 0 {
			return "", unresolved(slot, "schema has no relationships")
		}
		lines := make([]string, len(schema.Relationships))
		for i, r := range schema.Relationships {
			lines[i] = renderRelationshipLine(slot.Line, r)
		}
		return strings.Join(lines, "\n"), nil

	default:
		return "", unresolved(slot, "list slot over non-list source %q", slot.Source)
	}
}

func renderPropertyLine(line string, p domain.PropertySpec) string {
	return strings.NewReplacer(
		"{{Name}}", pascal(p.Name),
		"{{NameCamel}}", camel(p.Name),
		"{{NameSnake}}", snake(p.Name),
		"{{CsType}}", csType(p.Type),
	).Replace(line)
}

func renderRelationshipLine(line string, r domain.RelationshipSpec) string {
	target := pascal(r.TargetEntity)
	navType, navName, navInit := target, target, ""
	if r.Cardinality == domain.OneToMany {
		navType = "ICollection<" + target + ">"
		navName = plural(r.TargetEntity)
		navInit = " = new List<" + target + ">();"
	}
	return strings.NewReplacer(
		"{{Target}}", target,
		"{{TargetPlural}}", plural(r.TargetEntity),
		"{{TargetCamel}}", camel(r.TargetEntity),
		"{{Cardinality}}", string(r.Cardinality),
		"{{NavType}}", navType,
		"{{NavName}}", navName,
		"{{NavInit}}", navInit,
	).Replace(line)
}

// csType maps a schema property type to its C# representation. Entity
// references map to the referenced entity's PascalCase name.
func csType(t domain.PropertyType) string {
	switch t {
	case domain.TypeString:
		return "string"
	case domain.TypeInt:
		return "int"
	case domain.TypeDecimal:
		return "decimal"
	case domain.TypeBool:
		return "bool"
	case domain.TypeDate:
		return "DateTime"
	case domain.TypeGuid:
		return "Guid"
	default:
		return pascal(string(t))
	}
}

func unresolved(slot template.Slot, format string, args ...any) *domain.GenError {
	return &domain.GenError{
		Kind:   domain.GenUnresolvedSlot,
		Detail: fmt.Sprintf("slot %s: ", slot.Name) + fmt.Sprintf(format, args...),
	}
}
