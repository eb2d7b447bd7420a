package generate

import (
	"strings"

	"github.com/fatih/camelcase"
	"github.com/go-openapi/inflect"
)

var rules = ruleset()

// ruleset returns the English inflection rules used for table and
// collection naming, with common initialisms registered as acronyms so that
// "APIKey" pluralizes to "APIKeys" and not "APIKeies".
func ruleset() *inflect.Ruleset {
	rules := inflect.NewDefaultRuleset()
	for _, w := range []string{
		"API", "CSV", "DB", "DTO", "GUID", "HTTP", "ID",
		"JSON", "SKU", "SQL", "SSO", "UI", "URI", "URL", "UUID", "XML",
	} {
		rules.AddAcronym(w)
	}
	return rules
}

// words splits an identifier into its constituent words, accepting
// CamelCase, snake_case, and kebab-case input.
func words(s string) []string {
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	var out []string
	for _, field := range strings.Fields(s) {
		out = append(out, camelcase.Split(field)...)
	}
	return out
}

// pascal converts an identifier to PascalCase.
func pascal(s string) string {
	var b strings.Builder
	for _, w := range words(s) {
		b.WriteString(rules.Capitalize(strings.ToLower(w)))
	}
	return b.String()
}

// camel converts an identifier to camelCase.
func camel(s string) string {
	p := pascal(s)
	if p == "" {
		return p
	}
	return strings.ToLower(p[:1]) + p[1:]
}

// snake converts an identifier to snake_case.
func snake(s string) string {
	parts := words(s)
	for i, w := range parts {
		parts[i] = strings.ToLower(w)
	}
	return strings.Join(parts, "_")
}

// plural pluralizes an identifier, preserving PascalCase.
func plural(s string) string {
	return rules.Pluralize(pascal(s))
}

// pluralSnake pluralizes an identifier in snake_case, the form used for
// table names and URL routes.
func pluralSnake(s string) string {
	parts := words(s)
	if len(parts) == 0 {
		return ""
	}
	for i, w := range parts {
		parts[i] = strings.ToLower(w)
	}
	parts[len(parts)-1] = rules.Pluralize(parts[len(parts)-1])
	return strings.Join(parts, "_")
}
