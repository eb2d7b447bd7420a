// Package parse turns raw property and relationship descriptions
// ("Name:string, Price:decimal") into validated entity schemas.
package parse

import (
	"strings"
	"unicode"

	"github.com/archforge/archforge/internal/domain"
)

// Parser validates entity descriptions against the fixed primitive type set
// plus any previously declared entity names. Pure: identical input always
// yields a schema with properties in identical order.
type Parser struct {
	known map[string]bool
}

// New creates a Parser. knownEntities are names of already-declared entities
// that property types and relationship targets may reference.
func New(knownEntities ...string) *Parser {
	known := make(map[string]bool, len(knownEntities))
	for _, n := range knownEntities {
		known[n] = true
	}
	return &Parser{known: known}
}

// Parse builds an EntitySchema from an entity name and raw property and
// relationship strings. name may be empty when the caller assigns it later.
// Failures are *domain.ParseError values citing the offending token.
func (p *Parser) Parse(name, rawProperties, rawRelationships string) (*domain.EntitySchema, error) {
	if name != "" && !isIdentifier(name) {
		return nil, &domain.ParseError{Kind: domain.ParseInvalidIdentifier, Token: name}
	}

	props, err := p.parseProperties(rawProperties)
	if err != nil {
		return nil, err
	}

	rels, err := p.parseRelationships(rawRelationships)
	if err != nil {
		return nil, err
	}

	return &domain.EntitySchema{
		Name:            name,
		Properties:      props,
		Relationships:   rels,
		IsAggregateRoot: ownsCollection(rels),
	}, nil
}

func (p *Parser) parseProperties(raw string) ([]domain.PropertySpec, error) {
	var props []domain.PropertySpec
	seen := make(map[string]bool)

	for _, segment := range splitSegments(raw) {
		propName, typeToken, ok := strings.Cut(segment, ":")
		propName = strings.TrimSpace(propName)
		typeToken = strings.TrimSpace(typeToken)
		if !ok || propName == "" || typeToken == "" || strings.Contains(typeToken, ":") {
			return nil, &domain.ParseError{Kind: domain.ParseMalformedProperty, Token: segment}
		}

		if !isIdentifier(propName) {
			return nil, &domain.ParseError{Kind: domain.ParseInvalidIdentifier, Token: propName}
		}

		lower := strings.ToLower(propName)
		if seen[lower] {
			return nil, &domain.ParseError{Kind: domain.ParseDuplicateProperty, Token: propName}
		}
		seen[lower] = true

		propType := domain.PropertyType(typeToken)
		if !propType.IsPrimitive() && !p.known[typeToken] {
			return nil, &domain.ParseError{Kind: domain.ParseMalformedProperty, Token: segment}
		}

		props = append(props, domain.PropertySpec{Name: propName, Type: propType})
	}

	return props, nil
}

func (p *Parser) parseRelationships(raw string) ([]domain.RelationshipSpec, error) {
	var rels []domain.RelationshipSpec

	for _, segment := range splitSegments(raw) {
		target, cardToken, ok := strings.Cut(segment, ":")
		target = strings.TrimSpace(target)
		cardToken = strings.TrimSpace(cardToken)
		if !ok || target == "" || cardToken == "" {
			return nil, &domain.ParseError{Kind: domain.ParseMalformedProperty, Token: segment}
		}

		if !isIdentifier(target) {
			return nil, &domain.ParseError{Kind: domain.ParseInvalidIdentifier, Token: target}
		}

		card := domain.Cardinality(strings.ToLower(cardToken))
		if !validCardinality(card) {
			return nil, &domain.ParseError{Kind: domain.ParseUnknownCardinality, Token: cardToken}
		}

		rels = append(rels, domain.RelationshipSpec{TargetEntity: target, Cardinality: card})
	}

	return rels, nil
}

// splitSegments splits on top-level commas and drops empty segments, so
// trailing commas and blank input are accepted.
func splitSegments(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// isIdentifier reports whether s starts with a letter and contains only
// alphanumerics.
func isIdentifier(s string) bool {
	for i, r := range s {
		if i == 0 {
			if !unicode.IsLetter(r) {
				return false
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

// ownsCollection reports whether the entity owns at least one child
// collection, which marks it as an aggregate root.
func ownsCollection(rels []domain.RelationshipSpec) bool {
	for _, r := range rels {
		if r.Cardinality == domain.OneToMany {
			return true
		}
	}
	return false
}

func validCardinality(c domain.Cardinality) bool {
	for _, v := range domain.ValidCardinalities {
		if c == v {
			return true
		}
	}
	return false
}
