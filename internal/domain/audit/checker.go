// Package audit checks observed dependency facts against a layer graph.
package audit

import (
	"fmt"

	"github.com/archforge/archforge/internal/domain"
)

// Run audits a sequence of dependency facts against the graph. Pure and
// deterministic: violations appear in input order, and a fact set restricted
// to allowed edges yields zero violations. A fact naming a layer the graph
// does not know fails the whole call with *domain.AuditError and no report.
func Run(facts []domain.DependencyFact, graph *domain.LayerGraph) (*domain.AuditReport, error) {
	// Validate every fact up front so a bad fact late in the sequence
	// cannot leave a partially built report behind.
	for _, f := range facts {
		if !graph.Knows(f.FromLayer) {
			return nil, unknownLayer(f, f.FromLayer)
		}
		if !graph.Knows(f.ToLayer) {
			return nil, unknownLayer(f, f.ToLayer)
		}
	}

	report := &domain.AuditReport{TotalFactsScanned: len(facts)}
	for _, f := range facts {
		if !graph.IsViolation(f.FromLayer, f.ToLayer) {
			report.PassCount++
			continue
		}
		report.Violations = append(report.Violations, domain.Violation{
			Fact:     f,
			Severity: domain.SeverityFor(f.FromLayer, f.ToLayer),
			Reason:   reason(f),
		})
	}

	return report, nil
}

func reason(f domain.DependencyFact) string {
	switch {
	case f.FromLayer == domain.LayerDomain:
		return fmt.Sprintf("domain layer must not depend on %s", f.ToLayer)
	case f.FromLayer == domain.LayerPresentation && f.ToLayer == domain.LayerInfrastructure:
		return "presentation accesses infrastructure directly, bypassing domain abstractions"
	default:
		return fmt.Sprintf("%s may not depend on %s", f.FromLayer, f.ToLayer)
	}
}

func unknownLayer(f domain.DependencyFact, l domain.LayerID) *domain.AuditError {
	return &domain.AuditError{
		Kind:   domain.AuditUnknownLayer,
		Detail: fmt.Sprintf("fact %s references unknown layer %q", f.FromFile, l),
	}
}
