package tui_test

import (
	"testing"

	"github.com/archforge/archforge/internal/adapters/outbound/tui"
	"github.com/archforge/archforge/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleReport() *domain.AuditReport {
	return &domain.AuditReport{
		Violations: []domain.Violation{
			{
				Fact: domain.DependencyFact{
					FromFile:  "src/Domain/Entities/Order.cs",
					FromLayer: domain.LayerDomain,
					ToLayer:   domain.LayerInfrastructure,
				},
				Severity: domain.SeverityHigh,
				Reason:   "domain must stay free of outward dependencies",
			},
			{
				Fact: domain.DependencyFact{
					FromFile:  "src/Presentation/Endpoints/GetOrderEndpoint.cs",
					FromLayer: domain.LayerPresentation,
					ToLayer:   domain.LayerInfrastructure,
				},
				Severity: domain.SeverityMedium,
				Reason:   "presentation accesses data infrastructure directly",
			},
		},
		TotalFactsScanned: 5,
		PassCount:         3,
		CommitHash:        "a1b2c3d4e5f6a7b8c9d0",
	}
}

func TestRenderAuditReport_ContainsViolationCount(t *testing.T) {
	output := tui.RenderAuditReport(sampleReport())
	assert.Contains(t, output, "2 VIOLATIONS")
}

func TestRenderAuditReport_GroupsBySeverity(t *testing.T) {
	output := tui.RenderAuditReport(sampleReport())
	assert.Contains(t, output, "HIGH")
	assert.Contains(t, output, "MEDIUM")
	assert.NotContains(t, output, "LOW")
}

func TestRenderAuditReport_ContainsFilesAndReasons(t *testing.T) {
	output := tui.RenderAuditReport(sampleReport())
	assert.Contains(t, output, "src/Domain/Entities/Order.cs")
	assert.Contains(t, output, "src/Presentation/Endpoints/GetOrderEndpoint.cs")
	assert.Contains(t, output, "domain must stay free of outward dependencies")
}

func TestRenderAuditReport_ShortensCommitHash(t *testing.T) {
	output := tui.RenderAuditReport(sampleReport())
	assert.Contains(t, output, "a1b2c3d4")
	assert.NotContains(t, output, "a1b2c3d4e5f6a7b8c9d0")
}

func TestRenderAuditReport_CleanReportPasses(t *testing.T) {
	report := &domain.AuditReport{TotalFactsScanned: 4, PassCount: 4}
	output := tui.RenderAuditReport(report)
	assert.Contains(t, output, "PASS")
	assert.NotContains(t, output, "VIOLATIONS")
}
