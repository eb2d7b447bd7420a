package application_test

import (
	"testing"

	"github.com/archforge/archforge/internal/adapters/outbound/config"
	"github.com/archforge/archforge/internal/adapters/outbound/gitinfo"
	"github.com/archforge/archforge/internal/adapters/outbound/scanner"
	"github.com/archforge/archforge/internal/application"
	"github.com/archforge/archforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	cleanFixture      = "../../testdata/cleanarch/clean"
	violationsFixture = "../../testdata/cleanarch/violations"
)

func newAuditService() *application.AuditService {
	return application.NewAuditService(config.New(), scanner.New(), gitinfo.New())
}

func TestAuditService_CleanProject(t *testing.T) {
	report, err := newAuditService().AuditProject(cleanFixture)
	require.NoError(t, err)

	assert.Empty(t, report.Violations)
	assert.Equal(t, 3, report.TotalFactsScanned)
	assert.Equal(t, 3, report.PassCount)
}

func TestAuditService_ViolatingProject(t *testing.T) {
	report, err := newAuditService().AuditProject(violationsFixture)
	require.NoError(t, err)

	require.Len(t, report.Violations, 2)

	first := report.Violations[0]
	assert.Equal(t, domain.LayerDomain, first.Fact.FromLayer)
	assert.Equal(t, domain.LayerInfrastructure, first.Fact.ToLayer)
	assert.Equal(t, domain.SeverityHigh, first.Severity)

	second := report.Violations[1]
	assert.Equal(t, domain.LayerPresentation, second.Fact.FromLayer)
	assert.Equal(t, domain.LayerInfrastructure, second.Fact.ToLayer)
	assert.Equal(t, domain.SeverityMedium, second.Severity)

	assert.Equal(t, 5, report.TotalFactsScanned)
	assert.Equal(t, 3, report.PassCount)
	assert.Equal(t, domain.SeverityHigh, report.HighestSeverity())
}

func TestAuditService_NoCommitHashOutsideGit(t *testing.T) {
	report, err := newAuditService().AuditProject(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, report.CommitHash)
}

func TestAuditService_ActiveGraph(t *testing.T) {
	graph, err := newAuditService().ActiveGraph(cleanFixture)
	require.NoError(t, err)

	assert.True(t, graph.IsViolation(domain.LayerDomain, domain.LayerInfrastructure))
	assert.False(t, graph.IsViolation(domain.LayerTest, domain.LayerPresentation))
}
