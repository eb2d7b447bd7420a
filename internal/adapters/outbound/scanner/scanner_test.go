package scanner_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/archforge/archforge/internal/adapters/outbound/scanner"
	"github.com/archforge/archforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	cleanFixture      = "../../../../testdata/cleanarch/clean"
	violationsFixture = "../../../../testdata/cleanarch/violations"
)

func TestExtractFacts_CleanProject(t *testing.T) {
	facts, err := scanner.New().ExtractFacts(cleanFixture, domain.DefaultConfig())
	require.NoError(t, err)

	// Domain files only use System namespaces, so they produce no facts.
	expected := []domain.DependencyFact{
		{
			FromFile:  "src/Infrastructure/Repositories/OrderRepository.cs",
			FromLayer: domain.LayerInfrastructure,
			ToLayer:   domain.LayerDomain,
		},
		{
			FromFile:  "src/Presentation/Endpoints/GetOrderEndpoint.cs",
			FromLayer: domain.LayerPresentation,
			ToLayer:   domain.LayerDomain,
		},
		{
			FromFile:  "tests/Domain.Tests/OrderTests.cs",
			FromLayer: domain.LayerTest,
			ToLayer:   domain.LayerDomain,
		},
	}
	assert.Equal(t, expected, facts)
}

func TestExtractFacts_ViolatingProject(t *testing.T) {
	facts, err := scanner.New().ExtractFacts(violationsFixture, domain.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, facts, 5)

	assert.Equal(t, domain.DependencyFact{
		FromFile:  "src/Domain/Entities/Order.cs",
		FromLayer: domain.LayerDomain,
		ToLayer:   domain.LayerInfrastructure,
	}, facts[0])

	assert.Contains(t, facts, domain.DependencyFact{
		FromFile:  "src/Presentation/Endpoints/GetOrderEndpoint.cs",
		FromLayer: domain.LayerPresentation,
		ToLayer:   domain.LayerInfrastructure,
	})
}

func TestExtractFacts_Deterministic(t *testing.T) {
	first, err := scanner.New().ExtractFacts(violationsFixture, domain.DefaultConfig())
	require.NoError(t, err)

	second, err := scanner.New().ExtractFacts(violationsFixture, domain.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExtractFacts_FrameworkNamespacesIgnored(t *testing.T) {
	facts, err := scanner.New().ExtractFacts(violationsFixture, domain.DefaultConfig())
	require.NoError(t, err)

	// "Microsoft.EntityFrameworkCore" in the repository file must not be
	// read as a project-layer dependency.
	for _, f := range facts {
		if f.FromFile == "src/Infrastructure/Repositories/OrderRepository.cs" {
			assert.Equal(t, domain.LayerDomain, f.ToLayer)
		}
	}
}

func TestExtractFacts_ExcludePaths(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.ExcludePaths = []string{"src/Domain/**"}

	facts, err := scanner.New().ExtractFacts(violationsFixture, cfg)
	require.NoError(t, err)

	for _, f := range facts {
		assert.NotContains(t, f.FromFile, "src/Domain/")
	}
}

func TestExtractFacts_AliasOverride(t *testing.T) {
	dir := t.TempDir()
	svc := filepath.Join(dir, "src", "Services")
	require.NoError(t, os.MkdirAll(svc, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(svc, "OrderService.cs"), []byte(
		"using App.Persistence;\n\nnamespace App.Services;\n\npublic class OrderService { }\n"), 0644))

	cfg := domain.DefaultConfig()
	cfg.LayerAliases = map[string]domain.LayerID{"services": domain.LayerPresentation}

	facts, err := scanner.New().ExtractFacts(dir, cfg)
	require.NoError(t, err)
	require.Len(t, facts, 1)
	assert.Equal(t, domain.LayerPresentation, facts[0].FromLayer)
	assert.Equal(t, domain.LayerInfrastructure, facts[0].ToLayer)
}

func TestExtractFacts_TestDirectoryWinsOverDomainSegment(t *testing.T) {
	facts, err := scanner.New().ExtractFacts(cleanFixture, domain.DefaultConfig())
	require.NoError(t, err)

	for _, f := range facts {
		if f.FromFile == "tests/Domain.Tests/OrderTests.cs" {
			assert.Equal(t, domain.LayerTest, f.FromLayer)
		}
	}
}

func TestExtractFacts_EmptyProject(t *testing.T) {
	facts, err := scanner.New().ExtractFacts(t.TempDir(), domain.DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, facts)
}
