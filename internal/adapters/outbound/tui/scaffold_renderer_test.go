package tui_test

import (
	"testing"

	"github.com/archforge/archforge/internal/adapters/outbound/tui"
	"github.com/archforge/archforge/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleArtifacts() []domain.GeneratedArtifact {
	return []domain.GeneratedArtifact{
		{Path: "src/Domain/Entities/Order.cs", Layer: domain.LayerDomain},
		{Path: "src/Domain/Repositories/IOrderRepository.cs", Layer: domain.LayerDomain},
		{Path: "src/Infrastructure/Repositories/OrderRepository.cs", Layer: domain.LayerInfrastructure},
	}
}

func TestRenderArtifacts_ListsEveryFile(t *testing.T) {
	output := tui.RenderArtifacts("Order", sampleArtifacts(), false)
	assert.Contains(t, output, "Scaffolded Order")
	assert.Contains(t, output, "(3 files)")
	assert.Contains(t, output, "src/Domain/Entities/Order.cs")
	assert.Contains(t, output, "src/Infrastructure/Repositories/OrderRepository.cs")
}

func TestRenderArtifacts_GroupsByLayer(t *testing.T) {
	output := tui.RenderArtifacts("Order", sampleArtifacts(), false)
	assert.Contains(t, output, "domain")
	assert.Contains(t, output, "infrastructure")
}

func TestRenderArtifacts_DryRunFooter(t *testing.T) {
	output := tui.RenderArtifacts("Order", sampleArtifacts(), true)
	assert.Contains(t, output, "Would scaffold Order")
	assert.Contains(t, output, "nothing written")
}
