package tui_test

import (
	"testing"

	"github.com/archforge/archforge/internal/adapters/outbound/tui"
	"github.com/archforge/archforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderLayerGraph_ListsAllLayers(t *testing.T) {
	output := tui.RenderLayerGraph(domain.DefaultLayerGraph())
	assert.Contains(t, output, "Layer Rules")
	assert.Contains(t, output, "(4 layers)")
	assert.Contains(t, output, "domain")
	assert.Contains(t, output, "infrastructure")
	assert.Contains(t, output, "presentation")
	assert.Contains(t, output, "test")
}

func TestRenderLayerGraph_ShowsIsolatedLayer(t *testing.T) {
	output := tui.RenderLayerGraph(domain.DefaultLayerGraph())
	assert.Contains(t, output, "depends on nothing")
}

func TestRenderLayerGraph_ShowsTargets(t *testing.T) {
	graph, err := domain.NewLayerGraph(map[domain.LayerID][]domain.LayerID{
		domain.LayerDomain:         {},
		domain.LayerInfrastructure: {domain.LayerDomain},
	})
	require.NoError(t, err)

	output := tui.RenderLayerGraph(graph)
	assert.Contains(t, output, "→ domain")
}
