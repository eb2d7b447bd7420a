package tui

import (
	"fmt"
	"strings"

	"github.com/archforge/archforge/internal/domain"
)

// RenderLayerGraph produces a terminal-formatted rule table for the active
// layer graph: one row per layer with its permitted dependency targets.
func RenderLayerGraph(graph *domain.LayerGraph) string {
	var b strings.Builder

	layers := graph.Layers()
	header := titleStyle.Render("Layer Rules") + "  " +
		dimStyle.Render(fmt.Sprintf("(%d layers)", len(layers)))
	b.WriteString(boxStyle.Render(header))
	b.WriteString("\n\n")

	width := 0
	for _, l := range layers {
		if len(l) > width {
			width = len(l)
		}
	}

	for _, l := range layers {
		targets := graph.AllowedTargets(l)
		var label string
		if len(targets) == 0 {
			label = faintStyle.Render("depends on nothing")
		} else {
			names := make([]string, len(targets))
			for i, t := range targets {
				names[i] = string(t)
			}
			label = dimStyle.Render("→ " + strings.Join(names, ", "))
		}
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			sectionHeaderStyle.Render(fmt.Sprintf("%-*s", width, string(l))),
			label,
		))
	}

	return b.String()
}
