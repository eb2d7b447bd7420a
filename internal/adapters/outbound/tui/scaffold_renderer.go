package tui

import (
	"fmt"
	"strings"

	"github.com/archforge/archforge/internal/domain"
)

// RenderArtifacts renders the scaffold result: one line per generated file,
// grouped under layer headings in generation order.
func RenderArtifacts(entityName string, artifacts []domain.GeneratedArtifact, dryRun bool) string {
	var b strings.Builder

	action := "Scaffolded"
	if dryRun {
		action = "Would scaffold"
	}
	header := titleStyle.Render(fmt.Sprintf("%s %s", action, entityName)) + "  " +
		dimStyle.Render(fmt.Sprintf("(%d files)", len(artifacts)))
	b.WriteString(boxStyle.Render(header))
	b.WriteString("\n")

	var current domain.LayerID
	for _, a := range artifacts {
		if a.Layer != current {
			current = a.Layer
			b.WriteString("\n  " + sectionHeaderStyle.Render(string(current)) + "\n")
		}
		b.WriteString("    " + passStyle.Render("+") + " " + fileStyle.Render(a.Path) + "\n")
	}

	if dryRun {
		b.WriteString("\n  " + faintStyle.Render("dry run, nothing written") + "\n")
	}

	return b.String()
}
