package tui

import (
	"fmt"
	"strings"

	"github.com/archforge/archforge/internal/domain"
)

// RenderAuditReport renders an AuditReport as a styled TUI string,
// grouping violations by severity, worst first.
func RenderAuditReport(report *domain.AuditReport) string {
	var b strings.Builder

	// Header box
	status := passStyle.Render("PASS")
	if len(report.Violations) > 0 {
		status = failStyle.Render(fmt.Sprintf("%d VIOLATIONS", len(report.Violations)))
	}

	statsLine := dimStyle.Render(fmt.Sprintf(
		"%d dependency facts  ·  %d clean", report.TotalFactsScanned, report.PassCount))
	headerLines := titleStyle.Render("Architecture Audit") + "  " + status + "\n" + statsLine
	if report.CommitHash != "" {
		headerLines += "\n" + faintStyle.Render("commit "+shortHash(report.CommitHash))
	}
	b.WriteString(boxStyle.Render(headerLines))
	b.WriteString("\n")

	for _, severity := range []string{domain.SeverityHigh, domain.SeverityMedium, domain.SeverityLow} {
		renderSeveritySection(&b, severity, report.Violations)
	}

	if len(report.Violations) == 0 {
		b.WriteString("\n  " + passStyle.Render("✓") + " " +
			dimStyle.Render("every observed dependency respects the layer rules") + "\n")
	}

	return b.String()
}

func renderSeveritySection(b *strings.Builder, severity string, violations []domain.Violation) {
	var matched []domain.Violation
	for _, v := range violations {
		if v.Severity == severity {
			matched = append(matched, v)
		}
	}
	if len(matched) == 0 {
		return
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %s\n",
		sectionHeaderStyle.Render(strings.ToUpper(severity)),
		dimStyle.Render(fmt.Sprintf("(%d)", len(matched))),
	))

	style := severityStyles[severity]
	for _, v := range matched {
		b.WriteString(fmt.Sprintf("    %s %s  %s\n",
			style.Render("●"),
			fileStyle.Render(v.Fact.FromFile),
			dimStyle.Render(fmt.Sprintf("%s → %s", v.Fact.FromLayer, v.Fact.ToLayer)),
		))
		b.WriteString("      " + faintStyle.Render(v.Reason) + "\n")
	}
}

func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}
