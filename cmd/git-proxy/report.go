package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/git-proxy/internal/validators"
)

var (
	reportStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	fieldStyle      = lipgloss.NewStyle().Bold(true)
	constraintStyle = lipgloss.NewStyle().Faint(true)
	successStyle    = lipgloss.NewStyle().Bold(true)
)

// renderViolations formats the schema violations of path as a boxed report.
func renderViolations(path string, violations []validators.Violation) string {
	lines := make([]string, 0, len(violations)*2+1)
	lines = append(lines, titleStyle.Render(fmt.Sprintf("%s: %d schema violation(s)", path, len(violations))))

	for _, v := range violations {
		lines = append(lines,
			fmt.Sprintf("• %s %s", fieldStyle.Render(v.Field), constraintStyle.Render("["+v.Constraint+"]")),
			"  "+v.Message,
		)
	}

	return reportStyle.Render(strings.Join(lines, "\n"))
}

func renderValid(path string) string {
	return successStyle.Render(fmt.Sprintf("✓ %s is valid", path))
}
