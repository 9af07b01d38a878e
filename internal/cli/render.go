package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-vault-wrench/models"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true)
	tableNoteStyle   = lipgloss.NewStyle().Faint(true)
)

// renderResourceTable lays the resources out in aligned columns. Plain text
// apart from the header so the output stays grep-able.
func renderResourceTable(resources []models.Resource) string {
	if len(resources) == 0 {
		return tableNoteStyle.Render("no resources found")
	}

	headers := []string{"NAME", "USERNAME", "URI", "TAGS", "ID"}
	rows := make([][]string, 0, len(resources))
	for _, r := range resources {
		rows = append(rows, []string{r.Name, r.Username, r.URI, strings.Join(r.Tags, ","), r.ID})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	b.WriteString(tableHeaderStyle.Render(formatRow(headers, widths)))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(formatRow(row, widths))
		b.WriteString("\n")
	}
	return b.String()
}

func formatRow(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = fmt.Sprintf("%-*s", widths[i], cell)
	}
	return strings.TrimRight(strings.Join(padded, "  "), " ")
}

// formatCacheAge describes how stale an offline listing is.
func formatCacheAge(refreshedAt time.Time, now time.Time) string {
	if refreshedAt.IsZero() {
		return "cache never refreshed"
	}

	age := now.Sub(refreshedAt).Round(time.Minute)
	if age < time.Minute {
		return "cache refreshed under a minute ago"
	}
	return fmt.Sprintf("cache refreshed %s ago", age)
}
