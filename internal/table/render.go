package table

import (
	"fmt"
	"strings"
)

const reportTitle = "Company Financial Comparator"

// Render renders the grid in the requested output format. Unknown
// formats fall back to plain text.
func Render(g Grid, format string) string {
	switch format {
	case "markdown":
		return RenderMarkdown(g)
	case "csv":
		return RenderCSV(g)
	default:
		return RenderText(g)
	}
}

// RenderText lays the grid out with padded columns: row labels
// left-aligned, value columns right-aligned under their headers.
func RenderText(g Grid) string {
	labelWidth := 0
	for _, label := range g.RowLabels {
		if len(label) > labelWidth {
			labelWidth = len(label)
		}
	}
	colWidths := make([]int, len(g.Columns))
	for i, col := range g.Columns {
		colWidths[i] = len(col)
		for _, row := range g.Cells {
			if len(row[i]) > colWidths[i] {
				colWidths[i] = len(row[i])
			}
		}
	}
	total := labelWidth
	for _, w := range colWidths {
		total += 2 + w
	}
	if total < len(reportTitle) {
		total = len(reportTitle)
	}

	var b strings.Builder
	b.WriteString(reportTitle + "\n")
	b.WriteString(strings.Repeat("=", total) + "\n")
	b.WriteString(fmt.Sprintf("%-*s", labelWidth, ""))
	for i, col := range g.Columns {
		b.WriteString(fmt.Sprintf("  %*s", colWidths[i], col))
	}
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", total) + "\n")
	for ri, label := range g.RowLabels {
		b.WriteString(fmt.Sprintf("%-*s", labelWidth, label))
		for ci := range g.Columns {
			b.WriteString(fmt.Sprintf("  %*s", colWidths[ci], g.Cells[ri][ci]))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderMarkdown emits the grid as a pipe table under a level-one
// heading, value columns right-aligned.
func RenderMarkdown(g Grid) string {
	var b strings.Builder
	b.WriteString("# " + reportTitle + "\n\n")
	b.WriteString("| Metric |")
	for _, col := range g.Columns {
		b.WriteString(" " + col + " |")
	}
	b.WriteString("\n|---|")
	for range g.Columns {
		b.WriteString("---:|")
	}
	b.WriteString("\n")
	for ri, label := range g.RowLabels {
		b.WriteString("| " + label + " |")
		for ci := range g.Columns {
			b.WriteString(" " + g.Cells[ri][ci] + " |")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderCSV emits a header row and one record per metric. Formatted
// cells can themselves contain commas ("$2,800B"), so every field goes
// through quoting.
func RenderCSV(g Grid) string {
	var b strings.Builder
	b.WriteString("Metric")
	for _, col := range g.Columns {
		b.WriteString("," + csvEscape(col))
	}
	b.WriteString("\n")
	for ri, label := range g.RowLabels {
		b.WriteString(csvEscape(label))
		for ci := range g.Columns {
			b.WriteString("," + csvEscape(g.Cells[ri][ci]))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func csvEscape(field string) string {
	if !strings.ContainsAny(field, ",\"\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
