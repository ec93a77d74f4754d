package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/gomdoc/pkg/docmodel"
)

// statLine is one row of the statistics block.
type statLine struct {
	n      int
	name   string
	plural string
}

// FormatStats formats run statistics as the column aligned block printed
// after build and check.
func (s *Styles) FormatStats(stats docmodel.Stats) string {
	objects := []statLine{
		{stats.Modules, "module", "s"},
		{stats.Functions, "function", "s"},
		{stats.Classes, "class", "es"},
		{stats.Methods, "method", "s"},
		{stats.Examples, "example", "s"},
		{stats.Documents, "document", "s"},
		{stats.Images, "image", "s"},
	}
	processed := []statLine{
		{stats.Files, "file", "s"},
		{stats.DocComments, "doc comment", "s"},
	}

	width := 1
	for _, line := range append(append([]statLine{}, objects...), processed...) {
		width = max(width, len(strconv.Itoa(line.n)))
	}
	width = max(width, len(strconv.Itoa(stats.Warnings)))

	var builder strings.Builder
	builder.WriteString("\n")
	for _, line := range objects {
		builder.WriteString(s.formatStatLine(line, width, ""))
	}
	builder.WriteString("\n")
	for _, line := range processed {
		builder.WriteString(s.formatStatLine(line, width, " processed"))
	}

	warnings := statLine{stats.Warnings, "warning", "s"}
	if stats.Warnings > 0 {
		builder.WriteString("  " + s.Failure.Render(fmt.Sprintf("%*d", width, stats.Warnings)) +
			" " + s.StatName.Render(plural(warnings)) + "\n")
	} else {
		builder.WriteString(s.formatStatLine(warnings, width, ""))
	}

	return builder.String()
}

func (s *Styles) formatStatLine(line statLine, width int, suffix string) string {
	return "  " + s.StatValue.Render(fmt.Sprintf("%*d", width, line.n)) + " " +
		s.StatName.Render(plural(line)+suffix) + "\n"
}

func plural(line statLine) string {
	if line.n == 1 {
		return line.name
	}
	return line.name + line.plural
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 modules, 1 document from 4 files, 2 warnings".
func (s *Styles) FormatSummaryOneLine(stats docmodel.Stats) string {
	var parts []string
	for _, line := range []statLine{
		{stats.Modules, "module", "s"},
		{stats.Classes, "class", "es"},
		{stats.Documents, "document", "s"},
	} {
		if line.n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", line.n, plural(line)))
		}
	}
	if len(parts) == 0 {
		parts = append(parts, "nothing documented")
	}

	msg := strings.Join(parts, ", ") +
		s.Dim.Render(fmt.Sprintf(" from %d %s", stats.Files, plural(statLine{stats.Files, "file", "s"})))

	if stats.Warnings == 0 {
		return msg + ", " + s.Success.Render("no warnings") + "\n"
	}
	return msg + ", " + s.Failure.Render(fmt.Sprintf("%d %s", stats.Warnings,
		plural(statLine{stats.Warnings, "warning", "s"}))) + "\n"
}
