package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gomdoc/pkg/diag"
)

// FormatWarning formats a warning for terminal output.
//
// A positioned warning prints as "path:line:col: Wnnn - message extra",
// followed by the offending source line and a caret when showContext is set.
// Other warnings print as "Warning: Wnnn - message extra".
func (s *Styles) FormatWarning(w diag.Warning, showContext bool) string {
	var builder strings.Builder

	text := s.Code.Render(w.Code.String()) + " - " +
		s.Message.Render(w.Code.Message()) + s.Extra.Render(w.Extra)

	if !w.HasPosition() {
		builder.WriteString(s.Warning.Render("Warning:") + " " + text + "\n")
		return builder.String()
	}

	location := s.FilePath.Render(w.Path) + s.Location.Render(fmt.Sprintf(":%d:%d:", w.Line, w.Column))
	builder.WriteString(location + " " + text + "\n")

	if showContext && w.Source != "" {
		builder.WriteString(s.FormatSourceContext(w.Source, w.Column))
	}

	return builder.String()
}

// FormatSourceContext formats the source line with a caret marker.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	const indent = "    "

	line = strings.TrimRight(line, "\r")
	builder.WriteString(indent + s.SourceLine.Render(expandTabs(line)) + "\n")

	if column > 0 {
		padding := indent + strings.Repeat(" ", caretOffset(line, column))
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// caretOffset converts a 1-based column into a display offset, counting a tab
// as one space to match expandTabs.
func caretOffset(line string, column int) int {
	offset := column - 1
	if offset > len(line) {
		offset = len(line)
	}
	return len([]rune(line[:offset]))
}

func expandTabs(line string) string {
	return strings.ReplaceAll(line, "\t", " ")
}
