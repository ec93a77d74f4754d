// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	Warning lipgloss.Style

	// Warning components
	FilePath   lipgloss.Style
	Location   lipgloss.Style
	Code       lipgloss.Style
	Message    lipgloss.Style
	Extra      lipgloss.Style
	SourceLine lipgloss.Style
	Caret      lipgloss.Style

	// Statistics
	StatValue lipgloss.Style
	StatName  lipgloss.Style
	Success   lipgloss.Style
	Failure   lipgloss.Style

	// Section titles in check and show output
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),

		FilePath:   lipgloss.NewStyle().Bold(true),
		Location:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Code:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Message:    lipgloss.NewStyle(),
		Extra:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		SourceLine: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Caret:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),

		StatValue: lipgloss.NewStyle().Bold(true),
		StatName:  lipgloss.NewStyle(),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Subtitle: lipgloss.NewStyle().Italic(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Warning:    plain,
		FilePath:   plain,
		Location:   plain,
		Code:       plain,
		Message:    plain,
		Extra:      plain,
		SourceLine: plain,
		Caret:      plain,
		StatValue:  plain,
		StatName:   plain,
		Success:    plain,
		Failure:    plain,
		Title:      plain,
		Subtitle:   plain,
		Dim:        plain,
		Bold:       plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
