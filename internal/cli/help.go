// Package cli provides the Cobra command structure for gomdoc.
package cli

import (
	"io"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdoc/internal/ui/pretty"
)

// helpTemplate is cobra's default help layout with styled headings and a
// pointer to the doc comment guide on the root command.
const helpTemplate = `{{with (or .Long .Short)}}{{trim .}}

{{end}}{{heading "Usage:"}}
{{- if .Runnable}}
  {{command .UseLine}}{{end}}
{{- if .HasAvailableSubCommands}}
  {{command .CommandPath}} [command]{{end}}
{{- if .HasExample}}

{{heading "Examples:"}}
{{dim .Example}}{{end}}
{{- if .HasAvailableSubCommands}}

{{heading "Commands:"}}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{command (pad .Name .NamePadding)}} {{.Short}}{{end}}{{end}}{{end}}
{{- if .HasAvailableLocalFlags}}

{{heading "Flags:"}}
{{flags .LocalFlags.FlagUsages}}{{end}}
{{- if .HasAvailableInheritedFlags}}

{{heading "Global Flags:"}}
{{flags .InheritedFlags.FlagUsages}}{{end}}
{{- if not .HasParent}}

Run "{{command "gomdoc guide"}}" for the doc comment syntax and warning codes.{{end}}
{{- if .HasAvailableSubCommands}}
Use "{{command (print .CommandPath " [command] --help")}}" for more information about a command.{{end}}
`

// HelpFormatter renders command help with the report styles.
type HelpFormatter struct {
	styles *pretty.Styles
	tmpl   *template.Template
}

// NewHelpFormatter creates a help formatter for colorMode on writer.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	h := &HelpFormatter{styles: pretty.NewStyles(pretty.IsColorEnabled(colorMode, writer))}
	h.tmpl = template.Must(template.New("help").Funcs(template.FuncMap{
		"heading": h.styles.Title.Render,
		"command": h.styles.Bold.Render,
		"dim":     h.styles.Dim.Render,
		"flags":   h.flagUsages,
		"pad":     pad,
		"trim":    trimLines,
	}).Parse(helpTemplate))
	return h
}

// ApplyToCommand installs the styled help and usage on cmd. Subcommands
// inherit both.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	render := func(c *cobra.Command) error {
		return h.tmpl.Execute(c.OutOrStdout(), c)
	}
	cmd.SetUsageFunc(render)
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if err := render(c); err != nil {
			c.PrintErrln(err)
		}
	})
}

// flagUsages styles the flag names of pflag usage lines, leaving the value
// type dim and the description plain.
func (h *HelpFormatter) flagUsages(usages string) string {
	lines := strings.Split(strings.TrimRight(usages, "\n"), "\n")
	for i, line := range lines {
		indent := len(line) - len(strings.TrimLeft(line, " "))
		names, desc, ok := strings.Cut(line[indent:], "  ")
		if !ok {
			continue
		}

		fields := strings.Fields(names)
		for j, field := range fields {
			if strings.HasPrefix(field, "-") {
				fields[j] = h.styles.Extra.Render(field)
			} else {
				fields[j] = h.styles.Dim.Render(field)
			}
		}
		lines[i] = line[:indent] + strings.Join(fields, " ") + "  " + desc
	}
	return strings.Join(lines, "\n")
}

func pad(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}

func trimLines(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
