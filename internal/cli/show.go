package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdoc/pkg/config"
	"github.com/yaklabco/gomdoc/pkg/render"
)

// ErrSectionNotFound is returned by show when no section has the title.
var ErrSectionNotFound = errors.New("no mainpage, module, class or document with that title")

type showFlags struct {
	inputFlags

	title string
	width int
	style string
	raw   bool
}

func newShowCommand() *cobra.Command {
	var cfg config.Config
	flags := &showFlags{}

	cmd := &cobra.Command{
		Use:   "show [inputs...] --title NAME",
		Short: "Preview one module, class or document in the terminal",
		Long: `Parse the inputs and print the section titled NAME as styled Markdown.
Titles match ignoring case. Warnings are printed after the preview.

Examples:
  gomdoc show src/ --title net         # preview module net
  gomdoc show docs/ --title guide      # preview guide.md
  gomdoc show src/ --title net --raw   # print the Markdown source`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args, &cfg, flags)
		},
	}

	addInputFlags(cmd, &flags.inputFlags)
	cmd.Flags().StringVarP(&flags.title, "title", "t", "", "title of the section to show")
	cmd.Flags().IntVar(&flags.width, "width", 0, "word wrap width (0 = terminal width)")
	cmd.Flags().StringVar(&flags.style, "style", "", "glamour style: dark, light, notty (default: detect)")
	cmd.Flags().BoolVar(&flags.raw, "raw", false, "print Markdown without styling")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func runShow(cmd *cobra.Command, args []string, cfg *config.Config, flags *showFlags) error {
	flags.apply(cmd, cfg)
	if !cmd.Flags().Changed("verbose") {
		cfg.Verbose = config.Int(1)
	}

	sess, err := newSession(cmd, cfg)
	if err != nil {
		return err
	}

	result, err := sess.run(args)
	if err != nil {
		return err
	}

	md, ok := render.SectionMarkdown(result.Doc, flags.title)
	if !ok {
		return fmt.Errorf("%w: %q", ErrSectionNotFound, flags.title)
	}

	out := cmd.OutOrStdout()
	text := md
	if !flags.raw {
		text, err = render.Preview(md, previewOptions(out, flags))
		if err != nil {
			return err
		}
	}
	if _, err := io.WriteString(out, text); err != nil {
		return fmt.Errorf("write preview: %w", err)
	}

	return sess.report(cmd, result, !flags.noContext)
}

func previewOptions(out io.Writer, flags *showFlags) render.PreviewOptions {
	opts := render.PreviewOptions{Width: flags.width, Style: flags.style}

	width, tty := terminalWidth(out)
	if opts.Width <= 0 {
		opts.Width = width
	}
	if opts.Style == "" && !tty {
		opts.Style = "notty"
	}
	return opts
}
