package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdoc/internal/logging"
	"github.com/yaklabco/gomdoc/pkg/config"
	"github.com/yaklabco/gomdoc/pkg/diag"
	"github.com/yaklabco/gomdoc/pkg/render"
	"github.com/yaklabco/gomdoc/pkg/runner"
)

type buildFlags struct {
	inputFlags

	output   string
	name     string
	format   string
	markdown bool
}

func newBuildCommand() *cobra.Command {
	var cfg config.Config
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "build [inputs...]",
		Short: "Build documentation from source files and Markdown documents",
		Long:  buildLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, args, &cfg, flags)
		},
	}

	addInputFlags(cmd, &flags.inputFlags)
	cmd.Flags().StringVarP(&flags.output, "output", "o", config.DefaultOutput, "output folder")
	cmd.Flags().StringVar(&flags.name, "name", "", "project name, used for the Markdown file name")
	cmd.Flags().StringVar(&flags.format, "format", "html", "output format: html, markdown")
	cmd.Flags().BoolVar(&flags.markdown, "markdown", false, "shorthand for --format markdown")
	cmd.Flags().BoolVar(&cfg.LocalCSS, "local", false, "write a local w3.css instead of linking the CDN copy")
	cmd.Flags().BoolVar(&cfg.NoIndex, "noindex", false, "don't create index.html, allowing a custom main page")
	cmd.Flags().BoolVarP(&cfg.Yes, "yes", "y", false, "overwrite existing files without asking")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of pages written in parallel (0 = auto)")

	return cmd
}

const buildLongDescription = `Build documentation from the given files, folders and glob patterns.

Folders are searched up to --max-depth levels deep. Source files are scanned
for doc comments, Markdown files become documents, and images referenced by
either are copied to the output folder.

Examples:
  gomdoc build src/ -o docs/             # HTML site in docs/
  gomdoc build src/ README.md --markdown  # one Markdown file, docs/docs.md
  gomdoc build "src/*.c" --local         # local w3.css for offline use
  gomdoc build src/ --sort=false         # keep input order`

func runBuild(cmd *cobra.Command, args []string, cfg *config.Config, flags *buildFlags) error {
	flags.apply(cmd, cfg)
	if cmd.Flags().Changed("output") {
		cfg.Output = flags.output
	}
	cfg.Name = flags.name
	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if flags.markdown {
		cfg.Format = config.FormatMarkdown
	}

	sess, err := newSession(cmd, cfg)
	if err != nil {
		return err
	}

	result, err := sess.run(args)
	if err != nil {
		return err
	}

	if !result.NothingToDo() {
		if err := sess.render(cmd, result); err != nil {
			return err
		}
	}

	return sess.report(cmd, result, !flags.noContext)
}

// render writes the document and folds the output warnings into result.
func (s *session) render(cmd *cobra.Command, result *runner.Result) error {
	logger := logging.FromContext(s.ctx)
	sink := diag.NewSink(nil)

	opts := render.Options{
		Output:   s.cfg.Output,
		Name:     s.cfg.Name,
		Format:   s.cfg.Format,
		LocalCSS: s.cfg.LocalCSS,
		NoIndex:  s.cfg.NoIndex,
		Jobs:     s.cfg.Jobs,
		Sink:     sink,
	}
	if !s.cfg.Yes && isInteractive() {
		opts.Confirm = newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr()).confirmOverwrite
	}

	out, err := render.Write(s.ctx, result.Doc, opts)
	if err != nil {
		return fmt.Errorf("write documentation: %w", err)
	}
	logger.Debug("documentation written",
		logging.FieldOutput, s.cfg.Output,
		logging.FieldFormat, s.cfg.Format,
		logging.FieldFiles, len(out.Written),
		logging.FieldImages, len(out.Copied),
	)

	result.Warnings = append(result.Warnings, sink.Warnings()...)
	result.Stats.Warnings = len(result.Warnings)
	return nil
}
