package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdoc/internal/configloader"
	"github.com/yaklabco/gomdoc/internal/logging"
	"github.com/yaklabco/gomdoc/pkg/config"
	"github.com/yaklabco/gomdoc/pkg/reporter"
	"github.com/yaklabco/gomdoc/pkg/runner"
)

// inputFlags are the flags shared by every command that reads inputs.
type inputFlags struct {
	extensions         string
	markdownExtensions string
	imageExtensions    string
	sort               bool
	verbose            int
	ignore             []string
	maxDepth           int
	reportFormat       string
	noContext          bool
}

func addInputFlags(cmd *cobra.Command, flags *inputFlags) {
	cmd.Flags().StringVar(&flags.extensions, "exts", config.DefaultExtensions,
		"source file extensions to parse")
	cmd.Flags().StringVar(&flags.markdownExtensions, "markdown-exts", config.DefaultMarkdownExtensions,
		"Markdown document extensions")
	cmd.Flags().StringVar(&flags.imageExtensions, "image-exts", config.DefaultImageExtensions,
		"image file extensions")
	cmd.Flags().BoolVarP(&flags.sort, "sort", "s", true,
		"sort modules, classes, functions and documents (--sort=false keeps input order)")
	cmd.Flags().IntVarP(&flags.verbose, "verbose", "v", config.DefaultVerbose,
		"verbosity: 0 (silent), 1 (warnings), 2 (warnings and statistics)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().IntVar(&flags.maxDepth, "max-depth", config.DefaultMaxDepth, "folder levels walked below an input folder")
	cmd.Flags().StringVar(&flags.reportFormat, "report-format", "text", "report format: text, json")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in warnings")
}

// apply copies explicitly set flags into cfg.
func (f *inputFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("exts") {
		cfg.Extensions = f.extensions
	}
	if changed("markdown-exts") {
		cfg.MarkdownExtensions = f.markdownExtensions
	}
	if changed("image-exts") {
		cfg.ImageExtensions = f.imageExtensions
	}
	if changed("sort") {
		cfg.Sort = config.Bool(f.sort)
	}
	if changed("verbose") {
		cfg.Verbose = config.Int(f.verbose)
	}
	if changed("ignore") {
		cfg.Ignore = f.ignore
	}
	if changed("max-depth") {
		cfg.MaxDepth = f.maxDepth
	}
	if changed("report-format") {
		cfg.ReportFormat = config.ReportFormat(f.reportFormat)
	}
}

// session is the resolved state of one command invocation.
type session struct {
	ctx     context.Context
	cfg     *config.Config
	workDir string
}

// newSession loads the layered configuration with cliCfg on top.
func newSession(cmd *cobra.Command, cliCfg *config.Config) (*session, error) {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, errors.Join(errors.New("failed to load configuration"), err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	return &session{ctx: ctx, cfg: loadResult.Config, workDir: workDir}, nil
}

// run parses the inputs into a document.
func (s *session) run(inputs []string) (*runner.Result, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}

	opts := runner.OptionsFromConfig(s.cfg, inputs)
	opts.WorkingDir = s.workDir

	logging.FromContext(s.ctx).Debug("starting run",
		logging.FieldInputs, inputs,
		logging.FieldWorkingDir, s.workDir,
	)

	result, err := runner.Run(s.ctx, opts)
	if err != nil {
		return nil, errors.Join(errors.New("run failed"), err)
	}
	return result, nil
}

// report prints the warnings and statistics of result.
func (s *session) report(cmd *cobra.Command, result *runner.Result, showContext bool) error {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format, err := reporter.ParseFormat(string(s.cfg.ReportFormat))
	if err != nil {
		return fmt.Errorf("invalid report format: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       colorMode,
		ShowContext: showContext,
		Verbose:     s.cfg.VerboseLevel(),
		WorkingDir:  s.workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(s.ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrWarningsFound
	}
	return nil
}
