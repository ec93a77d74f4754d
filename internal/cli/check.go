package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/gomdoc/pkg/config"
	"github.com/yaklabco/gomdoc/pkg/docmodel"
)

type checkFlags struct {
	inputFlags

	dump string
}

func newCheckCommand() *cobra.Command {
	var cfg config.Config
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [inputs...]",
		Short: "Parse inputs and report warnings without writing output",
		Long: `Parse the inputs exactly like build does but write nothing. Useful to check
doc comments for warnings, for example in CI.

Examples:
  gomdoc check src/               # warnings and statistics
  gomdoc check src/ -v 1          # warnings and a one line summary
  gomdoc check src/ --dump yaml   # print the parsed document model`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, &cfg, flags)
		},
	}

	addInputFlags(cmd, &flags.inputFlags)
	cmd.Flags().StringVar(&flags.dump, "dump", "", "print the document model: yaml, json")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, cfg *config.Config, flags *checkFlags) error {
	if flags.dump != "" && flags.dump != "yaml" && flags.dump != "json" {
		return fmt.Errorf("invalid dump format %q: must be yaml or json", flags.dump)
	}
	flags.apply(cmd, cfg)

	sess, err := newSession(cmd, cfg)
	if err != nil {
		return err
	}

	result, err := sess.run(args)
	if err != nil {
		return err
	}

	if flags.dump != "" {
		content, err := dumpDocument(result.Doc, flags.dump)
		if err != nil {
			return err
		}
		if _, err := cmd.OutOrStdout().Write(content); err != nil {
			return fmt.Errorf("write dump: %w", err)
		}
	}

	return sess.report(cmd, result, !flags.noContext)
}

func dumpDocument(doc *docmodel.Document, format string) ([]byte, error) {
	if format == "json" {
		content, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal document: %w", err)
		}
		return append(content, '\n'), nil
	}

	content, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	return content, nil
}
