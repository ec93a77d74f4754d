package cli

import (
	_ "embed"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdoc/pkg/render"
)

//go:embed guide.md
var userGuide string

func newGuideCommand() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "guide",
		Short: "Print the gomdoc user guide",
		Long:  `Print the user guide describing doc comments and the @keyword vocabulary.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			text := userGuide

			if width, tty := terminalWidth(out); tty && !raw {
				styled, err := render.Preview(userGuide, render.PreviewOptions{Width: width})
				if err != nil {
					return err
				}
				text = styled
			}

			if _, err := io.WriteString(out, text); err != nil {
				return fmt.Errorf("write guide: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print Markdown without styling")

	return cmd
}
