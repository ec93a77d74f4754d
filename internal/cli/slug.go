package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdoc/pkg/slug"
)

func newSlugCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "slug TITLE...",
		Short: "Print the anchor id generated for a heading",
		Long: `Print the local reference id (slug) that a heading or function name gets in
the generated HTML, one line per argument. Use it to link to a heading from
another page, e.g. [see here](net.html#example-dial).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, title := range args {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), slug.Make(title)); err != nil {
					return fmt.Errorf("write slug: %w", err)
				}
			}
			return nil
		},
	}
}
