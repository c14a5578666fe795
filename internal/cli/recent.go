package cli

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/xsltview/pkg/paths"
	"github.com/spf13/cobra"
)

func newRecentCmd(flags *globalFlags) *cobra.Command {
	var base string
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently used stylesheets",
		Long: `Recent lists the stylesheets of past runs, most recent first. Entries are
shown relative to --base (default: the current directory) when that is shorter.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			if base == "" {
				wd, err := os.Getwd()
				if err != nil {
					return err
				}
				base = wd + string(filepath.Separator)
			}
			loc, err := paths.NewLocation(base)
			if err != nil {
				return err
			}
			a.recent.SetBase(loc)
			return a.console.RenderRecent(a.recent.Display(a.resolver))
		},
	}
	cmd.Flags().StringVar(&base, "base", "", "Show entries relative to this document or directory")
	return cmd
}
