package cli

import (
	"github.com/spf13/cobra"
)

func newRunCmd(flags *globalFlags) *cobra.Command {
	fields := &fieldFlags{}
	cmd := &cobra.Command{
		Use:   "run DOCUMENT",
		Short: "Transform a document once",
		Long: `Run transforms DOCUMENT with a stylesheet and prints where the result went.

The stylesheet is --xsl when given, otherwise the one the document names in an
<?xml-stylesheet?> instruction, otherwise a built-in stylesheet that renders
the document tree as HTML. The output is --output when given, otherwise the
path in an <?xsl-output default="..."?> instruction, otherwise a file in the
temp directory.`,
		Example: `  # Use the document's own stylesheet
  xsltview run report.xml

  # Pick stylesheet and output explicitly
  xsltview run report.xml --xsl xsl/summary.xsl -o out/summary.htm`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			v := a.newViewer(nil, nil)
			defer v.Close()

			ctx := cmd.Context()
			if err := fields.open(ctx, a, v, args[0]); err != nil {
				return err
			}
			info, err := v.Run(ctx)
			if err != nil {
				return err
			}
			a.console.RenderRun(info)
			return nil
		},
	}
	fields.bind(cmd)
	return cmd
}
