package cli

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/xsltview/pkg/document"
	"github.com/arthur-debert/xsltview/pkg/transform"
	"github.com/spf13/cobra"
)

func newInfoCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "info DOCUMENT",
		Short: "Show what a document declares about its transform",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			doc, err := document.Load(a.fs, args[0])
			if err != nil {
				return err
			}
			return a.console.RenderMarkdown(a.describe(doc))
		},
	}
}

// describe summarizes doc as markdown.
func (a *app) describe(doc *document.Document) string {
	base := doc.Location
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", a.resolver.DisplayForm(base.String(), base))
	fmt.Fprintf(&b, "- **Location:** `%s`\n", base)
	fmt.Fprintf(&b, "- **Root element:** `%s`\n", doc.Tree.Root().Tag)

	stylesheet := transform.DefaultStylesheet()
	if doc.Stylesheet == "" {
		b.WriteString("- **Stylesheet:** none, the built-in tree view is used\n")
	} else if p, err := a.resolver.Validate(doc.Stylesheet, base); err != nil {
		fmt.Fprintf(&b, "- **Stylesheet:** `%s` (invalid: %s)\n", doc.Stylesheet, err)
		stylesheet = nil
	} else {
		fmt.Fprintf(&b, "- **Stylesheet:** `%s`\n", a.resolver.DisplayForm(p.Abs(), base))
		stylesheet, _ = a.fs.ReadFile(p.Abs())
	}

	if doc.DefaultOutput == "" {
		fmt.Fprintf(&b, "- **Default output:** none, results go to `%s`\n", a.resolver.TempDir())
	} else {
		fmt.Fprintf(&b, "- **Default output:** `%s`\n", doc.DefaultOutput)
	}
	fmt.Fprintf(&b, "- **Output type:** `%s`\n", transform.OutputExtension(stylesheet))
	return b.String()
}
