package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/xsltview/pkg/document"
	"github.com/arthur-debert/xsltview/pkg/logging"
	"github.com/spf13/cobra"
)

func newWatchCmd(flags *globalFlags) *cobra.Command {
	fields := &fieldFlags{}
	cmd := &cobra.Command{
		Use:   "watch DOCUMENT",
		Short: "Transform a document whenever it changes",
		Long: `Watch runs the transform once, then again each time DOCUMENT is saved.
A burst of saves within refresh.delay (500ms by default) triggers a single
run. A stylesheet named by the document's xml-stylesheet instruction replaces
--xsl on every reload; --output keeps applying to every run. Stop with Ctrl-C.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.watch")
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			v := a.newViewer(a.console.RenderRun, a.console.RenderError)
			defer v.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := fields.open(ctx, a, v, args[0]); err != nil {
				return err
			}
			if _, err := v.Run(ctx); err != nil {
				// keep watching; the next save may fix it
				a.console.RenderError(err)
			}

			w, err := document.NewWatcher(a.fs, args[0])
			if err != nil {
				return err
			}
			defer func() { _ = w.Close() }()

			logger.Info().Str("document", args[0]).Msg("Watching for changes")
			err = w.Run(ctx, func(doc *document.Document) {
				if err := fields.reload(ctx, v, doc); err != nil {
					a.console.RenderError(err)
				}
			})
			if err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}
	fields.bind(cmd)
	return cmd
}
