package cli

import (
	"context"

	"github.com/arthur-debert/xsltview/pkg/config"
	"github.com/arthur-debert/xsltview/pkg/document"
	"github.com/arthur-debert/xsltview/pkg/filesystem"
	"github.com/arthur-debert/xsltview/pkg/paths"
	"github.com/arthur-debert/xsltview/pkg/recent"
	"github.com/arthur-debert/xsltview/pkg/transform"
	"github.com/arthur-debert/xsltview/pkg/types"
	"github.com/arthur-debert/xsltview/pkg/ui"
	"github.com/arthur-debert/xsltview/pkg/viewer"
	"github.com/spf13/cobra"
)

// app holds the collaborators shared by the commands.
type app struct {
	cfg      *config.Config
	fs       types.FS
	resolver *paths.Resolver
	recent   *recent.Store
	console  *ui.Console
}

func newApp(cmd *cobra.Command, flags *globalFlags) (*app, error) {
	cfg, err := config.Load(config.Options{File: flags.configFile})
	if err != nil {
		return nil, err
	}
	format, err := ui.ParseFormat(flags.format)
	if err != nil {
		return nil, err
	}

	fsys := filesystem.NewOS()
	store, err := recent.Open(fsys, cfg.Recent.File, cfg.Recent.Max)
	if err != nil {
		return nil, err
	}
	return &app{
		cfg:      cfg,
		fs:       fsys,
		resolver: paths.NewResolver(cfg.Output.TempDir),
		recent:   store,
		console:  ui.NewConsole(format, cmd.OutOrStdout()),
	}, nil
}

func (a *app) newViewer(onCompleted func(viewer.RunInfo), onError func(error)) *viewer.Viewer {
	engine := transform.NewExecEngine(transform.ExecOptions{
		Command: a.cfg.Engine.Command,
		Args:    a.cfg.Engine.Args,
		TempDir: a.resolver.TempDir(),
		FS:      a.fs,
	})
	return viewer.New(viewer.Options{
		Resolver:     a.resolver,
		Transformer:  transform.NewInvoker(engine, a.cfg.Engine.Timeout),
		Display:      a.console,
		Recent:       a.recent,
		RefreshDelay: a.cfg.Refresh.Delay,
		FS:           a.fs,
		OnCompleted:  onCompleted,
		OnError:      onError,
	})
}

type fieldFlags struct {
	xsl    string
	output string
}

func (f *fieldFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.xsl, "xsl", "s", "", "Stylesheet, relative to the document (default: the document's xml-stylesheet)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output file, relative to the document (default: the document's xsl-output or a temp file)")
}

// open loads the document into v and applies the field flags as user edits.
func (f *fieldFlags) open(ctx context.Context, a *app, v *viewer.Viewer, path string) error {
	doc, err := document.Load(a.fs, path)
	if err != nil {
		return err
	}
	v.OnModelChanged(document.NewChange(document.Other, doc))
	if f.xsl != "" {
		if err := v.SourceKey(ctx, f.xsl, false); err != nil {
			return err
		}
	}
	if f.output != "" {
		if err := v.OutputKey(ctx, f.output, false); err != nil {
			return err
		}
	}
	return nil
}

// reload applies a saved document. An xml-stylesheet in the document replaces
// --xsl; --output is re-applied since a reload resets the output intent.
func (f *fieldFlags) reload(ctx context.Context, v *viewer.Viewer, doc *document.Document) error {
	v.OnModelChanged(document.NewChange(document.Reloaded, doc))
	if f.output != "" {
		return v.OutputKey(ctx, f.output, false)
	}
	return nil
}
