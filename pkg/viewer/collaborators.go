package viewer

import (
	"context"

	"github.com/arthur-debert/xsltview/pkg/paths"
	"github.com/arthur-debert/xsltview/pkg/transform"
)

// Display shows the two path fields. Updates arrive in order after the viewer
// lock is released: a Display may call the viewer's accessors, but not its
// event handlers.
type Display interface {
	SetSourceText(text string)
	SetOutputText(text string)
}

// RecentFiles receives every stylesheet a run is attempted with.
type RecentFiles interface {
	AddRecentFile(p paths.ValidatedPath) error
	SetBase(base paths.Location)
}

// Transformer runs a transform and returns the output location used.
// *transform.Invoker implements it.
type Transformer interface {
	Run(ctx context.Context, req transform.Request) (string, error)
}

// Resolver validates and displays paths. *paths.Resolver implements it.
type Resolver interface {
	Validate(candidate string, base paths.Location) (paths.ValidatedPath, error)
	DisplayForm(absolutePath string, base paths.Location) string
}

type nopDisplay struct{}

func (nopDisplay) SetSourceText(string) {}
func (nopDisplay) SetOutputText(string) {}

type nopRecent struct{}

func (nopRecent) AddRecentFile(paths.ValidatedPath) error { return nil }
func (nopRecent) SetBase(paths.Location)                  {}
