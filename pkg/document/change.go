package document

import "github.com/arthur-debert/xsltview/pkg/paths"

// ChangeKind classifies a model change notification.
type ChangeKind int

const (
	// Other covers any in-memory change and the initial load.
	Other ChangeKind = iota
	// Reloaded means the document was re-read from disk.
	Reloaded
)

func (k ChangeKind) String() string {
	switch k {
	case Reloaded:
		return "reloaded"
	default:
		return "other"
	}
}

// Change is delivered to views whenever the document changes.
type Change struct {
	Kind               ChangeKind
	Location           paths.Location
	StylesheetLocation string
	DefaultOutput      string
	Document           *Document
}

// NewChange describes doc for a notification of the given kind.
func NewChange(kind ChangeKind, doc *Document) Change {
	return Change{
		Kind:               kind,
		Location:           doc.Location,
		StylesheetLocation: doc.Stylesheet,
		DefaultOutput:      doc.DefaultOutput,
		Document:           doc,
	}
}
