package policy

import "fmt"

// Intent records how the current output path came about.
type Intent int

const (
	Unset Intent = iota
	Auto
	Explicit
)

func (i Intent) String() string {
	switch i {
	case Unset:
		return "unset"
	case Auto:
		return "auto"
	case Explicit:
		return "explicit"
	default:
		return fmt.Sprintf("Intent(%d)", int(i))
	}
}

// Event is something that happened to the output or source field, or to the
// loaded document.
type Event int

const (
	// OutputEdited: the user typed into the output field without pressing Enter.
	OutputEdited Event = iota
	// OutputBrowsed: the user picked a destination in a save dialog.
	OutputBrowsed
	// OutputCleared: the output field was found blank at run time.
	OutputCleared
	// SourceEdited: the stylesheet field changed, so output must be recomputed.
	SourceEdited
	// DocumentReloaded: the document was reloaded or a new one was loaded.
	DocumentReloaded
	// DefaultDeclared: the loaded document declares a default output.
	DefaultDeclared
)

func (e Event) String() string {
	switch e {
	case OutputEdited:
		return "output-edited"
	case OutputBrowsed:
		return "output-browsed"
	case OutputCleared:
		return "output-cleared"
	case SourceEdited:
		return "source-edited"
	case DocumentReloaded:
		return "document-reloaded"
	case DefaultDeclared:
		return "default-declared"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

// Events lists every event, in declaration order.
func Events() []Event {
	return []Event{OutputEdited, OutputBrowsed, OutputCleared, SourceEdited, DocumentReloaded, DefaultDeclared}
}

// Next returns the intent after e. Unknown intents or events panic: the
// table below is meant to be exhaustive.
func (i Intent) Next(e Event) Intent {
	switch e {
	case OutputEdited, OutputBrowsed:
		return Explicit
	case OutputCleared, SourceEdited, DocumentReloaded:
		return Unset
	case DefaultDeclared:
		switch i {
		case Unset, Auto:
			return Auto
		case Explicit:
			return Explicit
		}
	}
	panic(fmt.Sprintf("policy: no transition from %s on %s", i, e))
}

// IsExplicit reports whether the user chose the output path.
func (i Intent) IsExplicit() bool { return i == Explicit }
