// Package viewer orchestrates transform runs for one open document view.
//
// A Viewer owns the view's base location, its output intent and the text of
// its two path fields (source stylesheet and output). Model notifications
// and user events are fed in; the Viewer validates paths, decides the
// effective output, records the stylesheet in the recent list, runs the
// transform and writes the actual output location back in display form.
//
// Every operation holds the viewer's lock for its whole duration, the
// transform call included. A user Run while another run is in flight fails
// with RUN_IN_FLIGHT. Reloads of a visible document are debounced into a
// single refresh that reads the fields as they are when it fires.
package viewer
