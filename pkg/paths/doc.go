// Package paths provides centralized path handling for xsltview.
//
// It covers two concerns:
//
//   - Storage locations: the XDG config, state and cache directories used for
//     configuration, the recent stylesheets list and the log file.
//   - Path resolution: validating user-supplied candidates (plain paths or
//     file: URIs) and computing the shortest safe display form of a path
//     relative to the loaded document.
//
// # Environment Variables
//
//   - XSLTVIEW_CONFIG_DIR: Override XDG config directory (default: $XDG_CONFIG_HOME/xsltview)
//   - XSLTVIEW_STATE_DIR: Override XDG state directory (default: $XDG_STATE_HOME/xsltview)
//   - XSLTVIEW_CACHE_DIR: Override XDG cache directory (default: $XDG_CACHE_HOME/xsltview)
//
// # Display forms
//
// Paths below the temp directory are shown as-is: they are engine-chosen and
// a relative form would stop making sense once a different document loads.
// Everything else is shown relative to the document directory unless the
// relative form is longer than the absolute one.
//
//	r := paths.NewResolver("")
//	base := paths.MustLocation("/a/b/c/")
//	r.DisplayForm("/a/b/c/d/e.xml", base) // "d/e.xml"
//	r.DisplayForm("/a.xml", paths.MustLocation("/x/")) // "/a.xml"
package paths
