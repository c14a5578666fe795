// Package types defines the small set of interfaces shared across xsltview
// packages, chiefly the FS abstraction used by the recent-files store and the
// document loader so tests can run against an in-memory filesystem.
package types
