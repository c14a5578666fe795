// Package testutil provides isolated environments and fixtures for xsltview tests.
//
// Key components:
//   - TestEnvironment: XDG and XSLTVIEW_* directories redirected into a
//     temp tree (EnvIsolated) or a virtual tree on an afero memory
//     filesystem (EnvMemoryOnly), restored when the test ends
//   - Stylesheet: minimal XSLT documents for a given xsl:output method
//
// Tests that read through koanf or run external processes need EnvIsolated;
// everything written through types.FS can use EnvMemoryOnly.
package testutil
