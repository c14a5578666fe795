package testutil

import "fmt"

// Stylesheet returns an XSLT document declaring the given xsl:output method.
// An empty method omits xsl:output.
func Stylesheet(method string) string {
	output := ""
	if method != "" {
		output = fmt.Sprintf(`<xsl:output method="%s"/>`, method)
	}
	return `<xsl:stylesheet version="1.0" xmlns:xsl="http://www.w3.org/1999/XSL/Transform">` +
		output +
		`<xsl:template match="/"><xsl:value-of select="name(*)"/></xsl:template></xsl:stylesheet>`
}
