package transform_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/xsltview/pkg/transform"
	"github.com/stretchr/testify/assert"
)

func stylesheet(output string) []byte {
	return []byte(`<xsl:stylesheet version="1.0" xmlns:xsl="http://www.w3.org/1999/XSL/Transform">` +
		output + `<xsl:template match="/"/></xsl:stylesheet>`)
}

func TestOutputExtension(t *testing.T) {
	tests := []struct {
		name       string
		stylesheet []byte
		want       string
	}{
		{"xml method", stylesheet(`<xsl:output method="xml"/>`), ".xml"},
		{"text method", stylesheet(`<xsl:output method="text"/>`), ".txt"},
		{"html method", stylesheet(`<xsl:output method="html"/>`), ".htm"},
		{"no output element", stylesheet(``), ".htm"},
		{"uppercase", stylesheet(`<xsl:output method="XML"/>`), ".xml"},
		{"other prefix", []byte(`<t:transform version="1.0" xmlns:t="http://www.w3.org/1999/XSL/Transform"><t:output method="text"/></t:transform>`), ".txt"},
		{"wrong namespace", []byte(`<x:stylesheet xmlns:x="urn:other"><x:output method="xml"/></x:stylesheet>`), ".htm"},
		{"malformed", []byte(`<xsl:stylesheet`), ".htm"},
		{"empty", nil, ".htm"},
		{"default stylesheet", transform.DefaultStylesheet(), ".htm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, transform.OutputExtension(tt.stylesheet))
		})
	}
}

func TestFileFilter(t *testing.T) {
	assert.Contains(t, transform.FileFilter(stylesheet(`<xsl:output method="xml"/>`)), "*.xml")
	assert.Contains(t, transform.FileFilter(stylesheet(`<xsl:output method="text"/>`)), "*.txt")
	assert.Contains(t, transform.FileFilter(nil), "*.htm")
}

func TestDestination(t *testing.T) {
	doc := testDocument(t)
	tmp := filepath.Join("/tmp", "xv")
	xml := stylesheet(`<xsl:output method="xml"/>`)

	tests := []struct {
		name string
		req  transform.Request
		want string
	}{
		{
			name: "explicit hint honoured",
			req:  transform.Request{Document: doc, OutputHint: "/out/a.htm", OutputExplicit: true},
			want: "/out/a.htm",
		},
		{
			name: "document default honoured",
			req:  transform.Request{Document: doc, OutputHint: "/out/d.htm", HasDocumentDefault: true},
			want: "/out/d.htm",
		},
		{
			name: "stale hint ignored",
			req:  transform.Request{Document: doc, OutputHint: "/out/old.htm"},
			want: filepath.Join(tmp, "report_output.xml"),
		},
		{
			name: "no hint",
			req:  transform.Request{Document: doc, OutputExplicit: true},
			want: filepath.Join(tmp, "report_output.xml"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, transform.Destination(tt.req, tmp, xml))
		})
	}
}
