package ui_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/xsltview/pkg/errors"
	"github.com/arthur-debert/xsltview/pkg/ui"
	"github.com/arthur-debert/xsltview/pkg/viewer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ viewer.Display = (*ui.Console)(nil)

func TestConsoleAutoOnBufferIsText(t *testing.T) {
	assert.Equal(t, ui.FormatText, ui.NewConsole(ui.FormatAuto, &bytes.Buffer{}).Format())
}

func TestConsoleText(t *testing.T) {
	var buf bytes.Buffer
	c := ui.NewConsole(ui.FormatText, &buf)

	c.SetSourceText("xsl/report.xsl")
	c.SetOutputText("")
	c.RenderRun(viewer.RunInfo{Output: "/work/out.htm", Display: "out.htm", Duration: 12 * time.Millisecond})
	c.RenderError(errors.New(errors.ErrInvalidPath, "path contains invalid character '|'"))
	require.NoError(t, c.RenderRecent([]string{"a.xsl", "/abs/b.xsl"}))

	assert.Equal(t, strings.Join([]string{
		"source: xsl/report.xsl",
		"output: ",
		"wrote /work/out.htm (12ms)",
		"error: [INVALID_PATH] path contains invalid character '|'",
		"1\ta.xsl",
		"2\t/abs/b.xsl",
		"",
	}, "\n"), buf.String())
}

func TestConsoleJSON(t *testing.T) {
	var buf bytes.Buffer
	c := ui.NewConsole(ui.FormatJSON, &buf)

	c.SetOutputText("out.htm")
	c.RenderError(errors.New(errors.ErrRunInFlight, "busy"))
	require.NoError(t, c.RenderRecent([]string{"a.xsl"}))

	dec := json.NewDecoder(&buf)
	var events []map[string]interface{}
	for dec.More() {
		var e map[string]interface{}
		require.NoError(t, dec.Decode(&e))
		events = append(events, e)
	}
	require.Len(t, events, 3)
	assert.Equal(t, "output", events[0]["event"])
	assert.Equal(t, "out.htm", events[0]["text"])
	assert.Equal(t, "RUN_IN_FLIGHT", events[1]["code"])
	assert.Equal(t, []interface{}{"a.xsl"}, events[2]["files"])
}

func TestConsoleTerminal(t *testing.T) {
	var buf bytes.Buffer
	c := ui.NewConsole(ui.FormatTerminal, &buf)

	c.SetSourceText("report.xsl")
	require.NoError(t, c.RenderRecent([]string{"a.xsl", "b.xsl"}))
	require.NoError(t, c.RenderRecent(nil))

	out := buf.String()
	assert.Contains(t, out, "report.xsl")
	assert.Contains(t, out, "stylesheet")
	assert.Contains(t, out, "b.xsl")
	assert.Contains(t, out, "no recent stylesheets")
}

func TestConsoleMarkdown(t *testing.T) {
	var text bytes.Buffer
	require.NoError(t, ui.NewConsole(ui.FormatText, &text).RenderMarkdown("# doc.xml\n"))
	assert.Equal(t, "# doc.xml\n", text.String())

	var term bytes.Buffer
	require.NoError(t, ui.NewConsole(ui.FormatTerminal, &term).RenderMarkdown("# doc.xml\n\nroot element `report`\n"))
	assert.Contains(t, term.String(), "doc.xml")
	assert.Contains(t, term.String(), "report")
}
