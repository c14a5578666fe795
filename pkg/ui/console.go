// Package ui renders viewer state on a terminal.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/arthur-debert/xsltview/pkg/errors"
	"github.com/arthur-debert/xsltview/pkg/viewer"
	"github.com/pterm/pterm"
)

// Console is a viewer.Display writing one line per field change.
type Console struct {
	mu     sync.Mutex
	out    io.Writer
	format Format
	enc    *json.Encoder
}

// NewConsole resolves FormatAuto against out.
func NewConsole(format Format, out io.Writer) *Console {
	if format == FormatAuto {
		format = FormatText
		if f, ok := out.(*os.File); ok {
			format = DetectFormat(f)
		}
	}
	return &Console{out: out, format: format, enc: json.NewEncoder(out)}
}

// Format returns the resolved format.
func (c *Console) Format() Format { return c.format }

type event struct {
	Event    string   `json:"event"`
	Text     string   `json:"text,omitempty"`
	Output   string   `json:"output,omitempty"`
	Duration string   `json:"duration,omitempty"`
	Code     string   `json:"code,omitempty"`
	Files    []string `json:"files,omitempty"`
}

// SetSourceText implements viewer.Display.
func (c *Console) SetSourceText(text string) {
	c.field("source", text)
}

// SetOutputText implements viewer.Display.
func (c *Console) SetOutputText(text string) {
	c.field("output", text)
}

func (c *Console) field(name, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.format {
	case FormatJSON:
		_ = c.enc.Encode(event{Event: name, Text: text})
	case FormatTerminal:
		shown := pathStyle.Render(text)
		if text == "" {
			shown = mutedStyle.Render("(empty)")
		}
		_, _ = fmt.Fprintln(c.out, labelStyle.Render(name)+shown)
	default:
		_, _ = fmt.Fprintf(c.out, "%s: %s\n", name, text)
	}
}

// RenderRun reports a completed transform.
func (c *Console) RenderRun(info viewer.RunInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()

	d := info.Duration.Round(time.Millisecond).String()
	switch c.format {
	case FormatJSON:
		_ = c.enc.Encode(event{Event: "completed", Output: info.Output, Text: info.Display, Duration: d})
	case FormatTerminal:
		_, _ = fmt.Fprintf(c.out, "%s %s %s\n", okStyle.Render("✓"), pathStyle.Render(info.Display), mutedStyle.Render(d))
	default:
		_, _ = fmt.Fprintf(c.out, "wrote %s (%s)\n", info.Output, d)
	}
}

// RenderError reports a failed operation.
func (c *Console) RenderError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	code := errors.GetErrorCode(err)
	switch c.format {
	case FormatJSON:
		_ = c.enc.Encode(event{Event: "error", Code: string(code), Text: err.Error()})
	case FormatTerminal:
		_, _ = fmt.Fprintf(c.out, "%s %s\n", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
	default:
		_, _ = fmt.Fprintf(c.out, "error: %s\n", err)
	}
}

// RenderRecent lists recent stylesheets, most recent first.
func (c *Console) RenderRecent(files []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.format {
	case FormatJSON:
		return c.enc.Encode(event{Event: "recent", Files: files})
	case FormatTerminal:
		if len(files) == 0 {
			_, err := fmt.Fprintln(c.out, mutedStyle.Render("no recent stylesheets"))
			return err
		}
		data := pterm.TableData{{"#", "stylesheet"}}
		for i, f := range files {
			data = append(data, []string{strconv.Itoa(i + 1), f})
		}
		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "cannot render table")
		}
		_, err = fmt.Fprintln(c.out, table)
		return err
	default:
		for i, f := range files {
			if _, err := fmt.Fprintf(c.out, "%d\t%s\n", i+1, f); err != nil {
				return err
			}
		}
		return nil
	}
}
