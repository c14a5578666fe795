package ui

import (
	"fmt"

	"github.com/arthur-debert/xsltview/pkg/errors"
	"github.com/charmbracelet/glamour"
)

// RenderMarkdown prints md, styled by glamour on a terminal and as-is otherwise.
func (c *Console) RenderMarkdown(md string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.format {
	case FormatJSON:
		return c.enc.Encode(event{Event: "markdown", Text: md})
	case FormatTerminal:
		renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "cannot create markdown renderer")
		}
		rendered, err := renderer.Render(md)
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "cannot render markdown")
		}
		_, err = fmt.Fprint(c.out, rendered)
		return err
	default:
		_, err := fmt.Fprint(c.out, md)
		return err
	}
}
