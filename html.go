package mdgen

import (
	"bytes"
	"fmt"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ToHTML renders nodes to Markdown and converts the result to HTML. The
// converter speaks GitHub Flavored Markdown, so inline-HTML tables, pipe
// tables, and the rest of the emitted dialect all survive the round trip.
func ToHTML(nodes ...Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := ConvertHTML(&buf, nodes...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ConvertHTML renders nodes to Markdown and writes the converted HTML to w.
func ConvertHTML(w io.Writer, nodes ...Node) error {
	src, err := Marshal(nodes...)
	if err != nil {
		return err
	}
	// Unsafe keeps raw HTML, which is how GFM tables are emitted.
	gm := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	if err := gm.Convert(src, w); err != nil {
		return fmt.Errorf("convert markdown: %w", err)
	}
	return nil
}
