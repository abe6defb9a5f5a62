package mdgen

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a complete Markdown file: an optional YAML front-matter block
// followed by rendered body nodes. The zero value is ready to use.
type Document struct {
	frontMatter map[string]any
	nodes       []Node
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Append adds body nodes and returns the document.
func (d *Document) Append(nodes ...Node) *Document {
	d.nodes = append(d.nodes, nodes...)
	return d
}

// SetField sets a front-matter field. The value must be encodable by
// yaml.v3.
func (d *Document) SetField(key string, value any) {
	if d.frontMatter == nil {
		d.frontMatter = make(map[string]any)
	}
	d.frontMatter[key] = value
}

// Title sets the title front-matter field.
func (d *Document) Title(s string) { d.SetField("title", s) }

// Layout sets the layout front-matter field.
func (d *Document) Layout(s string) { d.SetField("layout", s) }

// Summary sets the summary front-matter field. Empty summaries are skipped.
func (d *Document) Summary(s string) {
	if s == "" {
		return
	}
	d.SetField("summary", s)
}

// AddTag appends a tag to the tags front-matter list. Empty tags are
// skipped.
func (d *Document) AddTag(s string) {
	if s == "" {
		return
	}
	var tags []string
	if d.frontMatter != nil {
		if cur, ok := d.frontMatter["tags"].([]string); ok {
			tags = cur
		}
	}
	d.SetField("tags", append(tags, s))
}

// String renders the document to a string.
func (d *Document) String() string {
	s := new(strings.Builder)
	_, _ = d.WriteTo(s)
	return s.String()
}

// WriteTo renders the document to w and reports the bytes written,
// implementing [io.WriterTo]. The front-matter block, when present, is
// delimited by "---" lines and separated from the body by a blank line.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}

	if len(d.frontMatter) > 0 {
		var buf bytes.Buffer
		buf.WriteString("---\n")
		enc := yaml.NewEncoder(&buf)
		if err := enc.Encode(d.frontMatter); err != nil {
			return cw.n, fmt.Errorf("encode front matter: %w", err)
		}
		if err := enc.Close(); err != nil {
			return cw.n, fmt.Errorf("encode front matter: %w", err)
		}
		buf.WriteString("---\n\n")
		if _, err := buf.WriteTo(cw); err != nil {
			return cw.n, fmt.Errorf("write front matter: %w", err)
		}
	}

	if err := Write(cw, d.nodes...); err != nil {
		return cw.n, fmt.Errorf("write body: %w", err)
	}
	return cw.n, nil
}

type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
