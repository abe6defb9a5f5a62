package mdgen

import (
	"bytes"
	"io"
)

// Escaping selects how plain text is written.
type Escaping int

const (
	// EscapeNormal backslash-escapes every Markdown-significant character.
	EscapeNormal Escaping = iota
	// EscapeInlineCode writes text verbatim; code spans are self-delimiting.
	EscapeInlineCode
)

// escapeSet holds the characters escaped under [EscapeNormal].
const escapeSet = "\\`*_{}[]()#+-.!"

// Node is one element of a Markdown document tree. The variant set is
// closed: [Text], [Paragraph], [Heading], [Link], [RichText], [List],
// [Quote], and [Table].
type Node interface {
	// writeTo renders the node to w. inner reports whether the node is part
	// of another element's content (inner nodes emit no block terminator);
	// esc is the active escaping mode; linePrefix, when non-nil, is
	// re-written after every newline the node emits.
	writeTo(w io.Writer, inner bool, esc Escaping, linePrefix []byte) error

	// maxStreak reports the longest run of target anywhere in the node's
	// plain-text content, plus the length of the run still open at the
	// node's end. carry is the open run carried in from a preceding sibling.
	maxStreak(target byte, carry int) (longest, trailing int)
}

// Write renders each node to w as a top-level block, in order.
func Write(w io.Writer, nodes ...Node) error {
	for _, n := range nodes {
		if err := n.writeTo(w, false, EscapeNormal, nil); err != nil {
			return err
		}
	}
	return nil
}

// Marshal renders nodes and returns the bytes.
func Marshal(nodes ...Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, nodes...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeLinePrefixed writes data to w, re-writing linePrefix after every
// newline. The first line is never prefixed; opening markers are the
// caller's responsibility.
func writeLinePrefixed(w io.Writer, data, linePrefix []byte) error {
	if linePrefix == nil {
		return writeAll(w, data)
	}
	for {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			return writeAll(w, data)
		}
		if err := writeAll(w, data[:i+1]); err != nil {
			return err
		}
		if err := writeAll(w, linePrefix); err != nil {
			return err
		}
		data = data[i+1:]
	}
}

var backslash = []byte{'\\'}

// writeEscaped writes data under [EscapeNormal] rules: each byte in
// escapeSet is preceded by a backslash. Clean chunks and the escaped byte
// flow through the line prefixer; the backslash never starts a line and is
// written directly.
func writeEscaped(w io.Writer, data, linePrefix []byte) error {
	for {
		i := bytes.IndexAny(data, escapeSet)
		if i < 0 {
			return writeLinePrefixed(w, data, linePrefix)
		}
		if err := writeLinePrefixed(w, data[:i], linePrefix); err != nil {
			return err
		}
		if err := writeAll(w, backslash); err != nil {
			return err
		}
		if err := writeLinePrefixed(w, data[i:i+1], linePrefix); err != nil {
			return err
		}
		data = data[i+1:]
	}
}

// writeAll writes p in full. Empty slices skip the Write call.
func writeAll(w io.Writer, p []byte) error {
	if len(p) == 0 {
		return nil
	}
	_, err := w.Write(p)
	return err
}

// extendPrefix returns a fresh copy of linePrefix with ext appended, so a
// child's extension never aliases the parent's slice.
func extendPrefix(linePrefix []byte, ext string) []byte {
	p := make([]byte, 0, len(linePrefix)+len(ext))
	p = append(p, linePrefix...)
	p = append(p, ext...)
	return p
}

// rejectHeading panics when child is a heading. Headings are top-level
// blocks only.
func rejectHeading(child Node) {
	if _, ok := child.(*Heading); ok {
		panic("mdgen: a heading cannot be nested inside another element")
	}
}
