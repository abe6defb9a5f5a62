package mdgen

import "io"

// List is a bulleted or numbered list. Title nodes render inline before the
// items; each item then starts on its own line under a prefix deepened by
// three spaces, so line breaks inside an item stay visually nested.
// Numbered lists write the static "1. " marker for every item and leave the
// counting to the Markdown renderer.
type List struct {
	title    []Node
	items    []Node
	numbered bool
}

// NewList creates an empty list; numbered selects "1. " markers over "* ".
func NewList(numbered bool) *List {
	return &List{numbered: numbered}
}

// Title appends nodes to the list title and returns the list.
func (l *List) Title(nodes ...Node) *List {
	for _, n := range nodes {
		rejectHeading(n)
		l.title = append(l.title, n)
	}
	return l
}

// Item appends each node as one item and returns the list.
func (l *List) Item(items ...Node) *List {
	for _, n := range items {
		rejectHeading(n)
		l.items = append(l.items, n)
	}
	return l
}

// Paragraph wraps the list in a new [Paragraph].
func (l *List) Paragraph() *Paragraph { return NewParagraph().Append(l) }

// Quote wraps the list in a new [Quote].
func (l *List) Quote() *Quote { return NewQuote().Append(l) }

// Heading panics: a list cannot become a heading.
func (l *List) Heading(int) *Heading { panic("mdgen: cannot make a heading from a list") }

// LinkTo panics: a list cannot become a link.
func (l *List) LinkTo(string) *Link { panic("mdgen: cannot make a link from a list") }

// Bold panics: a list cannot be styled.
func (l *List) Bold() *RichText { panic("mdgen: cannot style a list") }

// Italic panics: a list cannot be styled.
func (l *List) Italic() *RichText { panic("mdgen: cannot style a list") }

// Code panics: a list cannot be styled.
func (l *List) Code() *RichText { panic("mdgen: cannot style a list") }

func (l *List) writeTo(w io.Writer, _ bool, esc Escaping, linePrefix []byte) error {
	for _, n := range l.title {
		if err := n.writeTo(w, true, esc, linePrefix); err != nil {
			return err
		}
	}

	prefix := extendPrefix(linePrefix, "   ")
	marker := []byte("\n* ")
	if l.numbered {
		marker = []byte("\n1. ")
	}
	for _, it := range l.items {
		// The marker runs through the prefixer with the extended prefix, so
		// the item line itself sits indented under the caller's prefix.
		if err := writeLinePrefixed(w, marker, prefix); err != nil {
			return err
		}
		if err := it.writeTo(w, true, esc, prefix); err != nil {
			return err
		}
	}
	return nil
}

func (l *List) maxStreak(target byte, _ int) (int, int) {
	// Item markers break any run, so items count independently.
	longest := 0
	for _, it := range l.items {
		m, trailing := it.maxStreak(target, 0)
		m = max(m, trailing)
		if m > longest {
			longest = m
		}
	}
	return longest, 0
}
