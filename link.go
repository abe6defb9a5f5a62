package mdgen

import "io"

const restyleLinkMsg = "mdgen: cannot restyle a link; style the text first, as in Text(\"x\").Bold().LinkTo(addr)"

// Link is an inline link. Children form the visible text; the address is
// written inside the parentheses, escaped as plain text.
type Link struct {
	children []Node
	address  string
}

// NewLink creates an empty link leading to address.
func NewLink(address string) *Link {
	return &Link{address: address}
}

// Append adds children to the link text and returns it. It panics when a
// child is itself a [Link] or a [Heading].
func (l *Link) Append(children ...Node) *Link {
	for _, c := range children {
		rejectHeading(c)
		if _, ok := c.(*Link); ok {
			panic("mdgen: a link cannot contain another link")
		}
		l.children = append(l.children, c)
	}
	return l
}

// Paragraph wraps the link in a new [Paragraph].
func (l *Link) Paragraph() *Paragraph { return NewParagraph().Append(l) }

// Heading wraps the link in a new [Heading] of the given level.
func (l *Link) Heading(level int) *Heading { return NewHeading(level).Append(l) }

// Quote wraps the link in a new [Quote].
func (l *Link) Quote() *Quote { return NewQuote().Append(l) }

// LinkTo panics: a link cannot contain another link.
func (l *Link) LinkTo(string) *Link {
	panic("mdgen: a link cannot contain another link")
}

// Bold panics: a link's body cannot be restyled after wrapping.
func (l *Link) Bold() *RichText { panic(restyleLinkMsg) }

// Italic panics: a link's body cannot be restyled after wrapping.
func (l *Link) Italic() *RichText { panic(restyleLinkMsg) }

// Code panics: a link's body cannot be restyled after wrapping.
func (l *Link) Code() *RichText { panic(restyleLinkMsg) }

func (l *Link) writeTo(w io.Writer, inner bool, esc Escaping, linePrefix []byte) error {
	if err := writeAll(w, []byte("[")); err != nil {
		return err
	}
	for _, c := range l.children {
		if err := c.writeTo(w, true, esc, linePrefix); err != nil {
			return err
		}
	}
	if err := writeAll(w, []byte("](")); err != nil {
		return err
	}
	if err := Text(l.address).writeTo(w, true, esc, linePrefix); err != nil {
		return err
	}
	if err := writeAll(w, []byte(")")); err != nil {
		return err
	}
	if !inner {
		return writeLinePrefixed(w, []byte("\n"), linePrefix)
	}
	return nil
}

func (l *Link) maxStreak(target byte, _ int) (int, int) {
	// Either the visible text or the address can constrain a wrapping
	// delimiter, so take the larger of the two, never the sum.
	addrLongest, addrTrailing := Text(l.address).maxStreak(target, 0)
	addrLongest = max(addrLongest, addrTrailing)

	longest, run := 0, 0
	for _, c := range l.children {
		m, trailing := c.maxStreak(target, run)
		if m > longest {
			longest = m
		}
		run = trailing
	}
	if run > longest {
		longest = run
	}
	return max(longest, addrLongest), 0
}
