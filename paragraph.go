package mdgen

import "io"

// Paragraph is a block of inline children terminated by a blank line when
// rendered at the top level.
type Paragraph struct {
	children []Node
}

// NewParagraph creates an empty paragraph.
func NewParagraph() *Paragraph {
	return &Paragraph{}
}

// Append adds children to the paragraph and returns it. It panics when a
// child is a [Heading].
func (p *Paragraph) Append(children ...Node) *Paragraph {
	for _, c := range children {
		rejectHeading(c)
		p.children = append(p.children, c)
	}
	return p
}

func (p *Paragraph) writeTo(w io.Writer, inner bool, esc Escaping, linePrefix []byte) error {
	for _, c := range p.children {
		if err := c.writeTo(w, true, esc, linePrefix); err != nil {
			return err
		}
	}
	if !inner {
		return writeLinePrefixed(w, []byte("\n\n"), linePrefix)
	}
	return nil
}

func (p *Paragraph) maxStreak(target byte, carry int) (int, int) {
	longest := 0
	for _, c := range p.children {
		m, trailing := c.maxStreak(target, carry)
		if m > longest {
			longest = m
		}
		carry = trailing
	}
	if carry > longest {
		longest = carry
	}
	return longest, 0
}
