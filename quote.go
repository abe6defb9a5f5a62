package mdgen

import "io"

// Quote is a block quote. Every line of its content, however deeply the
// children nest, is prefixed with ">".
type Quote struct {
	children []Node
}

// NewQuote creates an empty quote block.
func NewQuote() *Quote {
	return &Quote{}
}

// Append adds children to the quote and returns it. It panics when a child
// is a [Heading].
func (q *Quote) Append(children ...Node) *Quote {
	for _, c := range children {
		rejectHeading(c)
		q.children = append(q.children, c)
	}
	return q
}

func (q *Quote) writeTo(w io.Writer, inner bool, esc Escaping, linePrefix []byte) error {
	prefix := extendPrefix(linePrefix, ">")
	if !inner {
		if err := writeLinePrefixed(w, []byte("\n"), linePrefix); err != nil {
			return err
		}
	}
	if err := writeAll(w, []byte(">")); err != nil {
		return err
	}
	for _, c := range q.children {
		if err := c.writeTo(w, true, esc, prefix); err != nil {
			return err
		}
	}
	if !inner {
		return writeLinePrefixed(w, []byte("\n\n"), linePrefix)
	}
	return nil
}

func (q *Quote) maxStreak(target byte, _ int) (int, int) {
	// The leading ">" breaks an incoming run; children render back to back,
	// so their runs thread.
	longest, run := 0, 0
	for _, c := range q.children {
		m, trailing := c.maxStreak(target, run)
		if m > longest {
			longest = m
		}
		run = trailing
	}
	if run > longest {
		longest = run
	}
	return longest, 0
}
