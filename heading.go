package mdgen

import (
	"fmt"
	"io"
	"strings"
)

// Heading is an ATX heading of level 1 through 6. Headings are top-level
// blocks; appending one to any other element panics. Children always render
// with [EscapeNormal], regardless of the surrounding mode.
type Heading struct {
	children []Node
	level    int
}

// NewHeading creates an empty heading. It panics unless level is 1-6.
func NewHeading(level int) *Heading {
	if level < 1 || level > 6 {
		panic(fmt.Sprintf("mdgen: heading level must be in range 1-6, got %d", level))
	}
	return &Heading{level: level}
}

// Append adds children to the heading text and returns it. It panics when a
// child is itself a [Heading].
func (h *Heading) Append(children ...Node) *Heading {
	for _, c := range children {
		rejectHeading(c)
		h.children = append(h.children, c)
	}
	return h
}

func (h *Heading) writeTo(w io.Writer, inner bool, _ Escaping, linePrefix []byte) error {
	if inner {
		panic("mdgen: a heading cannot be nested inside another element")
	}
	if err := writeAll(w, []byte(strings.Repeat("#", h.level)+" ")); err != nil {
		return err
	}
	for _, c := range h.children {
		if err := c.writeTo(w, true, EscapeNormal, linePrefix); err != nil {
			return err
		}
	}
	return writeLinePrefixed(w, []byte("\n"), linePrefix)
}

func (h *Heading) maxStreak(target byte, _ int) (int, int) {
	longest, run := 0, 0
	for _, c := range h.children {
		m, trailing := c.maxStreak(target, run)
		if m > longest {
			longest = m
		}
		run = trailing
	}
	return longest, run
}
