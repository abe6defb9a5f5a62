package mdgen

import "io"

// Text is a leaf node holding plain text. Under [EscapeNormal] its
// Markdown-significant characters are backslash-escaped on output; rendered
// as a top-level block it is terminated by a blank line.
type Text string

// Paragraph wraps the text in a new [Paragraph].
func (t Text) Paragraph() *Paragraph { return NewParagraph().Append(t) }

// Heading wraps the text in a new [Heading] of the given level.
func (t Text) Heading(level int) *Heading { return NewHeading(level).Append(t) }

// LinkTo wraps the text in a [Link] leading to address.
func (t Text) LinkTo(address string) *Link { return NewLink(address).Append(t) }

// Bold returns the text as a bold [RichText].
func (t Text) Bold() *RichText { return &RichText{text: string(t), bold: true} }

// Italic returns the text as an italic [RichText].
func (t Text) Italic() *RichText { return &RichText{text: string(t), italic: true} }

// Code returns the text as an inline code [RichText].
func (t Text) Code() *RichText { return &RichText{text: string(t), code: true} }

// Quote wraps the text in a new [Quote].
func (t Text) Quote() *Quote { return NewQuote().Append(t) }

func (t Text) writeTo(w io.Writer, inner bool, esc Escaping, linePrefix []byte) error {
	switch esc {
	case EscapeInlineCode:
		// Verbatim, and deliberately not line-prefixed: the enclosing code
		// span owns these bytes.
		if err := writeAll(w, []byte(t)); err != nil {
			return err
		}
	default:
		if err := writeEscaped(w, []byte(t), linePrefix); err != nil {
			return err
		}
	}
	if !inner {
		return writeLinePrefixed(w, []byte("\n\n"), linePrefix)
	}
	return nil
}

func (t Text) maxStreak(target byte, carry int) (int, int) {
	longest, run := 0, carry
	for i := 0; i < len(t); i++ {
		if t[i] == target {
			run++
			continue
		}
		if run > longest {
			longest = run
		}
		run = 0
	}
	return longest, run
}
