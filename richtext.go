package mdgen

import "io"

// RichText is a run of plain text styled bold, italic, inline code, or any
// combination of the three. Values come from the [Text] conversions; the
// flag methods accumulate, so Text("x").Bold().Italic() is bold and italic.
type RichText struct {
	text   string
	bold   bool
	italic bool
	code   bool
}

// Bold marks the text bold.
func (r *RichText) Bold() *RichText {
	r.bold = true
	return r
}

// Italic marks the text italic.
func (r *RichText) Italic() *RichText {
	r.italic = true
	return r
}

// Code marks the text as an inline code span.
func (r *RichText) Code() *RichText {
	r.code = true
	return r
}

// Paragraph wraps the styled run in a new [Paragraph].
func (r *RichText) Paragraph() *Paragraph { return NewParagraph().Append(r) }

// Heading wraps the styled run in a new [Heading] of the given level.
func (r *RichText) Heading(level int) *Heading { return NewHeading(level).Append(r) }

// LinkTo wraps the styled run in a [Link] leading to address.
func (r *RichText) LinkTo(address string) *Link { return NewLink(address).Append(r) }

// Quote wraps the styled run in a new [Quote].
func (r *RichText) Quote() *Quote { return NewQuote().Append(r) }

func (r *RichText) writeTo(w io.Writer, inner bool, esc Escaping, linePrefix []byte) error {
	var symbol []byte
	if r.bold {
		symbol = append(symbol, "**"...)
	}
	if r.italic {
		symbol = append(symbol, '*')
	}
	if r.code {
		// The fence must outrun the longest backtick run in the text,
		// counting a run still open at the end.
		longest, trailing := Text(r.text).maxStreak('`', 0)
		fence := max(longest, trailing) + 1
		for i := 0; i < fence; i++ {
			symbol = append(symbol, '`')
		}
		symbol = append(symbol, ' ')
		esc = EscapeInlineCode
	}

	if err := writeAll(w, symbol); err != nil {
		return err
	}
	if err := Text(r.text).writeTo(w, true, esc, linePrefix); err != nil {
		return err
	}
	reverseBytes(symbol)
	if err := writeAll(w, symbol); err != nil {
		return err
	}

	if !inner {
		return writeLinePrefixed(w, []byte("\n\n"), linePrefix)
	}
	return nil
}

func (r *RichText) maxStreak(target byte, _ int) (int, int) {
	longest, trailing := Text(r.text).maxStreak(target, 0)
	return max(longest, trailing), 0
}

// reverseBytes mirrors the opening symbol into the closing one in place.
func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
