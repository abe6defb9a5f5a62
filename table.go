package mdgen

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table holds column headers and rows of cell strings. In GFM mode it
// renders as a single line of inline HTML, the form GitHub-flavored
// Markdown accepts verbatim; otherwise it renders as a plain pipe table.
// Cell content is written raw in both modes.
type Table struct {
	gfm     bool
	columns []string
	rows    [][]string
}

// NewTable creates an empty table. gfm selects the GitHub Flavored Markdown
// rendering, which emits the table as inline HTML.
func NewTable(gfm bool) *Table {
	return &Table{gfm: gfm}
}

// Header sets the column headers, replacing any previous ones.
func (t *Table) Header(columns ...string) *Table {
	t.columns = columns
	return t
}

// Rows sets the table rows, replacing any previous ones.
func (t *Table) Rows(rows ...[]string) *Table {
	t.rows = rows
	return t
}

func (t *Table) writeTo(w io.Writer, _ bool, _ Escaping, linePrefix []byte) error {
	if t.gfm {
		// One line of HTML, so nothing for the prefixer to rewrite.
		if err := writeAll(w, t.renderHTML()); err != nil {
			return err
		}
	} else {
		if err := writeLinePrefixed(w, t.renderPipe(), linePrefix); err != nil {
			return err
		}
	}
	return writeLinePrefixed(w, []byte("\n"), linePrefix)
}

func (t *Table) maxStreak(byte, int) (int, int) {
	return 0, 0
}

// renderHTML assembles the GFM form. The first header cell opens
// <thead><tr> and the last closes it; each row's first cell opens its <tr>
// and the last cell closes it, so empty rows emit nothing.
func (t *Table) renderHTML() []byte {
	var b strings.Builder
	b.WriteString("<table>")
	for i, col := range t.columns {
		if i == 0 {
			b.WriteString("<thead><tr>")
		}
		b.WriteString("<th>")
		b.WriteString(col)
		b.WriteString("</th>")
		if i == len(t.columns)-1 {
			b.WriteString("</tr></thead>")
		}
	}
	b.WriteString("<tbody>")
	for _, row := range t.rows {
		for i, cell := range row {
			if i == 0 {
				b.WriteString("<tr>")
			}
			b.WriteString("<td>")
			b.WriteString(cell)
			b.WriteString("</td>")
			if i == len(row)-1 {
				b.WriteString("</tr>")
			}
		}
	}
	b.WriteString("</tbody></table>")
	return []byte(b.String())
}

// renderPipe assembles the plain pipe-table form: header row, dash
// separator, data rows, columns padded to their display width (minimum 3).
// Lines are joined without a trailing newline; the caller terminates the
// block.
func (t *Table) renderPipe() []byte {
	numCols := len(t.columns)
	for _, row := range t.rows {
		if len(row) > numCols {
			numCols = len(row)
		}
	}
	if numCols == 0 {
		return nil
	}

	widths := make([]int, numCols)
	for i, col := range t.columns {
		if w := runewidth.StringWidth(col); w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	var b strings.Builder
	writePipeRow(&b, t.columns, widths)

	sep := make([]string, numCols)
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	fmt.Fprintf(&b, "\n| %s |", strings.Join(sep, " | "))

	for _, row := range t.rows {
		b.WriteByte('\n')
		writePipeRow(&b, row, widths)
	}
	return []byte(b.String())
}

func writePipeRow(b *strings.Builder, cells []string, widths []int) {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = padCell(cell, width)
	}
	fmt.Fprintf(b, "| %s |", strings.Join(padded, " | "))
}

func padCell(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}
