package mdgen_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/bjaus/mdgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTML(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		nodes []mdgen.Node
		want  string
	}{
		"heading": {
			nodes: []mdgen.Node{mdgen.Text("Title").Heading(1)},
			want:  "<h1>Title</h1>\n",
		},
		"paragraph": {
			nodes: []mdgen.Node{mdgen.Text("body").Paragraph()},
			want:  "<p>body</p>\n",
		},
		"escapes survive the round trip": {
			nodes: []mdgen.Node{mdgen.Text("hello *world*").Paragraph()},
			want:  "<p>hello *world*</p>\n",
		},
		"bold": {
			nodes: []mdgen.Node{mdgen.Text("bold").Bold()},
			want:  "<p><strong>bold</strong></p>\n",
		},
		"code span": {
			nodes: []mdgen.Node{mdgen.Text("a*b").Code()},
			want:  "<p><code>a*b</code></p>\n",
		},
		"link": {
			nodes: []mdgen.Node{mdgen.Text("Go").LinkTo("https://go.dev")},
			want:  "<p><a href=\"https://go.dev\">Go</a></p>\n",
		},
		"gfm table passes through raw": {
			nodes: []mdgen.Node{mdgen.NewTable(true).Header("A").Rows([]string{"x"})},
			want: "<table><thead><tr><th>A</th></tr></thead>" +
				"<tbody><tr><td>x</td></tr></tbody></table>\n",
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			out, err := mdgen.ToHTML(tt.nodes...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestConvertHTMLMatchesToHTML(t *testing.T) {
	t.Parallel()
	nodes := []mdgen.Node{mdgen.Text("same").Paragraph()}
	var buf bytes.Buffer
	require.NoError(t, mdgen.ConvertHTML(&buf, nodes...))
	out, err := mdgen.ToHTML(nodes...)
	require.NoError(t, err)
	assert.Equal(t, buf.String(), string(out))
}

func TestToHTMLPipeTable(t *testing.T) {
	t.Parallel()
	out, err := mdgen.ToHTML(
		mdgen.NewTable(false).
			Header("Name", "Age").
			Rows([]string{"Ada", "36"}, []string{"Grace", "85"}),
	)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(out))
	require.NoError(t, err)
	var headers []string
	doc.Find("thead th").Each(func(_ int, s *goquery.Selection) {
		headers = append(headers, s.Text())
	})
	assert.Equal(t, []string{"Name", "Age"}, headers)
	var cells []string
	doc.Find("tbody td").Each(func(_ int, s *goquery.Selection) {
		cells = append(cells, s.Text())
	})
	assert.Equal(t, []string{"Ada", "36", "Grace", "85"}, cells)
}

func TestToHTMLQuoteAndList(t *testing.T) {
	t.Parallel()
	out, err := mdgen.ToHTML(
		mdgen.NewQuote().Append(mdgen.Text("first\nsecond")),
		mdgen.NewList(true).
			Title(mdgen.Text("Steps:")).
			Item(mdgen.Text("one"), mdgen.Text("two"), mdgen.Text("three")),
	)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Find("blockquote").Length())
	var items []string
	doc.Find("ol li").Each(func(_ int, s *goquery.Selection) {
		items = append(items, strings.TrimSpace(s.Text()))
	})
	assert.Equal(t, []string{"one", "two", "three"}, items)
}

func TestConvertHTMLWriteError(t *testing.T) {
	t.Parallel()
	err := mdgen.ConvertHTML(&errWriter{}, mdgen.Text("x").Paragraph())
	require.ErrorIs(t, err, errWriteFailed)
	assert.Contains(t, err.Error(), "convert markdown")
}
