package mdgen_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/bjaus/mdgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseTable(t *testing.T, node mdgen.Node) *goquery.Document {
	data, err := mdgen.Marshal(node)
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(data)))
	require.NoError(t, err)
	return doc
}

func TestTableHTMLStructure(t *testing.T) {
	t.Parallel()
	doc := parseTable(t, mdgen.NewTable(true).
		Header("Name", "Age").
		Rows([]string{"Ada", "36"}, []string{"Grace", "85"}))

	var headers []string
	doc.Find("thead th").Each(func(_ int, s *goquery.Selection) {
		headers = append(headers, s.Text())
	})
	assert.Equal(t, []string{"Name", "Age"}, headers)

	rows := doc.Find("tbody tr")
	assert.Equal(t, 2, rows.Length())
	var cells []string
	rows.Find("td").Each(func(_ int, s *goquery.Selection) {
		cells = append(cells, s.Text())
	})
	assert.Equal(t, []string{"Ada", "36", "Grace", "85"}, cells)
}

func TestTableHTMLRowsBalanced(t *testing.T) {
	t.Parallel()
	// Single-cell rows still get a full <tr> wrapper each.
	doc := parseTable(t, mdgen.NewTable(true).Header("A").
		Rows([]string{"a"}, []string{"b"}))

	rows := doc.Find("tbody tr")
	assert.Equal(t, 2, rows.Length())
	rows.Each(func(_ int, s *goquery.Selection) {
		assert.Equal(t, 1, s.Find("td").Length())
	})
}

func TestTableHTMLEmptyRowsDropped(t *testing.T) {
	t.Parallel()
	doc := parseTable(t, mdgen.NewTable(true).Header("A").
		Rows([]string{"x"}, []string{}, []string{"y"}))

	assert.Equal(t, 2, doc.Find("tbody tr").Length())
}

func TestTableHTMLNoHeader(t *testing.T) {
	t.Parallel()
	doc := parseTable(t, mdgen.NewTable(true).Rows([]string{"x"}))

	assert.Equal(t, 0, doc.Find("thead").Length())
	assert.Equal(t, 1, doc.Find("tbody tr").Length())
}
