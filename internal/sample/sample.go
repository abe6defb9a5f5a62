// Package sample builds the corpus of representative documents shared by
// the golden tests and cmd/gen-golden.
package sample

import "github.com/bjaus/mdgen"

// Doc pairs a golden file name with the nodes that produce it.
type Doc struct {
	Name  string
	Nodes []mdgen.Node
}

// Docs returns the golden corpus. Every entry renders deterministically.
func Docs() []Doc {
	return []Doc{
		{
			Name:  "paragraph",
			Nodes: []mdgen.Node{mdgen.Text("hello *world*").Paragraph()},
		},
		{
			Name: "heading-levels",
			Nodes: []mdgen.Node{
				mdgen.NewHeading(1).Append(mdgen.Text("Title")),
				mdgen.NewHeading(2).Append(mdgen.Text("Sub")),
				mdgen.Text("Body text").Paragraph(),
			},
		},
		{
			Name: "styles",
			Nodes: []mdgen.Node{
				mdgen.NewParagraph().Append(
					mdgen.Text("plain "),
					mdgen.Text("bold").Bold(),
					mdgen.Text(" and "),
					mdgen.Text("code`tick").Code(),
				),
			},
		},
		{
			Name: "code-fences",
			Nodes: []mdgen.Node{
				mdgen.NewParagraph().Append(
					mdgen.Text("run "),
					mdgen.Text("a`b``c").Code(),
				),
			},
		},
		{
			Name:  "link",
			Nodes: []mdgen.Node{mdgen.Text("Go homepage").LinkTo("https://go.dev/")},
		},
		{
			Name: "list-numbered",
			Nodes: []mdgen.Node{
				mdgen.NewList(true).
					Title(mdgen.Text("Steps:")).
					Item(mdgen.Text("first"), mdgen.Text("second"), mdgen.Text("third")),
			},
		},
		{
			Name:  "quote",
			Nodes: []mdgen.Node{mdgen.NewQuote().Append(mdgen.Text("first line\nsecond line"))},
		},
		{
			Name: "table-gfm",
			Nodes: []mdgen.Node{
				mdgen.NewTable(true).Header("A", "B").Rows([]string{"x", "y"}),
			},
		},
		{
			Name: "table-pipe",
			Nodes: []mdgen.Node{
				mdgen.NewTable(false).
					Header("Name", "Age").
					Rows([]string{"Ada", "36"}, []string{"Grace", "85"}),
			},
		},
		{
			Name: "mixed",
			Nodes: []mdgen.Node{
				mdgen.NewHeading(1).Append(mdgen.Text("Release 1.2")),
				mdgen.NewParagraph().Append(
					mdgen.Text("See "),
					mdgen.Text("changelog").LinkTo("https://example.com/log"),
					mdgen.Text(" for details."),
				),
				mdgen.NewList(false).
					Title(mdgen.Text("Highlights:")).
					Item(mdgen.Text("faster renders"), mdgen.Text("fewer bugs")),
			},
		},
	}
}
