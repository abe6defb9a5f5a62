// Package mdgen builds Markdown documents from a tree of nodes and renders
// them byte-exactly, with correct escaping, code-span fence sizing, and
// re-indentation of nested blocks.
//
// A document is assembled from [Node] values - [Text], [Paragraph],
// [Heading], [Link], [RichText], [List], [Quote], and [Table] - and
// rendered with [Write] or [Marshal]:
//
//	p := mdgen.Text("hello *world*").Paragraph()
//	mdgen.Write(os.Stdout, p) // hello \*world\*
//
// # Building Nodes
//
// [Text] is the leaf. Its conversion methods wrap it in richer nodes:
// Paragraph, Heading, LinkTo, Bold, Italic, Code, and Quote. Container
// builders ([NewParagraph], [NewHeading], [NewLink], [NewList], [NewQuote],
// [NewTable]) grow with fluent methods that return the receiver:
//
//	doc := mdgen.NewParagraph().Append(
//		mdgen.Text("see "),
//		mdgen.Text("the docs").Bold().LinkTo("https://example.com"),
//	)
//
// Style flags accumulate, so Text("x").Bold().Italic() renders ***x***.
//
// # Escaping
//
// Plain text is written under [EscapeNormal]: every Markdown-significant
// character (backslash, backtick, asterisk, underscore, braces, brackets,
// parentheses, hash, plus, minus, dot, bang) is preceded by one backslash.
// Inside a code span the mode switches to [EscapeInlineCode] and bytes pass
// through verbatim; the span's fence does the delimiting.
//
// # Code Spans
//
// A code span's backtick fence is sized to strictly exceed the longest
// backtick run inside the text, so the content can never terminate the span
// early. A single space pads the inside of each fence:
//
//	mdgen.Text("a `tick`").Code() // `` a `tick` ``
//
// # Nesting
//
// Quotes and lists re-indent everything beneath them. A [Quote] prefixes
// every line of its content with ">", however deeply the children nest; a
// [List] indents each item under a three-space-deepened prefix, using the
// static marker "1. " (numbered) or "* " (bulleted). Headings are top-level
// only: appending one to another element panics, as does a heading level
// outside 1-6, a [Link] nested in a link, and restyling a wrapped link or a
// list. These panics signal assembly mistakes, not runtime conditions.
//
// # Tables
//
// [NewTable] with gfm true renders a single line of inline HTML, the form
// GitHub Flavored Markdown accepts verbatim. With gfm false it renders a
// plain pipe table with display-width-padded columns. Cells are written raw
// in both modes.
//
// # Documents and Front Matter
//
// [Document] collects body nodes plus YAML front matter and implements
// [io.WriterTo]:
//
//	d := mdgen.NewDocument().Append(nodes...)
//	d.Title("Release Notes")
//	d.AddTag("changelog")
//	d.WriteTo(f)
//
// # HTML
//
// [ToHTML] and [ConvertHTML] render nodes and feed the result through a
// GitHub Flavored Markdown converter.
//
// # Errors
//
// Render calls return the sink's write error unmodified; there is no
// partial-success state. Only the outer surfaces ([Document.WriteTo],
// [ConvertHTML]) wrap errors with context.
package mdgen
