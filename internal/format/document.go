package format

import "strings"

// BlockKind distinguishes the block types a Document carries.
type BlockKind int

const (
	// KindCode is a code-formatted line.
	KindCode BlockKind = iota
	// KindHeading is a plain heading line.
	KindHeading
)

// Block is one entry of a Document. Break marks a line-break separator
// following the block; it never appears on the last block of a run.
type Block struct {
	Kind  BlockKind
	Text  string
	Break bool
}

// Document is an ordered sequence of heterogeneous display blocks. It is
// produced fresh per call, owned by the caller, and has no identity beyond
// block order.
type Document struct {
	Blocks []Block
}

// Empty reports whether the document carries no blocks.
func (d *Document) Empty() bool {
	return d == nil || len(d.Blocks) == 0
}

// codeLanguage tags fenced code blocks in the Markdown rendering so
// editors apply item-syntax highlighting.
const codeLanguage = "openhab"

// Markdown renders the document as a Markdown fragment, the payload shape
// hover tooltips consume.
func (d *Document) Markdown() string {
	if d.Empty() {
		return ""
	}

	var out strings.Builder
	for _, b := range d.Blocks {
		switch b.Kind {
		case KindCode:
			out.WriteString("```")
			out.WriteString(codeLanguage)
			out.WriteString("\n")
			out.WriteString(b.Text)
			out.WriteString("\n```\n")
		case KindHeading:
			out.WriteString(b.Text)
			out.WriteString("\n")
		}
		if b.Break {
			out.WriteString("\n")
		}
	}
	return out.String()
}
