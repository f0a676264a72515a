package format

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	codeStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#2C323C")).
			Foreground(lipgloss.Color("#ABB2BF")).
			Padding(0, 1)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#61AFEF"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98C379"))

	stateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E5C07B")).
			Bold(true)
)

// Render produces the styled terminal representation of a document.
func Render(doc *Document) string {
	if doc.Empty() {
		return ""
	}

	var out strings.Builder
	for _, b := range doc.Blocks {
		switch b.Kind {
		case KindCode:
			out.WriteString(codeStyle.Render(b.Text))
		case KindHeading:
			out.WriteString(headingStyle.Render(b.Text))
		}
		out.WriteString("\n")
		if b.Break {
			out.WriteString("\n")
		}
	}
	return out.String()
}

// RenderRow produces a styled "name  state" line for item listings.
func RenderRow(name, state string) string {
	return labelStyle.Render(name) + "  " + stateStyle.Render(state)
}
