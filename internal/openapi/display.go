package openapi

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#E64A19")).
			Padding(0, 2)

	methodStyles = map[string]lipgloss.Style{
		"GET": lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#61AFEF")).
			Padding(0, 1),
		"POST": lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#98C379")).
			Padding(0, 1),
		"PUT": lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#E5C07B")).
			Padding(0, 1),
		"DELETE": lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#E06C75")).
			Padding(0, 1),
	}

	defaultMethodStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(lipgloss.Color("#ABB2BF")).
				Padding(0, 1)

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E5C07B")).
			Bold(true)

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ABB2BF"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#61AFEF")).
			MarginTop(1)
)

// RenderIndex renders the endpoint index of a parsed spec.
func (s *Spec) RenderIndex(endpoints []Endpoint) string {
	if len(endpoints) == 0 {
		return summaryStyle.Render("No endpoints found matching the filter")
	}

	var output strings.Builder

	if info := s.Info(); info != nil {
		title := fmt.Sprintf(" %s ", info.Title)
		if info.Version != "" {
			title += fmt.Sprintf("v%s ", info.Version)
		}
		output.WriteString(titleStyle.Render(title))
		output.WriteString("\n")
	}

	output.WriteString(sectionStyle.Render("Endpoints"))
	output.WriteString("\n\n")

	currentPath := ""
	for _, endpoint := range endpoints {
		if endpoint.Path != currentPath {
			if currentPath != "" {
				output.WriteString("\n")
			}
			output.WriteString(pathStyle.Render(endpoint.Path))
			output.WriteString("\n")
			currentPath = endpoint.Path
		}

		output.WriteString("  ")
		output.WriteString(getMethodStyle(endpoint.Method).Render(endpoint.Method))

		if endpoint.Summary != "" {
			output.WriteString("  ")
			output.WriteString(summaryStyle.Render(endpoint.Summary))
		}
		output.WriteString("\n")
	}

	return output.String()
}

func getMethodStyle(method string) lipgloss.Style {
	if style, ok := methodStyles[method]; ok {
		return style
	}
	return defaultMethodStyle
}
