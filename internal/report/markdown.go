package report

import (
	"fmt"
	"strings"

	"drilldown/internal/analytics"

	"github.com/charmbracelet/glamour"
)

// Markdown returns sections as a markdown document, one table per section.
func Markdown(sections []Section) string {
	var sb strings.Builder
	sb.WriteString("# Event summary\n\n")
	sb.WriteString("_" + analytics.TableCaption + "_\n")
	for _, s := range sections {
		fmt.Fprintf(&sb, "\n## %s\n\n", s.Title)
		if len(s.Rows) == 0 {
			sb.WriteString("No events.\n")
			continue
		}
		sb.WriteString("| Action | Count |\n| --- | ---: |\n")
		for _, r := range s.Rows {
			fmt.Fprintf(&sb, "| %s | %d |\n", escapeCell(r.Action), r.Count)
		}
	}
	return sb.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// RenderMarkdown renders md for a terminal. style is a glamour standard style
// name ("dark", "light", "notty", ...); empty or "auto" picks from the terminal.
func RenderMarkdown(md, style string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
