package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"auditor/internal/benchmark"
	"auditor/internal/workbench"
)

// Renderer turns auditor results into terminal output.
type Renderer struct {
	Width int
	md    *glamour.TermRenderer
}

// NewRenderer returns a renderer for the given width. An empty style picks
// one from the terminal.
func NewRenderer(width int, style string) *Renderer {
	if width <= 0 {
		width = 100
	}
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	md, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		md = nil
	}
	return &Renderer{Width: width, md: md}
}

// Code renders code as a highlighted block, falling back to plain text.
func (r *Renderer) Code(code, lang string) string {
	block := fmt.Sprintf("```%s\n%s\n```", lang, code)
	if r.md == nil {
		return block + "\n"
	}
	out, err := r.md.Render(block)
	if err != nil {
		return block + "\n"
	}
	return out
}

// Header renders a title bar.
func Header(text string) string {
	return headerStyle.Render(text)
}

// Badge colors an efficiency signal.
func Badge(signal string) string {
	if signal == workbench.Poor {
		return poorStyle.Render(signal)
	}
	return goodStyle.Render(signal)
}

// Label renders a complexity label.
func Label(label string) string {
	if strings.HasPrefix(label, "Syntax Error") {
		return errorStyle.Render(label)
	}
	return labelStyle.Render(label)
}

// Success renders a confirmation line.
func Success(text string) string {
	return successStyle.Render(text)
}

// Failure renders an error line.
func Failure(text string) string {
	return errorStyle.Render(text)
}

// Muted renders secondary text.
func Muted(text string) string {
	return mutedStyle.Render(text)
}

// Candidate renders one generated solution with its grade.
func (r *Renderer) Candidate(title string, c workbench.Candidate, lang string) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(r.Code(c.Code, lang))
	fmt.Fprintf(&b, "Efficiency Signal: %s %s", Label(c.Label), Badge(c.Signal))
	return paneStyle.Width(r.Width).Render(b.String())
}

// Pair renders both candidates, A above B.
func (r *Renderer) Pair(p workbench.Pair, lang string) string {
	a := r.Candidate(modelAStyle.Render("Model A ("+p.A.Strategy.Title()+")"), p.A, lang)
	b := r.Candidate(modelBStyle.Render("Model B ("+p.B.Strategy.Title()+")"), p.B, lang)
	return lipgloss.JoinVertical(lipgloss.Left, a, b)
}

// Series renders a profiler series as an aligned table.
func Series(series benchmark.Series) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-10s %-14s %s\n", "SIZE", "TIME", "MEMORY")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	for _, res := range series {
		fmt.Fprintf(&b, "%-10d %-14s %s\n", res.Size, res.Time, res.Memory)
	}
	return b.String()
}
