package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const asciiBanner = `
     _   _   _ ____ ___ _____ ___  ____
    / \ | | | |  _ \_ _|_   _/ _ \|  _ \
   / _ \| | | | | | | |  | || | | | |_) |
  / ___ \ |_| | |_| | |  | || |_| |  _ <
 /_/   \_\___/|____/___| |_| \___/|_| \_\
`

// gradient colors the banner top to bottom.
var gradient = []string{"#00BFFF", "#1E90FF", "#4169E1", "#8A2BE2", "#FF00FF"}

// Banner returns the gradient styled banner followed by subtitle.
func Banner(subtitle string) string {
	lines := strings.Split(strings.Trim(asciiBanner, "\n"), "\n")
	colored := make([]string, 0, len(lines)+1)

	for i, line := range lines {
		color := "#FFF"
		if i < len(gradient) {
			color = gradient[i]
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
		colored = append(colored, style.Render(line))
	}
	if subtitle != "" {
		colored = append(colored, mutedStyle.Render(subtitle))
	}

	return bannerContainerStyle.Render(strings.Join(colored, "\n"))
}

var bannerContainerStyle = lipgloss.NewStyle().
	MarginBottom(1).
	Padding(0, 1).
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("62")) // Purple-ish border
