package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/revenge"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// stickerColors maps cube colors to terminal background colors.
var stickerColors = map[revenge.Color]lipgloss.Color{
	revenge.White:  lipgloss.Color("15"),
	revenge.Yellow: lipgloss.Color("11"),
	revenge.Green:  lipgloss.Color("34"),
	revenge.Blue:   lipgloss.Color("27"),
	revenge.Red:    lipgloss.Color("160"),
	revenge.Orange: lipgloss.Color("208"),
}

func sticker(c revenge.Color) string {
	bg, ok := stickerColors[c]
	if !ok {
		return "  "
	}
	return lipgloss.NewStyle().Background(bg).Render("  ")
}

// renderNet draws the unfolded cube with colored stickers.
func renderNet(s revenge.State) string {
	n := s.Size
	var b strings.Builder
	indent := strings.Repeat("  ", n) + " "

	writeRow := func(row []revenge.Color) {
		for _, c := range row {
			b.WriteString(sticker(c))
		}
	}

	up := s.Facelets(revenge.U)
	for row := 0; row < n; row++ {
		b.WriteString(indent)
		writeRow(up[row])
		b.WriteString("\n")
	}

	sides := [][][]revenge.Color{
		s.Facelets(revenge.L), s.Facelets(revenge.F),
		s.Facelets(revenge.R), s.Facelets(revenge.B),
	}
	for row := 0; row < n; row++ {
		for i, face := range sides {
			if i > 0 {
				b.WriteString(" ")
			}
			writeRow(face[row])
		}
		b.WriteString("\n")
	}

	down := s.Facelets(revenge.D)
	for row := 0; row < n; row++ {
		b.WriteString(indent)
		writeRow(down[row])
		b.WriteString("\n")
	}

	return b.String()
}

// formatTokens joins move tokens for display, keeping only the last max.
func formatTokens(tokens []string, max int) string {
	if len(tokens) == 0 {
		return "-"
	}
	if max > 0 && len(tokens) > max {
		return "... " + strings.Join(tokens[len(tokens)-max:], " ")
	}
	return strings.Join(tokens, " ")
}
