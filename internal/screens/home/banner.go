package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/vololibero/quizvl/internal/ui/theme"
)

const titleFull = `  ___  _   _ ___ _______     ___
 / _ \| | | |_ _|__  /\ \   / / |
| | | | | | || |  / /  \ \ / /| |
| |_| | |_| || | / /_   \ V / | |___
 \__\_\\___/|___/____|   \_/  |_____|`

const titleCompact = "Q · U · I · Z · V · L"

// contentWidth returns the width shared by the home sections.
func contentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 60)
}

func renderTitle(cw int, compact bool) string {
	art := titleFull
	if compact {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(art))
}

// renderStatsBar renders bank size, questions to review and completed
// sections in a bordered box.
func renderStatsBar(st stats, cw int) string {
	bank := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(fmt.Sprintf("%d QUESTIONS", st.bank))
	missed := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
		Render(fmt.Sprintf("%d TO REVIEW", st.missed))
	done := lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
		Render(fmt.Sprintf("%d/%d SECTIONS", st.completed, st.sections))

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(cw).
		Align(lipgloss.Center).
		Render(bank + "  " + missed + "  " + done)
}
