// Package ui renders conversion results for people: a static labelled report
// and a live Bubble Tea view.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CozmicSnipez/aoe-4414-a04-q19/internal/astro"
)

// Styles shared by the report and the live view
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Width(14)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("60"))

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9D4EDD")).
			Bold(true)
)

// RenderSummary renders a labelled report of one conversion. Colour is
// dropped by lipgloss when the output is not a terminal.
func RenderSummary(res astro.Result) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("ECEF → ECI"))
	b.WriteString(dimStyle.Render("  simplified GST rotation"))
	b.WriteString("\n\n")
	b.WriteString(renderRows(res))
	return b.String()
}

func renderRows(res astro.Result) string {
	gmstSec := astro.MeanSiderealSeconds(res.JD)

	rows := [][2]string{
		{"Epoch (UTC)", res.Time.String()},
		{"Julian Date", fmt.Sprintf("%.6f", res.JD)},
		{"GST", fmt.Sprintf("%.9f rad  %.4f°", res.GST, astro.RadToDeg(res.GST))},
		{"GMST", astro.FormatHMS(gmstSec)},
		{"ECEF (km)", formatVec(res.ECEF)},
		{"ECI (km)", formatVec(res.ECI)},
		{"|r| (km)", fmt.Sprintf("%.6f", res.ECI.Norm())},
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(labelStyle.Render(row[0]))
		b.WriteString(valueStyle.Render(row[1]))
		b.WriteString("\n")
	}
	return b.String()
}

func formatVec(v astro.Vec3) string {
	return fmt.Sprintf("x %.6f  y %.6f  z %.6f", v.X, v.Y, v.Z)
}
