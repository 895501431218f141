package ui

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CozmicSnipez/aoe-4414-a04-q19/internal/astro"
)

const (
	tickInterval = 250 * time.Millisecond
	minRate      = 1.0
	maxRate      = 86400.0
)

// TickMsg advances the live clock.
type TickMsg time.Time

// LiveModel is a Bubble Tea model that re-runs the conversion for an epoch
// advancing in real time, scaled by a rate multiplier.
type LiveModel struct {
	logger *slog.Logger

	start   time.Time // start epoch, only used to label the display
	startJD float64
	ecef    astro.Vec3

	elapsed  float64 // simulated seconds since start
	rate     float64 // simulated seconds per wall-clock second
	paused   bool
	lastTick time.Time

	res astro.Result
}

// NewLiveModel creates a live view starting at ct for the Earth-fixed
// vector ecef.
func NewLiveModel(ct astro.CalendarTime, ecef astro.Vec3, logger *slog.Logger) LiveModel {
	whole, frac := math.Modf(ct.Second)
	start := time.Date(ct.Year, time.Month(ct.Month), ct.Day, ct.Hour, ct.Minute,
		int(whole), int(frac*1e9), time.UTC)

	m := LiveModel{
		logger:  logger,
		start:   start,
		startJD: astro.JulianDate(ct),
		ecef:    ecef,
		rate:    minRate,
	}
	m.res = astro.ConvertAt(m.startJD, ct, ecef)
	return m
}

// Init implements tea.Model.
func (m LiveModel) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ", "space", "p":
			m.paused = !m.paused
		case "+", "=":
			m.rate = math.Min(m.rate*2, maxRate)
		case "-", "_":
			m.rate = math.Max(m.rate/2, minRate)
		case "r":
			m.elapsed = 0
			m.rate = minRate
			m.recompute()
		}

	case TickMsg:
		now := time.Time(msg)
		if !m.paused && !m.lastTick.IsZero() {
			m.elapsed += now.Sub(m.lastTick).Seconds() * m.rate
		}
		m.lastTick = now
		m.recompute()
		return m, tickCmd()
	}

	return m, nil
}

func (m *LiveModel) recompute() {
	jd := m.startJD + m.elapsed/86400
	epoch := m.start.Add(time.Duration(m.elapsed * float64(time.Second)))
	m.res = astro.ConvertAt(jd, astro.FromTime(epoch), m.ecef)
	if m.logger != nil {
		m.logger.Debug("live tick", "jd", jd, "gst_rad", m.res.GST)
	}
}

// Result returns the most recent conversion.
func (m LiveModel) Result() astro.Result {
	return m.res
}

// View implements tea.Model.
func (m LiveModel) View() string {
	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(titleStyle.Render("ECEF → ECI"))
	b.WriteString(dimStyle.Render("  live"))
	b.WriteString("\n\n")

	for _, line := range strings.Split(strings.TrimRight(renderRows(m.res), "\n"), "\n") {
		b.WriteString("  " + line + "\n")
	}

	b.WriteString("\n  ")
	b.WriteString(m.renderStatus())
	b.WriteString("\n  ")
	b.WriteString(dimStyle.Render("[space] pause  [+/-] rate  [r] reset  [q] quit"))
	b.WriteString("\n")
	return b.String()
}

func (m LiveModel) renderStatus() string {
	state := "running"
	if m.paused {
		state = "paused"
	}
	return accentStyle.Render(fmt.Sprintf("%s ×%g", state, m.rate)) +
		dimStyle.Render(fmt.Sprintf("  +%s", formatElapsed(m.elapsed)))
}

func formatElapsed(seconds float64) string {
	return time.Duration(seconds * float64(time.Second)).Truncate(time.Second).String()
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
