package ui

import (
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CozmicSnipez/aoe-4414-a04-q19/internal/astro"
	"github.com/CozmicSnipez/aoe-4414-a04-q19/internal/logging"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestLive() LiveModel {
	return NewLiveModel(
		astro.CalendarTime{Year: 2024, Month: 1, Day: 1},
		astro.Vec3{X: 6378.137},
		logging.Discard(),
	)
}

func update(t *testing.T, m LiveModel, msg tea.Msg) LiveModel {
	t.Helper()
	next, _ := m.Update(msg)
	lm, ok := next.(LiveModel)
	if !ok {
		t.Fatalf("Update returned %T, want LiveModel", next)
	}
	return lm
}

func TestLiveModelInitialResult(t *testing.T) {
	m := newTestLive()
	want := astro.Convert(astro.CalendarTime{Year: 2024, Month: 1, Day: 1}, astro.Vec3{X: 6378.137})

	if got := m.Result(); got != want {
		t.Errorf("initial Result() = %+v, want %+v", got, want)
	}
	if m.Init() == nil {
		t.Error("Init() should schedule a tick")
	}
}

func TestLiveModelAdvancesWithTicks(t *testing.T) {
	m := newTestLive()
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	// First tick only anchors the wall clock.
	m = update(t, m, TickMsg(t0))
	if m.elapsed != 0 {
		t.Fatalf("elapsed after first tick = %v, want 0", m.elapsed)
	}

	m = update(t, m, TickMsg(t0.Add(90*time.Second)))
	if m.elapsed != 90 {
		t.Fatalf("elapsed = %v, want 90", m.elapsed)
	}

	res := m.Result()
	wantJD := 2460310.5 + 90.0/86400
	if math.Abs(res.JD-wantJD) > 1e-9 {
		t.Errorf("JD = %v, want %v", res.JD, wantJD)
	}
	if res.Time.Minute != 1 || math.Abs(res.Time.Second-30) > 1e-6 {
		t.Errorf("epoch = %v, want 2024-01-01T00:01:30", res.Time)
	}
	if math.Abs(res.ECI.Norm()-6378.137) > 1e-6 {
		t.Errorf("|ECI| = %v, want 6378.137", res.ECI.Norm())
	}
}

func TestLiveModelPauseAndRate(t *testing.T) {
	m := newTestLive()
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m = update(t, m, TickMsg(t0))

	m = update(t, m, keyMsg("+"))
	m = update(t, m, keyMsg("+"))
	if m.rate != 4 {
		t.Fatalf("rate = %v, want 4", m.rate)
	}

	m = update(t, m, TickMsg(t0.Add(10*time.Second)))
	if m.elapsed != 40 {
		t.Fatalf("elapsed = %v, want 40", m.elapsed)
	}

	m = update(t, m, keyMsg("p"))
	m = update(t, m, TickMsg(t0.Add(20*time.Second)))
	if m.elapsed != 40 {
		t.Errorf("paused elapsed = %v, want 40", m.elapsed)
	}
	if !strings.Contains(m.View(), "paused") {
		t.Error("View() should show paused state")
	}

	for i := 0; i < 5; i++ {
		m = update(t, m, keyMsg("-"))
	}
	if m.rate != minRate {
		t.Errorf("rate = %v, want clamp at %v", m.rate, minRate)
	}

	m = update(t, m, keyMsg("r"))
	if m.elapsed != 0 || m.rate != minRate {
		t.Errorf("after reset elapsed=%v rate=%v", m.elapsed, m.rate)
	}
}

func TestLiveModelRateClamp(t *testing.T) {
	m := newTestLive()
	for i := 0; i < 30; i++ {
		m = update(t, m, keyMsg("+"))
	}
	if m.rate != maxRate {
		t.Errorf("rate = %v, want clamp at %v", m.rate, maxRate)
	}
}

func TestLiveModelQuit(t *testing.T) {
	m := newTestLive()
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestLiveModelView(t *testing.T) {
	m := newTestLive()
	view := m.View()

	for _, want := range []string{"live", "Julian Date", "2460310.500000", "running", "[q] quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0s"},
		{59.9, "59s"},
		{90, "1m30s"},
		{3725, "1h2m5s"},
	}
	for _, tt := range tests {
		if got := formatElapsed(tt.seconds); got != tt.want {
			t.Errorf("formatElapsed(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
