package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lululau/minical/internal/calendar"
	"github.com/lululau/minical/internal/render"
	"github.com/lululau/minical/internal/widget"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func fixedService() *calendar.Service {
	now := time.Date(2024, 5, 4, 9, 0, 0, 0, time.Local)
	return calendar.NewService(calendar.WithNow(func() time.Time { return now }))
}

func press(m *model, msgs ...tea.Msg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func TestControlledHostSelection(t *testing.T) {
	render.SetNoColor(true)
	defer render.SetNoColor(false)

	value := calendar.Date{Year: 2024, Month: time.May, Day: 4}
	m := newModel(context.Background(), Options{Service: fixedService(), Value: &value})
	if m.widget.Mode() != widget.Controlled {
		t.Fatalf("expected controlled widget")
	}
	if m.focus != 4 {
		t.Fatalf("focus should start on the reference day, got %d", m.focus)
	}

	press(m, runes("l"), runes("l"), tea.KeyMsg{Type: tea.KeyEnter})
	want := calendar.Date{Year: 2024, Month: time.May, Day: 6}
	if m.picked == nil || *m.picked != want {
		t.Fatalf("picked = %v, want %v", m.picked, want)
	}
	if *m.value != want || m.widget.GetDate() != want {
		t.Fatalf("host value %v and widget %v should both be %v", *m.value, m.widget.GetDate(), want)
	}
	if !strings.Contains(m.View(), "已选择: 2024-05-06") {
		t.Fatalf("view should show the picked date:\n%s", m.View())
	}

	press(m, runes("]"))
	if got := m.widget.GetDate(); got != (calendar.Date{Year: 2024, Month: time.June, Day: 1}) {
		t.Fatalf("next month = %v", got)
	}
	if !strings.Contains(m.View(), "2024年六月") {
		t.Fatalf("view should show June:\n%s", m.View())
	}
}

func TestGotoReplacesHostValue(t *testing.T) {
	value := calendar.Date{Year: 2024, Month: time.May, Day: 4}
	m := newModel(context.Background(), Options{Service: fixedService(), Value: &value})

	press(m, runes("g"))
	if m.inputMode != inputDate {
		t.Fatalf("expected date prompt")
	}
	press(m, runes("2030-01-09"), tea.KeyMsg{Type: tea.KeyEnter})
	want := calendar.Date{Year: 2030, Month: time.January, Day: 9}
	if m.inputMode != inputNone {
		t.Fatalf("prompt should close, status %q", m.statusMsg)
	}
	if m.widget.GetDate() != want || m.focus != 9 {
		t.Fatalf("widget = %v focus = %d, want %v", m.widget.GetDate(), m.focus, want)
	}
}

func TestGotoRejectsBadDate(t *testing.T) {
	m := newModel(context.Background(), Options{Service: fixedService()})
	press(m, runes("g"), runes("soon"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.inputMode != inputDate || m.statusMsg == "" {
		t.Fatalf("bad input should keep the prompt open with a status message")
	}
	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.inputMode != inputNone {
		t.Fatalf("esc should close the prompt")
	}
}

func TestUncontrolledNavigationAndHandle(t *testing.T) {
	m := newModel(context.Background(), Options{Service: fixedService()})
	if m.widget.Mode() != widget.Uncontrolled {
		t.Fatalf("expected uncontrolled widget")
	}
	if m.widget.GetDate() != (calendar.Date{Year: 2024, Month: time.May, Day: 4}) {
		t.Fatalf("widget should start on the service clock, got %v", m.widget.GetDate())
	}

	press(m, runes("{"), runes("["))
	if got := m.widget.GetDate(); got != (calendar.Date{Year: 2023, Month: time.April, Day: 1}) {
		t.Fatalf("after navigation = %v", got)
	}

	press(m, runes("y"), runes("1999"), tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.widget.GetDate(); got != (calendar.Date{Year: 1999, Month: time.April, Day: 1}) {
		t.Fatalf("after year prompt = %v", got)
	}
	press(m, runes("m"), runes("13"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.statusMsg == "" {
		t.Fatalf("month 13 should be rejected")
	}
	press(m, tea.KeyMsg{Type: tea.KeyEsc}, runes("m"), runes("12"), tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.widget.GetDate(); got != (calendar.Date{Year: 1999, Month: time.December, Day: 1}) {
		t.Fatalf("after month prompt = %v", got)
	}

	press(m, runes("."))
	if got := m.widget.GetDate(); got != (calendar.Date{Year: 2024, Month: time.May, Day: 4}) {
		t.Fatalf("today = %v", got)
	}
	if m.picked != nil {
		t.Fatalf("handle calls should not count as a pick")
	}

	press(m, runes("j"), runes("j"), runes("j"), runes("j"), runes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	want := calendar.Date{Year: 2024, Month: time.May, Day: 31}
	if m.picked == nil || *m.picked != want || m.widget.GetDate() != want {
		t.Fatalf("focus should clamp to the month end, picked %v widget %v", m.picked, m.widget.GetDate())
	}
}

func TestQuit(t *testing.T) {
	m := newModel(context.Background(), Options{Service: fixedService()})
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestHolidayWarning(t *testing.T) {
	m := newModel(context.Background(), Options{Service: fixedService()})
	if strings.Contains(m.View(), render.HolidayLoadFailedNotice) {
		t.Fatalf("default view should carry no holiday warning")
	}
	m = newModel(context.Background(), Options{Service: fixedService(), HolidayLoadFailed: true})
	if !strings.Contains(m.View(), render.HolidayLoadFailedNotice) {
		t.Fatalf("view should warn when the holiday file failed to load")
	}
}
