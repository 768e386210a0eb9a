// Package tui hosts the calendar widget in an interactive Bubble Tea
// program. The program plays the part of the widget's host: it may own an
// external value that the widget mirrors, and it receives the widget's
// change notifications when the user picks a day.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/logging/ctxlog"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lululau/minical/internal/calendar"
	"github.com/lululau/minical/internal/render"
	"github.com/lululau/minical/internal/widget"
)

var (
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316"))
	pickedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#34D399"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

type inputMode int

const (
	inputNone inputMode = iota
	inputYear
	inputMonth
	inputDate
)

// Options configures the interactive program.
type Options struct {
	Service *calendar.Service
	// Value, when set, is the host-owned date the widget mirrors. When nil
	// the widget is uncontrolled.
	Value *calendar.Date
	// Initial is the starting date of an uncontrolled widget; the zero
	// value means today.
	Initial calendar.Date
	// HolidayLoadFailed adds a warning under the calendar.
	HolidayLoadFailed bool
}

// Result reports the outcome of an interactive session.
type Result struct {
	Date   calendar.Date
	Picked bool
}

// Run starts the interactive Bubble Tea UI and returns the last date the
// user picked, if any.
func Run(ctx context.Context, opts Options) (Result, error) {
	m := newModel(ctx, opts)
	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := prog.Run()
	if err != nil {
		return Result{}, err
	}
	fm, ok := final.(*model)
	if !ok || fm.picked == nil {
		return Result{}, nil
	}
	return Result{Date: *fm.picked, Picked: true}, nil
}

type model struct {
	logger            *slog.Logger
	svc               *calendar.Service
	widget            *widget.Widget
	value             *calendar.Date
	picked            *calendar.Date
	lastRef           calendar.Date
	focus             int
	keys              keyMap
	help              help.Model
	width             int
	inputMode         inputMode
	input             textinput.Model
	statusMsg         string
	holidayLoadFailed bool
}

func newModel(ctx context.Context, opts Options) *model {
	svc := opts.Service
	if svc == nil {
		svc = calendar.NewService()
	}
	ti := textinput.New()
	ti.Placeholder = "数字"
	ti.CharLimit = 16
	ti.Prompt = "> "

	m := &model{
		logger:            ctxlog.Logger(ctx).With("component", "tui"),
		svc:               svc,
		value:             opts.Value,
		keys:              defaultKeyMap(),
		help:              help.New(),
		input:             ti,
		holidayLoadFailed: opts.HolidayLoadFailed,
	}
	today := svc.Now()
	m.widget = widget.New(
		widget.WithNow(func() time.Time { return today.Time() }),
		widget.WithOnChange(m.onChange),
	)
	if m.value == nil && !opts.Initial.IsZero() {
		m.widget.SetDate(opts.Initial)
	}
	m.reconcile()
	return m
}

// onChange is the host side of the widget's change callback. A controlled
// host adopts the picked date as its new value.
func (m *model) onChange(d calendar.Date) {
	m.picked = &d
	if m.value != nil {
		m.value = &d
	}
	m.logger.Info("day selected", "date", d.String(), "mode", m.widget.Mode().String())
}

// reconcile hands the host value to the widget, as a render would, and
// moves the focus when the reference date changed underneath it.
func (m *model) reconcile() {
	m.widget.Observe(m.value)
	ref := m.widget.GetDate()
	if ref != m.lastRef {
		m.lastRef = ref
		m.focus = ref.Day
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case tea.KeyMsg:
		if m.inputMode != inputNone {
			cmd = m.handleInputKey(msg)
			break
		}
		cmd = m.handleKey(msg)
	}
	m.reconcile()
	return m, cmd
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	ref := m.widget.GetDate()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.PrevMonth):
		m.widget.PreviousMonth()
	case key.Matches(msg, m.keys.NextMonth):
		m.widget.NextMonth()
	case key.Matches(msg, m.keys.PrevYear):
		m.widget.PreviousYear()
	case key.Matches(msg, m.keys.NextYear):
		m.widget.NextYear()
	case key.Matches(msg, m.keys.Left):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-7)
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(7)
	case key.Matches(msg, m.keys.Select):
		if _, ok := m.widget.SelectDay(m.focus); !ok {
			m.statusMsg = fmt.Sprintf("无效的日期: %d", m.focus)
			return nil
		}
	case key.Matches(msg, m.keys.Today):
		var h widget.Handle = m.widget
		h.SetDate(m.svc.Now())
	case key.Matches(msg, m.keys.Year):
		m.activateInput(inputYear, strconv.Itoa(ref.Year))
		return textinput.Blink
	case key.Matches(msg, m.keys.Month):
		m.activateInput(inputMonth, strconv.Itoa(int(ref.Month)))
		return textinput.Blink
	case key.Matches(msg, m.keys.Goto):
		m.activateInput(inputDate, "YYYY-MM-DD")
		return textinput.Blink
	default:
		return nil
	}
	m.statusMsg = ""
	if next := m.widget.GetDate(); !next.SameMonth(ref) {
		m.logger.Debug("month changed", "from", ref.String(), "to", next.String())
	}
	return nil
}

func (m *model) moveFocus(delta int) {
	ref := m.widget.GetDate()
	days := calendar.DaysInMonth(ref.Year, ref.Month)
	m.focus = min(max(m.focus+delta, 1), days)
}

func (m *model) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeInput()
		m.statusMsg = ""
		return nil
	case tea.KeyEnter:
		m.applyInput()
		return nil
	case tea.KeyCtrlC:
		return tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *model) activateInput(mode inputMode, placeholder string) {
	m.inputMode = mode
	m.input.SetValue("")
	m.input.Placeholder = placeholder
	m.input.CursorEnd()
	m.input.Focus()
	m.statusMsg = ""
}

func (m *model) closeInput() {
	m.inputMode = inputNone
	m.input.Blur()
}

// applyInput commits the prompt. Year and month prompts drive the widget
// through its handle; the date prompt replaces the host's own value.
func (m *model) applyInput() {
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		m.statusMsg = "请输入内容"
		return
	}
	var h widget.Handle = m.widget
	ref := h.GetDate()
	switch m.inputMode {
	case inputYear:
		year, err := strconv.Atoi(value)
		if err != nil || year < 1 {
			m.statusMsg = "无效的年份"
			return
		}
		h.SetDate(calendar.NewDate(year, ref.Month, 1))
	case inputMonth:
		month, err := strconv.Atoi(value)
		if err != nil || month < 1 || month > 12 {
			m.statusMsg = "月份需在 1-12 之间"
			return
		}
		h.SetDate(calendar.NewDate(ref.Year, time.Month(month), 1))
	case inputDate:
		d, err := calendar.ParseDate(value)
		if err != nil {
			m.statusMsg = err.Error()
			return
		}
		m.value = &d
		m.logger.Info("host value replaced", "date", d.String())
	}
	m.statusMsg = ""
	m.closeInput()
}

func (m *model) View() string {
	if m.inputMode != inputNone {
		return m.inputView()
	}

	view := m.widget.View(m.svc)
	blocks := render.BuildBlocks([]calendar.MonthView{view}, render.Options{
		Controls: true,
		Focus:    m.focus,
	})
	width := m.width
	if width <= 0 {
		width = 100
	}

	sb := strings.Builder{}
	sb.WriteString(render.Layout(blocks, width))
	sb.WriteString("\n\n")
	if m.picked != nil {
		sb.WriteString(m.style(pickedStyle, "已选择: "+m.picked.String()))
		sb.WriteString("\n")
	}
	sb.WriteString(m.help.View(m.keys))
	if m.statusMsg != "" {
		sb.WriteString("\n")
		sb.WriteString(m.style(statusStyle, m.statusMsg))
	}
	if m.svc.HasHolidayData() {
		sb.WriteString("\n")
		sb.WriteString(render.ColorLegend())
	}
	if m.holidayLoadFailed {
		sb.WriteString("\n\n")
		sb.WriteString(m.style(warningStyle, render.HolidayLoadFailedNotice))
	}
	return sb.String()
}

func (m *model) style(s lipgloss.Style, text string) string {
	if render.NoColor() {
		return text
	}
	return s.Render(text)
}

func (m *model) inputView() string {
	var label string
	switch m.inputMode {
	case inputYear:
		label = "输入年份 (回车确认 / Esc 取消)"
	case inputMonth:
		label = "输入月份 1-12 (回车确认 / Esc 取消)"
	case inputDate:
		label = "输入日期 YYYY-MM-DD (回车确认 / Esc 取消)"
	default:
		return ""
	}
	if !render.NoColor() {
		label = lipgloss.NewStyle().Bold(true).Render(label)
	}
	s := label + "\n\n" + m.input.View()
	if m.statusMsg != "" {
		s += "\n\n" + m.style(statusStyle, m.statusMsg)
	}
	return s
}
