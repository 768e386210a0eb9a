package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lululau/minical/internal/calendar"
	"github.com/lululau/minical/internal/textwidth"
)

const (
	cellPadding = 1
	blockGap    = 3
)

var (
	noColorMode bool // Global flag to disable all color output
)

// SetNoColor sets the global no-color flag
func SetNoColor(disable bool) {
	noColorMode = disable
}

// NoColor reports whether colour output is disabled.
func NoColor() bool {
	return noColorMode
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FEC260"))
	controlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A5B4FC"))
	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#475569"))
	cellStyle     = lipgloss.NewStyle().Padding(0, cellPadding).Align(lipgloss.Center)
	fillerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	todayStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#34D399"))
	holidayStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6"))
	workdayStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316"))
	selectedStyle = lipgloss.NewStyle().Reverse(true).Bold(true)
	focusStyle    = lipgloss.NewStyle().Underline(true)
	legendStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// Options tweaks how a month is drawn.
type Options struct {
	// Controls draws the previous/next markers around the title.
	Controls bool
	// Focus underlines the given day of the displayed month; 0 disables it.
	Focus int
}

// MonthBlock packages rendered lines with their visual width/height.
type MonthBlock struct {
	Lines  []string
	Width  int
	Height int
}

// BuildBlocks converts month views into renderable blocks.
func BuildBlocks(views []calendar.MonthView, opts Options) []MonthBlock {
	blocks := make([]MonthBlock, len(views))
	for i, view := range views {
		blocks[i] = buildMonthBlock(view, opts)
	}
	return blocks
}

// Layout packs blocks left to right while they fit in width columns and
// wraps onto new rows separated by a blank line.
func Layout(blocks []MonthBlock, width int) string {
	if len(blocks) == 0 {
		return ""
	}
	colWidth := 0
	for _, b := range blocks {
		colWidth = max(colWidth, b.Width)
	}
	perRow := max(1, (width+blockGap)/(colWidth+blockGap))

	var rows []string
	for start := 0; start < len(blocks); start += perRow {
		group := blocks[start:min(start+perRow, len(blocks))]
		rows = append(rows, joinBlocks(group, colWidth))
	}
	return strings.Join(rows, "\n\n")
}

func joinBlocks(group []MonthBlock, colWidth int) string {
	height := 0
	for _, b := range group {
		height = max(height, b.Height)
	}
	gap := strings.Repeat(" ", blockGap)
	lines := make([]string, height)
	for i := range lines {
		parts := make([]string, len(group))
		for j, b := range group {
			line := ""
			if i < len(b.Lines) {
				line = b.Lines[i]
			}
			parts[j] = textwidth.PadRight(line, colWidth)
		}
		lines[i] = strings.TrimRight(strings.Join(parts, gap), " ")
	}
	return strings.Join(lines, "\n")
}

func buildMonthBlock(view calendar.MonthView, opts Options) MonthBlock {
	withLabels := hasLabels(view)
	rows := make([][]string, len(view.Weeks))
	for i, week := range view.Weeks {
		row := make([]string, len(week))
		for j, cell := range week {
			row[j] = cellContent(cell, withLabels)
		}
		rows[i] = row
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(calendar.WeekdayNames[:]...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCellStyle()
			}
			if row < 0 || row >= len(view.Weeks) || col >= len(view.Weeks[row]) {
				return cellStyle
			}
			return styleFor(view.Weeks[row][col], opts.Focus)
		})
	if !noColorMode {
		t = t.BorderStyle(borderStyle)
	}
	grid := strings.TrimRight(t.String(), "\n")
	gridLines := strings.Split(grid, "\n")

	gridWidth := textwidth.StringWidth(grid)
	lines := append([]string{centre(header(view, opts), gridWidth)}, gridLines...)

	width := 0
	for _, line := range lines {
		width = max(width, textwidth.StringWidth(line))
	}
	return MonthBlock{
		Lines:  lines,
		Width:  width,
		Height: len(lines),
	}
}

func header(view calendar.MonthView, opts Options) string {
	title := view.Title
	if !noColorMode {
		title = titleStyle.Render(title)
	}
	if !opts.Controls {
		return title
	}
	prev, next := "<", ">"
	if !noColorMode {
		prev, next = controlStyle.Render(prev), controlStyle.Render(next)
	}
	return prev + "  " + title + "  " + next
}

func centre(s string, width int) string {
	pad := (width - textwidth.StringWidth(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

func hasLabels(view calendar.MonthView) bool {
	for _, week := range view.Weeks {
		for _, cell := range week {
			if cell.Label != "" {
				return true
			}
		}
	}
	return false
}

func cellContent(cell calendar.Cell, withLabels bool) string {
	day := fmt.Sprintf("%2d", cell.Day)
	if noColorMode && cell.Selected {
		day = "[" + strings.TrimSpace(day) + "]"
	}
	if !withLabels {
		return day
	}
	return day + "\n" + cell.Label
}

func headerCellStyle() lipgloss.Style {
	if noColorMode {
		return cellStyle
	}
	return cellStyle.Inherit(headerStyle)
}

// styleFor maps a cell's classification to a style. Properties set first
// win, so selection is applied before colours and holiday colours before
// today's green.
func styleFor(cell calendar.Cell, focus int) lipgloss.Style {
	if noColorMode {
		return cellStyle
	}
	style := cellStyle
	if cell.InMonth() && focus > 0 && cell.Day == focus {
		style = style.Inherit(focusStyle)
	}
	for _, class := range cell.Classes() {
		switch class {
		case "selected":
			style = style.Inherit(selectedStyle)
		case "filler":
			style = style.Inherit(fillerStyle)
		}
	}
	if cell.InMonth() {
		switch {
		case cell.Holiday != nil && cell.Holiday.IsHoliday:
			style = style.Inherit(holidayStyle)
		case cell.Holiday != nil:
			style = style.Inherit(workdayStyle)
		case cell.IsToday:
			style = style.Inherit(todayStyle)
		}
	}
	return style
}

// ColorLegend returns a legend explaining the color coding for holidays.
func ColorLegend() string {
	legend := "蓝色=节假日  橙色=调休日"
	if noColorMode {
		return legend
	}
	return legendStyle.Render(legend)
}
