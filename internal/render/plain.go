package render

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/lululau/minical/internal/calendar"
	"github.com/lululau/minical/internal/widget"
)

// PlainOptions controls how the non-interactive renderer behaves.
type PlainOptions struct {
	Writer  io.Writer
	Service *calendar.Service
	// Date is the reference date; the zero value means today.
	Date calendar.Date
	// Year renders all twelve months of Date's year.
	Year  bool
	Width int
	// HolidayLoadFailed reports that the holiday file named by the user
	// could not be read.
	HolidayLoadFailed bool
}

// RunPlain renders the requested view exactly once.
func RunPlain(opts PlainOptions) error {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	if opts.Service == nil {
		opts.Service = calendar.NewService()
	}
	if opts.Date.IsZero() {
		opts.Date = opts.Service.Now()
	}

	w := widget.New(widget.WithValue(opts.Date))
	views := []calendar.MonthView{w.View(opts.Service)}
	if opts.Year {
		views = opts.Service.Year(w.GetDate().Year, w.GetDate())
	}

	width := opts.Width
	if width == 0 {
		width = DetectWidth()
	}
	output := Layout(BuildBlocks(views, Options{}), width)
	if output == "" {
		return nil
	}
	if _, err := fmt.Fprintln(opts.Writer, output); err != nil {
		return err
	}

	if opts.Service.HasHolidayData() {
		if _, err := fmt.Fprintln(opts.Writer, "\n"+ColorLegend()); err != nil {
			return err
		}
	}
	if opts.HolidayLoadFailed {
		_, err := fmt.Fprintln(opts.Writer, "\n"+HolidayLoadFailedNotice)
		return err
	}
	return nil
}

// HolidayLoadFailedNotice is shown when the requested holiday file could
// not be loaded.
const HolidayLoadFailedNotice = "节假日数据加载失败，日历中未标注节假日，请检查 -holidays-file 指定的文件"

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// DetectWidth tries to determine the terminal width, falling back to 100 cols.
func DetectWidth() int {
	fd := os.Stdout.Fd()
	if isatty.IsTerminal(fd) {
		if w, _, err := term.GetSize(int(fd)); err == nil {
			return w
		}
	}
	return 100
}
