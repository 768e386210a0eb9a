package main

import (
	"fmt"
	"strconv"
	"time"

	"cloudeng.io/errors"

	"github.com/lululau/minical/internal/calendar"
)

// options mirrors the command line.
type options struct {
	Year         bool
	Plain        bool
	Date         string
	HolidaysFile string
	Lunar        bool
	NoColor      bool
	Print        bool
	Args         []string
}

// request is the validated form of options.
type request struct {
	Date calendar.Date
	// Controlled is set when -date supplied an external value.
	Controlled bool
	Year       bool
	Plain      bool
}

// parse validates the options against each other and resolves the
// positional [year] [month] arguments. All problems are reported together.
func (o options) parse(now time.Time) (request, error) {
	errs := &errors.M{}
	today := calendar.FromTime(now)
	req := request{
		Date:  today,
		Year:  o.Year,
		Plain: o.Plain || o.Year,
	}

	if o.Date != "" {
		d, err := calendar.ParseDate(o.Date)
		errs.Append(err)
		req.Date = d
		req.Controlled = err == nil
		if len(o.Args) > 0 {
			errs.Append(errors.New("-date 不能与 year/month 参数同时使用"))
		}
	}
	if o.Print && req.Plain {
		errs.Append(errors.New("-print 仅在交互模式下可用"))
	}

	switch len(o.Args) {
	case 0:
	case 1:
		val, err := parseNumber(o.Args[0], "month/year")
		if err != nil {
			errs.Append(err)
			break
		}
		switch {
		case o.Year:
			req.Date = calendar.Date{Year: val, Month: time.January, Day: 1}
		case val >= 1 && val <= 12:
			req.Date = calendar.Date{Year: today.Year, Month: time.Month(val), Day: 1}
		default:
			req.Date = calendar.Date{Year: val, Month: time.January, Day: 1}
			req.Year = true
			req.Plain = true
		}
	case 2:
		if o.Year {
			errs.Append(errors.New("使用 -y 时最多只需要指定一个年份参数"))
		}
		y, err := parseNumber(o.Args[0], "year")
		errs.Append(err)
		m, err := parseNumber(o.Args[1], "month")
		errs.Append(err)
		if err == nil && (m < 1 || m > 12) {
			errs.Append(fmt.Errorf("月份需要在 1-12 之间 (收到 %d)", m))
		}
		req.Date = calendar.Date{Year: y, Month: time.Month(m), Day: 1}
	default:
		errs.Append(errors.New("参数过多，请参考 --help"))
	}

	if err := errs.Err(); err != nil {
		return request{}, err
	}
	if req.Date.SameMonth(today) && !req.Controlled {
		req.Date = today
	}
	return req, nil
}

func parseNumber(value string, field string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("无法将 %q 解析为 %s", value, field)
	}
	return n, nil
}
