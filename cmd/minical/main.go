package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"cloudeng.io/logging/ctxlog"

	"github.com/lululau/minical/internal/calendar"
	"github.com/lululau/minical/internal/holidays"
	"github.com/lululau/minical/internal/render"
	"github.com/lululau/minical/internal/tui"
)

// logEnv names the file that receives JSON debug logs.
const logEnv = "MINICAL_LOG"

var (
	yearFlag       = flag.Bool("y", false, "显示全年日历")
	plain          = flag.Bool("n", false, "直接渲染并退出（非交互模式）")
	dateFlag       = flag.String("date", "", "以指定日期 (YYYY-MM-DD) 作为受控初始值")
	holidaysFile   = flag.String("holidays-file", "", "指定节假日数据文件路径")
	lunar          = flag.Bool("lunar", false, "显示农历与节气")
	noColor        = flag.Bool("N", false, "禁用所有颜色输出")
	noColorLong    = flag.Bool("no-color", false, "禁用所有颜色输出")
	printSelection = flag.Bool("print", false, "退出时打印所选日期")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "用法: %s [选项] [year] [month]\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), `
  无参数      展示当前月份
  -y          展示当前年份
  9           展示当年9月份
  1983        展示1983年
  2012 12     展示2012年12月
  -date 2024-05-04   以指定日期打开并高亮

交互模式下按 enter 选择日期，q 退出；配合 -print 输出所选日期。
设置 %s=<文件> 可记录调试日志。

选项:
`, logEnv)
		flag.PrintDefaults()
	}
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, closeLog := setupLogging(ctx)
	defer closeLog()

	if err := run(ctx); err != nil {
		ctxlog.Logger(ctx).Error("minical failed", "error", err)
		fmt.Fprintln(os.Stderr, "错误:", err)
		closeLog()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	opts := options{
		Year:         *yearFlag,
		Plain:        *plain,
		Date:         *dateFlag,
		HolidaysFile: *holidaysFile,
		Lunar:        *lunar,
		NoColor:      *noColor || *noColorLong,
		Print:        *printSelection,
		Args:         flag.Args(),
	}
	req, err := opts.parse(time.Now())
	if err != nil {
		return err
	}
	logger := ctxlog.Logger(ctx)
	logger.Info("request", "date", req.Date.String(), "year", req.Year, "controlled", req.Controlled)

	if opts.NoColor || (req.Plain && !render.IsTerminal()) {
		render.SetNoColor(true)
	}

	holidayData, loadFailed := loadHolidays(ctx, opts.HolidaysFile)
	svcOpts := []calendar.Option{calendar.WithLunar(opts.Lunar)}
	if holidayData != nil {
		svcOpts = append(svcOpts, calendar.WithHolidays(holidayData))
	}
	service := calendar.NewService(svcOpts...)

	if req.Plain {
		return render.RunPlain(render.PlainOptions{
			Service:           service,
			Date:              req.Date,
			Year:              req.Year,
			HolidayLoadFailed: loadFailed,
		})
	}

	tuiOpts := tui.Options{
		Service:           service,
		HolidayLoadFailed: loadFailed,
	}
	if req.Controlled {
		value := req.Date
		tuiOpts.Value = &value
	} else {
		tuiOpts.Initial = req.Date
	}
	res, err := tui.Run(ctx, tuiOpts)
	if err != nil {
		return err
	}
	if opts.Print && res.Picked {
		fmt.Println(res.Date.String())
	}
	return nil
}

// loadHolidays reads the holiday file named on the command line or, when
// none is given, a file the user placed at holidays.GetCachePath. It reports
// failure only for an explicitly named file; holiday data is optional.
func loadHolidays(ctx context.Context, path string) (map[string]map[string]*holidays.HolidayEntry, bool) {
	logger := ctxlog.Logger(ctx)
	if path != "" {
		data, err := holidays.LoadFromFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "警告: 无法加载节假日文件 %s: %v\n", path, err)
			logger.Warn("holiday file", "path", path, "error", err)
			return nil, true
		}
		return data, false
	}
	return loadCachedHolidays(ctx, time.Now()), false
}

// loadCachedHolidays returns the cached holiday data when it is present and
// recent, or nil.
func loadCachedHolidays(ctx context.Context, now time.Time) map[string]map[string]*holidays.HolidayEntry {
	logger := ctxlog.Logger(ctx)
	cachePath, err := holidays.GetCachePath()
	if err != nil {
		logger.Debug("holiday cache path", "error", err)
		return nil
	}
	valid, err := holidays.IsCacheValid(cachePath, now)
	if err != nil || !valid {
		logger.Debug("holiday cache unavailable", "path", cachePath, "error", err)
		return nil
	}
	data, err := holidays.LoadFromCache()
	if err != nil {
		logger.Warn("holiday cache", "path", cachePath, "error", err)
		return nil
	}
	return data
}

// setupLogging attaches a JSON logger writing to $MINICAL_LOG, if set. The
// terminal belongs to the UI so nothing is logged there.
func setupLogging(ctx context.Context) (context.Context, func()) {
	path := os.Getenv(logEnv)
	if path == "" {
		return ctx, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "警告: 无法打开日志文件 %s: %v\n", path, err)
		return ctx, func() {}
	}
	ctx = ctxlog.NewJSONLogger(ctx, f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return ctx, func() { f.Close() }
}
