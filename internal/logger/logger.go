package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
)

var rootLogger *slog.Logger

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorWhite  = "\033[37m"
	colorGray   = "\033[90m"
)

func init() {
	var stderrLevel slog.Level
	debugEnabled, _ := strconv.ParseBool(os.Getenv("ISECT_DEBUG"))
	if debugEnabled {
		stderrLevel = slog.LevelDebug
	} else {
		stderrLevel = slog.LevelInfo
	}

	// Reports go to stdout, so logs go to stderr.
	var handler slog.Handler = &lineHandler{
		w:          os.Stderr,
		level:      stderrLevel,
		withColors: true,
	}

	// Optional plain-text file sink.
	if path := os.Getenv("ISECT_LOG"); path != "" {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			panic(err)
		}
		handler = &teeHandler{
			file: &lineHandler{
				w:          file,
				level:      slog.LevelDebug,
				withColors: false,
			},
			console: handler,
		}
	}

	rootLogger = slog.New(handler)
}

// GetLogger returns a logger with the given prefix for easier filtering
func GetLogger(prefix string) *slog.Logger {
	return rootLogger.With("module", prefix)
}

type lineHandler struct {
	w          io.Writer
	level      slog.Level
	attrs      []slog.Attr
	group      string
	withColors bool
}

func (h *lineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *lineHandler) Handle(_ context.Context, record slog.Record) error {
	var color string
	var levelStr string

	switch record.Level {
	case slog.LevelDebug:
		color = colorWhite
		levelStr = "DEBUG"
	case slog.LevelInfo:
		color = colorBlue
		levelStr = "INFO"
	case slog.LevelWarn:
		color = colorYellow
		levelStr = "WARNING"
	case slog.LevelError:
		color = colorRed
		levelStr = "ERROR"
	default:
		color = colorWhite
		levelStr = record.Level.String()
	}

	timeStr := record.Time.Format("15:04:05")

	var modulePrefix string
	var argsStr string
	hasOtherAttrs := false

	appendAttr := func(a slog.Attr) {
		if a.Key == "module" {
			modulePrefix = fmt.Sprintf("%v", a.Value)
			return
		}
		if !hasOtherAttrs {
			argsStr = " ("
			hasOtherAttrs = true
		} else {
			argsStr += ", "
		}
		argsStr += fmt.Sprintf("%s=%v", a.Key, a.Value)
	}

	for _, a := range h.attrs {
		appendAttr(a)
	}
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(a)
		return true
	})

	if hasOtherAttrs {
		argsStr += ")"
	}

	// Format: [module] <LEVEL>: <msg> (<args>) [HH:MM:SS]
	var prefix string
	if modulePrefix != "" {
		if h.withColors {
			prefix = fmt.Sprintf("%s[%s]%s ", colorGray, modulePrefix, colorReset)
		} else {
			prefix = fmt.Sprintf("[%s] ", modulePrefix)
		}
	}

	if h.withColors {
		_, err := fmt.Fprintf(h.w, "%s%s%s%s: %s%s [%s]\n",
			prefix,
			color, levelStr, colorReset,
			record.Message,
			argsStr,
			timeStr)
		return err
	}
	_, err := fmt.Fprintf(h.w, "%s%s: %s%s [%s]\n",
		prefix,
		levelStr,
		record.Message,
		argsStr,
		timeStr)
	return err
}

func (h *lineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	copy(newAttrs[len(h.attrs):], attrs)
	return &lineHandler{
		w:          h.w,
		level:      h.level,
		attrs:      newAttrs,
		group:      h.group,
		withColors: h.withColors,
	}
}

func (h *lineHandler) WithGroup(name string) slog.Handler {
	return &lineHandler{
		w:          h.w,
		level:      h.level,
		attrs:      h.attrs,
		group:      name,
		withColors: h.withColors,
	}
}

type teeHandler struct {
	file    slog.Handler
	console slog.Handler
}

func (th *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return th.file.Enabled(ctx, level) || th.console.Enabled(ctx, level)
}

func (th *teeHandler) Handle(ctx context.Context, record slog.Record) error {
	if th.file.Enabled(ctx, record.Level) {
		if err := th.file.Handle(ctx, record); err != nil {
			return err
		}
	}
	if th.console.Enabled(ctx, record.Level) {
		if err := th.console.Handle(ctx, record); err != nil {
			return err
		}
	}
	return nil
}

func (th *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &teeHandler{
		file:    th.file.WithAttrs(attrs),
		console: th.console.WithAttrs(attrs),
	}
}

func (th *teeHandler) WithGroup(name string) slog.Handler {
	return &teeHandler{
		file:    th.file.WithGroup(name),
		console: th.console.WithGroup(name),
	}
}
