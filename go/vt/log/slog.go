/*
Copyright 2026 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/pflag"
)

var (
	logFormat string
	logLevel  string

	// output is where structured records are written.
	output io.Writer = os.Stderr

	// structured is set once Init or SetLogger installs a slog logger.
	// Until then every call goes to glog.
	structured atomic.Bool
)

var levels = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

var handlers = map[string]func(io.Writer, *slog.HandlerOptions) slog.Handler{
	"json": func(w io.Writer, opts *slog.HandlerOptions) slog.Handler {
		return slog.NewJSONHandler(w, opts)
	},
	"logfmt": func(w io.Writer, opts *slog.HandlerOptions) slog.Handler {
		return slog.NewTextHandler(w, opts)
	},
}

// Init switches logging to slog when --log-fmt was given. Otherwise glog
// stays in charge.
func Init(fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}
	if f := fs.Lookup("log-fmt"); f == nil || !f.Changed {
		return nil
	}

	logger, err := newLogger(logFormat, logLevel)
	if err != nil {
		return err
	}
	structured.Store(true)
	slog.SetDefault(logger)
	return nil
}

func newLogger(format, level string) (*slog.Logger, error) {
	lvl, ok := levels[normalize(level)]
	if !ok {
		return nil, fmt.Errorf("invalid log-level %q: expected one of %s", level, keys(levels))
	}
	newHandler, ok := handlers[normalize(format)]
	if !ok {
		return nil, fmt.Errorf("invalid log-fmt %q: expected one of %s", format, keys(handlers))
	}
	return slog.New(newHandler(output, &slog.HandlerOptions{AddSource: true, Level: lvl})), nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func keys[V any](m map[string]V) string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}

// logS emits a record at level. depth counts the frames between the
// exported helper and logS.
func logS(level slog.Level, depth int, msg string, args ...any) {
	if !structured.Load() {
		logGlog(level, depth, msg, args...)
		return
	}

	logger := slog.Default()
	ctx := context.Background()
	if !logger.Enabled(ctx, level) {
		return
	}

	// Skip runtime.Callers, logS and the exported helper.
	var pcs [1]uintptr
	runtime.Callers(depth+3, pcs[:])

	record := slog.NewRecord(time.Now(), level, msg, pcs[0])
	record.Add(args...)
	_ = logger.Handler().Handle(ctx, record)
}

// Enabled reports whether a record at level would be written. Under glog,
// debug records need -v=1 or higher.
func Enabled(level slog.Level) bool {
	if structured.Load() {
		return slog.Default().Enabled(context.Background(), level)
	}
	if level < slog.LevelInfo {
		return bool(glog.V(1))
	}
	return true
}

// logGlog prints a record through glog.
func logGlog(level slog.Level, depth int, msg string, args ...any) {
	line := glogLine(msg, args...)

	// Skip logGlog, logS and the exported helper.
	depth += 3
	switch {
	case level >= slog.LevelError:
		glog.ErrorDepth(depth, line)
	case level >= slog.LevelWarn:
		glog.WarningDepth(depth, line)
	default:
		glog.InfoDepth(depth, line)
	}
}

// glogLine renders msg and its attributes as "msg key=value ...".
func glogLine(msg string, args ...any) string {
	var b strings.Builder
	b.WriteString(msg)
	record := slog.NewRecord(time.Time{}, 0, msg, 0)
	record.Add(args...)
	record.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value)
		return true
	})
	return b.String()
}

// InfoS logs msg and its key/value pairs at the info level.
func InfoS(msg string, args ...any) {
	logS(slog.LevelInfo, 0, msg, args...)
}

// WarnS logs at the warn level.
func WarnS(msg string, args ...any) {
	logS(slog.LevelWarn, 0, msg, args...)
}

// DebugS logs at the debug level. Callers building costly attributes should
// check Enabled first.
func DebugS(msg string, args ...any) {
	logS(slog.LevelDebug, 0, msg, args...)
}

// ErrorS logs at the error level.
func ErrorS(msg string, args ...any) {
	logS(slog.LevelError, 0, msg, args...)
}

// SetLogger installs logger as the structured logger and returns a function
// restoring the previous one. Used in tests.
func SetLogger(logger *slog.Logger) func() {
	if logger == nil {
		return func() {}
	}

	prevStructured := structured.Load()
	prevDefault := slog.Default()
	slog.SetDefault(logger)
	structured.Store(true)

	return func() {
		slog.SetDefault(prevDefault)
		structured.Store(prevStructured)
	}
}
