// Package log is a thin leveled wrapper around the standard log package.
// Messages carry a "[level]" prefix; a filtering writer drops everything
// below the configured minimum level before it reaches the output.
package log

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"time"
)

type Level string

const (
	LDebug    = Level("debug")
	LProgress = Level("progress")
	LStep     = Level("step")
	LInfo     = Level("info")
	LWarn     = Level("warn")
	LError    = Level("error")
)

var levels = []Level{LDebug, LProgress, LStep, LInfo, LWarn, LError}

var DefaultLogger *log.Logger
var defaultFilter *levelFilter

func init() {
	defaultFilter = &levelFilter{
		start:  time.Now(),
		writer: os.Stderr,
	}
	defaultFilter.setMinLevel(LProgress)
	DefaultLogger = log.New(defaultFilter, "", 0)
}

type levelFilter struct {
	start    time.Time
	writer   io.Writer
	dropped  map[Level]struct{}
	minLevel Level
}

func (f *levelFilter) setMinLevel(min Level) {
	f.minLevel = min
	f.dropped = make(map[Level]struct{})
	for _, level := range levels {
		if level == min {
			break
		}
		f.dropped[level] = struct{}{}
	}
}

func (f *levelFilter) pass(line []byte) bool {
	open := bytes.IndexByte(line, '[')
	if open < 0 {
		return true
	}
	end := bytes.IndexByte(line[open:], ']')
	if end < 0 {
		return true
	}
	_, drop := f.dropped[Level(line[open+1:open+end])]
	return !drop
}

func (f *levelFilter) Write(p []byte) (int, error) {
	// the log package hands us single lines
	if !f.pass(p) {
		return 0, nil
	}
	b := bytes.Buffer{}
	elapsed := time.Since(f.start).Truncate(time.Second)
	fmt.Fprintf(&b, "[%s] %s ", time.Now().Format(time.RFC3339), elapsed)
	b.Write(p)
	return f.writer.Write(b.Bytes())
}

func SetMinLevel(min Level) {
	defaultFilter.setMinLevel(min)
}

func Println(v ...interface{}) {
	DefaultLogger.Println(v...)
}

func Printf(format string, v ...interface{}) {
	DefaultLogger.Printf(format, v...)
}

func Warn(v ...interface{}) {
	DefaultLogger.Println(append([]interface{}{"[warn]"}, v...)...)
}

func Warnf(format string, v ...interface{}) {
	DefaultLogger.Printf("[warn] "+format, v...)
}

func Errorf(format string, v ...interface{}) {
	DefaultLogger.Printf("[error] "+format, v...)
}

func Fatal(v ...interface{}) {
	DefaultLogger.Fatal(v...)
}

func Fatalf(format string, v ...interface{}) {
	DefaultLogger.Fatalf(format, v...)
}

// Step logs the start of a named processing step and returns a function
// that logs its duration when called.
func Step(name string) func() {
	start := time.Now()
	Println("[step] Starting:", name)
	return func() {
		Printf("[step] Finished: %s in %s", name, time.Since(start))
	}
}
