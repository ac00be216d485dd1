package hooks

import (
	"fmt"
	"path"
	"runtime"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Key the caller's location is stored under.
const FileLineKey = "file:line"

type contextHook struct {
}

func NewContextHook() contextHook {
	return contextHook{}
}

func (hook contextHook) Levels() []log.Level {
	return log.AllLevels
}

// Fire records the first frame outside logrus and this hook as "dir/file.go:line".
func (hook contextHook) Fire(entry *log.Entry) error {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !isLoggingFrame(frame.Function) {
			entry.Data[FileLineKey] = fmt.Sprintf("%s:%d", shortPath(frame.File), frame.Line)
			return nil
		}
		if !more {
			return nil
		}
	}
}

func isLoggingFrame(function string) bool {
	return strings.Contains(function, "github.com/sirupsen/logrus") ||
		strings.Contains(function, "hooks.contextHook.")
}

func shortPath(file string) string {
	dir, base := path.Split(file)
	return path.Join(path.Base(dir), base)
}
