package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

var (
	mu sync.Mutex
	fh *os.File
)

// Open starts appending log lines to filename. Until Open succeeds, Log is a
// no-op.
func Open(filename string) error {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("error opening file: %w", err)
	}
	mu.Lock()
	defer mu.Unlock()
	if fh != nil {
		fh.Close()
	}
	fh = f
	return nil
}

func Log(msg string) {
	timeStr := time.Now().Format("2006-01-02 15:04:05.000")
	_, fullPath, line, ok := runtime.Caller(1)
	if ok {
		LogRaw(fmt.Sprintf("%s %s:%d %s", timeStr, filepath.Base(fullPath), line, msg))
		return
	}
	LogRaw(timeStr + " " + msg)
}

func Logf(format string, args ...any) {
	timeStr := time.Now().Format("2006-01-02 15:04:05.000")
	_, fullPath, line, ok := runtime.Caller(1)
	msg := fmt.Sprintf(format, args...)
	if ok {
		LogRaw(fmt.Sprintf("%s %s:%d %s", timeStr, filepath.Base(fullPath), line, msg))
		return
	}
	LogRaw(timeStr + " " + msg)
}

func LogRaw(msg string) {
	mu.Lock()
	defer mu.Unlock()
	if fh == nil {
		return
	}
	fh.WriteString(msg + "\n")
}

func Close() {
	mu.Lock()
	defer mu.Unlock()
	if fh == nil {
		return
	}
	fh.Sync()
	fh.Close()
	fh = nil
}
