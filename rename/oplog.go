package rename

import (
	"fmt"
	"io"
	"os"
	"time"
)

// OpLog is the append-only operation log for rename runs. Every line is
// timestamped and mirrored to console output, matching the log file format:
//
//	2026-01-02 15:04:05 | RENAMED: a.wav -> speaker1_001.wav
type OpLog struct {
	console io.Writer
	file    *os.File
}

// OpenLog opens (or creates) the append-only log file and tees every entry
// to console.
func OpenLog(path string, console io.Writer) (*OpLog, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log %s: %w", path, err)
	}
	return &OpLog{console: console, file: file}, nil
}

// Printf writes one timestamped log line.
func (l *OpLog) Printf(format string, args ...any) {
	line := fmt.Sprintf("%s | %s", time.Now().Format("2006-01-02 15:04:05"), fmt.Sprintf(format, args...))
	fmt.Fprintln(l.console, line)
	if l.file != nil {
		fmt.Fprintln(l.file, line)
	}
}

// Close releases the underlying log file.
func (l *OpLog) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
