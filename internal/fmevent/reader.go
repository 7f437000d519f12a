// internal/fmevent/reader.go
package fmevent

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signalnine/fmareport/internal/logger"
)

var (
	// ErrMissingTimeOfDay means an admitted ereport has an empty __tod
	ErrMissingTimeOfDay = errors.New("ereport has no time-of-day")
	// ErrMissingClass means an event line has no class member
	ErrMissingClass = errors.New("event has no class")
	// ErrMissingDetector means an ereport class that requires a detector has none
	ErrMissingDetector = errors.New("ereport has no detector")
	// ErrTimestampRange means the event time has no four-digit-year calendar day
	ErrTimestampRange = errors.New("timestamp out of range")
)

const (
	ereportPrefix = "ereport."

	// Up to 10MB per line; some ereports carry large payloads
	initialLineBuf = 1024 * 1024
	maxLineBuf     = 10 * 1024 * 1024
)

// These sub-namespaces carry no detector payload
var excludedPrefixes = []string{"ereport.fm.", "ereport.fs."}

// Admission is the outcome of the class filter
type Admission int

const (
	Admit Admission = iota
	SkipNotEreport
	SkipExcluded
)

// Classify applies the class prefix filter. It looks only at the class,
// so excluded events are never fully decoded.
func Classify(class string) Admission {
	if !strings.HasPrefix(class, ereportPrefix) {
		return SkipNotEreport
	}
	for _, p := range excludedPrefixes {
		if strings.HasPrefix(class, p) {
			return SkipExcluded
		}
	}
	return Admit
}

// LineError ties a fatal error to its 1-based line in the event log
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Stats counts what happened to each line of a log
type Stats struct {
	Lines        int `json:"lines" yaml:"lines"`
	Admitted     int `json:"admitted" yaml:"admitted"`
	NotEreport   int `json:"not_ereport" yaml:"not_ereport"`
	Excluded     int `json:"excluded" yaml:"excluded"`
	NoDevicePath int `json:"no_device_path" yaml:"no_device_path"`
}

// EreportFunc receives each admitted ereport with its device path
type EreportFunc func(devicePath string, e *Ereport) error

// ReadFile opens an event log and feeds it through ReadEreports
func ReadFile(path string, log *logger.Logger, fn EreportFunc) (*Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening event log: %w", err)
	}
	defer f.Close()

	return ReadEreports(f, log, fn)
}

// ReadEreports reads newline-delimited JSON events from r and calls fn for
// every ereport that passes admission. Malformed JSON, a line without a
// class, an ereport without a detector, and any error from fn stop the
// read. Ereports without a device path are logged and skipped.
func ReadEreports(r io.Reader, log *logger.Logger, fn EreportFunc) (*Stats, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialLineBuf), maxLineBuf)

	stats := &Stats{}
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		stats.Lines++

		var ev Event
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			return stats, &LineError{Line: lineNum, Err: err}
		}
		if ev.Class == nil {
			return stats, &LineError{Line: lineNum, Err: ErrMissingClass}
		}
		class := *ev.Class

		switch Classify(class) {
		case SkipNotEreport:
			stats.NotEreport++
			continue
		case SkipExcluded:
			stats.Excluded++
			continue
		}

		var ereport Ereport
		if err := json.Unmarshal([]byte(line), &ereport); err != nil {
			return stats, &LineError{Line: lineNum, Err: err}
		}
		if ereport.Detector == nil {
			return stats, &LineError{Line: lineNum, Err: fmt.Errorf("%w (%s)", ErrMissingDetector, class)}
		}

		devicePath, ok := ereport.DevicePath()
		if !ok {
			stats.NoDevicePath++
			log.Warnf("No device path - skipping (%s)", class)
			continue
		}

		if err := fn(devicePath, &ereport); err != nil {
			return stats, &LineError{Line: lineNum, Err: err}
		}
		stats.Admitted++
	}

	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("reading event log at line %d: %w", lineNum, err)
	}

	return stats, nil
}
