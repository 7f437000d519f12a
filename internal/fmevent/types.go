// internal/fmevent/types.go
package fmevent

// Event is the minimal view of a log record, decoded first so that the
// class can be checked before paying for a full ereport decode.
type Event struct {
	Class *string `json:"class"` // nil when the member is absent
}

// Detector names the component that raised an ereport
type Detector struct {
	Scheme     string  `json:"scheme"`
	DevicePath *string `json:"device-path,omitempty"`
}

// Ereport is a hardware fault telemetry event
type Ereport struct {
	Class     string    `json:"class"`
	Detector  *Detector `json:"detector"`
	TimeOfDay []int64   `json:"__tod"` // [0] is Unix epoch seconds
}

// DevicePath returns the detector device path, if the ereport carries one
func (e *Ereport) DevicePath() (string, bool) {
	if e.Detector == nil || e.Detector.DevicePath == nil {
		return "", false
	}
	return *e.Detector.DevicePath, true
}

// Time returns the authoritative event time in epoch seconds
func (e *Ereport) Time() (int64, error) {
	if len(e.TimeOfDay) == 0 {
		return 0, ErrMissingTimeOfDay
	}
	return e.TimeOfDay[0], nil
}
