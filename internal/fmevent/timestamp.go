// internal/fmevent/timestamp.go
package fmevent

import (
	"fmt"
	"time"
)

// DayFormat is the layout of a day bucket key
const DayFormat = "2006-01-02"

// Bounds of the representable day buckets (four-digit years)
var (
	minEpoch = time.Date(0, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
	maxEpoch = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC).Unix()
)

// DayBucket returns the UTC calendar day containing the given epoch seconds,
// formatted as YYYY-MM-DD.
func DayBucket(epochSecs int64) (string, error) {
	if epochSecs < minEpoch || epochSecs > maxEpoch {
		return "", fmt.Errorf("%w: %d", ErrTimestampRange, epochSecs)
	}
	return time.Unix(epochSecs, 0).UTC().Format(DayFormat), nil
}
