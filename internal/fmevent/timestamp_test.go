// internal/fmevent/timestamp_test.go
package fmevent

import (
	"errors"
	"math"
	"testing"
)

func TestDayBucket(t *testing.T) {
	tests := []struct {
		secs int64
		want string
	}{
		{0, "1970-01-01"},
		{-1, "1969-12-31"},
		{1546300800, "2019-01-01"},
		{1546387199, "2019-01-01"},
		{1546387200, "2019-01-02"},
		{1582934400, "2020-02-29"},
	}

	for _, tt := range tests {
		got, err := DayBucket(tt.secs)
		if err != nil {
			t.Errorf("DayBucket(%d) error: %v", tt.secs, err)
			continue
		}
		if got != tt.want {
			t.Errorf("DayBucket(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

func TestDayBucketOutOfRange(t *testing.T) {
	for _, secs := range []int64{math.MaxInt64, math.MinInt64, maxEpoch + 1, minEpoch - 1} {
		if _, err := DayBucket(secs); !errors.Is(err, ErrTimestampRange) {
			t.Errorf("DayBucket(%d) error = %v, want ErrTimestampRange", secs, err)
		}
	}
}
