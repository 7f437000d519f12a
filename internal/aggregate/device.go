// internal/aggregate/device.go
package aggregate

import (
	"sort"

	"github.com/signalnine/fmareport/internal/fmevent"
)

// Device accumulates the ereports seen for one device path.
//
// Every admitted ereport adds one to ClassCounts, one to DayCounts and one
// entry to History, so the three totals always agree. DayOrder lists the
// keys of DayCounts in the order they were first seen.
type Device struct {
	ClassCounts map[string]int
	DayCounts   map[string]int
	History     []*fmevent.Ereport
	DayOrder    []string
}

func newDevice(e *fmevent.Ereport, day string) *Device {
	return &Device{
		ClassCounts: map[string]int{e.Class: 1},
		DayCounts:   map[string]int{day: 1},
		History:     []*fmevent.Ereport{e},
		DayOrder:    []string{day},
	}
}

func (d *Device) add(e *fmevent.Ereport, day string) {
	d.ClassCounts[e.Class]++
	if _, seen := d.DayCounts[day]; !seen {
		d.DayOrder = append(d.DayOrder, day)
	}
	d.DayCounts[day]++
	d.History = append(d.History, e)
}

// Total is the number of ereports admitted for the device
func (d *Device) Total() int {
	return len(d.History)
}

// Classes returns the ereport classes in lexical order
func (d *Device) Classes() []string {
	classes := make([]string, 0, len(d.ClassCounts))
	for c := range d.ClassCounts {
		classes = append(classes, c)
	}
	sort.Strings(classes)
	return classes
}

// DayCount pairs a day bucket with its count
type DayCount struct {
	Day   string `json:"day" yaml:"day"`
	Count int    `json:"count" yaml:"count"`
}

// Days returns the day distribution in first-seen order
func (d *Device) Days() []DayCount {
	days := make([]DayCount, 0, len(d.DayOrder))
	for _, day := range d.DayOrder {
		days = append(days, DayCount{Day: day, Count: d.DayCounts[day]})
	}
	return days
}
