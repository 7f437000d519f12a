// internal/report/document.go
package report

import (
	"github.com/signalnine/fmareport/internal/aggregate"
	"github.com/signalnine/fmareport/internal/fmevent"
	"github.com/signalnine/fmareport/internal/hwgrok"
)

// Document is a read-only snapshot of an aggregation run, with enrichment
// already resolved. Every output format renders from it.
type Document struct {
	Stats   *fmevent.Stats `json:"stats,omitempty" yaml:"stats,omitempty"`
	Devices []DeviceReport `json:"devices" yaml:"devices"`
}

// DeviceReport is the section for one device path
type DeviceReport struct {
	DevicePath string               `json:"device_path" yaml:"device_path"`
	Enrichment *hwgrok.Enrichment   `json:"enrichment,omitempty" yaml:"enrichment,omitempty"`
	Total      int                  `json:"total" yaml:"total"`
	Classes    []ClassCount         `json:"classes" yaml:"classes"`
	Days       []aggregate.DayCount `json:"days" yaml:"days"`
}

// ClassCount pairs an ereport class with its count
type ClassCount struct {
	Class string `json:"class" yaml:"class"`
	Count int    `json:"count" yaml:"count"`
}

// Build resolves every device against the inventory. inv may be nil.
func Build(res *aggregate.Result, inv *hwgrok.Inventory) *Document {
	doc := &Document{
		Stats:   res.Stats,
		Devices: make([]DeviceReport, 0, len(res.Devices)),
	}

	for _, path := range res.Devices.Paths() {
		dev := res.Devices[path]

		classes := make([]ClassCount, 0, len(dev.ClassCounts))
		for _, c := range dev.Classes() {
			classes = append(classes, ClassCount{Class: c, Count: dev.ClassCounts[c]})
		}

		doc.Devices = append(doc.Devices, DeviceReport{
			DevicePath: path,
			Enrichment: inv.Lookup(path),
			Total:      dev.Total(),
			Classes:    classes,
			Days:       dev.Days(),
		})
	}

	return doc
}
