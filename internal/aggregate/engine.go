// internal/aggregate/engine.go
package aggregate

import (
	"sort"

	"github.com/signalnine/fmareport/internal/fmevent"
	"github.com/signalnine/fmareport/internal/logger"
)

// DeviceMap holds one Device per distinct device path. Entries are only
// ever added.
type DeviceMap map[string]*Device

// Admit folds an ereport into the accumulator for devicePath. The only
// failure is an ereport whose time cannot be bucketed by day.
func (m DeviceMap) Admit(devicePath string, e *fmevent.Ereport) error {
	secs, err := e.Time()
	if err != nil {
		return err
	}
	day, err := fmevent.DayBucket(secs)
	if err != nil {
		return err
	}

	if d, ok := m[devicePath]; ok {
		d.add(e, day)
		return nil
	}
	m[devicePath] = newDevice(e, day)
	return nil
}

// Paths returns the device paths in lexical order
func (m DeviceMap) Paths() []string {
	paths := make([]string, 0, len(m))
	for p := range m {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Result is a completed aggregation run
type Result struct {
	Devices DeviceMap
	Stats   *fmevent.Stats
}

// AggregateFile reads the whole event log at path and aggregates it.
// On error no partial result is returned.
func AggregateFile(path string, log *logger.Logger) (*Result, error) {
	devices := make(DeviceMap)
	stats, err := fmevent.ReadFile(path, log, devices.Admit)
	if err != nil {
		return nil, err
	}

	log.Debugw("Event log aggregated",
		"path", path,
		"lines", stats.Lines,
		"admitted", stats.Admitted,
		"not_ereport", stats.NotEreport,
		"excluded", stats.Excluded,
		"no_device_path", stats.NoDevicePath,
		"devices", len(devices))

	return &Result{Devices: devices, Stats: stats}, nil
}
