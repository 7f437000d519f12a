// internal/hwgrok/load.go
package hwgrok

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
)

// Parse decodes an hwgrok JSON document. Missing sections decode as empty.
func Parse(data []byte) (*Inventory, error) {
	var inv Inventory
	if err := json.Unmarshal(data, &inv); err != nil {
		return nil, fmt.Errorf("parsing hardware inventory: %w", err)
	}
	return &inv, nil
}

// ParseJSONC decodes an annotated inventory: the JSON form with // and
// /* */ comments and trailing commas.
func ParseJSONC(data []byte) (*Inventory, error) {
	return Parse(jsonc.ToJSON(data))
}

// Load reads an hwgrok snapshot from path. An empty path means no
// inventory was supplied and yields an empty one. Files named *.jsonc are
// read with ParseJSONC, everything else must be plain JSON.
func Load(path string) (*Inventory, error) {
	if path == "" {
		return &Inventory{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading hardware inventory: %w", err)
	}

	parse := Parse
	if strings.EqualFold(filepath.Ext(path), ".jsonc") {
		parse = ParseJSONC
	}

	inv, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return inv, nil
}

// Duplicates returns device paths that appear more than once among the PCI
// devices or among the drive-bay disks. Lookup uses the first occurrence.
// Entries without a device path are never matched and are ignored here.
func (inv *Inventory) Duplicates() []string {
	var dups []string

	seen := make(map[string]int)
	for _, dev := range inv.PCIDevices {
		if dev.DevicePath == "" {
			continue
		}
		seen[dev.DevicePath]++
		if seen[dev.DevicePath] == 2 {
			dups = append(dups, dev.DevicePath)
		}
	}

	seen = make(map[string]int)
	for _, bay := range inv.DriveBays {
		if bay.Disk == nil || bay.Disk.DevicePath == "" {
			continue
		}
		seen[bay.Disk.DevicePath]++
		if seen[bay.Disk.DevicePath] == 2 {
			dups = append(dups, bay.Disk.DevicePath)
		}
	}

	return dups
}
