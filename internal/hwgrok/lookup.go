// internal/hwgrok/lookup.go
package hwgrok

import "strings"

// DiskInfo describes the disk found at a device path
type DiskInfo struct {
	Location         string `json:"location" yaml:"location"`
	Manufacturer     string `json:"manufacturer" yaml:"manufacturer"`
	Model            string `json:"model" yaml:"model"`
	SerialNumber     string `json:"serial_number" yaml:"serial_number"`
	FirmwareRevision string `json:"firmware_revision" yaml:"firmware_revision"`
}

// PCIInfo describes the PCI function found at a device path
type PCIInfo struct {
	VendorName    string `json:"vendor_name" yaml:"vendor_name"`
	DeviceName    string `json:"device_name" yaml:"device_name"`
	SubsystemName string `json:"subsystem_name" yaml:"subsystem_name"`
}

// Enrichment is what the inventory knows about a device. Exactly one of
// Disk and PCI is set.
type Enrichment struct {
	Disk *DiskInfo `json:"disk,omitempty" yaml:"disk,omitempty"`
	PCI  *PCIInfo  `json:"pci,omitempty" yaml:"pci,omitempty"`
}

// Field is one label/value line of an enrichment
type Field struct {
	Label string
	Value string
}

// Fields lists the enrichment in report order
func (e *Enrichment) Fields() []Field {
	switch {
	case e == nil:
		return nil
	case e.Disk != nil:
		return []Field{
			{"Disk Location:", e.Disk.Location},
			{"Disk Manufacturer:", e.Disk.Manufacturer},
			{"Disk Model:", e.Disk.Model},
			{"Disk Serial:", e.Disk.SerialNumber},
			{"Firmware Rev:", e.Disk.FirmwareRevision},
		}
	case e.PCI != nil:
		return []Field{
			{"Vendor Name:", e.PCI.VendorName},
			{"Device Name:", e.PCI.DeviceName},
			{"Subsystem Name:", e.PCI.SubsystemName},
		}
	}
	return nil
}

// Category is the kind of inventory lookup a device path calls for
type Category int

const (
	CategoryNone Category = iota
	CategoryDisk
	CategoryPCI
)

// Categorize picks the lookup strategy from the shape of a device path
func Categorize(devicePath string) Category {
	if !strings.HasPrefix(devicePath, "/pci") {
		return CategoryNone
	}
	if strings.Contains(devicePath, "disk") {
		return CategoryDisk
	}
	return CategoryPCI
}

// Lookup returns enrichment for devicePath, or nil when the path is not a
// PCI path or nothing in the inventory matches. A nil inventory behaves
// like an empty one. The first matching entry wins.
func (inv *Inventory) Lookup(devicePath string) *Enrichment {
	if inv == nil {
		return nil
	}

	switch Categorize(devicePath) {
	case CategoryDisk:
		for _, bay := range inv.DriveBays {
			if bay.Disk == nil || bay.Disk.DevicePath != devicePath {
				continue
			}
			return &Enrichment{Disk: &DiskInfo{
				Location:         bay.Label,
				Manufacturer:     bay.Disk.Manufacturer,
				Model:            bay.Disk.Model,
				SerialNumber:     bay.Disk.SerialNumber,
				FirmwareRevision: bay.Disk.FirmwareRevision,
			}}
		}
	case CategoryPCI:
		for _, dev := range inv.PCIDevices {
			if dev.DevicePath != devicePath {
				continue
			}
			return &Enrichment{PCI: &PCIInfo{
				VendorName:    dev.VendorName,
				DeviceName:    dev.DeviceName,
				SubsystemName: dev.SubsystemName,
			}}
		}
	}
	return nil
}
