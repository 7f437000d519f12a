// internal/hwgrok/types.go
package hwgrok

// Inventory is the subset of an hwgrok snapshot used to enrich reports.
// The zero value is a valid empty inventory.
type Inventory struct {
	PCIDevices []PCIDevice `json:"pci-devices"`
	DriveBays  []DriveBay  `json:"drive-bays"`
}

// PCIDevice is one entry of pci-devices
type PCIDevice struct {
	Label         string `json:"label"`
	FMRI          string `json:"hc-fmri"`
	VendorName    string `json:"pci-vendor-name"`
	DeviceName    string `json:"pci-device-name"`
	SubsystemName string `json:"pci-subsystem-name"`
	DevicePath    string `json:"device-path"`
}

// DriveBay is one entry of drive-bays; Disk is nil for an empty bay
type DriveBay struct {
	Label string `json:"label"`
	FMRI  string `json:"hc-fmri"`
	Disk  *Disk  `json:"disk,omitempty"`
}

// Disk is the drive installed in a bay
type Disk struct {
	FMRI             string `json:"hc-fmri"`
	Manufacturer     string `json:"manufacturer"`
	Model            string `json:"model"`
	SerialNumber     string `json:"serial-number"`
	FirmwareRevision string `json:"firmware-revision"`
	DevicePath       string `json:"device-path"`
}
