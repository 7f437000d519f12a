// internal/store/db.go
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/signalnine/fmareport/internal/report"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	fmlog_path TEXT NOT NULL,
	hwgrok_path TEXT,
	lines INTEGER,
	admitted INTEGER,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS devices (
	run_id TEXT NOT NULL REFERENCES runs(id),
	device_path TEXT NOT NULL,
	total INTEGER NOT NULL,
	disk_location TEXT,
	disk_manufacturer TEXT,
	disk_model TEXT,
	disk_serial TEXT,
	disk_firmware_rev TEXT,
	pci_vendor_name TEXT,
	pci_device_name TEXT,
	pci_subsystem_name TEXT,
	PRIMARY KEY (run_id, device_path)
);
CREATE TABLE IF NOT EXISTS class_counts (
	run_id TEXT NOT NULL,
	device_path TEXT NOT NULL,
	class TEXT NOT NULL,
	count INTEGER NOT NULL,
	PRIMARY KEY (run_id, device_path, class)
);
CREATE TABLE IF NOT EXISTS day_counts (
	run_id TEXT NOT NULL,
	device_path TEXT NOT NULL,
	seq INTEGER NOT NULL,
	day TEXT NOT NULL,
	count INTEGER NOT NULL,
	PRIMARY KEY (run_id, device_path, day)
);
CREATE INDEX IF NOT EXISTS idx_devices_path ON devices(device_path);
`

// DB wraps a SQLite snapshot file
type DB struct {
	db *sql.DB
}

// Run describes where a snapshot came from
type Run struct {
	ID         string
	FMLogPath  string
	HWGrokPath string
	CreatedAt  time.Time
}

// Open opens or creates the snapshot database at path
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &DB{db: db}, nil
}

// newDB wraps an already open connection whose schema exists
func newDB(db *sql.DB) *DB {
	return &DB{db: db}
}

// Close closes the database connection
func (d *DB) Close() error {
	return d.db.Close()
}

// NewRun returns run metadata with a fresh id
func NewRun(fmlogPath, hwgrokPath string) Run {
	return Run{
		ID:         uuid.NewString(),
		FMLogPath:  fmlogPath,
		HWGrokPath: hwgrokPath,
		CreatedAt:  time.Now().UTC(),
	}
}

// WriteSnapshot stores a rendered document under run in one transaction
func (d *DB) WriteSnapshot(run Run, doc *report.Document) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var lines, admitted int
	if doc.Stats != nil {
		lines, admitted = doc.Stats.Lines, doc.Stats.Admitted
	}

	_, err = tx.Exec(`
		INSERT INTO runs (id, fmlog_path, hwgrok_path, lines, admitted, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, run.ID, run.FMLogPath, nullString(run.HWGrokPath), lines, admitted, run.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, dev := range doc.Devices {
		if err := insertDevice(tx, run.ID, &dev); err != nil {
			return fmt.Errorf("insert device %s: %w", dev.DevicePath, err)
		}
	}

	return tx.Commit()
}

func insertDevice(tx *sql.Tx, runID string, dev *report.DeviceReport) error {
	var diskLoc, diskMfr, diskModel, diskSerial, diskFW sql.NullString
	var pciVendor, pciDevice, pciSubsys sql.NullString
	if e := dev.Enrichment; e != nil {
		if e.Disk != nil {
			diskLoc = nullString(e.Disk.Location)
			diskMfr = nullString(e.Disk.Manufacturer)
			diskModel = nullString(e.Disk.Model)
			diskSerial = nullString(e.Disk.SerialNumber)
			diskFW = nullString(e.Disk.FirmwareRevision)
		}
		if e.PCI != nil {
			pciVendor = nullString(e.PCI.VendorName)
			pciDevice = nullString(e.PCI.DeviceName)
			pciSubsys = nullString(e.PCI.SubsystemName)
		}
	}

	_, err := tx.Exec(`
		INSERT INTO devices (run_id, device_path, total,
			disk_location, disk_manufacturer, disk_model, disk_serial, disk_firmware_rev,
			pci_vendor_name, pci_device_name, pci_subsystem_name)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, runID, dev.DevicePath, dev.Total,
		diskLoc, diskMfr, diskModel, diskSerial, diskFW,
		pciVendor, pciDevice, pciSubsys)
	if err != nil {
		return err
	}

	for _, c := range dev.Classes {
		if _, err := tx.Exec(`
			INSERT INTO class_counts (run_id, device_path, class, count)
			VALUES (?, ?, ?, ?)
		`, runID, dev.DevicePath, c.Class, c.Count); err != nil {
			return err
		}
	}

	for i, day := range dev.Days {
		if _, err := tx.Exec(`
			INSERT INTO day_counts (run_id, device_path, seq, day, count)
			VALUES (?, ?, ?, ?, ?)
		`, runID, dev.DevicePath, i, day.Day, day.Count); err != nil {
			return err
		}
	}

	return nil
}

// classCounts returns the class counts stored for one device of a run
func (d *DB) classCounts(runID, devicePath string) (map[string]int, error) {
	rows, err := d.db.Query(`
		SELECT class, count FROM class_counts
		WHERE run_id = ? AND device_path = ?
	`, runID, devicePath)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var class string
		var count int
		if err := rows.Scan(&class, &count); err != nil {
			return nil, err
		}
		counts[class] = count
	}
	return counts, rows.Err()
}

// dayOrder returns the stored day buckets of one device in first-seen order
func (d *DB) dayOrder(runID, devicePath string) ([]string, error) {
	rows, err := d.db.Query(`
		SELECT day FROM day_counts
		WHERE run_id = ? AND device_path = ?
		ORDER BY seq
	`, runID, devicePath)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []string
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
