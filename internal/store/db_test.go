// internal/store/db_test.go
package store

import (
	"errors"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalnine/fmareport/internal/aggregate"
	"github.com/signalnine/fmareport/internal/fmevent"
	"github.com/signalnine/fmareport/internal/hwgrok"
	"github.com/signalnine/fmareport/internal/report"
)

func testDocument() *report.Document {
	return &report.Document{
		Stats: &fmevent.Stats{Lines: 4, Admitted: 4},
		Devices: []report.DeviceReport{
			{
				DevicePath: "/pci@0/disk@1",
				Enrichment: &hwgrok.Enrichment{Disk: &hwgrok.DiskInfo{
					Location:     "Front Disk 1",
					Manufacturer: "Acme",
				}},
				Total: 3,
				Classes: []report.ClassCount{
					{Class: "ereport.io.disk", Count: 1},
					{Class: "ereport.io.pci", Count: 2},
				},
				Days: []aggregate.DayCount{
					{Day: "2019-01-03", Count: 2},
					{Day: "2019-01-01", Count: 1},
				},
			},
			{
				DevicePath: "/usb@0",
				Total:      1,
				Classes:    []report.ClassCount{{Class: "ereport.io.usb", Count: 1}},
				Days:       []aggregate.DayCount{{Day: "2019-01-01", Count: 1}},
			},
		},
	}
}

func TestWriteSnapshot(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "snap.db"))
	require.NoError(t, err)
	defer db.Close()

	run := NewRun("/var/fm/fmlog.json", "")
	require.NotEmpty(t, run.ID)
	require.NoError(t, db.WriteSnapshot(run, testDocument()))

	counts, err := db.classCounts(run.ID, "/pci@0/disk@1")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"ereport.io.disk": 1, "ereport.io.pci": 2}, counts)

	days, err := db.dayOrder(run.ID, "/pci@0/disk@1")
	require.NoError(t, err)
	assert.Equal(t, []string{"2019-01-03", "2019-01-01"}, days)

	var mfr, vendor *string
	err = db.db.QueryRow(`SELECT disk_manufacturer, pci_vendor_name FROM devices WHERE run_id = ? AND device_path = ?`,
		run.ID, "/pci@0/disk@1").Scan(&mfr, &vendor)
	require.NoError(t, err)
	require.NotNil(t, mfr)
	assert.Equal(t, "Acme", *mfr)
	assert.Nil(t, vendor)
}

func TestWriteSnapshotSeparateRuns(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "snap.db"))
	require.NoError(t, err)
	defer db.Close()

	first, second := NewRun("a.json", ""), NewRun("b.json", "hw.json")
	require.NotEqual(t, first.ID, second.ID)
	require.NoError(t, db.WriteSnapshot(first, testDocument()))
	require.NoError(t, db.WriteSnapshot(second, testDocument()))

	counts, err := db.classCounts(second.ID, "/usb@0")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"ereport.io.usb": 1}, counts)
}

func TestWriteSnapshotRollsBack(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO runs")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO devices")).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err = newDB(conn).WriteSnapshot(NewRun("fmlog.json", ""), testDocument())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/pci@0/disk@1")
	assert.NoError(t, mock.ExpectationsWereMet())
}
