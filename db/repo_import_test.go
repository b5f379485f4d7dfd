package db

import (
	"strings"
	"testing"
	"time"

	"github.com/Mu6a9922/v3/models"
)

// dataRow mirrors the inventory template: column 0 is a row label, then
// inventory number, location and device type, then the hardware columns.
func dataRow(label, inv, loc, typ string) []string {
	return []string{label, inv, loc, typ, "OptiPlex 3080", "", "Windows 10", "i5-10500", "6", "8GB", "256GB SSD", "UHD 630", "2021"}
}

func templateRows(data ...[]string) [][]string {
	rows := [][]string{
		{"Инвентаризация оборудования"},
		{},
		{"№", "Инв. номер", "Кабинет", "Тип", "Модель"},
	}
	return append(rows, data...)
}

func TestImportComputers(t *testing.T) {
	is, ctx, r := newTestRepo(t)

	rows := templateRows(
		dataRow("1", "INV-001", "Кабинет 101", "Компьютер"),
		dataRow("2", "INV-002", "Медпункт", "Ноутбук"),
		[]string{},                               // trailing filler, skipped silently
		dataRow("3", "INV-003", "", "Компьютер"), // no location
		dataRow("4", "", "Кабинет 102", "Компьютер"),
	)

	res, err := r.ImportComputers(ctx, rows, 3)
	is.NoErr(err)
	is.True(res.BatchID != "")
	is.Equal(res.Total, 4) // header and blank rows not counted
	is.Equal(res.Inserted, 3)
	is.Equal(len(res.Errors), 1)
	is.True(strings.Contains(res.Errors[0], "missing required fields"))

	staged, err := r.ListImportedComputers(ctx, 50)
	is.NoErr(err)
	is.Equal(len(staged), 3)
	for _, row := range staged {
		is.Equal(row.BatchID, res.BatchID)
		is.Equal(row.MigratedAt, (*time.Time)(nil))
	}

	// newest first; the medical marker in the location set the building
	is.True(staged[0].InventoryNumber == nil)
	is.Equal(staged[1].Building, models.BuildingMedical)
	is.Equal(staged[1].DeviceType, models.DeviceTypeLaptop)
}

func TestImportComputersErrorLimit(t *testing.T) {
	is, ctx, r := newTestRepo(t)

	var data [][]string
	for i := 0; i < 60; i++ {
		data = append(data, dataRow("1", "INV-X", "", "Компьютер"))
	}
	res, err := r.ImportComputers(ctx, templateRows(data...), 3)
	is.NoErr(err)
	is.Equal(res.Inserted, 0)
	is.Equal(len(res.Errors), 51) // breaks once past the limit
	is.Equal(res.Total, 51)
}

func TestMigrateImported(t *testing.T) {
	is, ctx, r := newTestRepo(t)

	rows := templateRows(
		dataRow("1", "INV-001", "Кабинет 101", "Компьютер"),
		dataRow("2", "INV-002", "Медпункт", "Ноутбук"),
	)
	_, err := r.ImportComputers(ctx, rows, 3)
	is.NoErr(err)

	res, err := r.MigrateImported(ctx)
	is.NoErr(err)
	is.Equal(res.Total, 2)
	is.Equal(res.Migrated, 2)
	is.Equal(len(res.Errors), 0)

	comps, err := r.ListComputers(ctx)
	is.NoErr(err)
	is.Equal(len(comps), 2)
	is.True(comps[0].Notes != nil)
	is.True(strings.HasPrefix(*comps[0].Notes, "Imported from Excel ("))

	staged, err := r.ListImportedComputers(ctx, 50)
	is.NoErr(err)
	for _, row := range staged {
		is.True(row.MigratedAt != nil)
	}

	// a second run finds nothing left to do
	again, err := r.MigrateImported(ctx)
	is.NoErr(err)
	is.Equal(again.Total, 0)
	is.Equal(again.Migrated, 0)
}

func TestMigrateImportedInventoryConflict(t *testing.T) {
	is, ctx, r := newTestRepo(t)

	is.NoErr(r.CreateComputer(ctx, &models.Computer{
		InventoryNumber: str("INV-001"),
		Building:        models.BuildingMain, Location: "101",
		DeviceType: models.DeviceTypeComputer, Status: models.StatusWorking,
	}))

	rows := templateRows(
		dataRow("1", "INV-001", "Кабинет 101", "Компьютер"),
		dataRow("2", "INV-002", "Кабинет 102", "Компьютер"),
	)
	_, err := r.ImportComputers(ctx, rows, 3)
	is.NoErr(err)

	res, err := r.MigrateImported(ctx)
	is.NoErr(err)
	is.Equal(res.Total, 2)
	is.Equal(res.Migrated, 1)
	is.Equal(len(res.Errors), 1)
	is.True(strings.Contains(res.Errors[0], "INV-001"))
	is.True(strings.Contains(res.Errors[0], "already exists"))

	// the conflicting row stays pending
	again, err := r.MigrateImported(ctx)
	is.NoErr(err)
	is.Equal(again.Total, 1)
	is.Equal(again.Migrated, 0)
}

func TestSearchInventory(t *testing.T) {
	is, ctx, r := newTestRepo(t)

	_, err := r.SearchInventory(ctx, "INV-404")
	is.True(err != nil)

	rows := templateRows(dataRow("1", "INV-001", "Кабинет 101", "Компьютер"))
	_, err = r.ImportComputers(ctx, rows, 3)
	is.NoErr(err)

	m, err := r.SearchInventory(ctx, "INV-001")
	is.NoErr(err)
	is.Equal(m.Type, "importedComputers")

	is.NoErr(r.CreateOtherDevice(ctx, &models.OtherDevice{
		Type: models.OtherTypePrinter, Model: "LaserJet M15",
		Building: models.BuildingMain, Location: "102",
		InventoryNumber: str("INV-001"), Status: models.StatusWorking,
	}))
	m, err = r.SearchInventory(ctx, "INV-001")
	is.NoErr(err)
	is.Equal(m.Type, "otherDevices")

	is.NoErr(r.CreateComputer(ctx, &models.Computer{
		InventoryNumber: str("INV-001"),
		Building:        models.BuildingMain, Location: "101",
		DeviceType: models.DeviceTypeComputer, Status: models.StatusWorking,
	}))
	m, err = r.SearchInventory(ctx, "INV-001")
	is.NoErr(err)
	is.Equal(m.Type, "computers")
}
