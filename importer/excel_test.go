package importer

import (
	"bytes"
	"testing"

	"github.com/matryer/is"
	"github.com/xuri/excelize/v2"

	"github.com/Mu6a9922/v3/models"
)

func buildWorkbook(t *testing.T, rows [][]any) []byte {
	t.Helper()
	is := is.New(t)

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		is.NoErr(err)
		is.NoErr(f.SetSheetRow(sheet, cell, &row))
	}

	var buf bytes.Buffer
	is.NoErr(f.Write(&buf))
	return buf.Bytes()
}

func TestAllowedFile(t *testing.T) {
	is := is.New(t)

	is.True(AllowedFile("inventory.xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"))
	is.True(AllowedFile("inventory.xls", "application/vnd.ms-excel"))
	is.True(AllowedFile("inventory.xlsx", "application/octet-stream"))
	is.True(AllowedFile("INVENTORY.XLSX", ""))
	is.True(!AllowedFile("inventory.csv", "text/csv"))
	is.True(!AllowedFile("inventory.pdf", ""))
}

func TestParseWorkbook(t *testing.T) {
	is := is.New(t)

	data := buildWorkbook(t, [][]any{
		{"Инвентаризация"},
		{"№", "Инв. номер", "Кабинет", "Тип"},
		{},
		{"1", "INV-001", "Кабинет 101", "Компьютер"},
		{"2", "INV-002", "Медпункт", "Ноутбук"},
	})

	rows, err := ParseWorkbook(data)
	is.NoErr(err)
	is.Equal(len(rows), 5)
	is.Equal(Cell(rows[3], colInventoryNumber), "INV-001")
	is.Equal(Cell(rows[4], colLocation), "Медпункт")
}

func TestParseWorkbookRejectsGarbage(t *testing.T) {
	is := is.New(t)

	_, err := ParseWorkbook([]byte("not a zip archive"))
	is.True(err != nil)
}

func TestCellAndBlankRow(t *testing.T) {
	is := is.New(t)

	row := []string{"1", "INV-001"}
	is.Equal(Cell(row, 1), "INV-001")
	is.Equal(Cell(row, 7), "") // past the trimmed tail
	is.Equal(Cell(row, -1), "")

	is.True(BlankRow([]string{}))
	is.True(BlankRow([]string{"  ", "INV-002"}))
	is.True(!BlankRow(row))
}

func TestBuildStaged(t *testing.T) {
	is := is.New(t)

	row := []string{
		"1", " INV-001 ", "Медпункт 2", "Ноутбук HP", "ProBook 450",
		"15.6", "Windows 10", "i5-8250U", "4", "8GB", "256GB SSD", "UHD 620", "2019",
	}
	staged := BuildStaged(row, "batch-1")

	is.True(staged.InventoryNumber != nil)
	is.Equal(*staged.InventoryNumber, "INV-001")
	is.True(staged.Location != nil)
	is.Equal(*staged.Location, "Медпункт 2")
	is.Equal(staged.Building, models.BuildingMedical)
	is.Equal(staged.DeviceType, models.DeviceTypeLaptop)
	is.Equal(staged.Status, models.StatusWorking)
	is.Equal(staged.BatchID, "batch-1")
	is.True(staged.Model != nil)
	is.Equal(*staged.Model, "ProBook 450")
}

func TestBuildStagedSparseRow(t *testing.T) {
	is := is.New(t)

	// short rows happen: excelize trims trailing empties
	staged := BuildStaged([]string{"1", "Видеонаблюдение", "Кабинет 5"}, "batch-2")

	is.Equal(staged.InventoryNumber, (*string)(nil)) // denylisted label, not a number
	is.True(staged.Location != nil)
	is.Equal(staged.Building, models.BuildingMain)
	is.Equal(staged.DeviceType, models.DeviceTypeComputer)
	is.Equal(staged.Model, (*string)(nil))
}
