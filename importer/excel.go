// Package importer decodes uploaded workbooks into raw cell grids and maps the
// fixed column layout of the inventory template onto staging rows.
package importer

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Mu6a9922/v3/models"
)

// Column layout of the inventory template. Column 0 is a row label; a blank
// label marks a trailing row that carries no data.
const (
	colInventoryNumber = 1
	colLocation        = 2
	colDeviceType      = 3
	colModel           = 4
	colScreen          = 5
	colOS              = 6
	colProcessor       = 7
	colCores           = 8
	colRAM             = 9
	colStorage         = 10
	colGraphics        = 11
	colYear            = 12
)

var allowedContentTypes = map[string]bool{
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true, // .xlsx
	"application/vnd.ms-excel": true, // .xls
	// some browsers send this for spreadsheet uploads
	"application/octet-stream": true,
}

// AllowedFile reports whether an upload looks like a spreadsheet, by declared
// content type or by extension.
func AllowedFile(filename, contentType string) bool {
	if allowedContentTypes[strings.ToLower(strings.TrimSpace(contentType))] {
		return true
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls":
		return true
	}
	return false
}

// ParseWorkbook decodes a workbook and returns the first sheet's rows in
// top-to-bottom, left-to-right order. Empty cells come back as "".
func ParseWorkbook(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("read workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

// Cell returns the cell at idx or "" when the row is shorter; excelize trims
// trailing empty cells per row.
func Cell(row []string, idx int) string {
	if idx >= 0 && idx < len(row) {
		return row[idx]
	}
	return ""
}

// BlankRow reports a row whose first cell is empty. Such rows are skipped
// silently: they are trailing filler, not data and not errors.
func BlankRow(row []string) bool {
	return strings.TrimSpace(Cell(row, 0)) == ""
}

// BuildStaged normalizes one template row into a staging record. Status is
// always working at import time; staged rows carry no notes to derive it from.
func BuildStaged(row []string, batchID string) models.ImportedComputer {
	location := models.CleanString(Cell(row, colLocation))
	building := models.BuildingMain
	if location != nil {
		building = models.DetermineBuilding(*location)
	}
	return models.ImportedComputer{
		InventoryNumber: models.NormalizeInventoryNumber(Cell(row, colInventoryNumber)),
		Location:        location,
		DeviceType:      models.NormalizeDeviceType(Cell(row, colDeviceType)),
		Model:           models.CleanString(Cell(row, colModel)),
		Screen:          models.CleanString(Cell(row, colScreen)),
		OS:              models.CleanString(Cell(row, colOS)),
		Processor:       models.CleanString(Cell(row, colProcessor)),
		Cores:           models.CleanString(Cell(row, colCores)),
		RAM:             models.CleanString(Cell(row, colRAM)),
		Storage:         models.CleanString(Cell(row, colStorage)),
		Graphics:        models.CleanString(Cell(row, colGraphics)),
		Year:            models.CleanString(Cell(row, colYear)),
		Building:        building,
		Status:          models.StatusWorking,
		BatchID:         batchID,
	}
}
