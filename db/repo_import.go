package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Mu6a9922/v3/importer"
	"github.com/Mu6a9922/v3/models"
)

// importErrorLimit is a circuit breaker against pathological files: once a
// batch accumulates more errors than this, remaining rows are never attempted.
// Rows inserted before the break still commit.
const importErrorLimit = 50

type ImportResult struct {
	BatchID  string
	Inserted int
	// Total counts data rows considered, excluding header and blank rows.
	Total  int
	Errors []string
}

// ImportComputers stages parsed spreadsheet rows inside one transaction. The
// first headerRows rows are the template header; a row whose first cell is
// blank is trailing filler and skipped silently. Row-level failures are
// collected, never thrown.
func (r *Repo) ImportComputers(ctx context.Context, rows [][]string, headerRows int) (ImportResult, error) {
	res := ImportResult{BatchID: uuid.NewString()}
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := headerRows; i < len(rows); i++ {
			row := rows[i]
			if importer.BlankRow(row) {
				continue
			}
			res.Total++

			staged := importer.BuildStaged(row, res.BatchID)
			if staged.Location == nil || staged.DeviceType == "" {
				res.Errors = append(res.Errors, fmt.Sprintf("row %d: missing required fields (location or device type)", i))
			} else {
				tx.SavePoint("import_row")
				if err := tx.Create(&staged).Error; err != nil {
					tx.RollbackTo("import_row")
					res.Errors = append(res.Errors, fmt.Sprintf("row %d: %v", i, err))
				} else {
					res.Inserted++
					continue
				}
			}

			if len(res.Errors) > importErrorLimit {
				break
			}
		}
		return nil
	})
	if err != nil {
		return ImportResult{}, err
	}
	return res, nil
}

func (r *Repo) ListImportedComputers(ctx context.Context, limit int) ([]models.ImportedComputer, error) {
	var rows []models.ImportedComputer
	err := r.DB.WithContext(ctx).Order("id DESC").Limit(limit).Find(&rows).Error
	return rows, err
}

type MigrateResult struct {
	Migrated int
	// Total counts the staged rows considered by this run, i.e. those not
	// migrated by an earlier run.
	Total  int
	Errors []string
}

// MigrateImported copies staged rows into the computers table inside one
// transaction. A row whose inventory number already exists in production is
// skipped with a conflict error; an unexpected per-row failure rolls back to a
// savepoint and the run continues. Migrated rows are stamped so a re-run never
// considers them again.
func (r *Repo) MigrateImported(ctx context.Context) (MigrateResult, error) {
	var res MigrateResult
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var staged []models.ImportedComputer
		if err := tx.Where("migrated_at IS NULL").Order("id").Find(&staged).Error; err != nil {
			return err
		}
		res.Total = len(staged)

		for _, row := range staged {
			if row.InventoryNumber != nil {
				var n int64
				if err := tx.Model(&models.Computer{}).
					Where("inventory_number = ?", *row.InventoryNumber).
					Count(&n).Error; err != nil {
					return err
				}
				if n > 0 {
					res.Errors = append(res.Errors, fmt.Sprintf("computer with inventory number %s already exists", *row.InventoryNumber))
					continue
				}
			}

			location := ""
			if row.Location != nil {
				location = *row.Location
			}
			note := fmt.Sprintf("Imported from Excel (%s)", row.ImportedAt.Format(time.RFC3339))
			status := row.Status
			if status == "" {
				status = models.StatusWorking
			}
			comp := models.Computer{
				InventoryNumber: row.InventoryNumber,
				Building:        row.Building,
				Location:        location,
				DeviceType:      row.DeviceType,
				Model:           row.Model,
				Processor:       row.Processor,
				RAM:             row.RAM,
				Storage:         row.Storage,
				Graphics:        row.Graphics,
				Year:            row.Year,
				Status:          status,
				Notes:           &note,
			}

			tx.SavePoint("migrate_row")
			if err := tx.Create(&comp).Error; err != nil {
				tx.RollbackTo("migrate_row")
				res.Errors = append(res.Errors, fmt.Sprintf("failed to migrate staged row %d: %v", row.ID, err))
				continue
			}
			now := time.Now()
			if err := tx.Model(&models.ImportedComputer{}).
				Where("id = ?", row.ID).
				Update("migrated_at", now).Error; err != nil {
				return err
			}
			res.Migrated++
		}
		return nil
	})
	if err != nil {
		return MigrateResult{}, err
	}
	return res, nil
}

// InventoryMatch is the result of an inventory-number lookup; Type names the
// source table group in the casing the frontend expects.
type InventoryMatch struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// SearchInventory looks a device up by inventory number across production and
// staged tables, in the original precedence order.
func (r *Repo) SearchInventory(ctx context.Context, number string) (*InventoryMatch, error) {
	var comp models.Computer
	err := r.DB.WithContext(ctx).Where("inventory_number = ?", number).First(&comp).Error
	if err == nil {
		return &InventoryMatch{Type: "computers", Data: comp}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var other models.OtherDevice
	err = r.DB.WithContext(ctx).Where("inventory_number = ?", number).First(&other).Error
	if err == nil {
		return &InventoryMatch{Type: "otherDevices", Data: other}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var imp models.ImportedComputer
	err = r.DB.WithContext(ctx).Where("inventory_number = ?", number).First(&imp).Error
	if err == nil {
		return &InventoryMatch{Type: "importedComputers", Data: imp}, nil
	}
	return nil, err
}
