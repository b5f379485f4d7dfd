package db

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/Mu6a9922/v3/models"
)

func TestComputerCRUD(t *testing.T) {
	is, ctx, r := newTestRepo(t)

	c := models.Computer{
		InventoryNumber: str("INV-001"),
		Building:        models.BuildingMain, Location: "101",
		DeviceType: models.DeviceTypeComputer, Status: models.StatusWorking,
		Notes: str("новый"),
	}
	is.NoErr(r.CreateComputer(ctx, &c))
	is.True(c.ID != 0)

	got, err := r.FindComputerByID(ctx, c.ID)
	is.NoErr(err)
	is.Equal(*got.InventoryNumber, "INV-001")

	// a full update overwrites every mutable column, including clearing notes
	upd := models.Computer{
		InventoryNumber: str("INV-001"),
		Building:        models.BuildingMedical, Location: "Медпункт",
		DeviceType: models.DeviceTypeLaptop, Status: models.StatusIssues,
	}
	is.NoErr(r.UpdateComputer(ctx, c.ID, &upd))

	got, err = r.FindComputerByID(ctx, c.ID)
	is.NoErr(err)
	is.Equal(got.Building, models.BuildingMedical)
	is.Equal(got.Status, models.StatusIssues)
	is.Equal(got.Notes, (*string)(nil))

	is.NoErr(r.DeleteComputer(ctx, c.ID))
	_, err = r.FindComputerByID(ctx, c.ID)
	is.True(errors.Is(err, gorm.ErrRecordNotFound))
}

func TestComputerUniqueBackstops(t *testing.T) {
	is, ctx, r := newTestRepo(t)

	is.NoErr(r.CreateComputer(ctx, &models.Computer{
		InventoryNumber: str("INV-001"), IPAddress: str("10.0.0.5"),
		Building: models.BuildingMain, Location: "101",
		DeviceType: models.DeviceTypeComputer, Status: models.StatusWorking,
	}))

	err := r.CreateComputer(ctx, &models.Computer{
		InventoryNumber: str("INV-001"),
		Building:        models.BuildingMain, Location: "102",
		DeviceType: models.DeviceTypeComputer, Status: models.StatusWorking,
	})
	is.True(errors.Is(err, gorm.ErrDuplicatedKey))

	err = r.CreateComputer(ctx, &models.Computer{
		IPAddress: str("10.0.0.5"),
		Building:  models.BuildingMain, Location: "103",
		DeviceType: models.DeviceTypeComputer, Status: models.StatusWorking,
	})
	is.True(errors.Is(err, gorm.ErrDuplicatedKey))

	// the partial indexes ignore rows without a value
	is.NoErr(r.CreateComputer(ctx, &models.Computer{
		Building: models.BuildingMain, Location: "104",
		DeviceType: models.DeviceTypeComputer, Status: models.StatusWorking,
	}))
	is.NoErr(r.CreateComputer(ctx, &models.Computer{
		Building: models.BuildingMain, Location: "105",
		DeviceType: models.DeviceTypeComputer, Status: models.StatusWorking,
	}))
}
