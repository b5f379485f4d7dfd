package db

import (
	"testing"

	"github.com/Mu6a9922/v3/models"
)

func TestIsIPInUse(t *testing.T) {
	is, ctx, r := newTestRepo(t)

	inUse, err := r.IsIPInUse(ctx, "", "", 0)
	is.NoErr(err)
	is.True(!inUse)

	inUse, err = r.IsIPInUse(ctx, "192.168.1.10", "", 0)
	is.NoErr(err)
	is.True(!inUse)

	comp := models.Computer{
		Building: models.BuildingMain, Location: "101",
		DeviceType: models.DeviceTypeComputer, Status: models.StatusWorking,
		IPAddress: str("192.168.1.10"),
	}
	is.NoErr(r.CreateComputer(ctx, &comp))

	net := models.NetworkDevice{
		Type: models.NetworkTypeSwitch, Model: "GS308",
		Building: models.BuildingMain, Location: "server room",
		IPAddress: "192.168.1.1", Status: models.StatusWorking,
	}
	is.NoErr(r.CreateNetworkDevice(ctx, &net))

	inUse, err = r.IsIPInUse(ctx, "192.168.1.10", "", 0)
	is.NoErr(err)
	is.True(inUse)

	inUse, err = r.IsIPInUse(ctx, "192.168.1.1", "", 0)
	is.NoErr(err)
	is.True(inUse)

	// a record does not conflict with itself on update
	inUse, err = r.IsIPInUse(ctx, "192.168.1.10", models.ComputerTable, comp.ID)
	is.NoErr(err)
	is.True(!inUse)

	inUse, err = r.IsIPInUse(ctx, "192.168.1.1", models.NetworkDeviceTable, net.ID)
	is.NoErr(err)
	is.True(!inUse)

	// the exclusion is per table, not global
	inUse, err = r.IsIPInUse(ctx, "192.168.1.1", models.ComputerTable, comp.ID)
	is.NoErr(err)
	is.True(inUse)
}
