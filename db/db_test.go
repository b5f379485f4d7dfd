package db

import (
	"context"
	"testing"

	"github.com/matryer/is"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Mu6a9922/v3/models"
)

func newTestRepo(t *testing.T) (*is.I, context.Context, *Repo) {
	t.Helper()
	is := is.New(t)

	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	is.NoErr(err)
	is.NoErr(Migrate(gdb))

	return is, context.Background(), NewRepo(gdb)
}

func str(s string) *string { return &s }

func TestCollectStats(t *testing.T) {
	is, ctx, r := newTestRepo(t)

	is.NoErr(r.CreateComputer(ctx, &models.Computer{
		Building: models.BuildingMain, Location: "101",
		DeviceType: models.DeviceTypeComputer, Status: models.StatusWorking,
	}))
	is.NoErr(r.CreateNetworkDevice(ctx, &models.NetworkDevice{
		Type: models.NetworkTypeRouter, Model: "RT-AC58U",
		Building: models.BuildingMain, Location: "server room",
		IPAddress: "192.168.1.1", Status: models.StatusWorking,
	}))

	s, err := r.CollectStats(ctx)
	is.NoErr(err)
	is.Equal(s.Computers, int64(1))
	is.Equal(s.Network, int64(1))
	is.Equal(s.Other, int64(0))
	is.Equal(s.Assigned, int64(0))
	is.Equal(s.Imported, int64(0))
}
