package db

import (
	"context"

	"gorm.io/gorm"

	"github.com/Mu6a9922/v3/models"
)

type Repo struct{ DB *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{DB: db} }

// Stats summarizes table counts for the overview page.
type Stats struct {
	Computers int64 `json:"computers"`
	Network   int64 `json:"network"`
	Other     int64 `json:"other"`
	Assigned  int64 `json:"assigned"`
	Imported  int64 `json:"imported"`
}

func (r *Repo) CollectStats(ctx context.Context) (Stats, error) {
	var s Stats
	counts := []struct {
		model any
		dst   *int64
	}{
		{&models.Computer{}, &s.Computers},
		{&models.NetworkDevice{}, &s.Network},
		{&models.OtherDevice{}, &s.Other},
		{&models.AssignedDevice{}, &s.Assigned},
		{&models.ImportedComputer{}, &s.Imported},
	}
	for _, c := range counts {
		if err := r.DB.WithContext(ctx).Model(c.model).Count(c.dst).Error; err != nil {
			return Stats{}, err
		}
	}
	return s, nil
}
