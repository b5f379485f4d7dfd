package db

import (
	"context"

	"github.com/Mu6a9922/v3/models"
)

func (r *Repo) ListNetworkDevices(ctx context.Context) ([]models.NetworkDevice, error) {
	var ds []models.NetworkDevice
	err := r.DB.WithContext(ctx).Order("id DESC").Find(&ds).Error
	return ds, err
}

func (r *Repo) FindNetworkDeviceByID(ctx context.Context, id uint) (*models.NetworkDevice, error) {
	var d models.NetworkDevice
	if err := r.DB.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repo) CreateNetworkDevice(ctx context.Context, d *models.NetworkDevice) error {
	return r.DB.WithContext(ctx).Create(d).Error
}

func (r *Repo) UpdateNetworkDevice(ctx context.Context, id uint, d *models.NetworkDevice) error {
	return r.DB.WithContext(ctx).
		Model(&models.NetworkDevice{ID: id}).
		Select("*").Omit("id", "created_at").
		Updates(d).Error
}

func (r *Repo) DeleteNetworkDevice(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&models.NetworkDevice{}, id).Error
}
