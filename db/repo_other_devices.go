package db

import (
	"context"

	"github.com/Mu6a9922/v3/models"
)

func (r *Repo) ListOtherDevices(ctx context.Context) ([]models.OtherDevice, error) {
	var ds []models.OtherDevice
	err := r.DB.WithContext(ctx).Order("id DESC").Find(&ds).Error
	return ds, err
}

func (r *Repo) FindOtherDeviceByID(ctx context.Context, id uint) (*models.OtherDevice, error) {
	var d models.OtherDevice
	if err := r.DB.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repo) CreateOtherDevice(ctx context.Context, d *models.OtherDevice) error {
	return r.DB.WithContext(ctx).Create(d).Error
}

func (r *Repo) UpdateOtherDevice(ctx context.Context, id uint, d *models.OtherDevice) error {
	return r.DB.WithContext(ctx).
		Model(&models.OtherDevice{ID: id}).
		Select("*").Omit("id", "created_at").
		Updates(d).Error
}

func (r *Repo) DeleteOtherDevice(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&models.OtherDevice{}, id).Error
}
