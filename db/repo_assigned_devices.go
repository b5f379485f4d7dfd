package db

import (
	"context"

	"github.com/Mu6a9922/v3/models"
)

func (r *Repo) ListAssignedDevices(ctx context.Context) ([]models.AssignedDevice, error) {
	var as []models.AssignedDevice
	err := r.DB.WithContext(ctx).Order("id DESC").Find(&as).Error
	return as, err
}

func (r *Repo) FindAssignedDeviceByID(ctx context.Context, id uint) (*models.AssignedDevice, error) {
	var a models.AssignedDevice
	if err := r.DB.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repo) CreateAssignedDevice(ctx context.Context, a *models.AssignedDevice) error {
	return r.DB.WithContext(ctx).Create(a).Error
}

func (r *Repo) UpdateAssignedDevice(ctx context.Context, id uint, a *models.AssignedDevice) error {
	return r.DB.WithContext(ctx).
		Model(&models.AssignedDevice{ID: id}).
		Select("*").Omit("id", "created_at").
		Updates(a).Error
}

func (r *Repo) DeleteAssignedDevice(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&models.AssignedDevice{}, id).Error
}
