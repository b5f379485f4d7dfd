package db

import (
	"context"

	"github.com/Mu6a9922/v3/models"
)

func (r *Repo) ListComputers(ctx context.Context) ([]models.Computer, error) {
	var cs []models.Computer
	err := r.DB.WithContext(ctx).Order("id DESC").Find(&cs).Error
	return cs, err
}

func (r *Repo) FindComputerByID(ctx context.Context, id uint) (*models.Computer, error) {
	var c models.Computer
	if err := r.DB.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repo) CreateComputer(ctx context.Context, c *models.Computer) error {
	return r.DB.WithContext(ctx).Create(c).Error
}

// UpdateComputer overwrites every mutable column so cleared fields become NULL.
func (r *Repo) UpdateComputer(ctx context.Context, id uint, c *models.Computer) error {
	return r.DB.WithContext(ctx).
		Model(&models.Computer{ID: id}).
		Select("*").Omit("id", "created_at").
		Updates(c).Error
}

func (r *Repo) DeleteComputer(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&models.Computer{}, id).Error
}
