package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Mu6a9922/v3/models"
)

// SnapshotPair is the serialized before/after payload of a history entry.
// Either half may be nil depending on the action.
type SnapshotPair struct {
	Before any `json:"before"`
	After  any `json:"after"`
}

func (r *Repo) AddHistory(ctx context.Context, table string, deviceID uint, action string, before, after any) error {
	details, err := json.Marshal(SnapshotPair{Before: before, After: after})
	if err != nil {
		return fmt.Errorf("marshal history snapshot: %w", err)
	}
	entry := &models.DeviceHistory{
		DeviceTable: table,
		DeviceID:    deviceID,
		Action:      action,
		Details:     string(details),
	}
	if err := r.DB.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("insert history entry: %w", err)
	}
	return nil
}

func (r *Repo) ListHistory(ctx context.Context, limit int) ([]models.DeviceHistory, error) {
	var entries []models.DeviceHistory
	err := r.DB.WithContext(ctx).Order("id DESC").Limit(limit).Find(&entries).Error
	return entries, err
}
