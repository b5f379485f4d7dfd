package models

import "time"

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// DeviceHistory is append-only. It references its subject loosely by table name
// and id so entries survive deletion of the record they describe.
type DeviceHistory struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DeviceTable string    `gorm:"size:50;not null;index" json:"table"`
	DeviceID    uint      `gorm:"not null;index" json:"deviceId"`
	Action      string    `gorm:"size:50;not null" json:"action"`
	Details     string    `gorm:"type:text" json:"details"`
	CreatedAt   time.Time `json:"timestamp"`
}

func (DeviceHistory) TableName() string { return HistoryTable }
