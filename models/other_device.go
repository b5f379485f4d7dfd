package models

import "time"

const (
	OtherTypePrinter   = "printer"
	OtherTypeProjector = "projector"
	OtherTypeMonitor   = "monitor"
	OtherTypeMFP       = "mfp"
	OtherTypeOther     = "other"
)

type OtherDevice struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	Type            string  `gorm:"size:20;not null;index" json:"type"`
	Model           string  `gorm:"size:255;not null" json:"model"`
	Building        string  `gorm:"size:20;not null;index" json:"building"`
	Location        string  `gorm:"size:255;not null" json:"location"`
	Responsible     *string `gorm:"size:255" json:"responsible,omitempty"`
	InventoryNumber *string `gorm:"size:100;index" json:"inventoryNumber,omitempty"`
	Notes           *string `gorm:"type:text" json:"notes,omitempty"`
	Status          string  `gorm:"size:20;not null;default:'working';index" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (OtherDevice) TableName() string { return OtherDeviceTable }
