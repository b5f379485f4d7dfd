package models

import "time"

const (
	NetworkTypeRouter      = "router"
	NetworkTypeSwitch      = "switch"
	NetworkTypeAccessPoint = "access_point"
)

type NetworkDevice struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Type         string  `gorm:"size:20;not null;index" json:"type"`
	Model        string  `gorm:"size:255;not null" json:"model"`
	Building     string  `gorm:"size:20;not null;index" json:"building"`
	Location     string  `gorm:"size:255;not null" json:"location"`
	IPAddress    string  `gorm:"size:45;not null" json:"ipAddress"`
	Login        *string `gorm:"size:255" json:"login,omitempty"`
	Password     *string `gorm:"size:255" json:"password,omitempty"`
	WiFiName     *string `gorm:"size:255" json:"wifiName,omitempty"`
	WiFiPassword *string `gorm:"size:255" json:"wifiPassword,omitempty"`
	Notes        *string `gorm:"type:text" json:"notes,omitempty"`
	Status       string  `gorm:"size:20;not null;default:'working';index" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (NetworkDevice) TableName() string { return NetworkDeviceTable }
