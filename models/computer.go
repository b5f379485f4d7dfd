package models

import "time"

const (
	ComputerTable      = "computers"
	NetworkDeviceTable = "network_devices"
	OtherDeviceTable   = "other_devices"
	AssignedDeviceTable = "assigned_devices"
	ImportedComputerTable = "imported_computers"
	HistoryTable       = "device_history"
)

// Building / status / device type are closed sets; free text from forms and
// spreadsheets is normalized into them (see normalize.go).
const (
	BuildingMain    = "main"
	BuildingMedical = "medical"

	StatusWorking = "working"
	StatusIssues  = "issues"
	StatusBroken  = "broken"

	DeviceTypeComputer = "computer"
	DeviceTypeLaptop   = "laptop"
	DeviceTypeNetbook  = "netbook"
)

type Computer struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	InventoryNumber *string `gorm:"size:100;index" json:"inventoryNumber,omitempty"`
	Building        string  `gorm:"size:20;not null;index" json:"building"`
	Location        string  `gorm:"size:255;not null" json:"location"`
	DeviceType      string  `gorm:"size:20;not null" json:"deviceType"`
	Model           *string `gorm:"size:255" json:"model,omitempty"`
	Processor       *string `gorm:"size:255" json:"processor,omitempty"`
	RAM             *string `gorm:"size:255" json:"ram,omitempty"`
	Storage         *string `gorm:"size:255" json:"storage,omitempty"`
	Graphics        *string `gorm:"size:255" json:"graphics,omitempty"`
	IPAddress       *string `gorm:"size:45" json:"ipAddress,omitempty"`
	ComputerName    *string `gorm:"size:255" json:"computerName,omitempty"`
	Year            *string `gorm:"size:10" json:"year,omitempty"`
	Notes           *string `gorm:"type:text" json:"notes,omitempty"`
	Status          string  `gorm:"size:20;not null;default:'working';index" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Computer) TableName() string { return ComputerTable }
