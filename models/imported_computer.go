package models

import "time"

// ImportedComputer is a staging row produced by spreadsheet import. It is never
// edited by the user; the migration engine reads it and stamps MigratedAt once
// the row has been copied into the computers table.
type ImportedComputer struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	InventoryNumber *string `gorm:"size:100;index" json:"inventoryNumber,omitempty"`
	Location        *string `gorm:"size:255" json:"location,omitempty"`
	DeviceType      string  `gorm:"size:100;not null" json:"deviceType"`
	Model           *string `gorm:"size:255" json:"model,omitempty"`
	Screen          *string `gorm:"size:50" json:"screen,omitempty"`
	OS              *string `gorm:"size:255" json:"os,omitempty"`
	Processor       *string `gorm:"size:255" json:"processor,omitempty"`
	Cores           *string `gorm:"size:50" json:"cores,omitempty"`
	RAM             *string `gorm:"size:255" json:"ram,omitempty"`
	Storage         *string `gorm:"size:255" json:"storage,omitempty"`
	Graphics        *string `gorm:"size:255" json:"graphics,omitempty"`
	Year            *string `gorm:"size:10" json:"year,omitempty"`
	Building        string  `gorm:"size:20;not null;default:'main'" json:"building"`
	Status          string  `gorm:"size:20;not null;default:'working'" json:"status"`
	BatchID         string  `gorm:"size:36;index" json:"batchId"`

	ImportedAt time.Time  `gorm:"autoCreateTime" json:"importedAt"`
	MigratedAt *time.Time `gorm:"index" json:"migratedAt,omitempty"`
}

func (ImportedComputer) TableName() string { return ImportedComputerTable }
