package models

import (
	"encoding/json"
	"time"
)

// StringList is an ordered list of free-text device descriptors. Clients may
// send a single string instead of an array; both decode to a list.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	var many []string
	if err := json.Unmarshal(b, &many); err == nil {
		*l = many
		return nil
	}
	var one string
	if err := json.Unmarshal(b, &one); err != nil {
		return err
	}
	*l = StringList{one}
	return nil
}

type AssignedDevice struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Employee     string     `gorm:"size:255;not null;index" json:"employee"`
	Position     string     `gorm:"size:255;not null" json:"position"`
	Building     string     `gorm:"size:20;not null;index" json:"building"`
	Devices      StringList `gorm:"type:text;serializer:json;not null" json:"devices"`
	AssignedDate string     `gorm:"size:10;not null;index" json:"assignedDate"`
	Notes        *string    `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (AssignedDevice) TableName() string { return AssignedDeviceTable }
