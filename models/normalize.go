package models

import "strings"

// Normalizers for raw spreadsheet cells and form input. All of them are total:
// any input, including empty, yields a usable value. The Russian markers match
// the inventory templates in circulation; English ones are accepted as well.

var deviceTypeAliases = []struct {
	marker    string
	canonical string
}{
	{"ноутбук", DeviceTypeLaptop},
	{"laptop", DeviceTypeLaptop},
	{"нетбук", DeviceTypeNetbook},
	{"netbook", DeviceTypeNetbook},
	{"компьютер", DeviceTypeComputer},
	{"computer", DeviceTypeComputer},
}

var medicalMarkers = []string{"мед", "med"}

// Cells that sometimes end up in the inventory-number column but are actually
// facility labels from the source sheets.
var inventoryDenylist = []string{"видеонаблюдение", "раздевалка"}

var brokenKeywords = []string{"неисправ", "сломан", "не работает", "поломка", "broken"}
var issuesKeywords = []string{"проблем", "медленн", "требует", "нужен", "issues", "slow"}

// NormalizeDeviceType maps free text onto the closed device-type set, trying an
// exact match first and substring aliases second. Unrecognized input is a computer.
func NormalizeDeviceType(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case DeviceTypeComputer, DeviceTypeLaptop, DeviceTypeNetbook:
		return s
	}
	for _, a := range deviceTypeAliases {
		if strings.Contains(s, a.marker) {
			return a.canonical
		}
	}
	return DeviceTypeComputer
}

// DetermineBuilding derives the building from free-text location.
func DetermineBuilding(location string) string {
	s := strings.ToLower(location)
	for _, m := range medicalMarkers {
		if strings.Contains(s, m) {
			return BuildingMedical
		}
	}
	return BuildingMain
}

// CleanString trims and converts empty-after-trim to nil so storage can tell
// "not provided" from an empty string.
func CleanString(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	return &s
}

// NormalizeInventoryNumber trims and drops values that are empty or known
// spreadsheet artifacts rather than inventory numbers.
func NormalizeInventoryNumber(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	lower := strings.ToLower(s)
	for _, bad := range inventoryDenylist {
		if strings.Contains(lower, bad) {
			return nil
		}
	}
	return &s
}

// StatusFromNotes scans notes for breakage keywords; "broken" markers win over
// "issues" markers, and no markers means working.
func StatusFromNotes(notes string) string {
	if strings.TrimSpace(notes) == "" {
		return StatusWorking
	}
	lower := strings.ToLower(notes)
	for _, kw := range brokenKeywords {
		if strings.Contains(lower, kw) {
			return StatusBroken
		}
	}
	for _, kw := range issuesKeywords {
		if strings.Contains(lower, kw) {
			return StatusIssues
		}
	}
	return StatusWorking
}

// StatusOrFromNotes keeps an explicitly submitted status, otherwise derives one.
func StatusOrFromNotes(status string, notes *string) string {
	if status != "" {
		return status
	}
	if notes == nil {
		return StatusWorking
	}
	return StatusFromNotes(*notes)
}
