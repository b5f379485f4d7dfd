package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Mu6a9922/v3/app"
	"github.com/Mu6a9922/v3/models"
)

type HistoryController struct{ *Srv }

func NewHistoryController(s *Srv) *HistoryController { return &HistoryController{Srv: s} }

type historyEntry struct {
	ID              uint            `json:"id"`
	Table           string          `json:"table"`
	DeviceID        uint            `json:"deviceId"`
	InventoryNumber string          `json:"inventoryNumber,omitempty"`
	Name            string          `json:"name,omitempty"`
	Action          string          `json:"action"`
	Details         json.RawMessage `json:"details"`
	Timestamp       time.Time       `json:"timestamp"`
}

// List returns the most recent audit entries, newest first, with the
// affected device's inventory number and a display name pulled out of
// the stored snapshots for convenience.
func (hc *HistoryController) List(c *gin.Context) {
	rows, err := hc.Repo.ListHistory(c.Request.Context(), 100)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to list history"})
		return
	}

	entries := make([]historyEntry, 0, len(rows))
	for _, row := range rows {
		e := historyEntry{
			ID:        row.ID,
			Table:     row.DeviceTable,
			DeviceID:  row.DeviceID,
			Action:    row.Action,
			Details:   json.RawMessage(row.Details),
			Timestamp: row.CreatedAt,
		}
		e.InventoryNumber, e.Name = describeSnapshot(row)
		entries = append(entries, e)
	}
	c.JSON(http.StatusOK, entries)
}

// describeSnapshot digs the inventory number and a human-readable name
// out of the after snapshot, falling back to before for deletions.
func describeSnapshot(row models.DeviceHistory) (inventoryNumber, name string) {
	var pair struct {
		Before map[string]any `json:"before"`
		After  map[string]any `json:"after"`
	}
	if err := json.Unmarshal([]byte(row.Details), &pair); err != nil {
		return "", ""
	}
	info := pair.After
	if info == nil {
		info = pair.Before
	}
	if info == nil {
		return "", ""
	}
	inventoryNumber = firstString(info, "inventoryNumber")
	name = firstString(info, "model", "computerName", "employee", "type", "deviceType")
	return inventoryNumber, name
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
