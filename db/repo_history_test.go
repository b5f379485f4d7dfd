package db

import (
	"encoding/json"
	"testing"

	"github.com/Mu6a9922/v3/models"
)

func TestAddAndListHistory(t *testing.T) {
	is, ctx, r := newTestRepo(t)

	before := map[string]any{"model": "OptiPlex 3080", "status": models.StatusWorking}
	after := map[string]any{"model": "OptiPlex 3080", "status": models.StatusBroken}

	is.NoErr(r.AddHistory(ctx, models.ComputerTable, 1, models.ActionCreate, nil, after))
	is.NoErr(r.AddHistory(ctx, models.ComputerTable, 1, models.ActionUpdate, before, after))
	is.NoErr(r.AddHistory(ctx, models.ComputerTable, 1, models.ActionDelete, after, nil))

	rows, err := r.ListHistory(ctx, 100)
	is.NoErr(err)
	is.Equal(len(rows), 3)

	// newest first
	is.Equal(rows[0].Action, models.ActionDelete)
	is.Equal(rows[2].Action, models.ActionCreate)
	is.Equal(rows[0].DeviceTable, models.ComputerTable)
	is.Equal(rows[0].DeviceID, uint(1))

	// a delete keeps the last known state in the before snapshot
	var pair struct {
		Before map[string]any `json:"before"`
		After  map[string]any `json:"after"`
	}
	is.NoErr(json.Unmarshal([]byte(rows[0].Details), &pair))
	is.Equal(pair.After, map[string]any(nil))
	is.Equal(pair.Before["status"], models.StatusBroken)

	// limit is honored
	rows, err = r.ListHistory(ctx, 2)
	is.NoErr(err)
	is.Equal(len(rows), 2)
}
