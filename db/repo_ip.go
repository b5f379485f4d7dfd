package db

import (
	"context"
	"strings"

	"github.com/Mu6a9922/v3/models"
)

// IsIPInUse reports whether any computer or network device already holds the
// exact IP string. The exclusion pair lets an update keep the device's own IP
// without a false conflict. Checks short-circuit on the first match.
func (r *Repo) IsIPInUse(ctx context.Context, ip string, excludeTable string, excludeID uint) (bool, error) {
	if strings.TrimSpace(ip) == "" {
		return false, nil
	}

	targets := []struct {
		model any
		table string
	}{
		{&models.Computer{}, models.ComputerTable},
		{&models.NetworkDevice{}, models.NetworkDeviceTable},
	}
	for _, t := range targets {
		q := r.DB.WithContext(ctx).Model(t.model).Where("ip_address = ?", ip)
		if excludeTable == t.table && excludeID != 0 {
			q = q.Where("id <> ?", excludeID)
		}
		var n int64
		if err := q.Count(&n).Error; err != nil {
			return false, err
		}
		if n > 0 {
			return true, nil
		}
	}
	return false, nil
}
