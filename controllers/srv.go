// controllers/srv.go
package controllers

import (
	"encoding/json"
	"log"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Mu6a9922/v3/app"
	"github.com/Mu6a9922/v3/cache"
	"github.com/Mu6a9922/v3/db"
)

type Srv struct {
	Repo  *db.Repo
	Cache *cache.Store
	Cfg   app.Config
}

func GetSrv(a *app.App) *Srv {
	return &Srv{
		Repo:  db.NewRepo(a.DB),
		Cache: a.Cache,
		Cfg:   a.Config,
	}
}

// --- helpers ---

// recordHistory never fails the triggering request; a write error is logged.
func (s *Srv) recordHistory(c *gin.Context, table string, id uint, action string, before, after any) {
	if err := s.Repo.AddHistory(c.Request.Context(), table, id, action, before, after); err != nil {
		log.Printf("history write failed (%s %s id=%d): %v", action, table, id, err)
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id64 == 0 {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id64), true
}

// guardIP validates the format and allocation of a candidate IP. It writes the
// rejection response itself and reports whether the mutation may proceed.
func (s *Srv) guardIP(c *gin.Context, ip string, excludeTable string, excludeID uint) bool {
	if ip == "" {
		return true
	}
	if net.ParseIP(ip) == nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid IP address format"})
		return false
	}
	inUse, err := s.Repo.IsIPInUse(c.Request.Context(), ip, excludeTable, excludeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return false
	}
	if inUse {
		c.JSON(http.StatusConflict, app.H{"error": "IP address is already in use by another device"})
		return false
	}
	return true
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// --- overview endpoints ---

func (s *Srv) Health(c *gin.Context) {
	c.JSON(http.StatusOK, app.H{
		"status":    "ok",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Srv) GetStats(c *gin.Context) {
	ctx := c.Request.Context()
	if b, ok := s.Cache.GetStats(ctx); ok {
		c.Data(http.StatusOK, "application/json", b)
		return
	}
	stats, err := s.Repo.CollectStats(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to collect stats"})
		return
	}
	b, err := json.Marshal(stats)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to collect stats"})
		return
	}
	s.Cache.SetStats(ctx, b)
	c.Data(http.StatusOK, "application/json", b)
}
