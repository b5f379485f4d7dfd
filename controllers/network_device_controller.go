package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Mu6a9922/v3/app"
	"github.com/Mu6a9922/v3/models"
)

type NetworkDeviceController struct{ *Srv }

func NewNetworkDeviceController(s *Srv) *NetworkDeviceController {
	return &NetworkDeviceController{Srv: s}
}

type networkDevicePayload struct {
	Type         string  `json:"type"`
	Model        string  `json:"model"`
	Building     string  `json:"building"`
	Location     string  `json:"location"`
	IPAddress    string  `json:"ipAddress"`
	Login        *string `json:"login"`
	Password     *string `json:"password"`
	WiFiName     *string `json:"wifiName"`
	WiFiPassword *string `json:"wifiPassword"`
	Notes        *string `json:"notes"`
	Status       string  `json:"status"`
}

func (p *networkDevicePayload) toModel() models.NetworkDevice {
	return models.NetworkDevice{
		Type:         p.Type,
		Model:        p.Model,
		Building:     p.Building,
		Location:     p.Location,
		IPAddress:    p.IPAddress,
		Login:        p.Login,
		Password:     p.Password,
		WiFiName:     p.WiFiName,
		WiFiPassword: p.WiFiPassword,
		Notes:        p.Notes,
		Status:       models.StatusOrFromNotes(p.Status, p.Notes),
	}
}

func (p *networkDevicePayload) incomplete() bool {
	return p.Type == "" || p.Model == "" || p.Building == "" || p.Location == "" || p.IPAddress == ""
}

func (nc *NetworkDeviceController) List(c *gin.Context) {
	ds, err := nc.Repo.ListNetworkDevices(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to list network devices"})
		return
	}
	c.JSON(http.StatusOK, ds)
}

func (nc *NetworkDeviceController) Create(c *gin.Context) {
	var p networkDevicePayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if p.incomplete() {
		c.JSON(http.StatusBadRequest, app.H{"error": "missing required fields: type, model, building, location, ipAddress"})
		return
	}
	if !nc.guardIP(c, p.IPAddress, "", 0) {
		return
	}

	d := p.toModel()
	if err := nc.Repo.CreateNetworkDevice(c.Request.Context(), &d); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, app.H{"error": "IP address is already in use by another device"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to add network device"})
		return
	}

	nc.recordHistory(c, models.NetworkDeviceTable, d.ID, models.ActionCreate, nil, p)
	c.JSON(http.StatusCreated, app.H{"id": d.ID, "message": "network device added"})
}

func (nc *NetworkDeviceController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var p networkDevicePayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if p.incomplete() {
		c.JSON(http.StatusBadRequest, app.H{"error": "missing required fields: type, model, building, location, ipAddress"})
		return
	}

	old, err := nc.Repo.FindNetworkDeviceByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "network device not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to update network device"})
		return
	}
	if !nc.guardIP(c, p.IPAddress, models.NetworkDeviceTable, id) {
		return
	}

	d := p.toModel()
	if err := nc.Repo.UpdateNetworkDevice(c.Request.Context(), id, &d); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, app.H{"error": "IP address is already in use by another device"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to update network device"})
		return
	}

	nc.recordHistory(c, models.NetworkDeviceTable, id, models.ActionUpdate, old, p)
	c.JSON(http.StatusOK, app.H{"message": "network device updated"})
}

func (nc *NetworkDeviceController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	old, err := nc.Repo.FindNetworkDeviceByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "network device not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to delete network device"})
		return
	}
	if err := nc.Repo.DeleteNetworkDevice(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to delete network device"})
		return
	}

	nc.recordHistory(c, models.NetworkDeviceTable, id, models.ActionDelete, old, nil)
	c.JSON(http.StatusOK, app.H{"message": "network device deleted"})
}
