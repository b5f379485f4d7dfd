package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Mu6a9922/v3/app"
	"github.com/Mu6a9922/v3/models"
)

type OtherDeviceController struct{ *Srv }

func NewOtherDeviceController(s *Srv) *OtherDeviceController {
	return &OtherDeviceController{Srv: s}
}

type otherDevicePayload struct {
	Type            string  `json:"type"`
	Model           string  `json:"model"`
	Building        string  `json:"building"`
	Location        string  `json:"location"`
	Responsible     *string `json:"responsible"`
	InventoryNumber *string `json:"inventoryNumber"`
	Notes           *string `json:"notes"`
	Status          string  `json:"status"`
}

func (p *otherDevicePayload) toModel() models.OtherDevice {
	return models.OtherDevice{
		Type:            p.Type,
		Model:           p.Model,
		Building:        p.Building,
		Location:        p.Location,
		Responsible:     p.Responsible,
		InventoryNumber: p.InventoryNumber,
		Notes:           p.Notes,
		Status:          models.StatusOrFromNotes(p.Status, p.Notes),
	}
}

func (p *otherDevicePayload) incomplete() bool {
	return p.Type == "" || p.Model == "" || p.Building == "" || p.Location == ""
}

func (oc *OtherDeviceController) List(c *gin.Context) {
	ds, err := oc.Repo.ListOtherDevices(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to list devices"})
		return
	}
	c.JSON(http.StatusOK, ds)
}

func (oc *OtherDeviceController) Create(c *gin.Context) {
	var p otherDevicePayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if p.incomplete() {
		c.JSON(http.StatusBadRequest, app.H{"error": "missing required fields: type, model, building, location"})
		return
	}

	d := p.toModel()
	if err := oc.Repo.CreateOtherDevice(c.Request.Context(), &d); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to add device"})
		return
	}

	oc.recordHistory(c, models.OtherDeviceTable, d.ID, models.ActionCreate, nil, p)
	c.JSON(http.StatusCreated, app.H{"id": d.ID, "message": "device added"})
}

func (oc *OtherDeviceController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var p otherDevicePayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if p.incomplete() {
		c.JSON(http.StatusBadRequest, app.H{"error": "missing required fields: type, model, building, location"})
		return
	}

	old, err := oc.Repo.FindOtherDeviceByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "device not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to update device"})
		return
	}

	d := p.toModel()
	if err := oc.Repo.UpdateOtherDevice(c.Request.Context(), id, &d); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to update device"})
		return
	}

	oc.recordHistory(c, models.OtherDeviceTable, id, models.ActionUpdate, old, p)
	c.JSON(http.StatusOK, app.H{"message": "device updated"})
}

func (oc *OtherDeviceController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	old, err := oc.Repo.FindOtherDeviceByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "device not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to delete device"})
		return
	}
	if err := oc.Repo.DeleteOtherDevice(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to delete device"})
		return
	}

	oc.recordHistory(c, models.OtherDeviceTable, id, models.ActionDelete, old, nil)
	c.JSON(http.StatusOK, app.H{"message": "device deleted"})
}
