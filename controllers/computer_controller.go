package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Mu6a9922/v3/app"
	"github.com/Mu6a9922/v3/models"
)

type ComputerController struct{ *Srv }

func NewComputerController(s *Srv) *ComputerController { return &ComputerController{Srv: s} }

type computerPayload struct {
	InventoryNumber *string `json:"inventoryNumber"`
	Building        string  `json:"building"`
	Location        string  `json:"location"`
	DeviceType      string  `json:"deviceType"`
	Model           *string `json:"model"`
	Processor       *string `json:"processor"`
	RAM             *string `json:"ram"`
	Storage         *string `json:"storage"`
	Graphics        *string `json:"graphics"`
	IPAddress       *string `json:"ipAddress"`
	ComputerName    *string `json:"computerName"`
	Year            *string `json:"year"`
	Notes           *string `json:"notes"`
	Status          string  `json:"status"`
}

func (p *computerPayload) toModel() models.Computer {
	return models.Computer{
		InventoryNumber: p.InventoryNumber,
		Building:        p.Building,
		Location:        p.Location,
		DeviceType:      p.DeviceType,
		Model:           p.Model,
		Processor:       p.Processor,
		RAM:             p.RAM,
		Storage:         p.Storage,
		Graphics:        p.Graphics,
		IPAddress:       p.IPAddress,
		ComputerName:    p.ComputerName,
		Year:            p.Year,
		Notes:           p.Notes,
		Status:          models.StatusOrFromNotes(p.Status, p.Notes),
	}
}

func (cc *ComputerController) List(c *gin.Context) {
	cs, err := cc.Repo.ListComputers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to list computers"})
		return
	}
	c.JSON(http.StatusOK, cs)
}

func (cc *ComputerController) Create(c *gin.Context) {
	var p computerPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if p.Building == "" || p.Location == "" || p.DeviceType == "" {
		c.JSON(http.StatusBadRequest, app.H{"error": "missing required fields: building, location, deviceType"})
		return
	}
	if !cc.guardIP(c, deref(p.IPAddress), "", 0) {
		return
	}

	comp := p.toModel()
	if err := cc.Repo.CreateComputer(c.Request.Context(), &comp); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, app.H{"error": "inventory number or IP address already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to add computer"})
		return
	}

	cc.recordHistory(c, models.ComputerTable, comp.ID, models.ActionCreate, nil, p)
	c.JSON(http.StatusCreated, app.H{"id": comp.ID, "message": "computer added"})
}

func (cc *ComputerController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var p computerPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if p.Building == "" || p.Location == "" || p.DeviceType == "" {
		c.JSON(http.StatusBadRequest, app.H{"error": "missing required fields: building, location, deviceType"})
		return
	}

	old, err := cc.Repo.FindComputerByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "computer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to update computer"})
		return
	}
	if !cc.guardIP(c, deref(p.IPAddress), models.ComputerTable, id) {
		return
	}

	comp := p.toModel()
	if err := cc.Repo.UpdateComputer(c.Request.Context(), id, &comp); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, app.H{"error": "inventory number or IP address already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to update computer"})
		return
	}

	cc.recordHistory(c, models.ComputerTable, id, models.ActionUpdate, old, p)
	c.JSON(http.StatusOK, app.H{"message": "computer updated"})
}

func (cc *ComputerController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	old, err := cc.Repo.FindComputerByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "computer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to delete computer"})
		return
	}
	if err := cc.Repo.DeleteComputer(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to delete computer"})
		return
	}

	cc.recordHistory(c, models.ComputerTable, id, models.ActionDelete, old, nil)
	c.JSON(http.StatusOK, app.H{"message": "computer deleted"})
}
