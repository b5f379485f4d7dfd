package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Mu6a9922/v3/app"
	"github.com/Mu6a9922/v3/models"
)

type AssignedDeviceController struct{ *Srv }

func NewAssignedDeviceController(s *Srv) *AssignedDeviceController {
	return &AssignedDeviceController{Srv: s}
}

type assignedDevicePayload struct {
	Employee     string            `json:"employee"`
	Position     string            `json:"position"`
	Building     string            `json:"building"`
	Devices      models.StringList `json:"devices"`
	AssignedDate string            `json:"assignedDate"`
	Notes        *string           `json:"notes"`
}

func (p *assignedDevicePayload) toModel() models.AssignedDevice {
	return models.AssignedDevice{
		Employee:     p.Employee,
		Position:     p.Position,
		Building:     p.Building,
		Devices:      p.Devices,
		AssignedDate: p.AssignedDate,
		Notes:        p.Notes,
	}
}

func (p *assignedDevicePayload) incomplete() bool {
	return p.Employee == "" || p.Position == "" || p.Building == "" ||
		len(p.Devices) == 0 || p.AssignedDate == ""
}

func (ac *AssignedDeviceController) List(c *gin.Context) {
	ds, err := ac.Repo.ListAssignedDevices(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to list assignments"})
		return
	}
	c.JSON(http.StatusOK, ds)
}

func (ac *AssignedDeviceController) Create(c *gin.Context) {
	var p assignedDevicePayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if p.incomplete() {
		c.JSON(http.StatusBadRequest, app.H{"error": "missing required fields: employee, position, building, devices, assignedDate"})
		return
	}

	d := p.toModel()
	if err := ac.Repo.CreateAssignedDevice(c.Request.Context(), &d); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to add assignment"})
		return
	}

	ac.recordHistory(c, models.AssignedDeviceTable, d.ID, models.ActionCreate, nil, p)
	c.JSON(http.StatusCreated, app.H{"id": d.ID, "message": "assignment added"})
}

func (ac *AssignedDeviceController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var p assignedDevicePayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if p.incomplete() {
		c.JSON(http.StatusBadRequest, app.H{"error": "missing required fields: employee, position, building, devices, assignedDate"})
		return
	}

	old, err := ac.Repo.FindAssignedDeviceByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "assignment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to update assignment"})
		return
	}

	d := p.toModel()
	if err := ac.Repo.UpdateAssignedDevice(c.Request.Context(), id, &d); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to update assignment"})
		return
	}

	ac.recordHistory(c, models.AssignedDeviceTable, id, models.ActionUpdate, old, p)
	c.JSON(http.StatusOK, app.H{"message": "assignment updated"})
}

func (ac *AssignedDeviceController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	old, err := ac.Repo.FindAssignedDeviceByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "assignment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to delete assignment"})
		return
	}
	if err := ac.Repo.DeleteAssignedDevice(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to delete assignment"})
		return
	}

	ac.recordHistory(c, models.AssignedDeviceTable, id, models.ActionDelete, old, nil)
	c.JSON(http.StatusOK, app.H{"message": "assignment deleted"})
}
