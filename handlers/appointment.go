// File: handlers/appointment.go
package handlers

import (
	"net/http"

	"clinicore/models"
	"clinicore/services/appointment"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes appointment endpoints.
type AppointmentHandler struct {
	Svc appointment.Service
}

// NewAppointmentHandler constructs a new AppointmentHandler.
func NewAppointmentHandler(svc appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{Svc: svc}
}

func (h *AppointmentHandler) CreateHandler(c *gin.Context) {
	var req appointment.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ClinicID = c.GetString("clinicID")
	req.DoctorID = c.GetString("doctorID")

	appt, err := h.Svc.Create(c.Request.Context(), req)
	if err != nil {
		utils.GetLogger().Error("failed to create appointment", zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, appt)
}

func (h *AppointmentHandler) ListHandler(c *gin.Context) {
	var filter models.AppointmentListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appts, err := h.Svc.List(c.Request.Context(), c.GetString("clinicID"), filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

func (h *AppointmentHandler) GetHandler(c *gin.Context) {
	appt, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appt)
}

func (h *AppointmentHandler) UpdateHandler(c *gin.Context) {
	var req appointment.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appt, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.GetLogger().Error("failed to update appointment",
			zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appt)
}

func (h *AppointmentHandler) DeleteHandler(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "appointment deleted"})
}

func (h *AppointmentHandler) SearchHandler(c *gin.Context) {
	appts, err := h.Svc.Search(c.Request.Context(), c.GetString("clinicID"), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

func (h *AppointmentHandler) MeetLinkHandler(c *gin.Context) {
	link, err := h.Svc.GenerateMeetLink(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.GetLogger().Error("failed to generate meet link",
			zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"gmeet_link": link})
}
