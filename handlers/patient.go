// File: handlers/patient.go
package handlers

import (
	"net/http"

	"clinicore/models"
	"clinicore/services/patient"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PatientHandler exposes patient roster endpoints.
type PatientHandler struct {
	Svc patient.Service
}

// NewPatientHandler constructs a new PatientHandler.
func NewPatientHandler(svc patient.Service) *PatientHandler {
	return &PatientHandler{Svc: svc}
}

func (h *PatientHandler) CreateHandler(c *gin.Context) {
	var req patient.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.Svc.Create(c.Request.Context(), c.GetString("clinicID"), req)
	if err != nil {
		utils.GetLogger().Error("failed to create patient", zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *PatientHandler) ListHandler(c *gin.Context) {
	var q models.RosterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patients, err := h.Svc.List(c.Request.Context(), c.GetString("clinicID"), q)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"patients": patients})
}

func (h *PatientHandler) GetHandler(c *gin.Context) {
	p, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PatientHandler) UpdateHandler(c *gin.Context) {
	var p models.Patient
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p.ID = c.Param("id")

	if err := h.Svc.Update(c.Request.Context(), &p); err != nil {
		utils.GetLogger().Error("failed to update patient",
			zap.String("id", p.ID), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PatientHandler) DeleteHandler(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "patient deleted"})
}

type fcmTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

func (h *PatientHandler) UpdateFCMTokenHandler(c *gin.Context) {
	var req fcmTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Svc.UpdateFCMToken(c.Request.Context(), c.Param("id"), req.Token); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "token updated"})
}
