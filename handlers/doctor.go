// File: handlers/doctor.go
package handlers

import (
	"net/http"

	"clinicore/models"
	"clinicore/services/doctor"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DoctorHandler exposes doctor account endpoints.
type DoctorHandler struct {
	Svc doctor.Service
}

// NewDoctorHandler constructs a new DoctorHandler.
func NewDoctorHandler(svc doctor.Service) *DoctorHandler {
	return &DoctorHandler{Svc: svc}
}

func (h *DoctorHandler) RegisterHandler(c *gin.Context) {
	var req models.DoctorRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.Svc.Register(c.Request.Context(), req)
	if err != nil {
		utils.GetLogger().Error("failed to register doctor", zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

type signInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *DoctorHandler) SignInHandler(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.Svc.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DoctorHandler) MeHandler(c *gin.Context) {
	doc, err := h.Svc.Get(c.Request.Context(), c.GetString("doctorID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *DoctorHandler) UpdateFCMTokenHandler(c *gin.Context) {
	var req fcmTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Svc.UpdateFCMToken(c.Request.Context(), c.GetString("doctorID"), req.Token); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "token updated"})
}
