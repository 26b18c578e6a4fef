// File: handlers/intelligence.go
package handlers

import (
	"net/http"

	ai "clinicore/services/intelligence"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssistantHandler exposes the medical assistant endpoints.
type AssistantHandler struct {
	Svc ai.AssistantService
}

// NewAssistantHandler constructs a new AssistantHandler.
func NewAssistantHandler(svc ai.AssistantService) *AssistantHandler {
	return &AssistantHandler{Svc: svc}
}

type chatRequest struct {
	Text string `json:"text" binding:"required"`
}

func (h *AssistantHandler) ChatHandler(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.Svc.Chat(c.Request.Context(), c.GetString("doctorID"), req.Text)
	if err != nil {
		utils.GetLogger().Error("assistant chat failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, msg)
}

func (h *AssistantHandler) GreetingHandler(c *gin.Context) {
	msg, err := h.Svc.Greeting(c.Request.Context(), c.GetString("doctorID"), c.Query("name"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, msg)
}

func (h *AssistantHandler) ResetHandler(c *gin.Context) {
	if err := h.Svc.Reset(c.Request.Context(), c.GetString("doctorID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "conversation reset"})
}
