// File: handlers/availability.go
package handlers

import (
	"errors"
	"net/http"
	"time"

	"clinicore/models"
	"clinicore/services/availability"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes the weekly schedule endpoints.
type AvailabilityHandler struct {
	Svc availability.Service
}

// NewAvailabilityHandler constructs a new AvailabilityHandler.
func NewAvailabilityHandler(svc availability.Service) *AvailabilityHandler {
	return &AvailabilityHandler{Svc: svc}
}

// scheduleContextFrom pulls the authenticated doctor's scheduling
// context off the request.
func scheduleContextFrom(c *gin.Context) availability.ScheduleContext {
	return availability.ScheduleContext{
		ClinicID: c.GetString("clinicID"),
		DoctorID: c.GetString("doctorID"),
	}
}

func availabilityStatus(err error) int {
	var invalidLabel *availability.InvalidTimeLabelError
	var unknownSlot *availability.UnknownSlotError
	switch {
	case errors.Is(err, availability.ErrNoContextSelected):
		return http.StatusBadRequest
	case errors.As(err, &invalidLabel), errors.As(err, &unknownSlot):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// GetWeekHandler returns the week containing the anchor date
// (yyyy-MM-dd query param "date", defaulting to today).
func (h *AvailabilityHandler) GetWeekHandler(c *gin.Context) {
	anchor := time.Now()
	if d := c.Query("date"); d != "" {
		parsed, err := time.Parse(availability.DateLayout, d)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected yyyy-MM-dd"})
			return
		}
		anchor = parsed
	}

	week, err := h.Svc.LoadWeek(c.Request.Context(), scheduleContextFrom(c), anchor)
	if err != nil {
		utils.GetLogger().Error("failed to load week", zap.Error(err))
		c.JSON(availabilityStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"weekStart": week.WeekStart.Format(availability.DateLayout),
		"days":      week.Days,
	})
}

type toggleSlotRequest struct {
	Date string `json:"date" binding:"required"`
	Slot string `json:"slot" binding:"required"`
}

// ToggleSlotHandler flips one slot and persists the day.
func (h *AvailabilityHandler) ToggleSlotHandler(c *gin.Context) {
	var req toggleSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	day, err := h.Svc.ToggleSlot(c.Request.Context(), scheduleContextFrom(c), req.Date, req.Slot)
	if err != nil {
		utils.GetLogger().Error("failed to toggle slot",
			zap.String("date", req.Date), zap.String("slot", req.Slot), zap.Error(err))
		c.JSON(availabilityStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, day)
}

type toggleDayOffRequest struct {
	Date string `json:"date" binding:"required"`
}

// ToggleDayOffHandler flips the whole day's working flag.
func (h *AvailabilityHandler) ToggleDayOffHandler(c *gin.Context) {
	var req toggleDayOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	day, err := h.Svc.ToggleDayOff(c.Request.Context(), scheduleContextFrom(c), req.Date)
	if err != nil {
		utils.GetLogger().Error("failed to toggle day off",
			zap.String("date", req.Date), zap.Error(err))
		c.JSON(availabilityStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, day)
}

type saveWeekRequest struct {
	WeekStart string                    `json:"weekStart" binding:"required"`
	Days      []*models.AvailabilityDay `json:"days" binding:"required"`
}

// SaveWeekHandler persists a full week in one shot.
func (h *AvailabilityHandler) SaveWeekHandler(c *gin.Context) {
	var req saveWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	weekStart, err := time.Parse(availability.DateLayout, req.WeekStart)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid weekStart, expected yyyy-MM-dd"})
		return
	}

	week := &availability.WeekSchedule{
		Context:   scheduleContextFrom(c),
		WeekStart: weekStart,
		Days:      req.Days,
	}
	report, err := h.Svc.SaveWeek(c.Request.Context(), week)
	if err != nil {
		utils.GetLogger().Error("failed to save week",
			zap.String("weekStart", req.WeekStart), zap.Error(err))
		status := availabilityStatus(err)
		if report != nil {
			c.JSON(status, gin.H{"error": err.Error(), "report": report})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	// Days carry their post-save versions so the client can save again
	// without reloading the week.
	c.JSON(http.StatusOK, gin.H{"report": report, "days": week.Days})
}

// GetDayHandler returns the effective availability for one date.
func (h *AvailabilityHandler) GetDayHandler(c *gin.Context) {
	date := c.Param("date")
	day, err := h.Svc.DayAvailability(c.Request.Context(), scheduleContextFrom(c), date)
	if err != nil {
		c.JSON(availabilityStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, day)
}
