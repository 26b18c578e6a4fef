// File: services/availability/slots.go
package availability

import (
	"fmt"

	"clinicore/config"
	"clinicore/models"
)

// GenerateGrid builds the canonical 24-hour slot labels for a working
// window [openHour, closeHour) stepped by intervalMinutes. With the
// default 9 to 17 window and 30 minute steps this yields 16 labels,
// "09:00" through "16:30".
func GenerateGrid(openHour, closeHour, intervalMinutes int) []string {
	if intervalMinutes <= 0 {
		intervalMinutes = 30
	}
	var labels []string
	for m := openHour * 60; m < closeHour*60; m += intervalMinutes {
		labels = append(labels, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return labels
}

// Grid returns the clinic's configured slot grid, falling back to the
// standard 9 to 5 window when no configuration is loaded.
func Grid() []string {
	open, close, interval := config.AppConfig.ClinicOpenHour, config.AppConfig.ClinicCloseHour, config.AppConfig.SlotIntervalMinutes
	if close <= open {
		open, close, interval = 9, 17, 30
	}
	return GenerateGrid(open, close, interval)
}

// NewDaySlots returns a full slot set over the canonical grid with
// every flag set to available.
func NewDaySlots(available bool) []models.SlotStatus {
	grid := Grid()
	slots := make([]models.SlotStatus, len(grid))
	for i, t := range grid {
		slots[i] = models.SlotStatus{Time: t, Available: available}
	}
	return slots
}

// NormalizeSlots overlays stored flags onto the canonical grid so that
// a day record always carries the full label set. Stored flags win for
// labels present in both; labels missing from storage take the given
// default. Stored labels outside the grid are dropped.
func NormalizeSlots(stored []models.SlotStatus, missingDefault bool) []models.SlotStatus {
	byTime := make(map[string]bool, len(stored))
	for _, s := range stored {
		byTime[s.Time] = s.Available
	}
	grid := Grid()
	slots := make([]models.SlotStatus, len(grid))
	for i, t := range grid {
		avail, ok := byTime[t]
		if !ok {
			avail = missingDefault
		}
		slots[i] = models.SlotStatus{Time: t, Available: avail}
	}
	return slots
}
