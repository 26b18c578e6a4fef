// File: services/availability/slots_test.go
package availability

import (
	"testing"

	"clinicore/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateGridStandardWindow(t *testing.T) {
	grid := GenerateGrid(9, 17, 30)

	require.Len(t, grid, 16)
	assert.Equal(t, "09:00", grid[0])
	assert.Equal(t, "09:30", grid[1])
	assert.Equal(t, "12:00", grid[6])
	assert.Equal(t, "16:30", grid[15])
}

func TestGenerateGridHourlyInterval(t *testing.T) {
	grid := GenerateGrid(8, 12, 60)
	assert.Equal(t, []string{"08:00", "09:00", "10:00", "11:00"}, grid)
}

func TestNewDaySlots(t *testing.T) {
	slots := NewDaySlots(true)
	require.Len(t, slots, 16)
	for _, s := range slots {
		assert.True(t, s.Available)
	}
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "16:30", slots[15].Time)
}

func TestNormalizeSlotsOverlaysStoredFlags(t *testing.T) {
	stored := []models.SlotStatus{
		{Time: "09:00", Available: false},
		{Time: "16:30", Available: true},
		{Time: "22:00", Available: true}, // outside the grid, dropped
	}

	slots := NormalizeSlots(stored, true)
	require.Len(t, slots, 16)

	byTime := map[string]bool{}
	for _, s := range slots {
		byTime[s.Time] = s.Available
	}
	assert.False(t, byTime["09:00"])
	assert.True(t, byTime["16:30"])
	assert.True(t, byTime["10:00"]) // missing label takes the default
	_, hasOutside := byTime["22:00"]
	assert.False(t, hasOutside)
}

func TestNormalizeSlotsClosedDefault(t *testing.T) {
	slots := NormalizeSlots(nil, false)
	require.Len(t, slots, 16)
	for _, s := range slots {
		assert.False(t, s.Available)
	}
}
