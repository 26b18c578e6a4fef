// File: models/availability.go
package models

import "time"

// SlotStatus is one bookable interval within a day, keyed by its 24-hour label.
type SlotStatus struct {
	Time      string `bson:"time" json:"time"` // e.g. "09:00"
	Available bool   `bson:"availableSlot" json:"availableSlot"`
}

// AvailabilityDay is the bookable schedule for one clinic-doctor-date.
// Slots always carries the full canonical label set for the clinic's
// scheduling window; partial sets are never persisted.
type AvailabilityDay struct {
	ClinicID  string       `bson:"clinicId" json:"clinicId"`
	DoctorID  string       `bson:"doctorId" json:"doctorId"`
	Date      string       `bson:"date" json:"date"` // yyyy-MM-dd
	Open      bool         `bson:"availableDay" json:"availableDay"`
	Slots     []SlotStatus `bson:"slots" json:"slots"`
	Version   int64        `bson:"version" json:"version"`
	UpdatedAt time.Time    `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Key returns the storage document key for this day.
func (d *AvailabilityDay) Key() string {
	return d.ClinicID + "-" + d.DoctorID + "-" + d.Date
}

// Slot returns a pointer to the slot with the given 24-hour label, or nil.
func (d *AvailabilityDay) Slot(time24 string) *SlotStatus {
	for i := range d.Slots {
		if d.Slots[i].Time == time24 {
			return &d.Slots[i]
		}
	}
	return nil
}

// AvailableCount returns how many slots are currently bookable. A day
// marked off offers no slots regardless of individual flags.
func (d *AvailabilityDay) AvailableCount() int {
	if !d.Open {
		return 0
	}
	n := 0
	for _, s := range d.Slots {
		if s.Available {
			n++
		}
	}
	return n
}

// HasAvailableSlot reports whether any individual slot flag is set,
// ignoring the day-off flag.
func (d *AvailabilityDay) HasAvailableSlot() bool {
	for _, s := range d.Slots {
		if s.Available {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the day record.
func (d *AvailabilityDay) Clone() *AvailabilityDay {
	cp := *d
	cp.Slots = make([]SlotStatus, len(d.Slots))
	copy(cp.Slots, d.Slots)
	return &cp
}
