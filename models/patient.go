// File: models/patient.go
package models

import "time"

// Patient statuses.
const (
	PatientActive   = "active"
	PatientPending  = "pending"
	PatientInactive = "inactive"
)

// Patient is one entry in the clinic roster.
type Patient struct {
	ID             string     `bson:"id" json:"id"`
	ClinicID       string     `bson:"clinicId" json:"clinicId"`
	Name           string     `bson:"name" json:"name"`
	Initials       string     `bson:"initials,omitempty" json:"initials,omitempty"`
	Email          string     `bson:"email" json:"email"`
	Phone          string     `bson:"phone" json:"phone"`
	Status         string     `bson:"status" json:"status"`
	LastVisit      *time.Time `bson:"lastVisit,omitempty" json:"lastVisit,omitempty"`
	DocumentsCount int        `bson:"documentsCount" json:"documentsCount"`
	FCMToken       string     `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt      time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// RosterQuery shapes a roster listing: search over name/email, a status
// tab, and one of the fixed sort orders.
type RosterQuery struct {
	Search string `form:"search"`
	Status string `form:"status"` // all | active | pending | inactive
	SortBy string `form:"sortBy"` // nameAsc | nameDesc | lastVisit | documentsCount
}
