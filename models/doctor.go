// File: models/doctor.go
package models

import "time"

// Doctor is a clinician account. Doctors authenticate against the API and
// own the availability schedules for their clinic.
type Doctor struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Specialty    string    `bson:"specialty,omitempty" json:"specialty,omitempty"`
	ClinicID     string    `bson:"clinicId" json:"clinicId"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	FCMToken     string    `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DoctorRegistration is the payload for creating a doctor account.
type DoctorRegistration struct {
	Name      string `json:"name" binding:"required"`
	Specialty string `json:"specialty"`
	ClinicID  string `json:"clinicId" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
}

// DoctorAuthResponse is returned on successful authentication.
type DoctorAuthResponse struct {
	Doctor Doctor `json:"doctor"`
	Token  string `json:"token"`
}
