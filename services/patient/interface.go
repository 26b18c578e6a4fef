// File: services/patient/interface.go
package patient

import (
	"context"

	patientRepo "clinicore/database/repository/patient"
	"clinicore/models"
)

// CreateRequest is the payload for adding a patient to the roster.
type CreateRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Phone  string `json:"phone" binding:"required"`
	Status string `json:"status"`
}

// Service manages the clinic's patient roster.
type Service interface {
	Create(ctx context.Context, clinicID string, req CreateRequest) (*models.Patient, error)
	Get(ctx context.Context, id string) (*models.Patient, error)
	List(ctx context.Context, clinicID string, q models.RosterQuery) ([]models.Patient, error)
	Update(ctx context.Context, patient *models.Patient) error
	Delete(ctx context.Context, id string) error
	UpdateFCMToken(ctx context.Context, id, token string) error
}

// DefaultPatientService is the production implementation.
type DefaultPatientService struct {
	Repo patientRepo.PatientRepository
}
