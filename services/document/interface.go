// File: services/document/interface.go
package document

import (
	"context"
	"time"

	documentRepo "clinicore/database/repository/document"
	patientRepo "clinicore/database/repository/patient"
	"clinicore/models"
	"clinicore/services/storage"
)

// UploadRequest is the payload for attaching a record file to a patient.
type UploadRequest struct {
	PatientID     string
	Title         string
	Category      string
	Date          time.Time
	LocalFilePath string
}

// Service manages patient record documents.
type Service interface {
	Upload(ctx context.Context, clinicID string, req UploadRequest) (*models.Document, error)
	Browse(ctx context.Context, clinicID string, q models.BrowseQuery) (*models.BrowsePage, error)
	ForPatient(ctx context.Context, clinicID, patientID string) ([]models.Document, error)
	Delete(ctx context.Context, id string) error
	DownloadURL(ctx context.Context, id string) (string, error)
}

// DefaultDocumentService is the production implementation.
type DefaultDocumentService struct {
	Repo     documentRepo.DocumentRepository
	Patients patientRepo.PatientRepository
	Storage  storage.StorageService
}
