// File: database/repository/patient/interface.go
package patientRepo

import (
	"context"

	"clinicore/config"
	"clinicore/database"
	"clinicore/models"
	"clinicore/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// PatientRepository defines methods for patient data access.
type PatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) error
	GetByID(ctx context.Context, id string) (*models.Patient, error)
	GetAll(ctx context.Context, clinicID string) ([]models.Patient, error)
	Update(ctx context.Context, patient *models.Patient) error
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	CountAll(ctx context.Context, clinicID string) (int64, error)
}

type mongoPatientRepo struct {
	coll *mongo.Collection
}

// NewMongoPatientRepo constructs a new MongoDB PatientRepository.
func NewMongoPatientRepo() PatientRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &mongoPatientRepo{
		coll: db.Collection("patients"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("patient index creation failed", zap.Error(err))
	}
	return repo
}
