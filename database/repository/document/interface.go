// File: database/repository/document/interface.go
package documentRepo

import (
	"context"

	"clinicore/config"
	"clinicore/database"
	"clinicore/models"
	"clinicore/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DocumentRepository defines methods for patient document metadata access.
type DocumentRepository interface {
	Create(ctx context.Context, doc *models.Document) error
	GetByID(ctx context.Context, id string) (*models.Document, error)
	GetAll(ctx context.Context, clinicID string) ([]models.Document, error)
	GetByPatient(ctx context.Context, clinicID, patientID string) ([]models.Document, error)
	Delete(ctx context.Context, id string) error
	CountByPatient(ctx context.Context, clinicID, patientID string) (int64, error)
}

type mongoDocumentRepo struct {
	coll *mongo.Collection
}

// NewMongoDocumentRepo constructs a new MongoDB DocumentRepository.
func NewMongoDocumentRepo() DocumentRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &mongoDocumentRepo{
		coll: db.Collection("documents"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("document index creation failed", zap.Error(err))
	}
	return repo
}
