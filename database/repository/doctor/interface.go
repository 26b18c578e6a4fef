// File: database/repository/doctor/interface.go
package doctorRepo

import (
	"context"

	"clinicore/config"
	"clinicore/database"
	"clinicore/models"
	"clinicore/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DoctorRepository defines methods for doctor account access.
type DoctorRepository interface {
	Create(ctx context.Context, doctor *models.Doctor) error
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	GetByEmail(ctx context.Context, email string) (*models.Doctor, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
}

type mongoDoctorRepo struct {
	coll *mongo.Collection
}

// NewMongoDoctorRepo constructs a new MongoDB DoctorRepository.
func NewMongoDoctorRepo() DoctorRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &mongoDoctorRepo{
		coll: db.Collection("doctors"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("doctor index creation failed", zap.Error(err))
	}
	return repo
}
