// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"
	"errors"

	"clinicore/config"
	"clinicore/database"
	"clinicore/models"
	"clinicore/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ErrStaleWrite is returned when an upsert carries a version at or below
// the version already stored for the day. The caller should reload.
var ErrStaleWrite = errors.New("stale availability write rejected")

// AvailabilityRepository maps day records to and from the document store.
type AvailabilityRepository interface {
	// Upsert creates or replaces the record for the day's (clinic, doctor,
	// date) key. Slots are written sorted by 24-hour label so stored
	// arrays stay stable across writers.
	Upsert(ctx context.Context, day *models.AvailabilityDay) error
	// Delete removes the record for the key. A missing record is not an error.
	Delete(ctx context.Context, clinicID, doctorID, date string) error
	// GetByDate fetches one day record, or nil if none is stored.
	GetByDate(ctx context.Context, clinicID, doctorID, date string) (*models.AvailabilityDay, error)
	// QueryByDoctor fetches every stored day record for a clinic-doctor pair.
	QueryByDoctor(ctx context.Context, clinicID, doctorID string) ([]models.AvailabilityDay, error)
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &mongoAvailabilityRepo{
		coll: db.Collection("availability"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("availability index creation failed", zap.Error(err))
	}
	return repo
}
