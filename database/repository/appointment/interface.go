// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"time"

	"clinicore/config"
	"clinicore/database"
	"clinicore/models"
	"clinicore/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// AppointmentRepository defines methods for appointment data access.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	GetAll(ctx context.Context, clinicID string) ([]models.Appointment, error)
	Update(ctx context.Context, appt *models.Appointment) error
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	// SearchByPatientName matches appointments whose patient name starts
	// with the given prefix, case-insensitively.
	SearchByPatientName(ctx context.Context, clinicID, prefix string) ([]models.Appointment, error)
	// GetByDateRange fetches appointments with from <= dateTime < to.
	GetByDateRange(ctx context.Context, clinicID string, from, to time.Time) ([]models.Appointment, error)
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("appointment index creation failed", zap.Error(err))
	}
	return repo
}
