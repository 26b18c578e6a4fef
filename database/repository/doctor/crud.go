// File: database/repository/doctor/crud.go
package doctorRepo

import (
	"context"
	"fmt"
	"time"

	"clinicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoDoctorRepo) Create(ctx context.Context, doctor *models.Doctor) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	doctor.CreatedAt = now
	doctor.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, doctor); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("doctor with email %s already exists", doctor.Email)
		}
		return fmt.Errorf("failed to create doctor: %w", err)
	}
	return nil
}

func (r *mongoDoctorRepo) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doctor models.Doctor
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doctor)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("doctor with id %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctor %s: %w", id, err)
	}
	return &doctor, nil
}

func (r *mongoDoctorRepo) GetByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doctor models.Doctor
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doctor)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("doctor with email %s not found", email)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctor by email: %w", err)
	}
	return &doctor, nil
}

func (r *mongoDoctorRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updated_at": time.Now()}
	for k, v := range fields {
		set[k] = v
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update doctor %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("doctor with id %s not found", id)
	}
	return nil
}

func (r *mongoDoctorRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
