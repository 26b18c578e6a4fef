// File: database/repository/patient/crud.go
package patientRepo

import (
	"context"
	"fmt"
	"time"

	"clinicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoPatientRepo) Create(ctx context.Context, patient *models.Patient) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	patient.CreatedAt = now
	patient.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, patient); err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

func (r *mongoPatientRepo) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var patient models.Patient
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&patient)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("patient with id %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch patient %s: %w", id, err)
	}
	return &patient, nil
}

func (r *mongoPatientRepo) GetAll(ctx context.Context, clinicID string) ([]models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"clinicId": clinicID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch patients: %w", err)
	}
	defer cursor.Close(ctx)

	var patients []models.Patient
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, fmt.Errorf("failed to decode patients: %w", err)
	}
	return patients, nil
}

func (r *mongoPatientRepo) Update(ctx context.Context, patient *models.Patient) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	patient.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": patient.ID}, bson.M{"$set": patient})
	if err != nil {
		return fmt.Errorf("failed to update patient %s: %w", patient.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("patient with id %s not found", patient.ID)
	}
	return nil
}

func (r *mongoPatientRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updated_at": time.Now()}
	for k, v := range fields {
		set[k] = v
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update patient %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("patient with id %s not found", id)
	}
	return nil
}

func (r *mongoPatientRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete patient %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("patient with id %s not found", id)
	}
	return nil
}

func (r *mongoPatientRepo) CountAll(ctx context.Context, clinicID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"clinicId": clinicID})
	if err != nil {
		return 0, fmt.Errorf("failed to count patients: %w", err)
	}
	return count, nil
}

func (r *mongoPatientRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "clinicId", Value: 1}, {Key: "name", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
