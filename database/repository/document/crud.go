// File: database/repository/document/crud.go
package documentRepo

import (
	"context"
	"fmt"
	"time"

	"clinicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoDocumentRepo) Create(ctx context.Context, doc *models.Document) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	doc.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

func (r *mongoDocumentRepo) GetByID(ctx context.Context, id string) (*models.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc models.Document
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("document with id %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch document %s: %w", id, err)
	}
	return &doc, nil
}

func (r *mongoDocumentRepo) GetAll(ctx context.Context, clinicID string) ([]models.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"clinicId": clinicID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch documents: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []models.Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode documents: %w", err)
	}
	return docs, nil
}

func (r *mongoDocumentRepo) GetByPatient(ctx context.Context, clinicID, patientID string) ([]models.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"clinicId": clinicID, "patientId": patientID}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch patient documents: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []models.Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode patient documents: %w", err)
	}
	return docs, nil
}

func (r *mongoDocumentRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete document %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("document with id %s not found", id)
	}
	return nil
}

func (r *mongoDocumentRepo) CountByPatient(ctx context.Context, clinicID, patientID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"clinicId": clinicID, "patientId": patientID})
	if err != nil {
		return 0, fmt.Errorf("failed to count patient documents: %w", err)
	}
	return count, nil
}

func (r *mongoDocumentRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "clinicId", Value: 1}, {Key: "patientId", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
