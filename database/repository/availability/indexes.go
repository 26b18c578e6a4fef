// File: database/repository/availability/indexes.go
package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ensureIndexes creates the compound index used by week queries.
func (r *mongoAvailabilityRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	model := mongo.IndexModel{
		Keys: bson.D{
			{Key: "clinicId", Value: 1},
			{Key: "doctorId", Value: 1},
			{Key: "date", Value: 1},
		},
	}
	if _, err := r.coll.Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("failed to create availability indexes: %w", err)
	}
	return nil
}
