// File: database/repository/availability/crud.go
package availabilityRepo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"clinicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// availabilityDoc is the on-disk shape, keyed by clinicId-doctorId-date.
type availabilityDoc struct {
	ID        string              `bson:"_id"`
	ClinicID  string              `bson:"clinicId"`
	DoctorID  string              `bson:"doctorId"`
	Date      string              `bson:"date"`
	Open      bool                `bson:"availableDay"`
	Slots     []models.SlotStatus `bson:"slots"`
	Version   int64               `bson:"version"`
	UpdatedAt time.Time           `bson:"updatedAt"`
}

func toDoc(day *models.AvailabilityDay) availabilityDoc {
	slots := make([]models.SlotStatus, len(day.Slots))
	copy(slots, day.Slots)
	sort.Slice(slots, func(i, j int) bool { return slots[i].Time < slots[j].Time })

	return availabilityDoc{
		ID:        day.Key(),
		ClinicID:  day.ClinicID,
		DoctorID:  day.DoctorID,
		Date:      day.Date,
		Open:      day.Open,
		Slots:     slots,
		Version:   day.Version,
		UpdatedAt: time.Now(),
	}
}

func fromDoc(doc availabilityDoc) models.AvailabilityDay {
	return models.AvailabilityDay{
		ClinicID:  doc.ClinicID,
		DoctorID:  doc.DoctorID,
		Date:      doc.Date,
		Open:      doc.Open,
		Slots:     doc.Slots,
		Version:   doc.Version,
		UpdatedAt: doc.UpdatedAt,
	}
}

func (r *mongoAvailabilityRepo) Upsert(ctx context.Context, day *models.AvailabilityDay) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	doc := toDoc(day)

	// The version guard only matches a stored record older than this write.
	// A concurrent newer record makes the filter miss and the upsert insert
	// a duplicate _id, which Mongo rejects; surface that as a stale write.
	filter := bson.M{"_id": doc.ID, "version": bson.M{"$lt": doc.Version}}
	_, err := r.coll.ReplaceOne(ctx, filter, doc, options.Replace().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrStaleWrite
		}
		return fmt.Errorf("failed to upsert availability for %s: %w", doc.ID, err)
	}
	return nil
}

func (r *mongoAvailabilityRepo) Delete(ctx context.Context, clinicID, doctorID, date string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	key := clinicID + "-" + doctorID + "-" + date
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("failed to delete availability for %s: %w", key, err)
	}
	// A zero delete count means the record was never stored; that is fine.
	return nil
}

func (r *mongoAvailabilityRepo) GetByDate(ctx context.Context, clinicID, doctorID, date string) (*models.AvailabilityDay, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	key := clinicID + "-" + doctorID + "-" + date
	var doc availabilityDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability for %s: %w", key, err)
	}
	day := fromDoc(doc)
	return &day, nil
}

func (r *mongoAvailabilityRepo) QueryByDoctor(ctx context.Context, clinicID, doctorID string) ([]models.AvailabilityDay, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"clinicId": clinicID, "doctorId": doctorID}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query availability for clinic %s: %w", clinicID, err)
	}
	defer cursor.Close(ctx)

	var docs []availabilityDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode availability records: %w", err)
	}

	days := make([]models.AvailabilityDay, len(docs))
	for i, doc := range docs {
		days[i] = fromDoc(doc)
	}
	return days, nil
}
