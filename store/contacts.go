package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"soulfinder/models"
)

type ContactRepo struct {
	coll *mongo.Collection
}

func NewContactRepo(db *mongo.Database) *ContactRepo {
	return &ContactRepo{coll: db.Collection("contactRequest")}
}

// Create inserts the request unless one already exists for the same
// (biodataId, email) pair.
func (r *ContactRepo) Create(ctx context.Context, cr models.ContactRequest) error {
	pair := bson.M{"biodataId": cr.BiodataID, "email": cr.Email}

	count, err := r.coll.CountDocuments(ctx, pair)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicate
	}

	_, err = r.coll.InsertOne(ctx, cr)
	return err
}

func (r *ContactRepo) ListByEmail(ctx context.Context, email string) ([]models.ContactRequest, error) {
	cursor, err := r.coll.Find(ctx,
		bson.M{"email": email},
		options.Find().SetSort(bson.D{{Key: "requestedAt", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	requests := []models.ContactRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *ContactRepo) Delete(ctx context.Context, biodataID int, email string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"biodataId": biodataID, "email": email})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SumFees totals the fee field across all contact requests. An empty
// collection sums to zero.
func (r *ContactRepo) SumFees(ctx context.Context) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$fee"},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	if cursor.Next(ctx) {
		var row struct {
			Total int64 `bson:"total"`
		}
		if err := cursor.Decode(&row); err != nil {
			return 0, err
		}
		return row.Total, nil
	}
	return 0, cursor.Err()
}
