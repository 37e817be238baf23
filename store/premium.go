package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"soulfinder/models"
)

type PremiumRepo struct {
	coll *mongo.Collection
}

func NewPremiumRepo(db *mongo.Database) *PremiumRepo {
	return &PremiumRepo{coll: db.Collection("premiumRequest")}
}

// Create records a pending request; at most one may be outstanding per email.
func (r *PremiumRepo) Create(ctx context.Context, pr models.PremiumRequest) error {
	count, err := r.coll.CountDocuments(ctx, bson.M{"email": pr.Email})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicate
	}

	_, err = r.coll.InsertOne(ctx, pr)
	return err
}

func (r *PremiumRepo) List(ctx context.Context) ([]models.PremiumRequest, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	requests := []models.PremiumRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *PremiumRepo) GetByEmail(ctx context.Context, email string) (models.PremiumRequest, error) {
	var pr models.PremiumRequest
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&pr)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.PremiumRequest{}, ErrNotFound
	}
	return pr, err
}

func (r *PremiumRepo) DeleteByEmail(ctx context.Context, email string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
