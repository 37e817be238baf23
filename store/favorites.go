package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"soulfinder/models"
)

// FavoriteRepo keeps one document per favorited biodata holding the set of
// requester emails. The set is maintained with $addToSet/$pull and the
// document is removed once the set empties.
type FavoriteRepo struct {
	coll *mongo.Collection
}

func NewFavoriteRepo(db *mongo.Database) *FavoriteRepo {
	return &FavoriteRepo{coll: db.Collection("favorite")}
}

// Add puts email into the requester set for biodataID, creating the record
// when absent. A requester already in the set is a duplicate.
func (r *FavoriteRepo) Add(ctx context.Context, biodataID int, email string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"biodataId": biodataID},
		bson.M{"$addToSet": bson.M{"requesters": email}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return err
	}
	// Matched an existing record without growing the set: email was
	// already a requester.
	if res.MatchedCount > 0 && res.ModifiedCount == 0 {
		return ErrDuplicate
	}
	return nil
}

// Remove pulls email out of the requester set and deletes the record if the
// set emptied. A requester that was never present is a miss.
func (r *FavoriteRepo) Remove(ctx context.Context, biodataID int, email string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"biodataId": biodataID},
		bson.M{"$pull": bson.M{"requesters": email}},
	)
	if err != nil {
		return err
	}
	if res.ModifiedCount == 0 {
		return ErrNotFound
	}

	// Requesters must never be empty while the record exists.
	_, err = r.coll.DeleteOne(ctx, bson.M{
		"biodataId":  biodataID,
		"requesters": bson.M{"$size": 0},
	})
	return err
}

func (r *FavoriteRepo) Get(ctx context.Context, biodataID int) (models.Favorite, error) {
	var f models.Favorite
	err := r.coll.FindOne(ctx, bson.M{"biodataId": biodataID}).Decode(&f)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Favorite{}, ErrNotFound
	}
	return f, err
}

func (r *FavoriteRepo) IsFavorite(ctx context.Context, biodataID int, email string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{
		"biodataId":  biodataID,
		"requesters": email,
	})
	return count > 0, err
}
