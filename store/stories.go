package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"soulfinder/models"
)

type StoryRepo struct {
	coll *mongo.Collection
}

func NewStoryRepo(db *mongo.Database) *StoryRepo {
	return &StoryRepo{coll: db.Collection("successStory")}
}

// Create stores a story, one per submitter email.
func (r *StoryRepo) Create(ctx context.Context, s models.SuccessStory) error {
	count, err := r.coll.CountDocuments(ctx, bson.M{"email": s.Email})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicate
	}

	_, err = r.coll.InsertOne(ctx, s)
	return err
}

func (r *StoryRepo) List(ctx context.Context) ([]models.SuccessStory, error) {
	cursor, err := r.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "marriageDate", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	stories := []models.SuccessStory{}
	if err := cursor.All(ctx, &stories); err != nil {
		return nil, err
	}
	return stories, nil
}
