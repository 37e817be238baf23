package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"soulfinder/models"
)

type UserRepo struct {
	coll *mongo.Collection
}

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{coll: db.Collection("users")}
}

// CreateOrTouch inserts the account on first login; on later logins only
// last_loggedIn is updated. Reports whether a new account was created.
func (r *UserRepo) CreateOrTouch(ctx context.Context, u models.User) (bool, error) {
	filter := bson.M{"email": u.Email}

	var existing models.User
	err := r.coll.FindOne(ctx, filter).Decode(&existing)
	if err == nil {
		_, err = r.coll.UpdateOne(ctx, filter, bson.M{
			"$set": bson.M{"last_loggedIn": u.LastLoggedIn},
		})
		return false, err
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return false, err
	}

	_, err = r.coll.InsertOne(ctx, u)
	return err == nil, err
}

// List returns all accounts, optionally narrowed by a case-insensitive
// substring match over name and email.
func (r *UserRepo) List(ctx context.Context, search string) ([]models.User, error) {
	q := bson.M{}
	if search != "" {
		re := primitive.Regex{Pattern: regexQuoteMeta(search), Options: "i"}
		q["$or"] = bson.A{
			bson.M{"name": re},
			bson.M{"email": re},
		}
	}

	cursor, err := r.coll.Find(ctx, q, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	return u, err
}

func (r *UserRepo) SetRole(ctx context.Context, email, role string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"role": role}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepo) CountByRole(ctx context.Context, role string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"role": role})
}

// regexQuoteMeta escapes user input before it lands inside a $regex.
func regexQuoteMeta(s string) string {
	const special = `\.+*?()|[]{}^$`
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		for j := 0; j < len(special); j++ {
			if s[i] == special[j] {
				out = append(out, '\\')
				break
			}
		}
		out = append(out, s[i])
	}
	return string(out)
}
