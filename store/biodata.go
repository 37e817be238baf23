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

const biodataSeqKey = "biodataId"

// BiodataRepo persists biodata profiles plus the counters document backing
// the sequential domain identifier.
type BiodataRepo struct {
	coll     *mongo.Collection
	counters *mongo.Collection
}

func NewBiodataRepo(db *mongo.Database) *BiodataRepo {
	return &BiodataRepo{
		coll:     db.Collection("biodata"),
		counters: db.Collection("counters"),
	}
}

func (f BiodataFilter) query() bson.M {
	q := bson.M{}
	if f.Type != "" {
		q["biodataType"] = f.Type
	}
	if f.Division != "" {
		q["permanentDivision"] = f.Division
	}
	if f.MinAge != nil || f.MaxAge != nil {
		age := bson.M{}
		if f.MinAge != nil {
			age["$gte"] = *f.MinAge
		}
		if f.MaxAge != nil {
			age["$lte"] = *f.MaxAge
		}
		q["age"] = age
	}
	return q
}

func (r *BiodataRepo) List(ctx context.Context, f BiodataFilter, skip, limit int64) ([]models.Biodata, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "biodataId", Value: 1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, f.query(), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []models.Biodata{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *BiodataRepo) Count(ctx context.Context, f BiodataFilter) (int64, error) {
	return r.coll.CountDocuments(ctx, f.query())
}

// GetByID looks up one biodata by its Mongo hex id. A malformed hex string
// is reported as a miss, same as the record not existing.
func (r *BiodataRepo) GetByID(ctx context.Context, id string) (models.Biodata, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Biodata{}, ErrNotFound
	}

	var b models.Biodata
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Biodata{}, ErrNotFound
	}
	return b, err
}

func (r *BiodataRepo) GetByEmail(ctx context.Context, email string) (models.Biodata, error) {
	var b models.Biodata
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Biodata{}, ErrNotFound
	}
	return b, err
}

func (r *BiodataRepo) Similar(ctx context.Context, biodataType string, excludeBiodataID int, limit int64) ([]models.Biodata, error) {
	q := bson.M{
		"biodataType": biodataType,
		"biodataId":   bson.M{"$ne": excludeBiodataID},
	}

	cursor, err := r.coll.Find(ctx, q, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []models.Biodata{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// NextBiodataID atomically claims the next value of the biodata sequence.
func (r *BiodataRepo) NextBiodataID(ctx context.Context) (int, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc struct {
		Seq int `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": biodataSeqKey},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Seq, nil
}

func (r *BiodataRepo) Insert(ctx context.Context, b models.Biodata) error {
	_, err := r.coll.InsertOne(ctx, b)
	return err
}

// UpdateByEmail overwrites the mutable profile fields of the biodata owned
// by email. BiodataID and the record id are never touched.
func (r *BiodataRepo) UpdateByEmail(ctx context.Context, email string, b models.Biodata) error {
	update := bson.M{"$set": bson.M{
		"biodataType":        b.BiodataType,
		"name":               b.Name,
		"profileImage":       b.ProfileImage,
		"permanentDivision":  b.PermanentDivision,
		"presentDivision":    b.PresentDivision,
		"age":                b.Age,
		"height":             b.Height,
		"weight":             b.Weight,
		"occupation":         b.Occupation,
		"race":               b.Race,
		"fathersName":        b.FathersName,
		"mothersName":        b.MothersName,
		"expectedPartnerAge": b.ExpectedPartnerAge,
		"mobileNumber":       b.MobileNumber,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BiodataRepo) SetTypeByEmail(ctx context.Context, email, biodataType string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"biodataType": biodataType}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BiodataRepo) TotalCount(ctx context.Context) (int64, error) {
	return r.coll.EstimatedDocumentCount(ctx)
}

// CountByType groups profile counts by biodataType.
func (r *BiodataRepo) CountByType(ctx context.Context) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$biodataType",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	counts := map[string]int64{}
	for cursor.Next(ctx) {
		var row struct {
			Type  string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, err
		}
		counts[row.Type] = row.Count
	}
	return counts, cursor.Err()
}
