package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"movie-catalog/internal/domains/director/model"
)

type directorDocument struct {
	ID          string     `bson:"_id"`
	FirstName   string     `bson:"first_name"`
	FamilyName  string     `bson:"family_name"`
	DateOfBirth *time.Time `bson:"date_of_birth,omitempty"`
	DateOfDeath *time.Time `bson:"date_of_death,omitempty"`
	Version     int        `bson:"version"`
	CreatedAt   time.Time  `bson:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at"`
}

func toDocument(d *model.Director) directorDocument {
	return directorDocument{
		ID:          d.ID.String(),
		FirstName:   d.FirstName,
		FamilyName:  d.FamilyName,
		DateOfBirth: d.DateOfBirth,
		DateOfDeath: d.DateOfDeath,
		Version:     d.Version,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (doc directorDocument) toModel() (*model.Director, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, fmt.Errorf("director document has invalid id %q: %w", doc.ID, err)
	}
	return &model.Director{
		ID:          id,
		FirstName:   doc.FirstName,
		FamilyName:  doc.FamilyName,
		DateOfBirth: doc.DateOfBirth,
		DateOfDeath: doc.DateOfDeath,
		Version:     doc.Version,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}, nil
}

type mongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(coll *mongo.Collection) RepositoryInterface {
	return &mongoRepository{coll: coll}
}

func (r *mongoRepository) Create(ctx context.Context, d *model.Director) (*model.Director, error) {
	created := *d
	created.ID = uuid.New()
	created.Version = 1
	created.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	created.UpdatedAt = created.CreatedAt

	if _, err := r.coll.InsertOne(ctx, toDocument(&created)); err != nil {
		return nil, fmt.Errorf("failed to create director: %w", err)
	}
	return &created, nil
}

func (r *mongoRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Director, error) {
	var doc directorDocument
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id.String()}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrDirectorNotFound
		}
		return nil, fmt.Errorf("failed to get director by id: %w", err)
	}
	return doc.toModel()
}

func (r *mongoRepository) FindAll(ctx context.Context) ([]model.Director, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "family_name", Value: 1},
		{Key: "first_name", Value: 1},
	})

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list directors: %w", err)
	}

	var docs []directorDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode directors: %w", err)
	}

	directors := make([]model.Director, 0, len(docs))
	for _, doc := range docs {
		d, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		directors = append(directors, *d)
	}
	return directors, nil
}

func (r *mongoRepository) Update(ctx context.Context, d *model.Director, currentVersion int) (*model.Director, error) {
	stored, err := r.FindByID(ctx, d.ID)
	if err != nil {
		return nil, err
	}

	if currentVersion > 0 && stored.Version != currentVersion {
		return nil, model.ErrVersionConflict
	}

	// The replace is conditional on the version just read.
	filter := bson.D{
		{Key: "_id", Value: d.ID.String()},
		{Key: "version", Value: stored.Version},
	}

	updated := *d
	updated.Version = stored.Version + 1
	updated.CreatedAt = stored.CreatedAt
	updated.UpdatedAt = time.Now().UTC().Truncate(time.Millisecond)

	res, err := r.coll.ReplaceOne(ctx, filter, toDocument(&updated))
	if err != nil {
		return nil, fmt.Errorf("failed to update director: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, model.ErrVersionConflict
	}
	return &updated, nil
}

func (r *mongoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id.String()}})
	if err != nil {
		return fmt.Errorf("failed to delete director: %w", err)
	}
	if res.DeletedCount == 0 {
		return model.ErrDirectorNotFound
	}
	return nil
}

func (r *mongoRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{{Key: "_id", Value: id.String()}}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check director existence: %w", err)
	}
	return n > 0, nil
}

func (r *mongoRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count directors: %w", err)
	}
	return n, nil
}
