package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"eventbooking/internal/domain"
)

type eventRepository struct {
	collection *mongo.Collection
}

func NewEventRepository(db *mongo.Database) domain.EventRepository {
	return &eventRepository{
		collection: db.Collection(eventsCollection),
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	if e.ID == "" {
		e.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.collection.InsertOne(ctx, e); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrConflict
		}
		return &domain.StorageError{Op: "insert event", Err: err}
	}
	return nil
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": e.ID}, e)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrConflict
		}
		return &domain.StorageError{Op: "replace event", Err: err}
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	e := &domain.Event{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, &domain.StorageError{Op: "find event by id", Err: err}
	}
	return e, nil
}

func (r *eventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	e := &domain.Event{}
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, &domain.StorageError{Op: "find event by slug", Err: err}
	}
	return e, nil
}

func (r *eventRepository) Exists(ctx context.Context, id string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, &domain.StorageError{Op: "count events", Err: err}
	}
	return count > 0, nil
}

func (r *eventRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, &domain.StorageError{Op: "count events", Err: err}
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(params.Offset())).
		SetLimit(int64(params.PageSize))
	cursor, err := r.collection.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, 0, &domain.StorageError{Op: "find events", Err: err}
	}
	defer cursor.Close(ctx)

	events := make([]*domain.Event, 0)
	for cursor.Next(ctx) {
		e := &domain.Event{}
		if err := cursor.Decode(e); err != nil {
			return nil, 0, &domain.StorageError{Op: "decode event", Err: err}
		}
		events = append(events, e)
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, &domain.StorageError{Op: "iterate events", Err: err}
	}
	return events, int(total), nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return &domain.StorageError{Op: "delete event", Err: err}
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
