package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"eventbooking/internal/domain"
)

type bookingRepository struct {
	collection *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) domain.BookingRepository {
	return &bookingRepository{
		collection: db.Collection(bookingsCollection),
	}
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	if b.ID == "" {
		b.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.collection.InsertOne(ctx, b); err != nil {
		return &domain.StorageError{Op: "insert booking", Err: err}
	}
	return nil
}

func (r *bookingRepository) ListByEventID(ctx context.Context, eventID string, params domain.PaginationParams) ([]*domain.Booking, int, error) {
	filter := bson.M{"event_id": eventID}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, &domain.StorageError{Op: "count bookings", Err: err}
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(params.Offset())).
		SetLimit(int64(params.PageSize))
	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, &domain.StorageError{Op: "find bookings", Err: err}
	}
	defer cursor.Close(ctx)

	bookings := make([]*domain.Booking, 0)
	for cursor.Next(ctx) {
		b := &domain.Booking{}
		if err := cursor.Decode(b); err != nil {
			return nil, 0, &domain.StorageError{Op: "decode booking", Err: err}
		}
		bookings = append(bookings, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, &domain.StorageError{Op: "iterate bookings", Err: err}
	}
	return bookings, int(total), nil
}
