package domain

import (
	"context"
	"time"
)

// Booking represents a seat reserved on an event by an email address. Email
// is stored trimmed and lowercased. Many bookings may reference one event;
// no uniqueness is enforced across (event_id, email).
// swagger:model Booking
type Booking struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	EventID   string    `bson:"event_id" json:"event_id"`
	Email     string    `bson:"email" json:"email"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// BookingRepository defines storage operations for bookings. The store keeps
// a secondary index on event_id for ListByEventID.
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	ListByEventID(ctx context.Context, eventID string, params PaginationParams) ([]*Booking, int, error)
}

// BookingService is the commit gate for bookings.
type BookingService interface {
	// CommitBooking validates and normalizes the candidate, confirms the
	// referenced event exists, then persists it. Errors are
	// *ValidationError (bad input, including a dangling event reference)
	// or *StorageError. The existence check and the insert are not covered
	// by a transaction; an event deleted between the two leaves a stale
	// booking, which is accepted.
	CommitBooking(ctx context.Context, candidate *Booking) (*Booking, error)
	ListBookingsForEvent(ctx context.Context, eventID string, params PaginationParams) ([]*Booking, int, error)
}
