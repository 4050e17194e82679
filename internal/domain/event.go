package domain

import (
	"context"
	"time"
)

// Event represents a published event. All string fields are stored in their
// normalized form: trimmed, with Date as YYYY-MM-DD, Time as zero-padded
// 24-hour HH:MM, and Slug derived from Title.
// swagger:model Event
type Event struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Slug        string    `bson:"slug" json:"slug"`
	Description string    `bson:"description" json:"description"`
	Overview    string    `bson:"overview" json:"overview"`
	Image       string    `bson:"image" json:"image"`
	Venue       string    `bson:"venue" json:"venue"`
	Location    string    `bson:"location" json:"location"`
	Date        string    `bson:"date" json:"date"`
	Time        string    `bson:"time" json:"time"`
	Mode        string    `bson:"mode" json:"mode"`
	Audience    string    `bson:"audience" json:"audience"`
	Organizer   string    `bson:"organizer" json:"organizer"`
	Agenda      []string  `bson:"agenda" json:"agenda"`
	Tags        []string  `bson:"tags" json:"tags"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// EventRepository defines the interface for event storage. The store keeps a
// unique index on slug; Create and Update return ErrConflict when a write
// races another record onto the same slug.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	Update(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	// Exists reports whether an event with the given id is in the store.
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, params PaginationParams) ([]*Event, int, error)
	Delete(ctx context.Context, id string) error
}

// EventService is the commit gate for events plus the read path that depends
// on the slug invariant.
type EventService interface {
	// CommitEvent validates and normalizes the candidate, then persists it.
	// A candidate with an empty ID is created; otherwise the stored record
	// is replaced and the slug is recomputed only if the title changed.
	// The returned event is the normalized form that was written. Errors
	// are *ValidationError (bad input), ErrConflict (slug already taken),
	// ErrNotFound (update of a missing record), or *StorageError.
	CommitEvent(ctx context.Context, candidate *Event) (*Event, error)
	GetEventBySlug(ctx context.Context, slug string) (*Event, error)
	ListEvents(ctx context.Context, params PaginationParams) ([]*Event, int, error)
	DeleteEvent(ctx context.Context, id string) error
}
