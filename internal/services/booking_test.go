package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"eventbooking/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type mockBookingRepository struct {
	createErr error
	listErr   error
	created   *domain.Booking
	byEvent   map[string][]*domain.Booking
}

func (m *mockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = b
	return nil
}

func (m *mockBookingRepository) ListByEventID(ctx context.Context, eventID string, params domain.PaginationParams) ([]*domain.Booking, int, error) {
	if m.listErr != nil {
		return nil, 0, m.listErr
	}
	bookings := m.byEvent[eventID]
	return bookings, len(bookings), nil
}

type mockEmailService struct {
	sendErr error
	sent    []*domain.BookingConfirmationEmailData
}

func (m *mockEmailService) SendBookingConfirmation(ctx context.Context, data *domain.BookingConfirmationEmailData) error {
	m.sent = append(m.sent, data)
	return m.sendErr
}

func TestCommitBooking(t *testing.T) {
	event := eventCandidate()
	event.ID = "ev-1"
	event.Date = "2025-03-05"
	event.Time = "09:05"

	t.Run("success normalizes email and sends confirmation", func(t *testing.T) {
		eventRepo := &mockEventRepository{events: map[string]*domain.Event{"ev-1": event}}
		bookingRepo := &mockBookingRepository{}
		emails := &mockEmailService{}
		svc := NewBookingService(bookingRepo, eventRepo, emails, testLogger, time.Second)

		got, err := svc.CommitBooking(context.Background(), &domain.Booking{
			EventID: "ev-1",
			Email:   " User@Example.COM ",
		})
		require.NoError(t, err)
		require.Equal(t, "user@example.com", got.Email)
		require.False(t, got.CreatedAt.IsZero())
		require.Same(t, bookingRepo.created, got)

		require.Len(t, emails.sent, 1)
		require.Equal(t, "user@example.com", emails.sent[0].Email)
		require.Equal(t, event.Title, emails.sent[0].EventTitle)
		require.Equal(t, "2025-03-05", emails.sent[0].EventDate)
	})

	t.Run("invalid email aborts before any storage access", func(t *testing.T) {
		eventRepo := &mockEventRepository{events: map[string]*domain.Event{"ev-1": event}}
		bookingRepo := &mockBookingRepository{}
		svc := NewBookingService(bookingRepo, eventRepo, &mockEmailService{}, testLogger, time.Second)

		got, err := svc.CommitBooking(context.Background(), &domain.Booking{
			EventID: "ev-1",
			Email:   "not-an-email",
		})
		require.Nil(t, got)
		require.Nil(t, bookingRepo.created)
		require.Zero(t, eventRepo.existsCalls, "email failure short-circuits the pipeline")

		var vErr *domain.ValidationError
		require.True(t, errors.As(err, &vErr))
		require.Equal(t, "email", vErr.Field)
	})

	t.Run("dangling event reference is rejected without a write", func(t *testing.T) {
		eventRepo := &mockEventRepository{events: map[string]*domain.Event{}}
		bookingRepo := &mockBookingRepository{}
		svc := NewBookingService(bookingRepo, eventRepo, &mockEmailService{}, testLogger, time.Second)

		got, err := svc.CommitBooking(context.Background(), &domain.Booking{
			EventID: "ev-ghost",
			Email:   "user@example.com",
		})
		require.Nil(t, got)
		require.Nil(t, bookingRepo.created)

		var vErr *domain.ValidationError
		require.True(t, errors.As(err, &vErr))
		require.Equal(t, "event_id", vErr.Field)
		require.Equal(t, "referenced event does not exist", vErr.Reason)
	})

	t.Run("storage failure on the existence check is not a validation error", func(t *testing.T) {
		storageErr := &domain.StorageError{Op: "count events", Err: errors.New("no reachable servers")}
		eventRepo := &mockEventRepository{existsErr: storageErr}
		bookingRepo := &mockBookingRepository{}
		svc := NewBookingService(bookingRepo, eventRepo, &mockEmailService{}, testLogger, time.Second)

		got, err := svc.CommitBooking(context.Background(), &domain.Booking{
			EventID: "ev-1",
			Email:   "user@example.com",
		})
		require.Nil(t, got)
		require.Nil(t, bookingRepo.created)

		var sErr *domain.StorageError
		require.True(t, errors.As(err, &sErr))
		var vErr *domain.ValidationError
		require.False(t, errors.As(err, &vErr))
	})

	t.Run("confirmation failure does not fail the commit", func(t *testing.T) {
		eventRepo := &mockEventRepository{events: map[string]*domain.Event{"ev-1": event}}
		bookingRepo := &mockBookingRepository{}
		emails := &mockEmailService{sendErr: errors.New("ses throttled")}
		svc := NewBookingService(bookingRepo, eventRepo, emails, testLogger, time.Second)

		got, err := svc.CommitBooking(context.Background(), &domain.Booking{
			EventID: "ev-1",
			Email:   "user@example.com",
		})
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Len(t, emails.sent, 1)
	})
}

func TestListBookingsForEvent(t *testing.T) {
	event := eventCandidate()
	event.ID = "ev-1"

	t.Run("returns bookings for the event", func(t *testing.T) {
		eventRepo := &mockEventRepository{events: map[string]*domain.Event{"ev-1": event}}
		bookingRepo := &mockBookingRepository{byEvent: map[string][]*domain.Booking{
			"ev-1": {{ID: "b-1", EventID: "ev-1", Email: "a@example.com"}},
		}}
		svc := NewBookingService(bookingRepo, eventRepo, &mockEmailService{}, testLogger, time.Second)

		bookings, total, err := svc.ListBookingsForEvent(context.Background(), "ev-1", domain.PaginationParams{Page: 1, PageSize: 20})
		require.NoError(t, err)
		require.Equal(t, 1, total)
		require.Len(t, bookings, 1)
	})

	t.Run("missing event", func(t *testing.T) {
		eventRepo := &mockEventRepository{events: map[string]*domain.Event{}}
		svc := NewBookingService(&mockBookingRepository{}, eventRepo, &mockEmailService{}, testLogger, time.Second)

		_, _, err := svc.ListBookingsForEvent(context.Background(), "ev-ghost", domain.PaginationParams{Page: 1, PageSize: 20})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("never nil slice", func(t *testing.T) {
		eventRepo := &mockEventRepository{events: map[string]*domain.Event{"ev-1": event}}
		svc := NewBookingService(&mockBookingRepository{}, eventRepo, &mockEmailService{}, testLogger, time.Second)

		bookings, total, err := svc.ListBookingsForEvent(context.Background(), "ev-1", domain.PaginationParams{Page: 1, PageSize: 20})
		require.NoError(t, err)
		require.Zero(t, total)
		require.NotNil(t, bookings)
		require.Empty(t, bookings)
	})
}
