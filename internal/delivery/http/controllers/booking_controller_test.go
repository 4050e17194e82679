package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"eventbooking/internal/delivery/http/helpers"
	"eventbooking/internal/domain"
)

// fakeBookingService implements domain.BookingService for handler tests.
type fakeBookingService struct {
	commitResult *domain.Booking
	commitErr    error
	lastCommit   *domain.Booking
	listResult   []*domain.Booking
	listTotal    int
	listErr      error
	lastEventID  string
}

func (f *fakeBookingService) CommitBooking(ctx context.Context, candidate *domain.Booking) (*domain.Booking, error) {
	f.lastCommit = candidate
	if f.commitErr != nil {
		return nil, f.commitErr
	}
	return f.commitResult, nil
}

func (f *fakeBookingService) ListBookingsForEvent(ctx context.Context, eventID string, params domain.PaginationParams) ([]*domain.Booking, int, error) {
	f.lastEventID = eventID
	return f.listResult, f.listTotal, f.listErr
}

func TestBookingController_CreateBooking(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		commitErr   error
		wantStatus  int
		wantErrCode string
	}{
		{
			name:       "created",
			body:       `{"event_id":"ev-1","email":"User@Example.COM"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:        "missing fields",
			body:        `{}`,
			wantStatus:  http.StatusBadRequest,
			wantErrCode: helpers.ErrCodeBadRequest,
		},
		{
			name:        "invalid email",
			body:        `{"event_id":"ev-1","email":"nope"}`,
			commitErr:   &domain.ValidationError{Field: "email", Reason: "invalid address"},
			wantStatus:  http.StatusBadRequest,
			wantErrCode: helpers.ErrCodeBadRequest,
		},
		{
			name:        "dangling event reference",
			body:        `{"event_id":"ev-ghost","email":"user@example.com"}`,
			commitErr:   &domain.ValidationError{Field: "event_id", Reason: "referenced event does not exist"},
			wantStatus:  http.StatusBadRequest,
			wantErrCode: helpers.ErrCodeBadRequest,
		},
		{
			name:        "storage unavailable",
			body:        `{"event_id":"ev-1","email":"user@example.com"}`,
			commitErr:   &domain.StorageError{Op: "insert booking", Err: errors.New("no reachable servers")},
			wantStatus:  http.StatusServiceUnavailable,
			wantErrCode: helpers.ErrCodeServiceUnavailable,
		},
		{
			name:        "unknown field rejected",
			body:        `{"event_id":"ev-1","email":"user@example.com","seats":2}`,
			wantStatus:  http.StatusBadRequest,
			wantErrCode: helpers.ErrCodeBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeBookingService{
				commitResult: &domain.Booking{ID: "b-1", EventID: "ev-1", Email: "user@example.com"},
				commitErr:    tt.commitErr,
			}
			controller := NewBookingController(testLogger, svc)

			req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()
			controller.CreateBooking(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			resp := decodeEnvelope(t, rr)
			if tt.wantErrCode != "" {
				require.NotNil(t, resp.Error)
				require.Equal(t, tt.wantErrCode, resp.Error.Code)
				return
			}
			require.Nil(t, resp.Error)
			require.Equal(t, "ev-1", svc.lastCommit.EventID)
		})
	}
}

func TestBookingController_ListEventBookings(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc := &fakeBookingService{
			listResult: []*domain.Booking{{ID: "b-1", EventID: "ev-1"}},
			listTotal:  1,
		}
		controller := NewBookingController(testLogger, svc)

		req := httptest.NewRequest(http.MethodGet, "/events/ev-1/bookings", nil)
		req.SetPathValue("eventID", "ev-1")
		rr := httptest.NewRecorder()
		controller.ListEventBookings(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		require.Equal(t, "ev-1", svc.lastEventID)

		var resp struct {
			Data ListBookingsResponse `json:"data"`
		}
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		require.Len(t, resp.Data.Bookings, 1)
		require.Equal(t, 1, resp.Data.Pagination.Total)
	})

	t.Run("missing event", func(t *testing.T) {
		svc := &fakeBookingService{listErr: domain.ErrNotFound}
		controller := NewBookingController(testLogger, svc)

		req := httptest.NewRequest(http.MethodGet, "/events/ev-ghost/bookings", nil)
		req.SetPathValue("eventID", "ev-ghost")
		rr := httptest.NewRecorder()
		controller.ListEventBookings(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
	})
}
