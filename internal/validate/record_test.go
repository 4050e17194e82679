package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"eventbooking/internal/domain"
)

func validEventCandidate() *domain.Event {
	return &domain.Event{
		Title:       "AI & Data Summit 2025!",
		Description: " A two day summit. ",
		Overview:    "Talks and workshops.",
		Image:       "https://cdn.example.com/summit.png",
		Venue:       " Tech Hall ",
		Location:    "Berlin",
		Date:        "2025-03-05",
		Time:        "9:05",
		Mode:        "in-person",
		Audience:    "engineers",
		Organizer:   "ACME Events",
		Agenda:      []string{" Registration ", "Keynote"},
		Tags:        []string{"ai", " data "},
	}
}

func TestEventNormalizes(t *testing.T) {
	candidate := validEventCandidate()
	got, err := Event(candidate, "", "")
	require.NoError(t, err)

	require.Equal(t, "AI & Data Summit 2025!", got.Title)
	require.Equal(t, "ai-data-summit-2025", got.Slug)
	require.Equal(t, "A two day summit.", got.Description)
	require.Equal(t, "Tech Hall", got.Venue)
	require.Equal(t, "2025-03-05", got.Date)
	require.Equal(t, "09:05", got.Time)
	require.Equal(t, []string{"Registration", "Keynote"}, got.Agenda)
	require.Equal(t, []string{"ai", "data"}, got.Tags)

	// The candidate itself is left untouched.
	require.Equal(t, " A two day summit. ", candidate.Description)
	require.Equal(t, "9:05", candidate.Time)
	require.Empty(t, candidate.Slug)
}

func TestEventIdempotent(t *testing.T) {
	first, err := Event(validEventCandidate(), "", "")
	require.NoError(t, err)
	second, err := Event(first, first.Title, first.Slug)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEventRejections(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*domain.Event)
		wantField  string
		wantReason string
	}{
		{"blank title", func(e *domain.Event) { e.Title = "  " }, "title", "required and empty"},
		{"missing venue", func(e *domain.Event) { e.Venue = "" }, "venue", "required and empty"},
		{"missing organizer", func(e *domain.Event) { e.Organizer = "" }, "organizer", "required and empty"},
		{"empty agenda", func(e *domain.Event) { e.Agenda = nil }, "agenda", "required and empty"},
		{"blank tag element", func(e *domain.Event) { e.Tags = []string{"ai", "  "} }, "tags", "required and empty"},
		{"unparseable date", func(e *domain.Event) { e.Date = "sometime soon" }, "date", "invalid format"},
		{"single digit minute", func(e *domain.Event) { e.Time = "9:5" }, "time", "invalid format"},
		{"hour out of range", func(e *domain.Event) { e.Time = "24:00" }, "time", "out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := validEventCandidate()
			tt.mutate(candidate)
			got, err := Event(candidate, "", "")
			require.Nil(t, got)
			var vErr *domain.ValidationError
			require.True(t, errors.As(err, &vErr))
			require.Equal(t, tt.wantField, vErr.Field)
			require.Equal(t, tt.wantReason, vErr.Reason)
		})
	}
}

func TestEventSlugRecomputation(t *testing.T) {
	t.Run("create derives slug from title", func(t *testing.T) {
		got, err := Event(validEventCandidate(), "", "")
		require.NoError(t, err)
		require.Equal(t, "ai-data-summit-2025", got.Slug)
	})

	t.Run("resave with unchanged title keeps stored slug", func(t *testing.T) {
		candidate := validEventCandidate()
		got, err := Event(candidate, "AI & Data Summit 2025!", "legacy-slug")
		require.NoError(t, err)
		require.Equal(t, "legacy-slug", got.Slug)
	})

	t.Run("title change recomputes slug", func(t *testing.T) {
		candidate := validEventCandidate()
		candidate.Title = "Launch Day"
		got, err := Event(candidate, "AI & Data Summit 2025!", "ai-data-summit-2025")
		require.NoError(t, err)
		require.Equal(t, "launch-day", got.Slug)
	})

	t.Run("candidate slug is never trusted", func(t *testing.T) {
		candidate := validEventCandidate()
		candidate.Slug = "hand-picked"
		got, err := Event(candidate, "", "")
		require.NoError(t, err)
		require.Equal(t, "ai-data-summit-2025", got.Slug)
	})
}

func TestBookingNormalizes(t *testing.T) {
	candidate := &domain.Booking{EventID: "ev-1", Email: " User@Example.COM "}
	got, err := Booking(candidate)
	require.NoError(t, err)
	require.Equal(t, "user@example.com", got.Email)
	require.Equal(t, "ev-1", got.EventID)
	require.Equal(t, " User@Example.COM ", candidate.Email)
}

func TestBookingRejectsBadEmail(t *testing.T) {
	got, err := Booking(&domain.Booking{EventID: "ev-1", Email: "not-an-email"})
	require.Nil(t, got)
	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	require.Equal(t, "email", vErr.Field)
	require.Equal(t, "invalid address", vErr.Reason)
}
