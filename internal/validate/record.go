package validate

import (
	"eventbooking/internal/domain"
)

// Event runs the full normalization pipeline over a candidate event and
// returns a normalized copy, leaving the candidate untouched. Pipeline
// order: scalar fields, array fields, slug, date, time. The first failing
// step aborts the whole commit; no partially normalized record escapes.
//
// priorTitle and priorSlug describe the stored record when the candidate is
// a re-save. The slug is recomputed from the title on create and whenever
// the title changed, never derived from an already-set slug. Normalization
// is idempotent: running it over an already-normalized event returns an
// identical record.
func Event(candidate *domain.Event, priorTitle, priorSlug string) (*domain.Event, error) {
	out := *candidate

	scalars := []struct {
		name  string
		value *string
	}{
		{"title", &out.Title},
		{"description", &out.Description},
		{"overview", &out.Overview},
		{"image", &out.Image},
		{"venue", &out.Venue},
		{"location", &out.Location},
		{"date", &out.Date},
		{"time", &out.Time},
		{"mode", &out.Mode},
		{"audience", &out.Audience},
		{"organizer", &out.Organizer},
	}
	for _, f := range scalars {
		v, err := RequiredString(f.name, *f.value)
		if err != nil {
			return nil, err
		}
		*f.value = v
	}

	agenda, err := RequiredStringSlice("agenda", candidate.Agenda)
	if err != nil {
		return nil, err
	}
	out.Agenda = agenda

	tags, err := RequiredStringSlice("tags", candidate.Tags)
	if err != nil {
		return nil, err
	}
	out.Tags = tags

	if priorSlug == "" || out.Title != priorTitle {
		out.Slug = Slugify(out.Title)
	} else {
		out.Slug = priorSlug
	}

	if out.Date, err = Date(out.Date); err != nil {
		return nil, err
	}
	if out.Time, err = Clock(out.Time); err != nil {
		return nil, err
	}
	return &out, nil
}

// Booking returns a normalized copy of a candidate booking. Only the email
// is rewritten here; the referential integrity check on EventID needs
// storage access and runs in the commit gate after this transform.
func Booking(candidate *domain.Booking) (*domain.Booking, error) {
	out := *candidate
	email, err := Email(out.Email)
	if err != nil {
		return nil, err
	}
	out.Email = email
	return &out, nil
}
