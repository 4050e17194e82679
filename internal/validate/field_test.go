package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"eventbooking/internal/domain"
)

func TestRequiredString(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"plain value", "Tech Hall", "Tech Hall", false},
		{"trims surrounding whitespace", "  Berlin \n", "Berlin", false},
		{"empty", "", "", true},
		{"whitespace only", "   \t ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RequiredString("venue", tt.raw)
			if tt.wantErr {
				var vErr *domain.ValidationError
				require.True(t, errors.As(err, &vErr))
				require.Equal(t, "venue", vErr.Field)
				require.Equal(t, "required and empty", vErr.Reason)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestRequiredStringSlice(t *testing.T) {
	tests := []struct {
		name    string
		raw     []string
		want    []string
		wantErr bool
	}{
		{"trims every element", []string{" ai ", "data"}, []string{"ai", "data"}, false},
		{"nil slice", nil, nil, true},
		{"empty slice", []string{}, nil, true},
		{"blank element anywhere rejects whole field", []string{"ai", "  "}, nil, true},
		{"blank first element", []string{"", "ai"}, nil, true},
		{"single element", []string{"keynote"}, []string{"keynote"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RequiredStringSlice("tags", tt.raw)
			if tt.wantErr {
				var vErr *domain.ValidationError
				require.True(t, errors.As(err, &vErr))
				require.Equal(t, "tags", vErr.Field)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestRequiredStringSliceDoesNotMutateInput(t *testing.T) {
	raw := []string{" ai ", " data "}
	got, err := RequiredStringSlice("tags", raw)
	require.NoError(t, err)
	require.Equal(t, []string{"ai", "data"}, got)
	require.Equal(t, []string{" ai ", " data "}, raw)
}
