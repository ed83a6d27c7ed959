package resolve_test

import (
	"errors"
	"testing"

	"github.com/crashwx/crashwx/pkg/resolve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		columns    []string
		candidates []string
		want       string
		ok         bool
	}{
		{
			name:       "first candidate present",
			columns:    []string{"DATE", "TMAX"},
			candidates: []string{"DATE", "date", "datetime"},
			want:       "DATE",
			ok:         true,
		},
		{
			name:       "priority follows candidates, not columns",
			columns:    []string{"datetime", "date"},
			candidates: []string{"DATE", "date", "datetime"},
			want:       "date",
			ok:         true,
		},
		{
			name:       "case sensitive",
			columns:    []string{"Date"},
			candidates: []string{"DATE", "date"},
			ok:         false,
		},
		{
			name:       "no fuzzy match on whitespace",
			columns:    []string{" date"},
			candidates: []string{"date"},
			ok:         false,
		},
		{
			name:       "no candidates",
			columns:    []string{"date"},
			candidates: nil,
			ok:         false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resolve.Resolve(tt.columns, tt.candidates)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_Idempotent(t *testing.T) {
	columns := []string{"precip", "rain", "PRCP"}
	candidates := []string{"PRCP", "prcp", "precip", "precipitation", "RAIN", "rain"}

	first, _ := resolve.Resolve(columns, candidates)
	for range 100 {
		got, ok := resolve.Resolve(columns, candidates)
		require.True(t, ok)
		assert.Equal(t, first, got)
	}
}

func TestResolveFields(t *testing.T) {
	fields := []resolve.Field{
		{Name: "id", Required: true},
		{Name: "date", Candidates: []string{"DATE", "date"}, Required: true},
		{Name: "conditions", Default: "Unknown"},
	}

	t.Run("all present", func(t *testing.T) {
		res, err := resolve.ResolveFields(
			[]string{"id", "date", "conditions"}, fields)
		require.NoError(t, err)
		col, ok := res.Column("date")
		assert.True(t, ok)
		assert.Equal(t, "date", col)
		assert.Empty(t, res.Absent)
	})

	t.Run("optional absent", func(t *testing.T) {
		res, err := resolve.ResolveFields([]string{"id", "DATE"}, fields)
		require.NoError(t, err)
		_, ok := res.Column("conditions")
		assert.False(t, ok)
		assert.Equal(t, []string{"conditions"}, res.Absent)
	})

	t.Run("required missing", func(t *testing.T) {
		_, err := resolve.ResolveFields([]string{"conditions"}, fields)
		require.Error(t, err)

		var mErr *resolve.MissingColumnsError
		require.True(t, errors.As(err, &mErr))
		assert.Equal(t, []string{"id", "date"}, mErr.Missing)
		assert.Contains(t, err.Error(), "id, date")
	})
}
