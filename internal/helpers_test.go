package internal_test

import (
	"database/sql"
	"math"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/datefilter/internal"
)

func TestIsFalsy(t *testing.T) {
	t.Parallel()

	var nilMap map[string]any
	now := time.Now()

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, true},
		{"empty string", "", true},
		{"false", false, true},
		{"zero int64", int64(0), true},
		{"zero uint", uint(0), true},
		{"zero float32", float32(0), true},
		{"NaN", math.NaN(), true},
		{"zero time", time.Time{}, true},
		{"nil map", nilMap, true},
		{"null pgtype", pgtype.Timestamptz{}, true},
		{"null sql", sql.NullTime{}, true},
		{"string", "2017-03-05", false},
		{"true", true, false},
		{"int", 1, false},
		{"negative float", -1.5, false},
		{"infinity", math.Inf(1), false},
		{"time", now, false},
		{"time pointer", &now, false},
		{"valid pgtype", pgtype.Timestamptz{Time: now, Valid: true}, false},
		{"struct", struct{}{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, internal.IsFalsy(tt.value))
		})
	}
}
