package internal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/datefilter/internal"
)

func TestParseMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   internal.Mode
	}{
		{"", internal.Absolute{}},
		{"YYYY-MM-DD", internal.Absolute{Pattern: "YYYY-MM-DD"}},
		{"for humans", internal.Relative{}},
		{"FOR HUMANS", internal.Relative{}},
		{"[printed] for humans", internal.Relative{}},
		{"for-humans", internal.Absolute{Pattern: "for-humans"}},
		{"humans", internal.Absolute{Pattern: "humans"}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, internal.ParseMode(tt.format))
			_, relative := tt.want.(internal.Relative)
			require.Equal(t, relative, internal.IsRelative(tt.format))
		})
	}
}
