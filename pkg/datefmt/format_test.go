package datefmt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/datefilter/pkg/datefmt"
	"github.com/dmitrymomot/datefilter/pkg/locale"
)

// Sunday, 64th day of 2017, ISO week 9.
var instant = time.Date(2017, time.March, 5, 9, 4, 7, 123_000_000, time.UTC)

func TestFormat_Tokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		want    string
	}{
		{"M", "3"},
		{"Mo", "3rd"},
		{"MM", "03"},
		{"MMM", "Mar"},
		{"MMMM", "March"},
		{"Q", "1"},
		{"Qo", "1st"},
		{"D", "5"},
		{"Do", "5th"},
		{"DD", "05"},
		{"DDD", "64"},
		{"DDDo", "64th"},
		{"DDDD", "064"},
		{"d", "0"},
		{"ddd", "Sun"},
		{"dddd", "Sunday"},
		{"E", "7"},
		{"W", "9"},
		{"Wo", "9th"},
		{"WW", "09"},
		{"YY", "17"},
		{"YYYY", "2017"},
		{"GG", "17"},
		{"GGGG", "2017"},
		{"A", "AM"},
		{"a", "am"},
		{"aa", "a.m."},
		{"H", "9"},
		{"HH", "09"},
		{"h", "9"},
		{"hh", "09"},
		{"m", "4"},
		{"mm", "04"},
		{"s", "7"},
		{"ss", "07"},
		{"S", "1"},
		{"SS", "12"},
		{"SSS", "123"},
		{"Z", "+00:00"},
		{"ZZ", "+0000"},
		{"X", "1488704647"},
		{"x", "1488704647123"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			t.Parallel()

			got, err := datefmt.Format(instant, tt.pattern, datefmt.Options{})
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_Patterns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
		opts    datefmt.Options
		want    string
	}{
		{
			name: "default pattern",
			want: "2017-03-05T09:04:07.123+00:00",
		},
		{
			name:    "mixed tokens and literals",
			pattern: "Do MMMM YYYY, h:mm:ss a",
			want:    "5th March 2017, 9:04:07 am",
		},
		{
			name:    "bracket escape",
			pattern: "[Today is] dddd",
			want:    "Today is Sunday",
		},
		{
			name:    "backslash escape",
			pattern: `YYYY\Y`,
			want:    "2017Y",
		},
		{
			name:    "afternoon in twelve hour clock",
			pattern: "h A",
			opts:    datefmt.Options{Location: time.FixedZone("UTC+5", 5*3600)},
			want:    "2 PM",
		},
		{
			name:    "location shifts offset",
			pattern: "HH:mm Z",
			opts:    datefmt.Options{Location: time.FixedZone("CET", 3600)},
			want:    "10:04 +01:00",
		},
		{
			name:    "german names",
			pattern: "dddd, D. MMMM YYYY",
			opts:    datefmt.Options{Locale: "de"},
			want:    "Sonntag, 5. März 2017",
		},
		{
			name:    "spanish names",
			pattern: "dddd D [de] MMMM",
			opts:    datefmt.Options{Locale: "es-ES"},
			want:    "domingo 5 de marzo",
		},
		{
			name:    "french ordinal",
			pattern: "Do MMMM",
			opts:    datefmt.Options{Locale: "fr"},
			want:    "5e mars",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := datefmt.Format(instant, tt.pattern, tt.opts)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_UnknownLocale(t *testing.T) {
	t.Parallel()

	_, err := datefmt.Format(instant, "YYYY", datefmt.Options{Locale: "zh"})
	require.ErrorIs(t, err, locale.ErrUnknownLocale)
}

func TestFormatter_WithRegistry(t *testing.T) {
	t.Parallel()

	reg, err := locale.NewRegistry(locale.WithDefaultLocale("fr"))
	require.NoError(t, err)

	f := datefmt.New(datefmt.WithRegistry(reg))

	got, err := f.Format(instant, "D MMMM", datefmt.Options{})
	require.NoError(t, err)
	require.Equal(t, "5 mars", got)
}
