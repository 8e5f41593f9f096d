package locale_test

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/go-playground/locales/pl"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/datefilter/pkg/locale"
)

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	reg := locale.DefaultRegistry()

	t.Run("empty tag resolves to default", func(t *testing.T) {
		t.Parallel()
		loc, err := reg.Lookup("")
		require.NoError(t, err)
		require.Equal(t, "en", loc.String())
	})

	t.Run("exact match", func(t *testing.T) {
		t.Parallel()
		loc, err := reg.Lookup("fr")
		require.NoError(t, err)
		require.Equal(t, "fr", loc.String())
	})

	t.Run("region falls back to base language", func(t *testing.T) {
		t.Parallel()
		loc, err := reg.Lookup("sk-SK")
		require.NoError(t, err)
		require.Equal(t, "sk", loc.String())
	})

	t.Run("case insensitive", func(t *testing.T) {
		t.Parallel()
		loc, err := reg.Lookup("DE")
		require.NoError(t, err)
		require.Equal(t, "de", loc.String())
	})

	t.Run("unknown locale", func(t *testing.T) {
		t.Parallel()
		_, err := reg.Lookup("zh")
		require.ErrorIs(t, err, locale.ErrUnknownLocale)
	})

	t.Run("malformed tag", func(t *testing.T) {
		t.Parallel()
		_, err := reg.Lookup("not a tag!")
		require.ErrorIs(t, err, locale.ErrUnknownLocale)
	})
}

func TestRegistry_Match(t *testing.T) {
	t.Parallel()

	reg := locale.DefaultRegistry()

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"empty header", "", "en"},
		{"exact language", "fr", "fr"},
		{"quality ordering", "sk-SK,sk;q=0.9,en;q=0.8", "sk"},
		{"regional variant", "es-MX", "es"},
		{"unsupported language", "zh-CN", "en"},
		{"garbage", ";;;", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, reg.Match(tt.header).String())
		})
	}
}

func TestLocale_Calendar(t *testing.T) {
	t.Parallel()

	reg := locale.DefaultRegistry()

	en, err := reg.Lookup("en")
	require.NoError(t, err)
	require.Equal(t, "March", en.Calendar().MonthWide(time.March))
	require.Equal(t, "Sunday", en.Calendar().WeekdayWide(time.Sunday))

	de, err := reg.Lookup("de")
	require.NoError(t, err)
	require.Equal(t, "März", de.Calendar().MonthWide(time.March))

	es, err := reg.Lookup("es")
	require.NoError(t, err)
	require.Equal(t, "marzo", es.Calendar().MonthWide(time.March))

	sk, err := reg.Lookup("sk")
	require.NoError(t, err)
	require.NotEmpty(t, sk.Calendar().MonthWide(time.March))
	require.NotEqual(t, "March", sk.Calendar().MonthWide(time.March))
}

func TestLocale_Phrase(t *testing.T) {
	t.Parallel()

	reg := locale.DefaultRegistry()
	en, err := reg.Lookup("en")
	require.NoError(t, err)

	t.Run("plural forms", func(t *testing.T) {
		t.Parallel()

		s, err := en.Phrase("xDays", 3)
		require.NoError(t, err)
		require.Equal(t, "3 days", s)

		s, err = en.Phrase("xMinutes", 1)
		require.NoError(t, err)
		require.Equal(t, "1 minute", s)
	})

	t.Run("single form replaces the number", func(t *testing.T) {
		t.Parallel()

		s, err := en.Phrase("lessThanXMinutes", 1)
		require.NoError(t, err)
		require.Equal(t, "less than a minute", s)

		s, err = en.Phrase("halfAMinute", 1)
		require.NoError(t, err)
		require.Equal(t, "half a minute", s)
	})

	t.Run("missing phrase", func(t *testing.T) {
		t.Parallel()

		_, err := en.Phrase("xFortnights", 2)
		require.ErrorIs(t, err, locale.ErrMissingPhrase)
	})

	t.Run("locales without catalog borrow default phrases", func(t *testing.T) {
		t.Parallel()

		sk, err := reg.Lookup("sk")
		require.NoError(t, err)

		s, err := sk.Phrase("xDays", 2)
		require.NoError(t, err)
		require.Equal(t, "2 days", s)
	})

	t.Run("spanish", func(t *testing.T) {
		t.Parallel()

		es, err := reg.Lookup("es")
		require.NoError(t, err)

		s, err := es.Phrase("aboutXHours", 2)
		require.NoError(t, err)
		require.Equal(t, "alrededor de 2 horas", s)
	})
}

func TestLocale_Suffix(t *testing.T) {
	t.Parallel()

	reg := locale.DefaultRegistry()

	en, err := reg.Lookup("en")
	require.NoError(t, err)

	s, err := en.Suffix("3 days", true)
	require.NoError(t, err)
	require.Equal(t, "in 3 days", s)

	s, err = en.Suffix("3 days", false)
	require.NoError(t, err)
	require.Equal(t, "3 days ago", s)

	fr, err := reg.Lookup("fr")
	require.NoError(t, err)

	s, err = fr.Suffix("3 jours", false)
	require.NoError(t, err)
	require.Equal(t, "il y a 3 jours", s)
}

func TestLocale_Ordinal(t *testing.T) {
	t.Parallel()

	reg := locale.DefaultRegistry()

	en, err := reg.Lookup("en")
	require.NoError(t, err)
	require.Equal(t, "1st", en.Ordinal(1))
	require.Equal(t, "2nd", en.Ordinal(2))
	require.Equal(t, "3rd", en.Ordinal(3))
	require.Equal(t, "4th", en.Ordinal(4))
	require.Equal(t, "11th", en.Ordinal(11))
	require.Equal(t, "21st", en.Ordinal(21))

	fr, err := reg.Lookup("fr")
	require.NoError(t, err)
	require.Equal(t, "1er", fr.Ordinal(1))
	require.Equal(t, "2e", fr.Ordinal(2))
}

func TestLocale_DayPeriod(t *testing.T) {
	t.Parallel()

	en, err := locale.DefaultRegistry().Lookup("en")
	require.NoError(t, err)

	require.Equal(t, "AM", en.DayPeriod(0, false))
	require.Equal(t, "AM", en.DayPeriod(11, false))
	require.Equal(t, "PM", en.DayPeriod(12, false))
	require.Equal(t, "p.m.", en.DayPeriod(23, true))
}

func TestNewRegistry_Options(t *testing.T) {
	t.Parallel()

	t.Run("catalog from fs.FS", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"de.yaml": &fstest.MapFile{Data: []byte(`
distance:
  xDays:
    one: "{0} Tag"
    other: "{0} Tage"
suffix:
  future: "in {0}"
  past: "vor {0}"
`)},
			"README.md": &fstest.MapFile{Data: []byte("ignored")},
		}

		reg, err := locale.NewRegistry(locale.WithCatalogFS(fsys))
		require.NoError(t, err)

		de, err := reg.Lookup("de")
		require.NoError(t, err)

		s, err := de.Phrase("xDays", 2)
		require.NoError(t, err)
		require.Equal(t, "2 Tage", s)

		s, err = de.Suffix("1 Tag", true)
		require.NoError(t, err)
		require.Equal(t, "in 1 Tag", s)
	})

	t.Run("extra calendars", func(t *testing.T) {
		t.Parallel()

		reg, err := locale.NewRegistry(locale.WithCalendars(pl.New()))
		require.NoError(t, err)

		loc, err := reg.Lookup("pl-PL")
		require.NoError(t, err)
		require.Equal(t, "pl", loc.String())
		require.Len(t, reg.Locales(), 7)
	})

	t.Run("default locale", func(t *testing.T) {
		t.Parallel()

		reg, err := locale.NewRegistry(locale.WithDefaultLocale("fr"))
		require.NoError(t, err)
		require.Equal(t, "fr", reg.Default().String())
		require.Equal(t, "fr", reg.Match("zh").String())

		de, err := reg.Lookup("de")
		require.NoError(t, err)
		s, err := de.Phrase("xDays", 2)
		require.NoError(t, err)
		require.Equal(t, "2 jours", s)
	})

	t.Run("default locale without catalog", func(t *testing.T) {
		t.Parallel()

		_, err := locale.NewRegistry(locale.WithDefaultLocale("sk"))
		require.ErrorIs(t, err, locale.ErrInvalidCatalog)
	})

	t.Run("default locale without calendar", func(t *testing.T) {
		t.Parallel()

		_, err := locale.NewRegistry(locale.WithDefaultLocale("ja"))
		require.ErrorIs(t, err, locale.ErrUnknownLocale)
	})

	t.Run("invalid catalog", func(t *testing.T) {
		t.Parallel()

		_, err := locale.NewRegistry(locale.WithCatalog("de", locale.Catalog{
			Distance: map[string]locale.Forms{
				"xDays": {"one": "{0} Tag"},
			},
			Suffix: locale.Suffix{Future: "in {0}", Past: "vor {0}"},
		}))
		require.ErrorIs(t, err, locale.ErrInvalidCatalog)
	})
}

func TestParseCatalog(t *testing.T) {
	t.Parallel()

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()
		_, err := locale.ParseCatalog([]byte("distance: [unclosed"))
		require.ErrorIs(t, err, locale.ErrInvalidCatalog)
	})

	t.Run("suffix without placeholder", func(t *testing.T) {
		t.Parallel()
		_, err := locale.ParseCatalog([]byte(`
distance:
  halfAMinute:
    single: "half a minute"
suffix:
  future: "soon"
  past: "{0} ago"
`))
		require.ErrorIs(t, err, locale.ErrInvalidCatalog)
	})

	t.Run("plural form without placeholder", func(t *testing.T) {
		t.Parallel()
		_, err := locale.ParseCatalog([]byte(`
distance:
  xDays:
    other: "days"
suffix:
  future: "in {0}"
  past: "{0} ago"
`))
		require.ErrorIs(t, err, locale.ErrInvalidCatalog)
	})
}
