package locale

import (
	"fmt"
	"io/fs"
	"maps"
	"strings"
	"sync"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/ar"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/sk"
	ut "github.com/go-playground/universal-translator"
	"golang.org/x/text/language"
)

// DefaultLocale is the locale used when none is requested.
const DefaultLocale = "en"

// maxAcceptLanguageLength prevents oversized Accept-Language headers from being parsed.
const maxAcceptLanguageLength = 4096

// Registry resolves locale tags to Locales.
// It is immutable after creation, making it safe for concurrent use.
type Registry struct {
	locales  map[string]*Locale
	ordered  []*Locale
	fallback *Locale
	matcher  language.Matcher
}

type config struct {
	defaultLocale string
	calendars     []locales.Translator
	catalogs      map[string]Catalog
}

// Option configures the Registry during construction.
type Option func(*config) error

// WithDefaultLocale sets the fallback locale. It must be one of the registered calendars.
func WithDefaultLocale(tag string) Option {
	return func(c *config) error {
		if tag == "" {
			return fmt.Errorf("%w: empty default locale", ErrUnknownLocale)
		}
		c.defaultLocale = normalizeKey(tag)
		return nil
	}
}

// WithCalendars registers additional CLDR calendars, e.g. pl.New() or ja.New().
func WithCalendars(calendars ...locales.Translator) Option {
	return func(c *config) error {
		for _, cal := range calendars {
			if cal != nil {
				c.calendars = append(c.calendars, cal)
			}
		}
		return nil
	}
}

// WithCatalog registers or replaces the phrase catalog of a language.
func WithCatalog(tag string, catalog Catalog) Option {
	return func(c *config) error {
		if err := catalog.validate(); err != nil {
			return err
		}
		c.catalogs[normalizeKey(tag)] = catalog
		return nil
	}
}

// WithCatalogFS loads catalogs from YAML files at the root of fsys.
// File convention: {lang}.yaml or {lang}.yml
//
// Example structure:
//
//	en.yaml
//	pt_br.yml
func WithCatalogFS(fsys fs.FS) Option {
	return func(c *config) error {
		loaded, err := loadCatalogDir(fsys)
		if err != nil {
			return err
		}
		maps.Copy(c.catalogs, loaded)
		return nil
	}
}

// NewRegistry creates a Registry with the built-in calendars (en, es, fr, de, sk, ar)
// and phrase catalogs (en, es, fr), extended by the given options.
func NewRegistry(opts ...Option) (*Registry, error) {
	sub, err := fs.Sub(builtinCatalogs, "catalogs")
	if err != nil {
		return nil, err
	}
	builtin, err := loadCatalogDir(sub)
	if err != nil {
		return nil, err
	}

	cfg := &config{
		defaultLocale: DefaultLocale,
		calendars:     []locales.Translator{en.New(), es.New(), fr.New(), de.New(), sk.New(), ar.New()},
		catalogs:      builtin,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	return build(cfg)
}

func build(cfg *config) (*Registry, error) {
	calendars := dedupe(cfg.calendars)
	if len(calendars) == 0 {
		return nil, ErrNoCalendars
	}

	var fallbackCal locales.Translator
	for _, cal := range calendars {
		if normalizeKey(cal.Locale()) == cfg.defaultLocale {
			fallbackCal = cal
			break
		}
	}
	if fallbackCal == nil {
		return nil, fmt.Errorf("%w: default %q has no calendar", ErrUnknownLocale, cfg.defaultLocale)
	}
	if _, ok := cfg.catalogs[cfg.defaultLocale]; !ok {
		return nil, fmt.Errorf("%w: default %q has no catalog", ErrInvalidCatalog, cfg.defaultLocale)
	}

	uni := ut.New(fallbackCal, calendars...)

	phrases := make(map[string]ut.Translator, len(cfg.catalogs))
	for _, cal := range calendars {
		key := normalizeKey(cal.Locale())
		catalog, ok := cfg.catalogs[key]
		if !ok {
			continue
		}
		trans, found := uni.GetTranslator(cal.Locale())
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrUnknownLocale, cal.Locale())
		}
		if err := catalog.install(trans); err != nil {
			return nil, fmt.Errorf("%s: %w", cal.Locale(), err)
		}
		phrases[key] = trans
	}

	r := &Registry{
		locales: make(map[string]*Locale, len(calendars)),
	}

	defaultPhrases := phrases[cfg.defaultLocale]
	defaultMeridiem := cfg.catalogs[cfg.defaultLocale].Meridiem
	tags := make([]language.Tag, 0, len(calendars))

	// The default locale goes first so the matcher falls back to it.
	ordered := append([]locales.Translator{fallbackCal}, without(calendars, fallbackCal)...)
	for _, cal := range ordered {
		key := normalizeKey(cal.Locale())

		tag, err := language.Parse(strings.ReplaceAll(cal.Locale(), "_", "-"))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrUnknownLocale, cal.Locale(), err)
		}

		loc := &Locale{
			tag:      tag,
			calendar: cal,
			phrases:  defaultPhrases,
			meridiem: defaultMeridiem,
		}
		if trans, ok := phrases[key]; ok {
			loc.phrases = trans
			loc.meridiem = withMeridiemDefaults(cfg.catalogs[key].Meridiem, defaultMeridiem)
		}

		r.locales[key] = loc
		r.ordered = append(r.ordered, loc)
		tags = append(tags, tag)
	}

	r.fallback = r.ordered[0]
	r.matcher = language.NewMatcher(tags)
	return r, nil
}

// Lookup resolves a tag such as "sk", "en-US" or "pt_BR".
// It tries the exact locale first, then the base language.
// An empty tag resolves to the default locale.
func (r *Registry) Lookup(tag string) (*Locale, error) {
	if tag == "" {
		return r.fallback, nil
	}

	if loc, ok := r.locales[normalizeKey(tag)]; ok {
		return loc, nil
	}

	parsed, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnknownLocale, tag, err)
	}
	base, _ := parsed.Base()
	if loc, ok := r.locales[normalizeKey(base.String())]; ok {
		return loc, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, tag)
}

// Match returns the best locale for an Accept-Language header value.
// Falls back to the default locale when nothing matches.
func (r *Registry) Match(acceptLanguage string) *Locale {
	if acceptLanguage == "" || len(acceptLanguage) > maxAcceptLanguageLength {
		return r.fallback
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return r.fallback
	}

	_, idx, confidence := r.matcher.Match(tags...)
	if confidence == language.No || idx < 0 || idx >= len(r.ordered) {
		return r.fallback
	}
	return r.ordered[idx]
}

// Default returns the default locale.
func (r *Registry) Default() *Locale {
	return r.fallback
}

// Locales returns all registered locales, default first.
func (r *Registry) Locales() []*Locale {
	out := make([]*Locale, len(r.ordered))
	copy(out, r.ordered)
	return out
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the shared registry with the built-in locales.
// It panics if the embedded catalogs are broken.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		r, err := NewRegistry()
		if err != nil {
			panic(fmt.Sprintf("locale: built-in registry: %v", err))
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// normalizeKey lowercases a tag and uses underscores, the go-playground naming.
func normalizeKey(tag string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(tag), "-", "_"))
}

func dedupe(calendars []locales.Translator) []locales.Translator {
	seen := make(map[string]struct{}, len(calendars))
	out := make([]locales.Translator, 0, len(calendars))
	for _, cal := range calendars {
		key := normalizeKey(cal.Locale())
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, cal)
	}
	return out
}

func without(calendars []locales.Translator, skip locales.Translator) []locales.Translator {
	out := make([]locales.Translator, 0, len(calendars))
	for _, cal := range calendars {
		if cal.Locale() != skip.Locale() {
			out = append(out, cal)
		}
	}
	return out
}

func withMeridiemDefaults(m, def Meridiem) Meridiem {
	if m.AM == "" {
		m.AM = def.AM
	}
	if m.PM == "" {
		m.PM = def.PM
	}
	if m.AMLong == "" {
		m.AMLong = def.AMLong
	}
	if m.PMLong == "" {
		m.PMLong = def.PMLong
	}
	return m
}
