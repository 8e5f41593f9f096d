package locale

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/go-playground/locales"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/yaml.v3"
)

//go:embed catalogs
var builtinCatalogs embed.FS

const (
	singleForm = "single"
	otherForm  = "other"

	keySuffixFuture = "suffix.future"
	keySuffixPast   = "suffix.past"
	keyOrdinal      = "ordinal"
)

// Forms maps a CLDR plural category ("one", "few", "other", ...) to a phrase.
// The special "single" form is used verbatim when the count is exactly 1,
// which allows phrases such as "less than a minute" that carry no number.
// Every plural form must contain the {0} placeholder.
type Forms map[string]string

// Suffix holds the templates wrapping a relative distance.
type Suffix struct {
	Future string `yaml:"future"`
	Past   string `yaml:"past"`
}

// Meridiem holds the day period labels.
type Meridiem struct {
	AM     string `yaml:"am"`
	PM     string `yaml:"pm"`
	AMLong string `yaml:"am_long"`
	PMLong string `yaml:"pm_long"`
}

// Catalog is the phrase set of a single language.
type Catalog struct {
	Distance map[string]Forms `yaml:"distance"`
	Ordinal  Forms            `yaml:"ordinal"`
	Suffix   Suffix           `yaml:"suffix"`
	Meridiem Meridiem         `yaml:"meridiem"`
}

// ParseCatalog decodes a YAML catalog and validates it.
func ParseCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if err := c.validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

func (c Catalog) validate() error {
	if len(c.Distance) == 0 {
		return fmt.Errorf("%w: no distance phrases", ErrInvalidCatalog)
	}
	for key, forms := range c.Distance {
		if err := forms.validate(); err != nil {
			return fmt.Errorf("%w: phrase %q: %v", ErrInvalidCatalog, key, err)
		}
	}
	if len(c.Ordinal) > 0 {
		if err := c.Ordinal.validate(); err != nil {
			return fmt.Errorf("%w: ordinal: %v", ErrInvalidCatalog, err)
		}
	}
	if !strings.Contains(c.Suffix.Future, "{0}") || !strings.Contains(c.Suffix.Past, "{0}") {
		return fmt.Errorf("%w: suffix templates must contain {0}", ErrInvalidCatalog)
	}
	return nil
}

// validate requires an "other" form whenever plural forms are present, so every
// plural rule of a language resolves to some text.
func (f Forms) validate() error {
	var plural bool
	for name, text := range f {
		if name == singleForm {
			continue
		}
		plural = true
		if !strings.Contains(text, "{0}") {
			return fmt.Errorf("form %q must contain {0}", name)
		}
	}
	if _, ok := f[otherForm]; plural && !ok {
		return fmt.Errorf("missing %q form", otherForm)
	}
	if _, ok := f[singleForm]; !plural && !ok {
		return errors.New("no forms")
	}
	return nil
}

// install registers the catalog phrases on a translator. Plural forms are
// added for every cardinal rule the language knows, falling back to "other".
func (c Catalog) install(trans ut.Translator) error {
	for key, forms := range c.Distance {
		if single, ok := forms[singleForm]; ok {
			if err := trans.Add(key+"."+singleForm, single, false); err != nil {
				return fmt.Errorf("%w: %s: %v", ErrInvalidCatalog, key, err)
			}
		}
		for _, rule := range trans.PluralsCardinal() {
			text, ok := pick(forms, rule)
			if !ok {
				continue
			}
			if err := trans.AddCardinal(key, text, rule, false); err != nil {
				return fmt.Errorf("%w: %s: %v", ErrInvalidCatalog, key, err)
			}
		}
	}

	for _, rule := range trans.PluralsOrdinal() {
		text, ok := pick(c.Ordinal, rule)
		if !ok {
			continue
		}
		if err := trans.AddOrdinal(keyOrdinal, text, rule, false); err != nil {
			return fmt.Errorf("%w: ordinal: %v", ErrInvalidCatalog, err)
		}
	}

	if err := trans.Add(keySuffixFuture, c.Suffix.Future, false); err != nil {
		return fmt.Errorf("%w: suffix: %v", ErrInvalidCatalog, err)
	}
	if err := trans.Add(keySuffixPast, c.Suffix.Past, false); err != nil {
		return fmt.Errorf("%w: suffix: %v", ErrInvalidCatalog, err)
	}
	return nil
}

func pick(forms Forms, rule locales.PluralRule) (string, bool) {
	if text, ok := forms[ruleName(rule)]; ok {
		return text, true
	}
	text, ok := forms[otherForm]
	return text, ok
}

func ruleName(rule locales.PluralRule) string {
	switch rule {
	case locales.PluralRuleZero:
		return "zero"
	case locales.PluralRuleOne:
		return "one"
	case locales.PluralRuleTwo:
		return "two"
	case locales.PluralRuleFew:
		return "few"
	case locales.PluralRuleMany:
		return "many"
	default:
		return otherForm
	}
}

// loadCatalogDir reads every {lang}.yaml (or .yml) file at the root of fsys.
func loadCatalogDir(fsys fs.FS) (map[string]Catalog, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	out := make(map[string]Catalog, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(path.Ext(e.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		data, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", e.Name(), err)
		}

		c, err := ParseCatalog(data)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", e.Name(), err)
		}
		out[normalizeKey(strings.TrimSuffix(e.Name(), path.Ext(e.Name())))] = c
	}
	return out, nil
}
