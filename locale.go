package propcat

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale is a structured locale whose textual form is
// language[_COUNTRY[_VARIANT]], the form used in catalog file names.
type Locale struct {
	Language string
	Country  string
	Variant  string
}

// ParseLocale accepts both underscore ("en_US") and BCP 47 ("en-US") forms.
// Everything after the second separator is the variant, and an empty country
// slot is kept ("de__POSIX").
func ParseLocale(s string) Locale {
	s = strings.TrimSpace(strings.ReplaceAll(s, "-", "_"))
	if s == "" {
		return Locale{}
	}
	parts := strings.SplitN(s, "_", 3)
	loc := Locale{Language: strings.ToLower(strings.TrimSpace(parts[0]))}
	if len(parts) > 1 {
		loc.Country = strings.ToUpper(strings.TrimSpace(parts[1]))
	}
	if len(parts) > 2 {
		loc.Variant = strings.TrimSpace(parts[2])
	}
	return loc
}

// LocaleFromTag converts a language tag. Scripts are dropped since they have
// no place in the file naming convention.
func LocaleFromTag(tag language.Tag) Locale {
	if tag == language.Und {
		return Locale{}
	}
	base, _ := tag.Base()
	loc := Locale{Language: base.String()}
	if region, conf := tag.Region(); conf == language.Exact {
		loc.Country = region.String()
	}
	if variants := tag.Variants(); len(variants) > 0 {
		names := make([]string, 0, len(variants))
		for _, v := range variants {
			names = append(names, v.String())
		}
		loc.Variant = strings.Join(names, "_")
	}
	return loc
}

// IsZero reports whether no locale component is set.
func (l Locale) IsZero() bool {
	return l.Language == "" && l.Country == "" && l.Variant == ""
}

// String renders the locale as language[_COUNTRY[_VARIANT]]. A variant
// without a country keeps the empty slot ("de__POSIX").
func (l Locale) String() string {
	if l.Variant != "" {
		return l.Language + "_" + l.Country + "_" + l.Variant
	}
	if l.Country != "" {
		return l.Language + "_" + l.Country
	}
	return l.Language
}

// Tag returns the closest language tag, or language.Und when the locale
// cannot be represented.
func (l Locale) Tag() language.Tag {
	if l.Language == "" {
		return language.Und
	}
	s := l.Language
	if l.Country != "" {
		s += "-" + l.Country
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und
	}
	return tag
}

// Chain lists the file name suffixes tried for this locale, most specific
// first, always ending with the empty suffix.
func (l Locale) Chain() []string {
	return suffixChain(localeSuffix(l.String()))
}

func localeSuffix(locale string) string {
	if locale == "" {
		return ""
	}
	return "_" + locale
}

func suffixChain(suffix string) []string {
	chain := []string{suffix}
	for suffix != "" {
		i := strings.LastIndexByte(suffix, '_')
		if i < 0 {
			break
		}
		suffix = suffix[:i]
		chain = append(chain, suffix)
	}
	return chain
}

// suffixLocale turns a suffix back into the locale string it was built from.
func suffixLocale(suffix string) string {
	return strings.TrimPrefix(suffix, "_")
}

// ContextKey is the type of context keys read by MessageWithCtx.
type ContextKey string

// LocaleContextKey holds the request locale. Values may be a Locale, a
// language.Tag, a fmt.Stringer or a string.
const LocaleContextKey ContextKey = "locale"

// WithLocale returns a context carrying locale for MessageWithCtx.
func WithLocale(ctx context.Context, locale Locale) context.Context {
	return context.WithValue(ctx, LocaleContextKey, locale)
}

func localeFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	value := ctx.Value(LocaleContextKey)
	if value == nil {
		// plain string keys are accepted for callers that never adopted ContextKey
		value = ctx.Value(string(LocaleContextKey))
	}
	return localeString(value)
}

func localeString(value any) (string, bool) {
	switch typed := value.(type) {
	case nil:
		return "", false
	case Locale:
		if typed.IsZero() {
			return "", false
		}
		return typed.String(), true
	case *Locale:
		if typed == nil || typed.IsZero() {
			return "", false
		}
		return typed.String(), true
	case language.Tag:
		if typed == language.Und {
			return "", false
		}
		return LocaleFromTag(typed).String(), true
	case string:
		return typed, true
	case fmt.Stringer:
		return typed.String(), true
	default:
		return fmt.Sprintf("%v", typed), true
	}
}
