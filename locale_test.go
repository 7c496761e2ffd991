package propcat

import (
	"context"
	"reflect"
	"testing"

	"golang.org/x/text/language"
)

func TestParseLocale(t *testing.T) {
	tests := []struct {
		in   string
		want Locale
		str  string
	}{
		{"", Locale{}, ""},
		{"en", Locale{Language: "en"}, "en"},
		{"en_US", Locale{Language: "en", Country: "US"}, "en_US"},
		{"en-us", Locale{Language: "en", Country: "US"}, "en_US"},
		{" pt-BR ", Locale{Language: "pt", Country: "BR"}, "pt_BR"},
		{"es_ES_Traditional", Locale{Language: "es", Country: "ES", Variant: "Traditional"}, "es_ES_Traditional"},
		{"ja_JP_JP_extra", Locale{Language: "ja", Country: "JP", Variant: "JP_extra"}, "ja_JP_JP_extra"},
		{"de__POSIX", Locale{Language: "de", Variant: "POSIX"}, "de__POSIX"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseLocale(tt.in)
			if got != tt.want {
				t.Errorf("ParseLocale(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
			if got.String() != tt.str {
				t.Errorf("String() = %q, want %q", got.String(), tt.str)
			}
		})
	}
}

func TestLocaleStringKeepsEmptyCountrySlot(t *testing.T) {
	loc := Locale{Language: "de", Variant: "POSIX"}
	if got := loc.String(); got != "de__POSIX" {
		t.Errorf("String() = %q, want %q", got, "de__POSIX")
	}
}

func TestLocaleFromTag(t *testing.T) {
	tests := []struct {
		tag  language.Tag
		want string
	}{
		{language.Und, ""},
		{language.English, "en"},
		{language.AmericanEnglish, "en_US"},
		{language.MustParse("pt-BR"), "pt_BR"},
		{language.MustParse("sr-Latn-RS"), "sr_RS"},
	}
	for _, tt := range tests {
		if got := LocaleFromTag(tt.tag).String(); got != tt.want {
			t.Errorf("LocaleFromTag(%v) = %q, want %q", tt.tag, got, tt.want)
		}
	}
}

func TestLocaleTag(t *testing.T) {
	if got := ParseLocale("en_US").Tag(); got != language.AmericanEnglish {
		t.Errorf("Tag() = %v, want en-US", got)
	}
	if got := (Locale{}).Tag(); got != language.Und {
		t.Errorf("zero Tag() = %v, want und", got)
	}
}

func TestSuffixChain(t *testing.T) {
	tests := []struct {
		suffix string
		want   []string
	}{
		{"", []string{""}},
		{"_en", []string{"_en", ""}},
		{"_en_US", []string{"_en_US", "_en", ""}},
		{"_es_ES_Traditional", []string{"_es_ES_Traditional", "_es_ES", "_es", ""}},
		{"_", []string{"_", ""}},
	}
	for _, tt := range tests {
		if got := suffixChain(tt.suffix); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("suffixChain(%q) = %q, want %q", tt.suffix, got, tt.want)
		}
	}
	if got := ParseLocale("en_US").Chain(); !reflect.DeepEqual(got, []string{"_en_US", "_en", ""}) {
		t.Errorf("Chain() = %q", got)
	}
}

func TestLocaleFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		want   string
		wantOK bool
	}{
		{"nil", nil, "", false},
		{"empty", context.Background(), "", false},
		{"locale", WithLocale(context.Background(), ParseLocale("en_US")), "en_US", true},
		{"zero locale", WithLocale(context.Background(), Locale{}), "", false},
		{"tag", context.WithValue(context.Background(), LocaleContextKey, language.BrazilianPortuguese), "pt_BR", true},
		{"string", context.WithValue(context.Background(), LocaleContextKey, "fr_CA"), "fr_CA", true},
		{"plain string key", context.WithValue(context.Background(), "locale", "es"), "es", true},
		{"string kept as is", context.WithValue(context.Background(), LocaleContextKey, "zh_Hant_TW"), "zh_Hant_TW", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := localeFromContext(tt.ctx)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("localeFromContext() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestAmbientLocale(t *testing.T) {
	if _, ok := ambientLocale(nil); ok {
		t.Error("nil resolver should report no locale")
	}
	if _, ok := ambientLocale(MapResolver{}); ok {
		t.Error("missing variable should report no locale")
	}
	got, ok := ambientLocale(MapResolver{LocaleVariable: ParseLocale("en-GB")})
	if !ok || got != "en_GB" {
		t.Errorf("ambientLocale() = (%q, %v), want (en_GB, true)", got, ok)
	}
	got, ok = ambientLocale(ResolverFunc(func(name string) (any, bool) { return "zh_CN", name == LocaleVariable }))
	if !ok || got != "zh_CN" {
		t.Errorf("ambientLocale() = (%q, %v), want (zh_CN, true)", got, ok)
	}
}
