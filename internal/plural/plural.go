// Package plural selects CLDR plural categories for the {n,plural,...}
// message element. Categories: "zero", "one", "two", "few", "many", "other".
package plural

import (
	"math"
	"strings"
)

// Form returns the plural category of n for a locale written either as
// "en_US" or "en-US"; only the language part is used. Languages without a
// rule use "other". Fractional values are "other" except in languages whose
// "one" covers the whole [0, 2) range.
func Form(locale string, n float64) string {
	base := strings.ToLower(strings.TrimSpace(locale))
	if idx := strings.IndexAny(base, "-_"); idx >= 0 {
		base = base[:idx]
	}
	n = math.Abs(n)

	switch base {
	case "fr", "pt", "hy", "kab":
		return formZeroOneAsOne(n)
	}

	i, whole := integer(n)
	if !whole {
		return "other"
	}
	switch base {
	case "ar":
		return formArabic(i)
	case "ru", "uk", "be", "sr", "hr", "bs", "sh":
		return formEastSlavic(i)
	case "pl":
		return formPolish(i)
	case "cy":
		return formWelsh(i)
	case "he", "iw":
		return formHebrew(i)
	case "en", "es", "de", "it", "nl", "no", "nb", "sv", "da", "fi", "tr", "el", "hi", "ca", "et", "bg":
		return formOneOther(i)
	default:
		return "other"
	}
}

func integer(n float64) (int64, bool) {
	if n != math.Trunc(n) || n > math.MaxInt64 {
		return 0, false
	}
	return int64(n), true
}

func formZeroOneAsOne(n float64) string {
	if n < 2 {
		return "one"
	}
	return "other"
}

func formOneOther(n int64) string {
	if n == 1 {
		return "one"
	}
	return "other"
}

func formArabic(n int64) string {
	n100 := n % 100
	switch {
	case n == 0:
		return "zero"
	case n == 1:
		return "one"
	case n == 2:
		return "two"
	case n100 >= 3 && n100 <= 10:
		return "few"
	case n100 >= 11 && n100 <= 99:
		return "many"
	default:
		return "other"
	}
}

func formEastSlavic(n int64) string {
	n10, n100 := n%10, n%100
	switch {
	case n10 == 1 && n100 != 11:
		return "one"
	case n10 >= 2 && n10 <= 4 && (n100 < 12 || n100 > 14):
		return "few"
	default:
		return "many"
	}
}

func formPolish(n int64) string {
	n10, n100 := n%10, n%100
	switch {
	case n == 1:
		return "one"
	case n10 >= 2 && n10 <= 4 && (n100 < 12 || n100 > 14):
		return "few"
	default:
		return "many"
	}
}

func formWelsh(n int64) string {
	switch n {
	case 0:
		return "zero"
	case 1:
		return "one"
	case 2:
		return "two"
	case 3:
		return "few"
	case 6:
		return "many"
	default:
		return "other"
	}
}

func formHebrew(n int64) string {
	switch {
	case n == 1:
		return "one"
	case n == 2:
		return "two"
	default:
		return "other"
	}
}
