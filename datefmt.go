package propcat

import (
	"strings"
	"time"
)

type dateTimeMode int

const (
	dateOnly dateTimeMode = iota
	timeOnly
	dateAndTime
)

type fieldOrder int

const (
	orderMDY fieldOrder = iota
	orderDMY
	orderYMD
)

// dateOrder is the conventional field order for a locale. The zero locale
// follows US conventions.
func dateOrder(locale Locale) fieldOrder {
	switch locale.Language {
	case "", "en":
		switch locale.Country {
		case "", "US", "PH", "CA":
			return orderMDY
		}
		return orderDMY
	case "zh", "ja", "ko", "hu", "lt", "mn":
		return orderYMD
	default:
		return orderDMY
	}
}

var dateLayouts = map[fieldOrder]map[string]string{
	orderMDY: {
		"short":  "1/2/06",
		"medium": "Jan 2, 2006",
		"long":   "January 2, 2006",
		"full":   "Monday, January 2, 2006",
	},
	orderDMY: {
		"short":  "02/01/06",
		"medium": "2 Jan 2006",
		"long":   "2 January 2006",
		"full":   "Monday, 2 January 2006",
	},
	orderYMD: {
		"short":  "06/01/02",
		"medium": "2006-01-02",
		"long":   "2006-01-02",
		"full":   "2006-01-02 Monday",
	},
}

var timeLayouts = map[bool]map[string]string{
	true: {
		"short":  "3:04 PM",
		"medium": "3:04:05 PM",
		"long":   "3:04:05 PM MST",
		"full":   "3:04:05 PM MST",
	},
	false: {
		"short":  "15:04",
		"medium": "15:04:05",
		"long":   "15:04:05 MST",
		"full":   "15:04:05 MST",
	},
}

func (f *patternFormatter) dateTime(arg any, style string, mode dateTimeMode) string {
	var t time.Time
	switch typed := arg.(type) {
	case time.Time:
		t = typed
	case *time.Time:
		if typed == nil {
			return "null"
		}
		t = *typed
	default:
		return f.plain(arg)
	}

	order := dateOrder(f.locale)
	twelveHour := order == orderMDY
	switch mode {
	case dateAndTime:
		return t.Format(dateLayouts[order]["short"] + " " + timeLayouts[twelveHour]["short"])
	case timeOnly:
		key := strings.ToLower(style)
		if key == "" {
			key = "medium"
		}
		if layout, ok := timeLayouts[twelveHour][key]; ok {
			return t.Format(layout)
		}
	default:
		key := strings.ToLower(style)
		if key == "" {
			key = "medium"
		}
		if layout, ok := dateLayouts[order][key]; ok {
			return t.Format(layout)
		}
	}
	return formatDatePattern(t, style)
}

// formatDatePattern renders a date pattern made of letter runs (yyyy, MM,
// dd, HH, mm, ss, a, EEEE, z ...) and quoted literals. Runs are formatted one
// at a time so literal text is never read as a layout.
func formatDatePattern(t time.Time, pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); {
		ch := pattern[i]
		switch {
		case ch == '\'':
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				b.WriteByte('\'')
				i += 2
				continue
			}
			end := strings.IndexByte(pattern[i+1:], '\'')
			if end < 0 {
				b.WriteString(pattern[i+1:])
				return b.String()
			}
			b.WriteString(pattern[i+1 : i+1+end])
			i += end + 2
		case isASCIILetter(ch):
			j := i
			for j < len(pattern) && pattern[j] == ch {
				j++
			}
			b.WriteString(formatDateField(t, ch, j-i))
			i = j
		default:
			b.WriteByte(ch)
			i++
		}
	}
	return b.String()
}

func formatDateField(t time.Time, letter byte, count int) string {
	switch letter {
	case 'y':
		if count == 2 {
			return t.Format("06")
		}
		return t.Format("2006")
	case 'M':
		switch {
		case count >= 4:
			return t.Format("January")
		case count == 3:
			return t.Format("Jan")
		case count == 2:
			return t.Format("01")
		default:
			return t.Format("1")
		}
	case 'd':
		if count >= 2 {
			return t.Format("02")
		}
		return t.Format("2")
	case 'E':
		if count >= 4 {
			return t.Format("Monday")
		}
		return t.Format("Mon")
	case 'H':
		return t.Format("15")
	case 'h':
		if count >= 2 {
			return t.Format("03")
		}
		return t.Format("3")
	case 'm':
		if count >= 2 {
			return t.Format("04")
		}
		return t.Format("4")
	case 's':
		if count >= 2 {
			return t.Format("05")
		}
		return t.Format("5")
	case 'S':
		ms := t.Format(".000")[1:]
		if count < len(ms) {
			return ms[:count]
		}
		return ms
	case 'a':
		return t.Format("PM")
	case 'z':
		return t.Format("MST")
	case 'Z':
		return t.Format("-0700")
	case 'X':
		return t.Format("Z07:00")
	default:
		return strings.Repeat(string(letter), count)
	}
}

func isASCIILetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
