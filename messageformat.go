package propcat

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/loopcontext/propcat/internal/plural"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatPattern substitutes index placeholders in pattern.
//
// Supported elements: {n}, {n,number[,integer|percent|currency|pattern]},
// {n,date[,short|medium|long|full|pattern]}, {n,time[,...]},
// {n,choice,limit#text|...}, {n,plural,[offset:k] =v{...} keyword{...}} and
// {n,select,key{...} other{...}}. A single quote starts literal text and a
// doubled quote is an apostrophe. Indices without an argument are left in
// place and malformed elements are copied verbatim. An unmatched '{' copies
// the rest of the pattern unchanged. Formatting never fails.
func FormatPattern(locale Locale, pattern string, args ...any) string {
	f := &patternFormatter{locale: locale, tag: locale.Tag(), args: args}
	var b strings.Builder
	f.format(&b, pattern)
	return b.String()
}

type patternFormatter struct {
	locale  Locale
	tag     language.Tag
	printer *message.Printer
	args    []any
}

func (f *patternFormatter) print(value any) string {
	if f.printer == nil {
		f.printer = message.NewPrinter(f.tag)
	}
	return f.printer.Sprintf("%v", value)
}

func (f *patternFormatter) format(b *strings.Builder, pattern string) {
	inQuote := false
	for i := 0; i < len(pattern); i++ {
		ch := pattern[i]
		switch {
		case ch == '\'':
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				b.WriteByte('\'')
				i++
			} else {
				inQuote = !inQuote
			}
		case ch == '{' && !inQuote:
			end, ok := scanElement(pattern, i+1)
			if !ok {
				b.WriteString(pattern[i:])
				return
			}
			f.element(b, pattern[i+1:end], pattern[i:end+1])
			i = end
		default:
			b.WriteByte(ch)
		}
	}
}

// scanElement returns the index of the brace closing the element opened just
// before start.
func scanElement(pattern string, start int) (int, bool) {
	depth := 0
	inQuote := false
	for i := start; i < len(pattern); i++ {
		ch := pattern[i]
		if inQuote {
			if ch == '\'' {
				inQuote = false
			}
			continue
		}
		switch ch {
		case '\'':
			inQuote = true
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return i, true
			}
			depth--
		}
	}
	return 0, false
}

func (f *patternFormatter) element(b *strings.Builder, body string, raw string) {
	parts := strings.SplitN(body, ",", 3)
	index, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || index < 0 {
		b.WriteString(raw)
		return
	}
	if index >= len(f.args) {
		b.WriteString("{" + strconv.Itoa(index) + "}")
		return
	}
	arg := f.args[index]
	if arg == nil {
		b.WriteString("null")
		return
	}

	kind, style := "", ""
	if len(parts) > 1 {
		kind = strings.ToLower(strings.TrimSpace(parts[1]))
	}
	if len(parts) > 2 {
		style = parts[2]
	}

	switch kind {
	case "":
		b.WriteString(f.plain(arg))
	case "number":
		b.WriteString(f.number(arg, strings.TrimSpace(style)))
	case "date":
		b.WriteString(f.dateTime(arg, strings.TrimSpace(style), dateOnly))
	case "time":
		b.WriteString(f.dateTime(arg, strings.TrimSpace(style), timeOnly))
	case "choice":
		f.choice(b, arg, style)
	case "plural":
		f.plural(b, arg, style)
	case "select":
		f.selectOption(b, arg, style)
	default:
		b.WriteString(raw)
	}
}

func (f *patternFormatter) plain(arg any) string {
	switch typed := arg.(type) {
	case string:
		return typed
	case time.Time:
		return f.dateTime(typed, "", dateAndTime)
	case *time.Time:
		return f.dateTime(typed, "", dateAndTime)
	case fmt.Stringer:
		return typed.String()
	case error:
		return typed.Error()
	}
	if isNumber(arg) {
		return f.print(number.Decimal(arg, number.MaxFractionDigits(3)))
	}
	return fmt.Sprint(arg)
}

func (f *patternFormatter) number(arg any, style string) string {
	if !isNumber(arg) {
		return f.plain(arg)
	}
	switch strings.ToLower(style) {
	case "":
		return f.print(number.Decimal(arg, number.MaxFractionDigits(3)))
	case "integer":
		return f.print(number.Decimal(arg, number.MaxFractionDigits(0)))
	case "percent":
		return f.print(number.Percent(arg))
	case "currency":
		unit, _ := currency.FromTag(f.tag)
		return f.print(currency.Symbol(unit.Amount(arg)))
	default:
		return f.decimalPattern(arg, style)
	}
}

// decimalPattern handles the common subset of decimal patterns: literal
// prefix and suffix, grouping when the pattern has a comma, and fraction
// digit bounds from 0 and # after the point. A % suffix scales by 100.
func (f *patternFormatter) decimalPattern(arg any, pattern string) string {
	start := strings.IndexAny(pattern, "#0")
	if start < 0 {
		return f.print(number.Decimal(arg))
	}
	end := strings.LastIndexAny(pattern, "#0") + 1
	prefix, body, suffix := pattern[:start], pattern[start:end], pattern[end:]

	var opts []number.Option
	if !strings.Contains(body, ",") {
		opts = append(opts, number.NoSeparator())
	}
	if dot := strings.IndexByte(body, '.'); dot >= 0 {
		fraction := body[dot+1:]
		opts = append(opts,
			number.MinFractionDigits(strings.Count(fraction, "0")),
			number.MaxFractionDigits(strings.Count(fraction, "0")+strings.Count(fraction, "#")))
	} else {
		opts = append(opts, number.MaxFractionDigits(0))
	}

	value := arg
	if strings.Contains(suffix, "%") {
		if v, ok := toFloat(arg); ok {
			value = v * 100
		}
	}
	return prefix + f.print(number.Decimal(value, opts...)) + suffix
}

// choice selects the text of the last limit not greater than the argument,
// or the first text when the argument is below every limit. "a#" matches
// values >= a and "a<" values > a.
func (f *patternFormatter) choice(b *strings.Builder, arg any, style string) {
	value, ok := toFloat(arg)
	if !ok {
		b.WriteString(f.plain(arg))
		return
	}
	selected := ""
	matched := false
	for _, option := range splitChoices(style) {
		sep := strings.IndexAny(option, "#<≤")
		if sep < 0 {
			continue
		}
		limit, ok := parseLimit(strings.TrimSpace(option[:sep]))
		if !ok {
			continue
		}
		text := strings.TrimPrefix(option[sep:], "≤")
		if text == option[sep:] {
			text = option[sep+1:]
		}
		if option[sep] == '<' {
			limit = math.Nextafter(limit, math.Inf(1))
		}
		if !(value >= limit) {
			if !matched {
				selected = text
			}
			break
		}
		selected = text
		matched = true
	}
	if strings.Contains(selected, "{") {
		f.format(b, selected)
		return
	}
	b.WriteString(unquoteLiteral(selected))
}

func splitChoices(style string) []string {
	var choices []string
	depth := 0
	inQuote := false
	last := 0
	for i := 0; i < len(style); i++ {
		switch ch := style[i]; {
		case ch == '\'':
			inQuote = !inQuote
		case inQuote:
		case ch == '{':
			depth++
		case ch == '}':
			depth--
		case ch == '|' && depth == 0:
			choices = append(choices, style[last:i])
			last = i + 1
		}
	}
	return append(choices, style[last:])
}

func parseLimit(s string) (float64, bool) {
	switch s {
	case "\u221E", "inf", "+inf":
		return math.Inf(1), true
	case "-\u221E", "-inf":
		return math.Inf(-1), true
	}
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}

func unquoteLiteral(s string) string {
	if !strings.Contains(s, "'") {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\'' {
			if i+1 < len(s) && s[i+1] == '\'' {
				b.WriteByte('\'')
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// plural picks an exact =N match, then the CLDR category for the locale,
// then "other". A # in the chosen text is the number minus the offset.
func (f *patternFormatter) plural(b *strings.Builder, arg any, style string) {
	value, ok := toFloat(arg)
	if !ok {
		b.WriteString(f.plain(arg))
		return
	}
	style = strings.TrimSpace(style)
	offset := 0.0
	if strings.HasPrefix(style, "offset:") {
		rest := strings.TrimPrefix(style, "offset:")
		end := strings.IndexFunc(rest, func(r rune) bool { return r == ' ' || r == '\t' || r == '\n' || r == '=' })
		if end < 0 {
			end = len(rest)
		}
		if parsed, err := strconv.ParseFloat(rest[:end], 64); err == nil {
			offset = parsed
		}
		style = rest[end:]
	}

	options := parseOptions(style)
	text, ok := options["="+strconv.FormatFloat(value, 'f', -1, 64)]
	if !ok {
		text, ok = options[plural.Form(f.locale.String(), value-offset)]
	}
	if !ok {
		text, ok = options["other"]
	}
	if !ok {
		b.WriteString(f.plain(arg))
		return
	}
	hash := f.print(number.Decimal(value-offset, number.MaxFractionDigits(3)))
	f.format(b, replaceHash(text, hash))
}

func (f *patternFormatter) selectOption(b *strings.Builder, arg any, style string) {
	options := parseOptions(style)
	text, ok := options[f.plain(arg)]
	if !ok {
		text, ok = options["other"]
	}
	if !ok {
		b.WriteString(f.plain(arg))
		return
	}
	f.format(b, text)
}

// parseOptions reads "key{text} key{text}" sequences.
func parseOptions(style string) map[string]string {
	options := make(map[string]string)
	i := 0
	for i < len(style) {
		for i < len(style) && isSpace(style[i]) {
			i++
		}
		open := strings.IndexByte(style[i:], '{')
		if open < 0 {
			break
		}
		key := strings.TrimSpace(style[i : i+open])
		end, ok := scanElement(style, i+open+1)
		if !ok {
			break
		}
		if key != "" {
			if _, exists := options[key]; !exists {
				options[key] = style[i+open+1 : end]
			}
		}
		i = end + 1
	}
	return options
}

// replaceHash substitutes # outside nested elements and quoted text.
func replaceHash(text string, value string) string {
	if !strings.Contains(text, "#") {
		return text
	}
	var b strings.Builder
	depth := 0
	inQuote := false
	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch {
		case ch == '\'':
			inQuote = !inQuote
			b.WriteByte(ch)
		case inQuote:
			b.WriteByte(ch)
		case ch == '{':
			depth++
			b.WriteByte(ch)
		case ch == '}':
			depth--
			b.WriteByte(ch)
		case ch == '#' && depth == 0:
			b.WriteString(value)
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isNumber(value any) bool {
	_, ok := toFloat(value)
	return ok
}

func toFloat(value any) (float64, bool) {
	switch typed := value.(type) {
	case int:
		return float64(typed), true
	case int8:
		return float64(typed), true
	case int16:
		return float64(typed), true
	case int32:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case uint:
		return float64(typed), true
	case uint8:
		return float64(typed), true
	case uint16:
		return float64(typed), true
	case uint32:
		return float64(typed), true
	case uint64:
		return float64(typed), true
	case float32:
		return float64(typed), true
	case float64:
		return typed, true
	default:
		return 0, false
	}
}
