package propcat

import (
	"fmt"
	"strings"
)

// MessageFormat selects how arguments are substituted into catalog values.
type MessageFormat int

const (
	// FormatMessage substitutes index placeholders ({0}, {1,number}, ...).
	// It is the zero value, matching an unset message.format.
	FormatMessage MessageFormat = iota
	// FormatString substitutes printf verbs (%s, %d, ...) in argument order.
	FormatString
)

// ParseMessageFormat maps a message.format option value.
func ParseMessageFormat(name string) (MessageFormat, error) {
	switch strings.TrimSpace(name) {
	case "message":
		return FormatMessage, nil
	case "string":
		return FormatString, nil
	default:
		return 0, newConfigError(optionMessageFormat, name, fmt.Errorf("%w, only \"string\" or \"message\" are supported", ErrUnsupportedFormat))
	}
}

func (f MessageFormat) String() string {
	switch f {
	case FormatMessage:
		return "message"
	case FormatString:
		return "string"
	default:
		return fmt.Sprintf("MessageFormat(%d)", int(f))
	}
}

func (f MessageFormat) valid() bool {
	return f == FormatMessage || f == FormatString
}

// UnmarshalText lets the format appear in YAML and flag values.
func (f *MessageFormat) UnmarshalText(text []byte) error {
	parsed, err := ParseMessageFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

func (f MessageFormat) MarshalText() ([]byte, error) {
	if !f.valid() {
		return nil, newConfigError(optionMessageFormat, f.String(), ErrUnsupportedFormat)
	}
	return []byte(f.String()), nil
}

// Format applies the style to value. locale drives number and date
// sub-formats of FormatMessage and is ignored by FormatString.
func (f MessageFormat) Format(locale Locale, value string, args ...any) string {
	if f == FormatString {
		return fmt.Sprintf(value, args...)
	}
	return FormatPattern(locale, value, args...)
}
