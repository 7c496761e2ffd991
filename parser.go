package propcat

import (
	"fmt"
	"io"
	"strings"

	"github.com/magiconair/properties"
	"golang.org/x/text/encoding/htmlindex"
)

//go:generate mockgen -source=$GOFILE -package mock_propcat -destination=test/mock/$GOFILE

// DefaultEncoding is used when no message encoding is configured.
const DefaultEncoding = "UTF-8"

// PropertyParser turns an encoded byte stream into a flat key/value map.
type PropertyParser interface {
	Parse(r io.Reader, encoding string) (map[string]string, error)
}

// PropertiesParser reads Java-style .properties files. ${...} references are
// kept verbatim.
type PropertiesParser struct{}

func (PropertiesParser) Parse(r io.Reader, encoding string) (map[string]string, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	enc, buf, err := transcode(buf, encoding)
	if err != nil {
		return nil, err
	}
	loader := properties.Loader{Encoding: enc, DisableExpansion: true}
	props, err := loader.LoadBytes(buf)
	if err != nil {
		return nil, err
	}
	return props.Map(), nil
}

// transcode picks the properties encoding for buf, converting charsets the
// properties package does not know to UTF-8.
func transcode(buf []byte, encoding string) (properties.Encoding, []byte, error) {
	switch normalizeEncoding(encoding) {
	case "", "utf8":
		return properties.UTF8, buf, nil
	case "iso88591", "latin1", "l1":
		return properties.ISO_8859_1, buf, nil
	}
	enc, err := htmlindex.Get(encoding)
	if err != nil {
		return properties.UTF8, nil, fmt.Errorf("unsupported encoding %q: %w", encoding, err)
	}
	decoded, err := enc.NewDecoder().Bytes(buf)
	if err != nil {
		return properties.UTF8, nil, fmt.Errorf("decode %s: %w", encoding, err)
	}
	return properties.UTF8, decoded, nil
}

func normalizeEncoding(encoding string) string {
	encoding = strings.ToLower(strings.TrimSpace(encoding))
	return strings.NewReplacer("-", "", "_", "").Replace(encoding)
}
