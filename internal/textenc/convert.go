package textenc

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// DecodeError is returned when a byte payload is not valid in the encoding
// it claims to be in.
type DecodeError struct {
	Encoding Encoding
	Reason   string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid %s data: %s", e.Encoding, e.Reason)
}

// utf16be decodes and encodes UTF-16BE without a byte order mark.
var utf16be = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// utf16bom consumes a leading BOM on decode (defaulting to big-endian when
// absent, as ID3v2 taggers in the wild often omit it) and writes one on
// encode.
var utf16bom = unicode.UTF16(unicode.BigEndian, unicode.UseBOM)

// Decode converts a wire payload in enc to a UTF-8 string.
//
// ISO-8859-1 decoding is total. UTF-16 payloads must have an even byte
// count; UTF-8 payloads must be valid UTF-8. Violations return *DecodeError.
func Decode(data []byte, enc Encoding) (string, error) {
	switch enc {
	case Latin1:
		out := make([]rune, 0, len(data))
		for _, b := range data {
			out = append(out, charmap.ISO8859_1.DecodeByte(b))
		}
		return string(out), nil

	case UTF16, UTF16BE:
		if len(data)%2 != 0 {
			return "", &DecodeError{Encoding: enc, Reason: "odd byte count"}
		}
		codec := utf16be
		if enc == UTF16 {
			codec = utf16bom
		}
		out, err := codec.NewDecoder().Bytes(data)
		if err != nil {
			return "", &DecodeError{Encoding: enc, Reason: err.Error()}
		}
		return string(out), nil

	case UTF8:
		if !utf8.Valid(data) {
			return "", &DecodeError{Encoding: enc, Reason: "invalid UTF-8 sequence"}
		}
		return string(data), nil

	default:
		return "", &DecodeError{Encoding: enc, Reason: "unsupported encoding"}
	}
}

// Encode converts a UTF-8 string to its wire form in enc.
//
// Encoding never fails for a supported encoding. Narrowing to ISO-8859-1
// substitutes Replacement for unmappable runes; lossy reports whether any
// substitution occurred.
func Encode(s string, enc Encoding) (data []byte, lossy bool, err error) {
	switch enc {
	case Latin1:
		out := make([]byte, 0, len(s))
		for _, r := range s {
			b, ok := charmap.ISO8859_1.EncodeRune(r)
			if !ok {
				b = Replacement
				lossy = true
			}
			out = append(out, b)
		}
		return out, lossy, nil

	case UTF16, UTF16BE:
		codec := utf16be
		if enc == UTF16 {
			codec = utf16bom
		}
		out, err := codec.NewEncoder().Bytes([]byte(s))
		if err != nil {
			return nil, false, fmt.Errorf("encode %s: %w", enc, err)
		}
		return out, false, nil

	case UTF8:
		return []byte(s), false, nil

	default:
		return nil, false, &DecodeError{Encoding: enc, Reason: "unsupported encoding"}
	}
}

// Narrow converts s to its ISO-8859-1-representable form, substituting
// Replacement for unmappable runes. This is the string-level counterpart of
// Encode(s, Latin1), used when a field's stored items must actually degrade.
func Narrow(s string) (string, bool) {
	if Representable(s, Latin1) {
		return s, false
	}
	data, _, _ := Encode(s, Latin1)
	out, _ := Decode(data, Latin1)
	return out, true
}

// Representable reports whether every rune of s survives a round trip
// through enc unchanged.
func Representable(s string, enc Encoding) bool {
	if enc.Wide() {
		return true
	}
	for _, r := range s {
		if _, ok := charmap.ISO8859_1.EncodeRune(r); !ok {
			return false
		}
	}
	return true
}

// Units returns the number of character units s occupies in enc: runes for
// the single-byte-per-character encodings, UTF-16 code units otherwise.
func Units(s string, enc Encoding) int {
	switch enc {
	case UTF16, UTF16BE:
		return len(utf16.Encode([]rune(s)))
	default:
		return utf8.RuneCountInString(s)
	}
}

// EncodedLen returns the exact byte length of Encode(s, enc), including the
// byte order mark for UTF16.
func EncodedLen(s string, enc Encoding) int {
	switch enc {
	case Latin1:
		return utf8.RuneCountInString(s)
	case UTF16:
		return 2 + 2*len(utf16.Encode([]rune(s)))
	case UTF16BE:
		return 2 * len(utf16.Encode([]rune(s)))
	default:
		return len(s)
	}
}

// SplitItems splits a rendered multi-item text payload on enc's null
// terminator. An empty payload yields no items; a trailing terminator
// yields a trailing empty item.
func SplitItems(data []byte, enc Encoding) [][]byte {
	if len(data) == 0 {
		return nil
	}

	step := enc.TerminatorSize()
	var items [][]byte
	start := 0

	for i := 0; i+step <= len(data); i += step {
		if data[i] == 0 && (step == 1 || data[i+1] == 0) {
			items = append(items, data[start:i])
			start = i + step
		}
	}

	return append(items, data[start:])
}
