// Where: internal/keygen/format.go
// What: Output encodings for generated keys.
// Why: Keep the closed set of formats and their encoders in one mapping.
package keygen

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// Format names a text encoding for key material.
type Format string

const (
	FormatHex       Format = "hex"
	FormatBase64    Format = "base64"
	FormatBase64URL Format = "base64url"
)

// formats keeps the display order used in help and error messages.
var formats = []Format{FormatHex, FormatBase64, FormatBase64URL}

var encoders = map[Format]func([]byte) string{
	FormatHex:       hex.EncodeToString,
	FormatBase64:    base64.StdEncoding.EncodeToString,
	FormatBase64URL: base64.URLEncoding.EncodeToString,
}

// Formats returns the supported formats in display order.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// FormatList renders the supported formats as "hex, base64, base64url".
func FormatList(sep string) string {
	names := make([]string, 0, len(formats))
	for _, f := range formats {
		names = append(names, string(f))
	}
	return strings.Join(names, sep)
}

// ParseFormat maps a literal flag value to a Format.
// Matching is exact; "HEX" is rejected like any other unknown value.
func ParseFormat(value string) (Format, error) {
	f := Format(value)
	if _, ok := encoders[f]; !ok {
		return "", fmt.Errorf("%w %q (valid: %s)", ErrInvalidFormat, value, FormatList(", "))
	}
	return f, nil
}

// Encode renders raw bytes in the format.
func (f Format) Encode(raw []byte) (string, error) {
	encode, ok := encoders[f]
	if !ok {
		return "", fmt.Errorf("%w %q (valid: %s)", ErrInvalidFormat, string(f), FormatList(", "))
	}
	return encode(raw), nil
}

// EncodedLen returns the length of the encoded form of n bytes.
func EncodedLen(n int, f Format) int {
	switch f {
	case FormatHex:
		return hex.EncodedLen(n)
	case FormatBase64:
		return base64.StdEncoding.EncodedLen(n)
	case FormatBase64URL:
		return base64.URLEncoding.EncodedLen(n)
	default:
		return 0
	}
}
