// Where: internal/keygen/keygen.go
// What: CSPRNG-backed key generation.
// Why: Draw fresh secret bytes per call and hand back their encoded form.
package keygen

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

// MaxBytes is the largest key a single call may request.
const MaxBytes = 1024

var (
	ErrInvalidByteLength = errors.New("invalid byte length")
	ErrExceedsMaximum    = errors.New("exceeds maximum")
	ErrInvalidFormat     = errors.New("invalid format")
)

// Generator produces encoded random keys.
type Generator struct {
	source io.Reader
}

// New returns a Generator reading from source.
// A nil source selects crypto/rand.Reader.
func New(source io.Reader) *Generator {
	if source == nil {
		source = rand.Reader
	}
	return &Generator{source: source}
}

// ValidateLength reports whether n is an acceptable byte count.
func ValidateLength(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidByteLength, n)
	}
	if n > MaxBytes {
		return fmt.Errorf("byte length %d %w of %d", n, ErrExceedsMaximum, MaxBytes)
	}
	return nil
}

// Generate reads n random bytes and returns them encoded as f.
func (g *Generator) Generate(n int, f Format) (string, error) {
	if err := ValidateLength(n); err != nil {
		return "", err
	}
	raw, err := g.Bytes(n)
	if err != nil {
		return "", err
	}
	return f.Encode(raw)
}

// Bytes returns n raw bytes from the generator's source.
func (g *Generator) Bytes(n int) ([]byte, error) {
	raw := make([]byte, n)
	if _, err := io.ReadFull(g.source, raw); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return raw, nil
}
