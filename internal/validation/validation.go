package validation

import (
	"errors"
	"strings"
)

// ErrLocationEmpty is returned when location is empty or whitespace-only after trim.
var ErrLocationEmpty = errors.New("location is required")

// ErrLocationTooLong is returned when location length exceeds the maximum.
var ErrLocationTooLong = errors.New("location too long")

// DefaultMaxLocationLen bounds location input in runes. The upstream API has
// no documented limit; this only guards against abusive inputs. Arbitrary
// characters are allowed — the upstream decides whether a location resolves,
// and URL-encoding is the fetcher's job.
const DefaultMaxLocationLen = 128

// ValidateLocation trims the input and enforces non-empty plus a rune-length
// upper bound (maxLen <= 0 selects DefaultMaxLocationLen). Returns the
// trimmed string or an error suitable for 400 INVALID_LOCATION responses.
func ValidateLocation(input string, maxLen int) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", ErrLocationEmpty
	}
	if maxLen <= 0 {
		maxLen = DefaultMaxLocationLen
	}
	if len([]rune(s)) > maxLen {
		return "", ErrLocationTooLong
	}
	return s, nil
}
