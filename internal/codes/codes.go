package codes

import (
	"crypto/rand"
	"errors"
	"strings"
)

// charset deliberately excludes 0, O, I and 1 so codes read unambiguously
// when printed on vouchers.
const charset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const (
	codeLength = 16
	groupSize  = 4
)

// ErrRandomSource is returned when the system random source is unavailable.
var ErrRandomSource = errors.New("random source unavailable")

// Normalize canonicalizes a user-entered gift card code: spaces and hyphens
// are stripped and letters are uppercased. It is total over all strings and
// idempotent, so it is safe to apply both at lookup time and at write time.
func Normalize(code string) string {
	var b strings.Builder
	b.Grow(len(code))
	for _, r := range strings.ToUpper(strings.TrimSpace(code)) {
		if r == ' ' || r == '-' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Generate returns a new 16-character gift card code formatted as
// XXXX-XXXX-XXXX-XXXX for display. Callers store Normalize(code) and show
// the dashed form to customers.
func Generate() (string, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", ErrRandomSource
	}

	var b strings.Builder
	b.Grow(codeLength + codeLength/groupSize - 1)
	for i, by := range buf {
		if i > 0 && i%groupSize == 0 {
			b.WriteByte('-')
		}
		b.WriteByte(charset[int(by)%len(charset)])
	}
	return b.String(), nil
}
