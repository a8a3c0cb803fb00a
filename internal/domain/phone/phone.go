// Package phone turns free-form phone input into the digit-only form
// the messaging gateway addresses recipients by.
package phone

import "strings"

const (
	// DefaultCountryCode is Argentina; mobile numbers carry an extra 9 after it.
	DefaultCountryCode = "54"
	mobileMarker       = "9"
	capitalAreaCode    = "11"
	minCapitalDigits   = 10
)

type Normalizer struct {
	countryCode  string
	mobilePrefix string
}

func NewNormalizer(countryCode string) *Normalizer {
	countryCode = digitsOnly(countryCode)
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}
	return &Normalizer{
		countryCode:  countryCode,
		mobilePrefix: countryCode + mobileMarker,
	}
}

// Normalize returns the canonical digit string for raw, or false when raw holds no digits.
// It is a heuristic: the output is consistently shaped, not guaranteed deliverable.
func (n *Normalizer) Normalize(raw string) (string, bool) {
	digits := digitsOnly(raw)
	if digits == "" {
		return "", false
	}

	switch {
	case strings.HasPrefix(digits, n.mobilePrefix):
		return digits, true
	case strings.HasPrefix(digits, n.countryCode):
		rest := strings.TrimPrefix(digits, n.countryCode)
		if strings.HasPrefix(rest, mobileMarker) {
			return n.countryCode + rest, true
		}
		return n.mobilePrefix + rest, true
	case strings.HasPrefix(digits, capitalAreaCode) && len(digits) >= minCapitalDigits:
		return n.mobilePrefix + digits, true
	default:
		return n.mobilePrefix + digits, true
	}
}

// Normalize uses the default country code.
func Normalize(raw string) (string, bool) {
	return defaultNormalizer.Normalize(raw)
}

var defaultNormalizer = NewNormalizer(DefaultCountryCode)

func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
