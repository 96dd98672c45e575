package phonematcher

import "strings"

// NormalizeToDigits extracts only digit characters from a phone number string.
// It handles various formats:
//   - +1 (555) 123-4567 → 15551234567
//   - 555.123.4567 → 5551234567
//   - tel:+15551234567 → 15551234567
//   - sip:+15551234567@example.com;user=phone → 15551234567
//
// The '+' prefix is stripped; matching is by suffix.
func NormalizeToDigits(input string) string {
	if input == "" {
		return ""
	}

	// Pre-allocate for typical phone number length
	var result strings.Builder
	result.Grow(20)

	// Strip common URI prefixes
	s := input
	if idx := strings.Index(s, "tel:"); idx != -1 {
		s = s[idx+4:]
	} else if idx := strings.Index(s, "sip:"); idx != -1 {
		s = s[idx+4:]
	} else if idx := strings.Index(s, "sips:"); idx != -1 {
		s = s[idx+5:]
	}

	// Strip domain part (everything after @)
	if atIdx := strings.IndexByte(s, '@'); atIdx != -1 {
		s = s[:atIdx]
	}

	// Strip URI parameters (everything after ; or ?)
	if semiIdx := strings.IndexByte(s, ';'); semiIdx != -1 {
		s = s[:semiIdx]
	}
	if qIdx := strings.IndexByte(s, '?'); qIdx != -1 {
		s = s[:qIdx]
	}

	// Extract only digits
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			result.WriteByte(c)
		}
	}

	return result.String()
}

// IsDigitsOnly returns true if the string contains only ASCII digits.
func IsDigitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
