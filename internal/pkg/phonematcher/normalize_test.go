package phonematcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeToDigits(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"digits only", "5551234567", "5551234567"},
		{"with plus", "+15551234567", "15551234567"},
		{"north american display", "+1 (555) 123-4567", "15551234567"},
		{"with dots", "555.123.4567", "5551234567"},
		{"tel URI", "tel:+15551234567", "15551234567"},
		{"sip URI", "sip:+15551234567@example.com", "15551234567"},
		{"sip with params", "sip:+15551234567@example.com;user=phone", "15551234567"},
		{"international prefix", "0015551234567", "0015551234567"},
		{"dial pad symbols", "555*12#", "55512"},
		{"only separators", "+-.()", ""},
		{"letters mixed", "abc123def456", "123456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeToDigits(tt.input))
		})
	}
}

func TestIsDigitsOnly(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"", false},
		{"123", true},
		{"5551234567", true},
		{"+15551234567", false},
		{"555-1234", false},
		{" 123", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsDigitsOnly(tt.input))
		})
	}
}

func BenchmarkNormalizeToDigits(b *testing.B) {
	inputs := []string{
		"+1 (555) 123-4567",
		"555.987.6543",
		"tel:+15554567890",
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NormalizeToDigits(inputs[i%len(inputs)])
	}
}
