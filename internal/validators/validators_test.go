package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"jane.doe@example.com", true},
		{"j-d@sub.example.co", true},
		{"no-at-sign.example.com", false},
		{"trailing@", false},
		{"@example.com", false},
		{"user@toolongtld.abcdef", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidEmail(tt.email), tt.email)
	}
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("+1 555-123-4567"))
	assert.True(t, IsValidPhone("05551234567"))
	assert.False(t, IsValidPhone("12345"))
	assert.False(t, IsValidPhone("call-me-maybe"))
}

func TestIsValidPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"valid", "Aa1@bc", true},
		{"too short", "Aa1@b", false},
		{"no uppercase", "aa1@bcd", false},
		{"no lowercase", "AA1@BCD", false},
		{"no digit", "Aab@bcd", false},
		{"no special", "Aa1bbcd", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPassword(tt.password))
		})
	}
}
