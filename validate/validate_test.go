package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatientName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple name", "John Doe", true},
		{"single word", "Priya", true},
		{"unicode letters", "José García", true},
		{"empty", "", false},
		{"digits", "John 123", false},
		{"punctuation", "John-Doe", false},
		{"apostrophe", "O'Brien", false},
		{"only spaces", "   ", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, PatientName(tt.input))
		})
	}
}

func TestPhoneNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid", "+91 9876543210", true},
		{"no space", "+911234567890", false},
		{"too few digits", "+91 123", false},
		{"too many digits", "+91 98765432100", false},
		{"missing plus", "91 9876543210", false},
		{"trailing garbage", "+91 9876543210x", false},
		{"leading garbage", "x+91 9876543210", false},
		{"tab instead of space", "+91\t9876543210", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, PhoneNumber(tt.input))
		})
	}
}

func TestReferenceID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid", "APT-0007", true},
		{"valid high", "APT-9999", true},
		{"too short", "APT-7", false},
		{"too long", "APT-00070", false},
		{"lowercase prefix", "apt-0007", false},
		{"missing dash", "APT0007", false},
		{"trailing text", "APT-0007x", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ReferenceID(tt.input))
		})
	}
}
