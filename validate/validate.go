// Package validate holds the input grammars enforced before any tool call
// reaches the appointment storage API.
package validate

import (
	"regexp"
	"unicode"
)

var (
	phonePattern       = regexp.MustCompile(`^\+91 \d{10}$`)
	referenceIDPattern = regexp.MustCompile(`^APT-\d{4}$`)
)

// PatientName reports whether name is non-empty and contains only letters
// and whitespace.
func PatientName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// PhoneNumber reports whether phone is "+91", one space, and exactly ten
// digits, with nothing before or after.
func PhoneNumber(phone string) bool {
	return phonePattern.MatchString(phone)
}

// ReferenceID reports whether ref is "APT-" followed by exactly four digits.
func ReferenceID(ref string) bool {
	return referenceIDPattern.MatchString(ref)
}
