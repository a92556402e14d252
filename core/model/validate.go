package model

import "regexp"

// Plate formats: Mercosul (with or without the hyphen) and the legacy
// three-letters-four-digits format.
var (
	platePattern   = regexp.MustCompile(`^[A-Z]{3}-?[0-9][A-Z][0-9]{2}$`)
	legacyPattern  = regexp.MustCompile(`^[A-Z]{3}[0-9]{4}$`)
	licensePattern = regexp.MustCompile(`^[0-9]{11}$`)
	emailPattern   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// ValidPlate reports whether s is a well-formed vehicle plate.
func ValidPlate(s string) bool {
	return platePattern.MatchString(s) || legacyPattern.MatchString(s)
}

// ValidLicense reports whether s is an 11-digit license number.
func ValidLicense(s string) bool {
	return licensePattern.MatchString(s)
}

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}
