package entities

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// NormalizeName is the comparison form of a client name: NFC, trimmed, inner
// whitespace collapsed and lower-cased. The display form is stored separately.
func NormalizeName(name string) string {
	folded := strings.Join(strings.Fields(norm.NFC.String(name)), " ")
	// Casers keep state and must not be shared between goroutines.
	return cases.Lower(language.Und).String(folded)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizePhone keeps digits only, so "(555) 123-4567" and "555.123.4567" compare equal.
func NormalizePhone(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if r <= unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
