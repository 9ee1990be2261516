// Package phone provides phone number utilities.
// This is part of the platform layer and contains no business logic.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/text/width"
)

const defaultRegion = "IL"

// NormalizeE164 formats a phone number to E.164. If parsing fails, it returns the trimmed input.
func NormalizeE164(input string) string {
	trimmed := strings.TrimSpace(input)
	if formatted, ok := E164(trimmed); ok {
		return formatted
	}
	return trimmed
}

// E164 formats input to E.164 using libphonenumber's metadata for Israel.
// The boolean is false when the number cannot be parsed or is not a valid
// number according to that metadata.
func E164(input string) (string, bool) {
	number, ok := parseValid(input)
	if !ok {
		return "", false
	}
	return phonenumbers.Format(number, phonenumbers.E164), true
}

// LibType returns libphonenumber's view of the number type ("MOBILE",
// "FIXED_LINE", "TOLL_FREE", ...), or "" when it does not recognise the number.
// It is advisory only; the HolyLand predicates remain authoritative.
func LibType(input string) string {
	number, ok := parseValid(input)
	if !ok {
		return ""
	}
	return numberTypeName(phonenumbers.GetNumberType(number))
}

func parseValid(input string) (*phonenumbers.PhoneNumber, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, false
	}

	number, err := phonenumbers.Parse(trimmed, defaultRegion)
	if err != nil {
		return nil, false
	}

	if !phonenumbers.IsValidNumber(number) {
		return nil, false
	}
	return number, true
}

func numberTypeName(t phonenumbers.PhoneNumberType) string {
	switch t {
	case phonenumbers.FIXED_LINE:
		return "FIXED_LINE"
	case phonenumbers.MOBILE:
		return "MOBILE"
	case phonenumbers.FIXED_LINE_OR_MOBILE:
		return "FIXED_LINE_OR_MOBILE"
	case phonenumbers.TOLL_FREE:
		return "TOLL_FREE"
	case phonenumbers.PREMIUM_RATE:
		return "PREMIUM_RATE"
	case phonenumbers.SHARED_COST:
		return "SHARED_COST"
	case phonenumbers.VOIP:
		return "VOIP"
	case phonenumbers.PERSONAL_NUMBER:
		return "PERSONAL_NUMBER"
	case phonenumbers.PAGER:
		return "PAGER"
	case phonenumbers.UAN:
		return "UAN"
	case phonenumbers.VOICEMAIL:
		return "VOICEMAIL"
	default:
		return ""
	}
}

// Sanitize cleans user-typed input before classification: full-width digits
// are folded to ASCII, common separators are dropped and a leading "+" or "00"
// international prefix is removed so "+972 50-123-4567" becomes "972501234567".
// NewHolyLand does not call it; transports opt in.
func Sanitize(raw string) string {
	folded := width.Narrow.String(strings.TrimSpace(raw))

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch r {
		case ' ', '\t', '-', '.', '(', ')', '/':
			continue
		}
		b.WriteRune(r)
	}

	cleaned := b.String()
	switch {
	case strings.HasPrefix(cleaned, "+"):
		cleaned = cleaned[1:]
	case strings.HasPrefix(cleaned, "00"+countryCode):
		cleaned = cleaned[2:]
	}
	return cleaned
}
