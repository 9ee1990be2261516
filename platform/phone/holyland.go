package phone

import "regexp"

// Numbering-plan patterns for Israeli and Palestinian numbers. All matching is
// whole-string; the digit classes are the plan of record and differ on purpose
// between the "valid" and "Israeli" sets.
var (
	validPattern       = regexp.MustCompile(`^((0[23489][2356789]|0[57][102345689]\d|1(2(00|12)|599|70[05]|80[019]|90[012]|919))\d{6}|\*\d{4})$`)
	israeliPattern     = regexp.MustCompile(`^((0[23489][356789]|0[57][1023458]\d|1(2(00|12)|599|70[05]|80[019]|90[012]|919))\d{6}|\*\d{4})$`)
	palestinianPattern = regexp.MustCompile(`^(0[23489]2|05[69]\d|)\d{6}$`)
	landLinePattern    = regexp.MustCompile(`^0([23489][2356789]|7\d{2})\d{6}$`)
	mobilePattern      = regexp.MustCompile(`^05[102345689]\d{7}$`)
	specialPattern     = regexp.MustCompile(`^\*\d{4}$`)
	businessPattern    = regexp.MustCompile(`^1(2(00|12)|599|70[05]|80[019]|90[012]|919)\d{6}$`)
	tollFreePattern    = regexp.MustCompile(`^180[019]\d{6}$`)
	premiumPattern     = regexp.MustCompile(`^19(0[012]|19)\d{6}$`)
	kosherPattern      = regexp.MustCompile(`^0([23489]80|5041|5271|5276|5484|5485|5331|5341|5832|5567)\d{5}$`)
	eroticPattern      = regexp.MustCompile(`^1919\d{6}$`)

	internationalForm = regexp.MustCompile(`^972(\d{8,9})$`)
	localForm         = regexp.MustCompile(`^0(\d{8,9})$`)
)

const countryCode = "972"

// HolyLand is a phone number in the Israeli/Palestinian numbering plan.
// The zero value is an empty number that fails every predicate.
type HolyLand struct {
	number string
}

// NewHolyLand builds a HolyLand from raw input. A number in international form
// (972 followed by 8 or 9 digits) is rewritten to local form; anything else is
// kept as given.
func NewHolyLand(raw string) HolyLand {
	return HolyLand{number: internationalForm.ReplaceAllString(raw, "0$1")}
}

// Local returns the number in local form.
func (p HolyLand) Local() string {
	return p.number
}

func (p HolyLand) String() string {
	return p.number
}

// International returns the number with the 972 country code in place of the
// leading zero. Numbers without a leading zero and 8-9 following digits (short
// codes, business numbers) are returned unchanged.
func (p HolyLand) International() string {
	return localForm.ReplaceAllString(p.number, countryCode+"$1")
}

// IsValid reports whether the number is a valid Israeli or Palestinian number.
func (p HolyLand) IsValid() bool { return validPattern.MatchString(p.number) }

// IsIsraeli reports whether the number belongs to the Israeli plan.
func (p HolyLand) IsIsraeli() bool { return israeliPattern.MatchString(p.number) }

// IsPalestinian reports whether the number belongs to the Palestinian plan.
func (p HolyLand) IsPalestinian() bool { return palestinianPattern.MatchString(p.number) }

// IsLandLine reports whether the number is a land line (including 07x VoIP ranges).
func (p HolyLand) IsLandLine() bool { return landLinePattern.MatchString(p.number) }

// IsMobile reports whether the number is a 05x mobile number.
func (p HolyLand) IsMobile() bool { return mobilePattern.MatchString(p.number) }

// IsSpecial reports whether the number is a star short code such as *1234.
func (p HolyLand) IsSpecial() bool { return specialPattern.MatchString(p.number) }

// IsBusiness reports whether the number is a 1-prefixed service number (1700, 1800, ...).
func (p HolyLand) IsBusiness() bool { return businessPattern.MatchString(p.number) }

// IsTollFree reports whether the number is a 1800 toll-free number.
func (p HolyLand) IsTollFree() bool { return tollFreePattern.MatchString(p.number) }

// IsPremium reports whether the number is a 1900 premium-rate number.
func (p HolyLand) IsPremium() bool { return premiumPattern.MatchString(p.number) }

// IsKosher reports whether the number falls in a known kosher (voice only) range.
func (p HolyLand) IsKosher() bool { return kosherPattern.MatchString(p.number) }

// IsErotic reports whether the number is a 1919 adult-content number.
func (p HolyLand) IsErotic() bool { return eroticPattern.MatchString(p.number) }

func (p HolyLand) IsNotValid() bool       { return !p.IsValid() }
func (p HolyLand) IsNotIsraeli() bool     { return !p.IsIsraeli() }
func (p HolyLand) IsNotPalestinian() bool { return !p.IsPalestinian() }
func (p HolyLand) IsNotLandLine() bool    { return !p.IsLandLine() }
func (p HolyLand) IsNotMobile() bool      { return !p.IsMobile() }
func (p HolyLand) IsNotSpecial() bool     { return !p.IsSpecial() }
func (p HolyLand) IsNotBusiness() bool    { return !p.IsBusiness() }
func (p HolyLand) IsNotTollFree() bool    { return !p.IsTollFree() }
func (p HolyLand) IsNotPremium() bool     { return !p.IsPremium() }
func (p HolyLand) IsNotKosher() bool      { return !p.IsKosher() }
func (p HolyLand) IsNotErotic() bool      { return !p.IsErotic() }
