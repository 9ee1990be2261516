package phone

// Category is the most specific numbering-plan class a number falls into.
type Category string

const (
	CategoryUnknown  Category = "unknown"
	CategorySpecial  Category = "special"
	CategoryErotic   Category = "erotic"
	CategoryPremium  Category = "premium"
	CategoryTollFree Category = "toll_free"
	CategoryBusiness Category = "business"
	CategoryMobile   Category = "mobile"
	CategoryLandLine Category = "landline"
)

// Category resolves overlapping predicates to a single class. Erotic numbers
// are also premium and business numbers, so the narrower ranges are checked
// first.
func (p HolyLand) Category() Category {
	switch {
	case p.IsSpecial():
		return CategorySpecial
	case p.IsErotic():
		return CategoryErotic
	case p.IsPremium():
		return CategoryPremium
	case p.IsTollFree():
		return CategoryTollFree
	case p.IsBusiness():
		return CategoryBusiness
	case p.IsMobile():
		return CategoryMobile
	case p.IsLandLine():
		return CategoryLandLine
	default:
		return CategoryUnknown
	}
}

// Report is a flattened view of every classification for a single number.
type Report struct {
	Input         string   `json:"input" yaml:"input"`
	Local         string   `json:"local" yaml:"local"`
	International string   `json:"international" yaml:"international"`
	Category      Category `json:"category" yaml:"category"`
	Valid         bool     `json:"valid" yaml:"valid"`
	Israeli       bool     `json:"israeli" yaml:"israeli"`
	Palestinian   bool     `json:"palestinian" yaml:"palestinian"`
	LandLine      bool     `json:"landLine" yaml:"land_line"`
	Mobile        bool     `json:"mobile" yaml:"mobile"`
	Special       bool     `json:"special" yaml:"special"`
	Business      bool     `json:"business" yaml:"business"`
	TollFree      bool     `json:"tollFree" yaml:"toll_free"`
	Premium       bool     `json:"premium" yaml:"premium"`
	Kosher        bool     `json:"kosher" yaml:"kosher"`
	Erotic        bool     `json:"erotic" yaml:"erotic"`
}

// Classify parses raw and returns its full report.
func Classify(raw string) Report {
	r := NewHolyLand(raw).Report()
	r.Input = raw
	return r
}

// Report evaluates every predicate on p. Input is set to the local form; use
// Classify to keep the caller's original string.
func (p HolyLand) Report() Report {
	return Report{
		Input:         p.number,
		Local:         p.number,
		International: p.International(),
		Category:      p.Category(),
		Valid:         p.IsValid(),
		Israeli:       p.IsIsraeli(),
		Palestinian:   p.IsPalestinian(),
		LandLine:      p.IsLandLine(),
		Mobile:        p.IsMobile(),
		Special:       p.IsSpecial(),
		Business:      p.IsBusiness(),
		TollFree:      p.IsTollFree(),
		Premium:       p.IsPremium(),
		Kosher:        p.IsKosher(),
		Erotic:        p.IsErotic(),
	}
}
