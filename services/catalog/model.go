package catalog

type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleFrench  Locale = "fr"

	DefaultLocale = LocaleEnglish
)

// ParseLocale maps a free-form tag onto a supported locale. Anything that is
// not recognized falls back to the default instead of failing.
func ParseLocale(tag string) Locale {
	switch Locale(tag) {
	case LocaleEnglish, LocaleFrench:
		return Locale(tag)
	default:
		return DefaultLocale
	}
}

type PlanID string

const (
	PlanFree    PlanID = "free"
	PlanPro     PlanID = "pro"
	PlanPremium PlanID = "premium"
)

type Plan struct {
	ID           PlanID
	Name         string
	DisplayPrice string
	Currency     string
	Features     []string
	Note         string
	Popular      bool
}

// Amount is the price of the plan in whole currency units, as shown to the visitor.
func (p Plan) Amount() (int64, error) {
	return ExtractAmount(p.DisplayPrice)
}

func (p Plan) IsFree() bool {
	amount, err := p.Amount()
	return err == nil && amount == 0
}
