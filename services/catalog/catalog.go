package catalog

import (
	"fmt"
	"sort"
	"strings"
)

type Catalog struct {
	plans map[Locale][]Plan
}

// New returns the catalog of the presales offering.
func New() *Catalog {
	c, err := NewCatalog(presalesPlans)
	if err != nil {
		panic(err)
	}
	return c
}

// NewCatalog builds a catalog from plans per locale and rejects it when a
// plan cannot be priced.
func NewCatalog(plans map[Locale][]Plan) (*Catalog, error) {
	c := &Catalog{plans: plans}
	err := c.Validate()
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that every plan of every locale resolves to a
// non-negative amount, that all plans share one currency and that the
// default locale is present.
func (c *Catalog) Validate() error {
	if len(c.plans[DefaultLocale]) == 0 {
		return fmt.Errorf("catalog has no plans for default locale %s", DefaultLocale)
	}
	currency := c.Currency()
	for locale, plans := range c.plans {
		seen := map[PlanID]bool{}
		for _, p := range plans {
			if seen[p.ID] {
				return fmt.Errorf("plan %s occurs twice for locale %s", p.ID, locale)
			}
			seen[p.ID] = true

			if p.Currency == "" || !strings.EqualFold(p.Currency, currency) {
				return fmt.Errorf("plan %s for locale %s is priced in '%s', catalog in '%s'", p.ID, locale, p.Currency, currency)
			}

			// digits only, so a parsed amount is never negative
			_, err := p.Amount()
			if err != nil {
				return fmt.Errorf("plan %s for locale %s: %s", p.ID, locale, err)
			}
		}
	}
	return nil
}

// Currency is the currency of the first plan of the default locale. Validate
// guarantees every other plan uses it too.
func (c *Catalog) Currency() string {
	plans := c.plans[DefaultLocale]
	if len(plans) == 0 {
		return ""
	}
	return plans[0].Currency
}

// CheckCurrency fails when checkouts would charge in another currency than
// the one the plans are displayed in.
func (c *Catalog) CheckCurrency(currency string) error {
	if !strings.EqualFold(c.Currency(), currency) {
		return fmt.Errorf("plans are priced in '%s' but checkout charges in '%s'", c.Currency(), currency)
	}
	return nil
}

func (c *Catalog) Locales() []Locale {
	locales := make([]Locale, 0, len(c.plans))
	for l := range c.plans {
		locales = append(locales, l)
	}
	sort.Slice(locales, func(i, j int) bool { return locales[i] < locales[j] })
	return locales
}

// Plans returns the plans in display order. Unsupported locales get the
// plans of the default locale.
func (c *Catalog) Plans(locale Locale) []Plan {
	plans, found := c.plans[locale]
	if !found {
		plans = c.plans[DefaultLocale]
	}
	return plans
}

func (c *Catalog) Plan(locale Locale, id PlanID) (Plan, bool) {
	for _, p := range c.Plans(locale) {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}
