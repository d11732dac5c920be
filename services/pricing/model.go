package pricing

import (
	"github.com/memorablecontact/presales/services/catalog"
)

type pageCopy struct {
	Headline      string
	Subheadline   string
	BestValue     string
	ChoosePlan    string
	OtherLanguage string
	ErrorTitle    string
	ErrorMessage  string
	BackToPricing string
}

var copyPerLocale = map[catalog.Locale]pageCopy{
	catalog.LocaleEnglish: {
		Headline:      "Pricing Plans",
		Subheadline:   "Choose the memory capacity that fits your professional network.",
		BestValue:     "Best Value",
		ChoosePlan:    "Choose Plan",
		OtherLanguage: "Français",
		ErrorTitle:    "Payment could not be started",
		ErrorMessage:  "Something went wrong while starting your payment. Please try again later.",
		BackToPricing: "Back to pricing",
	},
	catalog.LocaleFrench: {
		Headline:      "Tarifs",
		Subheadline:   "Choisissez la capacité de mémoire qui convient à votre réseau professionnel.",
		BestValue:     "Meilleure Valeur",
		ChoosePlan:    "Choisir le Plan",
		OtherLanguage: "English",
		ErrorTitle:    "Le paiement n'a pas pu démarrer",
		ErrorMessage:  "Une erreur est survenue lors du lancement du paiement. Veuillez réessayer plus tard.",
		BackToPricing: "Retour aux tarifs",
	},
}

func copyFor(locale catalog.Locale) pageCopy {
	c, found := copyPerLocale[locale]
	if !found {
		return copyPerLocale[catalog.DefaultLocale]
	}
	return c
}

type pricingPageInfo struct {
	Lang      catalog.Locale
	OtherLang catalog.Locale
	Copy      pageCopy
	Plans     []catalog.Plan
}

type errorPageInfo struct {
	Lang catalog.Locale
	Copy pageCopy
}

type planCheckoutForm struct {
	Lang string `form:"lang"`
}
