package catalog

var presalesPlans = map[Locale][]Plan{
	LocaleEnglish: {
		{
			ID:           PlanFree,
			Name:         "Free",
			DisplayPrice: "€0",
			Currency:     "EUR",
			Features: []string{
				"30 Contacts",
				"100 Queries per month",
				"30 OCR Credits (LinkedIn/Cards/Photos)",
				"2 Digital Business Cards (Basic)",
				"500MB Storage",
			},
			Note: "Note: Scanned cards cannot be stored in this tier",
		},
		{
			ID:           PlanPro,
			Name:         "Pro",
			DisplayPrice: "€19",
			Currency:     "EUR",
			Features: []string{
				"300 Contacts",
				"600 Queries per month (Chatbot)",
				"50 OCR Scans per month",
				"10 Digital Business Cards (Pro)",
				"5GB Storage",
			},
		},
		{
			ID:           PlanPremium,
			Name:         "Premium",
			DisplayPrice: "€49",
			Currency:     "EUR",
			Features: []string{
				"1,000 Contacts",
				"23,000 Queries per month",
				"500 OCR Scans per month",
				"50 Digital Business Cards (Premium)",
				"Unlimited Storage",
			},
			Popular: true,
		},
	},
	LocaleFrench: {
		{
			ID:           PlanFree,
			Name:         "Gratuit",
			DisplayPrice: "0 €",
			Currency:     "EUR",
			Features: []string{
				"30 Contacts",
				"100 Requêtes par mois",
				"30 Crédits OCR (LinkedIn/Cartes/Photos)",
				"2 Cartes de Visite Digitales (Basique)",
				"500 Mo de stockage",
			},
			Note: "Note : Les cartes scannées ne sont pas stockées",
		},
		{
			ID:           PlanPro,
			Name:         "Professionnel",
			DisplayPrice: "19 €",
			Currency:     "EUR",
			Features: []string{
				"300 Contacts",
				"600 Requêtes par mois (Chatbot)",
				"50 Scans OCR par mois",
				"10 Cartes de Visite Digitales (Pro)",
				"5 Go de stockage",
			},
		},
		{
			ID:           PlanPremium,
			Name:         "Premium",
			DisplayPrice: "49 €",
			Currency:     "EUR",
			Features: []string{
				"1 000 Contacts",
				"23 000 Requêtes par mois",
				"500 Scans OCR par mois",
				"50 Cartes de Visite Digitales (Premium)",
				"Stockage illimité",
			},
			Popular: true,
		},
	},
}
