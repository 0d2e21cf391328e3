package product

import "github.com/shopspring/decimal"

func price(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func oldPrice(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

// SampleCatalog seeds local runs and tests with the storefront's software
// titles.
func SampleCatalog() []Product {
	return []Product{
		{
			ID:           1,
			Name:         "TaskFlow Pro",
			Category:     "Productivité",
			Price:        price("49.99"),
			OldPrice:     oldPrice("79.99"),
			Rating:       4.8,
			Reviews:      127,
			Description:  "Solution complète de gestion de tâches et de projets pour équipes",
			LicenseTerms: "Licence perpétuelle",
			Activations:  "5 postes",
			Support:      "1 an inclus",
			Version:      "3.2.1",
			Popular:      true,
		},
		{
			ID:           2,
			Name:         "DataSync Enterprise",
			Category:     "Gestion",
			Price:        price("199.99"),
			Rating:       4.9,
			Reviews:      84,
			Description:  "Synchronisation et sauvegarde de données multi-sites",
			LicenseTerms: "Licence perpétuelle",
			Activations:  "Illimité",
			Support:      "2 ans inclus",
			Version:      "5.0.2",
			Featured:     true,
		},
		{
			ID:           3,
			Name:         "SiteBuilder Lite",
			Category:     "Web",
			Price:        price("29.99"),
			OldPrice:     oldPrice("39.99"),
			Rating:       4.5,
			Reviews:      203,
			Description:  "Créateur de sites web par glisser-déposer",
			LicenseTerms: "Licence 1 an",
			Activations:  "1 poste",
			Support:      "6 mois inclus",
			Version:      "2.8.0",
		},
		{
			ID:           4,
			Name:         "SecureVault",
			Category:     "Sécurité",
			Price:        price("89.99"),
			Rating:       4.7,
			Reviews:      156,
			Description:  "Gestionnaire de mots de passe et coffre-fort chiffré pour entreprises",
			LicenseTerms: "Licence perpétuelle",
			Activations:  "10 postes",
			Support:      "1 an inclus",
			Version:      "4.1.3",
			Popular:      true,
			Featured:     true,
		},
	}
}
