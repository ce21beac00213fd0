package registry

const (
	defaultHomeCountry = "France"
	defaultCatchmentKM = 100
)

// Default returns the built-in registry: the FATF black/grey lists, the
// EU high-risk and non-cooperative jurisdiction lists, and the NAF
// sector tiers from the national sectoral risk analysis.
func Default() *Registry {
	return New(defaultFile())
}

func defaultFile() File {
	return File{
		HomeCountry: defaultHomeCountry,
		CatchmentKM: defaultCatchmentKM,
		Countries: Countries{
			VeryHigh: []string{
				"Corée du Nord",
				"Iran",
				"Myanmar",
			},
			High: []string{
				// FATF + EU high-risk (aggravated scoring).
				"Afghanistan", "Algérie", "Angola", "Burkina Faso", "Cameroun",
				"Côte d'Ivoire", "République démocratique du Congo", "Haïti",
				"Kenya", "Laos", "Liban", "Mali", "Monaco", "Mozambique",
				"Namibie", "Népal", "Nigeria", "Afrique du Sud", "Soudan du Sud",
				"Syrie", "Tanzanie", "Trinité-et-Tobago", "Vanuatu", "Venezuela",
				"Vietnam", "Yémen",
				// FATF grey list only.
				"Albanie", "Bulgarie", "Cambodge", "Croatie", "Jordanie",
				"Maroc", "Nicaragua", "Pakistan", "Turquie", "Zimbabwe",
				// EU + FR non-cooperative tax jurisdictions.
				"Anguilla", "Antigua-et-Barbuda", "Bahamas", "Belize", "Fidji",
				"Fédération de Russie", "Guam", "Îles Turques-et-Caïques",
				"Îles Vierges américaines", "Palaos", "Panama", "Samoa",
				"Samoa américaines", "Seychelles",
			},
			Aggravated: []string{
				"Afghanistan", "Algérie", "Angola", "Burkina Faso", "Cameroun",
				"Côte d'Ivoire", "République démocratique du Congo", "Haïti",
				"Kenya", "Laos", "Liban", "Mali", "Monaco", "Mozambique",
				"Myanmar", "Namibie", "Népal", "Nigeria", "Afrique du Sud",
				"Soudan du Sud", "Syrie", "Tanzanie", "Trinité-et-Tobago",
				"Vanuatu", "Venezuela", "Vietnam", "Yémen",
			},
		},
		Sectors: Sectors{
			VeryHigh: map[string]string{
				"66.12Z": "Courtage de valeurs mobilières et de marchandises",
				"92.00Z": "Organisation de jeux de hasard et d'argent",
				"64.99Z": "Autres intermédiations monétaires (crypto-actifs)",
				"43.3":   "Travaux de finition (peinture, plâtrerie)",
				"43.2":   "Travaux d'installation électrique et plomberie",
			},
			High: map[string]string{
				"41.2":   "Construction de bâtiments résidentiels et non résidentiels",
				"41.20A": "Construction de maisons individuelles",
				"41.20B": "Construction d'autres bâtiments",
				"43.1":   "Démolition et préparation des sites",
				"43.9":   "Autres travaux de construction spécialisés",
				"42":     "Génie civil",
				"68.31Z": "Agences immobilières",
				"47.77Z": "Commerce de détail d'articles d'horlogerie et de bijouterie",
				"69.10Z": "Activités juridiques",
				"69.20Z": "Activités comptables",
				"82.11Z": "Services administratifs combinés de bureau (domiciliation)",
				"47.91B": "Vente à distance (e-commerce)",
			},
			Moderate: map[string]string{
				"41.1": "Promotion immobilière",
			},
		},
	}
}
