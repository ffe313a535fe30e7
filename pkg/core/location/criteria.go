package location

// =============================================================================
// LOCATION CRITERIA CATALOG
// =============================================================================

// Criterion identifiers.
const (
	CriterionDemographicGrowth = "croissance_demographique"
	CriterionRentLevels        = "niveau_loyers"
	CriterionVacancyRate       = "taux_inoccupation"
	CriterionTransit           = "transport"
	CriterionSchools           = "ecoles"
	CriterionShops             = "commerces"
	CriterionSafety            = "securite"
	CriterionTenantRisk        = "risque_locatif"
)

// Criterion is one scoring axis: a weighted question whose answer options
// map to integer scores on a 1-10 scale.
type Criterion struct {
	ID          string         `json:"id"`
	Label       string         `json:"label"`
	Description string         `json:"description"`
	Weight      float64        `json:"weight"`
	Options     map[string]int `json:"options"`
}

// The catalog is fixed, read-only data. Criteria() returns it in display
// order.
var catalog = []Criterion{
	{
		ID:          CriterionDemographicGrowth,
		Label:       "Croissance démographique",
		Description: "La population du secteur est-elle en croissance ?",
		Weight:      1.5,
		Options: map[string]int{
			"Forte croissance (> 3%/an)":   10,
			"Croissance modérée (1-3%/an)": 7,
			"Stable":                       5,
			"Déclin léger":                 3,
			"Déclin important":             1,
		},
	},
	{
		ID:          CriterionRentLevels,
		Label:       "Niveau des loyers",
		Description: "Les loyers sont-ils compétitifs dans le secteur ?",
		Weight:      1.5,
		Options: map[string]int{
			"Très élevés (forte demande)": 10,
			"Au-dessus de la moyenne":     8,
			"Dans la moyenne":             6,
			"Sous la moyenne":             3,
			"Très bas":                    1,
		},
	},
	{
		ID:          CriterionVacancyRate,
		Label:       "Taux d'inoccupation",
		Description: "Quel est le taux d'inoccupation du secteur ?",
		Weight:      2.0,
		Options: map[string]int{
			"Très faible (< 1%)": 10,
			"Faible (1-3%)":      8,
			"Modéré (3-5%)":      6,
			"Élevé (5-8%)":       3,
			"Très élevé (> 8%)":  1,
		},
	},
	{
		ID:          CriterionTransit,
		Label:       "Transport en commun",
		Description: "Accessibilité au transport en commun ?",
		Weight:      1.0,
		Options: map[string]int{
			"Excellent (métro/train à pied)": 10,
			"Bon (bus fréquent)":             7,
			"Moyen":                          5,
			"Limité":                         3,
			"Inexistant":                     1,
		},
	},
	{
		ID:          CriterionSchools,
		Label:       "Écoles et services",
		Description: "Proximité des écoles, garderies et services ?",
		Weight:      1.0,
		Options: map[string]int{
			"Excellent (tout à pied)": 10,
			"Bon":                     7,
			"Moyen":                   5,
			"Limité":                  3,
			"Très limité":             1,
		},
	},
	{
		ID:          CriterionShops,
		Label:       "Commerces et commodités",
		Description: "Accès aux commerces, épiceries, restaurants ?",
		Weight:      1.0,
		Options: map[string]int{
			"Excellent (quartier commercial)": 10,
			"Bon":                             7,
			"Moyen":                           5,
			"Limité":                          3,
			"Très limité":                     1,
		},
	},
	{
		ID:          CriterionSafety,
		Label:       "Sécurité du quartier",
		Description: "Le quartier est-il considéré sécuritaire ?",
		Weight:      1.5,
		Options: map[string]int{
			"Très sécuritaire": 10,
			"Sécuritaire":      8,
			"Moyen":            5,
			"Problématique":    3,
			"Dangereux":        1,
		},
	},
	{
		ID:          CriterionTenantRisk,
		Label:       "Risque locatif",
		Description: "Risque de mauvais payeurs ou de litiges ?",
		Weight:      1.5,
		Options: map[string]int{
			"Très faible": 10,
			"Faible":      8,
			"Modéré":      5,
			"Élevé":       3,
			"Très élevé":  1,
		},
	},
}

// Criteria returns the fixed catalog in display order.
func Criteria() []Criterion {
	return catalog
}

// CriterionByID looks a criterion up by identifier.
func CriterionByID(id string) (Criterion, bool) {
	for _, c := range catalog {
		if c.ID == id {
			return c, true
		}
	}
	return Criterion{}, false
}
