package location

import "math"

// =============================================================================
// WEIGHTED LOCATION SCORE
// =============================================================================

// Score given to an answered criterion whose option label is unrecognized.
const fallbackOptionScore = 5

// Tier thresholds, highest first.
var tiers = []Tier{
	{8.5, "Excellent emplacement", "#00c853"},
	{7.0, "Bon emplacement", "#64dd17"},
	{5.5, "Emplacement correct", "#ffd600"},
	{4.0, "Emplacement à risque modéré", "#ff9100"},
	{math.Inf(-1), "Emplacement à risque élevé", "#ff1744"},
}

// Tier is a qualitative rating band with its display color.
type Tier struct {
	MinScore float64 `json:"min_score"`
	Label    string  `json:"label"`
	Color    string  `json:"color"`
}

// Detail is one answered criterion's contribution to the score.
type Detail struct {
	Criterion     string  `json:"criterion"`
	Answer        string  `json:"answer"`
	Score         int     `json:"score"`
	Weight        float64 `json:"weight"`
	WeightedScore float64 `json:"weighted_score"`
}

// Result is the outcome of a location scoring run. RadarValues maps every
// catalog label to its score, 0 for unanswered criteria.
type Result struct {
	Score       float64        `json:"score"`
	Tier        string         `json:"tier"`
	Color       string         `json:"color"`
	Details     []Detail       `json:"details"`
	RadarValues map[string]int `json:"radar_values"`
}

// Score computes the weighted location score from a criterion-id to
// option-label answer map. Unanswered criteria are skipped; an answered
// criterion with an unknown option label scores 5. The global score is the
// weighted average rounded to 1 decimal, 0 when nothing was answered.
func Score(answers map[string]string) Result {
	details := make([]Detail, 0, len(answers))
	weightedSum := 0.0
	weightSum := 0.0

	for _, criterion := range catalog {
		answer, ok := answers[criterion.ID]
		if !ok {
			continue
		}

		score, known := criterion.Options[answer]
		if !known {
			score = fallbackOptionScore
		}

		weightedSum += float64(score) * criterion.Weight
		weightSum += criterion.Weight

		details = append(details, Detail{
			Criterion:     criterion.Label,
			Answer:        answer,
			Score:         score,
			Weight:        criterion.Weight,
			WeightedScore: round1(float64(score) * criterion.Weight),
		})
	}

	global := 0.0
	if weightSum > 0 {
		global = round1(weightedSum / weightSum)
	}

	tier := tierFor(global)

	return Result{
		Score:       global,
		Tier:        tier.Label,
		Color:       tier.Color,
		Details:     details,
		RadarValues: radarValues(answers),
	}
}

// tierFor maps a global score to its qualitative band.
func tierFor(score float64) Tier {
	for _, tier := range tiers {
		if score >= tier.MinScore {
			return tier
		}
	}
	return tiers[len(tiers)-1]
}

// radarValues builds the label-to-score map for radar-style rendering.
// Unanswered criteria and unknown option labels report 0.
func radarValues(answers map[string]string) map[string]int {
	values := make(map[string]int, len(catalog))
	for _, criterion := range catalog {
		values[criterion.Label] = criterion.Options[answers[criterion.ID]]
	}
	return values
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
