// Package config exposes the analyzer's catalogs and default assumptions,
// plus the standalone location scorer.
package config

import (
	"encoding/json"
	"fmt"
	"net/http"

	"plex_analyzer/pkg/core/assumption"
	"plex_analyzer/pkg/core/finance"
	"plex_analyzer/pkg/core/location"
)

// Jurisdiction pairs a schedule key with its display label.
type Jurisdiction struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Response is the full configuration surface the form needs to render.
type Response struct {
	Jurisdictions     []Jurisdiction       `json:"jurisdictions"`
	AmortizationYears []int                `json:"amortization_years"`
	Defaults          assumption.Set       `json:"defaults"`
	Criteria          []location.Criterion `json:"criteria"`
}

// ScoreRequest carries criterion-id to option-label answers.
type ScoreRequest struct {
	Answers map[string]string `json:"answers"`
}

// Handler holds dependencies for config endpoints.
type Handler struct {
	defaults assumption.Set
}

// NewHandler creates a config handler over the given default assumptions.
func NewHandler(defaults assumption.Set) *Handler {
	return &Handler{defaults: defaults}
}

// HandleConfig returns jurisdictions, amortization options, defaults and
// the location criteria catalog.
func (h *Handler) HandleConfig(w http.ResponseWriter, r *http.Request) {
	// Add CORS headers for local dev
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	jurisdictions := make([]Jurisdiction, 0, len(finance.Jurisdictions()))
	for _, key := range finance.Jurisdictions() {
		jurisdictions = append(jurisdictions, Jurisdiction{
			Key:   key,
			Label: finance.JurisdictionLabel(key),
		})
	}

	resp := Response{
		Jurisdictions:     jurisdictions,
		AmortizationYears: finance.AmortizationYearOptions,
		Defaults:          h.defaults,
		Criteria:          location.Criteria(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// HandleLocationScore scores location criteria answers on their own. The
// scorer runs independently of any property analysis.
func (h *Handler) HandleLocationScore(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := location.Score(req.Answers)
	fmt.Printf("[LOCATION] Scored %d answers: %.1f/10\n", len(req.Answers), result.Score)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
