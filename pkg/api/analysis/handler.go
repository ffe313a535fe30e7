// Package analysis exposes the investment analysis engine over HTTP.
package analysis

import (
	"encoding/json"
	"fmt"
	"net/http"

	core "plex_analyzer/pkg/core/analysis"
	"plex_analyzer/pkg/core/assumption"
	"plex_analyzer/pkg/core/report"
)

// Request is the analysis payload: the property, optional assumption
// overrides and optional location criteria answers.
type Request struct {
	Property        core.PropertyInput   `json:"property"`
	Assumptions     assumption.Overrides `json:"assumptions"`
	LocationAnswers map[string]string    `json:"location_answers,omitempty"`
}

// Handler serves analysis endpoints.
type Handler struct {
	engine   *core.Engine
	defaults assumption.Set
}

// NewHandler creates an analysis handler over the given default assumptions.
func NewHandler(defaults assumption.Set) *Handler {
	return &Handler{
		engine:   core.NewEngine(),
		defaults: defaults,
	}
}

// HandleReport runs a full analysis and returns the report as JSON.
func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	result, ok := h.runAnalysis(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// HandleReportHTML runs a full analysis and returns the rendered report.
func (h *Handler) HandleReportHTML(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	result, ok := h.runAnalysis(w, r)
	if !ok {
		return
	}

	html, err := report.RenderHTML(result)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, html)
}

// runAnalysis decodes the request and executes the engine. Input problems
// are written as 400 responses and reported through the ok flag.
func (h *Handler) runAnalysis(w http.ResponseWriter, r *http.Request) (*core.Report, bool) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	set := h.defaults
	set.Apply(req.Assumptions)

	result, err := h.engine.Analyze(req.Property, set, req.LocationAnswers)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	fmt.Printf("[ANALYSIS] Run %s: price=%.0f rent=%.0f jurisdiction=%s\n",
		result.RunID, req.Property.Price, result.YearOne.GrossRent, set.Jurisdiction)
	return result, true
}
