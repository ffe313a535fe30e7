// Package listing exposes listing-page extraction over HTTP.
package listing

import (
	"encoding/json"
	"fmt"
	"net/http"

	"plex_analyzer/pkg/core/listing"
)

// Request carries the listing URL to extract.
type Request struct {
	URL string `json:"url"`
}

// Handler serves the extraction endpoint.
type Handler struct {
	extractor *listing.Extractor
}

// NewHandler creates a listing handler with the default extractor.
func NewHandler() *Handler {
	return &Handler{extractor: listing.NewExtractor()}
}

// HandleExtract extracts a listing record from the given URL. Extraction
// failures travel inside the record's Error field with a 200 status; only a
// missing or undecodable URL is a 400.
func (h *Handler) HandleExtract(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.URL == "" {
		http.Error(w, "url is required", http.StatusBadRequest)
		return
	}

	record := h.extractor.Extract(r.Context(), req.URL)
	if record.Error != "" {
		fmt.Printf("[LISTING] %s: %s\n", req.URL, record.Error)
	} else {
		fmt.Printf("[LISTING] Extracted %s record from %s\n", record.Platform, req.URL)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record)
}
