package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	apiAnalysis "plex_analyzer/pkg/api/analysis"
	apiConfig "plex_analyzer/pkg/api/config"
	apiListing "plex_analyzer/pkg/api/listing"
	"plex_analyzer/pkg/core/assumption"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Load default assumptions, overridable by a YAML file
	assumptionsPath := os.Getenv("ASSUMPTIONS_FILE")
	if assumptionsPath == "" {
		assumptionsPath = "config/assumptions.yaml"
	}

	defaults := assumption.Defaults()
	if _, err := os.Stat(assumptionsPath); err == nil {
		loaded, err := assumption.LoadFile(assumptionsPath)
		if err != nil {
			fmt.Printf("[FATAL] Invalid assumptions file %s: %v\n", assumptionsPath, err)
			os.Exit(1)
		}
		defaults = loaded
		fmt.Printf("[CONFIG] Loaded assumptions from %s\n", assumptionsPath)
	} else {
		fmt.Println("[CONFIG] Using built-in default assumptions")
	}

	// Config and location endpoints
	configHandler := apiConfig.NewHandler(defaults)
	http.HandleFunc("/api/config", configHandler.HandleConfig)
	http.HandleFunc("/api/location/score", configHandler.HandleLocationScore)

	// Analysis endpoints
	analysisHandler := apiAnalysis.NewHandler(defaults)
	http.HandleFunc("/api/analysis/report", analysisHandler.HandleReport)
	http.HandleFunc("/api/analysis/report/html", analysisHandler.HandleReportHTML)

	// Listing extraction endpoint
	listingHandler := apiListing.NewHandler()
	http.HandleFunc("/api/listing/extract", listingHandler.HandleExtract)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("API server starting on :%s...\n", port)
	fmt.Println("  - GET  /api/config")
	fmt.Println("  - POST /api/location/score")
	fmt.Println("  - POST /api/analysis/report")
	fmt.Println("  - POST /api/analysis/report/html")
	fmt.Println("  - POST /api/listing/extract")

	if err := http.ListenAndServe(":"+port, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
