package utils

import (
	"strings"
	"testing"
)

func TestDecodeLenientStandardJSON(t *testing.T) {
	var out map[string]interface{}
	err := DecodeLenient(`{"price": 450000, "address": "123 rue Principale"}`, &out)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if out["price"].(float64) != 450000 {
		t.Errorf("Expected price 450000, got %v", out["price"])
	}
}

func TestDecodeLenientRepairsMalformedJSON(t *testing.T) {
	// Single quotes and a trailing comma, as scraped JSON-LD often arrives.
	var out map[string]interface{}
	err := DecodeLenient(`{'price': 450000, 'city': 'Montréal',}`, &out)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if out["city"] != "Montréal" {
		t.Errorf("Expected city Montréal, got %v", out["city"])
	}
}

func TestDecodeLenientHjsonFallback(t *testing.T) {
	// Unquoted keys with comments only parse on the Hjson path.
	input := `{
  # annonce
  price: 450000
  city: Laval
}`
	var out map[string]interface{}
	if err := DecodeLenient(input, &out); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if out["city"] != "Laval" {
		t.Errorf("Expected city Laval, got %v", out["city"])
	}
}

func TestDecodeLenientRejectsGarbage(t *testing.T) {
	// No decode strategy can shape free text into a numeric array.
	var out []float64
	if err := DecodeLenient("<html><body>rien</body></html>", &out); err == nil {
		t.Error("Expected an error for non-JSON input")
	}
}

func TestRepairJSONKeepsInputOnFailure(t *testing.T) {
	valid := RepairJSON(`{'a': 1}`)
	var out map[string]interface{}
	if err := DecodeLenient(valid, &out); err != nil {
		t.Errorf("Repaired output should decode, got %v", err)
	}
}

func TestRenderMarkdown(t *testing.T) {
	html, err := RenderMarkdown("# Rapport\n\nUn **quadruplex** à Montréal.")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(html, "<h1>") {
		t.Errorf("Expected an h1 in output, got %q", html)
	}
	if !strings.Contains(html, "<strong>quadruplex</strong>") {
		t.Errorf("Expected bold rendering, got %q", html)
	}
}

func TestRenderMarkdownTables(t *testing.T) {
	md := "| Année | Cashflow |\n|---|---|\n| 1 | 8643.76 |"
	html, err := RenderMarkdown(md)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(html, "<table>") {
		t.Errorf("Expected a table in output, got %q", html)
	}
}
