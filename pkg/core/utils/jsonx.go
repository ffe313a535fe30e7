package utils

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// DecodeLenient unmarshals JSON that may be slightly malformed, as structured
// data embedded in listing pages often is (trailing commas, single quotes,
// unquoted keys, truncated blocks). Strategies, strictest first:
//  1. standard JSON
//  2. mechanical repair, then standard JSON
//  3. Hjson (most lenient)
func DecodeLenient(input string, target interface{}) error {
	if err := json.Unmarshal([]byte(input), target); err == nil {
		return nil
	}

	if repaired, err := jsonrepair.RepairJSON(input); err == nil {
		if err := json.Unmarshal([]byte(repaired), target); err == nil {
			return nil
		}
	}

	if err := hjson.Unmarshal([]byte(input), target); err == nil {
		return nil
	}

	return fmt.Errorf("lenient decode failed: input is not JSON in any accepted form")
}

// RepairJSON mechanically fixes common JSON defects and returns the repaired
// document, or the input unchanged when repair fails.
func RepairJSON(input string) string {
	repaired, err := jsonrepair.RepairJSON(input)
	if err != nil {
		return input
	}
	return repaired
}
