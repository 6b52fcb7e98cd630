// Package utils holds small shared helpers with no domain logic of their
// own.
package utils

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// Listing feeds are not uniformly well-behaved: some vendors emit trailing
// commas, single-quoted keys, or comment-laden pseudo-JSON. These helpers
// decode such payloads without giving up at the first syntax error.

// RepairJSON fixes common JSON defects (missing key quotes, single quotes,
// unclosed containers, trailing commas, comments, stray markdown fences)
// and returns well-formed JSON.
func RepairJSON(malformed string) (string, error) {
	repaired, err := jsonrepair.RepairJSON(malformed)
	if err != nil {
		return "", fmt.Errorf("json repair failed: %w", err)
	}
	return repaired, nil
}

// ParseHJSON converts Hjson (comments, unquoted keys/strings, optional
// commas) into standard JSON.
func ParseHJSON(data string) (string, error) {
	var result interface{}
	if err := hjson.Unmarshal([]byte(data), &result); err != nil {
		return "", fmt.Errorf("hjson parse failed: %w", err)
	}
	out, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("json re-marshal failed: %w", err)
	}
	return string(out), nil
}

// SmartDecode unmarshals input into target, escalating through three
// strategies: strict JSON, repaired JSON, then Hjson. Returns an error only
// when all three fail.
func SmartDecode(input string, target interface{}) error {
	if err := json.Unmarshal([]byte(input), target); err == nil {
		return nil
	}

	if repaired, err := RepairJSON(input); err == nil {
		if err := json.Unmarshal([]byte(repaired), target); err == nil {
			return nil
		}
	}

	if normalized, err := ParseHJSON(input); err == nil {
		if err := json.Unmarshal([]byte(normalized), target); err == nil {
			return nil
		}
	}

	return fmt.Errorf("undecodable payload: all parsing strategies failed")
}
