package itinerary

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseError reports provider output that could not be turned into an
// Itinerary. The orchestrator absorbs it and serves the fallback instead.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed provider output: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Normalize converts raw provider text into a structured Itinerary. Models
// routinely wrap their JSON in markdown fences despite being told not to, so
// the fixed ```json / ``` markers are stripped before parsing. This repair is
// deliberately narrow: anything beyond fence stripping is a ParseError, not a
// candidate for fancier recovery.
//
// An absent schedule is not an error; it yields an itinerary with no days.
// AllPlaces is always re-derived from the schedule, even if the payload
// carried its own flattened list.
func Normalize(raw string) (Itinerary, error) {
	cleaned := stripCodeFence(raw)

	var it Itinerary
	if err := json.Unmarshal([]byte(cleaned), &it); err != nil {
		return Itinerary{}, &ParseError{Err: err}
	}

	it.AllPlaces = Flatten(it.Schedule)
	return it, nil
}

// stripCodeFence removes a leading ```json or ``` marker and a trailing ```
// marker if present (e.g. ```json ... ```).
func stripCodeFence(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
