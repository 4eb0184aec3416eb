package itinerary

import (
	"fmt"
	"strings"
)

// paceGuidance expands each pace tier into attraction-count and dwell-time
// wording for the prompt. The tiers are fixed product copy, not configuration.
var paceGuidance = map[Pace]string{
	PaceRelaxed:   "2-3 attractions per day, allowing 3-4 hours at each place for a leisurely experience",
	PaceModerate:  "3-4 attractions per day, allowing 2-3 hours at each place",
	PaceIntensive: "4-6 attractions per day, allowing 1-2 hours at each place to see as much as possible",
}

// BuildPrompt turns a validated request into the instruction string sent to the
// provider. It is a pure function: identical requests produce identical prompts,
// which the normalizer tests rely on.
func BuildPrompt(req Request) string {
	req = req.withDefaults()

	location := req.Destination
	if req.Location != nil {
		if req.Location.State != "" {
			location += ", " + req.Location.State
		}
		if req.Location.Country != "" {
			location += ", " + req.Location.Country
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create a %d-day travel itinerary for %s.\n\n", req.Days, location)
	b.WriteString("Requirements:\n")
	fmt.Fprintf(&b, "1. Recommend %s.\n", paceGuidance[req.Pace])
	b.WriteString("2. For each place include its name, a 100-150 word description, a suggested visit duration, and a category (history, nature, food, art, and so on).\n")
	if len(req.Preferences) > 0 {
		fmt.Fprintf(&b, "3. Prioritize attractions matching these interests: %s.\n", strings.Join(req.Preferences, ", "))
		b.WriteString("4. Finish with practical travel tips for the destination.\n")
	} else {
		b.WriteString("3. Finish with practical travel tips for the destination.\n")
	}

	fmt.Fprintf(&b, `
Return the result as JSON with this exact structure:
{
    "city": "%s",
    "days": %d,
    "schedule": [
        {
            "day": 1,
            "places": [
                {
                    "name": "Attraction name",
                    "description": "Detailed description (100-150 words)",
                    "duration": "Suggested visit duration",
                    "category": "Category",
                    "ticketInfo": null
                }
            ]
        }
    ],
    "tips": ["Tip 1", "Tip 2", "Tip 3"]
}

Return JSON only, no surrounding text.
`, req.Destination, req.Days)

	return b.String()
}
