package itinerary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_Idempotent(t *testing.T) {
	req := Request{
		Destination: "Kyoto",
		Days:        4,
		Pace:        PaceRelaxed,
		Preferences: []string{"historical", "food"},
	}
	first := BuildPrompt(req)
	second := BuildPrompt(req)
	assert.Equal(t, first, second)
}

func TestBuildPrompt_EmbedsLocationContext(t *testing.T) {
	req := Request{
		Destination: "Portland",
		Days:        3,
		Location:    &LocationContext{State: "Oregon", Country: "United States"},
	}
	prompt := BuildPrompt(req)
	assert.Contains(t, prompt, "Portland, Oregon, United States")
}

func TestBuildPrompt_PaceTiers(t *testing.T) {
	tests := []struct {
		pace Pace
		want string
	}{
		{PaceRelaxed, "2-3 attractions per day"},
		{PaceModerate, "3-4 attractions per day"},
		{PaceIntensive, "4-6 attractions per day"},
		// Unknown values fall back to moderate.
		{Pace("extreme"), "3-4 attractions per day"},
		{Pace(""), "3-4 attractions per day"},
	}
	for _, tt := range tests {
		prompt := BuildPrompt(Request{Destination: "Oslo", Days: 2, Pace: tt.pace})
		assert.Contains(t, prompt, tt.want, "pace %q", tt.pace)
	}
}

func TestBuildPrompt_PreferencesOnlyWhenPresent(t *testing.T) {
	with := BuildPrompt(Request{Destination: "Rome", Days: 3, Preferences: []string{"art", "food"}})
	assert.Contains(t, with, "art, food")

	without := BuildPrompt(Request{Destination: "Rome", Days: 3})
	assert.NotContains(t, without, "Prioritize attractions")
}

func TestBuildPrompt_DemandsBareJSON(t *testing.T) {
	prompt := BuildPrompt(Request{Destination: "Kyoto", Days: 3})
	assert.Contains(t, prompt, "Return JSON only, no surrounding text.")
	assert.Contains(t, prompt, `"schedule"`)
	assert.Contains(t, prompt, `"tips"`)
}

func TestBuildPrompt_DefaultsDays(t *testing.T) {
	prompt := BuildPrompt(Request{Destination: "Kyoto"})
	assert.True(t, strings.HasPrefix(prompt, "Create a 3-day travel itinerary for Kyoto."))
}
