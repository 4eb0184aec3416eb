package itinerary

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
	"city": "Kyoto",
	"days": 2,
	"schedule": [
		{"day": 1, "places": [
			{"name": "Fushimi Inari", "description": "Shrine", "duration": "2 hours", "category": "history"},
			{"name": "Nishiki Market", "description": "Food market", "duration": "1 hour", "category": "food"}
		]},
		{"day": 2, "places": [
			{"name": "Arashiyama", "description": "Bamboo grove", "duration": "2 hours", "category": "nature"}
		]}
	],
	"tips": ["Buy a bus pass"]
}`

func TestNormalize_PlainJSON(t *testing.T) {
	it, err := Normalize(sampleJSON)
	require.NoError(t, err)
	assert.Equal(t, "Kyoto", it.City)
	assert.Len(t, it.Schedule, 2)
	require.Len(t, it.AllPlaces, 3)
	assert.Equal(t, "Fushimi Inari", it.AllPlaces[0].Name)
	assert.Equal(t, "Nishiki Market", it.AllPlaces[1].Name)
	assert.Equal(t, "Arashiyama", it.AllPlaces[2].Name)
}

func TestNormalize_FencedEqualsUnfenced(t *testing.T) {
	fenced := "```json\n" + sampleJSON + "\n```"
	plain, err := Normalize(sampleJSON)
	require.NoError(t, err)
	wrapped, err := Normalize(fenced)
	require.NoError(t, err)
	assert.Equal(t, plain, wrapped)
}

func TestNormalize_BareFence(t *testing.T) {
	fenced := "```\n" + sampleJSON + "\n```"
	it, err := Normalize(fenced)
	require.NoError(t, err)
	assert.Equal(t, "Kyoto", it.City)
}

func TestNormalize_SurroundingWhitespace(t *testing.T) {
	it, err := Normalize("\n\n  " + sampleJSON + "  \n")
	require.NoError(t, err)
	assert.Equal(t, "Kyoto", it.City)
}

func TestNormalize_NotJSONIsParseError(t *testing.T) {
	_, err := Normalize("not json")
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
}

func TestNormalize_ProseAroundJSONRejected(t *testing.T) {
	// The repair is intentionally narrow: only fixed fence markers are
	// stripped, not arbitrary leading prose.
	_, err := Normalize("Here is your itinerary:\n" + sampleJSON)
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
}

func TestNormalize_MissingScheduleIsNotAnError(t *testing.T) {
	it, err := Normalize(`{"city": "Kyoto", "days": 3, "tips": []}`)
	require.NoError(t, err)
	assert.Empty(t, it.Schedule)
	assert.Empty(t, it.AllPlaces)
}

func TestNormalize_AllPlacesNeverTrustedFromPayload(t *testing.T) {
	raw := `{
		"city": "Kyoto",
		"schedule": [{"day": 1, "places": [{"name": "Kinkaku-ji"}]}],
		"places": [{"name": "Bogus"}, {"name": "Entries"}]
	}`
	it, err := Normalize(raw)
	require.NoError(t, err)
	require.Len(t, it.AllPlaces, 1)
	assert.Equal(t, "Kinkaku-ji", it.AllPlaces[0].Name)
}
