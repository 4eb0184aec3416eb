package tickets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripteller/internal/itinerary"
)

func TestLookup_CuratedBeatsKeywords(t *testing.T) {
	svc := NewService()
	// "Louvre Museum" matches both the curated table and the "museum" keyword;
	// the curated entry must win.
	info := svc.Lookup("The Louvre Museum", "Paris")
	assert.Equal(t, "louvre.fr", info.Source)
	require.NotNil(t, info.Price)
	assert.Equal(t, "EUR 22", *info.Price)
	assert.True(t, info.RequiresTicket)
}

func TestLookup_CuratedFreeEntry(t *testing.T) {
	info := NewService().Lookup("British Museum", "London")
	assert.False(t, info.RequiresTicket)
	require.NotNil(t, info.Price)
	assert.Equal(t, "Free", *info.Price)
}

func TestLookup_TicketedKeyword(t *testing.T) {
	info := NewService().Lookup("Maritime Museum", "Oslo")
	assert.True(t, info.RequiresTicket)
	assert.Equal(t, "heuristic", info.Source)
	require.NotNil(t, info.BookingURL)
	assert.Contains(t, *info.BookingURL, "getyourguide.com")
	assert.Contains(t, *info.BookingURL, "Maritime+Museum+Oslo")
}

func TestLookup_FreeKeyword(t *testing.T) {
	info := NewService().Lookup("Oslo Central Park", "Oslo")
	assert.False(t, info.RequiresTicket)
	assert.Equal(t, "heuristic", info.Source)
	assert.Nil(t, info.BookingURL)
}

func TestLookup_DefaultUnknown(t *testing.T) {
	info := NewService().Lookup("Vigeland Installation", "Oslo")
	assert.False(t, info.RequiresTicket)
	assert.Equal(t, "default", info.Source)
	assert.Nil(t, info.Price)
}

func TestAnnotate_FillsBlanksAndReflattens(t *testing.T) {
	it := itinerary.Itinerary{
		City: "Oslo",
		Schedule: []itinerary.Day{
			{Day: 1, Places: []itinerary.Place{
				{Name: "Oslo Museum"},
				{Name: "Oslo Park", TicketInfo: &itinerary.TicketInfo{Source: "provider"}},
			}},
		},
	}
	it.AllPlaces = itinerary.Flatten(it.Schedule)

	NewService().Annotate(&it)

	require.NotNil(t, it.Schedule[0].Places[0].TicketInfo)
	assert.True(t, it.Schedule[0].Places[0].TicketInfo.RequiresTicket)
	// Provider-supplied info is left untouched.
	assert.Equal(t, "provider", it.Schedule[0].Places[1].TicketInfo.Source)
	// Flattened list reflects the enrichment.
	assert.Equal(t, itinerary.Flatten(it.Schedule), it.AllPlaces)
	require.NotNil(t, it.AllPlaces[0].TicketInfo)
}
