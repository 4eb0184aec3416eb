package itinerary

import "fmt"

// Sample returns the deterministic fallback itinerary: a fixed three-day
// template with the destination interpolated into every place. It is served
// whenever no provider is configured or provider output cannot be trusted.
//
// Note: the schedule is always three days even when days differs; the days
// field passes the requested count through unchanged. Downstream clients
// render the schedule length, so this asymmetry is kept as-is.
func Sample(destination string, days int) Itinerary {
	schedule := []Day{
		{
			Day: 1,
			Places: []Place{
				{
					Name:        fmt.Sprintf("%s Central Square", destination),
					Description: fmt.Sprintf("The landmark square at the heart of %s and a must-see for every visitor. History and modern city life meet here, surrounded by important historic buildings and a busy commercial district. The square hosts cultural events and festivals throughout the year.", destination),
					Duration:    "1-2 hours",
					Category:    "History & Culture",
				},
				{
					Name:        fmt.Sprintf("%s Museum", destination),
					Description: fmt.Sprintf("Home to a rich collection of historical artifacts and works of art tracing the development of %s and the surrounding region. The building itself is worth the visit, blending traditional and contemporary design.", destination),
					Duration:    "2-3 hours",
					Category:    "Culture & Education",
				},
				{
					Name:        fmt.Sprintf("%s Old Town", destination),
					Description: fmt.Sprintf("A well-preserved historic quarter where a stroll reveals the traditional face of %s. Narrow streets are lined with small shops, traditional restaurants and cafes, making it the best place to experience local life.", destination),
					Duration:    "2-3 hours",
					Category:    "History & Culture",
				},
			},
		},
		{
			Day: 2,
			Places: []Place{
				{
					Name:        fmt.Sprintf("%s Park", destination),
					Description: fmt.Sprintf("The largest city park in %s, full of greenery and lakeside views. A favourite spot for locals to relax and one of the best places to take in the city skyline. Especially beautiful in spring and autumn.", destination),
					Duration:    "2-3 hours",
					Category:    "Nature",
				},
				{
					Name:        fmt.Sprintf("%s Food Street", destination),
					Description: fmt.Sprintf("A street gathering the signature flavours of %s, from traditional snacks to modern dining. In the evening the street lights up and fills with crowds, making it the best choice for sampling authentic local food.", destination),
					Duration:    "2-3 hours",
					Category:    "Food & Shopping",
				},
				{
					Name:        fmt.Sprintf("%s Observation Deck", destination),
					Description: fmt.Sprintf("A viewing platform at the highest point of the city with a full panorama of %s. Visit around sunset for the most striking views of the city at night.", destination),
					Duration:    "1-2 hours",
					Category:    "Sightseeing",
				},
			},
		},
		{
			Day: 3,
			Places: []Place{
				{
					Name:        fmt.Sprintf("%s Market", destination),
					Description: fmt.Sprintf("The most characterful traditional market in %s, selling fresh produce, handicrafts and souvenirs. A close-up look at everyday local life and a good place to pick up distinctive gifts.", destination),
					Duration:    "1-2 hours",
					Category:    "Shopping",
				},
				{
					Name:        fmt.Sprintf("%s Arts District", destination),
					Description: fmt.Sprintf("A creative quarter of %s dotted with galleries, studios, independent bookshops and cafes. Street art and performers give the area its distinctive cultural atmosphere.", destination),
					Duration:    "2-3 hours",
					Category:    "Art & Culture",
				},
			},
		},
	}

	tips := []string{
		fmt.Sprintf("Check the weather forecast for %s in advance and pack accordingly", destination),
		"Consider buying a local transit card to save on fares",
		"Respect local culture and customs",
		"Keep an eye on your belongings and stay safe",
		"Download a translation app and offline maps just in case",
	}

	return Itinerary{
		City:      destination,
		Days:      days,
		Schedule:  schedule,
		Tips:      tips,
		AllPlaces: Flatten(schedule),
	}
}
