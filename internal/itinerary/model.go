package itinerary

import "errors"

// ErrInvalidRequest is the only failure Generate surfaces to callers.
var ErrInvalidRequest = errors.New("destination is required")

// Pace controls attraction density and suggested dwell time per day.
type Pace string

const (
	PaceRelaxed   Pace = "relaxed"
	PaceModerate  Pace = "moderate"
	PaceIntensive Pace = "intensive"
)

// LocationContext disambiguates same-named destinations. It comes from the
// place-search collaborator and is only used to sharpen the prompt.
type LocationContext struct {
	State   string `json:"state"`
	Country string `json:"country"`
}

// Request describes one itinerary generation call. It is constructed per
// inbound request, consumed once, and discarded.
type Request struct {
	Destination string           `json:"city"`
	Days        int              `json:"days"`
	Pace        Pace             `json:"intensity"`
	Preferences []string         `json:"preferences"`
	Location    *LocationContext `json:"location_context"`
}

// withDefaults fills in the documented defaults: 3 days when unset, moderate
// pace for unknown values.
func (r Request) withDefaults() Request {
	if r.Days < 1 {
		r.Days = 3
	}
	switch r.Pace {
	case PaceRelaxed, PaceModerate, PaceIntensive:
	default:
		r.Pace = PaceModerate
	}
	return r
}

// TicketInfo is advisory ticket-purchase guidance for one attraction.
type TicketInfo struct {
	RequiresTicket bool    `json:"requires_ticket"`
	Price          *string `json:"price"`
	BookingURL     *string `json:"booking_url"`
	Source         string  `json:"source"`
	Notes          string  `json:"notes"`
}

// Place is one recommended attraction.
type Place struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Duration    string      `json:"duration"`
	Category    string      `json:"category"`
	TicketInfo  *TicketInfo `json:"ticketInfo,omitempty"`
}

// Day is one day's ordered schedule.
type Day struct {
	Day    int     `json:"day"`
	Places []Place `json:"places"`
}

// Itinerary is the structured result returned to callers. AllPlaces is always
// derived by flattening Schedule in day order, never populated independently.
type Itinerary struct {
	City      string   `json:"city"`
	Days      int      `json:"days"`
	Schedule  []Day    `json:"schedule"`
	Tips      []string `json:"tips"`
	AllPlaces []Place  `json:"places"`
}

// Flatten concatenates each day's places in order. Used for the map view and
// re-derived whenever the schedule is mutated.
func Flatten(schedule []Day) []Place {
	var all []Place
	for _, d := range schedule {
		all = append(all, d.Places...)
	}
	return all
}
