package models

const EventStatusUpcoming = "upcoming"

type Event struct {
	EventID          string  `json:"eventId"`
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	Date             string  `json:"date"`
	Location         string  `json:"location"`
	MaxAttendees     float64 `json:"maxAttendees"`
	CurrentAttendees float64 `json:"currentAttendees"`
	Status           string  `json:"status"`
}

// NewEvent builds a freshly created event: nobody attending yet, upcoming.
func NewEvent(id, title, description, date, location string, maxAttendees float64) Event {
	return Event{
		EventID:          id,
		Title:            title,
		Description:      description,
		Date:             date,
		Location:         location,
		MaxAttendees:     maxAttendees,
		CurrentAttendees: 0,
		Status:           EventStatusUpcoming,
	}
}
