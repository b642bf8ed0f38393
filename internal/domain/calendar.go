package domain

// CalendarEntry is a single (already-expanded) entry from the external
// calendar provider. Start/End carry either a dateTime or an all-day date,
// mirroring the provider's wire format.
type CalendarEntry struct {
	ID          string       `json:"id"`
	Summary     string       `json:"summary"`
	Description string       `json:"description,omitempty"`
	Location    string       `json:"location,omitempty"`
	HangoutLink string       `json:"hangoutLink,omitempty"`
	Start       CalendarTime `json:"start"`
	End         CalendarTime `json:"end"`
}

type CalendarTime struct {
	DateTime string `json:"dateTime,omitempty"`
	Date     string `json:"date,omitempty"`
}
