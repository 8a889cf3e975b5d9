package domain

// OpeningHours holds the shop hours for one weekday
type OpeningHours struct {
	Day       string
	Morning   string
	Afternoon string
}

// Closed marks a half-day when the shop is closed
const Closed = "Chiuso"

// DefaultOpeningHours returns the weekly opening hours table
func DefaultOpeningHours() []OpeningHours {
	return []OpeningHours{
		{Day: "Lunedì", Morning: Closed, Afternoon: "15:30 - 19:30"},
		{Day: "Martedì", Morning: "08:30 - 12:30", Afternoon: "15:30 - 19:30"},
		{Day: "Mercoledì", Morning: "08:30 - 12:30", Afternoon: "15:30 - 19:30"},
		{Day: "Giovedì", Morning: "08:30 - 12:30", Afternoon: "15:30 - 19:30"},
		{Day: "Venerdì", Morning: "08:30 - 12:30", Afternoon: "15:30 - 19:30"},
		{Day: "Sabato", Morning: "08:30 - 12:30", Afternoon: "15:30 - 19:00"},
		{Day: "Domenica", Morning: Closed, Afternoon: Closed},
	}
}
