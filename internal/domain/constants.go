package domain

// Quantity defaults
const (
	DefaultGramsPerPerson = 200
	DefaultPersonCount    = 2
	MinPersonCount        = 1
	MaxPersonCount        = 50
)

// Manual quantity hints (shown to the user, not enforced on submit)
const (
	ManualGramsMin  = 50
	ManualGramsStep = 50
)

// Business validation constants
const (
	MaxNameLength  = 100
	MaxPhoneLength = 30
	MaxNotesLength = 500
)

// Date format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	DaysInWeek = 7
)

// Message placeholders used when optional draft fields are empty
const (
	PhoneNotProvided    = "Non fornito"
	TimeSlotUnspecified = "Non specificato"
	NoAdditionalNotes   = "Nessuna nota aggiuntiva"
)
