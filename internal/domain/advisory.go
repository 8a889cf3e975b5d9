package domain

import "time"

// Advisory and preparation texts shown next to the form
const (
	FreshnessAdvisoryTitle   = "Il Consiglio dello Chef"
	FreshnessAdvisoryMessage = "Il baccalà viene cucinato il Mercoledì sera. Per gustarlo appena fatto, prenota per Giovedì o Venerdì!"
	PreparationNotice        = "Il baccalà viene preparato fresco ogni Mercoledì sera. Lo trovi appena sfornato dal Mercoledì dopo le 19:00 in poi."
)

// ShowFreshnessAdvisory reports whether the pickup should be nudged to a later day.
// The dish is cooked on Wednesday evening, so Monday, Tuesday and Wednesday morning
// pickups get leftovers of the previous batch.
func ShowFreshnessAdvisory(pickupDate Date, slot TimeSlot) bool {
	if pickupDate.IsZero() {
		return false
	}

	switch pickupDate.Weekday() {
	case time.Monday, time.Tuesday:
		return true
	case time.Wednesday:
		return slot == TimeSlotMorning
	default:
		return false
	}
}
