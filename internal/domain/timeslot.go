package domain

import (
	"fmt"
	"strings"
)

// TimeSlot represents the pickup part of the day. The zero value means "unset".
type TimeSlot string

const (
	TimeSlotUnset     TimeSlot = ""
	TimeSlotMorning   TimeSlot = "Mattina"
	TimeSlotAfternoon TimeSlot = "Pomeriggio"
)

// TimeSlots lists the selectable slots in display order
var TimeSlots = []TimeSlot{TimeSlotMorning, TimeSlotAfternoon}

// ParseTimeSlot parses a slot from its display value or its english alias.
// Empty input yields TimeSlotUnset.
func ParseTimeSlot(s string) (TimeSlot, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return TimeSlotUnset, nil
	case "mattina", "morning":
		return TimeSlotMorning, nil
	case "pomeriggio", "afternoon":
		return TimeSlotAfternoon, nil
	default:
		return TimeSlotUnset, fmt.Errorf("unknown time slot %q", s)
	}
}

// IsSet returns true if a slot was chosen
func (s TimeSlot) IsSet() bool {
	return s != TimeSlotUnset
}

// Label returns the slot as shown in notifications
func (s TimeSlot) Label() string {
	if !s.IsSet() {
		return TimeSlotUnspecified
	}
	return string(s)
}
