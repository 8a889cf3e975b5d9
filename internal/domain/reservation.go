package domain

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionStatus represents the state of a reservation submit attempt
type SubmissionStatus string

const (
	StatusIdle    SubmissionStatus = "idle"
	StatusPending SubmissionStatus = "pending"
	StatusSuccess SubmissionStatus = "success"
	StatusError   SubmissionStatus = "error"
)

// IsValid returns true for the known statuses
func (s SubmissionStatus) IsValid() bool {
	switch s {
	case StatusIdle, StatusPending, StatusSuccess, StatusError:
		return true
	default:
		return false
	}
}

// QuantityMode selects how the reserved weight is entered
type QuantityMode string

const (
	ModeByPeople QuantityMode = "people"
	ModeManual   QuantityMode = "manual"
)

// IsValid returns true for the known modes
func (m QuantityMode) IsValid() bool {
	return m == ModeByPeople || m == ModeManual
}

// ReservationDraft is the in-progress reservation held by the form
type ReservationDraft struct {
	ProductName    string
	FirstName      string
	LastName       string
	Phone          string // optional
	Grams          int
	PickupDate     Date
	PickupTimeSlot TimeSlot // optional
	Notes          string   // optional
}

// CustomerName returns "FirstName LastName"
func (d *ReservationDraft) CustomerName() string {
	return d.FirstName + " " + d.LastName
}

// PhoneLabel returns the phone or the "not provided" placeholder
func (d *ReservationDraft) PhoneLabel() string {
	if d.Phone == "" {
		return PhoneNotProvided
	}
	return d.Phone
}

// NotesLabel returns the notes or the "no additional notes" placeholder
func (d *ReservationDraft) NotesLabel() string {
	if d.Notes == "" {
		return NoAdditionalNotes
	}
	return d.Notes
}

// Reservation is a validated draft handed to the notification gateway
type Reservation struct {
	Reference   uuid.UUID
	Draft       ReservationDraft
	SubmittedAt time.Time
}

// Receipt describes a reservation accepted by the gateway
type Receipt struct {
	Reference   uuid.UUID
	ProductName string
	Grams       int
	PickupDate  Date
	SubmittedAt time.Time
}
