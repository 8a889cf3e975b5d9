package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/BaccalaMarket/internal/domain"
	createReservation "github.com/m04kA/BaccalaMarket/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	ProductID      string `json:"productId"`
	Mode           string `json:"mode,omitempty"` // "people" | "manual"
	PersonCount    int    `json:"personCount,omitempty"`
	Grams          int    `json:"grams,omitempty"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Phone          string `json:"phone,omitempty"`
	PickupDate     string `json:"pickupDate"`               // "2025-06-12"
	PickupTimeSlot string `json:"pickupTimeSlot,omitempty"` // "Mattina" | "Pomeriggio"
	Notes          string `json:"notes,omitempty"`

	// SubmissionToken ключ отправки, повтор с тем же ключом во время отправки отклоняется
	SubmissionToken string `json:"submissionToken,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	Reference         string `json:"reference"`
	ProductName       string `json:"productName"`
	Grams             int    `json:"grams"`
	PickupDate        string `json:"pickupDate"`
	PickupTimeSlot    string `json:"pickupTimeSlot"`
	FreshnessAdvisory bool   `json:"freshnessAdvisory"`
	SubmittedAt       string `json:"submittedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	date, err := domain.ParseDate(r.PickupDate)
	if err != nil {
		return nil, fmt.Errorf("pickupDate: %w", err)
	}

	slot, err := domain.ParseTimeSlot(r.PickupTimeSlot)
	if err != nil {
		return nil, fmt.Errorf("pickupTimeSlot: %w", err)
	}

	return &createReservation.Request{
		ProductID:   r.ProductID,
		Mode:        domain.QuantityMode(r.Mode),
		PersonCount: r.PersonCount,
		Grams:       r.Grams,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Phone:       r.Phone,
		PickupDate:  date,
		TimeSlot:    slot,
		Notes:       r.Notes,

		SubmissionToken: r.SubmissionToken,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		Reference:         resp.Reference.String(),
		ProductName:       resp.ProductName,
		Grams:             resp.Grams,
		PickupDate:        resp.PickupDate.String(),
		PickupTimeSlot:    resp.TimeSlot.Label(),
		FreshnessAdvisory: resp.FreshnessAdvisory,
		SubmittedAt:       resp.SubmittedAt.Format(time.RFC3339),
	}
}
