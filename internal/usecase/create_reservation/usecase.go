package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BaccalaMarket/internal/domain"
	"github.com/m04kA/BaccalaMarket/internal/reservation"
)

// MetricsSource метка источника бронирования в метриках
const MetricsSource = "api"

// UseCase use case для создания бронирования через JSON API.
// Каждый запрос проходит через собственный экземпляр формы, поэтому
// правила количества, календаря и валидации те же, что и у веб-формы.
type UseCase struct {
	settings     reservation.Settings
	gateway      Gateway
	metrics      ReservationMetrics
	timeProvider TimeProvider
	logger       Logger
	inFlight     *reservation.InFlight
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil.
func NewUseCase(
	settings reservation.Settings,
	gateway Gateway,
	metrics ReservationMetrics,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		settings:     settings,
		gateway:      gateway,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
		inFlight:     reservation.NewInFlight(),
	}
}

// Execute заполняет форму из запроса и отправляет бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: product=%q, mode=%s, people=%d, grams=%d, date=%s, slot=%s",
		req.ProductID, req.Mode, req.PersonCount, req.Grams, req.PickupDate, req.TimeSlot.Label())

	engine := reservation.NewEngine(uc.settings, uc.gateway, uc.timeProvider, uc.logger)

	if err := fill(engine, req); err != nil {
		uc.logger.Warn("CreateReservation: rejected: %v", err)
		uc.record(reservation.OutcomeInvalid)
		return nil, err
	}

	advisory := engine.FreshnessAdvisory()

	receipt, err := uc.inFlight.Submit(ctx, engine, req.SubmissionToken)
	uc.record(reservation.Outcome(err))
	if err != nil {
		var verr *reservation.ValidationError
		switch {
		case errors.Is(err, reservation.ErrSubmissionInFlight):
			uc.logger.Warn("CreateReservation: duplicate submission token=%q", req.SubmissionToken)
			return nil, fmt.Errorf("%w: %q", ErrSubmissionInFlight, req.SubmissionToken)
		case errors.As(err, &verr):
			uc.logger.Warn("CreateReservation: validation failed: fields=%v", verr.Fields)
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, verr)
		default:
			// ErrGateway или таймаут отправки
			uc.logger.Error("CreateReservation: failed to notify shop: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrGatewayFailed, err)
		}
	}

	uc.logger.Info("CreateReservation: reservation ref=%s submitted", receipt.Reference)

	return &Response{
		Reference:         receipt.Reference,
		ProductName:       receipt.ProductName,
		Grams:             receipt.Grams,
		PickupDate:        receipt.PickupDate,
		TimeSlot:          req.TimeSlot,
		FreshnessAdvisory: advisory,
		SubmittedAt:       receipt.SubmittedAt,
	}, nil
}

// fill переносит запрос в форму через те же операции, что вызывает веб-форма
func fill(engine *reservation.Engine, req *Request) error {
	if req.ProductID != "" {
		if err := engine.SelectProduct(req.ProductID); err != nil {
			return fmt.Errorf("%w: %q", ErrProductNotFound, req.ProductID)
		}
	}

	switch req.Mode {
	case domain.ModeManual:
		if err := engine.SetManualGrams(req.Grams); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidQuantity, err)
		}
	case domain.ModeByPeople, "":
		if req.PersonCount != 0 {
			engine.SetPersonCount(req.PersonCount)
		}
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidQuantity, req.Mode)
	}

	engine.SetFirstName(req.FirstName)
	engine.SetLastName(req.LastName)
	engine.SetPhone(req.Phone)
	engine.SetNotes(req.Notes)
	engine.SetTimeSlot(req.TimeSlot)

	if !req.PickupDate.IsZero() {
		if err := engine.SelectDate(req.PickupDate); err != nil {
			return fmt.Errorf("%w: %s", ErrDateInPast, req.PickupDate)
		}
	}

	return nil
}

func (uc *UseCase) record(outcome string) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.RecordReservation(MetricsSource, outcome)
}
