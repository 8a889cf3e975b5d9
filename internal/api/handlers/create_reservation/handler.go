package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/BaccalaMarket/internal/api/handlers"
	"github.com/m04kA/BaccalaMarket/internal/reservation"
	createReservation "github.com/m04kA/BaccalaMarket/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "corpo della richiesta non valido"
	msgInvalidFields      = "dati della prenotazione non validi"
	msgMissingFields      = "compila tutti i campi obbligatori"
	msgProductNotFound    = "prodotto non trovato"
	msgInvalidQuantity    = "quantità non valida"
	msgDateInPast         = "la data di ritiro non può essere nel passato"
	msgGatewayFailed      = "impossibile inviare la prenotazione, riprova"
	msgSubmissionInFlight = "prenotazione già in corso di invio"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var verr *reservation.ValidationError
		switch {
		case errors.As(err, &verr):
			h.logger.Warn("POST /reservations - Missing fields: %v", verr.Fields)
			handlers.RespondValidationError(w, msgMissingFields, verr.Fields)

		case errors.Is(err, createReservation.ErrProductNotFound):
			h.logger.Warn("POST /reservations - Product not found: product_id=%q", req.ProductID)
			handlers.RespondNotFound(w, msgProductNotFound)

		case errors.Is(err, createReservation.ErrInvalidQuantity):
			h.logger.Warn("POST /reservations - Invalid quantity: mode=%q, grams=%d", req.Mode, req.Grams)
			handlers.RespondBadRequest(w, msgInvalidQuantity)

		case errors.Is(err, createReservation.ErrDateInPast):
			h.logger.Warn("POST /reservations - Pickup date in the past: date=%s", req.PickupDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createReservation.ErrSubmissionInFlight):
			h.logger.Warn("POST /reservations - Duplicate submission: token=%q", req.SubmissionToken)
			handlers.RespondError(w, http.StatusConflict, msgSubmissionInFlight)

		case errors.Is(err, createReservation.ErrGatewayFailed):
			h.logger.Error("POST /reservations - Gateway failed: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgGatewayFailed)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation submitted: ref=%s, product=%q, date=%s",
		result.Reference, result.ProductName, result.PickupDate)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
