package get_advisory

import (
	"errors"
	"net/http"

	"github.com/m04kA/BaccalaMarket/internal/api/handlers"
	"github.com/m04kA/BaccalaMarket/internal/domain"
	"github.com/m04kA/BaccalaMarket/internal/service/shop"
)

const (
	msgInvalidDate = "data di ritiro non valida, formato atteso YYYY-MM-DD"
	msgInvalidSlot = "fascia oraria non valida"
)

type Handler struct {
	service ShopService
	logger  Logger
}

func NewHandler(service ShopService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/advisory
// Query params: date (обязательно), slot (опционально: Mattina | Pomeriggio)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date, err := domain.ParseDate(query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /advisory - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	slot, err := domain.ParseTimeSlot(query.Get("slot"))
	if err != nil {
		h.logger.Warn("GET /advisory - Invalid slot: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlot)
		return
	}

	result, err := h.service.Advisory(r.Context(), date, slot)
	if err != nil {
		if errors.Is(err, shop.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Error("GET /advisory - Failed to compute advisory: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
