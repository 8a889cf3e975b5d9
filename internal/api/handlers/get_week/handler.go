package get_week

import (
	"net/http"

	"github.com/m04kA/BaccalaMarket/internal/api/handlers"
	"github.com/m04kA/BaccalaMarket/internal/domain"
)

const msgInvalidStart = "data di inizio non valida, formato atteso YYYY-MM-DD"

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

// Handle GET /api/v1/calendar/week
// Query params: start (опционально, любая дата недели; по умолчанию текущая неделя)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	anchor, err := domain.ParseDate(r.URL.Query().Get("start"))
	if err != nil {
		h.logger.Warn("GET /calendar/week - Invalid start: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStart)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, h.service.Week(r.Context(), anchor))
}
