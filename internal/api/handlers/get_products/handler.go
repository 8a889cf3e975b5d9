package get_products

import (
	"net/http"

	"github.com/m04kA/BaccalaMarket/internal/api/handlers"
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

// Handle GET /api/v1/products
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.service.Catalog(r.Context())
	handlers.RespondJSON(w, http.StatusOK, result)
}
