package get_product

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BaccalaMarket/internal/api/handlers"
	"github.com/m04kA/BaccalaMarket/internal/service/shop"
)

const msgProductNotFound = "prodotto non trovato"

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

// Handle GET /api/v1/products/{productId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productId"]

	result, err := h.service.Product(r.Context(), productID)
	if err != nil {
		if errors.Is(err, shop.ErrProductNotFound) {
			handlers.RespondNotFound(w, msgProductNotFound)
			return
		}
		h.logger.Error("GET /products/{id} - Failed to get product: product_id=%q, error=%v", productID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
