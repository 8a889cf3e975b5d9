package get_products

import (
	"context"

	"github.com/m04kA/BaccalaMarket/internal/service/shop/models"
)

type ShopService interface {
	Catalog(ctx context.Context) *models.CatalogResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
