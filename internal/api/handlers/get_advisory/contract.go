package get_advisory

import (
	"context"

	"github.com/m04kA/BaccalaMarket/internal/domain"
	"github.com/m04kA/BaccalaMarket/internal/service/shop/models"
)

type ShopService interface {
	Advisory(ctx context.Context, date domain.Date, slot domain.TimeSlot) (*models.AdvisoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
