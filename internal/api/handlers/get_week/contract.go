package get_week

import (
	"context"

	"github.com/m04kA/BaccalaMarket/internal/domain"
	"github.com/m04kA/BaccalaMarket/internal/service/shop/models"
)

type ShopService interface {
	Week(ctx context.Context, anchor domain.Date) *models.WeekResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
