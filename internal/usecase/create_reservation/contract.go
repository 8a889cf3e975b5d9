package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/BaccalaMarket/internal/domain"
)

// Gateway интерфейс шлюза уведомлений магазина
type Gateway interface {
	Send(ctx context.Context, reservation *domain.Reservation) error
}

// ReservationMetrics интерфейс сборщика метрик бронирований
type ReservationMetrics interface {
	RecordReservation(source, outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
