package reservation

import (
	"context"
	"time"

	"github.com/m04kA/BaccalaMarket/internal/domain"
)

// Gateway доставляет бронирование в магазин (уведомление персоналу).
// nil означает успешную доставку, любая ошибка переводит форму в состояние Error.
type Gateway interface {
	Send(ctx context.Context, reservation *domain.Reservation) error
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

// RealTimeProvider реальный провайдер времени для production.
// "Сегодня" вычисляется в часовом поясе магазина.
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время в часовом поясе магазина
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
