package create_reservation

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/BaccalaMarket/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	ProductID   string              // пусто - продукт по умолчанию
	Mode        domain.QuantityMode // пусто - по количеству человек
	PersonCount int                 // 0 - значение по умолчанию
	Grams       int                 // только для ручного режима
	FirstName   string
	LastName    string
	Phone       string
	PickupDate  domain.Date
	TimeSlot    domain.TimeSlot
	Notes       string

	// SubmissionToken ключ отправки от клиента: пока запрос с этим ключом
	// ждет ответа шлюза, повтор отклоняется. Пусто - без защиты.
	SubmissionToken string
}

// Response модель ответа с отправленным бронированием
type Response struct {
	Reference         uuid.UUID
	ProductName       string
	Grams             int
	PickupDate        domain.Date
	TimeSlot          domain.TimeSlot
	FreshnessAdvisory bool
	SubmittedAt       time.Time
}
