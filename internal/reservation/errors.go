package reservation

import (
	"errors"
	"strings"
)

var (
	// ErrValidation возвращается, когда не заполнены обязательные поля формы
	ErrValidation = errors.New("reservation: required fields missing")

	// ErrDateInPast возвращается при выборе даты раньше сегодняшней
	ErrDateInPast = errors.New("reservation: pickup date is in the past")

	// ErrUnknownProduct возвращается, когда продукта нет в каталоге
	ErrUnknownProduct = errors.New("reservation: unknown product")

	// ErrInvalidGrams возвращается при отрицательном весе в ручном режиме
	ErrInvalidGrams = errors.New("reservation: grams must be nonnegative")

	// ErrInvalidDirection возвращается при неизвестном направлении навигации календаря
	ErrInvalidDirection = errors.New("reservation: invalid week direction")

	// ErrSubmissionInFlight возвращается при повторной отправке, пока предыдущая не завершена
	ErrSubmissionInFlight = errors.New("reservation: submission already in progress")

	// ErrGateway возвращается, когда шлюз уведомлений не принял бронирование
	ErrGateway = errors.New("reservation: notification gateway failed")

	// ErrGatewayNotConfigured возвращается, когда шлюз уведомлений не задан
	ErrGatewayNotConfigured = errors.New("reservation: notification gateway is not configured")

	// ErrInvalidTransition возвращается при недопустимом переходе состояния отправки
	ErrInvalidTransition = errors.New("reservation: invalid status transition")
)

// Поля формы, участвующие в валидации
const (
	FieldFirstName  = "firstName"
	FieldLastName   = "lastName"
	FieldPhone      = "phone"
	FieldGrams      = "grams"
	FieldPickupDate = "pickupDate"
	FieldNotes      = "notes"
)

// ValidationError перечисляет поля, не прошедшие проверку.
// errors.Is(err, ErrValidation) == true.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Has проверяет, что поле есть среди ошибочных
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// Исходы отправки для метрик
const (
	OutcomeSuccess      = "success"
	OutcomeInvalid      = "invalid"
	OutcomeInFlight     = "in_flight"
	OutcomeGatewayError = "gateway_error"
)

// Outcome классифицирует результат Submit для метрик
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrSubmissionInFlight):
		return OutcomeInFlight
	case errors.Is(err, ErrGateway):
		return OutcomeGatewayError
	default:
		return OutcomeInvalid
	}
}
