package reservation

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/m04kA/BaccalaMarket/internal/domain"
)

// validateDraft проверяет обязательные поля: имя, фамилия, вес и дата получения.
// Телефон, время и примечания необязательны, проверяется только их длина.
func validateDraft(d *domain.ReservationDraft) error {
	var fields []string

	if d.FirstName == "" || utf8.RuneCountInString(d.FirstName) > domain.MaxNameLength {
		fields = append(fields, FieldFirstName)
	}
	if d.LastName == "" || utf8.RuneCountInString(d.LastName) > domain.MaxNameLength {
		fields = append(fields, FieldLastName)
	}
	if utf8.RuneCountInString(d.Phone) > domain.MaxPhoneLength {
		fields = append(fields, FieldPhone)
	}
	if d.Grams <= 0 {
		fields = append(fields, FieldGrams)
	}
	if d.PickupDate.IsZero() {
		fields = append(fields, FieldPickupDate)
	}
	if utf8.RuneCountInString(d.Notes) > domain.MaxNotesLength {
		fields = append(fields, FieldNotes)
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Validate проверяет черновик без изменения состояния отправки
func (e *Engine) Validate() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return validateDraft(&e.draft)
}

// Submit отправляет бронирование: Idle|Error -> Pending -> Success|Error.
// Из Success отправка невозможна до Dismiss.
//
// Ошибка валидации не меняет состояние. Шлюз вызывается ровно один раз с ограничением
// по времени (Settings.SubmitTimeout), без повторов. При успехе форма сбрасывается
// к значениям по умолчанию, при ошибке черновик сохраняется без изменений.
func (e *Engine) Submit(ctx context.Context) (*domain.Receipt, error) {
	e.mu.Lock()
	if e.status == domain.StatusPending {
		e.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	if e.status == domain.StatusSuccess {
		e.mu.Unlock()
		return nil, fmt.Errorf("%w: submit from %s", ErrInvalidTransition, e.status)
	}

	if err := validateDraft(&e.draft); err != nil {
		e.mu.Unlock()
		e.logger.Warn("Submit: validation failed: %v", err)
		return nil, err
	}

	reservation := &domain.Reservation{
		Reference:   e.newReference(),
		Draft:       e.draft,
		SubmittedAt: e.timeProvider.Now(),
	}
	e.status = domain.StatusPending
	e.lastErr = nil
	timeout := e.settings.SubmitTimeout
	e.mu.Unlock()

	e.logger.Info("Submit: sending reservation ref=%s, product=%q, grams=%d, date=%s, slot=%s",
		reservation.Reference, reservation.Draft.ProductName, reservation.Draft.Grams,
		reservation.Draft.PickupDate, reservation.Draft.PickupTimeSlot.Label())

	err := e.send(ctx, timeout, reservation)

	e.mu.Lock()
	defer e.mu.Unlock()

	if err != nil {
		e.status = domain.StatusError
		e.lastErr = err
		e.logger.Error("Submit: gateway failed for ref=%s: %v", reservation.Reference, err)
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	receipt := &domain.Receipt{
		Reference:   reservation.Reference,
		ProductName: reservation.Draft.ProductName,
		Grams:       reservation.Draft.Grams,
		PickupDate:  reservation.Draft.PickupDate,
		SubmittedAt: reservation.SubmittedAt,
	}

	e.resetLocked()
	e.status = domain.StatusSuccess
	e.receipt = receipt

	e.logger.Info("Submit: reservation ref=%s delivered", reservation.Reference)
	return receipt, nil
}

// send выполняет единственную попытку доставки с таймаутом
func (e *Engine) send(ctx context.Context, timeout time.Duration, reservation *domain.Reservation) error {
	if e.gateway == nil {
		return ErrGatewayNotConfigured
	}

	sendCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return e.gateway.Send(sendCtx, reservation)
}

// Dismiss закрывает экран успешной отправки: Success -> Idle.
// Форма уже сброшена при успешной отправке, здесь сбрасывается повторно вместе с квитанцией.
func (e *Engine) Dismiss() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.status != domain.StatusSuccess {
		return fmt.Errorf("%w: dismiss from %s", ErrInvalidTransition, e.status)
	}

	e.resetLocked()
	e.status = domain.StatusIdle
	e.receipt = nil
	return nil
}
