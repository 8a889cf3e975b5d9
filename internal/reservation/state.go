package reservation

import (
	"github.com/m04kA/BaccalaMarket/internal/domain"
)

// State снимок состояния формы.
// Используется веб-слоем, чтобы передавать форму между запросами в скрытых полях,
// и JSON API, чтобы восстановить форму из тела запроса.
type State struct {
	ProductID    string
	Mode         domain.QuantityMode
	PersonCount  int
	Draft        domain.ReservationDraft
	WeekStart    domain.Date
	CalendarOpen bool
	Status       domain.SubmissionStatus
}

// State возвращает снимок текущего состояния
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return State{
		ProductID:    e.product.ID,
		Mode:         e.mode,
		PersonCount:  e.personCount,
		Draft:        e.draft,
		WeekStart:    e.calendar.weekStart,
		CalendarOpen: e.calendar.open,
		Status:       e.status,
	}
}

// Restore загружает снимок в форму с нормализацией:
//   - неизвестный режим заменяется на ByPeople, количество человек ограничивается;
//   - в режиме ByPeople вес пересчитывается из количества человек;
//   - название продукта в черновике берётся из каталога;
//   - неделя приводится к понедельнику (пустая - текущая неделя);
//   - Pending не переживает перезапуск и становится Idle.
//
// Неизвестный продукт возвращает ErrUnknownProduct, форма при этом не меняется.
func (e *Engine) Restore(s State) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	product := e.settings.Catalog.Default()
	if s.ProductID != "" {
		p, ok := e.settings.Catalog.Find(s.ProductID)
		if !ok {
			return ErrUnknownProduct
		}
		product = p
	}

	e.product = product
	e.draft = s.Draft
	e.draft.ProductName = product.Name

	e.mode = s.Mode
	if !e.mode.IsValid() {
		e.mode = domain.ModeByPeople
	}
	if e.draft.Grams < 0 {
		e.draft.Grams = 0
	}
	e.setPersonCountLocked(s.PersonCount)

	weekStart := s.WeekStart
	if weekStart.IsZero() {
		weekStart = e.todayLocked()
	}
	e.calendar = calendar{weekStart: weekStart.WeekStart()}
	if s.CalendarOpen {
		e.calendar.openPanel()
	}

	switch s.Status {
	case domain.StatusSuccess, domain.StatusError:
		e.status = s.Status
	default:
		e.status = domain.StatusIdle
	}
	e.receipt = nil
	e.lastErr = nil

	return nil
}
