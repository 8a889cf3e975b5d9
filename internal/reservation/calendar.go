package reservation

import (
	"time"

	"github.com/m04kA/BaccalaMarket/internal/domain"
)

// Direction направление навигации по неделям
type Direction string

const (
	DirectionPrev Direction = "prev"
	DirectionNext Direction = "next"
)

// ParseDirection разбирает направление из строки ("prev" / "next")
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirectionPrev, DirectionNext:
		return Direction(s), nil
	default:
		return "", ErrInvalidDirection
	}
}

// CalendarDay день недели, отображаемый в календаре
type CalendarDay struct {
	Date     domain.Date
	Selected bool
	Disabled bool // день раньше сегодняшнего
	Today    bool
}

// calendar состояние выпадающего календаря.
// Пока панель открыта, на неё подписан обработчик клика снаружи;
// подписка снимается при любом закрытии.
type calendar struct {
	weekStart    domain.Date
	open         bool
	onOutsideHit func()
}

func newCalendar(today domain.Date) calendar {
	return calendar{weekStart: today.WeekStart()}
}

func (c *calendar) openPanel() {
	c.open = true
	c.onOutsideHit = c.closePanel
}

func (c *calendar) closePanel() {
	c.open = false
	c.onOutsideHit = nil
}

// weekDays возвращает дни с понедельника по субботу, воскресенье не показывается
func weekDays(weekStart domain.Date) []domain.Date {
	days := make([]domain.Date, 0, domain.DaysInWeek-1)
	for i := 0; i < domain.DaysInWeek; i++ {
		d := weekStart.AddDays(i)
		if d.Weekday() == time.Sunday {
			continue
		}
		days = append(days, d)
	}
	return days
}

// IsCalendarOpen возвращает true, если панель календаря открыта
func (e *Engine) IsCalendarOpen() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.calendar.open
}

// ToggleCalendar открывает или закрывает панель календаря
func (e *Engine) ToggleCalendar() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.calendar.open {
		e.calendar.closePanel()
		return
	}
	e.calendar.openPanel()
}

// CloseCalendar закрывает панель календаря
func (e *Engine) CloseCalendar() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calendar.closePanel()
}

// ClickOutside сообщает о взаимодействии за пределами панели календаря.
// Действует только пока панель открыта.
func (e *Engine) ClickOutside() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if hit := e.calendar.onOutsideHit; hit != nil {
		hit()
	}
}

// WeekStart возвращает понедельник отображаемой недели
func (e *Engine) WeekStart() domain.Date {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.calendar.weekStart
}

// ChangeWeek сдвигает отображаемую неделю на 7 дней назад или вперед, без ограничений
func (e *Engine) ChangeWeek(direction Direction) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch direction {
	case DirectionPrev:
		e.calendar.weekStart = e.calendar.weekStart.AddDays(-domain.DaysInWeek)
	case DirectionNext:
		e.calendar.weekStart = e.calendar.weekStart.AddDays(domain.DaysInWeek)
	default:
		return ErrInvalidDirection
	}
	return nil
}

// WeekDays возвращает 6 дней отображаемой недели (пн-сб) с признаками выбора и недоступности
func (e *Engine) WeekDays() []CalendarDay {
	e.mu.Lock()
	defer e.mu.Unlock()
	return buildWeek(e.calendar.weekStart, e.todayLocked(), e.draft.PickupDate)
}

// BuildWeek строит отображение недели, содержащей anchor, без состояния формы
func BuildWeek(anchor, today, selected domain.Date) []CalendarDay {
	return buildWeek(anchor.WeekStart(), today, selected)
}

func buildWeek(weekStart, today, selected domain.Date) []CalendarDay {
	dates := weekDays(weekStart)
	days := make([]CalendarDay, len(dates))
	for i, d := range dates {
		days[i] = CalendarDay{
			Date:     d,
			Selected: !selected.IsZero() && d == selected,
			Disabled: d.Before(today),
			Today:    d == today,
		}
	}
	return days
}

// SelectDate задает дату получения и закрывает календарь.
// Дата раньше сегодняшней отклоняется без изменения состояния.
func (e *Engine) SelectDate(d domain.Date) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if d.IsZero() || d.Before(e.todayLocked()) {
		return ErrDateInPast
	}

	e.draft.PickupDate = d
	e.calendar.closePanel()
	return nil
}
