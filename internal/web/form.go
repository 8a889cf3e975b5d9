package web

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/BaccalaMarket/internal/domain"
	"github.com/m04kA/BaccalaMarket/internal/reservation"
)

// Имена полей формы. Состояние формы целиком передается между запросами.
const (
	fieldAction       = "action"
	fieldProduct      = "product"
	fieldMode         = "mode"
	fieldPeople       = "people"
	fieldGrams        = "grams"
	fieldFirstName    = "first_name"
	fieldLastName     = "last_name"
	fieldPhone        = "phone"
	fieldNotes        = "notes"
	fieldDate         = "date"
	fieldSlot         = "slot"
	fieldWeek         = "week"
	fieldCalendarOpen = "calendar_open"
	fieldStatus       = "status"
	fieldSubmission   = "submission"
)

// Действия кнопок формы
const (
	actionPeopleInc      = "people_inc"
	actionPeopleDec      = "people_dec"
	actionModeManual     = "mode_manual"
	actionModePeople     = "mode_people"
	actionCalendarToggle = "calendar_toggle"
	actionWeekPrev       = "week_prev"
	actionWeekNext       = "week_next"
	actionRefresh        = "refresh"
	actionSubmit         = "submit"
	actionDismiss        = "dismiss"

	actionProductPrefix = "product:"
	actionDatePrefix    = "date:"
)

// formInput разобранные значения формы
type formInput struct {
	action      string
	submission  string // пусто, если токен отсутствует или поврежден
	state       reservation.State
	manualGrams string
	firstName   string
	lastName    string
	phone       string
	notes       string
}

// decodeForm разбирает форму без ошибок: некорректные значения
// заменяются на нулевые и нормализуются в Engine.Restore
func decodeForm(values url.Values) formInput {
	slot, _ := domain.ParseTimeSlot(values.Get(fieldSlot))
	date, _ := domain.ParseDate(values.Get(fieldDate))
	week, _ := domain.ParseDate(values.Get(fieldWeek))
	people, _ := strconv.Atoi(values.Get(fieldPeople))

	var submission string
	if id, err := uuid.Parse(values.Get(fieldSubmission)); err == nil {
		submission = id.String()
	}

	return formInput{
		action:      strings.TrimSpace(values.Get(fieldAction)),
		submission:  submission,
		manualGrams: strings.TrimSpace(values.Get(fieldGrams)),
		firstName:   values.Get(fieldFirstName),
		lastName:    values.Get(fieldLastName),
		phone:       values.Get(fieldPhone),
		notes:       values.Get(fieldNotes),
		state: reservation.State{
			ProductID:   values.Get(fieldProduct),
			Mode:        domain.QuantityMode(values.Get(fieldMode)),
			PersonCount: people,
			Draft: domain.ReservationDraft{
				PickupDate:     date,
				PickupTimeSlot: slot,
			},
			WeekStart:    week,
			CalendarOpen: values.Get(fieldCalendarOpen) == "1",
			Status:       domain.SubmissionStatus(values.Get(fieldStatus)),
		},
	}
}

// hiddenFields значения, которые страница передает обратно в скрытых полях.
// Текстовые поля, время и вес в ручном режиме передаются видимыми полями формы.
// submission - токен отправки формы, защищает от двойного нажатия.
func hiddenFields(s reservation.State, submission string) []hiddenField {
	fields := []hiddenField{
		{Name: fieldSubmission, Value: submission},
		{Name: fieldProduct, Value: s.ProductID},
		{Name: fieldMode, Value: string(s.Mode)},
		{Name: fieldPeople, Value: strconv.Itoa(s.PersonCount)},
		{Name: fieldWeek, Value: s.WeekStart.String()},
		{Name: fieldStatus, Value: string(s.Status)},
	}
	if !s.Draft.PickupDate.IsZero() {
		fields = append(fields, hiddenField{Name: fieldDate, Value: s.Draft.PickupDate.String()})
	}
	if s.CalendarOpen {
		fields = append(fields, hiddenField{Name: fieldCalendarOpen, Value: "1"})
	}
	return fields
}

type hiddenField struct {
	Name  string
	Value string
}

// isCalendarAction действия внутри панели календаря; любое другое действие - клик снаружи
func isCalendarAction(action string) bool {
	switch action {
	case actionCalendarToggle, actionWeekPrev, actionWeekNext:
		return true
	}
	return strings.HasPrefix(action, actionDatePrefix)
}
