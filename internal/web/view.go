package web

import (
	"strings"

	"github.com/m04kA/BaccalaMarket/internal/domain"
	"github.com/m04kA/BaccalaMarket/internal/reservation"
)

const (
	msgMissingFields   = "Per favore compila tutti i campi obbligatori."
	msgSubmitFailed    = "Errore invio. Riprova."
	msgInvalidGrams    = "Inserisci un peso valido in grammi."
	msgDateUnavailable = "La data selezionata non è più disponibile, scegline un'altra."
	msgUnknownProduct  = "Il prodotto selezionato non è disponibile."
	msgSelectDate      = "Seleziona data..."
	msgSubmitInFlight  = "Invio in corso, attendi la conferma."
)

type productView struct {
	ID        string
	Name      string
	ShortName string
	Tag       string
	Selected  bool
}

type dayView struct {
	Value    string // "2025-06-12"
	Weekday  string // "gio"
	Day      int
	Selected bool
	Disabled bool
	Today    bool
}

type slotView struct {
	Value    string
	Selected bool
}

type receiptView struct {
	Reference  string
	Product    string
	Grams      int
	PickupDate string
}

// pageView данные шаблона страницы
type pageView struct {
	Product        domain.Product
	Products       []productView
	ByPeople       bool
	PersonCount    int
	Grams          int
	GramsPerPerson int
	ManualMin      int
	ManualStep     int

	CalendarOpen bool
	DateLabel    string
	MonthLabel   string
	Days         []dayView
	Slots        []slotView

	FirstName string
	LastName  string
	Phone     string
	Notes     string

	Advisory        bool
	AdvisoryTitle   string
	AdvisoryMessage string
	Preparation     string

	Success bool
	Pending bool
	Failed  bool
	Receipt *receiptView

	FailedMessage string

	Notices []string
	Missing map[string]bool

	Hidden       []hiddenField
	OpeningHours []domain.OpeningHours
}

// buildView собирает данные страницы из состояния формы
func buildView(e *reservation.Engine, hours []domain.OpeningHours, submission string) *pageView {
	state := e.State()
	product := e.Product()
	draft := state.Draft

	v := &pageView{
		Product:        product,
		ByPeople:       state.Mode == domain.ModeByPeople,
		PersonCount:    state.PersonCount,
		Grams:          draft.Grams,
		GramsPerPerson: e.GramsPerPerson(),
		ManualMin:      domain.ManualGramsMin,
		ManualStep:     domain.ManualGramsStep,

		CalendarOpen: state.CalendarOpen,
		DateLabel:    longDate(draft.PickupDate),
		MonthLabel:   monthYear(state.WeekStart),

		FirstName: draft.FirstName,
		LastName:  draft.LastName,
		Phone:     draft.Phone,
		Notes:     draft.Notes,

		Advisory:        e.FreshnessAdvisory(),
		AdvisoryTitle:   domain.FreshnessAdvisoryTitle,
		AdvisoryMessage: domain.FreshnessAdvisoryMessage,
		Preparation:     domain.PreparationNotice,

		Success: state.Status == domain.StatusSuccess,
		Pending: state.Status == domain.StatusPending,
		Failed:  state.Status == domain.StatusError,

		FailedMessage: msgSubmitFailed,

		Missing:      map[string]bool{},
		Hidden:       hiddenFields(state, submission),
		OpeningHours: hours,
	}

	if v.DateLabel == "" {
		v.DateLabel = msgSelectDate
	}

	for _, p := range e.Catalog() {
		v.Products = append(v.Products, productView{
			ID:        p.ID,
			Name:      p.Name,
			ShortName: strings.TrimPrefix(p.Name, "Baccalà "),
			Tag:       p.Tag,
			Selected:  p.ID == product.ID,
		})
	}

	for _, d := range e.WeekDays() {
		v.Days = append(v.Days, dayView{
			Value:    d.Date.String(),
			Weekday:  shortWeekday(d.Date),
			Day:      d.Date.Day,
			Selected: d.Selected,
			Disabled: d.Disabled,
			Today:    d.Today,
		})
	}

	for _, s := range domain.TimeSlots {
		v.Slots = append(v.Slots, slotView{Value: string(s), Selected: s == draft.PickupTimeSlot})
	}

	if r := e.Receipt(); r != nil {
		v.Receipt = &receiptView{
			Reference:  r.Reference.String(),
			Product:    r.ProductName,
			Grams:      r.Grams,
			PickupDate: longDate(r.PickupDate),
		}
	}

	return v
}
