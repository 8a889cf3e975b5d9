package web

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/BaccalaMarket/internal/domain"
	"github.com/m04kA/BaccalaMarket/internal/reservation"
)

//go:embed templates/*
var templateFS embed.FS

const (
	maxFormBytes = 16 << 10

	// MetricsSource метка источника бронирования в метриках
	MetricsSource = "web"
)

// Server отдает страницу с формой бронирования.
// Состояние формы не хранится на сервере: каждый запрос восстанавливает его из полей формы,
// применяет одно действие и отрисовывает страницу заново.
type Server struct {
	settings     reservation.Settings
	gateway      Gateway
	metrics      ReservationMetrics
	timeProvider TimeProvider
	logger       Logger
	hours        []domain.OpeningHours
	page         *template.Template
	inFlight     *reservation.InFlight
}

// NewServer разбирает шаблоны. metrics может быть nil.
func NewServer(
	settings reservation.Settings,
	gateway Gateway,
	metrics ReservationMetrics,
	timeProvider TimeProvider,
	logger Logger,
) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/index.gohtml")
	if err != nil {
		return nil, err
	}

	return &Server{
		settings:     settings,
		gateway:      gateway,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
		hours:        domain.DefaultOpeningHours(),
		page:         tmpl,
		inFlight:     reservation.NewInFlight(),
	}, nil
}

func (s *Server) newEngine() *reservation.Engine {
	return reservation.NewEngine(s.settings, s.gateway, s.timeProvider, s.logger)
}

// HandleIndex GET /
func (s *Server) HandleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, buildView(s.newEngine(), s.hours, uuid.NewString()))
}

// HandleAction POST /prenota
func (s *Server) HandleAction(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		s.logger.Warn("POST /prenota - Invalid form: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	in := decodeForm(r.PostForm)
	engine := s.newEngine()
	var notices []string

	submission := in.submission
	if submission == "" {
		submission = uuid.NewString()
	}

	// страница могла остаться открытой со вчерашнего дня
	if d := in.state.Draft.PickupDate; !d.IsZero() && d.Before(engine.Today()) {
		in.state.Draft.PickupDate = domain.Date{}
		notices = append(notices, msgDateUnavailable)
	}

	if err := engine.Restore(in.state); err != nil {
		s.logger.Warn("POST /prenota - Failed to restore form: %v", err)
		in.state.ProductID = ""
		_ = engine.Restore(in.state)
		notices = append(notices, msgUnknownProduct)
	}

	engine.SetFirstName(in.firstName)
	engine.SetLastName(in.lastName)
	engine.SetPhone(in.phone)
	engine.SetNotes(in.notes)

	if engine.Mode() == domain.ModeManual && in.manualGrams != "" {
		if !setManualGrams(engine, in.manualGrams) {
			notices = append(notices, msgInvalidGrams)
		}
	}

	if !isCalendarAction(in.action) {
		engine.ClickOutside()
	}

	res := s.apply(r, engine, in.action, submission)

	// после успешной отправки новая форма получает новый токен
	if res.submitted {
		submission = uuid.NewString()
	}

	view := buildView(engine, s.hours, submission)
	view.Pending = view.Pending || res.inFlight
	view.Notices = append(notices, res.notices...)
	for _, f := range res.missing {
		view.Missing[f] = true
	}

	s.render(w, http.StatusOK, view)
}

type actionResult struct {
	notices   []string
	missing   []string
	submitted bool
	inFlight  bool
}

// apply выполняет действие нажатой кнопки
func (s *Server) apply(r *http.Request, engine *reservation.Engine, action, submission string) actionResult {
	var res actionResult

	switch {
	case action == actionPeopleInc:
		engine.IncrementPeople()
	case action == actionPeopleDec:
		engine.DecrementPeople()
	case action == actionModeManual:
		engine.SwitchToManual()
	case action == actionModePeople:
		engine.SwitchToPeople()
	case action == actionCalendarToggle:
		engine.ToggleCalendar()
	case action == actionWeekPrev:
		_ = engine.ChangeWeek(reservation.DirectionPrev)
	case action == actionWeekNext:
		_ = engine.ChangeWeek(reservation.DirectionNext)
	case strings.HasPrefix(action, actionDatePrefix):
		d, err := domain.ParseDate(strings.TrimPrefix(action, actionDatePrefix))
		if err == nil {
			err = engine.SelectDate(d)
		}
		if err != nil {
			s.logger.Warn("POST /prenota - Date rejected: %q: %v", action, err)
			res.notices = append(res.notices, msgDateUnavailable)
		}
	case strings.HasPrefix(action, actionProductPrefix):
		if err := engine.SelectProduct(strings.TrimPrefix(action, actionProductPrefix)); err != nil {
			res.notices = append(res.notices, msgUnknownProduct)
		}
	case action == actionSubmit:
		res = s.submit(r, engine, submission)
	case action == actionDismiss:
		if err := engine.Dismiss(); err != nil {
			s.logger.Warn("POST /prenota - Dismiss ignored: %v", err)
		}
	case action == actionRefresh, action == "":
	default:
		s.logger.Warn("POST /prenota - Unknown action %q", action)
	}

	return res
}

func (s *Server) submit(r *http.Request, engine *reservation.Engine, submission string) actionResult {
	var res actionResult

	receipt, err := s.inFlight.Submit(r.Context(), engine, submission)
	if s.metrics != nil {
		s.metrics.RecordReservation(MetricsSource, reservation.Outcome(err))
	}

	var verr *reservation.ValidationError
	switch {
	case err == nil:
		s.logger.Info("POST /prenota - Reservation submitted: ref=%s", receipt.Reference)
		res.submitted = true
	case errors.Is(err, reservation.ErrSubmissionInFlight):
		s.logger.Warn("POST /prenota - Duplicate submit ignored: submission=%s", submission)
		res.inFlight = true
		res.notices = append(res.notices, msgSubmitInFlight)
	case errors.Is(err, reservation.ErrInvalidTransition):
		s.logger.Warn("POST /prenota - Submit ignored: %v", err)
	case errors.As(err, &verr):
		res.notices = append(res.notices, msgMissingFields)
		res.missing = verr.Fields
	default:
		s.logger.Error("POST /prenota - Submit failed: %v", err)
	}

	return res
}

func setManualGrams(engine *reservation.Engine, raw string) bool {
	g, err := strconv.Atoi(raw)
	if err != nil {
		return false
	}
	return engine.SetManualGrams(g) == nil
}

func (s *Server) render(w http.ResponseWriter, status int, view *pageView) {
	var buf bytes.Buffer
	if err := s.page.ExecuteTemplate(&buf, "index.gohtml", view); err != nil {
		s.logger.Error("Failed to render page: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
