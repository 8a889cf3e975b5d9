package reservation

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/BaccalaMarket/internal/domain"
)

// DefaultSubmitTimeout ограничивает единственную попытку отправки в шлюз
const DefaultSubmitTimeout = 10 * time.Second

// Settings статическая конфигурация формы, задаётся при старте
type Settings struct {
	Catalog            domain.Catalog
	GramsPerPerson     int
	DefaultPersonCount int
	SubmitTimeout      time.Duration
}

// DefaultSettings возвращает настройки магазина по умолчанию
func DefaultSettings() Settings {
	return Settings{
		Catalog:            domain.DefaultCatalog(),
		GramsPerPerson:     domain.DefaultGramsPerPerson,
		DefaultPersonCount: domain.DefaultPersonCount,
		SubmitTimeout:      DefaultSubmitTimeout,
	}
}

func (s Settings) withDefaults() Settings {
	def := DefaultSettings()
	if len(s.Catalog) == 0 {
		s.Catalog = def.Catalog
	}
	if s.GramsPerPerson <= 0 {
		s.GramsPerPerson = def.GramsPerPerson
	}
	s.DefaultPersonCount = clampPersonCount(s.DefaultPersonCount)
	if s.SubmitTimeout <= 0 {
		s.SubmitTimeout = def.SubmitTimeout
	}
	return s
}

// Engine хранит состояние формы бронирования и реализует все переходы:
// выбор продукта, режимы количества, календарь, совет по свежести и отправку.
//
// Все методы безопасны для вызова из нескольких горутин; Submit освобождает
// блокировку на время вызова шлюза, но не допускает второй параллельной отправки.
type Engine struct {
	mu sync.Mutex

	settings     Settings
	gateway      Gateway
	timeProvider TimeProvider
	logger       Logger
	newReference func() uuid.UUID

	product     domain.Product
	mode        domain.QuantityMode
	personCount int
	draft       domain.ReservationDraft
	calendar    calendar
	status      domain.SubmissionStatus
	receipt     *domain.Receipt
	lastErr     error
}

// NewEngine создает форму в состоянии по умолчанию
func NewEngine(settings Settings, gateway Gateway, timeProvider TimeProvider, logger Logger) *Engine {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	if logger == nil {
		logger = nopLogger{}
	}

	e := &Engine{
		settings:     settings.withDefaults(),
		gateway:      gateway,
		timeProvider: timeProvider,
		logger:       logger,
		newReference: uuid.New,
	}
	e.resetLocked()
	e.status = domain.StatusIdle
	return e
}

// resetLocked возвращает черновик, количество, режим, продукт и календарь к значениям по умолчанию
func (e *Engine) resetLocked() {
	e.product = e.settings.Catalog.Default()
	e.mode = domain.ModeByPeople
	e.personCount = e.settings.DefaultPersonCount
	e.draft = domain.ReservationDraft{ProductName: e.product.Name}
	e.recomputeGramsLocked()
	e.calendar = newCalendar(e.todayLocked())
}

func (e *Engine) todayLocked() domain.Date {
	return domain.DateOf(e.timeProvider.Now())
}

// Catalog возвращает каталог продуктов
func (e *Engine) Catalog() domain.Catalog {
	return e.settings.Catalog
}

// GramsPerPerson возвращает норму на одного человека
func (e *Engine) GramsPerPerson() int {
	return e.settings.GramsPerPerson
}

// Today возвращает сегодняшнюю дату в часовом поясе магазина
func (e *Engine) Today() domain.Date {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.todayLocked()
}

// Product возвращает выбранный продукт
func (e *Engine) Product() domain.Product {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.product
}

// SelectProduct делает продукт текущим и переносит его название в черновик
func (e *Engine) SelectProduct(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	product, ok := e.settings.Catalog.Find(id)
	if !ok {
		return ErrUnknownProduct
	}

	e.product = product
	e.draft.ProductName = product.Name
	return nil
}

// Draft возвращает копию черновика
func (e *Engine) Draft() domain.ReservationDraft {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft
}

// SetFirstName задает имя клиента
func (e *Engine) SetFirstName(v string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.FirstName = strings.TrimSpace(v)
}

// SetLastName задает фамилию клиента
func (e *Engine) SetLastName(v string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.LastName = strings.TrimSpace(v)
}

// SetPhone задает телефон (необязательно)
func (e *Engine) SetPhone(v string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.Phone = strings.TrimSpace(v)
}

// SetNotes задает примечания (необязательно)
func (e *Engine) SetNotes(v string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.Notes = strings.TrimSpace(v)
}

// SetTimeSlot задает время получения (необязательно)
func (e *Engine) SetTimeSlot(slot domain.TimeSlot) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.PickupTimeSlot = slot
}

// FreshnessAdvisory пересчитывается при каждом чтении и нигде не хранится
func (e *Engine) FreshnessAdvisory() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return domain.ShowFreshnessAdvisory(e.draft.PickupDate, e.draft.PickupTimeSlot)
}

// Status возвращает текущее состояние отправки
func (e *Engine) Status() domain.SubmissionStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// Receipt возвращает квитанцию последней успешной отправки (nil, если её не было)
func (e *Engine) Receipt() *domain.Receipt {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.receipt
}

// LastError возвращает ошибку последней неудачной отправки
func (e *Engine) LastError() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
