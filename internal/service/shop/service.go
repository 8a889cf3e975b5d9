package shop

import (
	"context"
	"fmt"

	"github.com/m04kA/BaccalaMarket/internal/domain"
	"github.com/m04kA/BaccalaMarket/internal/reservation"
	"github.com/m04kA/BaccalaMarket/internal/service/shop/models"
)

// Service сервис справочных данных формы: каталог, календарь недели, совет по свежести
type Service struct {
	settings     reservation.Settings
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(settings reservation.Settings, timeProvider TimeProvider, logger Logger) *Service {
	def := reservation.DefaultSettings()
	if len(settings.Catalog) == 0 {
		settings.Catalog = def.Catalog
	}
	if settings.GramsPerPerson <= 0 {
		settings.GramsPerPerson = def.GramsPerPerson
	}

	return &Service{
		settings:     settings,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Catalog возвращает каталог продуктов и параметры расчета количества
func (s *Service) Catalog(ctx context.Context) *models.CatalogResponse {
	resp := &models.CatalogResponse{
		Products:        make([]models.ProductResponse, 0, len(s.settings.Catalog)),
		DefaultProduct:  s.settings.Catalog.Default().ID,
		GramsPerPerson:  s.settings.GramsPerPerson,
		ManualGramsMin:  domain.ManualGramsMin,
		ManualGramsStep: domain.ManualGramsStep,
	}
	for _, p := range s.settings.Catalog {
		resp.Products = append(resp.Products, models.FromProduct(p))
	}
	return resp
}

// Product возвращает продукт по идентификатору
func (s *Service) Product(ctx context.Context, id string) (*models.ProductResponse, error) {
	p, ok := s.settings.Catalog.Find(id)
	if !ok {
		s.logger.Warn("Product: id=%q not found", id)
		return nil, ErrProductNotFound
	}
	resp := models.FromProduct(p)
	return &resp, nil
}

// Week возвращает неделю календаря, содержащую anchor.
// Нулевая дата означает текущую неделю.
func (s *Service) Week(ctx context.Context, anchor domain.Date) *models.WeekResponse {
	today := domain.DateOf(s.timeProvider.Now())
	if anchor.IsZero() {
		anchor = today
	}

	weekStart := anchor.WeekStart()
	return models.FromWeek(weekStart, reservation.BuildWeek(weekStart, today, domain.Date{}))
}

// Advisory вычисляет совет по свежести для даты и времени получения
func (s *Service) Advisory(ctx context.Context, date domain.Date, slot domain.TimeSlot) (*models.AdvisoryResponse, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: pickup date is required", ErrInvalidInput)
	}

	resp := &models.AdvisoryResponse{
		Date:     date.String(),
		TimeSlot: string(slot),
		Show:     domain.ShowFreshnessAdvisory(date, slot),
	}
	if resp.Show {
		resp.Title = domain.FreshnessAdvisoryTitle
		resp.Message = domain.FreshnessAdvisoryMessage
	}
	return resp, nil
}
