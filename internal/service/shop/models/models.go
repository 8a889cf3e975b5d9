package models

import (
	"github.com/m04kA/BaccalaMarket/internal/domain"
	"github.com/m04kA/BaccalaMarket/internal/reservation"
)

// ProductResponse продукт каталога
type ProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Tag         string `json:"tag"`
}

// CatalogResponse каталог и параметры расчета количества
type CatalogResponse struct {
	Products        []ProductResponse `json:"products"`
	DefaultProduct  string            `json:"defaultProduct"`
	GramsPerPerson  int               `json:"gramsPerPerson"`
	ManualGramsMin  int               `json:"manualGramsMin"`
	ManualGramsStep int               `json:"manualGramsStep"`
}

// DayResponse день в календаре получения
type DayResponse struct {
	Date     string `json:"date"` // "2025-06-12"
	Disabled bool   `json:"disabled"`
	Today    bool   `json:"today"`
}

// WeekResponse неделя календаря (пн-сб)
type WeekResponse struct {
	WeekStart     string        `json:"weekStart"`
	PrevWeekStart string        `json:"prevWeekStart"`
	NextWeekStart string        `json:"nextWeekStart"`
	Days          []DayResponse `json:"days"`
}

// AdvisoryResponse совет по свежести для выбранной даты и времени
type AdvisoryResponse struct {
	Date     string `json:"date"`
	TimeSlot string `json:"timeSlot,omitempty"`
	Show     bool   `json:"show"`
	Title    string `json:"title,omitempty"`
	Message  string `json:"message,omitempty"`
}

// FromProduct конвертирует продукт домена в модель ответа
func FromProduct(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		ImageURL:    p.ImageRef,
		Tag:         p.Tag,
	}
}

// FromWeek конвертирует неделю календаря в модель ответа
func FromWeek(weekStart domain.Date, days []reservation.CalendarDay) *WeekResponse {
	resp := &WeekResponse{
		WeekStart:     weekStart.String(),
		PrevWeekStart: weekStart.AddDays(-domain.DaysInWeek).String(),
		NextWeekStart: weekStart.AddDays(domain.DaysInWeek).String(),
		Days:          make([]DayResponse, len(days)),
	}
	for i, d := range days {
		resp.Days[i] = DayResponse{
			Date:     d.Date.String(),
			Disabled: d.Disabled,
			Today:    d.Today,
		}
	}
	return resp
}
