package models

import (
	"time"

	"github.com/avdmi/salon-booking-service/internal/domain"
)

// UpdateScheduleRequest запрос на обновление расписания владельца
type UpdateScheduleRequest struct {
	StartHour    int      `json:"startHour"`
	EndHour      int      `json:"endHour"`
	WorkingDays  []int    `json:"workingDays"`
	SlotsPerHour int      `json:"slotsPerHour"`
	Services     []string `json:"services"`
}

// ScheduleResponse представление расписания для API
type ScheduleResponse struct {
	OwnerKey     string   `json:"ownerKey"`
	StartHour    int      `json:"startHour"`
	EndHour      int      `json:"endHour"`
	WorkingDays  []int    `json:"workingDays"`
	SlotsPerHour int      `json:"slotsPerHour"`
	Services     []string `json:"services"`
	UpdatedAt    string   `json:"updatedAt"`
}

// FromDomainSchedule конвертирует domain расписание в API модель
func FromDomainSchedule(s *domain.OwnerSchedule) *ScheduleResponse {
	return &ScheduleResponse{
		OwnerKey:     s.OwnerKey,
		StartHour:    s.StartHour,
		EndHour:      s.EndHour,
		WorkingDays:  s.WorkingDays,
		SlotsPerHour: s.SlotsPerHour,
		Services:     s.Services,
		UpdatedAt:    s.UpdatedAt.Format(time.RFC3339),
	}
}
