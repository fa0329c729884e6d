package services

import (
	"time"

	"pos-service/apperrors"
	"pos-service/models"
	"pos-service/repository"
)

// IPlanningService defines the interface for staff planning operations.
type IPlanningService interface {
	CreateShift(shift *models.Shift) error
	DeleteShift(id uint) error
	Week(anyDay time.Time) ([]models.Shift, error)
}

// PlanningService implements IPlanningService.
type PlanningService struct {
	planningRepo repository.IPlanningRepository
}

// NewPlanningService creates a new PlanningService instance.
func NewPlanningService(planningRepo repository.IPlanningRepository) IPlanningService {
	return &PlanningService{planningRepo: planningRepo}
}

// CreateShift validates and persists a shift.
func (s *PlanningService) CreateShift(shift *models.Shift) error {
	if shift.ServerID == 0 {
		return apperrors.Validation("server_id is required")
	}
	if !shift.EndsAt.After(shift.StartsAt) {
		return apperrors.Validation("ends_at must be after starts_at")
	}
	if err := s.planningRepo.Create(shift); err != nil {
		return apperrors.Storage("create shift", err)
	}
	return nil
}

// DeleteShift removes a shift.
func (s *PlanningService) DeleteShift(id uint) error {
	if err := s.planningRepo.Delete(id); err != nil {
		return apperrors.Storage("delete shift", err)
	}
	return nil
}

// Week lists the shifts of the Monday-to-Sunday week containing anyDay.
func (s *PlanningService) Week(anyDay time.Time) ([]models.Shift, error) {
	day := time.Date(anyDay.Year(), anyDay.Month(), anyDay.Day(), 0, 0, 0, 0, anyDay.Location())
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	monday := day.AddDate(0, 0, -offset)
	shifts, err := s.planningRepo.FindBetween(monday, monday.AddDate(0, 0, 7))
	if err != nil {
		return nil, apperrors.Storage("list shifts", err)
	}
	return shifts, nil
}
