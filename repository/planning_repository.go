package repository

import (
	"time"

	"pos-service/models"

	"gorm.io/gorm"
)

// IPlanningRepository defines the interface for staff shift data operations.
type IPlanningRepository interface {
	Create(shift *models.Shift) error
	Delete(id uint) error
	FindBetween(from, to time.Time) ([]models.Shift, error)
}

// PlanningRepository implements IPlanningRepository for GORM.
type PlanningRepository struct {
	DB *gorm.DB
}

// NewPlanningRepository creates a new PlanningRepository instance.
func NewPlanningRepository(db *gorm.DB) IPlanningRepository {
	return &PlanningRepository{DB: db}
}

// Create persists a new shift.
func (r *PlanningRepository) Create(shift *models.Shift) error {
	return r.DB.Create(shift).Error
}

// Delete removes a shift.
func (r *PlanningRepository) Delete(id uint) error {
	return r.DB.Delete(&models.Shift{}, id).Error
}

// FindBetween lists shifts starting inside a window.
func (r *PlanningRepository) FindBetween(from, to time.Time) ([]models.Shift, error) {
	var shifts []models.Shift
	err := r.DB.Where("starts_at >= ? AND starts_at < ?", from, to).
		Order("starts_at asc").Find(&shifts).Error
	return shifts, err
}
