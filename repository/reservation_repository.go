package repository

import (
	"time"

	"pos-service/models"

	"gorm.io/gorm"
)

// IReservationRepository defines the interface for reservation data
// operations.
type IReservationRepository interface {
	Create(res *models.Reservation) error
	FindByID(id uint) (*models.Reservation, error)
	Save(res *models.Reservation) error
	FindByDate(day time.Time) ([]models.Reservation, error)
	CountOverlapping(tableID uint, startsAt, endsAt time.Time) (int64, error)
}

// ReservationRepository implements IReservationRepository for GORM.
type ReservationRepository struct {
	DB *gorm.DB
}

// NewReservationRepository creates a new ReservationRepository instance.
func NewReservationRepository(db *gorm.DB) IReservationRepository {
	return &ReservationRepository{DB: db}
}

// Create persists a new reservation.
func (r *ReservationRepository) Create(res *models.Reservation) error {
	return r.DB.Create(res).Error
}

// FindByID retrieves one reservation.
func (r *ReservationRepository) FindByID(id uint) (*models.Reservation, error) {
	var res models.Reservation
	if err := r.DB.First(&res, id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

// Save persists changes to a reservation.
func (r *ReservationRepository) Save(res *models.Reservation) error {
	return r.DB.Save(res).Error
}

// FindByDate lists the reservations of one calendar day.
func (r *ReservationRepository) FindByDate(day time.Time) ([]models.Reservation, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)
	var out []models.Reservation
	err := r.DB.Where("starts_at >= ? AND starts_at < ?", start, end).
		Order("starts_at asc").Find(&out).Error
	return out, err
}

// CountOverlapping counts active holds on a table overlapping a window.
func (r *ReservationRepository) CountOverlapping(tableID uint, startsAt, endsAt time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&models.Reservation{}).
		Where("table_id = ? AND status <> ? AND starts_at < ? AND ends_at > ?",
			tableID, models.ReservationCancelled, endsAt, startsAt).
		Count(&count).Error
	return count, err
}
