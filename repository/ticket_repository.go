package repository

import (
	"pos-service/models"

	"gorm.io/gorm"
)

// ITicketRepository defines the interface for kitchen ticket data operations.
type ITicketRepository interface {
	Create(ticket *models.KitchenTicket) error
	FindByID(id uint) (*models.KitchenTicket, error)
	Find(destination, status string) ([]models.KitchenTicket, error)
	UpdateStatus(id uint, status string) error
}

// TicketRepository implements ITicketRepository for GORM.
type TicketRepository struct {
	DB *gorm.DB
}

// NewTicketRepository creates a new TicketRepository instance.
func NewTicketRepository(db *gorm.DB) ITicketRepository {
	return &TicketRepository{DB: db}
}

// Create persists a ticket with its lines.
func (r *TicketRepository) Create(ticket *models.KitchenTicket) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(ticket).Error
	})
}

// FindByID retrieves one ticket with its lines.
func (r *TicketRepository) FindByID(id uint) (*models.KitchenTicket, error) {
	var ticket models.KitchenTicket
	if err := r.DB.Preload("Lines").First(&ticket, id).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

// Find lists tickets, optionally filtered by destination and status, oldest
// first so the kitchen works them in order.
func (r *TicketRepository) Find(destination, status string) ([]models.KitchenTicket, error) {
	var tickets []models.KitchenTicket
	q := r.DB.Preload("Lines").Order("created_at asc")
	if destination != "" {
		q = q.Where("destination = ?", destination)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&tickets).Error
	return tickets, err
}

// UpdateStatus changes a ticket's status. Lines are immutable.
func (r *TicketRepository) UpdateStatus(id uint, status string) error {
	return r.DB.Model(&models.KitchenTicket{}).Where("id = ?", id).
		Update("status", status).Error
}
