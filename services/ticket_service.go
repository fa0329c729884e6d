package services

import (
	"errors"

	"pos-service/apperrors"
	"pos-service/models"
	"pos-service/repository"

	"gorm.io/gorm"
)

// ITicketService defines the interface for kitchen/bar ticket queries and
// acknowledgments.
type ITicketService interface {
	ListTickets(destination, status string) ([]models.KitchenTicket, error)
	CompleteTicket(id uint) (*models.KitchenTicket, error)
}

// TicketService implements ITicketService.
type TicketService struct {
	ticketRepo repository.ITicketRepository
}

// NewTicketService creates a new TicketService instance.
func NewTicketService(ticketRepo repository.ITicketRepository) ITicketService {
	return &TicketService{ticketRepo: ticketRepo}
}

// ListTickets lists tickets for a destination, oldest first.
func (s *TicketService) ListTickets(destination, status string) ([]models.KitchenTicket, error) {
	if destination != "" && destination != models.RouteKitchen && destination != models.RouteBar {
		return nil, apperrors.Validation("type must be kitchen or bar")
	}
	if status != "" && status != models.TicketPending && status != models.TicketCompleted {
		return nil, apperrors.Validation("status must be pending or completed")
	}
	tickets, err := s.ticketRepo.Find(destination, status)
	if err != nil {
		return nil, apperrors.Storage("list tickets", err)
	}
	return tickets, nil
}

// CompleteTicket acknowledges a ticket. Lines are immutable; only the
// status moves, and never back from completed.
func (s *TicketService) CompleteTicket(id uint) (*models.KitchenTicket, error) {
	ticket, err := s.ticketRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("ticket %d", id)
		}
		return nil, apperrors.Storage("load ticket", err)
	}
	if ticket.Status == models.TicketCompleted {
		return ticket, nil
	}
	if err := s.ticketRepo.UpdateStatus(id, models.TicketCompleted); err != nil {
		return nil, apperrors.Storage("complete ticket", err)
	}
	ticket.Status = models.TicketCompleted
	return ticket, nil
}
