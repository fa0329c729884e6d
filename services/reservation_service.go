package services

import (
	"errors"
	"time"

	"pos-service/apperrors"
	"pos-service/models"
	"pos-service/repository"

	"gorm.io/gorm"
)

// IReservationService defines the interface for the reservation ledger.
type IReservationService interface {
	Book(req *models.ReservationRequest) (*models.Reservation, error)
	ListByDate(day time.Time) ([]models.Reservation, error)
	Cancel(id uint) (*models.Reservation, error)
	Seat(id uint) (*models.Reservation, error)
}

// ReservationService implements IReservationService.
type ReservationService struct {
	resRepo   repository.IReservationRepository
	tableRepo repository.ITableRepository
}

// NewReservationService creates a new ReservationService instance.
func NewReservationService(resRepo repository.IReservationRepository, tableRepo repository.ITableRepository) IReservationService {
	return &ReservationService{resRepo: resRepo, tableRepo: tableRepo}
}

// Book creates a table hold after checking the window is free. When the
// window is already current the table is marked reserved immediately.
func (s *ReservationService) Book(req *models.ReservationRequest) (*models.Reservation, error) {
	if req.TableID == 0 || req.CustomerName == "" {
		return nil, apperrors.Validation("tableId and customerName are required")
	}
	if req.PartySize <= 0 {
		return nil, apperrors.Validation("partySize must be positive")
	}
	if !req.EndsAt.After(req.StartsAt) {
		return nil, apperrors.Validation("endsAt must be after startsAt")
	}

	table, err := s.tableRepo.FindByID(req.TableID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("table %d", req.TableID)
		}
		return nil, apperrors.Storage("load table", err)
	}

	overlapping, err := s.resRepo.CountOverlapping(req.TableID, req.StartsAt, req.EndsAt)
	if err != nil {
		return nil, apperrors.Storage("check overlaps", err)
	}
	if overlapping > 0 {
		return nil, apperrors.Conflict("table %d already has a hold over that window", req.TableID)
	}

	res := &models.Reservation{
		TableID:      req.TableID,
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		PartySize:    req.PartySize,
		StartsAt:     req.StartsAt,
		EndsAt:       req.EndsAt,
		Status:       models.ReservationBooked,
		Notes:        req.Notes,
	}
	if err := s.resRepo.Create(res); err != nil {
		return nil, apperrors.Storage("create reservation", err)
	}

	now := time.Now()
	if table.Status == models.TableAvailable && !now.Before(req.StartsAt) && now.Before(req.EndsAt) {
		if err := s.tableRepo.SetStatus(table.ID, models.TableReserved, nil); err != nil {
			return nil, apperrors.Storage("reserve table", err)
		}
	}
	return res, nil
}

// ListByDate lists the reservations of one calendar day.
func (s *ReservationService) ListByDate(day time.Time) ([]models.Reservation, error) {
	out, err := s.resRepo.FindByDate(day)
	if err != nil {
		return nil, apperrors.Storage("list reservations", err)
	}
	return out, nil
}

// Cancel releases a hold; a table sitting in reserved status goes back to
// available.
func (s *ReservationService) Cancel(id uint) (*models.Reservation, error) {
	res, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if res.Status == models.ReservationCancelled {
		return res, nil
	}
	res.Status = models.ReservationCancelled
	if err := s.resRepo.Save(res); err != nil {
		return nil, apperrors.Storage("cancel reservation", err)
	}

	table, terr := s.tableRepo.FindByID(res.TableID)
	if terr == nil && table.Status == models.TableReserved {
		if err := s.tableRepo.SetStatus(table.ID, models.TableAvailable, nil); err != nil {
			return nil, apperrors.Storage("release table", err)
		}
	}
	return res, nil
}

// Seat marks a party as arrived and the table as occupied.
func (s *ReservationService) Seat(id uint) (*models.Reservation, error) {
	res, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if res.Status == models.ReservationCancelled {
		return nil, apperrors.Validation("reservation %d is cancelled", id)
	}
	res.Status = models.ReservationSeated
	if err := s.resRepo.Save(res); err != nil {
		return nil, apperrors.Storage("seat reservation", err)
	}
	if err := s.tableRepo.SetStatus(res.TableID, models.TableOccupied, nil); err != nil {
		return nil, apperrors.Storage("occupy table", err)
	}
	return res, nil
}

func (s *ReservationService) load(id uint) (*models.Reservation, error) {
	res, err := s.resRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("reservation %d", id)
		}
		return nil, apperrors.Storage("load reservation", err)
	}
	return res, nil
}
