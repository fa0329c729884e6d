package services

import (
	"errors"

	"pos-service/apperrors"
	"pos-service/models"
	"pos-service/repository"

	"gorm.io/gorm"
)

// ITableService defines the interface for table registry operations.
type ITableService interface {
	ListTables(includeArchived bool) ([]models.Table, error)
	CreateTable(number, seats int) (*models.Table, error)
	UpdateTable(id uint, seats *int, number *int) (*models.Table, error)
	ArchiveTable(id uint) error
	Transfer(req *models.TransferRequest) error
}

// TableService implements ITableService.
type TableService struct {
	tableRepo repository.ITableRepository
	orderRepo repository.IOrderRepository
}

// NewTableService creates a new TableService instance.
func NewTableService(tableRepo repository.ITableRepository, orderRepo repository.IOrderRepository) ITableService {
	return &TableService{tableRepo: tableRepo, orderRepo: orderRepo}
}

// ListTables lists the floor plan's tables.
func (s *TableService) ListTables(includeArchived bool) ([]models.Table, error) {
	tables, err := s.tableRepo.FindAll(includeArchived)
	if err != nil {
		return nil, apperrors.Storage("list tables", err)
	}
	return tables, nil
}

// CreateTable adds a table to the floor plan.
func (s *TableService) CreateTable(number, seats int) (*models.Table, error) {
	if number <= 0 {
		return nil, apperrors.Validation("table number must be positive")
	}
	if seats <= 0 {
		seats = 2
	}
	table := &models.Table{Number: number, Seats: seats, Status: models.TableAvailable}
	if err := s.tableRepo.Create(table); err != nil {
		return nil, apperrors.Storage("create table", err)
	}
	return table, nil
}

// UpdateTable changes a table's seat count or display number. Status is
// never writable here; the order, payment and reservation flows own it.
func (s *TableService) UpdateTable(id uint, seats *int, number *int) (*models.Table, error) {
	table, err := s.tableRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("table %d", id)
		}
		return nil, apperrors.Storage("load table", err)
	}
	if seats != nil {
		if *seats <= 0 {
			return nil, apperrors.Validation("seats must be positive")
		}
		table.Seats = *seats
	}
	if number != nil {
		if *number <= 0 {
			return nil, apperrors.Validation("table number must be positive")
		}
		table.Number = *number
	}
	if err := s.tableRepo.Save(table); err != nil {
		return nil, apperrors.Storage("save table", err)
	}
	return table, nil
}

// ArchiveTable hides a table from the floor plan. An occupied table cannot
// be archived.
func (s *TableService) ArchiveTable(id uint) error {
	table, err := s.tableRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("table %d", id)
		}
		return apperrors.Storage("load table", err)
	}
	if table.Status == models.TableOccupied {
		return apperrors.Validation("table %d is occupied", id)
	}
	if err := s.tableRepo.Archive(id); err != nil {
		return apperrors.Storage("archive table", err)
	}
	return nil
}

// Transfer moves a table's open order to another table.
func (s *TableService) Transfer(req *models.TransferRequest) error {
	if req.FromTableID == 0 || req.ToTableID == 0 {
		return apperrors.Validation("fromTableId and toTableId are required")
	}
	if req.FromTableID == req.ToTableID {
		return apperrors.Validation("cannot transfer a table onto itself")
	}

	order, err := s.orderRepo.FindOpenOrderByTable(req.FromTableID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("no open order for table %d", req.FromTableID)
		}
		return apperrors.Storage("load open order", err)
	}

	dest, err := s.tableRepo.FindByID(req.ToTableID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("table %d", req.ToTableID)
		}
		return apperrors.Storage("load table", err)
	}
	if dest.Status == models.TableOccupied {
		return apperrors.Conflict("table %d is already occupied", req.ToTableID)
	}

	opener := order.ServerID
	if err := s.tableRepo.Transfer(order.ID, req.FromTableID, req.ToTableID, &opener); err != nil {
		return apperrors.Storage("transfer order", err)
	}
	return nil
}
