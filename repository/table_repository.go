package repository

import (
	"pos-service/models"

	"gorm.io/gorm"
)

// ITableRepository defines the interface for table registry data operations.
type ITableRepository interface {
	FindAll(includeArchived bool) ([]models.Table, error)
	FindByID(id uint) (*models.Table, error)
	Create(table *models.Table) error
	Save(table *models.Table) error
	SetStatus(id uint, status string, openedBy *uint) error
	Archive(id uint) error
	Transfer(orderID, fromTableID, toTableID uint, openedBy *uint) error
}

// TableRepository implements ITableRepository for GORM.
type TableRepository struct {
	DB *gorm.DB
}

// NewTableRepository creates a new TableRepository instance.
func NewTableRepository(db *gorm.DB) ITableRepository {
	return &TableRepository{DB: db}
}

// FindAll lists tables, ordered by display number.
func (r *TableRepository) FindAll(includeArchived bool) ([]models.Table, error) {
	var tables []models.Table
	q := r.DB.Order("number asc")
	if !includeArchived {
		q = q.Where("archived = ?", false)
	}
	err := q.Find(&tables).Error
	return tables, err
}

// FindByID retrieves one table.
func (r *TableRepository) FindByID(id uint) (*models.Table, error) {
	var table models.Table
	if err := r.DB.First(&table, id).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

// Create persists a new table.
func (r *TableRepository) Create(table *models.Table) error {
	return r.DB.Create(table).Error
}

// Save persists changes to a table.
func (r *TableRepository) Save(table *models.Table) error {
	return r.DB.Save(table).Error
}

// SetStatus updates a table's status and opened-by attribution.
func (r *TableRepository) SetStatus(id uint, status string, openedBy *uint) error {
	return r.DB.Model(&models.Table{}).Where("id = ?", id).
		Updates(map[string]any{"status": status, "opened_by": openedBy}).Error
}

// Archive hides a table from the floor plan.
func (r *TableRepository) Archive(id uint) error {
	return r.DB.Model(&models.Table{}).Where("id = ?", id).
		Update("archived", true).Error
}

// Transfer moves an open order to another table and swaps both tables'
// statuses in one transaction.
func (r *TableRepository) Transfer(orderID, fromTableID, toTableID uint, openedBy *uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Order{}).Where("id = ?", orderID).
			Update("table_id", toTableID).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Table{}).Where("id = ?", fromTableID).
			Updates(map[string]any{"status": models.TableAvailable, "opened_by": nil}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Table{}).Where("id = ?", toTableID).
			Updates(map[string]any{"status": models.TableOccupied, "opened_by": openedBy}).Error
	})
}
