package repository

import (
	"pos-service/models"

	"gorm.io/gorm"
)

// IMenuRepository defines the interface for menu catalog data operations.
type IMenuRepository interface {
	FindCategories() ([]models.MenuCategory, error)
	FindItems(includeArchived bool) ([]models.MenuItem, error)
	FindItemByID(id uint) (*models.MenuItem, error)
	FindItemsByIDs(ids []uint) (map[uint]models.MenuItem, error)
	CreateItem(item *models.MenuItem) error
	SaveItem(item *models.MenuItem) error
	ArchiveItem(id uint) error
}

// MenuRepository implements IMenuRepository for GORM.
type MenuRepository struct {
	DB *gorm.DB
}

// NewMenuRepository creates a new MenuRepository instance.
func NewMenuRepository(db *gorm.DB) IMenuRepository {
	return &MenuRepository{DB: db}
}

// FindCategories lists categories with their items, ordered for display.
func (r *MenuRepository) FindCategories() ([]models.MenuCategory, error) {
	var cats []models.MenuCategory
	err := r.DB.Preload("Items", "archived = ?", false).
		Order("position asc").Find(&cats).Error
	return cats, err
}

// FindItems lists menu items.
func (r *MenuRepository) FindItems(includeArchived bool) ([]models.MenuItem, error) {
	var items []models.MenuItem
	q := r.DB
	if !includeArchived {
		q = q.Where("archived = ?", false)
	}
	err := q.Find(&items).Error
	return items, err
}

// FindItemByID retrieves one menu item.
func (r *MenuRepository) FindItemByID(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindItemsByIDs retrieves menu items keyed by id.
func (r *MenuRepository) FindItemsByIDs(ids []uint) (map[uint]models.MenuItem, error) {
	var items []models.MenuItem
	if err := r.DB.Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]models.MenuItem, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	return byID, nil
}

// CreateItem persists a new menu item.
func (r *MenuRepository) CreateItem(item *models.MenuItem) error {
	return r.DB.Create(item).Error
}

// SaveItem persists changes to a menu item.
func (r *MenuRepository) SaveItem(item *models.MenuItem) error {
	return r.DB.Save(item).Error
}

// ArchiveItem marks a menu item as no longer sellable.
func (r *MenuRepository) ArchiveItem(id uint) error {
	return r.DB.Model(&models.MenuItem{}).Where("id = ?", id).
		Update("archived", true).Error
}
