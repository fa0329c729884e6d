package services

import (
	"errors"

	"pos-service/apperrors"
	"pos-service/models"
	"pos-service/repository"

	"gorm.io/gorm"
)

// IMenuService defines the interface for menu catalog operations.
type IMenuService interface {
	ListCategories() ([]models.MenuCategory, error)
	ListItems(includeArchived bool) ([]models.MenuItem, error)
	CreateItem(item *models.MenuItem) error
	UpdateItem(id uint, patch *models.MenuItem) (*models.MenuItem, error)
	ArchiveItem(id uint) error
}

// MenuService implements IMenuService.
type MenuService struct {
	menuRepo repository.IMenuRepository
}

// NewMenuService creates a new MenuService instance.
func NewMenuService(menuRepo repository.IMenuRepository) IMenuService {
	return &MenuService{menuRepo: menuRepo}
}

// ListCategories lists categories with their active items.
func (s *MenuService) ListCategories() ([]models.MenuCategory, error) {
	cats, err := s.menuRepo.FindCategories()
	if err != nil {
		return nil, apperrors.Storage("list categories", err)
	}
	return cats, nil
}

// ListItems lists menu items.
func (s *MenuService) ListItems(includeArchived bool) ([]models.MenuItem, error) {
	items, err := s.menuRepo.FindItems(includeArchived)
	if err != nil {
		return nil, apperrors.Storage("list menu items", err)
	}
	return items, nil
}

// CreateItem validates and persists a new menu item.
func (s *MenuService) CreateItem(item *models.MenuItem) error {
	if item.Name == "" || item.CategoryID == 0 {
		return apperrors.Validation("name and category_id are required")
	}
	if item.Price < 0 {
		return apperrors.Validation("price must not be negative")
	}
	if item.Route == "" {
		item.Route = models.RouteKitchen
	}
	if item.Route != models.RouteKitchen && item.Route != models.RouteBar {
		return apperrors.Validation("route must be kitchen or bar")
	}
	if err := s.menuRepo.CreateItem(item); err != nil {
		return apperrors.Storage("create menu item", err)
	}
	return nil
}

// UpdateItem applies non-zero fields of the patch to an existing item.
func (s *MenuService) UpdateItem(id uint, patch *models.MenuItem) (*models.MenuItem, error) {
	item, err := s.menuRepo.FindItemByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("menu item %d", id)
		}
		return nil, apperrors.Storage("load menu item", err)
	}
	if patch.Name != "" {
		item.Name = patch.Name
	}
	if patch.Price > 0 {
		item.Price = patch.Price
	}
	if patch.TaxRate > 0 {
		item.TaxRate = patch.TaxRate
	}
	if patch.Route != "" {
		if patch.Route != models.RouteKitchen && patch.Route != models.RouteBar {
			return nil, apperrors.Validation("route must be kitchen or bar")
		}
		item.Route = patch.Route
	}
	if patch.Allergens != "" {
		item.Allergens = patch.Allergens
	}
	if err := s.menuRepo.SaveItem(item); err != nil {
		return nil, apperrors.Storage("save menu item", err)
	}
	return item, nil
}

// ArchiveItem removes an item from sale without deleting its history.
func (s *MenuService) ArchiveItem(id uint) error {
	if _, err := s.menuRepo.FindItemByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("menu item %d", id)
		}
		return apperrors.Storage("load menu item", err)
	}
	if err := s.menuRepo.ArchiveItem(id); err != nil {
		return apperrors.Storage("archive menu item", err)
	}
	return nil
}
