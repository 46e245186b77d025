package services

import (
	"errors"

	"restaurant-ordering-api/models"

	"github.com/gosimple/slug"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CatalogService manages categories and menu items.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

// ----- Categories -----

func (s *CatalogService) CreateCategory(title string) (*models.Category, error) {
	if title == "" {
		return nil, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	cat := models.Category{Title: title, Slug: slug.Make(title)}
	if err := s.DB.Create(&cat).Error; err != nil {
		return nil, &PersistenceError{Op: "create category", Err: err}
	}
	return &cat, nil
}

func (s *CatalogService) ListCategories() ([]models.Category, error) {
	var cats []models.Category
	if err := s.DB.Order("title").Find(&cats).Error; err != nil {
		return nil, &PersistenceError{Op: "list categories", Err: err}
	}
	return cats, nil
}

// DeleteCategory hard-deletes a category, but only when nothing references
// it anymore. Soft-deleted menu items and order items still count as
// references since they remain recoverable.
func (s *CatalogService) DeleteCategory(id uint) error {
	var cat models.Category
	if err := s.DB.First(&cat, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return &PersistenceError{Op: "load category", Err: err}
	}

	var refs int64
	if err := s.DB.Model(&models.MenuItem{}).Where("category_id = ?", id).Count(&refs).Error; err != nil {
		return &PersistenceError{Op: "count menu item references", Err: err}
	}
	var itemRefs int64
	if err := s.DB.Model(&models.OrderItem{}).Where("category_id = ?", id).Count(&itemRefs).Error; err != nil {
		return &PersistenceError{Op: "count order item references", Err: err}
	}
	if refs+itemRefs > 0 {
		return &ReferentialIntegrityError{Entity: "category", ID: id, RefCount: refs + itemRefs}
	}

	if err := s.DB.Delete(&cat).Error; err != nil {
		return &PersistenceError{Op: "delete category", Err: err}
	}
	return nil
}

// ----- Menu items -----

type MenuItemInput struct {
	Title      string          `json:"title" binding:"required"`
	Price      decimal.Decimal `json:"price" binding:"required"`
	Featured   bool            `json:"featured"`
	CategoryID uint            `json:"category_id" binding:"required"`
}

func (s *CatalogService) CreateMenuItem(in *MenuItemInput) (*models.MenuItem, error) {
	if in.Price.IsNegative() {
		return nil, &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	var cat models.Category
	if err := s.DB.First(&cat, in.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ValidationError{Field: "category_id", Reason: "category does not exist"}
		}
		return nil, &PersistenceError{Op: "load category", Err: err}
	}

	item := models.MenuItem{
		Title:      in.Title,
		Price:      in.Price,
		Featured:   in.Featured,
		CategoryID: in.CategoryID,
	}
	if err := s.DB.Create(&item).Error; err != nil {
		return nil, &PersistenceError{Op: "create menu item", Err: err}
	}
	return &item, nil
}

func (s *CatalogService) UpdateMenuItem(id uint, in *MenuItemInput) (*models.MenuItem, error) {
	if in.Price.IsNegative() {
		return nil, &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	item, err := s.GetMenuItem(id, false)
	if err != nil {
		return nil, err
	}
	item.Title = in.Title
	item.Price = in.Price
	item.Featured = in.Featured
	if in.CategoryID != 0 {
		item.CategoryID = in.CategoryID
	}
	if err := s.DB.Save(item).Error; err != nil {
		return nil, &PersistenceError{Op: "update menu item", Err: err}
	}
	return item, nil
}

// GetMenuItem returns one menu item; deleted items are only visible when
// includeDeleted is set.
func (s *CatalogService) GetMenuItem(id uint, includeDeleted bool) (*models.MenuItem, error) {
	var item models.MenuItem
	err := s.DB.Scopes(models.ActiveOnly(includeDeleted)).
		Preload("Category").
		First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &PersistenceError{Op: "load menu item", Err: err}
	}
	return &item, nil
}

func (s *CatalogService) ListMenuItems(categoryID uint, featuredOnly, includeDeleted bool) ([]models.MenuItem, error) {
	q := s.DB.Scopes(models.ActiveOnly(includeDeleted)).Preload("Category")
	if categoryID != 0 {
		q = q.Where("category_id = ?", categoryID)
	}
	if featuredOnly {
		q = q.Where("featured = ?", true)
	}
	var items []models.MenuItem
	if err := q.Order("title").Find(&items).Error; err != nil {
		return nil, &PersistenceError{Op: "list menu items", Err: err}
	}
	return items, nil
}

// DeleteMenuItem soft-deletes a catalog entry. Idempotent: deleting an
// already-deleted item succeeds without touching the row again.
func (s *CatalogService) DeleteMenuItem(id uint) error {
	item, err := s.GetMenuItem(id, true)
	if err != nil {
		return err
	}
	if item.IsDeleted() {
		return nil
	}
	item.MarkDeleted()
	if err := s.DB.Save(item).Error; err != nil {
		log.Error().Err(err).Uint("menu_item_id", id).Msg("failed to soft-delete menu item")
		return &PersistenceError{Op: "soft-delete menu item", Err: err}
	}
	return nil
}

// RestoreMenuItem brings a soft-deleted item back into the catalog.
func (s *CatalogService) RestoreMenuItem(id uint) (*models.MenuItem, error) {
	item, err := s.GetMenuItem(id, true)
	if err != nil {
		return nil, err
	}
	if !item.IsDeleted() {
		return item, nil
	}
	item.Restore()
	if err := s.DB.Save(item).Error; err != nil {
		return nil, &PersistenceError{Op: "restore menu item", Err: err}
	}
	return item, nil
}
