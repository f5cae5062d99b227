package store

import (
	"errors"

	"github.com/westeastdesigns/ecom-2024/models"
	"gorm.io/gorm"
)

func (s *Store) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// CategoryByName looks a category up by its exact display name. Callers
// translate URL slugs back to names first (models.CategoryNameFromSlug).
func (s *Store) CategoryByName(name string) (*models.Category, bool, error) {
	var category models.Category
	err := s.db.Where("name = ?", name).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &category, true, nil
}

// ProductsByCategory returns exactly the products belonging to the category.
func (s *Store) ProductsByCategory(categoryID uint) ([]models.Product, error) {
	var products []models.Product
	err := s.db.Preload("Category").
		Where("category_id = ?", categoryID).
		Order("id").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Store) CreateCategory(category *models.Category) error {
	return s.db.Create(category).Error
}

// DeleteCategory removes a category, its products, and transitively every
// order referencing those products, in one transaction.
func (s *Store) DeleteCategory(id uint) error {
	tx := s.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	var productIDs []uint
	if err := tx.Model(&models.Product{}).
		Where("category_id = ?", id).
		Pluck("id", &productIDs).Error; err != nil {
		tx.Rollback()
		return err
	}

	if len(productIDs) > 0 {
		if err := tx.Where("product_id IN ?", productIDs).Delete(&models.Order{}).Error; err != nil {
			tx.Rollback()
			return err
		}
		if err := tx.Where("category_id = ?", id).Delete(&models.Product{}).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Delete(&models.Category{}, id).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}
