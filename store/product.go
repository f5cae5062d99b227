package store

import (
	"errors"

	"github.com/westeastdesigns/ecom-2024/models"
	"gorm.io/gorm"
)

// ListProducts returns every product in storage order with its category
// preloaded. The storefront shows the catalog unfiltered and unpaginated.
func (s *Store) ListProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Preload("Category").Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ProductByID fetches one product. A missing id reports found=false instead
// of surfacing gorm.ErrRecordNotFound; the caller decides how to respond.
func (s *Store) ProductByID(id uint) (*models.Product, bool, error) {
	var product models.Product
	err := s.db.Preload("Category").First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &product, true, nil
}

func (s *Store) CreateProduct(product *models.Product) error {
	if product.CategoryID == 0 {
		product.CategoryID = models.DefaultCategoryID
	}
	return s.db.Create(product).Error
}

// DeleteProduct removes a product and every order referencing it, in one
// transaction.
func (s *Store) DeleteProduct(id uint) error {
	tx := s.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := tx.Where("product_id = ?", id).Delete(&models.Order{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&models.Product{}, id).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}
