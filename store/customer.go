package store

import (
	"errors"

	"github.com/westeastdesigns/ecom-2024/models"
	"gorm.io/gorm"
)

func (s *Store) CreateCustomer(customer *models.Customer) error {
	return s.db.Create(customer).Error
}

func (s *Store) CustomerByID(id uint) (*models.Customer, bool, error) {
	var customer models.Customer
	err := s.db.First(&customer, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &customer, true, nil
}

// DeleteCustomer removes a customer and every order they placed, in one
// transaction.
func (s *Store) DeleteCustomer(id uint) error {
	tx := s.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := tx.Where("customer_id = ?", id).Delete(&models.Order{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&models.Customer{}, id).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}
