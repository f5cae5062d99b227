package store

import "github.com/westeastdesigns/ecom-2024/models"

// CreateOrder inserts an order record. Quantity and Date defaults are applied
// by the model's BeforeCreate hook; Status starts false (not shipped).
func (s *Store) CreateOrder(order *models.Order) error {
	return s.db.Create(order).Error
}

func (s *Store) OrdersByCustomer(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Product").
		Where("customer_id = ?", customerID).
		Order("id").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
