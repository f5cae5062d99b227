package models

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID  uint      `gorm:"not null" json:"product_id"`
	Product    Product   `gorm:"foreignKey:ProductID" json:"product"`
	CustomerID uint      `gorm:"not null" json:"customer_id"`
	Customer   Customer  `gorm:"foreignKey:CustomerID" json:"customer"`
	Quantity   int       `gorm:"default:1" json:"quantity"`
	Address    string    `gorm:"size:100" json:"address"`
	Phone      string    `gorm:"size:20" json:"phone"`
	Date       time.Time `json:"date"`
	Status     bool      `gorm:"default:false" json:"status"` // true once shipped
}

// BeforeCreate fills in the defaults a raw insert would otherwise miss:
// quantity 1 and the order date set to the day of creation.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.Quantity == 0 {
		o.Quantity = 1
	}
	if o.Date.IsZero() {
		now := time.Now()
		o.Date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}
	return nil
}
