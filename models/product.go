package models

import "github.com/shopspring/decimal"

// DefaultCategoryID is the category new products fall into when none is given.
// The row is guaranteed to exist at startup.
const DefaultCategoryID = 1

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"size:100;not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(6,2);default:0" json:"price"`
	CategoryID  uint            `gorm:"not null;default:1" json:"category_id"`
	Category    Category        `gorm:"foreignKey:CategoryID" json:"category"`
	Description string          `gorm:"size:1500" json:"description"`
	Image       string          `json:"image"` // public path under /uploads
	IsSale      bool            `gorm:"default:false" json:"is_sale"`
	SalePrice   decimal.Decimal `gorm:"type:decimal(6,2);default:0" json:"sale_price"`
	Orders      []Order         `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}

// CurrentPrice is the price the storefront shows: the sale price while a sale
// is running, the regular price otherwise.
func (p Product) CurrentPrice() decimal.Decimal {
	if p.IsSale {
		return p.SalePrice
	}
	return p.Price
}
