package models

// Customer is the order-facing contact record. It is a separate table from
// User: the two are intentionally not linked, and Password here is stored
// as-is pending a decision on unifying the records.
type Customer struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string  `gorm:"size:50" json:"first_name"`
	LastName  string  `gorm:"size:50" json:"last_name"`
	Phone     string  `gorm:"size:10" json:"phone"`
	Email     string  `gorm:"size:100" json:"email"`
	Password  string  `gorm:"size:100" json:"-"`
	Orders    []Order `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"orders,omitempty"`
}

func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
