package models

import "strings"

type Category struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string    `gorm:"size:50;unique;not null" json:"name"`
	Products []Product `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
}

// Slug returns the category name as it appears in URLs (spaces become hyphens).
func (c Category) Slug() string {
	return strings.ReplaceAll(c.Name, " ", "-")
}

// CategoryNameFromSlug reverses Slug: URL segment back to the stored name.
func CategoryNameFromSlug(slug string) string {
	return strings.ReplaceAll(slug, "-", " ")
}
