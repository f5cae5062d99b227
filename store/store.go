// Package store is the storage boundary for catalog and order records.
// Lookups that can legitimately miss return an explicit found flag rather
// than a record-not-found error, and deletes enforce referential integrity
// with application-level cascades inside a transaction.
package store

import "gorm.io/gorm"

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for migration and seeding at startup.
func (s *Store) DB() *gorm.DB {
	return s.db
}
