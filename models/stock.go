package models

import "time"

// StockRecord is a per-slug counter. Stock never goes below zero on any
// write path; the ledger enforces the clamp inside the database.
type StockRecord struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	Slug      string    `gorm:"uniqueIndex;not null" json:"slug"`
	Item      string    `gorm:"not null" json:"item"`
	Stock     int       `gorm:"not null;default:0" json:"stock"`
	Category  string    `gorm:"index;not null;default:'desserts'" json:"category"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
