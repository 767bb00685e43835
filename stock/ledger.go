// Package stock persists the dessert stock counters. All writes keep the
// non-negativity invariant inside the database: upserts clamp before
// writing, and decrements run as a single conditional UPDATE so two
// concurrent orders cannot lose each other's deduction.
package stock

import (
	"errors"
	"log"

	"github.com/anasmohamad369/hotelzeeshan/catalog"
	"github.com/anasmohamad369/hotelzeeshan/models"
	"gorm.io/gorm"
)

// Update is one slug's target stock level for an upsert.
type Update struct {
	Slug  string `json:"slug"`
	Stock int    `json:"stock"`
}

// DecrementItem is one slug's ordered quantity.
type DecrementItem struct {
	Slug     string `json:"slug"`
	Quantity int    `json:"quantity"`
}

type Ledger struct {
	db *gorm.DB
}

func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// ListByCategory returns every record in a category.
func (l *Ledger) ListByCategory(category string) ([]models.StockRecord, error) {
	var records []models.StockRecord
	if err := l.db.Where("category = ?", category).Order("slug").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Upsert creates the record for slug if absent, otherwise overwrites its
// stock. Negative values are clamped to zero; the display name comes from
// the canonical dessert table, falling back to the slug itself.
func (l *Ledger) Upsert(slug string, stockCount int) (models.StockRecord, error) {
	if stockCount < 0 {
		stockCount = 0
	}

	var record models.StockRecord
	err := l.db.Where("slug = ? AND category = ?", slug, catalog.CategoryDesserts).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record = models.StockRecord{
			Slug:     slug,
			Item:     catalog.DessertName(slug),
			Stock:    stockCount,
			Category: catalog.CategoryDesserts,
		}
		if err := l.db.Create(&record).Error; err != nil {
			return models.StockRecord{}, err
		}
		return record, nil
	}
	if err != nil {
		return models.StockRecord{}, err
	}

	record.Stock = stockCount
	record.Item = catalog.DessertName(slug)
	if err := l.db.Save(&record).Error; err != nil {
		return models.StockRecord{}, err
	}
	return record, nil
}

// UpsertBulk applies Upsert to every entry. Failures are logged and the
// remaining entries still run; only the rows that succeeded are returned.
func (l *Ledger) UpsertBulk(updates []Update) ([]models.StockRecord, error) {
	records := make([]models.StockRecord, 0, len(updates))
	var firstErr error
	for _, u := range updates {
		record, err := l.Upsert(u.Slug, u.Stock)
		if err != nil {
			log.Printf("stock: bulk upsert of %q failed: %v", u.Slug, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		records = append(records, record)
	}
	if len(records) == 0 && firstErr != nil {
		return nil, firstErr
	}
	return records, nil
}

// Initialize seeds the default dessert records. Rerunning it resets each
// seeded slug to its default level.
func (l *Ledger) Initialize() error {
	for _, seed := range catalog.DefaultDessertStock() {
		if _, err := l.Upsert(seed.Slug, seed.Stock); err != nil {
			return err
		}
	}
	return nil
}

// Decrement reduces stock for each ordered item, clamped at zero. The
// clamp runs server-side in one UPDATE per slug. Entries with a blank
// slug, a non-positive quantity, or no matching record are skipped
// silently. Returns the records actually touched.
//
// Decrement is not idempotent; the checkout workflow invokes it at most
// once per placed order.
func (l *Ledger) Decrement(items []DecrementItem) ([]models.StockRecord, error) {
	updated := make([]models.StockRecord, 0, len(items))
	for _, it := range items {
		if it.Slug == "" || it.Quantity <= 0 {
			continue
		}

		res := l.db.Model(&models.StockRecord{}).
			Where("slug = ? AND category = ?", it.Slug, catalog.CategoryDesserts).
			Update("stock", gorm.Expr(
				"CASE WHEN stock - ? < 0 THEN 0 ELSE stock - ? END",
				it.Quantity, it.Quantity,
			))
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			continue
		}

		var record models.StockRecord
		if err := l.db.Where("slug = ? AND category = ?", it.Slug, catalog.CategoryDesserts).
			First(&record).Error; err != nil {
			return nil, err
		}
		updated = append(updated, record)
	}
	return updated, nil
}
