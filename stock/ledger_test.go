package stock

import (
	"testing"

	"github.com/anasmohamad369/hotelzeeshan/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.StockRecord{}))
	return NewLedger(db)
}

func TestUpsertCreatesAndOverwrites(t *testing.T) {
	ledger := newTestLedger(t)

	record, err := ledger.Upsert("apricot-delight", 5)
	require.NoError(t, err)
	assert.Equal(t, "Apricot delight", record.Item)
	assert.Equal(t, 5, record.Stock)
	assert.Equal(t, "desserts", record.Category)

	record, err = ledger.Upsert("apricot-delight", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, record.Stock)

	records, err := ledger.ListByCategory("desserts")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestUpsertClampsNegative(t *testing.T) {
	ledger := newTestLedger(t)

	record, err := ledger.Upsert("shatoot-malai", -7)
	require.NoError(t, err)
	assert.Equal(t, 0, record.Stock)
}

func TestUpsertUnknownSlugFallsBackToSlugName(t *testing.T) {
	ledger := newTestLedger(t)

	record, err := ledger.Upsert("mystery-sweet", 3)
	require.NoError(t, err)
	assert.Equal(t, "mystery-sweet", record.Item)
}

func TestUpsertBulkIsIdempotent(t *testing.T) {
	ledger := newTestLedger(t)
	updates := []Update{
		{Slug: "apricot-delight", Stock: 5},
		{Slug: "kubani-ka-mitha", Stock: 10},
	}

	first, err := ledger.UpsertBulk(updates)
	require.NoError(t, err)
	second, err := ledger.UpsertBulk(updates)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Slug, second[i].Slug)
		assert.Equal(t, first[i].Stock, second[i].Stock)
		assert.Equal(t, first[i].Item, second[i].Item)
	}
}

func TestInitializeSeedsDefaultsIdempotently(t *testing.T) {
	ledger := newTestLedger(t)

	require.NoError(t, ledger.Initialize())
	records, err := ledger.ListByCategory("desserts")
	require.NoError(t, err)
	require.Len(t, records, 5)

	bySlug := make(map[string]int)
	for _, r := range records {
		bySlug[r.Slug] = r.Stock
	}
	assert.Equal(t, 5, bySlug["apricot-delight"])
	assert.Equal(t, 0, bySlug["shatoot-malai"])
	assert.Equal(t, 10, bySlug["kubani-ka-mitha"])
	assert.Equal(t, 8, bySlug["kaddu-ka-kheer"])
	assert.Equal(t, 3, bySlug["sitaphal-malai"])

	// rerun resets to the same seed
	_, err = ledger.Upsert("kubani-ka-mitha", 1)
	require.NoError(t, err)
	require.NoError(t, ledger.Initialize())

	record, err := ledger.Upsert("kubani-ka-mitha", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, record.Stock)

	records, err = ledger.ListByCategory("desserts")
	require.NoError(t, err)
	assert.Len(t, records, 5)
}

func TestDecrementReducesStock(t *testing.T) {
	ledger := newTestLedger(t)
	_, err := ledger.Upsert("kubani-ka-mitha", 10)
	require.NoError(t, err)

	updated, err := ledger.Decrement([]DecrementItem{{Slug: "kubani-ka-mitha", Quantity: 4}})
	require.NoError(t, err)
	require.Len(t, updated, 1)
	assert.Equal(t, 6, updated[0].Stock)
}

func TestDecrementClampsAtZero(t *testing.T) {
	ledger := newTestLedger(t)
	_, err := ledger.Upsert("shatoot-malai", 0)
	require.NoError(t, err)

	updated, err := ledger.Decrement([]DecrementItem{{Slug: "shatoot-malai", Quantity: 3}})
	require.NoError(t, err)
	require.Len(t, updated, 1)
	assert.Equal(t, 0, updated[0].Stock)

	// overshoot from a positive level also clamps
	_, err = ledger.Upsert("sitaphal-malai", 2)
	require.NoError(t, err)
	updated, err = ledger.Decrement([]DecrementItem{{Slug: "sitaphal-malai", Quantity: 9}})
	require.NoError(t, err)
	require.Len(t, updated, 1)
	assert.Equal(t, 0, updated[0].Stock)
}

func TestDecrementSkipsUnknownAndInvalidEntries(t *testing.T) {
	ledger := newTestLedger(t)
	_, err := ledger.Upsert("apricot-delight", 5)
	require.NoError(t, err)

	updated, err := ledger.Decrement([]DecrementItem{
		{Slug: "no-such-slug", Quantity: 2},
		{Slug: "", Quantity: 2},
		{Slug: "apricot-delight", Quantity: 0},
		{Slug: "apricot-delight", Quantity: -1},
	})
	require.NoError(t, err)
	assert.Empty(t, updated)

	records, err := ledger.ListByCategory("desserts")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 5, records[0].Stock, "ledger must be unchanged")
}
