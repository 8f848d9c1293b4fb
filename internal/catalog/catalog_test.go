package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `[
	{"id": "p1", "name": "Linen Shirt", "category": "top", "color": "white", "fabric": "linen",
	 "tags": ["light", "breathable"], "occasions": ["casual"], "is_trending": true,
	 "shipping_days": 2, "available_locations": ["Paris", "Lyon"], "in_stock": true},
	{"id": "p2", "name": "Wool Coat", "category": "jacket", "color": "black", "fabric": "wool",
	 "tags": ["winter", "warm"], "occasions": ["formal"], "is_trending": false,
	 "shipping_days": 7, "available_locations": ["all"], "in_stock": true},
	{"id": "p3", "name": "Sold Out Dress", "category": "dress", "color": "red",
	 "tags": [], "occasions": [], "is_trending": false,
	 "shipping_days": 1, "in_stock": false},
	{"id": "p4", "name": "Everywhere Jeans", "category": "jeans", "color": "blue", "fabric": "denim",
	 "tags": ["transitional"], "occasions": ["casual"], "is_trending": false,
	 "shipping_days": 3, "in_stock": true}
]`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func testLoader(t *testing.T, content string) *Loader {
	t.Helper()
	loader := NewLoader(writeCatalog(t, content))
	loader.now = func() time.Time {
		return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	return loader
}

func TestLoad_ParsesValidCatalog(t *testing.T) {
	loader := testLoader(t, sampleCatalog)

	products, err := loader.Load()
	require.NoError(t, err)
	require.Len(t, products, 4)
	assert.Equal(t, "p1", products[0].ID)
	assert.True(t, products[0].IsTrending)
}

func TestLoad_RejectsSchemaViolations(t *testing.T) {
	// shipping_days has the wrong type and id is missing.
	loader := testLoader(t, `[{"category": "top", "color": "white", "shipping_days": "soon", "in_stock": true}]`)

	_, err := loader.Load()
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.NotEmpty(t, ve.Errors)
}

func TestAvailableProducts_FiltersStockShippingAndLocation(t *testing.T) {
	loader := testLoader(t, sampleCatalog)

	// Event in 4 days: p2 (7 shipping days) and p3 (out of stock) drop out.
	eventDate := time.Date(2024, 6, 5, 12, 0, 0, 0, time.UTC)
	products := loader.AvailableProducts(context.Background(), "Paris", eventDate)

	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"p1", "p4"}, ids)
}

func TestAvailableProducts_LocationRules(t *testing.T) {
	loader := testLoader(t, sampleCatalog)
	eventDate := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)

	// Far-future event: everything in stock ships in time. "Marseille" is not
	// in p1's location list, but p2 lists "all" and p4 has no list.
	products := loader.AvailableProducts(context.Background(), "Marseille", eventDate)

	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"p2", "p4"}, ids)
}

func TestAvailableProducts_LoadFailureDegradesToEmpty(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "missing.json"))

	products := loader.AvailableProducts(context.Background(), "Paris", time.Now().Add(72*time.Hour))
	assert.Empty(t, products)
}

func TestProductByID(t *testing.T) {
	loader := testLoader(t, sampleCatalog)

	p, ok := loader.ProductByID("p2")
	require.True(t, ok)
	assert.Equal(t, "Wool Coat", p.Name)

	_, ok = loader.ProductByID("nope")
	assert.False(t, ok)
}

func TestValidateFile(t *testing.T) {
	valid := writeCatalog(t, sampleCatalog)
	products, err := ValidateFile(valid)
	assert.NoError(t, err)
	assert.Len(t, products, 4)

	invalid := writeCatalog(t, `{"not": "an array"}`)
	_, err = ValidateFile(invalid)
	assert.Error(t, err)
}
