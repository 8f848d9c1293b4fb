// Package catalog loads the product catalog from a JSON file and serves
// availability-filtered views of it to the recommendation engine.
package catalog

import (
	"context"
	"fmt"
	"log"
	"math"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/elara/elara-outfits/internal/types"
)

// Loader reads the catalog file once and keeps it in memory. The loaded
// slice is treated as immutable; filtered views are fresh slices.
type Loader struct {
	path  string
	group singleflight.Group

	mu       sync.RWMutex
	products []types.Product

	// now is swappable for tests of shipping feasibility.
	now func() time.Time
}

// NewLoader creates a loader for the catalog file at path.
func NewLoader(path string) *Loader {
	return &Loader{path: path, now: time.Now}
}

// Load parses and validates the catalog file. Concurrent callers share one
// read; subsequent calls return the cached slice.
func (l *Loader) Load() ([]types.Product, error) {
	l.mu.RLock()
	if l.products != nil {
		defer l.mu.RUnlock()
		return l.products, nil
	}
	l.mu.RUnlock()

	result, err, _ := l.group.Do("load", func() (any, error) {
		data, err := os.ReadFile(l.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog file %s: %w", l.path, err)
		}

		products, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("invalid catalog file %s: %w", l.path, err)
		}

		l.mu.Lock()
		l.products = products
		l.mu.Unlock()
		return products, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]types.Product), nil
}

// AvailableProducts returns the products deliverable to the city by the
// delivery date: in stock, shippable in time and available in the location.
// A catalog load failure degrades to an empty slice so the engine never sees
// an error from this collaborator.
func (l *Loader) AvailableProducts(_ context.Context, city string, deliveryDate time.Time) []types.Product {
	catalog, err := l.Load()
	if err != nil {
		log.Printf("[catalog] load failed, serving empty product set: %v", err)
		return nil
	}

	daysUntilEvent := int(math.Ceil(deliveryDate.Sub(l.now()).Hours() / 24))

	var available []types.Product
	for _, p := range catalog {
		if !p.InStock {
			continue
		}
		if p.ShippingDays > daysUntilEvent {
			continue
		}
		if !availableIn(p, city) {
			continue
		}
		available = append(available, p)
	}
	return available
}

// ProductByID looks up a single catalog product.
func (l *Loader) ProductByID(id string) (*types.Product, bool) {
	catalog, err := l.Load()
	if err != nil {
		return nil, false
	}
	for i := range catalog {
		if catalog[i].ID == id {
			p := catalog[i]
			return &p, true
		}
	}
	return nil, false
}

// availableIn reports whether a product ships to the city. Products without
// a location list, or listing "all", ship everywhere.
func availableIn(p types.Product, city string) bool {
	if len(p.AvailableLocations) == 0 {
		return true
	}
	for _, loc := range p.AvailableLocations {
		if loc == city || loc == "all" {
			return true
		}
	}
	return false
}
