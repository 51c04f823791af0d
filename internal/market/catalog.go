// Package market is the read-only produce data source behind the UI.
//
// It stands in for the marketplace backend: a fixed set of categories,
// vendors and products decoded from a JSON fixture.
package market

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

//go:embed fixtures/produce.json
var embeddedFixture []byte

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrEmptyCatalog is returned when a fixture has no products.
var ErrEmptyCatalog = errors.New("market: catalog has no products")

// Category groups products. Key is the translation key of its name.
type Category struct {
	ID  string `json:"id"`
	Key string `json:"key"`
}

// Location is a vendor's pickup point.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Vendor sells products.
type Vendor struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Location Location `json:"location"`
}

// Product is one listing.
type Product struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CategoryID string `json:"category"`
	VendorID   string `json:"vendor"`
	PriceCents int64  `json:"price_cents"`
	Unit       string `json:"unit"`
	Organic    bool   `json:"organic"`
	Local      bool   `json:"local"`
	Seasonal   bool   `json:"seasonal"`
	Stock      int    `json:"stock"`
}

// InStock reports whether any units are left.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// SortOrder orders product listings.
type SortOrder string

const (
	SortName      SortOrder = "name"
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
)

// SortOrders lists every order in display order.
func SortOrders() []SortOrder {
	return []SortOrder{SortName, SortPriceAsc, SortPriceDesc}
}

// Key returns the translation key for the order's label.
func (o SortOrder) Key() string {
	return "sort." + string(o)
}

// Filter narrows a product listing. Zero value lists everything by name.
type Filter struct {
	CategoryID  string
	OrganicOnly bool
	InStockOnly bool
	Sort        SortOrder
}

type fixture struct {
	Categories []Category `json:"categories"`
	Vendors    []Vendor   `json:"vendors"`
	Products   []Product  `json:"products"`
}

// Catalog is an immutable in-memory snapshot of the fixture.
type Catalog struct {
	categories []Category
	vendors    map[string]Vendor
	products   []Product
}

// LoadEmbedded decodes the fixture compiled into the binary.
func LoadEmbedded() (*Catalog, error) {
	return Decode(embeddedFixture, "embedded fixture")
}

// LoadFile decodes a fixture from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("market: read %s: %w", path, err)
	}
	return Decode(data, path)
}

// Decode parses fixture JSON. source names the data in error messages.
func Decode(data []byte, source string) (*Catalog, error) {
	var f fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("market: decode %s: %w", source, err)
	}
	if len(f.Products) == 0 {
		return nil, fmt.Errorf("%w (%s)", ErrEmptyCatalog, source)
	}

	c := &Catalog{
		categories: f.Categories,
		vendors:    make(map[string]Vendor, len(f.Vendors)),
		products:   f.Products,
	}
	for _, v := range f.Vendors {
		c.vendors[v.ID] = v
	}

	known := make(map[string]bool, len(f.Categories))
	for _, cat := range f.Categories {
		known[cat.ID] = true
	}
	for _, p := range f.Products {
		if !known[p.CategoryID] {
			return nil, fmt.Errorf("market: decode %s: product %s has unknown category %q", source, p.ID, p.CategoryID)
		}
	}
	return c, nil
}

// Categories returns categories in fixture order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Vendor looks up a vendor by id.
func (c *Catalog) Vendor(id string) (Vendor, bool) {
	v, ok := c.vendors[id]
	return v, ok
}

// Products returns the products matching f, sorted by f.Sort.
func (c *Catalog) Products(f Filter) []Product {
	out := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		if f.CategoryID != "" && p.CategoryID != f.CategoryID {
			continue
		}
		if f.OrganicOnly && !p.Organic {
			continue
		}
		if f.InStockOnly && !p.InStock() {
			continue
		}
		out = append(out, p)
	}

	byName := func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	}
	switch f.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].PriceCents != out[j].PriceCents {
				return out[i].PriceCents < out[j].PriceCents
			}
			return byName(i, j)
		})
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].PriceCents != out[j].PriceCents {
				return out[i].PriceCents > out[j].PriceCents
			}
			return byName(i, j)
		})
	default:
		sort.SliceStable(out, byName)
	}
	return out
}
