package catalog

import (
	"strings"
)

// Product is a single catalog entry. Prices are whole currency units
// (499 = ₹499); sizes apply to apparel only.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         int64    `json:"price"`
	Currency      string   `json:"currency"`
	Category      string   `json:"category"`
	Color         string   `json:"color"`
	Material      string   `json:"material"`
	Capacity      string   `json:"capacity,omitempty"`
	Sizes         []string `json:"sizes,omitempty"`
	InStock       bool     `json:"in_stock"`
	ImageURL      string   `json:"image_url"`
	StockQuantity int      `json:"stock_quantity"`
}

// HasSize reports whether the product offers the given size. Products without
// a size list accept any (empty) size.
func (p Product) HasSize(size string) bool {
	if len(p.Sizes) == 0 {
		return size == ""
	}
	upper := strings.ToUpper(strings.TrimSpace(size))
	for _, s := range p.Sizes {
		if s == upper {
			return true
		}
	}
	return false
}

// Filter narrows a catalog listing. Zero values mean "no constraint";
// price bounds use pointers so 0 remains a valid bound.
type Filter struct {
	Category    string
	MinPrice    *int64
	MaxPrice    *int64
	Color       string
	Size        string
	Search      string
	InStockOnly bool
}

// Spoken category variants collapse onto canonical catalog categories so the
// voice agent can pass through what it heard.
var categoryAliases = map[string]string{
	"mug":           "mug",
	"mugs":          "mug",
	"coffee mug":    "mug",
	"coffee mugs":   "mug",
	"tshirt":        "tshirt",
	"tshirts":       "tshirt",
	"t-shirt":       "tshirt",
	"t-shirts":      "tshirt",
	"shirt":         "tshirt",
	"shirts":        "tshirt",
	"hoodie":        "hoodie",
	"hoodies":       "hoodie",
	"bottle":        "bottle",
	"bottles":       "bottle",
	"water bottle":  "bottle",
	"water bottles": "bottle",
	"bag":           "bag",
	"bags":          "bag",
	"backpack":      "bag",
	"backpacks":     "bag",
	"tote":          "bag",
}

// NormalizeCategory maps spoken variants onto the canonical category name.
// Unknown inputs pass through lower-cased.
func NormalizeCategory(category string) string {
	lower := strings.ToLower(strings.TrimSpace(category))
	if canonical, ok := categoryAliases[lower]; ok {
		return canonical
	}
	return lower
}

func (f Filter) matches(p Product) bool {
	if f.InStockOnly && !p.InStock {
		return false
	}
	if f.Category != "" && p.Category != NormalizeCategory(f.Category) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.Color != "" && !strings.EqualFold(p.Color, f.Color) {
		return false
	}
	if f.Size != "" {
		if len(p.Sizes) == 0 || !p.HasSize(f.Size) {
			return false
		}
	}
	if f.Search != "" {
		haystack := strings.ToLower(strings.Join([]string{
			p.Name, p.Description, p.Category, p.Color, p.Material,
		}, " "))
		if !strings.Contains(haystack, strings.ToLower(f.Search)) {
			return false
		}
	}
	return true
}
