package domain

import "fmt"

// Marketplace categories shown as filter tabs. "All" is implicit.
var ProductCategories = []string{
	"Electronics",
	"Fashion",
	"Home & Garden",
	"Books",
	"Vouchers",
}

// Product is a marketplace item exchangeable for points.
type Product struct {
	ID            string
	Name          string
	Description   string
	Points        int
	OriginalPrice int
	ProductCat    string
	Rating        float64
	Popular       bool
}

// ItemID returns the product identifier.
func (p Product) ItemID() string { return p.ID }

// Category returns the product category tag.
func (p Product) Category() string { return p.ProductCat }

// Status returns "" — products carry no status tag.
func (p Product) Status() string { return "" }

// SearchText returns the text matched by free-text search.
func (p Product) SearchText() string { return p.Name + " " + p.Description }

// Validate validates the product and returns an error if invalid.
func (p Product) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("product ID cannot be empty")
	}
	if p.Name == "" {
		return fmt.Errorf("product name cannot be empty")
	}
	if p.Points <= 0 {
		return fmt.Errorf("invalid product cost: %d", p.Points)
	}
	return nil
}
