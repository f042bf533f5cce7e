package entity

// Catalog categories.
const (
	CategorySnacks     = "snacks"
	CategoryMainCourse = "main-course"
	CategoryBeverages  = "beverages"
)

// MenuItem is one read-only catalog entry. The engine copies its fields
// into cart lines; it never validates or mutates the catalog.
type MenuItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	IsVeg       bool   `json:"isVeg"`
}
