package domain

// Category is a node in the taxonomy forest. Slug is the natural key; a nil
// ParentID marks a root. A child's parent is always persisted first.
type Category struct {
	ID       int64  `json:"id"`
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	ParentID *int64 `json:"parentId,omitempty"`
}

// Product is a catalog entry. Slug is the natural key. Colors and Sizes are
// structured variant lists stored as JSON, not normalized rows. InStock is
// derived from Stock and never hand-entered.
type Product struct {
	ID          int64    `json:"id"`
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PriceCents  int64    `json:"priceCents"`
	Stock       int      `json:"stock"`
	InStock     bool     `json:"inStock"`
	CategoryID  int64    `json:"categoryId"`
	Colors      []string `json:"colors"`
	Sizes       []string `json:"sizes"`
	ImageURL    string   `json:"imageUrl"`
}

// Campaign is a promotional record referencing already-seeded categories and
// products by id. The id lists are stored as JSON.
type Campaign struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	DiscountPercent int     `json:"discountPercent"`
	StartsAt        string  `json:"startsAt"`
	EndsAt          string  `json:"endsAt"`
	CategoryIDs     []int64 `json:"categoryIds"`
	ProductIDs      []int64 `json:"productIds"`
}
