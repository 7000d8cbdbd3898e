package catalog

// Product is a storefront product record.
type Product struct {
	ID            string  `json:"id,omitempty"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	SKU           string  `json:"sku"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	CategoryID    string  `json:"category_id"`
	ImageURL      string  `json:"image_url,omitempty"`
	IsActive      bool    `json:"is_active,omitempty"`
	CreatedAt     string  `json:"created_at,omitempty"`
	UpdatedAt     string  `json:"updated_at,omitempty"`
	CategoryName  string  `json:"category_name,omitempty"`
	CategorySlug  string  `json:"category_slug,omitempty"`
}

// Category is a product category, optionally nested under a parent.
type Category struct {
	ID          string     `json:"id,omitempty"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug,omitempty"`
	Description string     `json:"description,omitempty"`
	ParentID    string     `json:"parent_id,omitempty"`
	IsActive    bool       `json:"is_active,omitempty"`
	CreatedAt   string     `json:"created_at,omitempty"`
	UpdatedAt   string     `json:"updated_at,omitempty"`
	ParentName  string     `json:"parent_name,omitempty"`
	ParentSlug  string     `json:"parent_slug,omitempty"`
	Children    []Category `json:"children,omitempty"`
}

// ProductFilters narrows a product listing. Zero values are omitted
// from the query string.
type ProductFilters struct {
	Search     string
	CategoryID string
	MinPrice   *float64
	MaxPrice   *float64
	InStock    *bool
	SortBy     string
	Page       int
	Limit      int
}

// ProductData carries the fields for creating or updating a product.
type ProductData struct {
	Name          string  `json:"name,omitempty"`
	Description   string  `json:"description,omitempty"`
	SKU           string  `json:"sku,omitempty"`
	Price         float64 `json:"price,omitempty"`
	StockQuantity int     `json:"stock_quantity,omitempty"`
	CategoryID    string  `json:"category_id,omitempty"`
	ImageURL      string  `json:"image_url,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
}

// StockOperation selects how UpdateStock applies its quantity.
type StockOperation string

const (
	StockSet      StockOperation = "set"
	StockAdd      StockOperation = "add"
	StockSubtract StockOperation = "subtract"
)

// UpdateStockData adjusts a product's stock level.
type UpdateStockData struct {
	Stock     int            `json:"stock"`
	Operation StockOperation `json:"operation,omitempty"`
}

// CategoryData carries the fields for creating or updating a category.
type CategoryData struct {
	Name        string `json:"name,omitempty"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
	ParentID    string `json:"parent_id,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty"`
}
