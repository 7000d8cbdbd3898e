package cart

import "github.com/jrsteele09/go-shop-client/catalog"

// Status of a cart on the backend.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusAbandoned Status = "abandoned"
)

// Item is a single product line in a cart. The price is captured at the
// moment the item was added.
type Item struct {
	ID              string          `json:"id"`
	CartID          string          `json:"cart_id"`
	ProductID       string          `json:"product_id"`
	Quantity        int             `json:"quantity"`
	PriceAtAddition float64         `json:"price_at_addition"`
	CreatedAt       string          `json:"created_at,omitempty"`
	UpdatedAt       string          `json:"updated_at,omitempty"`
	Product         catalog.Product `json:"product"`
}

// Cart is the user's full shopping cart.
type Cart struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	Status       Status  `json:"status"`
	CreatedAt    string  `json:"created_at,omitempty"`
	UpdatedAt    string  `json:"updated_at,omitempty"`
	Items        []Item  `json:"items"`
	Subtotal     float64 `json:"subtotal"`
	Tax          float64 `json:"tax"`
	ShippingCost float64 `json:"shipping_cost"`
	Total        float64 `json:"total"`
}

// ItemCount sums the quantities across all cart items.
func (c *Cart) ItemCount() int {
	if c == nil {
		return 0
	}
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Summary is the lightweight cart totals the backend returns without
// the full item list.
type Summary struct {
	ItemCount    int     `json:"itemCount"`
	Subtotal     float64 `json:"subtotal"`
	Tax          float64 `json:"tax"`
	ShippingCost float64 `json:"shipping_cost"`
	Total        float64 `json:"total"`
}

// AddItemData adds a product to the cart.
type AddItemData struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// UpdateItemData changes the quantity of an existing cart item.
type UpdateItemData struct {
	Quantity int `json:"quantity"`
}
