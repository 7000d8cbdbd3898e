package orders

// Status of an order.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// PaymentStatus of an order's payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Item is a single product line in an order, with the price frozen at
// purchase time.
type Item struct {
	ID          string  `json:"id"`
	OrderID     string  `json:"order_id"`
	ProductID   string  `json:"product_id"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Subtotal    float64 `json:"subtotal"`
	ProductName string  `json:"product_name"`
	ProductSKU  string  `json:"product_sku"`
}

// Payment records the payment attempt attached to an order.
type Payment struct {
	ID            string        `json:"id"`
	OrderID       string        `json:"order_id"`
	Amount        float64       `json:"amount"`
	Status        PaymentStatus `json:"status"`
	PaymentMethod string        `json:"payment_method"`
	TransactionID string        `json:"transaction_id,omitempty"`
	CreatedAt     string        `json:"created_at,omitempty"`
	UpdatedAt     string        `json:"updated_at,omitempty"`
}

// Customer is the abbreviated user record embedded in admin order
// listings.
type Customer struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// Order is a placed order.
type Order struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	CartID             string    `json:"cart_id"`
	Status             Status    `json:"status"`
	TotalAmount        float64   `json:"total_amount"`
	ShippingAddress    string    `json:"shipping_address"`
	ShippingCity       string    `json:"shipping_city"`
	ShippingCountry    string    `json:"shipping_country"`
	ShippingPostalCode string    `json:"shipping_postal_code"`
	PaymentMethod      string    `json:"payment_method,omitempty"`
	CreatedAt          string    `json:"created_at,omitempty"`
	UpdatedAt          string    `json:"updated_at,omitempty"`
	Items              []Item    `json:"items"`
	Payment            *Payment  `json:"payment,omitempty"`
	User               *Customer `json:"user,omitempty"`
}

// CreateOrderData places an order from the active cart (checkout).
type CreateOrderData struct {
	ShippingAddress    string `json:"shipping_address"`
	ShippingCity       string `json:"shipping_city"`
	ShippingCountry    string `json:"shipping_country"`
	ShippingPostalCode string `json:"shipping_postal_code"`
	PaymentMethod      string `json:"payment_method"`
}

// Filters narrows an order listing.
type Filters struct {
	Status Status
	Page   int
	Limit  int
}
