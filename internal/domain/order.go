package domain

// Order is a purchase owned by a user. TotalCents is derived as the sum of
// PriceCents × Quantity over its items and must never disagree with them.
type Order struct {
	ID         int64       `json:"id"`
	UserID     int64       `json:"userId"`
	Status     string      `json:"status"`
	TotalCents int64       `json:"totalCents"`
	Items      []OrderItem `json:"items"`
	CreatedAt  string      `json:"createdAt"`
}

// OrderItem is a line item. PriceCents is a snapshot of the product price at
// order-creation time; later product price changes do not touch it.
type OrderItem struct {
	ID         int64 `json:"id"`
	OrderID    int64 `json:"orderId"`
	ProductID  int64 `json:"productId"`
	Quantity   int   `json:"quantity"`
	PriceCents int64 `json:"priceCents"`
}
