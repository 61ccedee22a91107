package entities

// Offer is an executor's bid on an order. OrderID references orders and
// ExecutorID references users; both are advisory and may dangle.
type Offer struct {
	ID         int `json:"id" db:"id"`
	OrderID    int `json:"order_id" db:"order_id"`
	ExecutorID int `json:"executor_id" db:"executor_id"`
}
