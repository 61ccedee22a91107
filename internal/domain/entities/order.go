package entities

// Order is a unit of work placed by a customer and taken by an executor.
// CustomerID and ExecutorID reference users advisorily: they are plain
// integers, never enforced, and may dangle after a user is deleted.
type Order struct {
	ID          int    `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	StartDate   Date   `json:"start_date" db:"start_date"`
	EndDate     Date   `json:"end_date" db:"end_date"`
	Address     string `json:"address" db:"address"`
	Price       int    `json:"price" db:"price"`
	CustomerID  int    `json:"customer_id" db:"customer_id"`
	ExecutorID  int    `json:"executor_id" db:"executor_id"`
}

// OrderListItem is the display shape used when listing orders. Customer and
// Executor hold the referenced user's first name when that user exists and
// the raw id otherwise; the stored order always keeps the numeric ids.
type OrderListItem struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	StartDate   Date        `json:"start_date"`
	EndDate     Date        `json:"end_date"`
	Address     string      `json:"address"`
	Price       int         `json:"price"`
	Customer    interface{} `json:"customer_id"`
	Executor    interface{} `json:"executor_id"`
}
