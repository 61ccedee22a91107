package entities

// User is a participant on the exchange: a customer placing orders or an
// executor taking them. The id is client-supplied and immutable once created.
type User struct {
	ID        int    `json:"id" db:"id"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
	Age       int    `json:"age" db:"age"`
	Email     string `json:"email" db:"email"`
	Role      string `json:"role" db:"role"`
	Phone     string `json:"phone" db:"phone"`
}
