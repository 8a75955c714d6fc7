package domain

// Category is a spending category referenced by transactions.
// The engine stores the reference and resolves the name on read; it does not
// enforce any ownership relationship on categories.
type Category struct {
	CategoryID string `json:"categoryID"` // Primary Key (UUID)
	Name       string `json:"name"`
}
