package domain

// User represents an authenticated account holder. The ledger engine only ever
// reads the UserID; the remaining fields exist for registration and login.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // bcrypt hash; never serialized
	AuditFields
}
