package models

// User represents a persisted account holder.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Email        string `json:"email"`  // Unique
	PasswordHash string `json:"-"`
	AuditFields
}
