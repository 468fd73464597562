package models

// User represents a user row as stored in the database.
// Authentication happens at the hosted auth provider; we only keep the
// provider subject, the profile basics and the AI credit balance.
type User struct {
	UserID     string `db:"user_id"`
	ProviderID string `db:"provider_id"`
	Email      string `db:"email"`
	Name       string `db:"name"`
	Credits    int64  `db:"credits"`
	AuditFields
}
