package domain

// User represents a user of the application in the domain.
// Identity lives with the hosted auth provider; ProviderID is the
// provider's subject and Credits is the remaining AI credit balance.
type User struct {
	UserID     string `json:"userID"` // Primary Key (UUID)
	ProviderID string `json:"providerID"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Credits    int64  `json:"credits"`
	AuditFields
}
