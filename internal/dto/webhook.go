package dto

// IdentityEmailAddress is one email address attached to an identity event.
type IdentityEmailAddress struct {
	ID           string `json:"id"`
	EmailAddress string `json:"email_address"`
}

// IdentityEventData carries the user payload of an identity provider event.
type IdentityEventData struct {
	ID                    string                 `json:"id"`
	FirstName             string                 `json:"first_name"`
	LastName              string                 `json:"last_name"`
	EmailAddresses        []IdentityEmailAddress `json:"email_addresses"`
	PrimaryEmailAddressID string                 `json:"primary_email_address_id"`
}

// IdentityEvent is the webhook envelope sent by the identity provider.
type IdentityEvent struct {
	Type string            `json:"type"`
	Data IdentityEventData `json:"data"`
}

// PrimaryEmail resolves the event's primary email address. The second
// return is false when no address matches the primary id.
func (e IdentityEventData) PrimaryEmail() (string, bool) {
	for _, addr := range e.EmailAddresses {
		if addr.ID == e.PrimaryEmailAddressID {
			return addr.EmailAddress, true
		}
	}
	return "", false
}
