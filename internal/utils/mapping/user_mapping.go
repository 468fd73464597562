package mapping

import (
	"github.com/mindscribe/journal_ai_app/internal/core/domain"
	"github.com/mindscribe/journal_ai_app/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:      d.UserID,
		ProviderID:  d.ProviderID,
		Email:       d.Email,
		Name:        d.Name,
		Credits:     d.Credits,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:      m.UserID,
		ProviderID:  m.ProviderID,
		Email:       m.Email,
		Name:        m.Name,
		Credits:     m.Credits,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
