package mapping

import (
	"database/sql"

	"github.com/macrodyn/solow_model_app/internal/core/domain"
	"github.com/macrodyn/solow_model_app/internal/models"
)

// ToModelUser converts a domain.User to its persistence model.
func ToModelUser(d domain.User) models.User {
	m := models.User{
		UserID:       d.UserID,
		Username:     d.Username,
		Name:         d.Name,
		AuthProvider: string(d.AuthProvider),
		AuditFields:  ToModelAuditFields(d.AuditFields),
		DeletedAt:    d.DeletedAt,
	}
	if d.PasswordHash != "" {
		m.PasswordHash = sql.NullString{String: d.PasswordHash, Valid: true}
	}
	if d.Email != "" {
		m.Email = sql.NullString{String: d.Email, Valid: true}
	}
	if d.ProviderID != "" {
		m.ProviderID = sql.NullString{String: d.ProviderID, Valid: true}
	}
	if d.RefreshTokenHash != "" {
		m.RefreshTokenHash = sql.NullString{String: d.RefreshTokenHash, Valid: true}
	}
	if d.RefreshTokenExpiry != nil {
		m.RefreshTokenExpiryTime = sql.NullTime{Time: *d.RefreshTokenExpiry, Valid: true}
	}
	return m
}

// ToDomainUser converts a persistence model to a domain.User.
func ToDomainUser(m models.User) domain.User {
	d := domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash.String,
		Name:         m.Name,
		Email:        m.Email.String,
		AuthProvider: domain.AuthProvider(m.AuthProvider),
		ProviderID:   m.ProviderID.String,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
		DeletedAt:    m.DeletedAt,
	}
	if m.RefreshTokenHash.Valid {
		d.RefreshTokenHash = m.RefreshTokenHash.String
	}
	if m.RefreshTokenExpiryTime.Valid {
		t := m.RefreshTokenExpiryTime.Time
		d.RefreshTokenExpiry = &t
	}
	return d
}

// ToDomainUserSlice converts a slice of user models.
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}
