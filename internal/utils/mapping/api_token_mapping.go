package mapping

import (
	"database/sql"

	"github.com/macrodyn/solow_model_app/internal/core/domain"
	"github.com/macrodyn/solow_model_app/internal/models"
)

// ToModelAPIToken converts a domain.APIToken to its persistence model.
func ToModelAPIToken(d domain.APIToken) models.APIToken {
	m := models.APIToken{
		TokenID:   d.TokenID,
		UserID:    d.UserID,
		Name:      d.Name,
		TokenHash: d.TokenHash,
		CreatedAt: d.CreatedAt,
	}
	if d.ExpiresAt != nil {
		m.ExpiresAt = sql.NullTime{Time: *d.ExpiresAt, Valid: true}
	}
	if d.LastUsedAt != nil {
		m.LastUsedAt = sql.NullTime{Time: *d.LastUsedAt, Valid: true}
	}
	if d.RevokedAt != nil {
		m.RevokedAt = sql.NullTime{Time: *d.RevokedAt, Valid: true}
	}
	return m
}

// ToDomainAPIToken converts a persistence model to a domain.APIToken.
func ToDomainAPIToken(m models.APIToken) domain.APIToken {
	d := domain.APIToken{
		TokenID:   m.TokenID,
		UserID:    m.UserID,
		Name:      m.Name,
		TokenHash: m.TokenHash,
		CreatedAt: m.CreatedAt,
	}
	if m.ExpiresAt.Valid {
		t := m.ExpiresAt.Time
		d.ExpiresAt = &t
	}
	if m.LastUsedAt.Valid {
		t := m.LastUsedAt.Time
		d.LastUsedAt = &t
	}
	if m.RevokedAt.Valid {
		t := m.RevokedAt.Time
		d.RevokedAt = &t
	}
	return d
}

// ToDomainAPITokenSlice converts a slice of token models.
func ToDomainAPITokenSlice(ms []models.APIToken) []domain.APIToken {
	ds := make([]domain.APIToken, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAPIToken(m)
	}
	return ds
}
