package mapping

import (
	"github.com/macrodyn/solow_model_app/internal/core/domain"
	"github.com/macrodyn/solow_model_app/internal/models"
)

// ToModelWorkspace converts a domain.Workspace to its persistence model.
func ToModelWorkspace(d domain.Workspace) models.Workspace {
	return models.Workspace{
		WorkspaceID:       d.WorkspaceID,
		Name:              d.Name,
		Description:       d.Description,
		DefaultPresetCode: d.DefaultPresetCode,
		IsActive:          d.IsActive,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWorkspace converts a persistence model to a domain.Workspace.
func ToDomainWorkspace(m models.Workspace) domain.Workspace {
	return domain.Workspace{
		WorkspaceID:       m.WorkspaceID,
		Name:              m.Name,
		Description:       m.Description,
		DefaultPresetCode: m.DefaultPresetCode,
		IsActive:          m.IsActive,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainWorkspaceSlice converts a slice of workspace models.
func ToDomainWorkspaceSlice(ms []models.Workspace) []domain.Workspace {
	ds := make([]domain.Workspace, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWorkspace(m)
	}
	return ds
}

// ToDomainUserWorkspace converts a membership model row.
func ToDomainUserWorkspace(m models.UserWorkspace) domain.UserWorkspace {
	return domain.UserWorkspace{
		UserID:      m.UserID,
		WorkspaceID: m.WorkspaceID,
		Role:        domain.UserWorkspaceRole(m.Role),
		JoinedAt:    m.JoinedAt,
	}
}
