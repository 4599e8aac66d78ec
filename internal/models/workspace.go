package models

import "time"

// Workspace represents a workspace row.
type Workspace struct {
	WorkspaceID       string  `db:"workspace_id"`
	Name              string  `db:"name"`
	Description       string  `db:"description"`
	DefaultPresetCode *string `db:"default_preset_code"`
	IsActive          bool    `db:"is_active"`
	AuditFields
}

// UserWorkspace represents a membership row in user_workspaces.
type UserWorkspace struct {
	UserID      string    `db:"user_id"`
	WorkspaceID string    `db:"workspace_id"`
	Role        string    `db:"role"`
	JoinedAt    time.Time `db:"joined_at"`
}
