package domain

import "time"

// Workspace represents an isolated research environment containing scenarios
// and their simulation runs.
type Workspace struct {
	WorkspaceID       string  `json:"workspaceID"` // Primary Key (UUID)
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	DefaultPresetCode *string `json:"defaultPresetCode"` // Calibration preset new scenarios start from
	IsActive          bool    `json:"isActive"`
	AuditFields
}

// UserWorkspaceRole defines the possible roles a user can have within a workspace.
type UserWorkspaceRole string

const (
	RoleAdmin    UserWorkspaceRole = "ADMIN"
	RoleMember   UserWorkspaceRole = "MEMBER"
	RoleReadOnly UserWorkspaceRole = "READONLY"
	RoleRemoved  UserWorkspaceRole = "REMOVED"
)

// UserWorkspace represents the membership of a User in a Workspace.
type UserWorkspace struct {
	UserID      string            `json:"userID"`
	UserName    string            `json:"userName"`
	WorkspaceID string            `json:"workspaceID"`
	Role        UserWorkspaceRole `json:"role"`
	JoinedAt    time.Time         `json:"joinedAt"`
}

// WorkspaceSummary aggregates activity inside a workspace.
type WorkspaceSummary struct {
	WorkspaceID     string     `json:"workspaceID"`
	ScenarioCount   int        `json:"scenarioCount"`
	ActiveScenarios int        `json:"activeScenarios"`
	RunCount        int        `json:"runCount"`
	LastRunAt       *time.Time `json:"lastRunAt,omitempty"`
}
