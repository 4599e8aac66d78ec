package dto

import (
	"time"

	"github.com/macrodyn/solow_model_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateScenarioRequest defines the data needed to create a new scenario.
// Either explicit parameters or a preset code must be supplied; explicit
// parameters win when both are present. Range validation happens in the
// service against the model's admissible bounds.
type CreateScenarioRequest struct {
	Name         string           `json:"name" binding:"required,max=128"`
	Description  string           `json:"description"`
	PresetCode   string           `json:"presetCode"` // Optional: start from a calibration preset
	SavingsRate  *decimal.Decimal `json:"savingsRate"`
	Depreciation *decimal.Decimal `json:"depreciation"`
	PopGrowth    *decimal.Decimal `json:"popGrowth"`
	TechGrowth   *decimal.Decimal `json:"techGrowth"`
	CapitalShare *decimal.Decimal `json:"capitalShare"`
}

// UpdateScenarioRequest defines the data allowed for updating a scenario.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateScenarioRequest struct {
	Name         *string          `json:"name"`
	Description  *string          `json:"description"`
	SavingsRate  *decimal.Decimal `json:"savingsRate"`
	Depreciation *decimal.Decimal `json:"depreciation"`
	PopGrowth    *decimal.Decimal `json:"popGrowth"`
	TechGrowth   *decimal.Decimal `json:"techGrowth"`
	CapitalShare *decimal.Decimal `json:"capitalShare"`
}

// ScenarioResponse defines the data returned for a scenario.
type ScenarioResponse struct {
	ScenarioID    string          `json:"scenarioID"`
	WorkspaceID   string          `json:"workspaceID"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	SavingsRate   decimal.Decimal `json:"savingsRate"`
	Depreciation  decimal.Decimal `json:"depreciation"`
	PopGrowth     decimal.Decimal `json:"popGrowth"`
	TechGrowth    decimal.Decimal `json:"techGrowth"`
	CapitalShare  decimal.Decimal `json:"capitalShare"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ToScenarioResponse converts a domain.Scenario to ScenarioResponse DTO
func ToScenarioResponse(s *domain.Scenario) ScenarioResponse {
	return ScenarioResponse{
		ScenarioID:    s.ScenarioID,
		WorkspaceID:   s.WorkspaceID,
		Name:          s.Name,
		Description:   s.Description,
		SavingsRate:   s.SavingsRate,
		Depreciation:  s.Depreciation,
		PopGrowth:     s.PopGrowth,
		TechGrowth:    s.TechGrowth,
		CapitalShare:  s.CapitalShare,
		IsActive:      s.IsActive,
		CreatedAt:     s.CreatedAt,
		CreatedBy:     s.CreatedBy,
		LastUpdatedAt: s.LastUpdatedAt,
		LastUpdatedBy: s.LastUpdatedBy,
	}
}

// ListScenariosParams defines query parameters for listing scenarios.
type ListScenariosParams struct {
	Limit     int     `form:"limit,default=20" binding:"omitempty,gte=1,lte=100"`
	NextToken *string `form:"nextToken" binding:"omitempty"`
}

// ListScenariosResponse wraps the list of scenarios with pagination.
type ListScenariosResponse struct {
	Scenarios []ScenarioResponse `json:"scenarios"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ToListScenariosResponse converts a slice of domain.Scenario.
func ToListScenariosResponse(scenarios []domain.Scenario, nextToken *string) ListScenariosResponse {
	responses := make([]ScenarioResponse, len(scenarios))
	for i, s := range scenarios {
		responses[i] = ToScenarioResponse(&s)
	}
	return ListScenariosResponse{Scenarios: responses, NextToken: nextToken}
}
