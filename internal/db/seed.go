package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"setsync/internal/core/domain"
)

// DefaultContracts returns the demo contracts served out of the box.
func DefaultContracts() []*domain.Contract {
	return []*domain.Contract{
		{
			ContractID: "CNT-9988-LVMH",
			ClientName: "Luxury Brand X",
			Guardrails: domain.Guardrails{
				SchemaVersion: domain.SchemaVersion,
				Audience: domain.AudienceGuardrail{
					ExcludedGeos:        []string{"Russia", "North Korea"},
					MinAge:              25,
					ForbiddenCategories: []string{"Horror", "Zombies", "Extreme Violence"},
				},
				Optimization: domain.OptimizationGuardrail{PlacementType: "Mid-Roll Only"},
				Copy: domain.CopyGuardrail{
					RequiredTone:      "Premium and sophisticated",
					ForbiddenKeywords: []string{"Cheap", "Discount"},
				},
				Timeframe: domain.TimeframeGuardrail{
					StartDate: domain.NewDate(2026, 3, 1),
					EndDate:   domain.NewDate(2026, 3, 31),
				},
				Budget: domain.BudgetGuardrail{TotalBudgetLimit: 100000},
			},
		},
		{
			ContractID: "CNT-NIKE-VALENTINE",
			ClientName: "Nike",
			Guardrails: domain.Guardrails{
				SchemaVersion: domain.SchemaVersion,
				Audience: domain.AudienceGuardrail{
					AllowedGeos:         []string{"USA"},
					Demographics:        []string{"Male", "Female"},
					Contextual:          "Valentine gifting season",
					ForbiddenCategories: []string{"Defamatory", "Obscene", "Illegal Content"},
				},
				Optimization: domain.OptimizationGuardrail{
					PlacementType: "Premium/Direct/Programmatic PMP",
					FrequencyCap:  "5 views per user",
				},
				Creative: domain.CreativeGuardrail{Format: "1080p", ComplianceStandard: "IAB Standard"},
				Copy:     domain.CopyGuardrail{ForbiddenKeywords: []string{"Cheap", "Discount"}},
				Timeframe: domain.TimeframeGuardrail{
					StartDate: domain.NewDate(2026, 2, 9),
					EndDate:   domain.NewDate(2026, 2, 14),
				},
				Budget: domain.BudgetGuardrail{TotalBudgetLimit: 2000000},
			},
		},
	}
}

// Seed inserts contracts that are not yet present. Existing rows are left
// untouched.
func Seed(ctx context.Context, db *pgxpool.Pool, contracts []*domain.Contract) error {
	for _, c := range contracts {
		guardrails, err := json.Marshal(c.Guardrails)
		if err != nil {
			return fmt.Errorf("encode guardrails %s: %w", c.ContractID, err)
		}
		_, err = db.Exec(ctx, `INSERT INTO contracts (contract_id, client_name, guardrails)
VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`, c.ContractID, c.ClientName, guardrails)
		if err != nil {
			return fmt.Errorf("seed contract %s: %w", c.ContractID, err)
		}
	}
	return nil
}
