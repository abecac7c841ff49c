package usecase

import (
	"io"
	"log/slog"
	"time"

	"setsync/internal/core/domain"
)

var fixedNow = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testContract() *domain.Contract {
	return &domain.Contract{
		ContractID: "CNT-TEST",
		ClientName: "Luxury Brand X",
		Guardrails: domain.Guardrails{
			SchemaVersion: domain.SchemaVersion,
			Audience: domain.AudienceGuardrail{
				AllowedGeos:         []string{"USA"},
				ExcludedGeos:        []string{"Russia"},
				Demographics:        []string{"Male", "Female"},
				MinAge:              25,
				ForbiddenCategories: []string{"Horror", "Zombies"},
			},
			Optimization: domain.OptimizationGuardrail{PlacementType: "Mid-Roll Only"},
			Creative:     domain.CreativeGuardrail{Format: "1080p"},
			Copy:         domain.CopyGuardrail{RequiredTone: "Premium", ForbiddenKeywords: []string{"Cheap", "Discount"}},
			Timeframe:    domain.TimeframeGuardrail{StartDate: domain.NewDate(2026, 3, 1), EndDate: domain.NewDate(2026, 3, 31)},
			Budget:       domain.BudgetGuardrail{TotalBudgetLimit: 100000},
			Legal:        domain.LegalGuardrail{Terms: []string{"No comparative claims."}},
		},
	}
}

// compliantCampaign passes every rule of testContract.
func compliantCampaign() domain.Campaign {
	return domain.Campaign{
		Name:   "Spring_Launch",
		Status: domain.StatusPendingAudit,
		Audience: domain.AudienceSettings{
			GeoTargeting:   []string{"USA"},
			Demographic:    []string{"Female"},
			SelectedGenres: []string{"Drama"},
			TargetAgeRange: "25-54",
		},
		Optimization: domain.OptimizationSettings{Placement: "Mid-Roll Only"},
		Creative:     domain.CreativeSettings{Format: "1080p"},
		Copy:         domain.CopySettings{AdCopyText: "Timeless craft for the season."},
		Timeframe:    domain.TimeframeSettings{StartDate: domain.NewDate(2026, 3, 1), EndDate: domain.NewDate(2026, 3, 20)},
		Budget:       domain.BudgetSettings{DailyBudget: 3000, TotalDays: 20},
	}
}

func issuesFor(r *domain.AuditReport, field string) []domain.AuditIssue {
	var out []domain.AuditIssue
	for _, is := range r.Issues {
		if is.Field == field {
			out = append(out, is)
		}
	}
	return out
}
