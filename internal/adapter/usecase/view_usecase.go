package usecase

import (
	"context"
	"fmt"

	"setsync/internal/core/domain"
	"setsync/internal/core/port"
)

// ViewUseCase serves read-only projections of contracts, campaigns and
// reports. It implements port.ViewUseCase.
type ViewUseCase struct {
	contracts port.ContractRepository
	store     port.CampaignStore
}

// NewViewUseCase returns projections over contracts and the campaign
// store.
func NewViewUseCase(contracts port.ContractRepository, store port.CampaignStore) *ViewUseCase {
	return &ViewUseCase{contracts: contracts, store: store}
}

// Contract returns the contract with its guardrails, or
// port.ErrContractNotFound.
func (u *ViewUseCase) Contract(ctx context.Context, contractID string) (*domain.Contract, error) {
	return u.contracts.GetContract(ctx, contractID)
}

// Campaign returns the last stored campaign including its status.
func (u *ViewUseCase) Campaign(ctx context.Context, campaignName string) (*domain.Campaign, error) {
	return u.store.GetCampaign(ctx, campaignName)
}

// FieldDiffs lines up every audited campaign field with the contract value
// it was checked against, using the contract of the last report.
func (u *ViewUseCase) FieldDiffs(ctx context.Context, campaignName string) ([]port.FieldDiff, error) {
	report, err := u.store.GetReport(ctx, campaignName)
	if err != nil {
		return nil, err
	}
	campaign, err := u.store.GetCampaign(ctx, campaignName)
	if err != nil {
		return nil, err
	}
	contract, err := u.contracts.GetContract(ctx, report.ContractID)
	if err != nil {
		return nil, fmt.Errorf("contract of last report: %w", err)
	}

	g, c := contract.Guardrails, campaign
	totalSpend, _ := domain.SpendCents(c.Budget.DailyBudget, c.Budget.TotalDays)
	diffs := []port.FieldDiff{
		{Pillar: domain.PillarAudience, Field: "geo_targeting", Proposed: c.Audience.GeoTargeting, Required: g.Audience.AllowedGeos},
		{Pillar: domain.PillarAudience, Field: "demographic", Proposed: c.Audience.Demographic, Required: g.Audience.Demographics},
		{Pillar: domain.PillarAudience, Field: "target_age_range", Proposed: c.Audience.TargetAgeRange, Required: g.Audience.MinAge},
		{Pillar: domain.PillarAudience, Field: "contextual", Proposed: c.Audience.Contextual, Required: g.Audience.Contextual},
		{Pillar: domain.PillarAudience, Field: "selected_genres", Proposed: c.Audience.SelectedGenres, Required: g.Audience.ForbiddenCategories},
		{Pillar: domain.PillarOptimization, Field: "placement", Proposed: c.Optimization.Placement, Required: g.Optimization.PlacementType},
		{Pillar: domain.PillarOptimization, Field: "frequency_cap", Proposed: c.Optimization.FrequencyCap, Required: g.Optimization.FrequencyCap},
		{Pillar: domain.PillarCreative, Field: "format", Proposed: c.Creative.Format, Required: g.Creative.Format},
		{Pillar: domain.PillarCreative, Field: "compliance_standard", Proposed: c.Creative.ComplianceStandard, Required: g.Creative.ComplianceStandard},
		{Pillar: domain.PillarCopy, Field: "ad_copy_text", Proposed: c.Copy.AdCopyText, Required: g.Copy.ForbiddenKeywords},
		{Pillar: domain.PillarCopy, Field: "tone", Proposed: c.Copy.AdCopyText, Required: g.Copy.RequiredTone},
		{Pillar: domain.PillarTimeframe, Field: "start_date", Proposed: c.Timeframe.StartDate, Required: g.Timeframe.StartDate},
		{Pillar: domain.PillarTimeframe, Field: "end_date", Proposed: c.Timeframe.EndDate, Required: g.Timeframe.EndDate},
		{Pillar: domain.PillarBudget, Field: "total_spend", Proposed: domain.FormatCents(totalSpend), Required: domain.FormatCents(domain.Cents(g.Budget.TotalBudgetLimit))},
		{Pillar: domain.PillarLegal, Field: "terms", Proposed: nil, Required: g.Legal.Terms},
	}

	out := diffs[:0]
	for _, d := range diffs {
		st, ok := fieldStatus(report, d.Pillar, d.Field)
		if !ok {
			continue
		}
		d.Status = st
		out = append(out, d)
	}
	return out, nil
}

// fieldStatus returns the worst status recorded for a field, and false
// when the field was not checked.
func fieldStatus(r *domain.AuditReport, p domain.Pillar, field string) (domain.CheckStatus, bool) {
	var (
		st    domain.CheckStatus
		found bool
	)
	for _, is := range r.Issues {
		if is.Pillar != p || is.Field != field {
			continue
		}
		found = true
		switch {
		case is.Status == domain.CheckFail:
			st = domain.CheckFail
		case is.Status == domain.CheckWarn && st != domain.CheckFail:
			st = domain.CheckWarn
		case st == "":
			st = domain.CheckPass
		}
	}
	return st, found
}

// Flags returns the FAIL and WARN issues of the last report in report
// order.
func (u *ViewUseCase) Flags(ctx context.Context, campaignName string) ([]domain.AuditIssue, error) {
	report, err := u.store.GetReport(ctx, campaignName)
	if err != nil {
		return nil, err
	}
	return report.Flags(), nil
}

// Score summarises the last report. It returns port.ErrCampaignNotAudited
// when the campaign has no report.
func (u *ViewUseCase) Score(ctx context.Context, campaignName string) (*port.ScoreView, error) {
	report, err := u.store.GetReport(ctx, campaignName)
	if err != nil {
		return nil, err
	}
	return &port.ScoreView{
		LogicScore:    report.LogicScore,
		OverallStatus: report.OverallStatus,
		IsCertified:   report.IsCertified,
	}, nil
}

// Pillar returns one pillar snapshot of the last report. A pillar missing
// from the report yields port.ErrPillarNotFound.
func (u *ViewUseCase) Pillar(ctx context.Context, campaignName string, pillar domain.Pillar) (*domain.PillarStatus, error) {
	report, err := u.store.GetReport(ctx, campaignName)
	if err != nil {
		return nil, err
	}
	ps, ok := report.Pillars[pillar]
	if !ok {
		return nil, fmt.Errorf("pillar %q: %w", pillar, port.ErrPillarNotFound)
	}
	return &ps, nil
}
