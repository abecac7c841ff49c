package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"setsync/internal/core/domain"
	"setsync/internal/core/port"
)

// AuditUseCase audits campaigns against contract guardrails. It implements
// port.AuditUseCase.
type AuditUseCase struct {
	contracts port.ContractRepository
	store     port.CampaignStore
	checker   port.SemanticChecker
	policy    Policy
	logger    *slog.Logger

	now   func() time.Time
	newID func() string
}

// NewAuditUseCase wires the audit engine to its collaborators.
func NewAuditUseCase(contracts port.ContractRepository, store port.CampaignStore, checker port.SemanticChecker, policy Policy, logger *slog.Logger) *AuditUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditUseCase{
		contracts: contracts,
		store:     store,
		checker:   checker,
		policy:    policy,
		logger:    logger,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Audit validates campaign, evaluates it against the guardrails of
// contractID and stores the campaign with its report.
func (u *AuditUseCase) Audit(ctx context.Context, contractID string, campaign domain.Campaign) (*domain.AuditReport, error) {
	if err := campaign.Validate(); err != nil {
		return nil, err
	}
	contract, err := u.contracts.GetContract(ctx, contractID)
	if err != nil {
		return nil, err
	}
	return u.run(ctx, contract, &campaign)
}

// Reaudit merges updates into the stored campaign and audits the result.
func (u *AuditUseCase) Reaudit(ctx context.Context, contractID, campaignName string, updates map[string]json.RawMessage) (*domain.AuditReport, error) {
	contract, err := u.contracts.GetContract(ctx, contractID)
	if err != nil {
		return nil, err
	}
	stored, err := u.store.GetCampaign(ctx, campaignName)
	if err != nil {
		return nil, err
	}
	merged, err := mergeUpdates(stored, updates)
	if err != nil {
		return nil, err
	}
	return u.run(ctx, contract, merged)
}

func (u *AuditUseCase) run(ctx context.Context, contract *domain.Contract, campaign *domain.Campaign) (*domain.AuditReport, error) {
	issues := u.evaluate(ctx, contract.Guardrails, campaign)
	report := domain.NewAuditReport(u.newID(), contract.ContractID, campaign.Name, u.now().UTC(), issues)

	stored := campaign.Clone()
	if report.IsCertified {
		stored.Status = domain.StatusCertified
	} else {
		stored.Status = domain.StatusRejected
	}
	if err := u.store.SaveAudit(ctx, stored, report); err != nil {
		return nil, fmt.Errorf("save audit: %w", err)
	}

	u.logger.Info("campaign audited",
		slog.String("contract_id", contract.ContractID),
		slog.String("campaign", campaign.Name),
		slog.String("status", string(report.OverallStatus)),
		slog.Int("score", report.LogicScore),
	)
	return report, nil
}

// evaluate runs every pillar rule. The two semantic checks run
// concurrently; both absorb their own failures.
func (u *AuditUseCase) evaluate(ctx context.Context, g domain.Guardrails, c *domain.Campaign) []domain.AuditIssue {
	keywords := domain.ScanKeywords(c.Copy.AdCopyText, g.Copy.ForbiddenKeywords)

	var (
		genres port.CategoryResult
		tone   port.ToneVerdict
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		genres = u.checker.CategoryConflicts(egCtx, c.Audience.SelectedGenres, g.Audience.ForbiddenCategories)
		return nil
	})
	if g.Copy.RequiredTone != "" && c.Copy.AdCopyText != "" {
		eg.Go(func() error {
			tone = u.checker.ToneConflict(egCtx, c.Copy.AdCopyText, g.Copy.RequiredTone)
			return nil
		})
	}
	_ = eg.Wait()

	var issues []domain.AuditIssue
	issues = append(issues, budgetIssues(g.Budget, c.Budget)...)
	issues = append(issues, timeframeIssues(u.policy.Timeframe, g.Timeframe, c)...)
	issues = append(issues, geoIssues(g.Audience, c.Audience)...)
	issues = append(issues, demographicIssues(g.Audience, c.Audience)...)
	issues = append(issues, ageIssues(g.Audience, c.Audience)...)
	issues = append(issues, contextualIssues(g.Audience, c.Audience)...)
	issues = append(issues, genreIssues(genres)...)
	issues = append(issues, optimizationIssues(g.Optimization, c.Optimization)...)
	issues = append(issues, creativeIssues(g.Creative, c.Creative)...)
	issues = append(issues, copyIssues(u.policy.ToneUnavailable, g.Copy, keywords, tone)...)
	issues = append(issues, legalIssues(g.Legal)...)
	return issues
}
