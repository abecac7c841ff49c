package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"setsync/internal/core/domain"
	"setsync/internal/core/port"
)

// PublishUseCase moves certified campaigns to LIVE. It implements
// port.PublishUseCase.
type PublishUseCase struct {
	store  port.CampaignStore
	logger *slog.Logger
}

// NewPublishUseCase returns a publish gate over store. A nil logger uses
// slog.Default.
func NewPublishUseCase(store port.CampaignStore, logger *slog.Logger) *PublishUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &PublishUseCase{store: store, logger: logger}
}

// Publish reads the last report for campaignName and sets the campaign
// LIVE only when that report is certified. The report is never modified.
func (u *PublishUseCase) Publish(ctx context.Context, campaignName string) (*port.PublishResult, error) {
	report, err := u.store.GetReport(ctx, campaignName)
	if err != nil {
		return nil, err
	}
	if !report.IsCertified {
		return nil, &port.RejectedError{CampaignName: campaignName, Violations: report.Violations()}
	}

	campaign, err := u.store.GetCampaign(ctx, campaignName)
	if err != nil {
		return nil, err
	}
	if campaign.Status == domain.StatusLive {
		return &port.PublishResult{CampaignName: campaignName, Status: domain.StatusLive, AlreadyLive: true}, nil
	}
	if err = u.store.UpdateStatus(ctx, campaignName, domain.StatusLive); err != nil {
		return nil, fmt.Errorf("set campaign live: %w", err)
	}

	u.logger.Info("campaign published", slog.String("campaign", campaignName), slog.String("audit_id", report.AuditID))
	return &port.PublishResult{CampaignName: campaignName, Status: domain.StatusLive}, nil
}
