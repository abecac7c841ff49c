package port

import (
	"context"
	"encoding/json"

	"setsync/internal/core/domain"
)

// AuditUseCase is the primary port for auditing campaigns.
type AuditUseCase interface {
	// Audit evaluates campaign against the guardrails of contractID and
	// stores both the campaign and the report under the campaign name.
	Audit(ctx context.Context, contractID string, campaign domain.Campaign) (*domain.AuditReport, error)

	// Reaudit merges updates (section name to field overrides) into the
	// stored campaign, validates the result and audits it again. It returns
	// ErrCampaignNotFound when the campaign was never audited and a
	// *domain.ValidationError when the merged campaign is malformed.
	Reaudit(ctx context.Context, contractID, campaignName string, updates map[string]json.RawMessage) (*domain.AuditReport, error)
}

// PublishUseCase gates the transition of a campaign to LIVE.
type PublishUseCase interface {
	// Publish returns ErrCampaignNotAudited when no report exists and a
	// *RejectedError when the last report is not certified.
	Publish(ctx context.Context, campaignName string) (*PublishResult, error)
}

// PublishResult reports a successful publish. AlreadyLive is set when the
// campaign was LIVE before the call and nothing changed.
type PublishResult struct {
	CampaignName string        `json:"campaign_name"`
	Status       domain.Status `json:"status"`
	AlreadyLive  bool          `json:"already_live"`
}

// ViewUseCase exposes read-only projections over stored state.
type ViewUseCase interface {
	Contract(ctx context.Context, contractID string) (*domain.Contract, error)
	Campaign(ctx context.Context, campaignName string) (*domain.Campaign, error)
	FieldDiffs(ctx context.Context, campaignName string) ([]FieldDiff, error)
	Flags(ctx context.Context, campaignName string) ([]domain.AuditIssue, error)
	Score(ctx context.Context, campaignName string) (*ScoreView, error)
	Pillar(ctx context.Context, campaignName string, pillar domain.Pillar) (*domain.PillarStatus, error)
}

// FieldDiff pairs a proposed campaign value with the value the contract
// requires, together with the audit outcome for that field.
type FieldDiff struct {
	Pillar   domain.Pillar      `json:"pillar"`
	Field    string             `json:"field"`
	Proposed any                `json:"proposed"`
	Required any                `json:"required"`
	Status   domain.CheckStatus `json:"status"`
}

// ScoreView is the score summary of the last report.
type ScoreView struct {
	LogicScore    int                  `json:"logic_score"`
	OverallStatus domain.OverallStatus `json:"overall_status"`
	IsCertified   bool                 `json:"is_certified"`
}
