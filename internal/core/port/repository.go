package port

import (
	"context"

	"setsync/internal/core/domain"
)

// ContractRepository provides read-only access to contracts. It is an
// outbound port. GetContract returns ErrContractNotFound for unknown ids.
type ContractRepository interface {
	GetContract(ctx context.Context, contractID string) (*domain.Contract, error)
}

// CampaignStore keeps the latest campaign and audit report per campaign
// name. Implementations must be concurrency-safe. Writes overwrite; the
// last completed write wins.
type CampaignStore interface {
	// GetCampaign returns ErrCampaignNotFound when no campaign was stored
	// under name.
	GetCampaign(ctx context.Context, name string) (*domain.Campaign, error)
	// GetReport returns ErrCampaignNotAudited when no report was stored
	// under name.
	GetReport(ctx context.Context, name string) (*domain.AuditReport, error)
	// SaveAudit atomically replaces the campaign and report stored under
	// campaign.Name.
	SaveAudit(ctx context.Context, campaign *domain.Campaign, report *domain.AuditReport) error
	// UpdateStatus sets the status of a stored campaign without touching
	// its report.
	UpdateStatus(ctx context.Context, name string, status domain.Status) error
}
