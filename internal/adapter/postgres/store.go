package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"setsync/internal/core/domain"
	"setsync/internal/core/port"
)

// Store implements port.ContractRepository and port.CampaignStore on top of
// PostgreSQL. Campaigns and reports are stored as jsonb documents keyed by
// campaign name.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore returns a store backed by pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// GetContract returns the contract with the given id.
func (s *Store) GetContract(ctx context.Context, contractID string) (*domain.Contract, error) {
	var (
		c   domain.Contract
		raw []byte
	)
	err := s.pool.QueryRow(ctx, `SELECT contract_id, client_name, guardrails FROM contracts WHERE contract_id = $1`, contractID).
		Scan(&c.ContractID, &c.ClientName, &raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrContractNotFound
	}
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(raw, &c.Guardrails); err != nil {
		return nil, fmt.Errorf("decode guardrails %s: %w", contractID, err)
	}
	return &c, nil
}

// GetCampaign returns the last stored campaign. The status column is
// authoritative over the status inside the document.
func (s *Store) GetCampaign(ctx context.Context, name string) (*domain.Campaign, error) {
	var (
		status string
		raw    []byte
	)
	err := s.pool.QueryRow(ctx, `SELECT status, body FROM campaigns WHERE name = $1`, name).Scan(&status, &raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	var c domain.Campaign
	if err = json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode campaign %s: %w", name, err)
	}
	c.Status = domain.Status(status)
	return &c, nil
}

// GetReport returns the last audit report stored for the campaign.
func (s *Store) GetReport(ctx context.Context, name string) (*domain.AuditReport, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx, `SELECT body FROM audit_reports WHERE campaign_name = $1`, name).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrCampaignNotAudited
	}
	if err != nil {
		return nil, err
	}
	var r domain.AuditReport
	if err = json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("decode report %s: %w", name, err)
	}
	return &r, nil
}

// SaveAudit upserts the campaign and its report in one transaction.
func (s *Store) SaveAudit(ctx context.Context, campaign *domain.Campaign, report *domain.AuditReport) (err error) {
	campaignBody, err := json.Marshal(campaign)
	if err != nil {
		return fmt.Errorf("encode campaign: %w", err)
	}
	reportBody, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	auditID, err := uuid.Parse(report.AuditID)
	if err != nil {
		return fmt.Errorf("audit id: %w", err)
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	_, err = tx.Exec(ctx, `INSERT INTO campaigns (name, status, body, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (name) DO UPDATE SET status = EXCLUDED.status, body = EXCLUDED.body, updated_at = now()`,
		campaign.Name, string(campaign.Status), campaignBody)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `INSERT INTO audit_reports (campaign_name, audit_id, contract_id, is_certified, body, audited_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (campaign_name) DO UPDATE SET audit_id = EXCLUDED.audit_id, contract_id = EXCLUDED.contract_id,
    is_certified = EXCLUDED.is_certified, body = EXCLUDED.body, audited_at = EXCLUDED.audited_at`,
		campaign.Name, auditID, report.ContractID, report.IsCertified, reportBody, report.AuditedAt)
	return err
}

// UpdateStatus sets the campaign status in both the column and the stored
// document.
func (s *Store) UpdateStatus(ctx context.Context, name string, status domain.Status) error {
	tag, err := s.pool.Exec(ctx, `UPDATE campaigns
SET status = $2, body = jsonb_set(body, '{status}', to_jsonb($2::text)), updated_at = now()
WHERE name = $1`, name, string(status))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrCampaignNotFound
	}
	return nil
}
