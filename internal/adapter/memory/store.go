package memory

import (
	"context"
	"sync"

	"setsync/internal/core/domain"
	"setsync/internal/core/port"
)

type entry struct {
	campaign *domain.Campaign
	report   *domain.AuditReport
}

// Store implements port.ContractRepository and port.CampaignStore in
// process memory. Values are copied on the way in and out so callers never
// share state with the store.
type Store struct {
	mu        sync.RWMutex
	contracts map[string]*domain.Contract
	campaigns map[string]entry
}

// NewStore returns a store preloaded with contracts.
func NewStore(contracts ...*domain.Contract) *Store {
	s := &Store{
		contracts: make(map[string]*domain.Contract, len(contracts)),
		campaigns: make(map[string]entry),
	}
	for _, c := range contracts {
		s.contracts[c.ContractID] = c.Clone()
	}
	return s
}

// GetContract returns a copy of the contract, or port.ErrContractNotFound.
func (s *Store) GetContract(_ context.Context, contractID string) (*domain.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.contracts[contractID]
	if !ok {
		return nil, port.ErrContractNotFound
	}
	return c.Clone(), nil
}

// GetCampaign returns a copy of the last stored campaign, or
// port.ErrCampaignNotFound.
func (s *Store) GetCampaign(_ context.Context, name string) (*domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.campaigns[name]
	if !ok {
		return nil, port.ErrCampaignNotFound
	}
	return e.campaign.Clone(), nil
}

// GetReport returns a copy of the last report, or
// port.ErrCampaignNotAudited when none was saved.
func (s *Store) GetReport(_ context.Context, name string) (*domain.AuditReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.campaigns[name]
	if !ok || e.report == nil {
		return nil, port.ErrCampaignNotAudited
	}
	return e.report.Clone(), nil
}

// SaveAudit replaces the campaign and report under campaign.Name in one
// critical section.
func (s *Store) SaveAudit(_ context.Context, campaign *domain.Campaign, report *domain.AuditReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.campaigns[campaign.Name] = entry{campaign: campaign.Clone(), report: report.Clone()}
	return nil
}

// UpdateStatus sets the status of a stored campaign. The report is left
// untouched.
func (s *Store) UpdateStatus(_ context.Context, name string, status domain.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.campaigns[name]
	if !ok {
		return port.ErrCampaignNotFound
	}
	c := e.campaign.Clone()
	c.Status = status
	e.campaign = c
	s.campaigns[name] = e
	return nil
}
