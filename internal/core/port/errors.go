package port

import (
	"errors"
	"strings"
)

// Sentinel errors used across ports.
var (
	ErrContractNotFound    = errors.New("contract not found")
	ErrCampaignNotFound    = errors.New("campaign not found")
	ErrCampaignNotAudited  = errors.New("campaign must be audited before publishing")
	ErrComplianceRejected  = errors.New("compliance check failed")
	ErrSemanticUnavailable = errors.New("semantic check unavailable")
	ErrPillarNotFound      = errors.New("pillar not found")
)

// RejectedError blocks a publish. Violations are the failing issue messages
// of the last report, in report order.
type RejectedError struct {
	CampaignName string
	Violations   []string
}

func (e *RejectedError) Error() string {
	return "campaign " + e.CampaignName + " rejected: " + strings.Join(e.Violations, "; ")
}

func (e *RejectedError) Unwrap() error {
	return ErrComplianceRejected
}
