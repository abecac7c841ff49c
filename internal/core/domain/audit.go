package domain

import (
	"time"
)

// Pillar names an independently auditable guardrail category.
type Pillar string

const (
	PillarAudience     Pillar = "audience"
	PillarOptimization Pillar = "optimization"
	PillarCreative     Pillar = "creative"
	PillarCopy         Pillar = "copy"
	PillarTimeframe    Pillar = "timeframe"
	PillarBudget       Pillar = "budget"
	PillarLegal        Pillar = "legal"
)

// Pillars lists every pillar in presentation order.
var Pillars = []Pillar{
	PillarAudience,
	PillarOptimization,
	PillarCreative,
	PillarCopy,
	PillarTimeframe,
	PillarBudget,
	PillarLegal,
}

// ParsePillar returns the pillar with the given name.
func ParsePillar(s string) (Pillar, bool) {
	for _, p := range Pillars {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// CheckStatus is the outcome of a single check.
type CheckStatus string

const (
	CheckPass CheckStatus = "PASS"
	CheckWarn CheckStatus = "WARN"
	CheckFail CheckStatus = "FAIL"
)

type Severity string

const (
	SeverityHigh   Severity = "HIGH"
	SeverityMedium Severity = "MEDIUM"
	SeverityLow    Severity = "LOW"
)

// OverallStatus is the certification verdict of a report.
type OverallStatus string

const (
	OverallCertified OverallStatus = "CERTIFIED"
	OverallRejected  OverallStatus = "REJECTED"
)

// AuditIssue is the result of one check against one campaign field.
type AuditIssue struct {
	Pillar       Pillar      `json:"pillar"`
	Field        string      `json:"field"`
	Status       CheckStatus `json:"status"`
	Message      string      `json:"message"`
	SuggestedFix string      `json:"suggested_fix,omitempty"`
	Severity     Severity    `json:"severity"`
}

// PillarStatus summarises the issues of one pillar.
type PillarStatus struct {
	Status  CheckStatus  `json:"status"`
	Message string       `json:"message"`
	Issues  []AuditIssue `json:"issues"`
}

// AuditReport is the outcome of auditing a campaign against a contract.
// Score, status, certification and pillars are derived from Issues by
// NewAuditReport and are never set independently.
type AuditReport struct {
	SchemaVersion string                  `json:"schema_version"`
	AuditID       string                  `json:"audit_id"`
	ContractID    string                  `json:"contract_id"`
	CampaignName  string                  `json:"campaign_name"`
	AuditedAt     time.Time               `json:"audited_at"`
	LogicScore    int                     `json:"logic_score"`
	OverallStatus OverallStatus           `json:"overall_status"`
	IsCertified   bool                    `json:"is_certified"`
	Issues        []AuditIssue            `json:"issues"`
	Pillars       map[Pillar]PillarStatus `json:"pillars"`
}

// failPenalty is the score deducted per failing issue.
const failPenalty = 25

// NewAuditReport derives a report from the issues produced by one audit
// run.
func NewAuditReport(auditID, contractID, campaignName string, at time.Time, issues []AuditIssue) *AuditReport {
	fails := 0
	for _, is := range issues {
		if is.Status == CheckFail {
			fails++
		}
	}
	r := &AuditReport{
		SchemaVersion: SchemaVersion,
		AuditID:       auditID,
		ContractID:    contractID,
		CampaignName:  campaignName,
		AuditedAt:     at,
		LogicScore:    max(0, 100-failPenalty*fails),
		IsCertified:   fails == 0,
		Issues:        issues,
		Pillars:       groupPillars(issues),
	}
	if r.IsCertified {
		r.OverallStatus = OverallCertified
	} else {
		r.OverallStatus = OverallRejected
	}
	return r
}

func groupPillars(issues []AuditIssue) map[Pillar]PillarStatus {
	out := make(map[Pillar]PillarStatus, len(Pillars))
	for _, p := range Pillars {
		ps := PillarStatus{Status: CheckPass, Issues: []AuditIssue{}}
		var firstFail, firstWarn string
		for _, is := range issues {
			if is.Pillar != p {
				continue
			}
			ps.Issues = append(ps.Issues, is)
			switch is.Status {
			case CheckFail:
				ps.Status = CheckFail
				if firstFail == "" {
					firstFail = is.Message
				}
			case CheckWarn:
				if ps.Status == CheckPass {
					ps.Status = CheckWarn
				}
				if firstWarn == "" {
					firstWarn = is.Message
				}
			}
		}
		switch ps.Status {
		case CheckFail:
			ps.Message = firstFail
		case CheckWarn:
			ps.Message = firstWarn
		default:
			ps.Message = "Compliant."
		}
		out[p] = ps
	}
	return out
}

// Violations returns the messages of every failing issue in order.
func (r *AuditReport) Violations() []string {
	out := []string{}
	for _, is := range r.Issues {
		if is.Status == CheckFail {
			out = append(out, is.Message)
		}
	}
	return out
}

// Flags returns the failing and warning issues.
func (r *AuditReport) Flags() []AuditIssue {
	out := []AuditIssue{}
	for _, is := range r.Issues {
		if is.Status != CheckPass {
			out = append(out, is)
		}
	}
	return out
}

// Clone returns a deep copy of the report.
func (r *AuditReport) Clone() *AuditReport {
	if r == nil {
		return nil
	}
	out := *r
	out.Issues = append([]AuditIssue(nil), r.Issues...)
	out.Pillars = make(map[Pillar]PillarStatus, len(r.Pillars))
	for k, v := range r.Pillars {
		v.Issues = append([]AuditIssue{}, v.Issues...)
		out.Pillars[k] = v
	}
	return &out
}
