package domain

import "math"

// Status is the lifecycle state of a campaign.
type Status string

const (
	StatusPendingAudit Status = "PENDING_AUDIT"
	StatusCertified    Status = "CERTIFIED"
	StatusRejected     Status = "REJECTED"
	StatusLive         Status = "LIVE"
)

// Valid reports whether s is a known status. The empty status is accepted
// and treated as PENDING_AUDIT.
func (s Status) Valid() bool {
	switch s {
	case "", StatusPendingAudit, StatusCertified, StatusRejected, StatusLive:
		return true
	}
	return false
}

// Campaign is a proposed configuration submitted for audit. Sections
// mirror the guardrail pillars.
type Campaign struct {
	Name         string               `json:"campaign_name"`
	Status       Status               `json:"status"`
	Audience     AudienceSettings     `json:"audience"`
	Optimization OptimizationSettings `json:"optimization"`
	Creative     CreativeSettings     `json:"creative"`
	Copy         CopySettings         `json:"copy"`
	Timeframe    TimeframeSettings    `json:"timeframe"`
	Budget       BudgetSettings       `json:"budget"`
}

type AudienceSettings struct {
	GeoTargeting   []string `json:"geo_targeting"`
	Demographic    []string `json:"demographic"`
	Contextual     string   `json:"contextual"`
	SelectedGenres []string `json:"selected_genres"`
	TargetAgeRange string   `json:"target_age_range"`
}

type OptimizationSettings struct {
	Placement    string `json:"placement"`
	FrequencyCap string `json:"frequency_cap"`
}

type CreativeSettings struct {
	Format             string `json:"format"`
	ComplianceStandard string `json:"compliance_standard"`
}

type CopySettings struct {
	AdCopyText string `json:"ad_copy_text"`
}

type TimeframeSettings struct {
	StartDate Date `json:"start_date"`
	EndDate   Date `json:"end_date"`
}

// BudgetSettings is the proposed spend. Total spend is DailyBudget times
// TotalDays.
type BudgetSettings struct {
	DailyBudget float64 `json:"daily_budget"`
	TotalDays   int     `json:"total_days"`
}

// Sections lists the names of the campaign sections accepted by partial
// updates, in presentation order.
var Sections = []string{"audience", "optimization", "creative", "copy", "timeframe", "budget"}

// Validate checks the campaign shape. The returned error is a
// *ValidationError naming the offending section.
func (c *Campaign) Validate() error {
	if c.Name == "" {
		return &ValidationError{Field: "campaign_name", Reason: "is required"}
	}
	if !c.Status.Valid() {
		return &ValidationError{Field: "status", Reason: "unknown status " + string(c.Status)}
	}
	if c.Budget.DailyBudget < 0 {
		return &ValidationError{Section: "budget", Field: "daily_budget", Reason: "must not be negative"}
	}
	if math.IsNaN(c.Budget.DailyBudget) || c.Budget.DailyBudget > MaxAmount {
		return &ValidationError{Section: "budget", Field: "daily_budget", Reason: "exceeds the largest supported amount"}
	}
	if c.Budget.TotalDays <= 0 {
		return &ValidationError{Section: "budget", Field: "total_days", Reason: "must be positive"}
	}
	if c.Timeframe.StartDate.IsZero() {
		return &ValidationError{Section: "timeframe", Field: "start_date", Reason: "is required"}
	}
	if !c.Timeframe.EndDate.IsZero() && c.Timeframe.EndDate.Before(c.Timeframe.StartDate) {
		return &ValidationError{Section: "timeframe", Field: "end_date", Reason: "must not be before start_date"}
	}
	return nil
}

// Clone returns a deep copy of the campaign.
func (c *Campaign) Clone() *Campaign {
	if c == nil {
		return nil
	}
	out := *c
	out.Audience.GeoTargeting = cloneStrings(c.Audience.GeoTargeting)
	out.Audience.Demographic = cloneStrings(c.Audience.Demographic)
	out.Audience.SelectedGenres = cloneStrings(c.Audience.SelectedGenres)
	return &out
}
