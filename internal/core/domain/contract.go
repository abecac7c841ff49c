package domain

// SchemaVersion identifies the current guardrail and report layout.
const SchemaVersion = "v1"

// Contract is a client agreement whose guardrails every campaign is
// audited against. Contracts are reference data and are never changed by
// an audit.
type Contract struct {
	ContractID string     `json:"contract_id"`
	ClientName string     `json:"client_name"`
	Guardrails Guardrails `json:"guardrails"`
}

// Guardrails groups the rules a contract imposes, one section per pillar.
// Empty fields place no constraint on the campaign.
type Guardrails struct {
	SchemaVersion string                `json:"schema_version"`
	Audience      AudienceGuardrail     `json:"audience"`
	Optimization  OptimizationGuardrail `json:"optimization"`
	Creative      CreativeGuardrail     `json:"creative"`
	Copy          CopyGuardrail         `json:"copy"`
	Timeframe     TimeframeGuardrail    `json:"timeframe"`
	Budget        BudgetGuardrail       `json:"budget"`
	Legal         LegalGuardrail        `json:"legal"`
}

type AudienceGuardrail struct {
	AllowedGeos         []string `json:"allowed_geos"`
	ExcludedGeos        []string `json:"excluded_geos"`
	Demographics        []string `json:"demographics"`
	Contextual          string   `json:"contextual"`
	MinAge              int      `json:"min_age"`
	ForbiddenCategories []string `json:"forbidden_categories"`
}

type OptimizationGuardrail struct {
	PlacementType string `json:"placement_type"`
	FrequencyCap  string `json:"frequency_cap"`
}

type CreativeGuardrail struct {
	Format             string `json:"format"`
	ComplianceStandard string `json:"compliance_standard"`
}

type CopyGuardrail struct {
	RequiredTone      string   `json:"required_tone"`
	ForbiddenKeywords []string `json:"forbidden_keywords"`
}

// TimeframeGuardrail is the contracted flight window.
type TimeframeGuardrail struct {
	StartDate Date `json:"start_date"`
	EndDate   Date `json:"end_date"`
}

// BudgetGuardrail caps total spend in currency units. Zero means no cap.
type BudgetGuardrail struct {
	TotalBudgetLimit float64 `json:"total_budget_limit"`
}

// LegalGuardrail carries free-text compliance clauses.
type LegalGuardrail struct {
	Terms []string `json:"terms"`
}

// Clone returns a deep copy of the contract.
func (c *Contract) Clone() *Contract {
	if c == nil {
		return nil
	}
	out := *c
	g := &out.Guardrails
	g.Audience.AllowedGeos = cloneStrings(c.Guardrails.Audience.AllowedGeos)
	g.Audience.ExcludedGeos = cloneStrings(c.Guardrails.Audience.ExcludedGeos)
	g.Audience.Demographics = cloneStrings(c.Guardrails.Audience.Demographics)
	g.Audience.ForbiddenCategories = cloneStrings(c.Guardrails.Audience.ForbiddenCategories)
	g.Copy.ForbiddenKeywords = cloneStrings(c.Guardrails.Copy.ForbiddenKeywords)
	g.Legal.Terms = cloneStrings(c.Guardrails.Legal.Terms)
	return &out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
