package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"setsync/internal/core/domain"
	"setsync/internal/core/port"
)

func pass(p domain.Pillar, field, msg string) domain.AuditIssue {
	return domain.AuditIssue{Pillar: p, Field: field, Status: domain.CheckPass, Message: msg, Severity: domain.SeverityLow}
}

func fail(p domain.Pillar, field string, sev domain.Severity, msg, fix string) domain.AuditIssue {
	return domain.AuditIssue{Pillar: p, Field: field, Status: domain.CheckFail, Message: msg, SuggestedFix: fix, Severity: sev}
}

func warn(p domain.Pillar, field, msg string) domain.AuditIssue {
	return domain.AuditIssue{Pillar: p, Field: field, Status: domain.CheckWarn, Message: msg, Severity: domain.SeverityLow}
}

// budgetIssues compares daily budget times days against the contract
// ceiling in integer cents. A total too large to represent exceeds any
// ceiling.
func budgetIssues(g domain.BudgetGuardrail, b domain.BudgetSettings) []domain.AuditIssue {
	total, ok := domain.SpendCents(b.DailyBudget, b.TotalDays)
	limit := domain.Cents(g.TotalBudgetLimit)
	if limit <= 0 {
		msg := fmt.Sprintf("No budget ceiling in contract; total budget %s.", domain.FormatCents(total))
		if !ok {
			msg = "No budget ceiling in contract."
		}
		return []domain.AuditIssue{pass(domain.PillarBudget, "total_spend", msg)}
	}
	if !ok {
		return []domain.AuditIssue{fail(domain.PillarBudget, "total_spend", domain.SeverityHigh,
			fmt.Sprintf("Total budget of %s per day for %d days exceeds contract limit of %s.",
				domain.FormatCents(domain.Cents(b.DailyBudget)), b.TotalDays, domain.FormatCents(limit)),
			"Reduce daily budget or total flight days.")}
	}
	if total > limit {
		return []domain.AuditIssue{fail(domain.PillarBudget, "total_spend", domain.SeverityHigh,
			fmt.Sprintf("Total budget %s exceeds contract limit of %s.", domain.FormatCents(total), domain.FormatCents(limit)),
			"Reduce daily budget or total flight days.")}
	}
	return []domain.AuditIssue{pass(domain.PillarBudget, "total_spend",
		fmt.Sprintf("Total budget %s is within the contract limit of %s.", domain.FormatCents(total), domain.FormatCents(limit)))}
}

// timeframeIssues checks the flight start and, under TimeframeStartAndEnd,
// the flight end. A campaign without an end date runs TotalDays days from
// its start.
func timeframeIssues(policy TimeframePolicy, g domain.TimeframeGuardrail, c *domain.Campaign) []domain.AuditIssue {
	var out []domain.AuditIssue
	start := c.Timeframe.StartDate
	switch {
	case g.StartDate.IsZero():
		out = append(out, pass(domain.PillarTimeframe, "start_date", "No contract start date."))
	case start.Before(g.StartDate):
		out = append(out, fail(domain.PillarTimeframe, "start_date", domain.SeverityMedium,
			fmt.Sprintf("Start date %s is before contract start %s.", start, g.StartDate),
			fmt.Sprintf("Adjust start date to %s or later.", g.StartDate)))
	default:
		out = append(out, pass(domain.PillarTimeframe, "start_date",
			fmt.Sprintf("Start date %s is within the contract flight.", start)))
	}

	if policy != TimeframeStartAndEnd || g.EndDate.IsZero() {
		return out
	}
	end := c.Timeframe.EndDate
	if end.IsZero() && c.Budget.TotalDays > 0 {
		end = domain.Date{Time: start.AddDate(0, 0, c.Budget.TotalDays-1)}
	}
	if end.After(g.EndDate) {
		out = append(out, fail(domain.PillarTimeframe, "end_date", domain.SeverityMedium,
			fmt.Sprintf("End date %s is after contract end %s.", end, g.EndDate),
			fmt.Sprintf("Adjust end date to %s or earlier.", g.EndDate)))
	} else {
		out = append(out, pass(domain.PillarTimeframe, "end_date",
			fmt.Sprintf("End date %s is within the contract flight.", end)))
	}
	return out
}

func geoIssues(g domain.AudienceGuardrail, a domain.AudienceSettings) []domain.AuditIssue {
	var out []domain.AuditIssue
	if len(g.AllowedGeos) > 0 {
		for _, geo := range domain.Outside(a.GeoTargeting, g.AllowedGeos) {
			out = append(out, fail(domain.PillarAudience, "geo_targeting", domain.SeverityHigh,
				fmt.Sprintf("Geo '%s' is outside the contract's allowed geographies (%s).", geo, strings.Join(g.AllowedGeos, ", ")),
				fmt.Sprintf("Remove '%s' from geo targeting.", geo)))
		}
	}
	for _, geo := range domain.ExactMatches(a.GeoTargeting, g.ExcludedGeos) {
		out = append(out, fail(domain.PillarAudience, "geo_targeting", domain.SeverityHigh,
			fmt.Sprintf("Geo '%s' is excluded by the contract.", geo),
			fmt.Sprintf("Remove '%s' from geo targeting.", geo)))
	}
	if len(out) == 0 {
		out = append(out, pass(domain.PillarAudience, "geo_targeting", "Geo targeting is within contract geographies."))
	}
	return out
}

func demographicIssues(g domain.AudienceGuardrail, a domain.AudienceSettings) []domain.AuditIssue {
	if len(g.Demographics) == 0 {
		return []domain.AuditIssue{pass(domain.PillarAudience, "demographic", "No demographic restriction in contract.")}
	}
	var out []domain.AuditIssue
	for _, d := range domain.Outside(a.Demographic, g.Demographics) {
		out = append(out, fail(domain.PillarAudience, "demographic", domain.SeverityMedium,
			fmt.Sprintf("Demographic '%s' is not part of the contracted audience (%s).", d, strings.Join(g.Demographics, ", ")),
			fmt.Sprintf("Remove '%s' from the demographic targeting.", d)))
	}
	if len(out) == 0 {
		out = append(out, pass(domain.PillarAudience, "demographic", "Demographic targeting matches the contract."))
	}
	return out
}

// ageIssues checks that the lower bound of the target age range is not
// below the contract minimum. Ranges look like "25-54" or "25+".
func ageIssues(g domain.AudienceGuardrail, a domain.AudienceSettings) []domain.AuditIssue {
	if g.MinAge <= 0 {
		return nil
	}
	if strings.TrimSpace(a.TargetAgeRange) == "" {
		return []domain.AuditIssue{warn(domain.PillarAudience, "target_age_range",
			fmt.Sprintf("No target age range given; contract requires audiences aged %d+.", g.MinAge))}
	}
	lower, ok := lowerAge(a.TargetAgeRange)
	if !ok {
		return []domain.AuditIssue{warn(domain.PillarAudience, "target_age_range",
			fmt.Sprintf("Target age range '%s' could not be read.", a.TargetAgeRange))}
	}
	if lower < g.MinAge {
		return []domain.AuditIssue{fail(domain.PillarAudience, "target_age_range", domain.SeverityHigh,
			fmt.Sprintf("Target age range '%s' starts below the contract minimum age of %d.", a.TargetAgeRange, g.MinAge),
			fmt.Sprintf("Raise the minimum target age to %d.", g.MinAge))}
	}
	return []domain.AuditIssue{pass(domain.PillarAudience, "target_age_range", "Target age range meets the contract minimum.")}
}

func lowerAge(r string) (int, bool) {
	s := strings.TrimSpace(r)
	if i := strings.IndexAny(s, "-+"); i >= 0 {
		s = s[:i]
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func contextualIssues(g domain.AudienceGuardrail, a domain.AudienceSettings) []domain.AuditIssue {
	return []domain.AuditIssue{exactField(domain.PillarAudience, "contextual", "Contextual theme", domain.SeverityLow, g.Contextual, a.Contextual)}
}

// genreIssues turns semantic conflicts into failing issues, or a single
// PASS when there are none.
func genreIssues(res port.CategoryResult) []domain.AuditIssue {
	var out []domain.AuditIssue
	for _, c := range res.Conflicts {
		var msg string
		if res.Fallback {
			msg = fmt.Sprintf("Direct Violation: '%s' is %s.", c.Selected, c.Reason)
		} else {
			msg = fmt.Sprintf("Semantic Violation: '%s' violates forbidden category '%s'. %s", c.Selected, c.ForbiddenMatch, c.Reason)
		}
		out = append(out, fail(domain.PillarAudience, "selected_genres", domain.SeverityHigh,
			strings.TrimSpace(msg), fmt.Sprintf("Remove '%s' from targeting.", c.Selected)))
	}
	if len(out) == 0 {
		out = append(out, pass(domain.PillarAudience, "selected_genres", "No forbidden genres detected."))
	}
	return out
}

// exactField requires the proposed value to equal the contracted one. The
// suggested fix is the required value itself.
func exactField(p domain.Pillar, field, label string, sev domain.Severity, required, proposed string) domain.AuditIssue {
	if required == "" {
		return pass(p, field, fmt.Sprintf("No %s requirement in contract.", strings.ToLower(label)))
	}
	if proposed != required {
		return fail(p, field, sev,
			fmt.Sprintf("%s '%s' violates contract requirement '%s'.", label, proposed, required), required)
	}
	return pass(p, field, fmt.Sprintf("%s matches contract requirement.", label))
}

func optimizationIssues(g domain.OptimizationGuardrail, o domain.OptimizationSettings) []domain.AuditIssue {
	return []domain.AuditIssue{
		exactField(domain.PillarOptimization, "placement", "Placement", domain.SeverityHigh, g.PlacementType, o.Placement),
		exactField(domain.PillarOptimization, "frequency_cap", "Frequency cap", domain.SeverityMedium, g.FrequencyCap, o.FrequencyCap),
	}
}

func creativeIssues(g domain.CreativeGuardrail, c domain.CreativeSettings) []domain.AuditIssue {
	return []domain.AuditIssue{
		exactField(domain.PillarCreative, "format", "Format", domain.SeverityMedium, g.Format, c.Format),
		exactField(domain.PillarCreative, "compliance_standard", "Compliance standard", domain.SeverityMedium, g.ComplianceStandard, c.ComplianceStandard),
	}
}

// copyIssues combines the local keyword scan with the remote tone verdict.
func copyIssues(policy ToneUnavailablePolicy, g domain.CopyGuardrail, keywords []string, tone port.ToneVerdict) []domain.AuditIssue {
	var out []domain.AuditIssue
	for _, kw := range keywords {
		out = append(out, fail(domain.PillarCopy, "ad_copy_text", domain.SeverityHigh,
			fmt.Sprintf("Ad copy contains forbidden keyword '%s'.", kw),
			fmt.Sprintf("Remove '%s' from the ad copy.", kw)))
	}
	if len(keywords) == 0 {
		out = append(out, pass(domain.PillarCopy, "ad_copy_text", "No forbidden keywords detected."))
	}

	if g.RequiredTone == "" {
		return out
	}
	switch {
	case tone.Violates:
		msg := fmt.Sprintf("Ad copy violates required tone '%s'.", g.RequiredTone)
		if tone.Reason != "" {
			msg += " " + tone.Reason
		}
		out = append(out, fail(domain.PillarCopy, "tone", domain.SeverityHigh, msg,
			fmt.Sprintf("Rewrite the ad copy in a '%s' tone.", g.RequiredTone)))
	case tone.Unavailable && policy == ToneUnavailableWarn:
		out = append(out, warn(domain.PillarCopy, "tone",
			fmt.Sprintf("Tone check unavailable; ad copy was not verified against required tone '%s'.", g.RequiredTone)))
	default:
		out = append(out, pass(domain.PillarCopy, "tone", fmt.Sprintf("Ad copy matches required tone '%s'.", g.RequiredTone)))
	}
	return out
}

func legalIssues(g domain.LegalGuardrail) []domain.AuditIssue {
	if len(g.Terms) == 0 {
		return []domain.AuditIssue{pass(domain.PillarLegal, "terms", "No additional legal terms in contract.")}
	}
	return []domain.AuditIssue{pass(domain.PillarLegal, "terms",
		fmt.Sprintf("%d legal clause(s) on record for this contract.", len(g.Terms)))}
}
