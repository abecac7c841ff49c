package usecase

import "fmt"

// TimeframePolicy selects which flight bounds the timeframe pillar checks.
type TimeframePolicy string

const (
	// TimeframeStartOnly checks only that the campaign does not start
	// before the contract.
	TimeframeStartOnly TimeframePolicy = "start_only"
	// TimeframeStartAndEnd additionally fails campaigns that run past the
	// contract end date.
	TimeframeStartAndEnd TimeframePolicy = "start_and_end"
)

// ToneUnavailablePolicy selects how the copy pillar reports a tone check
// that could not be completed.
type ToneUnavailablePolicy string

const (
	// ToneUnavailableWarn records a WARN issue. It does not block
	// certification.
	ToneUnavailableWarn ToneUnavailablePolicy = "warn"
	// ToneUnavailablePass records a PASS as if the copy matched.
	ToneUnavailablePass ToneUnavailablePolicy = "pass"
)

// Policy holds the configurable audit behaviours.
type Policy struct {
	Timeframe       TimeframePolicy
	ToneUnavailable ToneUnavailablePolicy
}

// DefaultPolicy checks start dates only and warns on unverified tone.
func DefaultPolicy() Policy {
	return Policy{Timeframe: TimeframeStartOnly, ToneUnavailable: ToneUnavailableWarn}
}

// ParsePolicy validates raw configuration values. Empty values take the
// defaults.
func ParsePolicy(timeframe, toneUnavailable string) (Policy, error) {
	p := DefaultPolicy()
	switch TimeframePolicy(timeframe) {
	case "":
	case TimeframeStartOnly, TimeframeStartAndEnd:
		p.Timeframe = TimeframePolicy(timeframe)
	default:
		return p, fmt.Errorf("unknown timeframe policy %q", timeframe)
	}
	switch ToneUnavailablePolicy(toneUnavailable) {
	case "":
	case ToneUnavailableWarn, ToneUnavailablePass:
		p.ToneUnavailable = ToneUnavailablePolicy(toneUnavailable)
	default:
		return p, fmt.Errorf("unknown tone-unavailable policy %q", toneUnavailable)
	}
	return p, nil
}
