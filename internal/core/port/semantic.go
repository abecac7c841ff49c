package port

import "context"

// CategoryConflict is one selected label that semantically matches a
// forbidden one.
type CategoryConflict struct {
	Selected       string `json:"genre"`
	ForbiddenMatch string `json:"forbidden_match"`
	Reason         string `json:"reason"`
}

// CategoryResult is the outcome of a category comparison. Fallback is set
// when the remote check failed and exact matching was used instead.
type CategoryResult struct {
	Conflicts []CategoryConflict
	Fallback  bool
}

// ToneVerdict is the outcome of a tone comparison. Unavailable is set when
// the remote check failed; Violates is then always false.
type ToneVerdict struct {
	Violates    bool   `json:"violates"`
	Reason      string `json:"reason"`
	Unavailable bool   `json:"-"`
}

// SemanticChecker compares campaign content against contract rules using a
// remote inference service. Methods never return errors: failures are
// logged and a deterministic fallback result is returned.
type SemanticChecker interface {
	CategoryConflicts(ctx context.Context, selected, forbidden []string) CategoryResult
	ToneConflict(ctx context.Context, text, requiredTone string) ToneVerdict
}
