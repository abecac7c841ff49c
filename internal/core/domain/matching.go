package domain

import "strings"

// ExactMatches returns the values of selected that appear verbatim in
// forbidden. Comparison is case-sensitive.
func ExactMatches(selected, forbidden []string) []string {
	set := make(map[string]struct{}, len(forbidden))
	for _, f := range forbidden {
		set[f] = struct{}{}
	}
	var out []string
	for _, s := range selected {
		if _, ok := set[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

// ScanKeywords returns the forbidden keywords that occur anywhere in text,
// ignoring case. Blank keywords are skipped.
func ScanKeywords(text string, keywords []string) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, kw := range keywords {
		k := strings.TrimSpace(kw)
		if k == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(k)) {
			out = append(out, kw)
		}
	}
	return out
}

// Outside returns the values of requested not present in allowed.
func Outside(requested, allowed []string) []string {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	var out []string
	for _, r := range requested {
		if _, ok := set[r]; !ok {
			out = append(out, r)
		}
	}
	return out
}
