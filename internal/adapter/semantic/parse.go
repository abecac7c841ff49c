package semantic

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"setsync/internal/core/port"
)

var (
	errEmptyContent = errors.New("empty completion content")
	thinkBlock      = regexp.MustCompile(`(?s)<think>.*?</think>`)
)

// stripFence removes reasoning blocks and a surrounding ``` code fence,
// with or without a language tag, leaving the payload.
func stripFence(content string) string {
	s := strings.TrimSpace(thinkBlock.ReplaceAllString(content, ""))
	start := strings.Index(s, "```")
	if start < 0 {
		return s
	}
	rest := s[start+3:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		tag := strings.TrimSpace(rest[:nl])
		if tag == "" || !strings.ContainsAny(tag, "[{") {
			rest = rest[nl+1:]
		}
	}
	if end := strings.Index(rest, "```"); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest)
}

func parseCategoryConflicts(content string) ([]port.CategoryConflict, error) {
	payload := stripFence(content)
	if payload == "" {
		return nil, errEmptyContent
	}
	var conflicts []port.CategoryConflict
	if err := json.Unmarshal([]byte(payload), &conflicts); err != nil {
		return nil, fmt.Errorf("decode category conflicts: %w", err)
	}
	for i, c := range conflicts {
		if strings.TrimSpace(c.Selected) == "" {
			return nil, fmt.Errorf("decode category conflicts: entry %d has no genre", i)
		}
	}
	return conflicts, nil
}

func parseToneVerdict(content string) (port.ToneVerdict, error) {
	payload := stripFence(content)
	if payload == "" {
		return port.ToneVerdict{}, errEmptyContent
	}
	var raw struct {
		Violates *bool  `json:"violates"`
		Reason   string `json:"reason"`
	}
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return port.ToneVerdict{}, fmt.Errorf("decode tone verdict: %w", err)
	}
	if raw.Violates == nil {
		return port.ToneVerdict{}, errors.New("decode tone verdict: missing violates")
	}
	return port.ToneVerdict{Violates: *raw.Violates, Reason: raw.Reason}, nil
}
