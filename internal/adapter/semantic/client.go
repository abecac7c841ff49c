package semantic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"setsync/internal/core/domain"
	"setsync/internal/core/port"
)

// DefaultTimeout bounds a single remote check when Config.Timeout is unset.
const DefaultTimeout = 15 * time.Second

// maxResponseBytes caps how much of a completion response is read.
const maxResponseBytes = 1 << 20

// Config holds the inference endpoint settings. URL is the full chat
// completions endpoint. An empty URL makes every remote call fail, so all
// checks use their fallback.
type Config struct {
	URL     string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Client implements port.SemanticChecker against an OpenAI-compatible chat
// completions API.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient returns a checker using httpClient, or http.DefaultClient when
// nil.
func NewClient(cfg Config, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{cfg: cfg, httpClient: httpClient, logger: logger}
}

// CategoryConflicts asks the model which selected labels semantically match
// a forbidden one. On any remote failure it falls back to exact,
// case-sensitive membership.
func (c *Client) CategoryConflicts(ctx context.Context, selected, forbidden []string) port.CategoryResult {
	if len(selected) == 0 || len(forbidden) == 0 {
		return port.CategoryResult{}
	}
	content, err := c.complete(ctx, categorySystemPrompt, categoryPrompt(selected, forbidden))
	if err == nil {
		var conflicts []port.CategoryConflict
		if conflicts, err = parseCategoryConflicts(content); err == nil {
			return port.CategoryResult{Conflicts: submittedOnly(conflicts, selected)}
		}
	}
	c.logger.Warn("semantic category check failed, using exact match",
		slog.Any("error", err),
		slog.Int("selected", len(selected)),
		slog.Int("forbidden", len(forbidden)),
	)
	return port.CategoryResult{Conflicts: exactMatchConflicts(selected, forbidden), Fallback: true}
}

// ToneConflict asks the model whether text departs from requiredTone. On
// any remote failure it reports no violation and marks the verdict
// unavailable.
func (c *Client) ToneConflict(ctx context.Context, text, requiredTone string) port.ToneVerdict {
	if strings.TrimSpace(text) == "" || strings.TrimSpace(requiredTone) == "" {
		return port.ToneVerdict{}
	}
	content, err := c.complete(ctx, toneSystemPrompt, tonePrompt(text, requiredTone))
	if err == nil {
		var verdict port.ToneVerdict
		if verdict, err = parseToneVerdict(content); err == nil {
			return verdict
		}
	}
	c.logger.Warn("semantic tone check failed, treating as no violation",
		slog.Any("error", err),
		slog.String("required_tone", requiredTone),
	)
	return port.ToneVerdict{Unavailable: true}
}

// complete sends one chat completion and returns the first choice content.
func (c *Client) complete(ctx context.Context, system, user string) (string, error) {
	if strings.TrimSpace(c.cfg.URL) == "" {
		return "", fmt.Errorf("%w: endpoint not configured", port.ErrSemanticUnavailable)
	}
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	payload, err := json.Marshal(map[string]any{
		"model": c.cfg.Model,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
		"temperature": 0.1,
	})
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", port.ErrSemanticUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("%w: status %d: %s", port.ErrSemanticUnavailable, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("%w: read response: %w", port.ErrSemanticUnavailable, err)
	}
	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("%w: response is not JSON", port.ErrSemanticUnavailable)
	}
	content := gjson.GetBytes(body, "choices.0.message.content")
	if content.Type != gjson.String {
		return "", fmt.Errorf("%w: response has no message content", port.ErrSemanticUnavailable)
	}
	return content.String(), nil
}

func exactMatchConflicts(selected, forbidden []string) []port.CategoryConflict {
	var out []port.CategoryConflict
	for _, m := range domain.ExactMatches(selected, forbidden) {
		out = append(out, port.CategoryConflict{
			Selected:       m,
			ForbiddenMatch: m,
			Reason:         "explicitly forbidden",
		})
	}
	return out
}

// submittedOnly keeps conflicts whose label was actually selected. Labels
// are matched case-insensitively and reported as submitted.
func submittedOnly(conflicts []port.CategoryConflict, selected []string) []port.CategoryConflict {
	out := make([]port.CategoryConflict, 0, len(conflicts))
	for _, c := range conflicts {
		for _, s := range selected {
			if strings.EqualFold(strings.TrimSpace(c.Selected), s) {
				c.Selected = s
				out = append(out, c)
				break
			}
		}
	}
	return out
}
