package httpadapter

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"setsync/internal/adapter/memory"
	"setsync/internal/adapter/semantic"
	"setsync/internal/adapter/usecase"
	"setsync/internal/core/domain"
)

func testContract() *domain.Contract {
	return &domain.Contract{
		ContractID: "CNT-HTTP",
		ClientName: "Luxury Brand X",
		Guardrails: domain.Guardrails{
			SchemaVersion: domain.SchemaVersion,
			Audience: domain.AudienceGuardrail{
				AllowedGeos:         []string{"USA"},
				ForbiddenCategories: []string{"Horror"},
			},
			Timeframe: domain.TimeframeGuardrail{StartDate: domain.NewDate(2026, 3, 1)},
			Budget:    domain.BudgetGuardrail{TotalBudgetLimit: 100000},
		},
	}
}

const springCampaign = `{
	"campaign_name": "Spring",
	"audience": {"geo_targeting": ["USA"], "selected_genres": ["Drama"]},
	"timeframe": {"start_date": "2026-03-01"},
	"budget": {"daily_budget": 4000, "total_days": 25}
}`

// newTestServer wires the real use cases over a memory store. The semantic
// client has no endpoint so every category check takes the exact-match
// fallback.
func newTestServer(t *testing.T, maxBody int64) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewStore(testContract())
	checker := semantic.NewClient(semantic.Config{}, nil, logger)
	h := NewHandler(
		usecase.NewAuditUseCase(store, store, checker, usecase.DefaultPolicy(), logger),
		usecase.NewPublishUseCase(store, logger),
		usecase.NewViewUseCase(store, store),
		logger,
		maxBody,
	)
	srv := httptest.NewServer(h.Router())
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, body string) (int, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	out := map[string]any{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestAuditPublishFlow(t *testing.T) {
	srv := newTestServer(t, 0)

	status, body := do(t, srv, http.MethodPost, "/audit/CNT-HTTP", springCampaign)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["is_certified"])
	assert.Equal(t, float64(100), body["logic_score"])
	assert.Equal(t, "CERTIFIED", body["overall_status"])

	status, body = do(t, srv, http.MethodPost, "/rerun-audit/CNT-HTTP/Spring", `{"budget": {"total_days": 30}}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["is_certified"])
	assert.Equal(t, float64(75), body["logic_score"])

	status, body = do(t, srv, http.MethodPost, "/publish-live/Spring", "")
	require.Equal(t, http.StatusUnprocessableEntity, status)
	detail := body["detail"].(map[string]any)
	assert.Equal(t, "Compliance Check Failed", detail["error"])
	assert.Equal(t, []any{"Total budget $120,000 exceeds contract limit of $100,000."}, detail["violations"])
	assert.Equal(t, "Campaign cannot be published until all legal guardrails are met.", detail["message"])

	status, _ = do(t, srv, http.MethodGet, "/campaigns/Spring", "")
	require.Equal(t, http.StatusOK, status)

	status, body = do(t, srv, http.MethodPost, "/rerun-audit/CNT-HTTP/Spring", `{"budget": {"total_days": 20}}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["is_certified"])

	status, body = do(t, srv, http.MethodPost, "/publish-live/Spring", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "SUCCESS", body["status"])
	assert.Equal(t, "Campaign 'Spring' is now LIVE.", body["message"])
	assert.Equal(t, false, body["already_live"])

	status, body = do(t, srv, http.MethodPost, "/publish-live/Spring", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["already_live"])

	status, body = do(t, srv, http.MethodGet, "/campaigns/Spring", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "LIVE", body["status"])
}

func TestAuditFallbackViolation(t *testing.T) {
	srv := newTestServer(t, 0)
	campaign := strings.Replace(springCampaign, `"Drama"`, `"Drama", "Horror"`, 1)

	status, body := do(t, srv, http.MethodPost, "/audit/CNT-HTTP", campaign)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["is_certified"])

	pillars := body["pillars"].(map[string]any)
	audience := pillars["audience"].(map[string]any)
	assert.Equal(t, "FAIL", audience["status"])
	assert.Equal(t, "Direct Violation: 'Horror' is explicitly forbidden.", audience["message"])
}

func TestErrorMapping(t *testing.T) {
	srv := newTestServer(t, 0)

	cases := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		detail string
	}{
		{"unknown contract", http.MethodPost, "/audit/CNT-NONE", springCampaign, http.StatusNotFound, "Contract not found"},
		{"rerun before audit", http.MethodPost, "/rerun-audit/CNT-HTTP/Spring", `{}`, http.StatusNotFound, "Campaign not found"},
		{"publish before audit", http.MethodPost, "/publish-live/Spring", "", http.StatusBadRequest, "Campaign must be audited before publishing."},
		{"score before audit", http.MethodGet, "/campaigns/Spring/score", "", http.StatusNotFound, "Campaign has not been audited."},
		{"campaign unknown", http.MethodGet, "/campaigns/Spring", "", http.StatusNotFound, "Campaign not found"},
		{"contract unknown", http.MethodGet, "/contracts/CNT-NONE", "", http.StatusNotFound, "Contract not found"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := do(t, srv, tc.method, tc.path, tc.body)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.detail, body["detail"])
		})
	}
}

func TestBadRequests(t *testing.T) {
	srv := newTestServer(t, 0)

	status, body := do(t, srv, http.MethodPost, "/audit/CNT-HTTP", `{"campaign_name":`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["detail"], "invalid JSON")

	status, body = do(t, srv, http.MethodPost, "/audit/CNT-HTTP", `{"budget": {"daily_budget": 1, "total_days": 1}}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "campaign_name", body["detail"].(map[string]any)["field"])

	status, _ = do(t, srv, http.MethodPost, "/audit/CNT-HTTP", springCampaign)
	require.Equal(t, http.StatusOK, status)

	status, body = do(t, srv, http.MethodPost, "/rerun-audit/CNT-HTTP/Spring", `{"audience": {"geo_targeting": "USA"}}`)
	assert.Equal(t, http.StatusBadRequest, status)
	detail := body["detail"].(map[string]any)
	assert.Equal(t, "audience", detail["section"])
	assert.Equal(t, "geo_targeting", detail["field"])
}

func TestBodyTooLarge(t *testing.T) {
	srv := newTestServer(t, 32)

	status, body := do(t, srv, http.MethodPost, "/audit/CNT-HTTP", springCampaign)
	assert.Equal(t, http.StatusRequestEntityTooLarge, status)
	assert.Equal(t, "request body too large", body["detail"])
}

func TestProjections(t *testing.T) {
	srv := newTestServer(t, 0)
	campaign := strings.Replace(springCampaign, `["USA"]`, `["USA", "UK"]`, 1)
	status, _ := do(t, srv, http.MethodPost, "/audit/CNT-HTTP", campaign)
	require.Equal(t, http.StatusOK, status)

	status, body := do(t, srv, http.MethodGet, "/campaigns/Spring/score", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(75), body["logic_score"])
	assert.Equal(t, "REJECTED", body["overall_status"])

	status, body = do(t, srv, http.MethodGet, "/campaigns/Spring/flags", "")
	require.Equal(t, http.StatusOK, status)
	flags := body["flags"].([]any)
	require.Len(t, flags, 1)
	assert.Equal(t, "geo_targeting", flags[0].(map[string]any)["field"])

	status, body = do(t, srv, http.MethodGet, "/campaigns/Spring/pillars/audience", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "FAIL", body["status"])

	status, body = do(t, srv, http.MethodGet, "/campaigns/Spring/pillars/budget", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "PASS", body["status"])

	status, body = do(t, srv, http.MethodGet, "/campaigns/Spring/pillars/pricing", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Pillar not found", body["detail"])

	status, body = do(t, srv, http.MethodGet, "/campaigns/Spring/diff", "")
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, body["diffs"])

	status, body = do(t, srv, http.MethodGet, "/contracts/CNT-HTTP", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Luxury Brand X", body["client_name"])

	status, body = do(t, srv, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}
