package semantic

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"setsync/internal/core/port"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// completionServer answers every request with content wrapped in an
// OpenAI-style choices envelope.
func completionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role string `json:"role"`
			} `json:"messages"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "test-model", body.Model)
		assert.Len(t, body.Messages, 2)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []any{map[string]any{"message": map[string]any{"content": content}}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(url string) *Client {
	return NewClient(Config{URL: url, APIKey: "secret", Model: "test-model", Timeout: time.Second}, nil, discardLogger())
}

func TestCategoryConflictsRemote(t *testing.T) {
	srv := completionServer(t, "```json\n[{\"genre\":\"Slasher\",\"forbidden_match\":\"Horror\",\"reason\":\"slasher is a horror subgenre\"}]\n```")
	c := newTestClient(srv.URL)

	res := c.CategoryConflicts(context.Background(), []string{"Slasher", "Comedy"}, []string{"Horror"})

	require.False(t, res.Fallback)
	require.Len(t, res.Conflicts, 1)
	assert.Equal(t, "Slasher", res.Conflicts[0].Selected)
	assert.Equal(t, "Horror", res.Conflicts[0].ForbiddenMatch)
}

func TestCategoryConflictsEmptyArray(t *testing.T) {
	srv := completionServer(t, "[]")
	res := newTestClient(srv.URL).CategoryConflicts(context.Background(), []string{"Comedy"}, []string{"Horror"})

	assert.False(t, res.Fallback)
	assert.Empty(t, res.Conflicts)
}

func TestCategoryConflictsDropsUnsubmittedLabels(t *testing.T) {
	srv := completionServer(t, `[
		{"genre": "slasher", "forbidden_match": "Horror", "reason": "horror subgenre"},
		{"genre": "Zombie Apocalypse", "forbidden_match": "Horror", "reason": "not selected"}
	]`)
	res := newTestClient(srv.URL).CategoryConflicts(context.Background(), []string{"Slasher", "Comedy"}, []string{"Horror"})

	require.False(t, res.Fallback)
	require.Len(t, res.Conflicts, 1)
	assert.Equal(t, "Slasher", res.Conflicts[0].Selected)
}

func TestCategoryConflictsFallback(t *testing.T) {
	malformed := completionServer(t, "I think Slasher overlaps with Horror.")
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer failing.Close()
	notJSON := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "<html>gateway</html>")
	}))
	defer notJSON.Close()

	for name, url := range map[string]string{
		"malformed":   malformed.URL,
		"status":      failing.URL,
		"not json":    notJSON.URL,
		"unset":       "",
		"unreachable": "http://127.0.0.1:1",
	} {
		t.Run(name, func(t *testing.T) {
			res := newTestClient(url).CategoryConflicts(context.Background(),
				[]string{"Slasher", "Horror", "horror", "Zombies"},
				[]string{"Horror", "Zombies", "Extreme Violence"})

			require.True(t, res.Fallback)
			require.Len(t, res.Conflicts, 2)
			assert.Equal(t, port.CategoryConflict{Selected: "Horror", ForbiddenMatch: "Horror", Reason: "explicitly forbidden"}, res.Conflicts[0])
			assert.Equal(t, "Zombies", res.Conflicts[1].Selected)
		})
	}
}

// TestCategoryFallbackMissesRelatedGenres documents that exact matching
// cannot see semantic overlap.
func TestCategoryFallbackMissesRelatedGenres(t *testing.T) {
	res := newTestClient("").CategoryConflicts(context.Background(), []string{"Slasher"}, []string{"Horror"})

	assert.True(t, res.Fallback)
	assert.Empty(t, res.Conflicts)
}

func TestCategoryConflictsTimeout(t *testing.T) {
	release := make(chan struct{})
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer slow.Close()
	defer close(release)

	c := NewClient(Config{URL: slow.URL, Timeout: 50 * time.Millisecond}, nil, discardLogger())
	start := time.Now()
	res := c.CategoryConflicts(context.Background(), []string{"Horror"}, []string{"Horror"})

	assert.Less(t, time.Since(start), 5*time.Second)
	assert.True(t, res.Fallback)
	assert.Len(t, res.Conflicts, 1)
}

func TestCategoryConflictsSkipsEmptyInput(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))
	defer srv.Close()

	res := newTestClient(srv.URL).CategoryConflicts(context.Background(), nil, []string{"Horror"})

	assert.False(t, called)
	assert.Equal(t, port.CategoryResult{}, res)
}

func TestToneConflict(t *testing.T) {
	srv := completionServer(t, "<think>the copy is pushy</think>\n```json\n{\"violates\": true, \"reason\": \"discount language is not premium\"}\n```")

	v := newTestClient(srv.URL).ToneConflict(context.Background(), "Get 50% off now!", "Premium, aspirational")

	assert.True(t, v.Violates)
	assert.False(t, v.Unavailable)
	assert.Equal(t, "discount language is not premium", v.Reason)
}

func TestToneConflictFallbackIsNoViolation(t *testing.T) {
	for name, content := range map[string]string{
		"missing field": `{"reason":"hmm"}`,
		"prose":         "It is fine.",
		"empty":         "",
	} {
		t.Run(name, func(t *testing.T) {
			srv := completionServer(t, content)
			v := newTestClient(srv.URL).ToneConflict(context.Background(), "Buy now", "Calm")

			assert.False(t, v.Violates)
			assert.True(t, v.Unavailable)
		})
	}
}

func TestToneConflictSkipsWithoutTone(t *testing.T) {
	v := newTestClient("").ToneConflict(context.Background(), "Buy now", "")
	assert.Equal(t, port.ToneVerdict{}, v)
}
