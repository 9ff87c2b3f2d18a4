// ABOUTME: Tests for macro reply parsing and the chat estimator client.
// ABOUTME: Uses httptest to fake the completions endpoint.
package macro

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseReply(t *testing.T) {
	m, err := ParseReply(`{"calories": 2400, "protein_g": 160, "carbs_g": 250, "fat_g": 80}`)
	if err != nil {
		t.Fatalf("ParseReply failed: %v", err)
	}
	if m.Calories != 2400 || m.ProteinG != 160 {
		t.Errorf("unexpected macros: %+v", m)
	}
}

func TestParseReplyWrapped(t *testing.T) {
	reply := "Here is the estimate:\n```json\n{\"calories\": 1800, \"protein_g\": 120, \"carbs_g\": 180, \"fat_g\": 60}\n```\nEnjoy!"
	m, err := ParseReply(reply)
	if err != nil {
		t.Fatalf("ParseReply failed on wrapped JSON: %v", err)
	}
	if m.Calories != 1800 {
		t.Errorf("calories = %d, want 1800", m.Calories)
	}
}

func TestParseReplyInvalid(t *testing.T) {
	for _, reply := range []string{"", "no json here", `{"calories": 0}`, `{broken`} {
		if _, err := ParseReply(reply); err == nil {
			t.Errorf("expected error for %q", reply)
		}
	}
}

func TestChatEstimator(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header: %q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{
					"role":    "assistant",
					"content": `{"calories": 2100, "protein_g": 140, "carbs_g": 220, "fat_g": 70, "fiber_g": 30}`,
				}},
			},
		})
	}))
	defer srv.Close()

	est := NewChatEstimator(srv.URL, "test-model", "test-key")
	m, err := est.Estimate(context.Background(), []string{"oatmeal", "chicken salad"})
	if err != nil {
		t.Fatalf("Estimate failed: %v", err)
	}
	if m.Calories != 2100 || m.FiberG != 30 {
		t.Errorf("unexpected macros: %+v", m)
	}
}

func TestChatEstimatorServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	est := NewChatEstimator(srv.URL, "test-model", "")
	if _, err := est.Estimate(context.Background(), []string{"toast"}); err == nil {
		t.Error("expected error on 503")
	}
}

func TestChatEstimatorEmptyLog(t *testing.T) {
	est := NewChatEstimator("http://unused", "m", "")
	if _, err := est.Estimate(context.Background(), nil); err == nil {
		t.Error("expected error for empty food log")
	}
}
