package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/meshintel/contract-engine/pkg/types"
)

func TestHTTPAnnotator(t *testing.T) {
	var gotAuth string
	var gotReq annotateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(annotateResponse{
			Explanation: "explained",
			Suggestion:  "suggested",
		})
	}))
	defer srv.Close()

	ann := NewHTTPAnnotator(types.GenAIConfig{
		Endpoint: srv.URL,
		AIConfig: types.AIConfig{Model: "clause-advisor-1", APIKey: "gk_test"},
	})

	c := clause(0, "The Vendor shall indemnify the Client.", types.ClauseIndemnity)
	findings := []types.RiskFinding{{Category: types.RiskIndemnity, Severity: types.SeverityHigh, Evidence: "indemnify"}}

	a, err := ann.Annotate(context.Background(), c, findings)
	if err != nil {
		t.Fatalf("Annotate: %v", err)
	}
	if a.Explanation != "explained" || a.Suggestion != "suggested" {
		t.Errorf("annotation = %+v", a)
	}
	if gotAuth != "Bearer gk_test" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotReq.Model != "clause-advisor-1" || gotReq.Type != types.ClauseIndemnity {
		t.Errorf("request = %+v", gotReq)
	}
	if len(gotReq.Findings) != 1 {
		t.Errorf("request findings = %v", gotReq.Findings)
	}
}

func TestHTTPAnnotatorServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ann := NewHTTPAnnotator(types.GenAIConfig{Endpoint: srv.URL})
	_, err := ann.Annotate(context.Background(), clause(0, "x", types.ClauseOther), nil)
	if err == nil {
		t.Fatal("want error on non-2xx response")
	}
}
