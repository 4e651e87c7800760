// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/meshintel/contract-engine/pkg/types"
)

const defaultTimeout = 30 * time.Second

// HTTPAnnotator calls the annotation service over HTTP. One request per
// clause; the response carries the explanation and suggestion verbatim.
type HTTPAnnotator struct {
	client   *http.Client
	endpoint string
	model    string
	apiKey   string
}

// NewHTTPAnnotator builds an annotator for the configured endpoint.
func NewHTTPAnnotator(cfg types.GenAIConfig) *HTTPAnnotator {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPAnnotator{
		client:   &http.Client{Timeout: timeout},
		endpoint: cfg.Endpoint,
		model:    cfg.Model,
		apiKey:   cfg.APIKey,
	}
}

// annotateRequest is the wire format sent to the annotation service.
type annotateRequest struct {
	Model    string              `json:"model"`
	Clause   string              `json:"clause"`
	Type     types.ClauseType    `json:"type"`
	Findings []types.RiskFinding `json:"findings,omitempty"`
}

// annotateResponse is the wire format returned by the service.
type annotateResponse struct {
	Explanation string `json:"explanation"`
	Suggestion  string `json:"suggestion,omitempty"`
}

// Annotate posts the clause and its findings to the service and decodes
// the annotation. Non-2xx responses are errors; the retry policy lives
// in BuildOverlay, not here.
func (h *HTTPAnnotator) Annotate(ctx context.Context, clause types.ClassifiedClause, findings []types.RiskFinding) (types.Annotation, error) {
	body, err := json.Marshal(annotateRequest{
		Model:    h.model,
		Clause:   clause.Text,
		Type:     clause.Type,
		Findings: findings,
	})
	if err != nil {
		return types.Annotation{}, fmt.Errorf("encoding annotation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(body))
	if err != nil {
		return types.Annotation{}, fmt.Errorf("building annotation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if h.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+h.apiKey)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return types.Annotation{}, fmt.Errorf("calling annotation service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return types.Annotation{}, fmt.Errorf("annotation service returned %s", resp.Status)
	}

	var out annotateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return types.Annotation{}, fmt.Errorf("decoding annotation response: %w", err)
	}

	return types.Annotation{Explanation: out.Explanation, Suggestion: out.Suggestion}, nil
}
