// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package genai is the boundary to the optional generative-AI
// collaborator. Annotations attach to a completed AnalysisRecord as an
// overlay keyed by clause index; the record itself is never rewritten,
// and every clause renders a deterministic explanation when the overlay
// is absent or partial. Retries and timeouts live here, never in the
// core pipeline. Implements: prd008-genai-overlay (R1-R3).
package genai

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/meshintel/contract-engine/pkg/types"
)

// Annotator produces a plain-language annotation for one clause. The
// HTTP backend and the deterministic fallback both implement it, so
// tests can supply a mock.
type Annotator interface {
	Annotate(ctx context.Context, clause types.ClassifiedClause, findings []types.RiskFinding) (types.Annotation, error)
}

// backoffBase controls the base duration for exponential backoff. Tests
// override this to avoid real sleeps.
var backoffBase = time.Second

// BuildOverlay annotates every clause of the record. A clause whose
// annotation fails after maxRetries is skipped — the overlay may be
// partially populated, and reporting falls back to deterministic
// explanations for missing entries (R2.1).
func BuildOverlay(ctx context.Context, ann Annotator, rec *types.AnalysisRecord, maxRetries int) (types.Overlay, error) {
	if maxRetries <= 0 {
		maxRetries = 3
	}

	overlay := make(types.Overlay, len(rec.Clauses))
	for i, clause := range rec.Clauses {
		a, err := annotateWithRetry(ctx, ann, clause, rec.ClauseFindings(i), maxRetries)
		if err != nil {
			if ctx.Err() != nil {
				return overlay, ctx.Err()
			}
			log.Warn().Int("clause", i).Err(err).Msg("annotation failed, clause falls back to deterministic explanation")
			continue
		}
		overlay[i] = a
	}
	return overlay, nil
}

// annotateWithRetry calls the annotator with exponential backoff.
func annotateWithRetry(ctx context.Context, ann Annotator, clause types.ClassifiedClause, findings []types.RiskFinding, maxRetries int) (types.Annotation, error) {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * backoffBase
			select {
			case <-ctx.Done():
				return types.Annotation{}, ctx.Err()
			case <-time.After(backoff):
			}
		}

		a, err := ann.Annotate(ctx, clause, findings)
		if err == nil {
			return a, nil
		}
		lastErr = err
	}
	return types.Annotation{}, fmt.Errorf("after %d retries: %w", maxRetries, lastErr)
}
