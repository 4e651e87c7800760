// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analyze orchestrates the clause analysis pipeline and builds
// the immutable AnalysisRecord. Data flows strictly forward: text →
// segments → classified clauses → role tags → risk findings → scores →
// record. No stage depends on GenAI output; the pipeline is synchronous,
// pure, and safe to run concurrently across documents.
// Implements: prd006-analysis-record (R1-R3).
package analyze

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/meshintel/contract-engine/internal/classify"
	"github.com/meshintel/contract-engine/internal/entity"
	"github.com/meshintel/contract-engine/internal/risk"
	"github.com/meshintel/contract-engine/internal/role"
	"github.com/meshintel/contract-engine/internal/rules"
	"github.com/meshintel/contract-engine/internal/segment"
	"github.com/meshintel/contract-engine/pkg/types"
)

// ConsistencyError reports an internal-invariant violation found while
// assembling the record. It marks a programming error, not bad input:
// the run fails atomically, but concurrent runs are unaffected.
type ConsistencyError struct {
	Reason string
}

func (e *ConsistencyError) Error() string {
	return "internal consistency: " + e.Reason
}

// Run executes the full pipeline over doc and returns the completed
// record. An empty document yields a valid empty record — nothing to
// analyze, not an error (R2.1). A run either completes or fails before
// producing a record; partial records are never returned.
func Run(doc types.Document, rs *rules.Compiled, cfg types.AnalysisConfig) (*types.AnalysisRecord, error) {
	if doc.Language == "" {
		doc.Language = types.LangUnknown
	}
	if doc.ContractType == "" {
		doc.ContractType, doc.ContractTypeConfidence = classify.GuessContractType(doc.Text, rs)
	}

	record := &types.AnalysisRecord{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Document:  doc,
		Contract:  types.ContractRiskScore{Level: types.RiskLow},
	}

	if strings.TrimSpace(doc.Text) == "" {
		log.Debug().Str("run_id", record.RunID).Msg("empty document, nothing to analyze")
		return record, nil
	}

	segments := segment.Split(doc.Text, cfg)
	log.Debug().Str("run_id", record.RunID).Int("segments", len(segments)).Msg("segmented document")

	for _, seg := range segments {
		clause := classify.Classify(seg, rs, doc.Language)
		record.Clauses = append(record.Clauses, clause)
		record.Roles = append(record.Roles, role.Tag(clause, rs)...)
	}

	for i, clause := range record.Clauses {
		findings := risk.Detect(clause, record.ClauseRoles(i), rs, cfg)
		record.Findings = append(record.Findings, findings...)
	}

	record.ClauseScores = risk.ScoreClauses(record.Clauses, record.Findings)
	record.Contract = risk.ScoreContract(record.ClauseScores)
	record.Entities = entity.Extract(doc.Text)

	if err := verify(record); err != nil {
		return nil, err
	}

	log.Debug().
		Str("run_id", record.RunID).
		Int("clauses", len(record.Clauses)).
		Int("findings", len(record.Findings)).
		Str("risk", string(record.Contract.Level)).
		Msg("analysis complete")

	return record, nil
}

// verify checks the record's cross-reference invariants before it leaves
// the builder. Violations are internal-consistency errors (R3.1).
func verify(r *types.AnalysisRecord) error {
	valid := make(map[int]bool, len(r.Clauses))
	prevEnd := -1
	for i, c := range r.Clauses {
		if c.Index != i {
			return &ConsistencyError{Reason: fmt.Sprintf("clause %d has index %d", i, c.Index)}
		}
		if c.Start < 0 || c.End > len(r.Document.Text) || c.Start >= c.End {
			return &ConsistencyError{Reason: fmt.Sprintf("clause %d has invalid span [%d,%d)", i, c.Start, c.End)}
		}
		if c.Start <= prevEnd {
			return &ConsistencyError{Reason: fmt.Sprintf("clause %d overlaps its predecessor", i)}
		}
		prevEnd = c.End - 1
		valid[c.Index] = true
	}

	for _, t := range r.Roles {
		if !valid[t.ClauseIndex] {
			return &ConsistencyError{Reason: fmt.Sprintf("role tag references missing clause %d", t.ClauseIndex)}
		}
	}

	perCategory := make(map[string]bool)
	for _, f := range r.Findings {
		if !valid[f.ClauseIndex] {
			return &ConsistencyError{Reason: fmt.Sprintf("finding %s references missing clause %d", f.RuleID, f.ClauseIndex)}
		}
		key := fmt.Sprintf("%d/%s", f.ClauseIndex, f.Category)
		if perCategory[key] {
			return &ConsistencyError{Reason: fmt.Sprintf("clause %d has multiple %s findings", f.ClauseIndex, f.Category)}
		}
		perCategory[key] = true
	}

	if len(r.ClauseScores) != len(r.Clauses) {
		return &ConsistencyError{Reason: fmt.Sprintf("%d scores for %d clauses", len(r.ClauseScores), len(r.Clauses))}
	}
	maxLevel := types.RiskLow
	for i, s := range r.ClauseScores {
		if s.ClauseIndex != i {
			return &ConsistencyError{Reason: fmt.Sprintf("score %d references clause %d", i, s.ClauseIndex)}
		}
		if s.Level.Rank() > maxLevel.Rank() {
			maxLevel = s.Level
		}
	}

	if r.Contract.Level.Rank() < maxLevel.Rank() {
		return &ConsistencyError{Reason: fmt.Sprintf("contract level %s below clause maximum %s", r.Contract.Level, maxLevel)}
	}

	return nil
}
