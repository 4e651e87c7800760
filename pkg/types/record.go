// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// AnalysisRecord is the complete, immutable output of one analysis run.
// It is the sole artifact passed to reporting, audit logging, and the
// optional GenAI overlay. A record is created once per run and never
// mutated afterward; GenAI annotations attach as a separate Overlay
// keyed by clause index. Per prd006-analysis-record R1.1-R1.4.
type AnalysisRecord struct {
	// RunID uniquely identifies the analysis run.
	RunID string `json:"run_id" yaml:"run_id"`

	// CreatedAt is the UTC creation timestamp.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// Document holds the input metadata (text, language, contract type).
	Document Document `json:"document" yaml:"document"`

	// Clauses is the ordered classified clause sequence.
	Clauses []ClassifiedClause `json:"clauses" yaml:"clauses"`

	// Roles holds every role tag, ordered by clause index then sentence.
	Roles []RoleTag `json:"roles" yaml:"roles"`

	// Findings holds every risk finding, ordered by clause index then
	// category order.
	Findings []RiskFinding `json:"findings" yaml:"findings"`

	// ClauseScores holds one score per clause, in clause order.
	ClauseScores []ClauseRiskScore `json:"clause_scores" yaml:"clause_scores"`

	// Contract is the aggregated whole-document verdict.
	Contract ContractRiskScore `json:"contract" yaml:"contract"`

	// Entities holds parties, dates, amounts, and jurisdictions found
	// in the document text.
	Entities Entities `json:"entities" yaml:"entities"`
}

// Empty reports whether the record came from a document with nothing to
// analyze. Per prd006-analysis-record R2.1: empty input yields a valid
// empty record, not an error.
func (r *AnalysisRecord) Empty() bool {
	return len(r.Clauses) == 0
}

// ClauseRoles returns the role tags attached to the clause at index i.
func (r *AnalysisRecord) ClauseRoles(i int) []RoleTag {
	var tags []RoleTag
	for _, t := range r.Roles {
		if t.ClauseIndex == i {
			tags = append(tags, t)
		}
	}
	return tags
}

// ClauseFindings returns the risk findings attached to the clause at index i.
func (r *AnalysisRecord) ClauseFindings(i int) []RiskFinding {
	var fs []RiskFinding
	for _, f := range r.Findings {
		if f.ClauseIndex == i {
			fs = append(fs, f)
		}
	}
	return fs
}

// Annotation is the optional GenAI commentary for one clause.
// Per prd008-genai-overlay R1.2.
type Annotation struct {
	// Explanation is the plain-language clause explanation.
	Explanation string `json:"explanation" yaml:"explanation"`

	// Suggestion is the renegotiation suggestion. Empty for low-risk
	// clauses, which need no alternative wording.
	Suggestion string `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// Overlay maps clause indices to GenAI annotations. The AnalysisRecord
// remains valid and complete with the overlay absent or partially
// populated; reporting falls back to deterministic explanations built
// from the findings. Per prd008-genai-overlay R1.1, R2.1.
type Overlay map[int]Annotation
