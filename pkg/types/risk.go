// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RiskCategory is one of the six adverse-pattern categories the detector
// evaluates per clause. Per prd004-risk-detection R1.1.
type RiskCategory string

const (
	RiskPenalty          RiskCategory = "penalty"
	RiskIndemnity        RiskCategory = "indemnity"
	RiskUnilateralTerm   RiskCategory = "unilateral-termination"
	RiskArbitrationJuris RiskCategory = "arbitration-jurisdiction"
	RiskNonCompete       RiskCategory = "non-compete"
	RiskAutoRenewal      RiskCategory = "auto-renewal"
)

// RiskCategories lists all categories in their fixed evaluation order.
// Detection is independent per category, so the order never affects
// results; it only fixes output ordering.
var RiskCategories = []RiskCategory{
	RiskPenalty,
	RiskIndemnity,
	RiskUnilateralTerm,
	RiskArbitrationJuris,
	RiskNonCompete,
	RiskAutoRenewal,
}

// Severity is the ordinal contribution of a single risk finding.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Rank returns the ordinal position of the severity: low=0, medium=1,
// high=2. Unknown values rank below low.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 0
	case SeverityMedium:
		return 1
	case SeverityHigh:
		return 2
	}
	return -1
}

// RiskFinding is evidence that a clause matched one risk-pattern
// category. At most one finding exists per (clause, category) pair; when
// multiple rules in a category match, the highest-severity rule wins.
// Per prd004-risk-detection R2.1-R2.4.
type RiskFinding struct {
	// ClauseIndex references the clause that produced the finding.
	ClauseIndex int `json:"clause_index" yaml:"clause_index"`

	// Category is the risk-pattern category.
	Category RiskCategory `json:"category" yaml:"category"`

	// Severity is the finding's ordinal contribution.
	Severity Severity `json:"severity" yaml:"severity"`

	// RuleID identifies the pattern rule that matched.
	RuleID string `json:"rule_id" yaml:"rule_id"`

	// Evidence is the text span that triggered the finding.
	Evidence string `json:"evidence" yaml:"evidence"`
}

// RiskLevel is the derived risk classification for a clause or contract.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Rank returns the ordinal position of the level: low=0, medium=1, high=2.
func (l RiskLevel) Rank() int {
	switch l {
	case RiskLow:
		return 0
	case RiskMedium:
		return 1
	case RiskHigh:
		return 2
	}
	return -1
}

// ClauseRiskScore is the deterministic per-clause risk level derived from
// the clause's findings. Clauses with no findings score low; they are
// never risk-free. Per prd005-risk-aggregation R1.1-R1.3.
type ClauseRiskScore struct {
	ClauseIndex int       `json:"clause_index" yaml:"clause_index"`
	Level       RiskLevel `json:"level" yaml:"level"`

	// Findings is the number of findings attached to the clause.
	Findings int `json:"findings" yaml:"findings"`
}

// ContractRiskScore is the whole-document risk verdict. Level is never
// lower than the highest clause score (monotonicity). Contributors ranks
// clauses by level descending, then clause index ascending as the stable
// secondary key. Per prd005-risk-aggregation R2.1-R2.3.
type ContractRiskScore struct {
	Level RiskLevel `json:"level" yaml:"level"`

	// Contributors is the ranked list of clause indices driving the verdict.
	Contributors []ClauseRiskScore `json:"contributors" yaml:"contributors"`
}
