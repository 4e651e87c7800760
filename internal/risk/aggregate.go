// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package risk

import (
	"sort"

	"github.com/meshintel/contract-engine/pkg/types"
)

// ScoreClause derives the clause risk level from its findings: any high
// finding makes the clause high, else any medium makes it medium, else
// low — with or without findings. Clauses are never risk-free in the
// output, only low (R1.1-R1.3).
func ScoreClause(clauseIndex int, findings []types.RiskFinding) types.ClauseRiskScore {
	score := types.ClauseRiskScore{
		ClauseIndex: clauseIndex,
		Level:       types.RiskLow,
		Findings:    len(findings),
	}

	for _, f := range findings {
		level := severityLevel(f.Severity)
		if level.Rank() > score.Level.Rank() {
			score.Level = level
		}
	}

	return score
}

// ScoreClauses scores every clause in sequence order. Findings must
// reference clause indices present in clauses; the record builder
// enforces that invariant.
func ScoreClauses(clauses []types.ClassifiedClause, findings []types.RiskFinding) []types.ClauseRiskScore {
	byClause := make(map[int][]types.RiskFinding)
	for _, f := range findings {
		byClause[f.ClauseIndex] = append(byClause[f.ClauseIndex], f)
	}

	scores := make([]types.ClauseRiskScore, 0, len(clauses))
	for _, c := range clauses {
		scores = append(scores, ScoreClause(c.Index, byClause[c.Index]))
	}
	return scores
}

// ScoreContract aggregates clause scores into the contract verdict. The
// contract level is the maximum clause level (monotonicity, R2.1);
// contributors are the clauses with findings, ranked by level descending
// then clause index ascending as the stable secondary key (R2.2-R2.3).
func ScoreContract(scores []types.ClauseRiskScore) types.ContractRiskScore {
	contract := types.ContractRiskScore{Level: types.RiskLow}

	for _, s := range scores {
		if s.Level.Rank() > contract.Level.Rank() {
			contract.Level = s.Level
		}
		if s.Findings > 0 {
			contract.Contributors = append(contract.Contributors, s)
		}
	}

	sort.SliceStable(contract.Contributors, func(i, j int) bool {
		a, b := contract.Contributors[i], contract.Contributors[j]
		if a.Level.Rank() != b.Level.Rank() {
			return a.Level.Rank() > b.Level.Rank()
		}
		return a.ClauseIndex < b.ClauseIndex
	})

	return contract
}

// severityLevel maps a finding severity onto the risk-level scale.
func severityLevel(s types.Severity) types.RiskLevel {
	switch s {
	case types.SeverityHigh:
		return types.RiskHigh
	case types.SeverityMedium:
		return types.RiskMedium
	}
	return types.RiskLow
}
