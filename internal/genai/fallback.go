// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package genai

import (
	"context"
	"fmt"
	"strings"

	"github.com/meshintel/contract-engine/pkg/types"
)

// Fallback is the deterministic annotator used when the GenAI
// collaborator is disabled or unreachable. Its output derives entirely
// from the clause's findings, so fallback mode is as reproducible as the
// rest of the core.
type Fallback struct{}

// Annotate never fails: it composes the explanation from the clause type
// and findings, and suggests renegotiation only for clauses that carry a
// medium or high finding.
func (Fallback) Annotate(_ context.Context, clause types.ClassifiedClause, findings []types.RiskFinding) (types.Annotation, error) {
	a := types.Annotation{
		Explanation: ExplainClause(clause, findings),
	}
	for _, f := range findings {
		if f.Severity != types.SeverityLow {
			a.Suggestion = "Consider revising this clause to limit liability, add notice periods, and ensure obligations are mutual."
			break
		}
	}
	return a, nil
}

// ExplainClause builds the deterministic risk explanation for a clause
// from its findings. Every clause yields a non-empty explanation even
// with zero findings, so a record renders completely with no overlay at
// all (R2.2).
func ExplainClause(clause types.ClassifiedClause, findings []types.RiskFinding) string {
	if len(findings) == 0 {
		return fmt.Sprintf("This %s clause matched no known risk patterns and is assessed low risk.", clause.Type)
	}

	parts := make([]string, 0, len(findings))
	for _, f := range findings {
		parts = append(parts, ExplainFinding(f))
	}
	return strings.Join(parts, " ")
}

// ExplainFinding renders one finding as category, severity, and evidence.
func ExplainFinding(f types.RiskFinding) string {
	return fmt.Sprintf("%s risk (%s severity): matched %q.", categoryLabel(f.Category), f.Severity, f.Evidence)
}

func categoryLabel(c types.RiskCategory) string {
	switch c {
	case types.RiskPenalty:
		return "Penalty"
	case types.RiskIndemnity:
		return "Indemnity"
	case types.RiskUnilateralTerm:
		return "Unilateral termination"
	case types.RiskArbitrationJuris:
		return "Arbitration/jurisdiction"
	case types.RiskNonCompete:
		return "Non-compete"
	case types.RiskAutoRenewal:
		return "Automatic renewal"
	}
	return string(c)
}
