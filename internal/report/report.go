// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders an AnalysisRecord as a plain-text report for
// the reporting collaborator. Rendering performs no risk computation:
// every number and label comes from the record, and explanations fall
// back to the deterministic finding text wherever the GenAI overlay has
// no entry. Implements: prd009-reporting (R1-R2).
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/meshintel/contract-engine/internal/genai"
	"github.com/meshintel/contract-engine/pkg/types"
)

// Render writes the report for rec to w. A nil or empty overlay is
// valid: the report is complete in fallback mode (R2.1).
func Render(w io.Writer, rec *types.AnalysisRecord, overlay types.Overlay) error {
	fmt.Fprintln(w, "Contract Risk Analysis Report")
	fmt.Fprintln(w, "=============================")
	fmt.Fprintf(w, "Run:           %s\n", rec.RunID)
	fmt.Fprintf(w, "Created:       %s\n", rec.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	if rec.Document.Name != "" {
		fmt.Fprintf(w, "Document:      %s\n", rec.Document.Name)
	}
	fmt.Fprintf(w, "Contract type: %s (confidence %.2f)\n", rec.Document.ContractType, rec.Document.ContractTypeConfidence)
	fmt.Fprintf(w, "Language:      %s\n", rec.Document.Language)
	fmt.Fprintf(w, "Overall risk:  %s\n", strings.ToUpper(string(rec.Contract.Level)))

	writeEntities(w, rec.Entities)

	if rec.Empty() {
		fmt.Fprintln(w, "\nNothing to analyze: the document contained no clause text.")
		return nil
	}

	fmt.Fprintln(w, "\nClauses")
	fmt.Fprintln(w, "-------")
	for i, clause := range rec.Clauses {
		writeClause(w, rec, clause, i, overlay)
	}

	if len(rec.Contract.Contributors) > 0 {
		fmt.Fprintln(w, "\nRisk contributors (ranked)")
		fmt.Fprintln(w, "--------------------------")
		for rank, c := range rec.Contract.Contributors {
			fmt.Fprintf(w, "%d. clause %d — %s (%d finding(s))\n", rank+1, c.ClauseIndex+1, c.Level, c.Findings)
		}
	}

	fmt.Fprintln(w, "\nRisk insights only. Not legal advice.")
	return nil
}

func writeClause(w io.Writer, rec *types.AnalysisRecord, clause types.ClassifiedClause, i int, overlay types.Overlay) {
	score := rec.ClauseScores[i]

	title := clause.Heading
	if title == "" {
		title = fmt.Sprintf("Clause %d", i+1)
	}
	fmt.Fprintf(w, "\n%s [%s, risk %s]\n", title, clause.Type, strings.ToUpper(string(score.Level)))

	if roles := rec.ClauseRoles(i); len(roles) > 0 {
		kinds := make([]string, 0, len(roles))
		for _, r := range roles {
			kinds = append(kinds, fmt.Sprintf("%s (%q)", r.Kind, r.Cue))
		}
		fmt.Fprintf(w, "  Roles: %s\n", strings.Join(kinds, ", "))
	}

	findings := rec.ClauseFindings(i)
	for _, f := range findings {
		fmt.Fprintf(w, "  Finding: %s\n", genai.ExplainFinding(f))
	}

	if a, ok := overlay[i]; ok && a.Explanation != "" {
		fmt.Fprintf(w, "  Explanation: %s\n", a.Explanation)
		if a.Suggestion != "" {
			fmt.Fprintf(w, "  Suggestion: %s\n", a.Suggestion)
		}
		return
	}

	fmt.Fprintf(w, "  Explanation: %s\n", genai.ExplainClause(clause, findings))
}

func writeEntities(w io.Writer, e types.Entities) {
	if len(e.Parties) > 0 {
		fmt.Fprintf(w, "Parties:       %s\n", strings.Join(e.Parties, "; "))
	}
	if len(e.Dates) > 0 {
		fmt.Fprintf(w, "Dates:         %s\n", strings.Join(e.Dates, "; "))
	}
	if len(e.Amounts) > 0 {
		fmt.Fprintf(w, "Amounts:       %s\n", strings.Join(e.Amounts, "; "))
	}
	if len(e.Jurisdictions) > 0 {
		fmt.Fprintf(w, "Jurisdiction:  %s\n", strings.Join(e.Jurisdictions, "; "))
	}
}
