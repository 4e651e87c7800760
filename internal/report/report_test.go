package report

import (
	"strings"
	"testing"
	"time"

	"github.com/meshintel/contract-engine/pkg/types"
)

func testRecord() *types.AnalysisRecord {
	text := "Landlord may terminate this lease at any time without notice."
	return &types.AnalysisRecord{
		RunID:     "run-report",
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Document: types.Document{
			Name:                   "lease.txt",
			Text:                   text,
			Language:               types.LangEnglish,
			ContractType:           types.ContractLease,
			ContractTypeConfidence: 0.67,
		},
		Clauses: []types.ClassifiedClause{
			{
				ClauseSegment: types.ClauseSegment{Index: 0, Heading: "2. Termination", Text: text, Start: 0, End: len(text)},
				Type:          types.ClauseTermination,
				Confidence:    0.8,
			},
		},
		Roles: []types.RoleTag{
			{ClauseIndex: 0, Sentence: 0, Kind: types.RoleRight, Cue: "may"},
		},
		Findings: []types.RiskFinding{
			{ClauseIndex: 0, Category: types.RiskUnilateralTerm, Severity: types.SeverityHigh, RuleID: "risk-unilateral-termination", Evidence: "terminate this lease at any time"},
		},
		ClauseScores: []types.ClauseRiskScore{
			{ClauseIndex: 0, Level: types.RiskHigh, Findings: 1},
		},
		Contract: types.ContractRiskScore{
			Level:        types.RiskHigh,
			Contributors: []types.ClauseRiskScore{{ClauseIndex: 0, Level: types.RiskHigh, Findings: 1}},
		},
		Entities: types.Entities{
			Amounts:       []string{"$2,000"},
			Jurisdictions: []string{"Mumbai"},
		},
	}
}

func render(t *testing.T, rec *types.AnalysisRecord, overlay types.Overlay) string {
	t.Helper()
	var sb strings.Builder
	if err := Render(&sb, rec, overlay); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return sb.String()
}

// With no overlay the report is still complete: header, clause block with
// its deterministic explanation, ranked contributors, disclaimer.
func TestRenderFallback(t *testing.T) {
	out := render(t, testRecord(), nil)

	for _, want := range []string{
		"run-report",
		"lease.txt",
		"Contract type: lease (confidence 0.67)",
		"Overall risk:  HIGH",
		"Amounts:       $2,000",
		"Jurisdiction:  Mumbai",
		"2. Termination [termination, risk HIGH]",
		`Roles: right ("may")`,
		"Unilateral termination risk (high severity)",
		"Explanation:",
		"1. clause 1 — high (1 finding(s))",
		"Not legal advice.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\n%s", want, out)
		}
	}
}

func TestRenderOverlay(t *testing.T) {
	overlay := types.Overlay{
		0: {Explanation: "Plain-language explanation from the annotator.", Suggestion: "Negotiate a notice period."},
	}
	out := render(t, testRecord(), overlay)

	if !strings.Contains(out, "Plain-language explanation from the annotator.") {
		t.Errorf("overlay explanation not rendered:\n%s", out)
	}
	if !strings.Contains(out, "Suggestion: Negotiate a notice period.") {
		t.Errorf("overlay suggestion not rendered:\n%s", out)
	}
	// The deterministic finding line still appears alongside the overlay.
	if !strings.Contains(out, "Unilateral termination risk") {
		t.Errorf("finding line missing:\n%s", out)
	}
}

func TestRenderUntitledClause(t *testing.T) {
	rec := testRecord()
	rec.Clauses[0].Heading = ""
	out := render(t, rec, nil)

	if !strings.Contains(out, "Clause 1 [termination, risk HIGH]") {
		t.Errorf("untitled clause not numbered:\n%s", out)
	}
}

func TestRenderEmptyRecord(t *testing.T) {
	rec := &types.AnalysisRecord{
		RunID:     "run-empty",
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Document:  types.Document{Name: "blank.txt", Language: types.LangUnknown, ContractType: types.ContractUnknown},
		Contract:  types.ContractRiskScore{Level: types.RiskLow},
	}
	out := render(t, rec, nil)

	if !strings.Contains(out, "Nothing to analyze") {
		t.Errorf("empty record message missing:\n%s", out)
	}
	if strings.Contains(out, "Clauses") {
		t.Errorf("empty record must not render a clause section:\n%s", out)
	}
}
