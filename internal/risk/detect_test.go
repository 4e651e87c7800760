package risk

import (
	"strings"
	"testing"

	"github.com/meshintel/contract-engine/internal/rules"
	"github.com/meshintel/contract-engine/pkg/types"
)

func clause(idx int, text string) types.ClassifiedClause {
	return types.ClassifiedClause{
		ClauseSegment: types.ClauseSegment{Index: idx, Text: text, Start: 0, End: len(text)},
		Type:          types.ClauseOther,
	}
}

func obligation(idx int) []types.RoleTag {
	return []types.RoleTag{{ClauseIndex: idx, Kind: types.RoleObligation, Cue: "shall"}}
}

func detectOne(t *testing.T, text string, tags []types.RoleTag, cat types.RiskCategory) types.RiskFinding {
	t.Helper()
	findings := Detect(clause(0, text), tags, rules.Default(), types.AnalysisConfig{})
	for _, f := range findings {
		if f.Category == cat {
			return f
		}
	}
	t.Fatalf("no %s finding in %v", cat, findings)
	return types.RiskFinding{}
}

func TestDetectPenalty(t *testing.T) {
	f := detectOne(t, "A penalty of one month's rent applies to late payment.", nil, types.RiskPenalty)
	if f.Severity != types.SeverityMedium {
		t.Errorf("Severity = %s, want %s", f.Severity, types.SeverityMedium)
	}
}

// Liquidated damages outranks the basic penalty rule within the category:
// one finding, the higher severity.
func TestDetectPenaltyLiquidatedWins(t *testing.T) {
	text := "The Vendor shall pay liquidated damages and a penalty for each week of delay."
	findings := Detect(clause(0, text), nil, rules.Default(), types.AnalysisConfig{})

	var penalty []types.RiskFinding
	for _, f := range findings {
		if f.Category == types.RiskPenalty {
			penalty = append(penalty, f)
		}
	}
	if len(penalty) != 1 {
		t.Fatalf("got %d penalty findings, want 1", len(penalty))
	}
	if penalty[0].Severity != types.SeverityHigh {
		t.Errorf("Severity = %s, want %s", penalty[0].Severity, types.SeverityHigh)
	}
	if penalty[0].RuleID != "risk-penalty-liquidated" {
		t.Errorf("RuleID = %s, want risk-penalty-liquidated", penalty[0].RuleID)
	}
}

func TestDetectUnilateralTermination(t *testing.T) {
	text := "Landlord may terminate this lease at any time without cause and without notice."
	f := detectOne(t, text, nil, types.RiskUnilateralTerm)
	if f.Severity != types.SeverityHigh {
		t.Errorf("Severity = %s, want %s (escalator present)", f.Severity, types.SeverityHigh)
	}
	if f.Evidence == "" {
		t.Error("Evidence must not be empty")
	}
}

// Mutual termination language suppresses the unilateral-termination
// finding entirely.
func TestDetectTerminationMutualSuppressed(t *testing.T) {
	text := "Either party may terminate this agreement with 30 days written notice."
	findings := Detect(clause(0, text), nil, rules.Default(), types.AnalysisConfig{})
	for _, f := range findings {
		if f.Category == types.RiskUnilateralTerm {
			t.Fatalf("unexpected unilateral-termination finding: %+v", f)
		}
	}
}

// A unilateral clause with a concrete notice period and no escalator drops
// to low severity.
func TestDetectTerminationNoticeLowersSeverity(t *testing.T) {
	text := "The Employer may terminate employment with 60 days prior written notice."
	f := detectOne(t, text, nil, types.RiskUnilateralTerm)
	if f.Severity != types.SeverityLow {
		t.Errorf("Severity = %s, want %s", f.Severity, types.SeverityLow)
	}
}

// An indemnity obligation with no mutual language escalates to high; the
// mutual variant stays at the base severity.
func TestDetectIndemnityAsymmetry(t *testing.T) {
	oneSided := "The Vendor shall indemnify and hold harmless the Client against all claims."
	f := detectOne(t, oneSided, obligation(0), types.RiskIndemnity)
	if f.Severity != types.SeverityHigh {
		t.Errorf("one-sided indemnity: Severity = %s, want %s", f.Severity, types.SeverityHigh)
	}

	mutual := "Each party shall indemnify the other against third-party claims."
	f = detectOne(t, mutual, obligation(0), types.RiskIndemnity)
	if f.Severity != types.SeverityMedium {
		t.Errorf("mutual indemnity: Severity = %s, want %s", f.Severity, types.SeverityMedium)
	}
}

func TestDetectArbitrationAndJurisdiction(t *testing.T) {
	// Plain arbitration is low; an exclusive-jurisdiction lock is medium
	// and wins the category.
	f := detectOne(t, "Disputes shall be resolved by arbitration in Mumbai.", nil, types.RiskArbitrationJuris)
	if f.Severity != types.SeverityLow {
		t.Errorf("arbitration: Severity = %s, want %s", f.Severity, types.SeverityLow)
	}

	f = detectOne(t, "The parties submit to the exclusive jurisdiction of the courts of Delhi, waiving arbitration.", nil, types.RiskArbitrationJuris)
	if f.Severity != types.SeverityMedium {
		t.Errorf("jurisdiction lock: Severity = %s, want %s", f.Severity, types.SeverityMedium)
	}
	if f.RuleID != "risk-jurisdiction-lock" {
		t.Errorf("RuleID = %s, want risk-jurisdiction-lock", f.RuleID)
	}
}

func TestDetectNonCompeteEscalation(t *testing.T) {
	f := detectOne(t, "The Employee shall not engage in any competing business for one year.", nil, types.RiskNonCompete)
	if f.Severity != types.SeverityMedium {
		t.Errorf("bounded non-compete: Severity = %s, want %s", f.Severity, types.SeverityMedium)
	}

	f = detectOne(t, "The Employee shall not operate a competing business anywhere worldwide.", nil, types.RiskNonCompete)
	if f.Severity != types.SeverityHigh {
		t.Errorf("unbounded non-compete: Severity = %s, want %s", f.Severity, types.SeverityHigh)
	}
}

func TestDetectAutoRenewal(t *testing.T) {
	f := detectOne(t, "This agreement shall automatically renew for successive one-year terms.", nil, types.RiskAutoRenewal)
	if f.Severity != types.SeverityMedium {
		t.Errorf("Severity = %s, want %s", f.Severity, types.SeverityMedium)
	}

	withNotice := "This agreement shall automatically renew unless cancelled with 90 days written notice."
	f = detectOne(t, withNotice, nil, types.RiskAutoRenewal)
	if f.Severity != types.SeverityLow {
		t.Errorf("with opt-out notice: Severity = %s, want %s", f.Severity, types.SeverityLow)
	}
}

// Sparsity: at most one finding per category, and categories without a
// trigger stay silent.
func TestDetectSparsity(t *testing.T) {
	text := "The Tenant shall pay rent monthly; a penalty applies to late payment, and the lease shall automatically renew."
	findings := Detect(clause(0, text), nil, rules.Default(), types.AnalysisConfig{})

	seen := map[types.RiskCategory]int{}
	for _, f := range findings {
		seen[f.Category]++
	}
	for cat, n := range seen {
		if n > 1 {
			t.Errorf("category %s has %d findings, want at most 1", cat, n)
		}
	}
	if len(findings) != 2 {
		t.Errorf("got %d findings %v, want penalty and auto-renewal only", len(findings), findings)
	}
}

func TestDetectNoFindings(t *testing.T) {
	text := "The parties sign this agreement in duplicate on the date written above."
	if findings := Detect(clause(0, text), nil, rules.Default(), types.AnalysisConfig{}); len(findings) != 0 {
		t.Errorf("got %d findings, want 0: %v", len(findings), findings)
	}
}

func TestEvidenceWindow(t *testing.T) {
	pad := strings.Repeat("x", 200)
	text := pad + " liquidated damages " + pad
	f := detectOne(t, text, nil, types.RiskPenalty)

	if !strings.Contains(f.Evidence, "liquidated damages") {
		t.Fatalf("evidence %q missing the matched trigger", f.Evidence)
	}
	// The matched trigger plus at most 60 characters of context per side.
	if len(f.Evidence) > len("liquidated damages")+2+2*60 {
		t.Errorf("evidence too long: %d chars", len(f.Evidence))
	}
}
