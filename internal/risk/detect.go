// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package risk evaluates classified clauses against the six risk-pattern
// categories and aggregates findings into clause and contract risk
// levels. Detection is stateless per (clause, category) pair: each
// category's rule set is self-contained, so evaluation order never
// affects the outcome.
// Implements: prd004-risk-detection (R1-R3), prd005-risk-aggregation (R1-R2).
package risk

import (
	"strings"

	"github.com/meshintel/contract-engine/internal/rules"
	"github.com/meshintel/contract-engine/pkg/types"
)

const defaultEvidenceContext = 60

// Detect evaluates every risk category against the clause and returns at
// most one finding per category — the highest-severity rule match wins
// within a category. Clauses with no trigger in a category produce no
// finding there; absence is never recorded (R2.4).
func Detect(clause types.ClassifiedClause, tags []types.RoleTag, rs *rules.Compiled, cfg types.AnalysisConfig) []types.RiskFinding {
	lower := strings.ToLower(clause.Text)
	ctx := cfg.EvidenceContext
	if ctx <= 0 {
		ctx = defaultEvidenceContext
	}

	var findings []types.RiskFinding
	for _, cat := range types.RiskCategories {
		if f, ok := detectCategory(clause, tags, lower, rs, cat, ctx); ok {
			findings = append(findings, f)
		}
	}
	return findings
}

func detectCategory(clause types.ClassifiedClause, tags []types.RoleTag, lower string, rs *rules.Compiled, cat types.RiskCategory, ctx int) (types.RiskFinding, bool) {
	var best types.RiskFinding
	found := false

	for _, rule := range rs.Risks[cat] {
		start, end, ok := firstMatch(clause.Text, lower, rule)
		if !ok {
			continue
		}
		if rule.MutualException && rs.HasMutualLanguage(lower) {
			continue
		}

		sev := effectiveSeverity(rule, clause, tags, lower, rs)

		if !found || sev.Rank() > best.Severity.Rank() {
			best = types.RiskFinding{
				ClauseIndex: clause.Index,
				Category:    cat,
				Severity:    sev,
				RuleID:      rule.ID,
				Evidence:    evidence(clause.Text, start, end, ctx),
			}
			found = true
		}
	}

	return best, found
}

// effectiveSeverity applies the rule's modifiers to its base severity.
// Escalators and asymmetry raise to high; a notice period lowers an
// unescalated match to low.
func effectiveSeverity(rule rules.CompiledRisk, clause types.ClassifiedClause, tags []types.RoleTag, lower string, rs *rules.Compiled) types.Severity {
	sev := rule.Severity

	escalated := false
	for _, esc := range rule.Escalators {
		if strings.Contains(lower, strings.ToLower(esc)) {
			sev = types.SeverityHigh
			escalated = true
			break
		}
	}

	if rule.AsymmetryEscalation && !escalated {
		if hasObligation(tags) && !rs.HasMutualLanguage(lower) {
			sev = types.SeverityHigh
			escalated = true
		}
	}

	if rule.NoticeException && !escalated && rs.HasNoticePeriod(clause.Text) {
		sev = types.SeverityLow
	}

	return sev
}

// firstMatch locates the earliest trigger or pattern occurrence in the
// clause. Triggers are checked in rule order; the first hit wins so the
// evidence span is reproducible.
func firstMatch(text, lower string, rule rules.CompiledRisk) (int, int, bool) {
	for _, trig := range rule.Triggers {
		t := strings.ToLower(trig)
		if idx := strings.Index(lower, t); idx >= 0 {
			return idx, idx + len(t), true
		}
	}
	for _, re := range rule.Res {
		if loc := re.FindStringIndex(text); loc != nil {
			return loc[0], loc[1], true
		}
	}
	return 0, 0, false
}

func hasObligation(tags []types.RoleTag) bool {
	for _, t := range tags {
		if t.Kind == types.RoleObligation {
			return true
		}
	}
	return false
}

// evidence returns the matched span with up to ctx characters of
// surrounding text on each side, trimmed of partial whitespace.
func evidence(text string, start, end, ctx int) string {
	lo := start - ctx
	if lo < 0 {
		lo = 0
	}
	hi := end + ctx
	if hi > len(text) {
		hi = len(text)
	}
	return strings.TrimSpace(text[lo:hi])
}
