// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify assigns clause-type labels and the whole-document
// contract-type guess using the declarative rule sets. Classification is
// a pure function of text and rules: identical input always yields the
// identical label.
// Implements: prd002-classification (R1, R2, R3, R4).
package classify

import (
	"strings"

	"github.com/meshintel/contract-engine/internal/rules"
	"github.com/meshintel/contract-engine/pkg/types"
)

// otherConfidence is the confidence assigned when no type rule fires.
const otherConfidence = 0.5

// Classify labels a clause segment with the highest-precedence matching
// type rule. All firing rule IDs are recorded in precedence order; no
// match falls back to ClauseOther. A non-English document halves the
// confidence instead of switching to a parallel rule set (R3.1).
func Classify(seg types.ClauseSegment, rs *rules.Compiled, lang types.Language) types.ClassifiedClause {
	lower := strings.ToLower(seg.Text)

	clause := types.ClassifiedClause{
		ClauseSegment: seg,
		Type:          types.ClauseOther,
		Confidence:    otherConfidence,
	}

	for _, rule := range rs.ClauseTypes {
		if !ruleFires(lower, rule) {
			continue
		}
		if len(clause.MatchedRules) == 0 {
			clause.Type = rule.Type
			clause.Confidence = rule.Confidence
		}
		clause.MatchedRules = append(clause.MatchedRules, rule.ID)
	}

	if lang != types.LangEnglish {
		clause.Confidence /= 2
	}

	return clause
}

// ruleFires reports whether any trigger appears in the lowercased text,
// honoring the rule's proximity constraint when present.
func ruleFires(lower string, rule rules.TypeRule) bool {
	for _, trig := range rule.Triggers {
		idx := strings.Index(lower, strings.ToLower(trig))
		if idx < 0 {
			continue
		}
		if len(rule.Near) == 0 {
			return true
		}
		if nearMatch(lower, idx, len(trig), rule.Near, rule.Window) {
			return true
		}
	}
	return false
}

// nearMatch reports whether any proximity keyword occurs within window
// characters of the trigger match at [idx, idx+trigLen).
func nearMatch(lower string, idx, trigLen int, near []string, window int) bool {
	lo := idx - window
	if lo < 0 {
		lo = 0
	}
	hi := idx + trigLen + window
	if hi > len(lower) {
		hi = len(lower)
	}
	region := lower[lo:hi]
	for _, kw := range near {
		if strings.Contains(region, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// GuessContractType scores the whole document against the contract-type
// keyword sets and returns the best type with its confidence. Confidence
// is bestScore/(totalScore+1); a document matching no keywords is
// ContractUnknown with confidence 0. Ties resolve to the earlier rule in
// the set so the guess is reproducible.
func GuessContractType(text string, rs *rules.Compiled) (types.ContractType, float64) {
	lower := strings.ToLower(text)

	best := types.ContractUnknown
	bestScore, total := 0, 0

	for _, ct := range rs.ContractTypes {
		score := 0
		for _, kw := range ct.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				score++
			}
		}
		total += score
		if score > bestScore {
			bestScore = score
			best = ct.Type
		}
	}

	if bestScore == 0 {
		return types.ContractUnknown, 0
	}
	return best, float64(bestScore) / float64(total+1)
}
