// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package role tags clause sentences with the modal role they express:
// obligation, right, or prohibition. Tagging is additive — one tag per
// sentence where a cue matched — and negation overrides base polarity
// for every cue category ("may not terminate" is a prohibition, never a
// right).
// Implements: prd003-role-tagging (R1-R3).
package role

import (
	"regexp"
	"strings"

	"github.com/meshintel/contract-engine/internal/rules"
	"github.com/meshintel/contract-engine/pkg/types"
)

// sentencePattern splits clause text into sentences on terminal
// punctuation, keeping the terminator with the sentence.
var sentencePattern = regexp.MustCompile(`[^.!?;]+[.!?;]?`)

// wordPattern extracts the word adjacent to a cue match for negation checks.
var wordPattern = regexp.MustCompile(`[A-Za-z']+`)

// Tag scans the clause's sentences for modal cues and returns one role
// tag per sentence with a match. Cues are evaluated longest-first so
// compound prohibitions ("shall not") win over their prefixes ("shall");
// a negation token immediately adjacent to any cue reclassifies the
// sentence as prohibition (R3.1).
func Tag(clause types.ClassifiedClause, rs *rules.Compiled) []types.RoleTag {
	var tags []types.RoleTag

	for si, sentence := range Sentences(clause.Text) {
		cue, kind, ok := matchCue(sentence, rs)
		if !ok {
			continue
		}
		tags = append(tags, types.RoleTag{
			ClauseIndex: clause.Index,
			Sentence:    si,
			Kind:        kind,
			Cue:         cue,
		})
	}

	return tags
}

// Sentences splits text into sentence strings. Text without terminal
// punctuation is a single sentence.
func Sentences(text string) []string {
	var out []string
	for _, s := range sentencePattern.FindAllString(text, -1) {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

// matchCue finds the strongest cue in the sentence. Cue order in the
// compiled set is longest-first; the first cue that matches decides the
// sentence's role, adjusted for adjacent negation.
func matchCue(sentence string, rs *rules.Compiled) (string, types.RoleKind, bool) {
	for _, cc := range rs.RoleCues {
		loc := cc.Re.FindStringIndex(sentence)
		if loc == nil {
			continue
		}

		cue := sentence[loc[0]:loc[1]]
		kind := cc.Kind

		if neg, tok := negatedAt(sentence, loc, rs.Negations); neg {
			kind = types.RoleProhibition
			if tok != "" && !strings.Contains(strings.ToLower(cue), tok) {
				cue = cue + " " + tok
			}
		}

		return cue, kind, true
	}
	return "", "", false
}

// negatedAt reports whether a negation token sits immediately before or
// after the cue match at loc. The adjacent token (if following the cue)
// is returned so callers can record the full negated phrase.
func negatedAt(sentence string, loc []int, negations map[string]bool) (bool, string) {
	// Word immediately after the cue ("may not ...").
	after := sentence[loc[1]:]
	if w := wordPattern.FindString(after); w != "" {
		if negations[strings.ToLower(w)] && strings.TrimSpace(after[:strings.Index(after, w)]) == "" {
			return true, strings.ToLower(w)
		}
	}

	// Word immediately before the cue ("... not entitled to").
	before := sentence[:loc[0]]
	words := wordPattern.FindAllString(before, -1)
	if len(words) > 0 {
		last := words[len(words)-1]
		idx := strings.LastIndex(before, last)
		if negations[strings.ToLower(last)] && strings.TrimSpace(before[idx+len(last):]) == "" {
			return true, ""
		}
	}

	return false, ""
}
