// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package segment splits normalized contract text into an ordered
// sequence of clause segments with position provenance.
// Implements: prd001-segmentation (R1-R3).
package segment

import (
	"regexp"
	"strings"

	"github.com/meshintel/contract-engine/pkg/types"
)

const defaultMinSegmentLen = 40

// headerPattern matches explicit clause headers at the start of a line:
// "1.", "2.1", "3)", "(a)", "b.".
var headerPattern = regexp.MustCompile(`(?m)^[ \t]*(?:\d+(?:\.\d+)+|\d+[.)]|\([a-z]\)|[a-z][.)])[ \t]+\S`)

// paragraphPattern matches a paragraph break following sentence-terminal
// punctuation. Used only when no explicit headers exist (R1.2).
var paragraphPattern = regexp.MustCompile(`[.!?:][ \t]*\n[ \t]*\n`)

// Split produces the ordered clause segments of text. Priority order:
// explicit numbered/lettered headers start segments; otherwise paragraph
// breaks after sentence-terminal punctuation; segments shorter than
// MinSegmentLen merge into the following segment. A document with no
// headers and no paragraph breaks yields one segment spanning the whole
// text. Empty or whitespace-only input yields an empty sequence — the
// caller treats that as nothing to analyze, not an error (R2.4).
func Split(text string, cfg types.AnalysisConfig) []types.ClauseSegment {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	minLen := cfg.MinSegmentLen
	if minLen <= 0 {
		minLen = defaultMinSegmentLen
	}

	cuts := headerCuts(text)
	if len(cuts) == 0 {
		cuts = paragraphCuts(text)
	}

	spans := buildSpans(text, cuts)
	spans = mergeShort(text, spans, minLen)

	segments := make([]types.ClauseSegment, 0, len(spans))
	for i, sp := range spans {
		start, end := trimSpan(text, sp.start, sp.end)
		if start >= end {
			continue
		}
		seg := types.ClauseSegment{
			Index: i,
			Text:  text[start:end],
			Start: start,
			End:   end,
		}
		seg.Heading = heading(seg.Text)
		segments = append(segments, seg)
	}

	// Re-index in case trimming dropped a whitespace-only span.
	for i := range segments {
		segments[i].Index = i
	}

	return segments
}

type span struct {
	start, end int
}

// headerCuts returns the start offsets of explicit clause headers,
// excluding a header at the very beginning of the text (the first
// segment always starts at 0).
func headerCuts(text string) []int {
	var cuts []int
	for _, m := range headerPattern.FindAllStringIndex(text, -1) {
		if strings.TrimSpace(text[:m[0]]) == "" {
			continue
		}
		cuts = append(cuts, m[0])
	}
	return cuts
}

// paragraphCuts returns offsets just after paragraph breaks that follow
// sentence-terminal punctuation.
func paragraphCuts(text string) []int {
	var cuts []int
	for _, m := range paragraphPattern.FindAllStringIndex(text, -1) {
		if m[1] < len(text) {
			cuts = append(cuts, m[1])
		}
	}
	return cuts
}

// buildSpans converts cut offsets into contiguous spans covering the text.
func buildSpans(text string, cuts []int) []span {
	spans := make([]span, 0, len(cuts)+1)
	prev := 0
	for _, c := range cuts {
		if c <= prev {
			continue
		}
		spans = append(spans, span{prev, c})
		prev = c
	}
	spans = append(spans, span{prev, len(text)})
	return spans
}

// mergeShort folds segments below minLen into the following segment;
// a short final segment folds backward instead so no text is dropped (R3.1).
func mergeShort(text string, spans []span, minLen int) []span {
	if len(spans) <= 1 {
		return spans
	}

	var out []span
	carry := -1
	for i, sp := range spans {
		start := sp.start
		if carry >= 0 {
			start = carry
			carry = -1
		}
		ts, te := trimSpan(text, start, sp.end)
		if te-ts < minLen && i < len(spans)-1 {
			carry = start
			continue
		}
		out = append(out, span{start, sp.end})
	}

	// Trailing short segment with nothing following: merge into the
	// previous span, or keep it alone if it is all there is.
	if len(out) >= 2 {
		last := out[len(out)-1]
		ts, te := trimSpan(text, last.start, last.end)
		if te-ts < minLen {
			out[len(out)-2].end = last.end
			out = out[:len(out)-1]
		}
	}

	return out
}

// trimSpan narrows [start,end) to exclude surrounding whitespace.
func trimSpan(text string, start, end int) (int, int) {
	for start < end && isSpace(text[start]) {
		start++
	}
	for end > start && isSpace(text[end-1]) {
		end--
	}
	return start, end
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// maxHeadingLen caps how long a first line may be and still count as a
// clause title rather than running clause text.
const maxHeadingLen = 64

// heading returns the clause header line when the segment begins with an
// explicit numbered or lettered marker, trimmed of a trailing colon.
// Long first lines are clause text, not titles, unless they end with a
// colon.
func heading(segText string) string {
	first := segText
	if i := strings.IndexByte(first, '\n'); i >= 0 {
		first = first[:i]
	}
	first = strings.TrimSpace(first)
	if !headerPattern.MatchString(first) {
		return ""
	}
	if len(first) > maxHeadingLen && !strings.HasSuffix(first, ":") {
		return ""
	}
	return strings.TrimSuffix(first, ":")
}
