// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ClauseType categorizes a clause within the fixed taxonomy.
// Per prd002-classification R1.1.
type ClauseType string

const (
	ClausePayment         ClauseType = "payment"
	ClauseTermination     ClauseType = "termination"
	ClauseConfidentiality ClauseType = "confidentiality"
	ClauseIndemnity       ClauseType = "indemnity"
	ClauseNonCompete      ClauseType = "non-compete"
	ClauseArbitration     ClauseType = "arbitration"
	ClauseRenewal         ClauseType = "renewal"
	ClauseOther           ClauseType = "other"
)

// ClauseSegment is one ordered unit of contract text with position
// provenance. Segments are non-overlapping, strictly ordered by Index,
// and collectively cover the document modulo stripped whitespace.
// Per prd001-segmentation R1.1, R1.2, R2.1-R2.3.
type ClauseSegment struct {
	// Index is the stable 0-based position in document order.
	Index int `json:"index" yaml:"index"`

	// Heading is the clause header text when segmentation found an
	// explicit numbered or lettered header (e.g. "4. Termination").
	// Empty when the segment was produced by paragraph splitting.
	Heading string `json:"heading,omitempty" yaml:"heading,omitempty"`

	// Text is the raw clause text span.
	Text string `json:"text" yaml:"text"`

	// Start and End are byte offsets into the normalized document text.
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// ClassifiedClause is a ClauseSegment plus its type label and the rule
// matches that produced it. A clause that matched no type rule carries
// ClauseOther and an empty MatchedRules list.
// Per prd002-classification R1.1-R1.4, R2.1-R2.3.
type ClassifiedClause struct {
	ClauseSegment `yaml:",inline"`

	// Type is the clause-type label resolved by rule precedence.
	Type ClauseType `json:"type" yaml:"type"`

	// Confidence is the classification confidence in [0,1]. Non-English
	// documents reduce confidence rather than switching rule sets. Per R3.1.
	Confidence float64 `json:"confidence" yaml:"confidence"`

	// MatchedRules lists the IDs of every clause-type rule that fired,
	// in precedence order. Per R2.3.
	MatchedRules []string `json:"matched_rules,omitempty" yaml:"matched_rules,omitempty"`
}

// RoleKind is the modal role a sentence assigns to a party.
// Per prd003-role-tagging R1.1.
type RoleKind string

const (
	RoleObligation  RoleKind = "obligation"
	RoleRight       RoleKind = "right"
	RoleProhibition RoleKind = "prohibition"
)

// RoleTag marks one sentence of a clause as expressing an obligation,
// right, or prohibition. Tags are additive: a clause carries one tag per
// sentence where a modal cue matched, and sentences without cues carry
// none. Per prd003-role-tagging R1.1-R1.3, R2.1.
type RoleTag struct {
	// ClauseIndex references the ClauseSegment this tag belongs to.
	ClauseIndex int `json:"clause_index" yaml:"clause_index"`

	// Sentence is the 0-based sentence position within the clause.
	Sentence int `json:"sentence" yaml:"sentence"`

	// Kind is the modal role. Negated right cues resolve to prohibition. Per R3.1.
	Kind RoleKind `json:"kind" yaml:"kind"`

	// Cue is the matched modal phrase (e.g. "shall", "may not").
	Cue string `json:"cue" yaml:"cue"`
}
