package role

import (
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

func TestTag(t *testing.T) {
	rs := rules.Default()

	tests := []struct {
		name string
		text string
		want types.RoleKind
		cue  string
	}{
		{"obligation shall", "The Tenant shall pay rent on the first of each month.", types.RoleObligation, "shall"},
		{"obligation agrees to", "The Vendor agrees to deliver the goods by the stated date.", types.RoleObligation, "agrees to"},
		{"right may", "The Landlord may inspect the premises with prior notice.", types.RoleRight, "may"},
		{"right entitled", "The Employee is entitled to thirty days of paid leave.", types.RoleRight, "is entitled to"},
		{"prohibition shall not", "The Employee shall not disclose trade secrets.", types.RoleProhibition, "shall not"},
		{"prohibition cannot", "The Tenant cannot sublet the premises.", types.RoleProhibition, "cannot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags := Tag(clause(0, tt.text), rs)
			if len(tags) != 1 {
				t.Fatalf("got %d tags, want 1", len(tags))
			}
			if tags[0].Kind != tt.want {
				t.Errorf("Kind = %s, want %s", tags[0].Kind, tt.want)
			}
			if tags[0].Cue != tt.cue {
				t.Errorf("Cue = %q, want %q", tags[0].Cue, tt.cue)
			}
		})
	}
}

// Negation reclassifies a right cue as a prohibition: "may not" must never
// read as a right.
func TestTagNegationOverride(t *testing.T) {
	rs := rules.Default()

	tags := Tag(clause(3, "The Employee may not disclose confidential information."), rs)
	if len(tags) != 1 {
		t.Fatalf("got %d tags, want 1", len(tags))
	}
	if tags[0].Kind != types.RoleProhibition {
		t.Errorf("Kind = %s, want %s", tags[0].Kind, types.RoleProhibition)
	}
	if tags[0].ClauseIndex != 3 {
		t.Errorf("ClauseIndex = %d, want 3", tags[0].ClauseIndex)
	}
}

// A negation token directly after an obligation cue flips it to a
// prohibition and extends the recorded cue phrase.
func TestTagNegationAfterCue(t *testing.T) {
	rs := rules.Default()

	tags := Tag(clause(0, "The Employee shall never disclose trade secrets."), rs)
	if len(tags) != 1 {
		t.Fatalf("got %d tags, want 1", len(tags))
	}
	if tags[0].Kind != types.RoleProhibition {
		t.Errorf("Kind = %s, want %s", tags[0].Kind, types.RoleProhibition)
	}
	if tags[0].Cue != "shall never" {
		t.Errorf("Cue = %q, want %q", tags[0].Cue, "shall never")
	}
}

// A negation token before the cue also flips the role.
func TestTagNegationBeforeCue(t *testing.T) {
	rs := rules.Default()

	tags := Tag(clause(0, "The Tenant does not have the right to withhold rent."), rs)
	if len(tags) != 1 {
		t.Fatalf("got %d tags, want 1", len(tags))
	}
	if tags[0].Kind != types.RoleProhibition {
		t.Errorf("Kind = %s, want %s", tags[0].Kind, types.RoleProhibition)
	}
}

func TestTagOnePerSentence(t *testing.T) {
	rs := rules.Default()

	// Two sentences, each with a cue; a sentence with several cues still
	// yields a single tag.
	text := "The Employee shall report weekly and must attend all meetings. The Employer may adjust duties."
	tags := Tag(clause(0, text), rs)
	if len(tags) != 2 {
		t.Fatalf("got %d tags, want 2", len(tags))
	}
	if tags[0].Sentence != 0 || tags[1].Sentence != 1 {
		t.Errorf("sentence indices = %d, %d; want 0, 1", tags[0].Sentence, tags[1].Sentence)
	}
	if tags[0].Kind != types.RoleObligation || tags[1].Kind != types.RoleRight {
		t.Errorf("kinds = %s, %s; want obligation, right", tags[0].Kind, tags[1].Kind)
	}
}

func TestTagNoCue(t *testing.T) {
	rs := rules.Default()
	if tags := Tag(clause(0, "This agreement takes effect on the date first written above."), rs); len(tags) != 0 {
		t.Errorf("got %d tags, want 0", len(tags))
	}
}

func TestSentences(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"One sentence only", 1},
		{"First. Second! Third?", 3},
		{"Clauses split on semicolons; like this one.", 2},
		{"", 0},
	}
	for _, tt := range tests {
		if got := Sentences(tt.text); len(got) != tt.want {
			t.Errorf("Sentences(%q) = %d sentences, want %d", tt.text, len(got), tt.want)
		}
	}
}
