package segment

import (
	"strings"
	"testing"

	"github.com/meshintel/contract-engine/pkg/types"
)

func testConfig() types.AnalysisConfig {
	return types.AnalysisConfig{MinSegmentLen: 20}
}

func TestSplitHeaders(t *testing.T) {
	text := "1. Payment:\nThe Client shall pay all invoices within thirty days of receipt.\n" +
		"2. Termination:\nEither party may terminate with 30 days written notice.\n" +
		"2.1 Early termination before the first anniversary requires written consent of both parties.\n" +
		"(a) Any dispute shall be referred to arbitration in Chennai, India by a sole arbitrator."

	segments := Split(text, testConfig())
	if len(segments) != 4 {
		t.Fatalf("got %d segments, want 4", len(segments))
	}

	// Long first lines without a trailing colon are clause text, not titles.
	wantHeadings := []string{"1. Payment", "2. Termination", "", ""}
	for i, seg := range segments {
		if seg.Index != i {
			t.Errorf("segment[%d].Index = %d", i, seg.Index)
		}
		if seg.Heading != wantHeadings[i] {
			t.Errorf("segment[%d].Heading = %q, want %q", i, seg.Heading, wantHeadings[i])
		}
	}
}

func TestSplitParagraphs(t *testing.T) {
	text := "The Employee shall not disclose confidential information to third parties.\n\n" +
		"The Employer may terminate employment at any time without notice to the Employee."

	segments := Split(text, testConfig())
	if len(segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(segments))
	}
	if segments[0].Heading != "" || segments[1].Heading != "" {
		t.Error("paragraph segments should have no heading")
	}
}

func TestSplitDegenerate(t *testing.T) {
	// No headers, no paragraph breaks: exactly one segment spanning the text.
	text := "This agreement is made between the parties and sets out their respective duties."
	segments := Split(text, testConfig())
	if len(segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(segments))
	}
	if segments[0].Text != text {
		t.Errorf("segment text = %q, want the whole document", segments[0].Text)
	}
	if segments[0].Start != 0 || segments[0].End != len(text) {
		t.Errorf("span = [%d,%d), want [0,%d)", segments[0].Start, segments[0].End, len(text))
	}
}

func TestSplitEmpty(t *testing.T) {
	for _, text := range []string{"", "   \n\t  \n"} {
		if segments := Split(text, testConfig()); len(segments) != 0 {
			t.Errorf("Split(%q) = %d segments, want 0", text, len(segments))
		}
	}
}

func TestSplitMergesShortSegments(t *testing.T) {
	text := "1. Term.\n" +
		"2. The lease term commences on the first day of April and runs for one year.\n" +
		"3. Rent is payable monthly in advance on the first business day of each month."

	segments := Split(text, testConfig())
	if len(segments) != 2 {
		t.Fatalf("got %d segments, want 2 (short first segment merges forward)", len(segments))
	}
	if !strings.HasPrefix(segments[0].Text, "1. Term.") {
		t.Errorf("merged segment should start with the short header, got %q", segments[0].Text)
	}
	if !strings.Contains(segments[0].Text, "commences") {
		t.Errorf("short segment did not merge into the following one: %q", segments[0].Text)
	}
}

// Coverage: the union of spans reconstructs the text modulo whitespace,
// spans never overlap, and indices strictly increase.
func TestSplitCoverage(t *testing.T) {
	texts := []string{
		"1. Payment: The Client shall pay all invoices within thirty days.\n2. Termination: Either party may terminate with 30 days written notice.",
		"First paragraph about confidential information and trade secrets kept private.\n\nSecond paragraph where the vendor shall indemnify the client against claims.",
		"Single block of text with no structure to discover anywhere in the document.",
	}

	for _, text := range texts {
		segments := Split(text, testConfig())

		prevEnd := -1
		var rebuilt strings.Builder
		for i, seg := range segments {
			if seg.Index != i {
				t.Errorf("index %d out of order", seg.Index)
			}
			if seg.Start <= prevEnd {
				t.Errorf("segment %d overlaps predecessor", i)
			}
			if text[seg.Start:seg.End] != seg.Text {
				t.Errorf("segment %d text does not match its span", i)
			}
			prevEnd = seg.End - 1
			rebuilt.WriteString(seg.Text)
		}

		strip := func(s string) string {
			return strings.Join(strings.Fields(s), "")
		}
		if strip(rebuilt.String()) != strip(text) {
			t.Errorf("segments do not cover the document:\n got %q\nwant %q", rebuilt.String(), text)
		}
	}
}

func TestHeading(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"1. Termination:\nThe lease may be terminated.", "1. Termination"},
		{"2.1 Notice Period\nSixty days.", "2.1 Notice Period"},
		{"(a) Arbitration\nAll disputes.", "(a) Arbitration"},
		{"No marker here\nJust text.", ""},
		{"1. The Employee shall not at any time during the employment engage in any competing business activity.", ""},
	}
	for _, tt := range tests {
		if got := heading(tt.text); got != tt.want {
			t.Errorf("heading(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
