// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rules defines the declarative rule sets driving clause
// classification, role tagging, and risk detection. Rule sets are data:
// they load from YAML (or the compiled-in defaults), validate once at
// startup, and are passed by reference into the pipeline stages. A
// malformed rule set is a configuration error surfaced at load time,
// never during per-document analysis.
// Implements: prd002-classification (R2), prd003-role-tagging (R1),
// prd004-risk-detection (R3, R4).
package rules

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/meshintel/contract-engine/pkg/types"
)

// TypeRule maps lexical triggers to a clause type. A rule fires when any
// trigger appears in the lowercased clause text; Near adds a proximity
// constraint requiring a second keyword within Window characters of the
// trigger. Higher precedence outranks lower when several types fire.
type TypeRule struct {
	ID         string           `yaml:"id"`
	Type       types.ClauseType `yaml:"type"`
	Triggers   []string         `yaml:"triggers"`
	Near       []string         `yaml:"near,omitempty"`
	Window     int              `yaml:"window,omitempty"`
	Precedence int              `yaml:"precedence"`
	Confidence float64          `yaml:"confidence"`
}

// RoleCue maps a modal phrase to the role it expresses. Cues match on
// word boundaries, case-insensitively.
type RoleCue struct {
	Cue  string         `yaml:"cue"`
	Kind types.RoleKind `yaml:"kind"`
}

// RiskRule describes one pattern within a risk category. Triggers are
// lowercase substrings; Patterns are regular expressions compiled at load
// time. Modifier fields adjust or suppress the base severity:
// MutualException suppresses the finding when mutual language is present,
// NoticeException lowers severity to low when a notice period is present,
// Escalators raise severity to high, and AsymmetryEscalation raises it to
// high when the clause obligates one party without mutual language.
type RiskRule struct {
	ID                  string             `yaml:"id"`
	Category            types.RiskCategory `yaml:"category"`
	Triggers            []string           `yaml:"triggers,omitempty"`
	Patterns            []string           `yaml:"patterns,omitempty"`
	Severity            types.Severity     `yaml:"severity"`
	MutualException     bool               `yaml:"mutual_exception,omitempty"`
	NoticeException     bool               `yaml:"notice_exception,omitempty"`
	Escalators          []string           `yaml:"escalators,omitempty"`
	AsymmetryEscalation bool               `yaml:"asymmetry_escalation,omitempty"`
}

// ContractTypeRule maps whole-document keywords to a contract type.
type ContractTypeRule struct {
	Type     types.ContractType `yaml:"type"`
	Keywords []string           `yaml:"keywords"`
}

// Set is the raw, serializable rule set as it appears on disk.
type Set struct {
	ClauseTypes    []TypeRule         `yaml:"clause_types"`
	RoleCues       []RoleCue          `yaml:"role_cues"`
	Negations      []string           `yaml:"negations"`
	MutualPhrases  []string           `yaml:"mutual_phrases"`
	NoticePatterns []string           `yaml:"notice_patterns"`
	RiskPatterns   []RiskRule         `yaml:"risk_patterns"`
	ContractTypes  []ContractTypeRule `yaml:"contract_types"`
}

// CompiledCue is a role cue with its boundary-anchored regexp.
type CompiledCue struct {
	RoleCue
	Re *regexp.Regexp
}

// CompiledRisk is a risk rule with its patterns compiled.
type CompiledRisk struct {
	RiskRule
	Res []*regexp.Regexp
}

// Compiled is a validated, immutable rule set ready for evaluation.
// Stages receive it by reference and never mutate it.
type Compiled struct {
	// ClauseTypes is sorted by precedence descending; ties break on rule ID
	// so evaluation order is reproducible.
	ClauseTypes []TypeRule

	// RoleCues is sorted longest-cue-first so compound cues ("shall not")
	// win over their prefixes ("shall").
	RoleCues []CompiledCue

	Negations     map[string]bool
	MutualPhrases []string
	Notice        []*regexp.Regexp
	Risks         map[types.RiskCategory][]CompiledRisk
	ContractTypes []ContractTypeRule
}

var validClauseTypes = map[types.ClauseType]bool{
	types.ClausePayment:         true,
	types.ClauseTermination:     true,
	types.ClauseConfidentiality: true,
	types.ClauseIndemnity:       true,
	types.ClauseNonCompete:      true,
	types.ClauseArbitration:     true,
	types.ClauseRenewal:         true,
	types.ClauseOther:           true,
}

var validRoleKinds = map[types.RoleKind]bool{
	types.RoleObligation:  true,
	types.RoleRight:       true,
	types.RoleProhibition: true,
}

var validCategories = map[types.RiskCategory]bool{
	types.RiskPenalty:          true,
	types.RiskIndemnity:        true,
	types.RiskUnilateralTerm:   true,
	types.RiskArbitrationJuris: true,
	types.RiskNonCompete:       true,
	types.RiskAutoRenewal:      true,
}

var validSeverities = map[types.Severity]bool{
	types.SeverityLow:    true,
	types.SeverityMedium: true,
	types.SeverityHigh:   true,
}

// Load reads a YAML rule set from path, validates it, and compiles it.
// Any problem is a configuration error: callers must treat it as fatal
// at startup rather than degrading per-document behavior.
func Load(path string) (*Compiled, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rule set %s: %w", path, err)
	}
	var set Set
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parsing rule set %s: %w", path, err)
	}
	return set.Compile()
}

// Compile validates the set and builds the evaluation form. It collects
// every validation problem before failing so a broken rule file reports
// all its defects at once.
func (s *Set) Compile() (*Compiled, error) {
	var problems []string

	seen := make(map[string]bool)
	for i, r := range s.ClauseTypes {
		if r.ID == "" {
			problems = append(problems, fmt.Sprintf("clause_types[%d]: missing id", i))
			continue
		}
		if seen[r.ID] {
			problems = append(problems, fmt.Sprintf("clause_types[%d]: duplicate id %q", i, r.ID))
		}
		seen[r.ID] = true
		if !validClauseTypes[r.Type] {
			problems = append(problems, fmt.Sprintf("rule %s: invalid clause type %q", r.ID, r.Type))
		}
		if len(r.Triggers) == 0 {
			problems = append(problems, fmt.Sprintf("rule %s: no triggers", r.ID))
		}
		if r.Confidence < 0 || r.Confidence > 1 {
			problems = append(problems, fmt.Sprintf("rule %s: confidence %v out of range [0,1]", r.ID, r.Confidence))
		}
		if len(r.Near) > 0 && r.Window <= 0 {
			problems = append(problems, fmt.Sprintf("rule %s: near constraint requires a positive window", r.ID))
		}
	}

	cues := make([]CompiledCue, 0, len(s.RoleCues))
	for i, c := range s.RoleCues {
		if c.Cue == "" {
			problems = append(problems, fmt.Sprintf("role_cues[%d]: empty cue", i))
			continue
		}
		if !validRoleKinds[c.Kind] {
			problems = append(problems, fmt.Sprintf("cue %q: invalid role kind %q", c.Cue, c.Kind))
			continue
		}
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(c.Cue) + `\b`)
		if err != nil {
			problems = append(problems, fmt.Sprintf("cue %q: %v", c.Cue, err))
			continue
		}
		cues = append(cues, CompiledCue{RoleCue: c, Re: re})
	}

	notice := make([]*regexp.Regexp, 0, len(s.NoticePatterns))
	for _, p := range s.NoticePatterns {
		re, err := regexp.Compile(`(?i)` + p)
		if err != nil {
			problems = append(problems, fmt.Sprintf("notice pattern %q: %v", p, err))
			continue
		}
		notice = append(notice, re)
	}

	risks := make(map[types.RiskCategory][]CompiledRisk)
	for i, r := range s.RiskPatterns {
		if r.ID == "" {
			problems = append(problems, fmt.Sprintf("risk_patterns[%d]: missing id", i))
			continue
		}
		if seen[r.ID] {
			problems = append(problems, fmt.Sprintf("risk_patterns[%d]: duplicate id %q", i, r.ID))
		}
		seen[r.ID] = true
		if !validCategories[r.Category] {
			problems = append(problems, fmt.Sprintf("rule %s: invalid risk category %q", r.ID, r.Category))
			continue
		}
		if !validSeverities[r.Severity] {
			problems = append(problems, fmt.Sprintf("rule %s: invalid severity %q", r.ID, r.Severity))
		}
		if len(r.Triggers) == 0 && len(r.Patterns) == 0 {
			problems = append(problems, fmt.Sprintf("rule %s: no triggers or patterns", r.ID))
		}
		cr := CompiledRisk{RiskRule: r}
		for _, p := range r.Patterns {
			re, err := regexp.Compile(`(?i)` + p)
			if err != nil {
				problems = append(problems, fmt.Sprintf("rule %s: pattern %q: %v", r.ID, p, err))
				continue
			}
			cr.Res = append(cr.Res, re)
		}
		risks[r.Category] = append(risks[r.Category], cr)
	}

	for i, ct := range s.ContractTypes {
		if ct.Type == types.ContractUnknown || ct.Type == "" {
			problems = append(problems, fmt.Sprintf("contract_types[%d]: invalid type %q", i, ct.Type))
		}
		if len(ct.Keywords) == 0 {
			problems = append(problems, fmt.Sprintf("contract_types[%d]: no keywords", i))
		}
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("invalid rule set: %s", strings.Join(problems, "; "))
	}

	negations := make(map[string]bool, len(s.Negations))
	for _, n := range s.Negations {
		negations[strings.ToLower(n)] = true
	}

	compiled := &Compiled{
		ClauseTypes:   append([]TypeRule(nil), s.ClauseTypes...),
		RoleCues:      cues,
		Negations:     negations,
		MutualPhrases: lowerAll(s.MutualPhrases),
		Notice:        notice,
		Risks:         risks,
		ContractTypes: append([]ContractTypeRule(nil), s.ContractTypes...),
	}

	sort.SliceStable(compiled.ClauseTypes, func(i, j int) bool {
		a, b := compiled.ClauseTypes[i], compiled.ClauseTypes[j]
		if a.Precedence != b.Precedence {
			return a.Precedence > b.Precedence
		}
		return a.ID < b.ID
	})

	sort.SliceStable(compiled.RoleCues, func(i, j int) bool {
		return len(compiled.RoleCues[i].Cue) > len(compiled.RoleCues[j].Cue)
	})

	return compiled, nil
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

// HasMutualLanguage reports whether the lowercased text contains any
// mutual-obligation phrase ("either party", "both parties", ...).
func (c *Compiled) HasMutualLanguage(lower string) bool {
	for _, p := range c.MutualPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// HasNoticePeriod reports whether the text matches any notice-period
// pattern (e.g. "30 days written notice").
func (c *Compiled) HasNoticePeriod(text string) bool {
	for _, re := range c.Notice {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
