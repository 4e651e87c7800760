// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rules

import "github.com/meshintel/contract-engine/pkg/types"

// defaultSet is the compiled-in rule set used when no YAML override is
// configured. Precedence puts the specific categories (non-compete,
// indemnity) above the generic ones so multi-match clauses resolve
// deterministically.
var defaultSet = Set{
	ClauseTypes: []TypeRule{
		{
			ID:         "type-non-compete",
			Type:       types.ClauseNonCompete,
			Triggers:   []string{"non-compete", "non compete", "not compete", "competing business", "similar business"},
			Precedence: 70,
			Confidence: 0.9,
		},
		{
			ID:         "type-indemnity",
			Type:       types.ClauseIndemnity,
			Triggers:   []string{"indemnif", "hold harmless", "defend and hold"},
			Precedence: 60,
			Confidence: 0.9,
		},
		{
			ID:         "type-arbitration",
			Type:       types.ClauseArbitration,
			Triggers:   []string{"arbitration", "arbitrator", "exclusive jurisdiction", "governing law", "courts of"},
			Precedence: 50,
			Confidence: 0.85,
		},
		{
			ID:         "type-renewal",
			Type:       types.ClauseRenewal,
			Triggers:   []string{"renew", "renewal", "extension of the term"},
			Precedence: 40,
			Confidence: 0.8,
		},
		{
			ID:         "type-confidentiality",
			Type:       types.ClauseConfidentiality,
			Triggers:   []string{"confidential", "non-disclosure", "proprietary information", "trade secret"},
			Precedence: 30,
			Confidence: 0.85,
		},
		{
			ID:         "type-termination",
			Type:       types.ClauseTermination,
			Triggers:   []string{"terminat"},
			Precedence: 20,
			Confidence: 0.8,
		},
		{
			ID:         "type-payment",
			Type:       types.ClausePayment,
			Triggers:   []string{"payment", "salary", "compensation", "fees", "invoice", "rent", "remuneration"},
			Precedence: 10,
			Confidence: 0.75,
		},
	},

	RoleCues: []RoleCue{
		{Cue: "shall not", Kind: types.RoleProhibition},
		{Cue: "must not", Kind: types.RoleProhibition},
		{Cue: "may not", Kind: types.RoleProhibition},
		{Cue: "is prohibited from", Kind: types.RoleProhibition},
		{Cue: "are prohibited from", Kind: types.RoleProhibition},
		{Cue: "cannot", Kind: types.RoleProhibition},
		{Cue: "shall", Kind: types.RoleObligation},
		{Cue: "must", Kind: types.RoleObligation},
		{Cue: "is required to", Kind: types.RoleObligation},
		{Cue: "are required to", Kind: types.RoleObligation},
		{Cue: "agrees to", Kind: types.RoleObligation},
		{Cue: "is obligated to", Kind: types.RoleObligation},
		{Cue: "may", Kind: types.RoleRight},
		{Cue: "is entitled to", Kind: types.RoleRight},
		{Cue: "are entitled to", Kind: types.RoleRight},
		{Cue: "has the right to", Kind: types.RoleRight},
		{Cue: "have the right to", Kind: types.RoleRight},
	},

	Negations: []string{"not", "no", "never", "nor"},

	MutualPhrases: []string{"either party", "both parties", "each party", "mutual", "mutually"},

	NoticePatterns: []string{
		`\b\d+\s+(days?|weeks?|months?)'?\s+(prior\s+)?(written\s+)?notice\b`,
		`\bnotice\s+period\s+of\s+\d+\b`,
	},

	RiskPatterns: []RiskRule{
		{
			ID:       "risk-penalty-liquidated",
			Category: types.RiskPenalty,
			Triggers: []string{"liquidated damages"},
			Severity: types.SeverityHigh,
		},
		{
			ID:       "risk-penalty-basic",
			Category: types.RiskPenalty,
			Triggers: []string{"penalty", "penalties", "fine of", "forfeit"},
			Severity: types.SeverityMedium,
		},
		{
			ID:                  "risk-indemnity",
			Category:            types.RiskIndemnity,
			Triggers:            []string{"indemnif", "hold harmless"},
			Severity:            types.SeverityMedium,
			AsymmetryEscalation: true,
		},
		{
			ID:              "risk-unilateral-termination",
			Category:        types.RiskUnilateralTerm,
			Triggers:        []string{"terminate", "termination"},
			Severity:        types.SeverityMedium,
			MutualException: true,
			NoticeException: true,
			Escalators:      []string{"at any time", "without notice", "without cause", "for any reason", "sole discretion"},
		},
		{
			ID:       "risk-jurisdiction-lock",
			Category: types.RiskArbitrationJuris,
			Triggers: []string{"exclusive jurisdiction", "subject to the jurisdiction", "courts of"},
			Severity: types.SeverityMedium,
		},
		{
			ID:       "risk-arbitration",
			Category: types.RiskArbitrationJuris,
			Triggers: []string{"arbitration", "arbitrator"},
			Severity: types.SeverityLow,
		},
		{
			ID:         "risk-non-compete",
			Category:   types.RiskNonCompete,
			Triggers:   []string{"non-compete", "non compete", "not compete", "competing business"},
			Severity:   types.SeverityMedium,
			Escalators: []string{"worldwide", "anywhere", "in any capacity", "indefinitely", "perpetuity"},
		},
		{
			ID:              "risk-auto-renewal",
			Category:        types.RiskAutoRenewal,
			Triggers:        []string{"automatically renew", "auto-renew", "auto renew", "automatic renewal"},
			Severity:        types.SeverityMedium,
			NoticeException: true,
		},
	},

	ContractTypes: []ContractTypeRule{
		{Type: types.ContractEmployment, Keywords: []string{"employee", "employer", "salary", "termination"}},
		{Type: types.ContractLease, Keywords: []string{"rent", "tenant", "lease", "landlord"}},
		{Type: types.ContractVendor, Keywords: []string{"vendor", "service", "fees", "client"}},
		{Type: types.ContractPartnership, Keywords: []string{"partner", "profit sharing", "partnership"}},
	},
}

// DefaultSet returns a copy of the raw default rule set, for display or
// as a starting point for a YAML override file.
func DefaultSet() Set {
	s := defaultSet
	s.ClauseTypes = append([]TypeRule(nil), defaultSet.ClauseTypes...)
	s.RoleCues = append([]RoleCue(nil), defaultSet.RoleCues...)
	s.Negations = append([]string(nil), defaultSet.Negations...)
	s.MutualPhrases = append([]string(nil), defaultSet.MutualPhrases...)
	s.NoticePatterns = append([]string(nil), defaultSet.NoticePatterns...)
	s.RiskPatterns = append([]RiskRule(nil), defaultSet.RiskPatterns...)
	s.ContractTypes = append([]ContractTypeRule(nil), defaultSet.ContractTypes...)
	return s
}

// Default returns the compiled default rule set. The defaults are
// validated by the package tests; a compile failure here is a programming
// error, so Default panics rather than returning an error.
func Default() *Compiled {
	c, err := defaultSet.Compile()
	if err != nil {
		panic("rules: default set invalid: " + err.Error())
	}
	return c
}
