// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package entity extracts surface-level entities from contract text:
// party mentions, dates, monetary amounts, and jurisdiction names.
// Extraction is regex-based and deterministic; results are deduplicated
// and sorted. Implements: prd002-classification (R5).
package entity

import (
	"regexp"
	"sort"

	"github.com/meshintel/contract-engine/pkg/types"
)

var (
	// partyPattern matches a party role word followed by a proper-noun name,
	// e.g. "Employer Acme Industries" or "Vendor Sharma & Sons".
	partyPattern = regexp.MustCompile(`(?:Employer|Employee|Company|Vendor|Client|Landlord|Tenant|Partner)\s+[A-Z][A-Za-z &]+`)

	// datePattern matches numeric dates like 01/04/2026 or 1-4-26.
	datePattern = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`)

	// amountPattern matches rupee, dollar, and "Rs." amounts with optional
	// thousands separators and decimals.
	amountPattern = regexp.MustCompile(`(?:₹|\$|Rs\.?)\s?\d+(?:,\d+)*(?:\.\d+)?`)

	// jurisdictionPattern matches the jurisdiction names the rule sets know.
	jurisdictionPattern = regexp.MustCompile(`\b(?:India|Tamil Nadu|Delhi|Mumbai|Chennai|Bangalore|Karnataka|Maharashtra)\b`)
)

// Extract scans the document text and returns all entities found.
func Extract(text string) types.Entities {
	return types.Entities{
		Parties:       distinct(partyPattern.FindAllString(text, -1)),
		Dates:         distinct(datePattern.FindAllString(text, -1)),
		Amounts:       distinct(amountPattern.FindAllString(text, -1)),
		Jurisdictions: distinct(jurisdictionPattern.FindAllString(text, -1)),
	}
}

// distinct deduplicates and sorts matches so repeated runs over the same
// text produce identical slices.
func distinct(matches []string) []string {
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(matches))
	var out []string
	for _, m := range matches {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	sort.Strings(out)
	return out
}
