// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Language is the detected primary language of a document, supplied by the
// document-parsing collaborator at the input boundary.
// Per prd001-segmentation R1.3.
type Language string

const (
	LangEnglish Language = "english"
	LangHindi   Language = "hindi"
	LangUnknown Language = "unknown"
)

// ContractType is the whole-document contract category guess.
// Per prd002-classification R4.1.
type ContractType string

const (
	ContractEmployment  ContractType = "employment"
	ContractVendor      ContractType = "vendor-service"
	ContractLease       ContractType = "lease"
	ContractPartnership ContractType = "partnership"
	ContractUnknown     ContractType = "unknown"
)

// Document is the normalized input to the analysis pipeline. The text is
// UTF-8 plain text with paragraph structure preserved via newlines, already
// extracted from its source format by the parsing collaborator. A Document
// is never modified after creation.
type Document struct {
	// Name identifies the source file or upload (e.g. "lease-2026.pdf").
	Name string `json:"name" yaml:"name"`

	// Text is the normalized contract text.
	Text string `json:"text" yaml:"text"`

	// Language is the detected primary language.
	Language Language `json:"language" yaml:"language"`

	// ContractType is the rule-based contract category guess. Per R4.1.
	ContractType ContractType `json:"contract_type" yaml:"contract_type"`

	// ContractTypeConfidence is the guess confidence in [0,1]. Per R4.2.
	ContractTypeConfidence float64 `json:"contract_type_confidence" yaml:"contract_type_confidence"`
}

// Entities holds surface-level extractions from the document text:
// party mentions, dates, monetary amounts, and jurisdiction names.
// Each slice is deduplicated and sorted so repeated runs produce
// identical output. Per prd002-classification R5.1-R5.4.
type Entities struct {
	Parties       []string `json:"parties" yaml:"parties"`
	Dates         []string `json:"dates" yaml:"dates"`
	Amounts       []string `json:"amounts" yaml:"amounts"`
	Jurisdictions []string `json:"jurisdictions" yaml:"jurisdictions"`
}
