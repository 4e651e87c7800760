// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// RulesConfig holds settings for rule-set loading.
// Per prd004-risk-detection R4.1-R4.2.
type RulesConfig struct {
	// Path is an optional YAML rule-set file overriding the compiled-in
	// defaults. Empty uses the defaults.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// AnalysisConfig holds settings for the analysis pipeline.
// Per prd001-segmentation R3.1.
type AnalysisConfig struct {
	// MinSegmentLen is the minimum clause length in characters; shorter
	// segments merge into the following segment (default 40).
	MinSegmentLen int `json:"min_segment_len" yaml:"min_segment_len"`

	// EvidenceContext is the number of characters of surrounding text
	// kept around a matched risk trigger (default 60 per side).
	EvidenceContext int `json:"evidence_context" yaml:"evidence_context"`
}

// AIConfig holds shared settings for the optional GenAI overlay backend.
type AIConfig struct {
	// Model is the AI model identifier.
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the AI API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxRetries is the number of retry attempts for failed API calls (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// GenAIConfig holds settings for the optional GenAI overlay. The core
// pipeline never depends on these; they only govern annotation.
// Per prd008-genai-overlay R3.1-R3.3.
type GenAIConfig struct {
	AIConfig `yaml:",inline"`

	// Enabled toggles the overlay. When false every explanation comes
	// from the deterministic fallback.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Endpoint is the annotation service URL.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`

	// Timeout is the per-request timeout (default 30s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// AuditConfig holds settings for the audit log store.
// Per prd007-audit-log R1.1.
type AuditConfig struct {
	// Dir is the base directory for the audit database (default "audit").
	Dir string `json:"dir" yaml:"dir"`

	// MaxResults is the default maximum number of list results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// ReportConfig holds settings for report rendering.
type ReportConfig struct {
	// OutputDir is the directory for rendered reports (default "reports").
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// PipelineConfig groups all stage configurations for the engine.
type PipelineConfig struct {
	Rules    RulesConfig    `json:"rules" yaml:"rules"`
	Analysis AnalysisConfig `json:"analysis" yaml:"analysis"`
	GenAI    GenAIConfig    `json:"genai" yaml:"genai"`
	Audit    AuditConfig    `json:"audit" yaml:"audit"`
	Report   ReportConfig   `json:"report" yaml:"report"`
}
