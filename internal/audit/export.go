// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

const exportLimit = 100000

// ExportJSON writes the audit log summaries to path as JSON (R3.3).
func (s *Store) ExportJSON(ctx context.Context, path string) error {
	entries, err := s.List(ctx, exportLimit)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ExportYAML writes the audit log summaries to path as YAML (R3.3).
func (s *Store) ExportYAML(ctx context.Context, path string) error {
	entries, err := s.List(ctx, exportLimit)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
