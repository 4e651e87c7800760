// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/meshintel/contract-engine/internal/audit"
	"github.com/meshintel/contract-engine/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report [run-id]",
	Short: "Render a plain-text report for a stored analysis run",
	Long: `Report loads a completed record from the audit log and renders it as a
plain-text risk report. No risk computation happens here: the report is
a view over the stored record, complete even with no GenAI annotations.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	store, err := audit.NewStore(auditConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.Get(context.Background(), args[0])
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		return report.Render(os.Stdout, rec, nil)
	}

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	if err := report.Render(f, rec, nil); err != nil {
		return err
	}
	fmt.Println("Report written to", out)
	return nil
}

func init() {
	reportCmd.Flags().String("out", "", "write the report to a file instead of stdout")
	reportCmd.Flags().String("audit-dir", "", "audit log directory (default \"audit\")")
	reportCmd.Flags().Int("max-results", 20, "maximum number of list results")

	rootCmd.AddCommand(reportCmd)
}
