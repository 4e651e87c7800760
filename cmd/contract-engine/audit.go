// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/meshintel/contract-engine/internal/audit"
	"github.com/meshintel/contract-engine/pkg/types"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Inspect the append-only audit log of analysis runs",
	Long: `Audit lists past analysis runs, shows a stored record by run ID, and
exports the log. Every analyze invocation appends exactly one entry; the
log is never rewritten.`,
}

// --- list subcommand ---

var auditListCmd = &cobra.Command{
	Use:   "list",
	Short: "List audit entries, newest first",
	RunE:  runAuditList,
}

func runAuditList(cmd *cobra.Command, args []string) error {
	store, err := audit.NewStore(auditConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	entries, err := store.List(context.Background(), limit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No audit entries.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-36s  %-20s  %-16s  %-8s  %-7s  %s\n",
		"Run", "Created", "Document", "Risk", "Clauses", "Findings")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))
	for _, e := range entries {
		doc := e.DocumentName
		if len(doc) > 16 {
			doc = doc[:13] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-36s  %-20s  %-16s  %-8s  %-7d  %d\n",
			e.RunID, e.CreatedAt.Format("2006-01-02 15:04:05"), doc, e.RiskLevel, e.Clauses, e.Findings)
	}
	fmt.Fprintf(os.Stdout, "\n%d entries\n", len(entries))
	return nil
}

// --- show subcommand ---

var auditShowCmd = &cobra.Command{
	Use:   "show [run-id]",
	Short: "Show the full stored record for a run",
	Args:  cobra.ExactArgs(1),
	RunE:  runAuditShow,
}

func runAuditShow(cmd *cobra.Command, args []string) error {
	store, err := audit.NewStore(auditConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.Get(context.Background(), args[0])
	if err != nil {
		return err
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}
	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling record: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}

// --- export subcommand ---

var auditExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the audit log to YAML or JSON",
	RunE:  runAuditExport,
}

func runAuditExport(cmd *cobra.Command, args []string) error {
	store, err := audit.NewStore(auditConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	format, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("out")

	switch format {
	case "yaml", "":
		if out == "" {
			out = "audit-export.yaml"
		}
		if err := store.ExportYAML(context.Background(), out); err != nil {
			return err
		}
	case "json":
		if out == "" {
			out = "audit-export.json"
		}
		if err := store.ExportJSON(context.Background(), out); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	fmt.Println("Exported to", out)
	return nil
}

// --- shared helpers ---

func auditConfig(cmd *cobra.Command) types.AuditConfig {
	dir, _ := cmd.Flags().GetString("audit-dir")
	if dir == "" {
		dir = viper.GetString("audit.dir")
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")
	return types.AuditConfig{Dir: dir, MaxResults: maxResults}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	auditCmd.PersistentFlags().String("audit-dir", "", "audit log directory (default \"audit\")")
	auditCmd.PersistentFlags().Int("max-results", 20, "maximum number of list results")

	auditListCmd.Flags().Int("limit", 0, "maximum entries to list")
	auditShowCmd.Flags().Bool("json", false, "output the record as JSON")
	auditExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	auditExportCmd.Flags().String("out", "", "output file path")

	auditCmd.AddCommand(auditListCmd)
	auditCmd.AddCommand(auditShowCmd)
	auditCmd.AddCommand(auditExportCmd)
	rootCmd.AddCommand(auditCmd)
}
