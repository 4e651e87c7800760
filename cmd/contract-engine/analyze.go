// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/meshintel/contract-engine/internal/analyze"
	"github.com/meshintel/contract-engine/internal/audit"
	"github.com/meshintel/contract-engine/internal/genai"
	"github.com/meshintel/contract-engine/internal/report"
	"github.com/meshintel/contract-engine/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Run the clause analysis pipeline over a contract text file",
	Long: `Analyze reads normalized contract text (UTF-8 plain text, paragraph
structure preserved via newlines), runs the deterministic pipeline, and
prints the resulting analysis. Pass "-" to read from stdin.

Each run appends one entry to the audit log unless --no-audit is given.
With --annotate the optional GenAI overlay is built; without it, or when
annotation fails, explanations come from the deterministic fallback.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text, name, err := readInput(args[0])
	if err != nil {
		return err
	}

	rs, err := activeRules(cmd)
	if err != nil {
		return err
	}

	langFlag, _ := cmd.Flags().GetString("lang")
	doc := types.Document{
		Name:     name,
		Text:     text,
		Language: types.Language(strings.ToLower(langFlag)),
	}

	cfg := analysisConfig(cmd)

	rec, err := analyze.Run(doc, rs, cfg)
	if err != nil {
		return err
	}

	if noAudit, _ := cmd.Flags().GetBool("no-audit"); !noAudit {
		if err := appendAudit(cmd, rec); err != nil {
			return err
		}
	}

	overlay := buildOverlay(cmd, rec)

	if asReport, _ := cmd.Flags().GetBool("report"); asReport {
		return report.Render(os.Stdout, rec, overlay)
	}
	return writeRecord(cmd, rec)
}

func readInput(arg string) (string, string, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "stdin", nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", arg, err)
	}
	return string(data), filepath.Base(arg), nil
}

func analysisConfig(cmd *cobra.Command) types.AnalysisConfig {
	minLen, _ := cmd.Flags().GetInt("min-segment-len")
	if minLen <= 0 {
		minLen = viper.GetInt("analysis.min_segment_len")
	}
	return types.AnalysisConfig{MinSegmentLen: minLen}
}

func appendAudit(cmd *cobra.Command, rec *types.AnalysisRecord) error {
	store, err := audit.NewStore(auditConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Append(context.Background(), rec)
}

// buildOverlay assembles the GenAI overlay when annotation is requested.
// The endpoint-backed annotator is used only when one is configured;
// otherwise the deterministic fallback annotates. Overlay failures never
// fail the run — the record stands on its own.
func buildOverlay(cmd *cobra.Command, rec *types.AnalysisRecord) types.Overlay {
	annotate, _ := cmd.Flags().GetBool("annotate")
	if !annotate {
		return nil
	}

	cfg := types.GenAIConfig{
		AIConfig: types.AIConfig{
			Model:      viper.GetString("genai.model"),
			APIKey:     secretDefault("genai-api-key", viper.GetString("genai.api_key")),
			MaxRetries: viper.GetInt("genai.max_retries"),
		},
		Endpoint: viper.GetString("genai.endpoint"),
	}

	var ann genai.Annotator = genai.Fallback{}
	if cfg.Endpoint != "" {
		ann = genai.NewHTTPAnnotator(cfg)
	}

	overlay, err := genai.BuildOverlay(context.Background(), ann, rec, cfg.MaxRetries)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: overlay incomplete: %v\n", err)
	}
	return overlay
}

func writeRecord(cmd *cobra.Command, rec *types.AnalysisRecord) error {
	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}
	if yamlOut, _ := cmd.Flags().GetBool("yaml"); yamlOut {
		data, err := yaml.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshaling record: %w", err)
		}
		_, err = os.Stdout.Write(data)
		return err
	}
	writeSummary(os.Stdout, rec)
	return nil
}

func writeSummary(w io.Writer, rec *types.AnalysisRecord) {
	if rec.Empty() {
		fmt.Fprintln(w, "Nothing to analyze.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-16s  %-8s  %-50s\n", "No.", "Type", "Risk", "Clause")
	fmt.Fprintln(w, strings.Repeat("-", 84))
	for i, c := range rec.Clauses {
		text := strings.Join(strings.Fields(c.Text), " ")
		if len(text) > 50 {
			text = text[:47] + "..."
		}
		fmt.Fprintf(w, "%-4d  %-16s  %-8s  %-50s\n", i+1, c.Type, rec.ClauseScores[i].Level, text)
	}
	fmt.Fprintf(w, "\nContract type: %s   Overall risk: %s   Findings: %d\n",
		rec.Document.ContractType, strings.ToUpper(string(rec.Contract.Level)), len(rec.Findings))
	fmt.Fprintf(w, "Run: %s\n", rec.RunID)
}

func init() {
	analyzeCmd.Flags().String("lang", "english", "document language: english, hindi, unknown")
	analyzeCmd.Flags().String("rules", "", "YAML rule-set file overriding the defaults")
	analyzeCmd.Flags().Int("min-segment-len", 0, "minimum clause length before merging (default 40)")
	analyzeCmd.Flags().Bool("json", false, "output the full record as JSON")
	analyzeCmd.Flags().Bool("yaml", false, "output the full record as YAML")
	analyzeCmd.Flags().Bool("report", false, "render a plain-text report instead of the record")
	analyzeCmd.Flags().Bool("annotate", false, "build the GenAI overlay (falls back to deterministic text)")
	analyzeCmd.Flags().Bool("no-audit", false, "skip the audit log entry")
	analyzeCmd.Flags().String("audit-dir", "", "audit log directory (default \"audit\")")

	rootCmd.AddCommand(analyzeCmd)
}
