// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/meshintel/contract-engine/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect and validate analysis rule sets",
	Long: `Rules shows the active rule set and validates rule files. Rule sets are
data: clause-type triggers, role cues, and risk patterns load from YAML
and are checked once at startup. A broken rule file blocks analysis
entirely rather than silently degrading accuracy.`,
}

var rulesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the default rule set as YAML",
	Long: `Show dumps the compiled-in default rule set. Redirect the output to a
file to bootstrap a custom rule set for --rules.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		set := rules.DefaultSet()
		data, err := yaml.Marshal(set)
		if err != nil {
			return fmt.Errorf("marshaling rule set: %w", err)
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

var rulesCheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a YAML rule-set file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := rules.Load(args[0]); err != nil {
			return err
		}
		fmt.Printf("%s: rule set valid\n", args[0])
		return nil
	},
}

func init() {
	rulesCmd.AddCommand(rulesShowCmd)
	rulesCmd.AddCommand(rulesCheckCmd)
	rootCmd.AddCommand(rulesCmd)
}
