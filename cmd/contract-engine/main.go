// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the contract-engine CLI.
// Implements: prd001-segmentation through prd009-reporting (CLI surface).
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meshintel/contract-engine/internal/rules"
	"github.com/meshintel/contract-engine/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback when non-empty, else the named secret.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the contract-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "contract-engine",
	Short: "Deterministic contract clause extraction and risk scoring",
	Long: `contract-engine analyzes normalized contract text offline: it segments the
document into clauses, classifies each clause, tags obligations, rights,
and prohibitions, detects known risk patterns, and aggregates a
contract-level risk verdict. The optional GenAI layer only annotates the
completed record; every result is available without it.

Each operation is a subcommand: analyze, report, audit, and rules.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(cmd)

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func setupLogging(cmd *cobra.Command) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// activeRules loads the configured rule set: --rules flag, then the
// rules.path config key, then the compiled-in defaults. A broken rule
// file aborts before any document work.
func activeRules(cmd *cobra.Command) (*rules.Compiled, error) {
	path, _ := cmd.Flags().GetString("rules")
	if path == "" {
		path = viper.GetString("rules.path")
	}
	if path == "" {
		return rules.Default(), nil
	}
	return rules.Load(path)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./contract-engine.yaml or ~/.config/contract-engine/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("contract-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "contract-engine"))
		}
	}

	viper.SetEnvPrefix("CONTRACT_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
