package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-radar/internal/llm"
)

var extractProfileFile string

var extractProfileCmd = &cobra.Command{
	Use:   "extract-profile",
	Short: "Parse a CV file into a candidate profile",
	Long:  `Parse a CV (PDF or plain text) into a candidate profile JSON that can be passed to search via --profile.`,
	RunE:  runExtractProfile,
}

func init() {
	extractProfileCmd.Flags().StringVar(&extractProfileFile, "file", "", "Path to the CV file (required)")
	_ = extractProfileCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(extractProfileCmd)
}

func runExtractProfile(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	file, err := os.ReadFile(extractProfileFile)
	if err != nil {
		return fmt.Errorf("failed to read CV: %w", err)
	}

	ctx := context.Background()
	extractor, err := llm.NewGeminiExtractor(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}
	defer func() { _ = extractor.Close() }()

	profile, err := extractor.ExtractProfile(ctx, file, filepath.Base(extractProfileFile))
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(profile)
}
