package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-radar/internal/types"
)

var (
	searchKeywords  string
	searchCity      string
	searchTopN      int
	searchSponsor   bool
	searchWorkModes []string
	searchProfile   string
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run one search and print the JSON response",
	Long:  `Run the aggregation-enrichment-matching pipeline once from the command line and print the ranked result set as JSON.`,
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchKeywords, "keywords", "", "Search keywords (required)")
	searchCmd.Flags().StringVar(&searchCity, "city", "", "City filter")
	searchCmd.Flags().IntVar(&searchTopN, "top", 0, "Number of results to return")
	searchCmd.Flags().BoolVar(&searchSponsor, "sponsor-only", false, "Only IND-registered sponsors")
	searchCmd.Flags().StringSliceVar(&searchWorkModes, "work-mode", nil, "Work modes (Remote, Hybrid, On-site)")
	searchCmd.Flags().StringVar(&searchProfile, "profile", "", "Path to candidate profile JSON file")
	_ = searchCmd.MarkFlagRequired("keywords")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	req := types.SearchRequest{
		Keywords:       searchKeywords,
		City:           searchCity,
		TopN:           searchTopN,
		IndSponsorOnly: searchSponsor,
		WorkModes:      searchWorkModes,
	}
	if searchProfile != "" {
		data, err := os.ReadFile(searchProfile)
		if err != nil {
			return fmt.Errorf("failed to read profile: %w", err)
		}
		var profile types.CandidateProfile
		if err := json.Unmarshal(data, &profile); err != nil {
			return fmt.Errorf("failed to parse profile JSON: %w", err)
		}
		req.CandidateProfile = &profile
	}
	if err := req.Validate(); err != nil {
		return err
	}

	ctx := context.Background()
	p, _, _, cleanup, err := buildPipeline(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to build pipeline: %w", err)
	}
	defer cleanup()

	resp, err := p.Search(ctx, &req)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(resp)
}
