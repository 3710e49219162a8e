package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/job-radar/internal/commute"
	"github.com/jonathan/job-radar/internal/config"
	"github.com/jonathan/job-radar/internal/enrich"
	"github.com/jonathan/job-radar/internal/enrichcache"
	"github.com/jonathan/job-radar/internal/llm"
	"github.com/jonathan/job-radar/internal/pipeline"
	"github.com/jonathan/job-radar/internal/sources"
	"github.com/jonathan/job-radar/internal/sponsors"
)

// loadConfig reads the optional config file and the environment.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildPipeline wires the adapters, cache, sponsor store, extractor, and
// commute augmenter from the configuration. The extractor is returned
// separately because CV profile extraction uses it outside the pipeline.
// The caller owns the returned cleanup function. The Gemini key is
// mandatory; everything else degrades to a disabled capability with a
// log line.
func buildPipeline(ctx context.Context, cfg *config.Config) (*pipeline.Pipeline, *sponsors.Store, *llm.GeminiExtractor, func(), error) {
	extractor, err := llm.NewGeminiExtractor(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to create extractor: %w", err)
	}

	// Company-direct boards first so their richer listings win dedup ties.
	adapters := []sources.Adapter{
		sources.NewGreenhouse(),
		sources.NewLever(),
		sources.NewSmartRecruiters(),
		sources.NewAdzuna(cfg.AdzunaAppID, cfg.AdzunaAppKey),
		sources.NewArbeitnow(),
	}
	for _, a := range adapters {
		if !a.Enabled() {
			log.Printf("source %s disabled: missing credentials", a.Name())
		}
	}

	p := &pipeline.Pipeline{
		Adapters: adapters,
		Enricher: enrich.NewBatcher(extractor),
		Commute:  commute.NewAugmenter(cfg.GoogleMapsAPIKey),
	}
	if !p.Commute.Enabled() {
		log.Println("commute augmenter disabled: missing GOOGLE_MAPS_API_KEY")
	}

	var sponsorStore *sponsors.Store
	cleanup := func() { _ = extractor.Close() }

	if cfg.DatabaseURL != "" {
		cache, err := enrichcache.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			_ = extractor.Close()
			return nil, nil, nil, nil, err
		}
		sponsorStore = sponsors.NewStore(cache.Pool())
		p.Cache = cache
		p.Sponsors = sponsorStore
		cleanup = func() {
			cache.Close()
			_ = extractor.Close()
		}
	} else {
		log.Println("DATABASE_URL not set: enrichment cache and sponsor registry disabled")
	}

	return p, sponsorStore, extractor, cleanup, nil
}
