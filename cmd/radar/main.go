package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"StockRadar/internal/config"
	"StockRadar/internal/model"
	"StockRadar/internal/reference"
	"StockRadar/internal/refresh"
	"StockRadar/internal/service"
	"StockRadar/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockRadar starting...")

	// .env is optional; real env vars win either way.
	if err := godotenv.Load(); err == nil {
		log.Println("[INFO] loaded .env")
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init price provider
	csvStore := store.NewCSVPriceStore(cfg.Data.PriceDir)
	var prices store.PriceProvider = csvStore
	if cfg.Database.SQLitePath != "" {
		ss, err := store.NewSQLitePriceStore(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite price store failed, using csv: %v", err)
		} else {
			prices = ss
			defer ss.Close()
		}
	}
	log.Printf("[INFO] price source: %s", prices.Name())

	// Init report repository and reference data
	reports := store.NewDirReportStore(cfg.Data.ReportsDir)
	lookup := reference.NewLookup(cfg.Data.ListingCSV)

	// Init analyzer
	analyzer := service.NewAnalyzer(prices, reports, lookup, cfg.Analysis.LookbackDays)

	// Init refresher
	meta := refresh.NewMetadata(cfg.Data.Metadata)
	refresher := refresh.NewRefresher(meta,
		refresh.Crawler{
			Name:    "price",
			Command: cfg.Crawler.PriceCommand,
			Args:    cfg.Crawler.PriceArgs,
			Dir:     cfg.Crawler.WorkDir,
			Timeout: cfg.Crawler.PriceTimeout,
		},
		refresh.Crawler{
			Name:    "news",
			Command: cfg.Crawler.NewsCommand,
			Args:    cfg.Crawler.NewsArgs,
			Dir:     cfg.Crawler.WorkDir,
			Timeout: cfg.Crawler.NewsTimeout,
		},
		csvStore,
	)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := refresh.NewScheduler(ctx, refresher)
	if err := sched.Register(cfg.Schedule.DailyCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: refresh and analyze immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing refresh and analysis now")
		go func() {
			sched.RunNow(false)
			if err := writeSnapshot(cfg, analyzer, refresher); err != nil {
				log.Printf("[ERROR] write snapshot: %v", err)
			}
		}()
	}

	log.Println("[INFO] StockRadar is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] StockRadar stopped")
}

// snapshot is the JSON analysis dump consumed by the presentation layer.
type snapshot struct {
	GeneratedAt string                         `json:"generated_at"`
	DataStatus  model.DataStatus               `json:"data_status"`
	Indicators  map[string]*model.IndicatorSet `json:"indicators"`
	Graph       *model.Graph                   `json:"graph"`
	ToneTrends  []model.ToneTrend              `json:"tone_trends"`
}

func writeSnapshot(cfg *config.Config, analyzer *service.Analyzer, refresher *refresh.Refresher) error {
	codes := cfg.Analysis.Portfolio
	if len(codes) == 0 {
		log.Println("[WARN] no portfolio configured, skipping analysis snapshot")
		return nil
	}

	snap := snapshot{
		GeneratedAt: time.Now().Format(time.RFC3339),
		DataStatus:  refresher.Status(),
		Indicators:  make(map[string]*model.IndicatorSet, len(codes)),
		Graph:       analyzer.Graph(codes),
		ToneTrends:  analyzer.ToneTrends(),
	}
	for _, code := range codes {
		snap.Indicators[code] = analyzer.Indicators(code)
	}

	if err := os.MkdirAll(cfg.Data.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(cfg.Data.OutputDir, "analysis.json")
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	log.Printf("[INFO] analysis snapshot written: %s", path)
	return nil
}
