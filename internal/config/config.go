package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration. YAML values are applied
// first, then RADAR_* environment variables override them.
type Config struct {
	Data struct {
		PriceDir   string `yaml:"price_dir" envconfig:"PRICE_DIR"`
		ReportsDir string `yaml:"reports_dir" envconfig:"REPORTS_DIR"`
		ListingCSV string `yaml:"listing_csv" envconfig:"LISTING_CSV"`
		Metadata   string `yaml:"metadata_file" envconfig:"METADATA_FILE"`
		OutputDir  string `yaml:"output_dir" envconfig:"OUTPUT_DIR"`
	} `yaml:"data"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path" envconfig:"SQLITE_PATH"`
	} `yaml:"database"`
	Crawler struct {
		PriceCommand string        `yaml:"price_command" envconfig:"PRICE_COMMAND"`
		PriceArgs    []string      `yaml:"price_args" envconfig:"PRICE_ARGS"`
		NewsCommand  string        `yaml:"news_command" envconfig:"NEWS_COMMAND"`
		NewsArgs     []string      `yaml:"news_args" envconfig:"NEWS_ARGS"`
		WorkDir      string        `yaml:"work_dir" envconfig:"WORK_DIR"`
		PriceTimeout time.Duration `yaml:"price_timeout" envconfig:"PRICE_TIMEOUT"`
		NewsTimeout  time.Duration `yaml:"news_timeout" envconfig:"NEWS_TIMEOUT"`
	} `yaml:"crawler"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron" envconfig:"DAILY_CRON"`
	} `yaml:"schedule"`
	Analysis struct {
		LookbackDays int      `yaml:"lookback_days" envconfig:"LOOKBACK_DAYS"`
		Portfolio    []string `yaml:"portfolio" envconfig:"PORTFOLIO"`
	} `yaml:"analysis"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; overrides and
// defaults still apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Each section is processed separately so the env keys stay flat:
	// RADAR_ + the field's envconfig tag (RADAR_PRICE_DIR, RADAR_DAILY_CRON),
	// without the section name in between.
	for _, section := range []any{
		&cfg.Data, &cfg.Database, &cfg.Crawler, &cfg.Schedule, &cfg.Analysis,
	} {
		if err := envconfig.Process("RADAR", section); err != nil {
			return nil, fmt.Errorf("env overrides: %w", err)
		}
	}

	// Defaults
	if cfg.Data.PriceDir == "" {
		cfg.Data.PriceDir = "data/price_data"
	}
	if cfg.Data.ReportsDir == "" {
		cfg.Data.ReportsDir = "data/reports"
	}
	if cfg.Data.ListingCSV == "" {
		cfg.Data.ListingCSV = "data/KOSPI_KOSDAQ.csv"
	}
	if cfg.Data.Metadata == "" {
		cfg.Data.Metadata = "data/metadata.json"
	}
	if cfg.Data.OutputDir == "" {
		cfg.Data.OutputDir = "data/output"
	}
	if cfg.Crawler.PriceTimeout == 0 {
		cfg.Crawler.PriceTimeout = 600 * time.Second
	}
	if cfg.Crawler.NewsTimeout == 0 {
		cfg.Crawler.NewsTimeout = 300 * time.Second
	}
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 0 7 * * 1-5" // weekday mornings KST
	}
	if cfg.Analysis.LookbackDays == 0 {
		cfg.Analysis.LookbackDays = 60
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Data.PriceDir == "" && c.Database.SQLitePath == "" {
		return fmt.Errorf("either data.price_dir or database.sqlite_path is required")
	}
	if c.Data.ReportsDir == "" {
		return fmt.Errorf("data.reports_dir is required")
	}
	if c.Analysis.LookbackDays < 0 {
		return fmt.Errorf("analysis.lookback_days must not be negative")
	}
	return nil
}
