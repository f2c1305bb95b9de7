package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Data.PriceDir != "data/price_data" {
		t.Errorf("price dir default = %q", cfg.Data.PriceDir)
	}
	if cfg.Crawler.PriceTimeout != 600*time.Second {
		t.Errorf("price timeout default = %v", cfg.Crawler.PriceTimeout)
	}
	if cfg.Crawler.NewsTimeout != 300*time.Second {
		t.Errorf("news timeout default = %v", cfg.Crawler.NewsTimeout)
	}
	if cfg.Analysis.LookbackDays != 60 {
		t.Errorf("lookback default = %d", cfg.Analysis.LookbackDays)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_YAMLAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
data:
  price_dir: /srv/prices
analysis:
  lookback_days: 90
  portfolio: ["005930", "000660"]
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("RADAR_PRICE_DIR", "/override/prices")
	t.Setenv("RADAR_NEWS_TIMEOUT", "120s")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Data.PriceDir != "/override/prices" {
		t.Errorf("env override lost: %q", cfg.Data.PriceDir)
	}
	if cfg.Crawler.NewsTimeout != 120*time.Second {
		t.Errorf("news timeout override lost: %v", cfg.Crawler.NewsTimeout)
	}
	if cfg.Analysis.LookbackDays != 90 {
		t.Errorf("lookback = %d, want yaml value", cfg.Analysis.LookbackDays)
	}
	if len(cfg.Analysis.Portfolio) != 2 || cfg.Analysis.Portfolio[0] != "005930" {
		t.Errorf("portfolio = %v", cfg.Analysis.Portfolio)
	}
}

func TestValidate_Rejects(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err == nil {
		t.Error("empty config should not validate")
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	cfg.Analysis.LookbackDays = -1
	if err := cfg.Validate(); err == nil {
		t.Error("negative lookback should not validate")
	}
}
