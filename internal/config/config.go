// Package config loads the matching engine's YAML configuration, with
// environment-variable overrides for the handful of values ops commonly
// need to tweak per environment without editing the file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Paths locates the on-disk inputs and outputs the engine reads and
// writes. OutputDirectory also houses the persisted TF-IDF cache.
type Paths struct {
	InputDirectory  string `yaml:"input_directory"`
	OutputDirectory string `yaml:"output_directory"`
	AccountListPath string `yaml:"account_list_path"`
	ContactListPath string `yaml:"contact_list_path"`
	CacheDirectory  string `yaml:"cache_directory"`
}

// Thresholds holds the fuzzy-matching cutoffs that gate whether a
// candidate counts as a match at all.
type Thresholds struct {
	MinimumFinalScore    float64 `yaml:"minimum_final_score"`
	MinimumContactScore  float64 `yaml:"minimum_contact_score"`
}

// Weights mirrors scorer.Weights in YAML form.
type Weights struct {
	CompanyName float64 `yaml:"company_name"`
	Website     float64 `yaml:"website"`
	Phone       float64 `yaml:"phone"`
	Street      float64 `yaml:"street"`
	PostalCode  float64 `yaml:"postal_code"`
	City        float64 `yaml:"city"`
	PrimaryLOB  float64 `yaml:"primary_lob"`
}

// Penalties mirrors scorer.Penalties in YAML form.
type Penalties struct {
	LocationMismatch   float64 `yaml:"location_mismatch"`
	ConflictingWebsite float64 `yaml:"conflicting_website"`
}

// ContactWeights mirrors scorer.ContactWeights in YAML form.
type ContactWeights struct {
	Email     float64 `yaml:"email"`
	FirstName float64 `yaml:"first_name"`
	LastName  float64 `yaml:"last_name"`
	Title     float64 `yaml:"title"`
}

// Concurrency bounds the account pipeline's Stage 2 worker pool.
type Concurrency struct {
	Workers int `yaml:"workers"`
}

// Config is the full, parsed matching-engine configuration.
type Config struct {
	Paths               Paths          `yaml:"paths"`
	Thresholds          Thresholds     `yaml:"fuzzy_matching_thresholds"`
	ScoringWeights      Weights        `yaml:"scoring_weights"`
	ScoringPenalties    Penalties      `yaml:"scoring_penalties"`
	ScoringContact      ContactWeights `yaml:"scoring_contact"`
	Concurrency         Concurrency    `yaml:"concurrency"`
}

// Load reads and parses the YAML configuration file at path, validates
// it, and fills in defaults for paths.cache_directory and
// concurrency.workers when the file leaves them unset; penalties and
// contact weights left unset stay 0.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	for _, p := range []*string{
		&cfg.Paths.InputDirectory,
		&cfg.Paths.OutputDirectory,
		&cfg.Paths.AccountListPath,
		&cfg.Paths.ContactListPath,
	} {
		abs, err := filepath.Abs(*p)
		if err != nil {
			return nil, fmt.Errorf("config: resolve %s: %w", *p, err)
		}
		*p = abs
	}

	if cfg.Paths.CacheDirectory == "" {
		cfg.Paths.CacheDirectory = filepath.Join(cfg.Paths.OutputDirectory, ".tfidf_cache")
	}
	if cfg.Concurrency.Workers == 0 {
		cfg.Concurrency.Workers = 8
	}

	if err := os.MkdirAll(cfg.Paths.OutputDirectory, 0o755); err != nil {
		return nil, fmt.Errorf("config: create output_directory: %w", err)
	}
	return &cfg, nil
}

// LoadFromEnv loads cfg from path, then applies environment-variable
// overrides — loading a .env file first (if present) so local runs can
// keep path overrides out of shell history, the same pattern zapped
// credentials follow on ECS.
func LoadFromEnv(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("ACCTMATCH_OUTPUT_DIR"); v != "" {
		cfg.Paths.OutputDirectory = v
	}
	if v := os.Getenv("ACCTMATCH_ACCOUNT_LIST"); v != "" {
		cfg.Paths.AccountListPath = v
	}
	if v := os.Getenv("ACCTMATCH_CONTACT_LIST"); v != "" {
		cfg.Paths.ContactListPath = v
	}
	if v := os.Getenv("ACCTMATCH_CACHE_DIR"); v != "" {
		cfg.Paths.CacheDirectory = v
	}

	return cfg, nil
}

// validate checks every required config key by name, the same way
// settings.load_settings raises on a missing [section] key, so a
// misconfigured deployment names the exact key to fix rather than
// surfacing a generic parse error.
func validate(cfg *Config) error {
	required := []struct {
		key  string
		path string
	}{
		{"paths.input_directory", cfg.Paths.InputDirectory},
		{"paths.output_directory", cfg.Paths.OutputDirectory},
		{"paths.account_list_path", cfg.Paths.AccountListPath},
		{"paths.contact_list_path", cfg.Paths.ContactListPath},
	}
	for _, c := range required {
		if c.path == "" {
			return fmt.Errorf("config: %s is required", c.key)
		}
	}

	// output_directory is created by Load if absent, so only the three
	// inputs must already exist on disk.
	existenceChecks := []struct {
		key  string
		path string
	}{
		{"paths.input_directory", cfg.Paths.InputDirectory},
		{"paths.account_list_path", cfg.Paths.AccountListPath},
		{"paths.contact_list_path", cfg.Paths.ContactListPath},
	}
	for _, c := range existenceChecks {
		if _, err := os.Stat(c.path); err != nil {
			return fmt.Errorf("config: %s (%s): %w", c.key, c.path, err)
		}
	}

	numericChecks := []struct {
		key   string
		value float64
	}{
		{"fuzzy_matching_thresholds.minimum_final_score", cfg.Thresholds.MinimumFinalScore},
		{"fuzzy_matching_thresholds.minimum_contact_score", cfg.Thresholds.MinimumContactScore},
		{"scoring_weights.company_name", cfg.ScoringWeights.CompanyName},
		{"scoring_weights.website", cfg.ScoringWeights.Website},
		{"scoring_weights.phone", cfg.ScoringWeights.Phone},
		{"scoring_weights.street", cfg.ScoringWeights.Street},
		{"scoring_weights.postal_code", cfg.ScoringWeights.PostalCode},
		{"scoring_weights.city", cfg.ScoringWeights.City},
		{"scoring_weights.primary_lob", cfg.ScoringWeights.PrimaryLOB},
	}
	for _, c := range numericChecks {
		if c.value == 0 {
			return fmt.Errorf("config: %s is required", c.key)
		}
	}
	return nil
}
