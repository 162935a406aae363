package main

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ignite/acctmatch/internal/config"
	"github.com/ignite/acctmatch/internal/logging"
	"github.com/ignite/acctmatch/internal/pipeline"
	"github.com/ignite/acctmatch/internal/rowio"
	"github.com/ignite/acctmatch/internal/scorer"
	"github.com/ignite/acctmatch/internal/tfidf"
)

var accountCmd = &cobra.Command{
	Use:   "account <stem>",
	Short: "Resolve each row of <stem>.xlsx against the account reference",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccount,
}

func runAccount(cmd *cobra.Command, args []string) error {
	stem := args[0]

	cfg, err := config.LoadFromEnv(configPath)
	if err != nil {
		return wrap("config", err)
	}

	log, err := logging.New("account")
	if err != nil {
		return wrap("logging", err)
	}
	defer log.Sync()

	log.Infow("account scrub started", "stem", stem)

	accounts, err := loadAccounts(cfg.Paths.AccountListPath)
	if err != nil {
		return wrap("schema", err)
	}
	contacts, err := loadContacts(cfg.Paths.ContactListPath)
	if err != nil {
		return wrap("schema", err)
	}
	input, err := loadInput(filepath.Join(cfg.Paths.InputDirectory, stem+".xlsx"))
	if err != nil {
		return wrap("schema", err)
	}

	sc := scorer.Account{
		Weights: scorer.Weights{
			CompanyName: cfg.ScoringWeights.CompanyName,
			Website:     cfg.ScoringWeights.Website,
			Phone:       cfg.ScoringWeights.Phone,
			Street:      cfg.ScoringWeights.Street,
			PostalCode:  cfg.ScoringWeights.PostalCode,
			City:        cfg.ScoringWeights.City,
			PrimaryLOB:  cfg.ScoringWeights.PrimaryLOB,
		},
		Penalties: scorer.Penalties{
			LocationMismatch:   cfg.ScoringPenalties.LocationMismatch,
			ConflictingWebsite: cfg.ScoringPenalties.ConflictingWebsite,
		},
	}

	cache, err := tfidf.NewCache(cfg.Paths.CacheDirectory)
	if err != nil {
		log.Warnf("tfidf cache unavailable, rebuilding every run: %v", err)
	}

	pipe, err := pipeline.NewAccount(accounts, contacts, sc, cfg.Thresholds.MinimumFinalScore,
		pipeline.WithCache(cache),
		pipeline.WithLogger(log),
		pipeline.WithWorkers(cfg.Concurrency.Workers),
	)
	if err != nil {
		return wrap("pipeline setup", err)
	}

	matched, manualReview, summary, err := pipe.Run(context.Background(), input)
	if err != nil {
		return wrap("pipeline run", err)
	}

	outputPath := filepath.Join(cfg.Paths.OutputDirectory, stem+"_OUTPUT.xlsx")
	if err := rowio.WriteExcel(outputPath, matched); err != nil {
		return wrap("write output", err)
	}
	reviewPath := filepath.Join(cfg.Paths.OutputDirectory, stem+"_MANUAL_REVIEW.xlsx")
	if err := rowio.WriteExcel(reviewPath, manualReview); err != nil {
		return wrap("write manual review", err)
	}

	log.Infow("account scrub finished",
		"total", summary.Total,
		"email_matches", summary.EmailMatches,
		"fuzzy_matches", summary.FuzzyMatches,
		"ccn_matches", summary.CCNMatches,
		"dhc_matches", summary.DHCMatches,
		"unmatched", summary.Unmatched,
	)
	return nil
}
