package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ignite/acctmatch/internal/config"
	"github.com/ignite/acctmatch/internal/logging"
	"github.com/ignite/acctmatch/internal/pipeline"
	"github.com/ignite/acctmatch/internal/row"
	"github.com/ignite/acctmatch/internal/rowio"
	"github.com/ignite/acctmatch/internal/scorer"
)

var contactCmd = &cobra.Command{
	Use:   "contact <stem>",
	Short: "Resolve the best contact within each account matched by a prior account run",
	Args:  cobra.ExactArgs(1),
	RunE:  runContact,
}

func runContact(cmd *cobra.Command, args []string) error {
	stem := args[0]

	cfg, err := config.LoadFromEnv(configPath)
	if err != nil {
		return wrap("config", err)
	}

	log, err := logging.New("contact")
	if err != nil {
		return wrap("logging", err)
	}
	defer log.Sync()

	log.Infow("contact scrub started", "stem", stem)

	contacts, err := loadContacts(cfg.Paths.ContactListPath)
	if err != nil {
		return wrap("schema", err)
	}

	accountOutputPath := filepath.Join(cfg.Paths.OutputDirectory, stem+"_OUTPUT.xlsx")
	rows, err := rowio.ReadExcel(accountOutputPath)
	if err != nil {
		return wrap("read account output", err)
	}
	if err := row.RequireColumns(row.Header(rows), []string{"matched_accountid"}, "Account output"); err != nil {
		return wrap("schema", err)
	}

	sc := scorer.Contact{
		Weights: scorer.ContactWeights{
			Email:     cfg.ScoringContact.Email,
			FirstName: cfg.ScoringContact.FirstName,
			LastName:  cfg.ScoringContact.LastName,
			Title:     cfg.ScoringContact.Title,
		},
	}

	pipe := pipeline.NewContact(contacts, sc, cfg.Thresholds.MinimumContactScore)
	out := pipe.Run(rows)

	outputPath := filepath.Join(cfg.Paths.OutputDirectory, stem+"_C_OUTPUT.xlsx")
	if err := rowio.WriteExcel(outputPath, out); err != nil {
		return wrap("write output", err)
	}

	log.Infow("contact scrub finished", "rows", len(out))
	return nil
}
