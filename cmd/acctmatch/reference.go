package main

import (
	"fmt"

	"github.com/ignite/acctmatch/internal/normalize"
	"github.com/ignite/acctmatch/internal/pipeline"
	"github.com/ignite/acctmatch/internal/row"
	"github.com/ignite/acctmatch/internal/rowio"
)

// loadAccounts reads and normalizes the account reference, renaming its
// Salesforce-export columns onto the canonical schema before validating
// that account_id and company survived the rename.
func loadAccounts(path string) (row.Set, error) {
	raw, err := rowio.ReadExcel(path)
	if err != nil {
		return nil, err
	}
	accounts := make(row.Set, len(raw))
	for i, r := range raw {
		accounts[i] = normalize.Account(r)
	}
	if err := row.RequireColumns(row.Header(accounts), []string{"account_id", "company"}, "Account reference"); err != nil {
		return nil, err
	}
	return accounts, nil
}

// loadContacts reads the contact reference. It is not renamed — only
// email and accountid are required to already be present.
func loadContacts(path string) (row.Set, error) {
	contacts, err := rowio.ReadExcel(path)
	if err != nil {
		return nil, err
	}
	if err := row.RequireColumns(row.Header(contacts), []string{"email", "accountid"}, "Contact reference"); err != nil {
		return nil, err
	}
	return contacts, nil
}

// loadInput reads the free-form input list, resolves its alias columns and
// normalizes it, and pairs each resulting row with the raw, as-loaded row
// and its stable original_index.
func loadInput(path string) ([]pipeline.InputRow, error) {
	raw, err := rowio.ReadExcel(path)
	if err != nil {
		return nil, err
	}

	input := make([]pipeline.InputRow, len(raw))
	normalized := make(row.Set, len(raw))
	for i, r := range raw {
		n := normalize.Input(r)
		normalized[i] = n
		input[i] = pipeline.InputRow{Index: i, Normalized: n, Raw: r.Clone()}
	}
	if err := row.RequireColumns(row.Header(normalized), []string{"company"}, "Input list"); err != nil {
		return nil, err
	}
	return input, nil
}

func wrap(label string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", label, err)
}
