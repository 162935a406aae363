package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignite/acctmatch/internal/row"
	"github.com/ignite/acctmatch/internal/scorer"
)

func testScorer() scorer.Account {
	return scorer.Account{
		Weights: scorer.Weights{
			CompanyName: 40, Website: 25, Phone: 20, Street: 15, PostalCode: 15, City: 10, PrimaryLOB: 5,
		},
		Penalties: scorer.Penalties{LocationMismatch: 20, ConflictingWebsite: 10},
	}
}

func acctRow(id, company, website, postal, ccn, dhc string) row.Row {
	return row.Row{
		"account_id":        row.Str(id),
		"company":           row.Str(company),
		"normalizedcompany": row.Str(company),
		"normalizedwebsite": row.Str(website),
		"normalizedpostal":  row.Str(postal),
		"normalizedccn":     row.Str(ccn),
		"normalizeddhc":     row.Str(dhc),
		"owner_name":        row.Str("Owner " + id),
		"owner_id":          row.Str("O-" + id),
		"account_status":    row.Str("Active"),
		"total_open_opps":   row.Str("3"),
		"lob":               row.Str("Acute Care"),
	}
}

func TestRunEmailPivotTakesPriority(t *testing.T) {
	accounts := row.Set{acctRow("A1", "acmehospital", "acme.com", "90210", "", "")}
	contacts := row.Set{{"email": row.Str("jane@acme.com"), "accountid": row.Str("A1")}}

	p, err := NewAccount(accounts, contacts, testScorer(), 50)
	require.NoError(t, err)

	input := []InputRow{{
		Index:      0,
		Normalized: row.Row{"email": row.Str("jane@acme.com")},
		Raw:        row.Row{"email": row.Str("jane@acme.com")},
	}}

	matched, manual, summary, err := p.Run(context.Background(), input)
	require.NoError(t, err)
	assert.Len(t, manual, 0)
	require.Len(t, matched, 1)
	assert.Equal(t, "A1", matched[0].Str("matched_accountid"))
	assert.Equal(t, "Email Match", matched[0].Str("match_type"))
	assert.Equal(t, 1, summary.EmailMatches)
}

func TestRunFuzzyMatchBelowThresholdGoesToManualReview(t *testing.T) {
	accounts := row.Set{acctRow("A1", "acmehospital", "acme.com", "90210", "", "")}
	p, err := NewAccount(accounts, nil, testScorer(), 50)
	require.NoError(t, err)

	input := []InputRow{{
		Index:      0,
		Normalized: row.Row{"normalizedcompany": row.Str("totallyunrelatedentity")},
		Raw:        row.Row{"company": row.Str("Totally Unrelated Entity")},
	}}

	matched, manual, summary, err := p.Run(context.Background(), input)
	require.NoError(t, err)
	assert.Len(t, matched, 0)
	require.Len(t, manual, 1)
	assert.Equal(t, 1, summary.Unmatched)
}

func TestRunDeterministicCCNFallback(t *testing.T) {
	accounts := row.Set{acctRow("A1", "somecompany", "", "", "123456", "")}
	p, err := NewAccount(accounts, nil, testScorer(), 50)
	require.NoError(t, err)

	input := []InputRow{{
		Index:      0,
		Normalized: row.Row{"normalizedccn": row.Str("123456")},
		Raw:        row.Row{"ccn": row.Str("123456")},
	}}

	matched, _, summary, err := p.Run(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "CCN Match", matched[0].Str("match_type"))
	assert.Equal(t, 99.0, matched[0].Get("match_score").Num())
	assert.Equal(t, 1, summary.CCNMatches)
}

func TestRunConservationEveryRowExactlyOnce(t *testing.T) {
	accounts := row.Set{acctRow("A1", "acmehospital", "acme.com", "90210", "", "")}
	p, err := NewAccount(accounts, nil, testScorer(), 50)
	require.NoError(t, err)

	input := []InputRow{
		{Index: 0, Normalized: row.Row{"normalizedwebsite": row.Str("acme.com"), "normalizedpostal": row.Str("90210")}, Raw: row.Row{"company": row.Str("Acme Hospital")}},
		{Index: 1, Normalized: row.Row{}, Raw: row.Row{"company": row.Str("No Signal Co")}},
	}

	matched, manual, summary, err := p.Run(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, len(input), len(matched)+len(manual))
	assert.Equal(t, len(input), summary.Total)
}
