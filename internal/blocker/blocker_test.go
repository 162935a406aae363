package blocker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ignite/acctmatch/internal/row"
)

func acct(postal, state, domain, phone string) row.Row {
	return row.Row{
		"normalizedpostal": row.Str(postal),
		"state":            row.Str(state),
		"normalizeddomain": row.Str(domain),
		"normalizedphone":  row.Str(phone),
	}
}

func TestCandidatesPostalHit(t *testing.T) {
	accounts := row.Set{
		acct("90210", "ca", "acme.com", "5551234567"),
		acct("10001", "ny", "other.com", "5559876543"),
	}
	idx := Build(accounts)

	query := row.Row{"normalizedpostal": row.Str("90210")}
	got := idx.Candidates(query)
	assert.Equal(t, []int{0}, got)
}

func TestCandidatesFallsThroughPriorityOrder(t *testing.T) {
	accounts := row.Set{
		acct("", "ca", "acme.com", ""),
	}
	idx := Build(accounts)

	query := row.Row{"normalizedpostal": row.Str("99999"), "state": row.Str("ca")}
	got := idx.Candidates(query)
	assert.Equal(t, []int{0}, got)
}

func TestCandidatesNoUsableKeyReturnsAll(t *testing.T) {
	accounts := row.Set{
		acct("90210", "ca", "acme.com", "5551234567"),
		acct("10001", "ny", "other.com", "5559876543"),
	}
	idx := Build(accounts)

	got := idx.Candidates(row.Row{})
	assert.ElementsMatch(t, []int{0, 1}, got)
}

func TestCandidatesEmptyKeyNeverIndexed(t *testing.T) {
	accounts := row.Set{
		acct("", "", "", ""),
		acct("90210", "ca", "acme.com", "5551234567"),
	}
	idx := Build(accounts)

	// The empty-postal account is not indexed under any key, so a postal
	// lookup returns only the account that carries that postal.
	got := idx.Candidates(row.Row{"normalizedpostal": row.Str("90210")})
	assert.Equal(t, []int{1}, got)
}
