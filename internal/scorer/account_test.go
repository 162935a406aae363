package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ignite/acctmatch/internal/row"
)

func defaultWeights() Weights {
	return Weights{
		CompanyName: 40,
		Website:     25,
		Phone:       20,
		Street:      15,
		PostalCode:  15,
		City:        10,
		PrimaryLOB:  5,
	}
}

func defaultPenalties() Penalties {
	return Penalties{LocationMismatch: 20, ConflictingWebsite: 10}
}

func TestAccountScoreExactWebsiteAndPostal(t *testing.T) {
	s := Account{Weights: defaultWeights(), Penalties: defaultPenalties()}
	query := row.Row{
		"normalizedwebsite": row.Str("acme.com"),
		"normalizedpostal":  row.Str("90210"),
	}
	candidate := row.Row{
		"normalizedwebsite": row.Str("acme.com"),
		"normalizedpostal":  row.Str("90210"),
	}
	score, details := s.Score(query, candidate)
	assert.Equal(t, 40.0, score)
	assert.Contains(t, details, "Website(25)")
	assert.Contains(t, details, "Postal(15)")
}

func TestAccountScoreLocationMismatchPenalty(t *testing.T) {
	s := Account{Weights: defaultWeights(), Penalties: defaultPenalties()}
	query := row.Row{"country": row.Str("us"), "state": row.Str("ca")}
	candidate := row.Row{"country": row.Str("us"), "state": row.Str("ny")}
	score, details := s.Score(query, candidate)
	assert.Equal(t, -20.0, score)
	assert.Contains(t, details, "StateMismatch(-20)")
}

func TestAccountScoreEmptyFieldsContributeNothing(t *testing.T) {
	s := Account{Weights: defaultWeights(), Penalties: defaultPenalties()}
	score, details := s.Score(row.Row{}, row.Row{})
	assert.Equal(t, 0.0, score)
	assert.Empty(t, details)
}

func TestAccountScoreFuzzyCompanyNameNoiseFloor(t *testing.T) {
	s := Account{Weights: defaultWeights(), Penalties: defaultPenalties()}
	query := row.Row{"normalizedcompany": row.Str("acmehospital")}
	candidate := row.Row{"normalizedcompany": row.Str("acmehosptial")}
	score, details := s.Score(query, candidate)
	assert.Greater(t, score, 1.0)
	assert.Contains(t, details, "Name(")
}

func TestAccountScoreConflictingWebsitePenalty(t *testing.T) {
	s := Account{Weights: defaultWeights(), Penalties: defaultPenalties()}
	query := row.Row{"normalizedwebsite": row.Str("acme.com")}
	candidate := row.Row{"normalizedwebsite": row.Str("other.com")}
	score, details := s.Score(query, candidate)
	assert.Equal(t, -10.0, score)
	assert.Contains(t, details, "WebsiteMismatch(-10)")
}
