package scorer

import (
	"fmt"
	"strings"

	"github.com/ignite/acctmatch/internal/fuzzy"
	"github.com/ignite/acctmatch/internal/row"
)

// ContactWeights holds the per-signal weights for the contact scorer,
// sourced from the Scoring_Contact config section. Every field defaults to
// 0 (disabled) when the section is absent.
type ContactWeights struct {
	Email     float64
	FirstName float64
	LastName  float64
	Title     float64
}

// Contact scores a candidate contact row against an account-matched input
// row. Name/title contributions use a lower noise floor (> 0.1) than the
// account scorer's (> 1) — a legacy asymmetry preserved here for
// output-string compatibility rather than because it's intentional.
type Contact struct {
	Weights ContactWeights
}

// Score returns the accumulated score and a comma-joined details string
// such as "Email(50),First(18.4)".
func (s Contact) Score(query, candidate row.Row) (float64, string) {
	var score float64
	var details []string

	queryEmail, candEmail := query.Str("email"), candidate.Str("email")
	if queryEmail != "" && queryEmail == candEmail {
		emailScore := s.Weights.Email
		score += emailScore
		details = append(details, fmt.Sprintf("Email(%.0f)", emailScore))
	}

	firstScore := s.Weights.FirstName * float64(fuzzy.Ratio(query.Str("firstname"), candidate.Str("firstname"))) / 100.0
	if firstScore > 0.1 {
		score += firstScore
		details = append(details, fmt.Sprintf("First(%.1f)", firstScore))
	}

	lastScore := s.Weights.LastName * float64(fuzzy.Ratio(query.Str("lastname"), candidate.Str("lastname"))) / 100.0
	if lastScore > 0.1 {
		score += lastScore
		details = append(details, fmt.Sprintf("Last(%.1f)", lastScore))
	}

	titleScore := s.Weights.Title * float64(fuzzy.TokenSetRatio(query.Str("title"), candidate.Str("title"))) / 100.0
	if titleScore > 0.1 {
		score += titleScore
		details = append(details, fmt.Sprintf("Title(%.1f)", titleScore))
	}

	return score, strings.Join(details, ",")
}
