// Package scorer implements the weighted multi-signal scorers: one for
// ranking a candidate account against an input row, one for ranking a
// candidate contact within a resolved account. Both accumulate a
// floating-point score and a human-readable, comma-joined detail trail
// naming which signals contributed and by how much.
package scorer

import (
	"fmt"
	"strings"

	"github.com/ignite/acctmatch/internal/fuzzy"
	"github.com/ignite/acctmatch/internal/row"
)

// Weights holds the per-signal scoring weights for the account scorer,
// sourced from the Scoring_Weights config section.
type Weights struct {
	CompanyName float64
	Website     float64
	Phone       float64
	Street      float64
	PostalCode  float64
	City        float64
	PrimaryLOB  float64
}

// Penalties holds the account scorer's penalty magnitudes, sourced from the
// Scoring_Penalties config section. Both default to 0 (disabled).
type Penalties struct {
	LocationMismatch   float64
	ConflictingWebsite float64
}

// Account scores a candidate account row against an input row across a
// fixed table of weighted signals. Every comparison treats an empty
// string as "no signal" — two absent values never count as a match or a
// mismatch.
type Account struct {
	Weights   Weights
	Penalties Penalties
}

// Score returns the accumulated score and a comma-joined details string
// such as "Name(38),Postal(15),LOB(7)", in signal-table order, describing
// which signals fired and their rounded contribution.
func (s Account) Score(query, candidate row.Row) (float64, string) {
	var score float64
	var details []string

	add := func(label string, contribution float64) {
		score += contribution
		details = append(details, fmt.Sprintf("%s(%s)", label, formatContribution(contribution)))
	}

	queryCountry, candCountry := query.Str("country"), candidate.Str("country")
	if queryCountry != "" && candCountry != "" && queryCountry != candCountry {
		add("CountryMismatch", -s.Penalties.LocationMismatch)
	}

	queryState, candState := query.Str("state"), candidate.Str("state")
	if queryState != "" && candState != "" && queryState != candState {
		add("StateMismatch", -s.Penalties.LocationMismatch)
	}

	queryCompany, candCompany := query.Str("normalizedcompany"), candidate.Str("normalizedcompany")
	if queryCompany != "" && candCompany != "" {
		nameScore := s.Weights.CompanyName * float64(fuzzy.TokenSetRatio(queryCompany, candCompany)) / 100.0
		if nameScore > 1 {
			add("Name", nameScore)
		}
	}

	queryWeb, candWeb := query.Str("normalizedwebsite"), candidate.Str("normalizedwebsite")
	if queryWeb != "" && candWeb != "" {
		if queryWeb == candWeb {
			add("Website", s.Weights.Website)
		} else if s.Penalties.ConflictingWebsite != 0 {
			add("WebsiteMismatch", -s.Penalties.ConflictingWebsite)
		}
	}

	queryPhone, candPhone := query.Str("normalizedphone"), candidate.Str("normalizedphone")
	if queryPhone != "" && candPhone != "" && queryPhone == candPhone {
		add("Phone", s.Weights.Phone)
	}

	queryStreet, candStreet := query.Str("normalizedstreet"), candidate.Str("normalizedstreet")
	if queryStreet != "" && candStreet != "" {
		streetScore := s.Weights.Street * float64(fuzzy.Ratio(queryStreet, candStreet)) / 100.0
		if streetScore > 1 {
			add("Street", streetScore)
		}
	}

	queryCity, candCity := query.Str("city"), candidate.Str("city")
	if queryCity != "" && candCity != "" {
		cityScore := s.Weights.City * float64(fuzzy.Ratio(queryCity, candCity)) / 100.0
		if cityScore > 1 {
			add("City", cityScore)
		}
	}

	queryPostal, candPostal := query.Str("normalizedpostal"), candidate.Str("normalizedpostal")
	if queryPostal != "" && queryPostal == candPostal {
		add("Postal", s.Weights.PostalCode)
	}

	queryLOB, candLOB := query.Str("normalized_lob"), candidate.Str("normalized_lob")
	if queryLOB != "" && candLOB != "" {
		lobScore := s.Weights.PrimaryLOB * float64(fuzzy.TokenSetRatio(queryLOB, candLOB)) / 100.0
		if lobScore > 1 {
			add("LOB", lobScore)
		}
	}

	return score, strings.Join(details, ",")
}

func formatContribution(v float64) string {
	return fmt.Sprintf("%.0f", v)
}
