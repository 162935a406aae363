package pipeline

import (
	"github.com/ignite/acctmatch/internal/row"
	"github.com/ignite/acctmatch/internal/scorer"
)

// Contact resolves a contact for every row that already carries a
// matched_accountid (the account pipeline's output), scoring only the
// contacts belonging to that account. Unlike Account, there is no
// separate manual-review split: every row is returned, matched or not,
// since a row without an account match was never eligible for contact
// resolution in the first place.
type Contact struct {
	contacts  row.Set
	scorer    scorer.Contact
	threshold float64
}

// NewContact groups contacts by accountid lazily at Run time; the
// constructor only captures the scorer and threshold.
func NewContact(contacts row.Set, sc scorer.Contact, threshold float64) *Contact {
	return &Contact{contacts: contacts, scorer: sc, threshold: threshold}
}

// Run scores, for each row with a non-empty matched_accountid, every
// contact belonging to that account, keeps the highest-scoring one, and
// if its score clears threshold appends the Matched_* contact columns.
// Rows with no matched_accountid, or whose account has no contacts, pass
// through unchanged.
func (c *Contact) Run(rows []row.Row) []row.Row {
	byAccount := make(map[string][]row.Row)
	for _, contact := range c.contacts {
		acctID := contact.Str("accountid")
		if acctID == "" {
			continue
		}
		byAccount[acctID] = append(byAccount[acctID], contact)
	}

	out := make([]row.Row, len(rows))
	for i, r := range rows {
		out[i] = r

		acctID := r.Str("matched_accountid")
		if acctID == "" {
			continue
		}
		candidates := byAccount[acctID]
		if len(candidates) == 0 {
			continue
		}

		var best row.Row
		var bestDetails string
		highestScore := -1.0
		for _, candidate := range candidates {
			score, details := c.scorer.Score(r, candidate)
			if score > highestScore {
				highestScore = score
				best = candidate
				bestDetails = details
			}
		}
		if best == nil || highestScore < c.threshold {
			continue
		}

		merged := r.Clone()
		merged["Matched_ContactID"] = row.Str(best.Str("id"))
		merged["Matched_FirstName"] = row.Str(best.Str("firstname"))
		merged["Matched_LastName"] = row.Str(best.Str("lastname"))
		merged["Matched_Title"] = row.Str(best.Str("title"))
		merged["Matched_Email"] = row.Str(best.Str("email"))
		merged["Matched_ContactPhone"] = row.Str(best.Str("phone"))
		merged["ContactMatchScore"] = row.Num(highestScore)
		merged["ContactMatchType"] = row.Str(bestDetails)
		out[i] = merged
	}
	return out
}
