// Package pipeline orchestrates the account and contact resolution passes
// over rows already normalized by internal/normalize: building blocking
// and vectorizer state once, then applying the ordered strategies
// (email pivot → blocked fuzzy match → deterministic ID fallback for
// accounts; per-account scoring for contacts) while preserving the first
// successful strategy's result for each input row.
package pipeline

import (
	"context"
	"math"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ignite/acctmatch/internal/blocker"
	"github.com/ignite/acctmatch/internal/normalize"
	"github.com/ignite/acctmatch/internal/row"
	"github.com/ignite/acctmatch/internal/scorer"
	"github.com/ignite/acctmatch/internal/tfidf"
)

// Logger is the narrow logging surface the pipeline needs: a place to send
// non-fatal warnings (a failed vectorizer-cache save). Callers wire
// this to internal/logging; tests can use a no-op implementation.
type Logger interface {
	Warnf(format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Warnf(string, ...interface{}) {}

// InputRow pairs one input record in both its normalized form (used for
// matching) and its raw, as-loaded form (used for the final join-back onto
// the output row), sharing the stable original_index assigned at load
// time.
type InputRow struct {
	Index      int
	Normalized row.Row
	Raw        row.Row
}

// AccountResult is one row's resolved match: the matched account's public
// fields plus the score and explanation that produced it.
type AccountResult struct {
	MatchedAccountID string
	MatchScore       float64
	MatchType        string
	CompanyName      string
	LOB              string
	OwnerName        string
	OwnerID          string
	AccountStatus    string
	TotalOpenOpps    string
}

// RunSummary counts how many input rows each strategy resolved. It is pure
// bookkeeping over values the pipeline already computes.
type RunSummary struct {
	Total              int
	EmailMatches       int
	FuzzyMatches       int
	CCNMatches         int
	DHCMatches         int
	Unmatched          int
}

// Account is a fitted account-matching pipeline: blocking indexes and a
// TF-IDF vectorizer built once over a reference snapshot, reused across
// every input row in a run.
type Account struct {
	accounts          row.Set
	contacts          row.Set
	index             *blocker.Index
	vectorizer        *tfidf.Vectorizer
	matrix            tfidf.Matrix
	scorer            scorer.Account
	minimumFinalScore float64
	workers           int
	log               Logger
}

// AccountOption configures NewAccount.
type AccountOption func(*accountOptions)

type accountOptions struct {
	cache   *tfidf.Cache
	log     Logger
	workers int
}

// WithCache enables the content-addressed vectorizer cache. Without this
// option the vectorizer is always refit.
func WithCache(c *tfidf.Cache) AccountOption {
	return func(o *accountOptions) { o.cache = c }
}

// WithLogger routes non-fatal warnings (a failed vectorizer-cache save) to
// log instead of discarding them.
func WithLogger(log Logger) AccountOption {
	return func(o *accountOptions) { o.log = log }
}

// WithWorkers bounds Stage 2's fan-out. A value <= 0 means "unbounded"
// (errgroup.SetLimit(-1)).
func WithWorkers(n int) AccountOption {
	return func(o *accountOptions) { o.workers = n }
}

// searchString builds the TF-IDF document for a normalized row:
// facility_stripped(normalizedcompany) + " " + normalizedwebsite + " " + normalizedpostal.
func searchString(r row.Row) string {
	company := normalize.StripFacilityTokens(r.Str("normalizedcompany"))
	return strings.TrimSpace(company + " " + r.Str("normalizedwebsite") + " " + r.Str("normalizedpostal"))
}

// NewAccount fits the blocking indexes and TF-IDF vectorizer over accounts
// and returns a pipeline ready to Run against input rows. accounts must
// already carry their normalized projections (see internal/normalize);
// contacts are used as loaded, through their email and accountid columns.
func NewAccount(accounts, contacts row.Set, sc scorer.Account, minimumFinalScore float64, opts ...AccountOption) (*Account, error) {
	o := accountOptions{workers: 8, log: noopLogger{}}
	for _, opt := range opts {
		opt(&o)
	}

	docs := make([]string, len(accounts))
	for i, a := range accounts {
		docs[i] = searchString(a)
	}

	var vectorizer *tfidf.Vectorizer
	var matrix tfidf.Matrix
	key := tfidf.Key(docs)
	if o.cache != nil {
		if v, m, ok := o.cache.Load(key); ok {
			vectorizer, matrix = v, m
		}
	}
	if vectorizer == nil {
		vectorizer, matrix = tfidf.Fit(docs)
		if o.cache != nil {
			if err := o.cache.Save(key, vectorizer, matrix); err != nil {
				o.log.Warnf("tfidf cache save failed: %v", err)
			}
		}
	}

	return &Account{
		accounts:          accounts,
		contacts:          contacts,
		index:             blocker.Build(accounts),
		vectorizer:        vectorizer,
		matrix:            matrix,
		scorer:            sc,
		minimumFinalScore: minimumFinalScore,
		workers:           o.workers,
		log:               o.log,
	}, nil
}

func buildResult(a row.Row, accountID string, score float64, matchType string) AccountResult {
	return AccountResult{
		MatchedAccountID: accountID,
		MatchScore:       score,
		MatchType:        matchType,
		CompanyName:      a.Str("company"),
		LOB:              a.Str("lob"),
		OwnerName:        a.Str("owner_name"),
		OwnerID:          a.Str("owner_id"),
		AccountStatus:    a.Str("account_status"),
		TotalOpenOpps:    a.Str("total_open_opps"),
	}
}

// Run applies the three-stage account resolution strategy to input, in
// order, keeping the first stage that resolves each row. It returns the
// matched output rows (original columns + match columns), the unmatched
// rows destined for manual review (original columns only), and a
// RunSummary. Both output slices preserve input order.
func (p *Account) Run(ctx context.Context, input []InputRow) ([]row.Row, []row.Row, RunSummary, error) {
	matched := make(map[int]AccountResult, len(input))

	// Stage 1: email pivot.
	contactByEmail := make(map[string]row.Row)
	for _, c := range p.contacts {
		email := c.Str("email")
		if email == "" {
			continue
		}
		if _, exists := contactByEmail[email]; !exists {
			contactByEmail[email] = c
		}
	}
	accountByID := make(map[string]row.Row, len(p.accounts))
	for _, a := range p.accounts {
		id := a.Str("account_id")
		if id == "" {
			continue
		}
		if _, exists := accountByID[id]; !exists {
			accountByID[id] = a
		}
	}
	if len(contactByEmail) > 0 {
		for _, in := range input {
			email := in.Normalized.Str("email")
			if email == "" {
				continue
			}
			contact, ok := contactByEmail[email]
			if !ok {
				continue
			}
			accountID := contact.Str("accountid")
			account, ok := accountByID[accountID]
			if !ok {
				continue
			}
			matched[in.Index] = buildResult(account, accountID, 100, "Email Match")
		}
	}

	// Stage 2: blocked fuzzy match, sharded across a worker pool.
	var stage2 []InputRow
	for _, in := range input {
		if _, ok := matched[in.Index]; !ok {
			stage2 = append(stage2, in)
		}
	}
	results := make([]*AccountResult, len(stage2))
	g, _ := errgroup.WithContext(ctx)
	limit := p.workers
	if limit <= 0 {
		limit = -1
	}
	g.SetLimit(limit)
	for i, in := range stage2 {
		i, in := i, in
		g.Go(func() error {
			results[i] = p.matchOne(in.Normalized)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, RunSummary{}, err
	}
	for i, in := range stage2 {
		if results[i] != nil {
			matched[in.Index] = *results[i]
		}
	}

	// Stage 3: deterministic ID fallback (CCN, then DHC).
	ccnLookup := make(map[string]row.Row)
	dhcLookup := make(map[string]row.Row)
	for _, a := range p.accounts {
		if ccn := a.Str("normalizedccn"); ccn != "" {
			if _, exists := ccnLookup[ccn]; !exists {
				ccnLookup[ccn] = a
			}
		}
		if dhc := a.Str("normalizeddhc"); dhc != "" {
			if _, exists := dhcLookup[dhc]; !exists {
				dhcLookup[dhc] = a
			}
		}
	}
	for _, in := range input {
		if _, ok := matched[in.Index]; ok {
			continue
		}
		if ccn := in.Normalized.Str("normalizedccn"); ccn != "" {
			if a, ok := ccnLookup[ccn]; ok {
				matched[in.Index] = buildResult(a, a.Str("account_id"), 99, "CCN Match")
				continue
			}
		}
		if dhc := in.Normalized.Str("normalizeddhc"); dhc != "" {
			if a, ok := dhcLookup[dhc]; ok {
				matched[in.Index] = buildResult(a, a.Str("account_id"), 99, "DHC Match")
			}
		}
	}

	// Finalize: join back onto the raw input rows, preserving order.
	var matchedOutput, manualReview []row.Row
	var summary RunSummary
	summary.Total = len(input)
	for _, in := range input {
		res, ok := matched[in.Index]
		if !ok {
			manualReview = append(manualReview, in.Raw.Clone())
			summary.Unmatched++
			continue
		}
		out := in.Raw.Clone()
		out["matched_accountid"] = row.Str(res.MatchedAccountID)
		out["match_score"] = row.Num(res.MatchScore)
		out["match_type"] = row.Str(res.MatchType)
		out["Matched Company Name"] = row.Str(res.CompanyName)
		out["Matched Primary LOB"] = row.Str(res.LOB)
		out["Matched Owner Name"] = row.Str(res.OwnerName)
		out["Matched Owner ID"] = row.Str(res.OwnerID)
		out["Matched Account Status"] = row.Str(res.AccountStatus)
		out["Matched Total Open Opps"] = row.Str(res.TotalOpenOpps)
		matchedOutput = append(matchedOutput, out)

		switch {
		case res.MatchType == "Email Match":
			summary.EmailMatches++
		case res.MatchType == "CCN Match":
			summary.CCNMatches++
		case res.MatchType == "DHC Match":
			summary.DHCMatches++
		default:
			summary.FuzzyMatches++
		}
	}

	return matchedOutput, manualReview, summary, nil
}

// matchOne runs Stage 2 for a single normalized query row: build its
// search_string, skip if empty, otherwise block, rank the top 25 by
// cosine similarity, score each, and keep the single highest-scoring
// candidate if it clears minimumFinalScore.
func (p *Account) matchOne(query row.Row) *AccountResult {
	doc := searchString(query)
	if doc == "" {
		return nil
	}

	candidateIdx := p.index.Candidates(query)
	queryVec := p.vectorizer.Transform(doc)
	top := tfidf.TopKDefault(queryVec, p.matrix, candidateIdx)

	bestScore := math.Inf(-1)
	var best *AccountResult
	for _, c := range top {
		candidate := p.accounts[c.Index]
		score, details := p.scorer.Score(query, candidate)
		if score > bestScore {
			bestScore = score
			r := buildResult(candidate, candidate.Str("account_id"), score, details)
			best = &r
		}
	}
	if best == nil || bestScore < p.minimumFinalScore {
		return nil
	}
	return best
}
