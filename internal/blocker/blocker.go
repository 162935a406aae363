// Package blocker builds the inverted indexes used to cut an otherwise
// quadratic account-matching problem down to a small candidate set per
// query row: a cheap exact-key lookup runs first, and only a hit pays for
// the expensive similarity scoring that follows.
package blocker

import "github.com/ignite/acctmatch/internal/row"

// indexedColumns are the columns the Blocker builds inverted indexes on, in
// the priority order candidate selection tries them.
var indexedColumns = []string{"normalizedpostal", "state", "normalizeddomain", "normalizedphone"}

// Index maps a blocking key to the positions in the reference Set that
// carry it. Empty-string keys are never indexed — an absent normalized
// value must never accidentally collide with another absent value.
type Index struct {
	accounts row.Set
	byColumn map[string]map[string][]int
}

// Build constructs inverted indexes over accounts for every column in
// indexedColumns.
func Build(accounts row.Set) *Index {
	idx := &Index{
		accounts: accounts,
		byColumn: make(map[string]map[string][]int, len(indexedColumns)),
	}
	for _, col := range indexedColumns {
		m := make(map[string][]int)
		for i, r := range accounts {
			key := r.Str(col)
			if key == "" {
				continue
			}
			m[key] = append(m[key], i)
		}
		idx.byColumn[col] = m
	}
	return idx
}

// Candidates returns the candidate account-row positions for a query row,
// trying normalizedpostal, state, normalizeddomain, and normalizedphone in
// that priority order and returning the first non-empty hit. If none of
// the four keys are present in the query row (or none match), every
// account position is returned — an expensive but recall-preserving
// fallback for rows with no usable blocking key.
func (idx *Index) Candidates(query row.Row) []int {
	for _, col := range indexedColumns {
		key := query.Str(col)
		if key == "" {
			continue
		}
		if hits := idx.byColumn[col][key]; len(hits) > 0 {
			return hits
		}
	}
	return idx.all()
}

func (idx *Index) all() []int {
	out := make([]int, len(idx.accounts))
	for i := range idx.accounts {
		out[i] = i
	}
	return out
}
