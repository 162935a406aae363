// Package fuzzy implements the two fuzzy string similarity metrics the
// scorer needs: a full-string edit-distance ratio and a token-set ratio
// that is order- and duplicate-insensitive. Both return integers in
// [0, 100], matching the contract of the well-known Levenshtein-based
// fuzzy-matching libraries. Note: this ratio is a pure edit-distance
// formula rather than a SequenceMatcher-style longest-match ratio —
// scores stay in [0, 100] and agree on ASCII input, but are not
// bit-identical to a SequenceMatcher-backed implementation.
package fuzzy

import (
	"math"
	"sort"
	"strings"
)

// Ratio returns the Levenshtein-based similarity of a and b as an integer
// in [0, 100]: 100 means identical, 0 means no characters in common given
// their combined length. The distance counts insertions and deletions only
// (a substitution costs 2), so it equals len(a)+len(b) minus twice the
// longest common subsequence.
func Ratio(a, b string) int {
	if a == "" && b == "" {
		return 100
	}
	total := len(a) + len(b)
	if total == 0 {
		return 100
	}
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				cur[j] = prev[j-1] + 1
			case prev[j] >= cur[j-1]:
				cur[j] = prev[j]
			default:
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	dist := total - 2*prev[len(b)]
	score := 100.0 * float64(total-dist) / float64(total)
	if score < 0 {
		score = 0
	}
	return int(math.Round(score))
}

// tokenSet returns the sorted, deduplicated whitespace-separated tokens of s.
func tokenSet(s string) []string {
	fields := strings.Fields(s)
	seen := make(map[string]bool, len(fields))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out
}

func joinNonEmpty(parts ...string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.TrimSpace(strings.Join(nonEmpty, " "))
}

// TokenSetRatio tokenizes a and b on whitespace, reconstructs the
// intersection and each side's symmetric difference, and returns the
// maximum of the three pairwise Ratio comparisons among
// {intersection, intersection+diffA, intersection+diffB}. This is
// insensitive to token order and to tokens repeated on one side but not
// the other, which makes it a better fit than Ratio for comparing names
// and titles whose word order can vary ("Doe, Jane" vs "Jane Doe").
func TokenSetRatio(a, b string) int {
	t1 := tokenSet(a)
	t2 := tokenSet(b)

	in1 := make(map[string]bool, len(t1))
	for _, t := range t1 {
		in1[t] = true
	}
	in2 := make(map[string]bool, len(t2))
	for _, t := range t2 {
		in2[t] = true
	}

	var intersection, diff1, diff2 []string
	for _, t := range t1 {
		if in2[t] {
			intersection = append(intersection, t)
		} else {
			diff1 = append(diff1, t)
		}
	}
	for _, t := range t2 {
		if !in1[t] {
			diff2 = append(diff2, t)
		}
	}
	sort.Strings(intersection)
	sort.Strings(diff1)
	sort.Strings(diff2)

	sect := strings.Join(intersection, " ")
	combined1 := joinNonEmpty(sect, strings.Join(diff1, " "))
	combined2 := joinNonEmpty(sect, strings.Join(diff2, " "))

	best := Ratio(sect, combined1)
	if r := Ratio(sect, combined2); r > best {
		best = r
	}
	if r := Ratio(combined1, combined2); r > best {
		best = r
	}
	return best
}
