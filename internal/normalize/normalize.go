// Package normalize implements the deterministic, idempotent canonicalization
// rules that turn heterogeneous input text into comparison keys: company
// names, websites, domains, phone numbers, street addresses, postal codes,
// states, countries, and the two healthcare identifiers (CCN, DHC).
//
// Every exported Company/Website/... function is a pure function of its
// input: same text in, same canonical key out, every time. Applying a rule
// twice in a row must return the same value as applying it once.
package normalize

import (
	"regexp"
	"sort"
	"strings"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/unicode/norm"
)

var (
	geoSuffixPattern  = regexp.MustCompile(`\s+-\s+.*$`)
	nonAlnumPattern   = regexp.MustCompile(`[^a-z0-9\s]`)
	wordSuffixPattern = buildSuffixPattern()
	whitespacePattern = regexp.MustCompile(`\s+`)
	schemePattern     = regexp.MustCompile(`^https?://`)
	wwwPattern        = regexp.MustCompile(`^www\.`)
	streetUnitPattern = regexp.MustCompile(`\s(#|apt|suite|ste)\s?\w*`)
	digitsPattern     = regexp.MustCompile(`[0-9]`)
)

// buildSuffixPattern assembles the whole-word corporate-suffix alternation
// from corporateSuffixes rather than hardcoding it a second time, so the
// wordlist in states.go stays the single source of truth.
func buildSuffixPattern() *regexp.Regexp {
	suffixes := make([]string, 0, len(corporateSuffixes))
	for s := range corporateSuffixes {
		suffixes = append(suffixes, s)
	}
	sort.Strings(suffixes)
	return regexp.MustCompile(`\b(` + strings.Join(suffixes, "|") + `)\b`)
}

// foldASCII transliterates accented/Unicode letters to their closest ASCII
// equivalent so that "Café Médical" and "Cafe Medical" fold to the same
// normalized key. It is a no-op on already-ASCII input, so it never changes
// behavior for the plain-ASCII rules the rest of this file documents.
func foldASCII(s string) string {
	return unidecode.Unidecode(norm.NFKD.String(s))
}

// isJunk reports whether a lowercase-trimmed value is one of the null-like
// sentinels that the engine treats as "absent".
func isJunk(v string) bool {
	return junkStrings[v]
}

// cleanText lowercases, trims, and coerces null-like sentinels to "".
// It backs the Text/LOB/City rule (§4.1) and every other rule's junk check.
func cleanText(s string) string {
	v := strings.ToLower(strings.TrimSpace(s))
	if isJunk(v) {
		return ""
	}
	return v
}

// Company canonicalizes a company name: lowercase, strip a trailing
// " - <anything>" geographic suffix, strip non-alphanumerics, strip
// whole-word corporate suffixes, collapse then remove all whitespace.
func Company(s string) string {
	v := strings.ToLower(foldASCII(s))
	v = geoSuffixPattern.ReplaceAllString(v, "")
	v = nonAlnumPattern.ReplaceAllString(v, "")
	v = wordSuffixPattern.ReplaceAllString(v, "")
	v = whitespacePattern.ReplaceAllString(v, " ")
	v = strings.TrimSpace(v)
	v = strings.ReplaceAll(v, " ", "")
	return v
}

// Website canonicalizes a URL/host down to a bare lowercase host: strip an
// optional scheme, strip a leading "www.", and truncate at the first "/"
// or "?".
func Website(s string) string {
	v := cleanText(s)
	if v == "" {
		return ""
	}
	v = schemePattern.ReplaceAllString(v, "")
	v = wwwPattern.ReplaceAllString(v, "")
	if i := strings.IndexAny(v, "/?"); i >= 0 {
		v = v[:i]
	}
	return strings.TrimSpace(v)
}

// Domain derives the registrable domain from an already-normalized website
// value. A host with two or fewer labels is returned unchanged; otherwise
// the last two labels are joined, except for a short list of
// second-level-domain exceptions (co.uk, com.au, ...) where three labels
// are required to reach the registrable domain.
func Domain(normalizedWebsite string) string {
	if normalizedWebsite == "" {
		return ""
	}
	parts := strings.Split(normalizedWebsite, ".")
	if len(parts) <= 2 {
		return normalizedWebsite
	}
	sld := strings.Join(parts[len(parts)-2:], ".")
	if sldExceptions[sld] && len(parts) >= 3 {
		return strings.Join(parts[len(parts)-3:], ".")
	}
	return sld
}

// Phone extracts every ASCII digit from s, in order, and concatenates them.
func Phone(s string) string {
	return strings.Join(digitsPattern.FindAllString(s, -1), "")
}

// Street canonicalizes a street address: lowercase, coerce null-likes to
// "", truncate at the first unit/suite/apartment marker, strip
// non-alphanumerics, and remove all whitespace.
func Street(s string) string {
	v := cleanText(foldASCII(s))
	if v == "" {
		return ""
	}
	if loc := streetUnitPattern.FindStringIndex(v); loc != nil {
		v = v[:loc[0]]
	}
	v = nonAlnumPattern.ReplaceAllString(v, "")
	v = whitespacePattern.ReplaceAllString(v, "")
	return v
}

// Postal concatenates the digits of s and returns the first 5 if at least
// 5 digits were found, otherwise "". A zero-pad step for shorter inputs is
// intentionally not implemented: it would require fewer than 5 digits to
// ever reach it, which this 5-digit gate never allows.
func Postal(s string) string {
	digits := strings.Join(digitsPattern.FindAllString(s, -1), "")
	if len(digits) < 5 {
		return ""
	}
	return digits[:5]
}

// State canonicalizes a US state name or abbreviation to a two-letter
// lowercase code. An input that already is a known code passes through
// unchanged; anything else is returned lowercased/trimmed as a best effort.
func State(s string) string {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return ""
	}
	if usStateCodes[v] {
		return v
	}
	if code, ok := usStates[v]; ok {
		return code
	}
	return v
}

// Country canonicalizes a handful of common country names/abbreviations to
// a two-letter lowercase code, passing anything else through lowercased and
// trimmed.
func Country(s string) string {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return ""
	}
	if code, ok := countries[v]; ok {
		return code
	}
	return v
}

// Text lowercases, trims, and coerces null-like sentinels to "". It backs
// the LOB and City normalized projections.
func Text(s string) string {
	return cleanText(s)
}

// CCN normalizes a CMS Certification Number: digits only, accepted only at
// length 5 or 6, otherwise "".
func CCN(s string) string {
	digits := strings.Join(digitsPattern.FindAllString(s, -1), "")
	if len(digits) == 5 || len(digits) == 6 {
		return digits
	}
	return ""
}

// DHC normalizes a Definitive Healthcare identifier: lowercase and trimmed,
// accepted only at length >= 5, otherwise "".
func DHC(s string) string {
	v := strings.ToLower(strings.TrimSpace(s))
	if len(v) >= 5 {
		return v
	}
	return ""
}

// StripFacilityTokens removes whole-word generic healthcare vocabulary
// ("hospital", "clinic", "center", ...) from a company name before it is
// used as part of a TF-IDF search_string. Only space-separated words are
// matched: on Company() output, which has no spaces left, it removes
// nothing unless the whole key is one of those words.
func StripFacilityTokens(normalizedCompany string) string {
	if normalizedCompany == "" {
		return ""
	}
	fields := strings.Fields(normalizedCompany)
	kept := fields[:0]
	for _, f := range fields {
		if !facilityTokens[f] {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}
