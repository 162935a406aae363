package normalize

import "github.com/ignite/acctmatch/internal/row"

// accountRenameMap is the fixed Salesforce export → canonical field
// mapping for the account reference.
var accountRenameMap = map[string]string{
	"id":                            "account_id",
	"name":                          "company",
	"billingstreet":                 "street",
	"billingcity":                   "city",
	"billingstate":                  "state",
	"billingpostalcode":             "postal",
	"billingcountry":                "country",
	"primary_line_of_business__c":   "lob",
	"owner.name":                    "owner_name",
	"ownerid":                       "owner_id",
	"account_status__c":             "account_status",
	"total_open_opps__c":            "total_open_opps",
	"ccn__c":                        "ccn",
	"dhcsf__dhcsf_definitive_id__c": "dhc",
}

// inputRenameMap covers the handful of human-authored header spellings the
// free-form input list commonly arrives with. Anything not named here
// passes through unchanged, since the input list's schema is not fixed the
// way the Salesforce exports are.
var inputRenameMap = map[string]string{
	"company name":   "company",
	"street address": "street",
	"postalcode":     "postal",
	"website domain": "website",
	"primary lob":    "lob",
}

// ccnAliases and dhcAliases are candidate source columns for the input
// list's identifier fields, in priority order; the first one present wins.
var ccnAliases = []string{"ccn", "cms certification number (ccn)", "cms certification number", "ccn number"}
var dhcAliases = []string{"dhc", "definitive id", "dhc id"}

func rename(r row.Row, renameMap map[string]string) row.Row {
	out := make(row.Row, len(r))
	for k, v := range r {
		if to, ok := renameMap[k]; ok {
			k = to
		}
		if _, exists := out[k]; !exists {
			out[k] = v
		}
	}
	return out
}

// firstAvailable copies the first of candidates present in r onto dest,
// leaving r untouched if none are present.
func firstAvailable(r row.Row, candidates []string, dest string) row.Row {
	for _, c := range candidates {
		if v, ok := r[c]; ok {
			return r.Set(dest, v)
		}
	}
	return r
}

// projections computes every normalized field from an already-renamed
// row's raw columns, returning a copy with the
// `normalized*`, `state`, `country`, `city`, and `normalized_lob` keys
// added. It is shared by account and input rows since both present the
// canonical field names (company, street, city, state, postal, country,
// phone, website, lob, ccn, dhc) once renamed.
func projections(r row.Row) row.Row {
	out := r.Clone()
	website := Website(r.Str("website"))

	out["normalizedcompany"] = row.Str(Company(r.Str("company")))
	out["normalizedwebsite"] = row.Str(website)
	out["normalizeddomain"] = row.Str(Domain(website))
	out["normalizedphone"] = row.Str(Phone(r.Str("phone")))
	out["normalizedstreet"] = row.Str(Street(r.Str("street")))
	out["normalizedpostal"] = row.Str(Postal(r.Str("postal")))
	out["state"] = row.Str(State(r.Str("state")))
	out["country"] = row.Str(Country(r.Str("country")))
	out["city"] = row.Str(Text(r.Str("city")))
	out["normalized_lob"] = row.Str(Text(r.Str("lob")))
	out["normalizedccn"] = row.Str(CCN(r.Str("ccn")))
	out["normalizeddhc"] = row.Str(DHC(r.Str("dhc")))
	return out
}

// Account renames a raw account-reference row onto the canonical schema
// and adds its normalized projections.
func Account(r row.Row) row.Row {
	return projections(rename(r, accountRenameMap))
}

// Input renames a raw input-list row onto the canonical schema, resolves
// the identifier-column aliases the free-form input list commonly uses,
// and adds normalized projections. email is carried through unchanged —
// the email-pivot join compares it verbatim, never normalized.
func Input(r row.Row) row.Row {
	out := rename(r, inputRenameMap)
	out = firstAvailable(out, ccnAliases, "ccn")
	out = firstAvailable(out, dhcAliases, "dhc")
	return projections(out)
}
