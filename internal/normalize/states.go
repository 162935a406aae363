package normalize

// usStates maps full US state names to their two-letter lowercase codes.
// District of Columbia is included because the reference data treats it
// like a state for blocking purposes.
var usStates = map[string]string{
	"alabama": "al", "alaska": "ak", "arizona": "az", "arkansas": "ar",
	"california": "ca", "colorado": "co", "connecticut": "ct", "delaware": "de",
	"florida": "fl", "georgia": "ga", "hawaii": "hi", "idaho": "id",
	"illinois": "il", "indiana": "in", "iowa": "ia", "kansas": "ks",
	"kentucky": "ky", "louisiana": "la", "maine": "me", "maryland": "md",
	"massachusetts": "ma", "michigan": "mi", "minnesota": "mn", "mississippi": "ms",
	"missouri": "mo", "montana": "mt", "nebraska": "ne", "nevada": "nv",
	"new hampshire": "nh", "new jersey": "nj", "new mexico": "nm", "new york": "ny",
	"north carolina": "nc", "north dakota": "nd", "ohio": "oh", "oklahoma": "ok",
	"oregon": "or", "pennsylvania": "pa", "rhode island": "ri", "south carolina": "sc",
	"south dakota": "sd", "tennessee": "tn", "texas": "tx", "utah": "ut",
	"vermont": "vt", "virginia": "va", "washington": "wa", "west virginia": "wv",
	"wisconsin": "wi", "wyoming": "wy", "district of columbia": "dc",
}

// usStateCodes is the set of two-letter codes usStates maps onto, used to
// recognize an already-canonical code passed straight through.
var usStateCodes = func() map[string]bool {
	m := make(map[string]bool, len(usStates))
	for _, code := range usStates {
		m[code] = true
	}
	return m
}()

// countries maps common country names/codes to a two-letter lowercase code.
var countries = map[string]string{
	"united states":            "us",
	"united states of america": "us",
	"usa":                      "us",
	"us":                       "us",
	"canada":                   "ca",
	"ca":                       "ca",
	"united kingdom":           "gb",
	"uk":                       "gb",
	"great britain":            "gb",
	"australia":                "au",
	"au":                       "au",
}

// junkStrings are null-like sentinels that normalize to the empty string
// for any text/LOB/city field.
var junkStrings = map[string]bool{
	"nan": true, "none": true, "null": true, "n/a": true, "na": true, "-": true, "": true,
}

// sldExceptions are two-label second-level domains that actually require a
// third label (the registrable domain) to identify the organization, e.g.
// "nhs.uk" vs "acme.co.uk".
var sldExceptions = map[string]bool{
	"co.uk": true, "org.uk": true, "ac.uk": true,
	"com.au": true, "net.au": true, "co.jp": true,
}

// facilityTokens are generic healthcare words that StripFacilityTokens
// removes, as whole space-separated words, before a company name becomes
// part of a TF-IDF search_string.
var facilityTokens = map[string]bool{
	"hospital": true, "clinic": true, "center": true, "centre": true,
	"rehab": true, "rehabilitation": true, "care": true, "nursing": true,
	"facility": true, "facilities": true, "health": true, "healthcare": true,
}

// corporateSuffixes are whole-word legal-entity suffixes stripped from a
// normalized company name.
var corporateSuffixes = map[string]bool{
	"llc": true, "inc": true, "corp": true, "ltd": true, "lp": true, "co": true,
}
