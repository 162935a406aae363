package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompany(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Acme Hospital, LLC", "acmehospital"},
		{"Acme Corp - Springfield", "acme"},
		{"  St. Mary's Medical Center  ", "stmarysmedicalcenter"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Company(c.in), c.in)
	}
}

func TestCompanyIdempotent(t *testing.T) {
	in := "Acme Hospital, LLC - Branch Office"
	once := Company(in)
	twice := Company(once)
	assert.Equal(t, once, twice)
}

func TestWebsite(t *testing.T) {
	cases := []struct{ in, want string }{
		{"https://www.acme.com/about", "acme.com"},
		{"http://acme.org?ref=1", "acme.org"},
		{"ACME.COM", "acme.com"},
		{"n/a", ""},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Website(c.in), c.in)
	}
}

func TestDomain(t *testing.T) {
	cases := []struct{ in, want string }{
		{"acme.com", "acme.com"},
		{"sub.acme.com", "acme.com"},
		{"acme.co.uk", "acme.co.uk"},
		{"sub.acme.co.uk", "acme.co.uk"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Domain(c.in), c.in)
	}
}

func TestPhone(t *testing.T) {
	assert.Equal(t, "5551234567", Phone("(555) 123-4567"))
	assert.Equal(t, "", Phone("n/a"))
}

func TestPostal(t *testing.T) {
	assert.Equal(t, "90210", Postal("90210-1234"))
	assert.Equal(t, "", Postal("123"))
	assert.Equal(t, "", Postal(""))
}

func TestState(t *testing.T) {
	assert.Equal(t, "ca", State("California"))
	assert.Equal(t, "ca", State("CA"))
	assert.Equal(t, "xx", State("xx"))
	assert.Equal(t, "", State(""))
}

func TestCountry(t *testing.T) {
	assert.Equal(t, "us", Country("United States"))
	assert.Equal(t, "us", Country("USA"))
	assert.Equal(t, "", Country(""))
}

func TestCCN(t *testing.T) {
	assert.Equal(t, "12345", CCN("1-2345"))
	assert.Equal(t, "123456", CCN("123456"))
	assert.Equal(t, "", CCN("1234"))
	assert.Equal(t, "", CCN("1234567"))
}

func TestDHC(t *testing.T) {
	assert.Equal(t, "abcde", DHC("  ABCDE  "))
	assert.Equal(t, "", DHC("abc"))
}

func TestStreet(t *testing.T) {
	assert.Equal(t, "123mainst", Street("123 Main St Apt 4B"))
	assert.Equal(t, "123mainst", Street("123 Main St # 4B"))
	assert.Equal(t, "", Street("n/a"))
}

func TestStripFacilityTokens(t *testing.T) {
	// Company() already removes whitespace, so a token-removal pass over its
	// output rarely finds a whole-word boundary to strip — this reproduces
	// that behavior rather than papering over it.
	assert.Equal(t, "acmehospital", StripFacilityTokens("acmehospital"))
	assert.Equal(t, "acme medical group", StripFacilityTokens("acme medical group"))
	assert.Equal(t, "acme", StripFacilityTokens("acme nursing center"))
}

func TestFoldASCIIAdditivePreStep(t *testing.T) {
	assert.Equal(t, Company("Cafe Medical"), Company("Café Médical"))
}
