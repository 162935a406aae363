package row

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellString(t *testing.T) {
	assert.Equal(t, "hello", Str("hello").String())
	assert.Equal(t, "42", Num(42).String())
	assert.Equal(t, "", Empty.String())
}

func TestCellIsAbsent(t *testing.T) {
	assert.True(t, Empty.IsAbsent())
	assert.False(t, Str("").IsAbsent())
	assert.False(t, Num(0).IsAbsent())
}

func TestCellFloat64(t *testing.T) {
	v, ok := Num(3.5).Float64()
	assert.True(t, ok)
	assert.Equal(t, 3.5, v)

	v, ok = Str("7").Float64()
	assert.True(t, ok)
	assert.Equal(t, 7.0, v)

	_, ok = Str("not a number").Float64()
	assert.False(t, ok)

	_, ok = Empty.Float64()
	assert.False(t, ok)
}

func TestRowGetAndStr(t *testing.T) {
	r := Row{"company": Str("Acme")}
	assert.Equal(t, "Acme", r.Str("company"))
	assert.Equal(t, "", r.Str("missing"))
	assert.True(t, r.Get("missing").IsAbsent())
}

func TestRowCloneIsIndependent(t *testing.T) {
	r := Row{"a": Str("1")}
	clone := r.Clone()
	clone["a"] = Str("2")
	assert.Equal(t, "1", r.Str("a"))
	assert.Equal(t, "2", clone.Str("a"))
}

func TestRowSetDoesNotMutateReceiver(t *testing.T) {
	r := Row{"a": Str("1")}
	updated := r.Set("b", Str("2"))
	assert.True(t, r.Get("b").IsAbsent())
	assert.Equal(t, "2", updated.Str("b"))
	assert.Equal(t, "1", updated.Str("a"))
}

func TestRequireColumns(t *testing.T) {
	header := map[string]bool{"company": true, "email": true}
	assert.NoError(t, RequireColumns(header, []string{"company"}, "Input list"))

	err := RequireColumns(header, []string{"company", "accountid"}, "Account export")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accountid")
	assert.Contains(t, err.Error(), "Account export")
}

func TestHeaderUnionsRaggedRows(t *testing.T) {
	set := Set{
		Row{"a": Str("1")},
		Row{"b": Str("2")},
	}
	h := Header(set)
	assert.True(t, h["a"])
	assert.True(t, h["b"])
	assert.False(t, h["c"])
}
