package bmecat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/bmecat/pkg/bmecat"
)

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want bmecat.CurrencyCode
	}{
		{"EUR", "EUR"},
		{" eur ", "EUR"},
		{"CHF", "CHF"},
		{"ABC", bmecat.CurrencyUnknown},
		{"EURO", bmecat.CurrencyUnknown},
		{"", bmecat.CurrencyUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, bmecat.ParseCurrency(tt.in))
		})
	}
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want bmecat.LanguageCode
	}{
		{"deu", "deu"},
		{"DEU", "deu"},
		{"ger", "deu"},
		{"de", "deu"},
		{"eng", "eng"},
		{"fre", "fra"},
		{"d3u", bmecat.LanguageUnknown},
		{"german", bmecat.LanguageUnknown},
		{"", bmecat.LanguageUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, bmecat.ParseLanguage(tt.in))
		})
	}
}

func TestParseCountry(t *testing.T) {
	assert.Equal(t, bmecat.CountryCode("DE"), bmecat.ParseCountry("DE"))
	assert.Equal(t, bmecat.CountryCode("DE"), bmecat.ParseCountry("de"))
	assert.Equal(t, bmecat.CountryCode("AT"), bmecat.ParseCountry("AUT"))
	assert.Equal(t, bmecat.CountryUnknown, bmecat.ParseCountry("Germany"))
	assert.Equal(t, bmecat.CountryUnknown, bmecat.ParseCountry(""))
}

func TestParseQuantityCode(t *testing.T) {
	assert.Equal(t, bmecat.QuantityCode("C62"), bmecat.ParseQuantityCode("C62"))
	assert.Equal(t, bmecat.QuantityCode("MTR"), bmecat.ParseQuantityCode(" mtr "))
	assert.Equal(t, bmecat.QuantityCode("04"), bmecat.ParseQuantityCode("Code_04"))
	assert.Equal(t, bmecat.QuantityUnknown, bmecat.ParseQuantityCode("Stück"))
	assert.Equal(t, bmecat.QuantityUnknown, bmecat.ParseQuantityCode(""))
}

func TestDefaultQuantityTable_BuiltOnce(t *testing.T) {
	a := bmecat.DefaultQuantityTable()
	b := bmecat.DefaultQuantityTable()
	assert.Same(t, a, b)
	assert.Greater(t, a.Len(), 1000)
}

func TestNewQuantityTable_Custom(t *testing.T) {
	table := bmecat.NewQuantityTable([]string{"PCE", "set"})
	assert.Equal(t, bmecat.QuantityCode("PCE"), table.Lookup("pce"))
	assert.Equal(t, bmecat.QuantityCode("set"), table.Lookup("SET"))
	assert.Equal(t, bmecat.QuantityUnknown, table.Lookup("C62"))
}
