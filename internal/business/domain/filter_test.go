package domain

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseListFilter_Empty(t *testing.T) {
	f, err := ParseListFilter(url.Values{})
	assert.NoError(t, err)
	assert.Empty(t, f.States)
	assert.Empty(t, f.Countries)
	assert.Nil(t, f.AuthorisedCapitalMin)
	assert.Nil(t, f.HasGSTNumber)
	assert.Nil(t, f.HasBalancesheet)
	assert.Equal(t, "", f.Search)
	assert.Equal(t, SortDefault, f.SortBy)
}

func TestParseListFilter_CommaLists(t *testing.T) {
	values := url.Values{}
	values.Set("state", "Maharashtra, Karnataka ,,Delhi")
	values.Set("company_type", "private_limited")

	f, err := ParseListFilter(values)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Maharashtra", "Karnataka", "Delhi"}, f.States)
	assert.Equal(t, []string{"private_limited"}, f.CompanyTypes)
}

func TestParseListFilter_Ranges(t *testing.T) {
	values := url.Values{}
	values.Set("authorised_capital_min", "100000")
	values.Set("authorised_capital_max", "500000")
	values.Set("selling_price_min", "250000")

	f, err := ParseListFilter(values)
	assert.NoError(t, err)
	assert.EqualValues(t, 100000, *f.AuthorisedCapitalMin)
	assert.EqualValues(t, 500000, *f.AuthorisedCapitalMax)
	assert.EqualValues(t, 250000, *f.SellingPriceMin)
	assert.Nil(t, f.SellingPriceMax)
}

func TestParseListFilter_MalformedNumberNamesParam(t *testing.T) {
	values := url.Values{}
	values.Set("paidup_capital_min", "ten lakh")

	_, err := ParseListFilter(values)
	var paramErr *ParamError
	assert.True(t, errors.As(err, &paramErr))
	assert.Equal(t, "paidup_capital_min", paramErr.Param)
}

func TestParseListFilter_MalformedBoolNamesParam(t *testing.T) {
	values := url.Values{}
	values.Set("gst", "yes please")

	_, err := ParseListFilter(values)
	var paramErr *ParamError
	assert.True(t, errors.As(err, &paramErr))
	assert.Equal(t, "gst", paramErr.Param)
}

func TestParseListFilter_Bools(t *testing.T) {
	values := url.Values{}
	values.Set("gst", "true")
	values.Set("bank", "false")
	values.Set("balancesheet", "1")

	f, err := ParseListFilter(values)
	assert.NoError(t, err)
	assert.True(t, *f.HasGSTNumber)
	assert.False(t, *f.HasBankAccount)
	assert.True(t, *f.HasBalancesheet)
	assert.Nil(t, f.HasImportExportCode)
}

func TestParseListFilter_SortOrders(t *testing.T) {
	tests := []struct {
		raw  string
		want SortOrder
	}{
		{"1", SortYearDesc},
		{"2", SortYearAsc},
		{"3", SortAuthorisedCapitalAsc},
		{"4", SortAuthorisedCapitalDesc},
		{"5", SortPaidupCapitalAsc},
		{"6", SortPaidupCapitalDesc},
		{"7", SortSellingPriceAsc},
		{"8", SortSellingPriceDesc},
		{"", SortDefault},
		{"9", SortDefault},
		{"price", SortDefault},
	}
	for _, tt := range tests {
		values := url.Values{}
		values.Set("sort_by", tt.raw)
		f, err := ParseListFilter(values)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, f.SortBy, "sort_by=%q", tt.raw)
	}
}
