package domain

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// SortOrder selects one of the fixed listing orderings.
type SortOrder int

const (
	SortDefault SortOrder = iota
	SortYearDesc
	SortYearAsc
	SortAuthorisedCapitalAsc
	SortAuthorisedCapitalDesc
	SortPaidupCapitalAsc
	SortPaidupCapitalDesc
	SortSellingPriceAsc
	SortSellingPriceDesc
)

// ListFilter is the validated, typed specification a listing query runs with.
// Multi-valued fields are OR within the field; all groups are AND-ed together.
// The verified-only baseline is not represented here: the repository applies
// it unconditionally before any of these predicates.
type ListFilter struct {
	States       []string
	Countries    []string
	CompanyTypes []string
	SubTypes     []string
	Industries   []string

	AuthorisedCapitalMin *int64
	AuthorisedCapitalMax *int64
	PaidupCapitalMin     *int64
	PaidupCapitalMax     *int64
	SellingPriceMin      *int64
	SellingPriceMax      *int64

	HasGSTNumber        *bool
	HasBankAccount      *bool
	HasImportExportCode *bool
	HasBalancesheet     *bool

	Search string

	SortBy SortOrder
}

// ParamError reports a malformed query parameter by name.
type ParamError struct {
	Param string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid value for parameter %q", e.Param)
}

// ParseListFilter translates the raw query parameter bag into a ListFilter.
// Every parameter is optional; malformed numeric or boolean values fail with
// a ParamError naming the offending parameter before any query runs.
func ParseListFilter(values url.Values) (ListFilter, error) {
	var f ListFilter

	f.States = splitList(values.Get("state"))
	f.Countries = splitList(values.Get("country"))
	f.CompanyTypes = splitList(values.Get("company_type"))
	f.SubTypes = splitList(values.Get("sub_type"))
	f.Industries = splitList(values.Get("industry"))

	var err error
	if f.AuthorisedCapitalMin, err = parseOptionalInt64(values.Get("authorised_capital_min"), "authorised_capital_min"); err != nil {
		return ListFilter{}, err
	}
	if f.AuthorisedCapitalMax, err = parseOptionalInt64(values.Get("authorised_capital_max"), "authorised_capital_max"); err != nil {
		return ListFilter{}, err
	}
	if f.PaidupCapitalMin, err = parseOptionalInt64(values.Get("paidup_capital_min"), "paidup_capital_min"); err != nil {
		return ListFilter{}, err
	}
	if f.PaidupCapitalMax, err = parseOptionalInt64(values.Get("paidup_capital_max"), "paidup_capital_max"); err != nil {
		return ListFilter{}, err
	}
	if f.SellingPriceMin, err = parseOptionalInt64(values.Get("selling_price_min"), "selling_price_min"); err != nil {
		return ListFilter{}, err
	}
	if f.SellingPriceMax, err = parseOptionalInt64(values.Get("selling_price_max"), "selling_price_max"); err != nil {
		return ListFilter{}, err
	}

	if f.HasGSTNumber, err = parseOptionalBool(values.Get("gst"), "gst"); err != nil {
		return ListFilter{}, err
	}
	if f.HasBankAccount, err = parseOptionalBool(values.Get("bank"), "bank"); err != nil {
		return ListFilter{}, err
	}
	if f.HasImportExportCode, err = parseOptionalBool(values.Get("import_export_code"), "import_export_code"); err != nil {
		return ListFilter{}, err
	}
	if f.HasBalancesheet, err = parseOptionalBool(values.Get("balancesheet"), "balancesheet"); err != nil {
		return ListFilter{}, err
	}

	f.Search = strings.TrimSpace(values.Get("search"))
	f.SortBy = parseSortOrder(values.Get("sort_by"))

	return f, nil
}

func parseSortOrder(raw string) SortOrder {
	switch strings.TrimSpace(raw) {
	case "1":
		return SortYearDesc
	case "2":
		return SortYearAsc
	case "3":
		return SortAuthorisedCapitalAsc
	case "4":
		return SortAuthorisedCapitalDesc
	case "5":
		return SortPaidupCapitalAsc
	case "6":
		return SortPaidupCapitalDesc
	case "7":
		return SortSellingPriceAsc
	case "8":
		return SortSellingPriceDesc
	default:
		return SortDefault
	}
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func parseOptionalInt64(raw, param string) (*int64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return nil, &ParamError{Param: param}
	}
	return &parsed, nil
}

func parseOptionalBool(raw, param string) (*bool, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseBool(trimmed)
	if err != nil {
		return nil, &ParamError{Param: param}
	}
	return &parsed, nil
}
