package repository

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	balancesheetdomain "github.com/param211/corpmart/internal/balancesheet/domain"
	"github.com/param211/corpmart/internal/business/domain"
	"github.com/param211/corpmart/pkg/db/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&domain.Business{}, &balancesheetdomain.Balancesheet{}))
	return conn
}

func strPtr(v string) *string { return &v }
func i64Ptr(v int64) *int64   { return &v }
func boolPtr(v bool) *bool    { return &v }

func seedBusiness(t *testing.T, conn *gorm.DB, b domain.Business) {
	t.Helper()
	if b.BusinessName == "" {
		b.BusinessName = "Acme Traders"
	}
	if b.Country == "" {
		b.Country = "India"
	}
	require.NoError(t, conn.Create(&b).Error)
}

func defaultPage() pagination.Pagination {
	return pagination.Pagination{Page: 1, PageSize: 20}.Normalize()
}

func TestList_VerifiedOnlyBaseline(t *testing.T) {
	conn := setupDB(t)
	r := Provide()

	seedBusiness(t, conn, domain.Business{ID: 1, PostedBy: 9, IsVerified: true})
	seedBusiness(t, conn, domain.Business{ID: 2, PostedBy: 9, IsVerified: false})
	seedBusiness(t, conn, domain.Business{ID: 3, PostedBy: 9, IsVerified: true})

	items, total, err := r.List(context.Background(), conn, domain.ListFilter{}, defaultPage())
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, items, 2)
	assert.EqualValues(t, 1, items[0].ID)
	assert.EqualValues(t, 3, items[1].ID)
}

func TestList_MultiValueFieldIsUnion(t *testing.T) {
	conn := setupDB(t)
	r := Provide()

	seedBusiness(t, conn, domain.Business{ID: 1, IsVerified: true, State: strPtr("Maharashtra")})
	seedBusiness(t, conn, domain.Business{ID: 2, IsVerified: true, State: strPtr("Karnataka")})
	seedBusiness(t, conn, domain.Business{ID: 3, IsVerified: true, State: strPtr("Delhi")})

	items, total, err := r.List(context.Background(), conn, domain.ListFilter{
		States: []string{"Maharashtra", "Delhi"},
	}, defaultPage())
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, items, 2)
	assert.EqualValues(t, 1, items[0].ID)
	assert.EqualValues(t, 3, items[1].ID)
}

func TestList_FiltersIntersectAcrossFields(t *testing.T) {
	conn := setupDB(t)
	r := Provide()

	seedBusiness(t, conn, domain.Business{ID: 1, IsVerified: true, State: strPtr("Maharashtra"), Industry: strPtr("retail")})
	seedBusiness(t, conn, domain.Business{ID: 2, IsVerified: true, State: strPtr("Maharashtra"), Industry: strPtr("textiles")})
	seedBusiness(t, conn, domain.Business{ID: 3, IsVerified: true, State: strPtr("Delhi"), Industry: strPtr("retail")})

	items, total, err := r.List(context.Background(), conn, domain.ListFilter{
		States:     []string{"Maharashtra"},
		Industries: []string{"retail"},
	}, defaultPage())
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, items, 1)
	assert.EqualValues(t, 1, items[0].ID)
}

func TestList_RangeBoundsAreInclusive(t *testing.T) {
	conn := setupDB(t)
	r := Provide()

	seedBusiness(t, conn, domain.Business{ID: 1, IsVerified: true, AuthorisedCapital: i64Ptr(100)})
	seedBusiness(t, conn, domain.Business{ID: 2, IsVerified: true, AuthorisedCapital: i64Ptr(200)})
	seedBusiness(t, conn, domain.Business{ID: 3, IsVerified: true, AuthorisedCapital: i64Ptr(300)})

	items, total, err := r.List(context.Background(), conn, domain.ListFilter{
		AuthorisedCapitalMin: i64Ptr(100),
		AuthorisedCapitalMax: i64Ptr(200),
	}, defaultPage())
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, items, 2)
	assert.EqualValues(t, 1, items[0].ID)
	assert.EqualValues(t, 2, items[1].ID)
}

func TestList_SellingPriceFiltersAdminPrice(t *testing.T) {
	conn := setupDB(t)
	r := Provide()

	seedBusiness(t, conn, domain.Business{
		ID: 1, IsVerified: true,
		UserDefinedSellingPrice:  i64Ptr(900),
		AdminDefinedSellingPrice: i64Ptr(100),
	})
	seedBusiness(t, conn, domain.Business{
		ID: 2, IsVerified: true,
		UserDefinedSellingPrice:  i64Ptr(100),
		AdminDefinedSellingPrice: i64Ptr(900),
	})

	items, total, err := r.List(context.Background(), conn, domain.ListFilter{
		SellingPriceMin: i64Ptr(500),
	}, defaultPage())
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, items, 1)
	assert.EqualValues(t, 2, items[0].ID)
}

func TestList_BoolFilters(t *testing.T) {
	conn := setupDB(t)
	r := Provide()

	seedBusiness(t, conn, domain.Business{ID: 1, IsVerified: true, HasGSTNumber: boolPtr(true)})
	seedBusiness(t, conn, domain.Business{ID: 2, IsVerified: true, HasGSTNumber: boolPtr(false)})
	seedBusiness(t, conn, domain.Business{ID: 3, IsVerified: true})

	items, total, err := r.List(context.Background(), conn, domain.ListFilter{
		HasGSTNumber: boolPtr(false),
	}, defaultPage())
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, items, 1)
	assert.EqualValues(t, 2, items[0].ID)
}

func TestList_BalancesheetFilter(t *testing.T) {
	conn := setupDB(t)
	r := Provide()

	seedBusiness(t, conn, domain.Business{ID: 1, IsVerified: true})
	seedBusiness(t, conn, domain.Business{ID: 2, IsVerified: true})
	require.NoError(t, conn.Create(&balancesheetdomain.Balancesheet{
		ID: 10, BusinessID: 1, FileName: "fy24.pdf",
	}).Error)

	withSheet, total, err := r.List(context.Background(), conn, domain.ListFilter{
		HasBalancesheet: boolPtr(true),
	}, defaultPage())
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, withSheet, 1)
	assert.EqualValues(t, 1, withSheet[0].ID)

	withoutSheet, total, err := r.List(context.Background(), conn, domain.ListFilter{
		HasBalancesheet: boolPtr(false),
	}, defaultPage())
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, withoutSheet, 1)
	assert.EqualValues(t, 2, withoutSheet[0].ID)
}

func TestList_Search(t *testing.T) {
	conn := setupDB(t)
	r := Provide()

	seedBusiness(t, conn, domain.Business{ID: 1, IsVerified: true, SaleDescription: "profitable textile exporter"})
	seedBusiness(t, conn, domain.Business{ID: 2, IsVerified: true, SaleDescription: "restaurant franchise"})

	items, total, err := r.List(context.Background(), conn, domain.ListFilter{
		Search: "textile",
	}, defaultPage())
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, items, 1)
	assert.EqualValues(t, 1, items[0].ID)
}

func TestList_SortByAuthorisedCapital(t *testing.T) {
	conn := setupDB(t)
	r := Provide()

	seedBusiness(t, conn, domain.Business{ID: 1, IsVerified: true, AuthorisedCapital: i64Ptr(300)})
	seedBusiness(t, conn, domain.Business{ID: 2, IsVerified: true, AuthorisedCapital: i64Ptr(100)})
	seedBusiness(t, conn, domain.Business{ID: 3, IsVerified: true, AuthorisedCapital: i64Ptr(200)})

	asc, _, err := r.List(context.Background(), conn, domain.ListFilter{
		SortBy: domain.SortAuthorisedCapitalAsc,
	}, defaultPage())
	require.NoError(t, err)
	require.Len(t, asc, 3)
	assert.EqualValues(t, 2, asc[0].ID)
	assert.EqualValues(t, 3, asc[1].ID)
	assert.EqualValues(t, 1, asc[2].ID)

	desc, _, err := r.List(context.Background(), conn, domain.ListFilter{
		SortBy: domain.SortAuthorisedCapitalDesc,
	}, defaultPage())
	require.NoError(t, err)
	require.Len(t, desc, 3)
	assert.EqualValues(t, 1, desc[0].ID)
	assert.EqualValues(t, 3, desc[1].ID)
	assert.EqualValues(t, 2, desc[2].ID)
}

func TestList_SortTieBreaksOnID(t *testing.T) {
	conn := setupDB(t)
	r := Provide()

	seedBusiness(t, conn, domain.Business{ID: 3, IsVerified: true, AuthorisedCapital: i64Ptr(100)})
	seedBusiness(t, conn, domain.Business{ID: 1, IsVerified: true, AuthorisedCapital: i64Ptr(100)})
	seedBusiness(t, conn, domain.Business{ID: 2, IsVerified: true, AuthorisedCapital: i64Ptr(100)})

	items, _, err := r.List(context.Background(), conn, domain.ListFilter{
		SortBy: domain.SortAuthorisedCapitalAsc,
	}, defaultPage())
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.EqualValues(t, 1, items[0].ID)
	assert.EqualValues(t, 2, items[1].ID)
	assert.EqualValues(t, 3, items[2].ID)
}

func TestList_Pagination(t *testing.T) {
	conn := setupDB(t)
	r := Provide()

	for id := int64(1); id <= 5; id++ {
		seedBusiness(t, conn, domain.Business{ID: id, IsVerified: true})
	}

	page := pagination.Pagination{Page: 2, PageSize: 2}.Normalize()
	items, total, err := r.List(context.Background(), conn, domain.ListFilter{}, page)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, items, 2)
	assert.EqualValues(t, 3, items[0].ID)
	assert.EqualValues(t, 4, items[1].ID)
}

func TestMaxValues(t *testing.T) {
	conn := setupDB(t)
	r := Provide()

	seedBusiness(t, conn, domain.Business{
		ID: 1, IsVerified: true,
		AuthorisedCapital:        i64Ptr(300),
		PaidupCapital:            i64Ptr(150),
		AdminDefinedSellingPrice: i64Ptr(1000),
	})
	seedBusiness(t, conn, domain.Business{
		ID: 2, IsVerified: false,
		AuthorisedCapital:        i64Ptr(900),
		PaidupCapital:            i64Ptr(50),
		AdminDefinedSellingPrice: i64Ptr(400),
	})

	values, err := r.MaxValues(context.Background(), conn)
	require.NoError(t, err)
	assert.EqualValues(t, 1000, *values.MaxSellingPrice)
	assert.EqualValues(t, 900, *values.MaxAuthCapital)
	assert.EqualValues(t, 150, *values.MaxPaidupCapital)
}

func TestFindByID_MissingReturnsNil(t *testing.T) {
	conn := setupDB(t)
	r := Provide()

	found, err := r.FindByID(context.Background(), conn, 42)
	require.NoError(t, err)
	assert.Nil(t, found)
}
