package repository

import (
	"context"

	"github.com/param211/corpmart/internal/business/domain"
	"github.com/param211/corpmart/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, business *domain.Business) error {
	return db.WithContext(ctx).Create(business).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Business, error) {
	var business domain.Business
	err := db.WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&business).Error
	if err != nil {
		return nil, err
	}
	if business.ID == 0 {
		return nil, nil
	}
	return &business, nil
}

// List interprets the filter specification. The verified-only baseline is
// applied first and cannot be bypassed by any parameter combination.
func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListFilter, page pagination.Pagination) ([]domain.Business, int64, error) {
	stmt := db.WithContext(ctx).
		Model(&domain.Business{}).
		Where("is_verified = ?", true)

	stmt = applyFilter(db, stmt, filter)

	var total int64
	if err := stmt.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var businesses []domain.Business
	err := stmt.
		Order(orderClause(filter.SortBy)).
		Offset(page.Offset()).
		Limit(page.PageSize).
		Find(&businesses).Error
	if err != nil {
		return nil, 0, err
	}
	return businesses, total, nil
}

func applyFilter(db, stmt *gorm.DB, filter domain.ListFilter) *gorm.DB {
	if len(filter.States) > 0 {
		stmt = stmt.Where("state IN ?", filter.States)
	}
	if len(filter.Countries) > 0 {
		stmt = stmt.Where("country IN ?", filter.Countries)
	}
	if len(filter.CompanyTypes) > 0 {
		stmt = stmt.Where("company_type IN ?", filter.CompanyTypes)
	}
	if len(filter.SubTypes) > 0 {
		stmt = stmt.Where("sub_type IN ?", filter.SubTypes)
	}
	if len(filter.Industries) > 0 {
		stmt = stmt.Where("industry IN ?", filter.Industries)
	}

	if filter.AuthorisedCapitalMin != nil {
		stmt = stmt.Where("authorised_capital >= ?", *filter.AuthorisedCapitalMin)
	}
	if filter.AuthorisedCapitalMax != nil {
		stmt = stmt.Where("authorised_capital <= ?", *filter.AuthorisedCapitalMax)
	}
	if filter.PaidupCapitalMin != nil {
		stmt = stmt.Where("paidup_capital >= ?", *filter.PaidupCapitalMin)
	}
	if filter.PaidupCapitalMax != nil {
		stmt = stmt.Where("paidup_capital <= ?", *filter.PaidupCapitalMax)
	}
	if filter.SellingPriceMin != nil {
		stmt = stmt.Where("admin_defined_selling_price >= ?", *filter.SellingPriceMin)
	}
	if filter.SellingPriceMax != nil {
		stmt = stmt.Where("admin_defined_selling_price <= ?", *filter.SellingPriceMax)
	}

	if filter.HasGSTNumber != nil {
		stmt = stmt.Where("has_gst_number = ?", *filter.HasGSTNumber)
	}
	if filter.HasBankAccount != nil {
		stmt = stmt.Where("has_bank_account = ?", *filter.HasBankAccount)
	}
	if filter.HasImportExportCode != nil {
		stmt = stmt.Where("has_import_export_code = ?", *filter.HasImportExportCode)
	}

	if filter.HasBalancesheet != nil {
		sub := db.Session(&gorm.Session{NewDB: true}).
			Table("balancesheets").
			Select("business_id")
		if *filter.HasBalancesheet {
			stmt = stmt.Where("id IN (?)", sub)
		} else {
			stmt = stmt.Where("id NOT IN (?)", sub)
		}
	}

	if filter.Search != "" {
		stmt = applySearch(db, stmt, filter.Search)
	}

	return stmt
}

// applySearch runs full-text search on the sale description. Postgres gets a
// tsvector match; other dialects fall back to a case-insensitive substring
// match, which keeps in-memory sqlite tests honest.
func applySearch(db, stmt *gorm.DB, search string) *gorm.DB {
	if db.Dialector.Name() == "postgres" {
		return stmt.Where("to_tsvector('english', sale_description) @@ plainto_tsquery('english', ?)", search)
	}
	return stmt.Where("sale_description LIKE ?", "%"+search+"%")
}

// orderClause always ends with id ASC so pagination stays deterministic.
func orderClause(sort domain.SortOrder) string {
	switch sort {
	case domain.SortYearDesc:
		return "year_of_incorporation DESC, id ASC"
	case domain.SortYearAsc:
		return "year_of_incorporation ASC, id ASC"
	case domain.SortAuthorisedCapitalAsc:
		return "authorised_capital ASC, id ASC"
	case domain.SortAuthorisedCapitalDesc:
		return "authorised_capital DESC, id ASC"
	case domain.SortPaidupCapitalAsc:
		return "paidup_capital ASC, id ASC"
	case domain.SortPaidupCapitalDesc:
		return "paidup_capital DESC, id ASC"
	case domain.SortSellingPriceAsc:
		return "admin_defined_selling_price ASC, id ASC"
	case domain.SortSellingPriceDesc:
		return "admin_defined_selling_price DESC, id ASC"
	default:
		return "id ASC"
	}
}

func (r *repo) ListByOwner(ctx context.Context, db *gorm.DB, ownerID int64) ([]domain.Business, error) {
	var businesses []domain.Business
	err := db.WithContext(ctx).
		Where("posted_by = ?", ownerID).
		Order("year_of_incorporation DESC, id ASC").
		Find(&businesses).Error
	if err != nil {
		return nil, err
	}
	return businesses, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, business *domain.Business) error {
	if business == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Save(business).Error
}

func (r *repo) MaxValues(ctx context.Context, db *gorm.DB) (domain.MaxValues, error) {
	var values domain.MaxValues
	err := db.WithContext(ctx).
		Model(&domain.Business{}).
		Select("MAX(admin_defined_selling_price) AS max_selling_price, MAX(authorised_capital) AS max_auth_capital, MAX(paidup_capital) AS max_paidup_capital").
		Scan(&values).Error
	if err != nil {
		return domain.MaxValues{}, err
	}
	return values, nil
}
