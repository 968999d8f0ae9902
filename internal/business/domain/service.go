package domain

import (
	"context"
	"errors"
	"time"

	"github.com/param211/corpmart/pkg/db/pagination"
)

type Service interface {
	List(ctx context.Context, req ListRequest) (ListResponse, error)
	Detail(ctx context.Context, req DetailRequest) (*DetailResponse, error)
	Submit(ctx context.Context, req SubmitRequest) (*Response, error)
	ListMine(ctx context.Context) ([]Summary, error)
	Verify(ctx context.Context, req VerifyRequest) (*Response, error)
	MaxValues(ctx context.Context) (MaxValues, error)
}

// DocumentLookup answers balance sheet existence questions for detail views.
type DocumentLookup interface {
	IDFor(ctx context.Context, businessID int64) (*int64, error)
}

// ContactChecker reports whether a user already filed a contact request.
type ContactChecker interface {
	HasContacted(ctx context.Context, userID, businessID int64) (bool, error)
}

// ViewRecorder logs a detail view for an authenticated user.
type ViewRecorder interface {
	Record(ctx context.Context, userID, businessID int64) error
}

type ListRequest struct {
	Filter ListFilter
	Page   pagination.Pagination
}

type ListResponse struct {
	Businesses []Summary           `json:"businesses"`
	PageInfo   pagination.PageInfo `json:"page_info"`
}

// Summary is the buyer-facing listing row.
type Summary struct {
	ID                          string  `json:"id"`
	SaleDescription             string  `json:"sale_description"`
	CompanyType                 *string `json:"company_type"`
	SubType                     *string `json:"sub_type"`
	SubTypeOthersDescription    *string `json:"sub_type_others_description"`
	Industry                    *string `json:"industry"`
	IndustriesOthersDescription *string `json:"industries_others_description"`
	State                       *string `json:"state"`
	AuthorisedCapital           *int64  `json:"authorised_capital"`
	PaidupCapital               *int64  `json:"paidup_capital"`
	AdminDefinedSellingPrice    *int64  `json:"admin_defined_selling_price"`
}

type DetailRequest struct {
	BusinessID string
}

// DetailResponse augments the business record with the three derived
// access-control fields buyers see.
type DetailResponse struct {
	ID                          string  `json:"id"`
	SaleDescription             string  `json:"sale_description"`
	CompanyType                 *string `json:"company_type"`
	SubType                     *string `json:"sub_type"`
	SubTypeOthersDescription    *string `json:"sub_type_others_description"`
	Industry                    *string `json:"industry"`
	IndustriesOthersDescription *string `json:"industries_others_description"`
	YearOfIncorporation         *int    `json:"year_of_incorporation"`
	State                       *string `json:"state"`
	AuthorisedCapital           *int64  `json:"authorised_capital"`
	PaidupCapital               *int64  `json:"paidup_capital"`
	AdminDefinedSellingPrice    *int64  `json:"admin_defined_selling_price"`
	HasGSTNumber                *bool   `json:"has_gst_number"`
	HasBankAccount              *bool   `json:"has_bank_account"`
	HasImportExportCode         *bool   `json:"has_import_export_code"`
	HasOtherLicense             *bool   `json:"has_other_license"`
	OtherLicense                string  `json:"other_license"`
	HasContacted                bool    `json:"has_contacted"`
	BalancesheetAvailable       bool    `json:"balancesheet_available"`
	BalancesheetID              *string `json:"balancesheet_id"`
}

type SubmitRequest struct {
	BusinessName                 string  `json:"business_name"`
	State                        *string `json:"state"`
	Country                      string  `json:"country"`
	CompanyType                  *string `json:"company_type"`
	CompanyTypeOthersDescription *string `json:"company_type_others_description"`
	SubType                      *string `json:"sub_type"`
	SubTypeOthersDescription     *string `json:"sub_type_others_description"`
	Industry                     *string `json:"industry"`
	IndustriesOthersDescription  *string `json:"industries_others_description"`
	SaleDescription              string  `json:"sale_description"`
	YearOfIncorporation          *int    `json:"year_of_incorporation"`
	HasGSTNumber                 *bool   `json:"has_gst_number"`
	HasImportExportCode          *bool   `json:"has_import_export_code"`
	HasBankAccount               *bool   `json:"has_bank_account"`
	HasOtherLicense              *bool   `json:"has_other_license"`
	OtherLicense                 string  `json:"other_license"`
	AuthorisedCapital            *int64  `json:"authorised_capital"`
	PaidupCapital                *int64  `json:"paidup_capital"`
	UserDefinedSellingPrice      *int64  `json:"user_defined_selling_price"`
}

type VerifyRequest struct {
	BusinessID               string
	VerifiedBy               string
	AdminDefinedSellingPrice *int64
}

// Response is the full owner/admin view of a business record.
type Response struct {
	ID                           string    `json:"id"`
	PostedBy                     string    `json:"posted_by"`
	IsVerified                   bool      `json:"is_verified"`
	VerifiedBy                   string    `json:"verified_by"`
	BusinessName                 string    `json:"business_name"`
	State                        *string   `json:"state"`
	Country                      string    `json:"country"`
	CompanyType                  *string   `json:"company_type"`
	CompanyTypeOthersDescription *string   `json:"company_type_others_description"`
	SubType                      *string   `json:"sub_type"`
	SubTypeOthersDescription     *string   `json:"sub_type_others_description"`
	Industry                     *string   `json:"industry"`
	IndustriesOthersDescription  *string   `json:"industries_others_description"`
	SaleDescription              string    `json:"sale_description"`
	YearOfIncorporation          *int      `json:"year_of_incorporation"`
	HasGSTNumber                 *bool     `json:"has_gst_number"`
	HasImportExportCode          *bool     `json:"has_import_export_code"`
	HasBankAccount               *bool     `json:"has_bank_account"`
	HasOtherLicense              *bool     `json:"has_other_license"`
	OtherLicense                 string    `json:"other_license"`
	AuthorisedCapital            *int64    `json:"authorised_capital"`
	PaidupCapital                *int64    `json:"paidup_capital"`
	UserDefinedSellingPrice      *int64    `json:"user_defined_selling_price"`
	AdminDefinedSellingPrice     *int64    `json:"admin_defined_selling_price"`
	CreatedAt                    time.Time `json:"created_at"`
	UpdatedAt                    time.Time `json:"updated_at"`
}

type MaxValues struct {
	MaxSellingPrice  *int64 `json:"max_selling_price"`
	MaxAuthCapital   *int64 `json:"max_auth_capital"`
	MaxPaidupCapital *int64 `json:"max_paidup_capital"`
}

var (
	ErrNotFound            = errors.New("business_not_found")
	ErrInvalidID           = errors.New("invalid_business_id")
	ErrInvalidBusinessName = errors.New("invalid_business_name")
	ErrInvalidYear         = errors.New("invalid_year_of_incorporation")
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrNotStaff            = errors.New("not_staff")
)
