package domain

import "time"

// Business is a company listed for sale. Verification fields are owned by the
// admin workflow and are never writable through owner submission.
type Business struct {
	ID                           int64     `json:"id" gorm:"primaryKey"`
	PostedBy                     int64     `json:"posted_by" gorm:"column:posted_by;not null;index"`
	IsVerified                   bool      `json:"is_verified" gorm:"not null;default:false;index"`
	VerifiedBy                   string    `json:"verified_by" gorm:"type:text;not null;default:''"`
	BusinessName                 string    `json:"business_name" gorm:"type:text;not null"`
	State                        *string   `json:"state,omitempty" gorm:"type:text"`
	Country                      string    `json:"country" gorm:"type:text;not null;default:'India'"`
	CompanyType                  *string   `json:"company_type,omitempty" gorm:"type:text"`
	CompanyTypeOthersDescription *string   `json:"company_type_others_description,omitempty" gorm:"type:text"`
	SubType                      *string   `json:"sub_type,omitempty" gorm:"type:text"`
	SubTypeOthersDescription     *string   `json:"sub_type_others_description,omitempty" gorm:"type:text"`
	Industry                     *string   `json:"industry,omitempty" gorm:"type:text"`
	IndustriesOthersDescription  *string   `json:"industries_others_description,omitempty" gorm:"type:text"`
	SaleDescription              string    `json:"sale_description" gorm:"type:text;not null;default:''"`
	YearOfIncorporation          *int      `json:"year_of_incorporation,omitempty"`
	HasGSTNumber                 *bool     `json:"has_gst_number,omitempty"`
	HasImportExportCode          *bool     `json:"has_import_export_code,omitempty"`
	HasBankAccount               *bool     `json:"has_bank_account,omitempty"`
	HasOtherLicense              *bool     `json:"has_other_license,omitempty"`
	OtherLicense                 string    `json:"other_license" gorm:"type:text;not null;default:''"`
	AuthorisedCapital            *int64    `json:"authorised_capital,omitempty"`
	PaidupCapital                *int64    `json:"paidup_capital,omitempty"`
	UserDefinedSellingPrice      *int64    `json:"user_defined_selling_price,omitempty"`
	AdminDefinedSellingPrice     *int64    `json:"admin_defined_selling_price,omitempty"`
	CreatedAt                    time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt                    time.Time `json:"updated_at" gorm:"not null"`
}

func (Business) TableName() string { return "businesses" }
