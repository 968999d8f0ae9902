package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/param211/corpmart/internal/business/domain"
	"github.com/param211/corpmart/internal/identity"
	"github.com/param211/corpmart/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	GenID     *snowflake.Node
	Repo      domain.Repository
	Documents domain.DocumentLookup
	Contacts  domain.ContactChecker
	Views     domain.ViewRecorder
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	genID     *snowflake.Node
	repo      domain.Repository
	documents domain.DocumentLookup
	contacts  domain.ContactChecker
	views     domain.ViewRecorder
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("business.service"),
		genID:     p.GenID,
		repo:      p.Repo,
		documents: p.Documents,
		contacts:  p.Contacts,
		views:     p.Views,
	}
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) (domain.ListResponse, error) {
	page := req.Page.Normalize()

	items, total, err := s.repo.List(ctx, s.db, req.Filter, page)
	if err != nil {
		return domain.ListResponse{}, err
	}

	summaries := make([]domain.Summary, 0, len(items))
	for i := range items {
		summaries = append(summaries, toSummary(&items[i]))
	}

	return domain.ListResponse{
		Businesses: summaries,
		PageInfo:   pagination.BuildPageInfo(page, total),
	}, nil
}

// Detail looks up a single business and augments it with the derived access
// fields. Authenticated viewers get a view-history record as a side effect.
func (s *Service) Detail(ctx context.Context, req domain.DetailRequest) (*domain.DetailResponse, error) {
	id, err := parseID(req.BusinessID)
	if err != nil {
		return nil, err
	}

	business, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}

	resp := toDetail(business)

	if caller, ok := identity.FromContext(ctx); ok {
		if err := s.views.Record(ctx, caller.UserID.Int64(), business.ID); err != nil {
			return nil, err
		}
		contacted, err := s.contacts.HasContacted(ctx, caller.UserID.Int64(), business.ID)
		if err != nil {
			return nil, err
		}
		resp.HasContacted = contacted
	}

	sheetID, err := s.documents.IDFor(ctx, business.ID)
	if err != nil {
		return nil, err
	}
	if sheetID != nil {
		resp.BalancesheetAvailable = true
		encoded := snowflake.ID(*sheetID).String()
		resp.BalancesheetID = &encoded
	}

	return &resp, nil
}

// Submit stores an owner-submitted business. The verification fields are
// forced regardless of anything the client sent: is_verified starts false and
// the admin price is seeded from the user-defined price.
func (s *Service) Submit(ctx context.Context, req domain.SubmitRequest) (*domain.Response, error) {
	caller, ok := identity.FromContext(ctx)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}

	name := strings.TrimSpace(req.BusinessName)
	if name == "" {
		return nil, domain.ErrInvalidBusinessName
	}
	if req.YearOfIncorporation != nil && (*req.YearOfIncorporation < 1800 || *req.YearOfIncorporation > time.Now().UTC().Year()) {
		return nil, domain.ErrInvalidYear
	}

	country := strings.TrimSpace(req.Country)
	if country == "" {
		country = "India"
	}

	now := time.Now().UTC()
	business := &domain.Business{
		ID:                           s.genID.Generate().Int64(),
		PostedBy:                     caller.UserID.Int64(),
		IsVerified:                   false,
		BusinessName:                 name,
		State:                        trimPtr(req.State),
		Country:                      country,
		CompanyType:                  trimPtr(req.CompanyType),
		CompanyTypeOthersDescription: trimPtr(req.CompanyTypeOthersDescription),
		SubType:                      trimPtr(req.SubType),
		SubTypeOthersDescription:     trimPtr(req.SubTypeOthersDescription),
		Industry:                     trimPtr(req.Industry),
		IndustriesOthersDescription:  trimPtr(req.IndustriesOthersDescription),
		SaleDescription:              strings.TrimSpace(req.SaleDescription),
		YearOfIncorporation:          req.YearOfIncorporation,
		HasGSTNumber:                 req.HasGSTNumber,
		HasImportExportCode:          req.HasImportExportCode,
		HasBankAccount:               req.HasBankAccount,
		HasOtherLicense:              req.HasOtherLicense,
		OtherLicense:                 strings.TrimSpace(req.OtherLicense),
		AuthorisedCapital:            req.AuthorisedCapital,
		PaidupCapital:                req.PaidupCapital,
		UserDefinedSellingPrice:      req.UserDefinedSellingPrice,
		AdminDefinedSellingPrice:     req.UserDefinedSellingPrice,
		CreatedAt:                    now,
		UpdatedAt:                    now,
	}

	if err := s.repo.Insert(ctx, s.db, business); err != nil {
		return nil, err
	}

	s.log.Info("business submitted",
		zap.String("business_id", snowflake.ID(business.ID).String()),
		zap.String("posted_by", caller.UserID.String()),
	)

	resp := toResponse(business)
	return &resp, nil
}

func (s *Service) ListMine(ctx context.Context) ([]domain.Summary, error) {
	caller, ok := identity.FromContext(ctx)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}

	items, err := s.repo.ListByOwner(ctx, s.db, caller.UserID.Int64())
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.Summary, 0, len(items))
	for i := range items {
		summaries = append(summaries, toSummary(&items[i]))
	}
	return summaries, nil
}

// Verify marks a business verified. Staff only; this is the single mutation
// path for verified_by and the admin-defined selling price.
func (s *Service) Verify(ctx context.Context, req domain.VerifyRequest) (*domain.Response, error) {
	caller, ok := identity.FromContext(ctx)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	if !caller.Staff {
		return nil, domain.ErrNotStaff
	}

	id, err := parseID(req.BusinessID)
	if err != nil {
		return nil, err
	}

	business, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}

	business.IsVerified = true
	business.VerifiedBy = strings.TrimSpace(req.VerifiedBy)
	if req.AdminDefinedSellingPrice != nil {
		business.AdminDefinedSellingPrice = req.AdminDefinedSellingPrice
	}
	business.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, business); err != nil {
		return nil, err
	}

	resp := toResponse(business)
	return &resp, nil
}

func (s *Service) MaxValues(ctx context.Context) (domain.MaxValues, error) {
	return s.repo.MaxValues(ctx, s.db)
}

func parseID(raw string) (int64, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(raw))
	if err != nil || parsed == 0 {
		return 0, domain.ErrInvalidID
	}
	return parsed.Int64(), nil
}

func toSummary(b *domain.Business) domain.Summary {
	return domain.Summary{
		ID:                          snowflake.ID(b.ID).String(),
		SaleDescription:             b.SaleDescription,
		CompanyType:                 b.CompanyType,
		SubType:                     b.SubType,
		SubTypeOthersDescription:    b.SubTypeOthersDescription,
		Industry:                    b.Industry,
		IndustriesOthersDescription: b.IndustriesOthersDescription,
		State:                       b.State,
		AuthorisedCapital:           b.AuthorisedCapital,
		PaidupCapital:               b.PaidupCapital,
		AdminDefinedSellingPrice:    b.AdminDefinedSellingPrice,
	}
}

func toDetail(b *domain.Business) domain.DetailResponse {
	return domain.DetailResponse{
		ID:                          snowflake.ID(b.ID).String(),
		SaleDescription:             b.SaleDescription,
		CompanyType:                 b.CompanyType,
		SubType:                     b.SubType,
		SubTypeOthersDescription:    b.SubTypeOthersDescription,
		Industry:                    b.Industry,
		IndustriesOthersDescription: b.IndustriesOthersDescription,
		YearOfIncorporation:         b.YearOfIncorporation,
		State:                       b.State,
		AuthorisedCapital:           b.AuthorisedCapital,
		PaidupCapital:               b.PaidupCapital,
		AdminDefinedSellingPrice:    b.AdminDefinedSellingPrice,
		HasGSTNumber:                b.HasGSTNumber,
		HasBankAccount:              b.HasBankAccount,
		HasImportExportCode:         b.HasImportExportCode,
		HasOtherLicense:             b.HasOtherLicense,
		OtherLicense:                b.OtherLicense,
	}
}

func toResponse(b *domain.Business) domain.Response {
	return domain.Response{
		ID:                           snowflake.ID(b.ID).String(),
		PostedBy:                     snowflake.ID(b.PostedBy).String(),
		IsVerified:                   b.IsVerified,
		VerifiedBy:                   b.VerifiedBy,
		BusinessName:                 b.BusinessName,
		State:                        b.State,
		Country:                      b.Country,
		CompanyType:                  b.CompanyType,
		CompanyTypeOthersDescription: b.CompanyTypeOthersDescription,
		SubType:                      b.SubType,
		SubTypeOthersDescription:     b.SubTypeOthersDescription,
		Industry:                     b.Industry,
		IndustriesOthersDescription:  b.IndustriesOthersDescription,
		SaleDescription:              b.SaleDescription,
		YearOfIncorporation:          b.YearOfIncorporation,
		HasGSTNumber:                 b.HasGSTNumber,
		HasImportExportCode:          b.HasImportExportCode,
		HasBankAccount:               b.HasBankAccount,
		HasOtherLicense:              b.HasOtherLicense,
		OtherLicense:                 b.OtherLicense,
		AuthorisedCapital:            b.AuthorisedCapital,
		PaidupCapital:                b.PaidupCapital,
		UserDefinedSellingPrice:      b.UserDefinedSellingPrice,
		AdminDefinedSellingPrice:     b.AdminDefinedSellingPrice,
		CreatedAt:                    b.CreatedAt,
		UpdatedAt:                    b.UpdatedAt,
	}
}

func trimPtr(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
