package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"net/mail"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/param211/corpmart/internal/config"
	"github.com/param211/corpmart/internal/identity"
	"github.com/param211/corpmart/internal/user/domain"
	"github.com/param211/corpmart/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const otpTTL = 10 * time.Minute

type Params struct {
	fx.In

	Config config.Config
	DB     *gorm.DB
	Log    *zap.Logger
	GenID  *snowflake.Node
	Repo   domain.Repository
}

type Service struct {
	cfg   config.Config
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		cfg:   p.Config,
		db:    p.DB,
		log:   p.Log.Named("user.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Signup(ctx context.Context, req domain.SignupRequest) (*domain.Response, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domain.ErrInvalidEmail
	}

	mobile := strings.TrimSpace(req.Mobile)
	if len(mobile) < 7 || len(mobile) > 15 {
		return nil, domain.ErrInvalidMobile
	}
	for _, r := range mobile {
		if r < '0' || r > '9' {
			return nil, domain.ErrInvalidMobile
		}
	}

	countryCode := req.CountryCode
	if countryCode == 0 {
		countryCode = 91
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:               s.genID.Generate().Int64(),
		Email:            email,
		CountryCode:      countryCode,
		Mobile:           mobile,
		FirstName:        strings.TrimSpace(req.FirstName),
		LastName:         strings.TrimSpace(req.LastName),
		OrganisationName: strings.TrimSpace(req.OrganisationName),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.repo.InsertUser(ctx, s.db, user); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}

	s.log.Info("user signed up", zap.String("user_id", snowflake.ID(user.ID).String()))

	resp := toResponse(user)
	return &resp, nil
}

func (s *Service) RequestOTP(ctx context.Context, req domain.OTPRequest) error {
	user, err := s.lookup(ctx, req.Email, req.Mobile)
	if err != nil {
		return err
	}

	code, err := s.generateOTP()
	if err != nil {
		return err
	}

	otp := &domain.OneTimePassword{
		ID:        s.genID.Generate().Int64(),
		UserID:    user.ID,
		OTP:       code,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.repo.UpsertOTP(ctx, s.db, otp); err != nil {
		return err
	}

	// Delivery channel is out of scope; surface the code in the logs so dev
	// environments can complete the flow.
	s.log.Info("otp issued",
		zap.String("user_id", snowflake.ID(user.ID).String()),
		zap.String("otp", code),
	)
	return nil
}

func (s *Service) VerifyOTP(ctx context.Context, req domain.OTPVerifyRequest) (*domain.TokenResponse, error) {
	user, err := s.lookup(ctx, req.Email, req.Mobile)
	if err != nil {
		return nil, err
	}

	stored, err := s.repo.FindOTPByUserID(ctx, s.db, user.ID)
	if err != nil {
		return nil, err
	}
	if stored == nil || stored.OTP != strings.TrimSpace(req.OTP) {
		return nil, domain.ErrInvalidOTP
	}
	if time.Since(stored.UpdatedAt) > otpTTL {
		return nil, domain.ErrExpiredOTP
	}

	if err := s.repo.DeleteOTP(ctx, s.db, user.ID); err != nil {
		return nil, err
	}

	key, err := s.generateTokenKey()
	if err != nil {
		return nil, err
	}
	token := &domain.AuthToken{
		ID:        s.genID.Generate().Int64(),
		Key:       key,
		UserID:    user.ID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.InsertToken(ctx, s.db, token); err != nil {
		return nil, err
	}

	return &domain.TokenResponse{
		Token: key,
		User:  toResponse(user),
	}, nil
}

func (s *Service) Authenticate(ctx context.Context, key string) (identity.Identity, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return identity.Identity{}, domain.ErrInvalidToken
	}

	token, err := s.repo.FindTokenByKey(ctx, s.db, key)
	if err != nil {
		return identity.Identity{}, err
	}
	if token == nil {
		return identity.Identity{}, domain.ErrInvalidToken
	}

	user, err := s.repo.FindUserByID(ctx, s.db, token.UserID)
	if err != nil {
		return identity.Identity{}, err
	}
	if user == nil {
		return identity.Identity{}, domain.ErrInvalidToken
	}

	return identity.Identity{
		UserID: snowflake.ID(user.ID),
		Staff:  user.IsStaff,
	}, nil
}

func (s *Service) Get(ctx context.Context) (*domain.Response, error) {
	caller, ok := identity.FromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidToken
	}

	user, err := s.repo.FindUserByID(ctx, s.db, caller.UserID.Int64())
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	resp := toResponse(user)
	return &resp, nil
}

func (s *Service) lookup(ctx context.Context, email, mobile string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	mobile = strings.TrimSpace(mobile)

	switch {
	case email != "":
		user, err := s.repo.FindUserByEmail(ctx, s.db, email)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, domain.ErrNotFound
		}
		return user, nil
	case mobile != "":
		user, err := s.repo.FindUserByMobile(ctx, s.db, mobile)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, domain.ErrNotFound
		}
		return user, nil
	default:
		return nil, domain.ErrMissingAccount
	}
}

func (s *Service) generateOTP() (string, error) {
	length := s.cfg.OTPLength
	if length <= 0 {
		length = 6
	}
	max := big.NewInt(1)
	for i := 0; i < length; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", length, n), nil
}

func (s *Service) generateTokenKey() (string, error) {
	size := s.cfg.TokenByteSize
	if size <= 0 {
		size = 32
	}
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func toResponse(user *domain.User) domain.Response {
	return domain.Response{
		ID:               snowflake.ID(user.ID).String(),
		Email:            user.Email,
		CountryCode:      user.CountryCode,
		Mobile:           user.Mobile,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		OrganisationName: user.OrganisationName,
	}
}
