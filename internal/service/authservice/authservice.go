package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/phoenixdao/phxledger/internal/config"
	"github.com/phoenixdao/phxledger/internal/domain"
	"github.com/phoenixdao/phxledger/internal/pg"
	"github.com/phoenixdao/phxledger/pkg/auth"
	"go.uber.org/zap"
)

type AccountRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Account, error)
	GetByLogin(ctx context.Context, login string) (*domain.Account, error)
	Create(ctx context.Context, acc *domain.Account) (*domain.Account, error)
	CreditPool(ctx context.Context, id int, pool domain.BalancePool, amount float64) error
	SetAdmin(ctx context.Context, id int, isAdmin bool) error
}

type ReferralRepo interface {
	CreateEdge(ctx context.Context, edge *domain.ReferralEdge) error
}

var (
	ErrLoginTaken         = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidReferral    = errors.New("unknown referral code")
	ErrAccountNotFound    = errors.New("account not found")
)

const tokenTTL = 24 * time.Hour

type Service struct {
	accountRepo  AccountRepo
	referralRepo ReferralRepo
	txManager    pg.TXManager
	hashService  auth.HashServiceInterface
	jwtService   auth.JWTServiceInterface
	cfg          config.Ledger
}

func New(accountRepo AccountRepo, referralRepo ReferralRepo, txManager pg.TXManager, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, cfg config.Ledger) *Service {
	return &Service{
		accountRepo:  accountRepo,
		referralRepo: referralRepo,
		txManager:    txManager,
		hashService:  hashService,
		jwtService:   jwtService,
		cfg:          cfg,
	}
}

// Register creates an account. Every new account starts with the signup
// credit on its verified pool. A referral code is the referrer's login: when
// present the referrer's pending pool is credited the same amount and a
// referral edge is recorded. Credit, edge and account commit in one
// transaction.
func (s *Service) Register(ctx context.Context, login, password, referralCode string) (*domain.Account, error) {
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	var created *domain.Account
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		existing, err := s.accountRepo.GetByLogin(ctx, login)
		if err != nil {
			return err
		}
		if existing != nil {
			zap.L().Info("account already exists", zap.String("login", login))
			return ErrLoginTaken
		}

		var referrer *domain.Account
		if referralCode != "" {
			referrer, err = s.accountRepo.GetByLogin(ctx, referralCode)
			if err != nil {
				return err
			}
			if referrer == nil {
				return ErrInvalidReferral
			}
		}

		acc := &domain.Account{
			Login:               login,
			PasswordHash:        hashedPassword,
			ReferralVerified:    s.cfg.ReferralBonus,
			WithdrawableBalance: s.cfg.ReferralBonus,
		}
		if referrer != nil {
			acc.ReferredBy = &referrer.ID
		}
		created, err = s.accountRepo.Create(ctx, acc)
		if err != nil {
			return err
		}

		if referrer != nil {
			if err := s.accountRepo.CreditPool(ctx, referrer.ID, domain.PoolReferralPending, s.cfg.ReferralBonus); err != nil {
				return err
			}
			if err := s.referralRepo.CreateEdge(ctx, &domain.ReferralEdge{
				ReferrerID: referrer.ID,
				ReferredID: created.ID,
				Login:      created.Login,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("account successfully registered", zap.String("login", login))
	return created, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.Account, error) {
	acc, err := s.accountRepo.GetByLogin(ctx, login)
	if err != nil || acc == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(acc.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("account successfully authenticated", zap.String("login", login))
	return acc, nil
}

func (s *Service) GenerateToken(accountID int, isAdmin bool) (string, error) {
	expirationTime := time.Now().Add(tokenTTL)

	token, err := s.jwtService.GenerateJWT(accountID, isAdmin, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

// GrantAdmin flips the admin flag on an existing account.
func (s *Service) GrantAdmin(ctx context.Context, accountID int, isAdmin bool) error {
	acc, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if acc == nil {
		return ErrAccountNotFound
	}
	return s.accountRepo.SetAdmin(ctx, accountID, isAdmin)
}
