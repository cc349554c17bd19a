// internal/service/auth_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/peterlaczo/cs50-finance/internal/domain"
	"github.com/peterlaczo/cs50-finance/internal/repository"
	"github.com/peterlaczo/cs50-finance/internal/util"
	"github.com/peterlaczo/cs50-finance/pkg/db"
)

// AuthService defines the interface for registration and credential checks.
type AuthService interface {
	// Register creates a new user with the configured starting cash balance.
	Register(ctx context.Context, username, password, confirmation string) (*domain.User, error)
	// Login validates credentials. Unknown usernames and wrong passwords are
	// indistinguishable to the caller.
	Login(ctx context.Context, username, password string) (*domain.User, error)
}

// authService implements the AuthService interface.
type authService struct {
	dbBeginner   db.DBTxBeginner       // For starting transactions (e.g., *sqlx.DB)
	dbExecutor   repository.DBExecutor // For non-transactional reads (e.g., *sqlx.DB)
	userRepo     repository.UserRepository
	startingCash decimal.Decimal
	beginTx      db.BeginTxFunc
	commitTx     db.CommitTxFunc
	rollbackTx   db.RollbackTxFunc
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	startingCash decimal.Decimal,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) AuthService {
	return &authService{
		dbBeginner:   dbBeginner,
		dbExecutor:   dbExecutor,
		userRepo:     userRepo,
		startingCash: startingCash,
		beginTx:      beginTx,
		commitTx:     commitTx,
		rollbackTx:   rollbackTx,
	}
}

// Register creates a new user. The uniqueness check and the insert run in one
// transaction so a duplicate registration never leaves a row behind.
func (s *authService) Register(ctx context.Context, username, password, confirmation string) (*domain.User, error) {
	if username == "" {
		return nil, fmt.Errorf("must provide username: %w", util.ErrInvalidInput)
	}
	if password == "" || confirmation == "" {
		return nil, fmt.Errorf("must provide password two times: %w", util.ErrInvalidInput)
	}
	if password != confirmation {
		return nil, fmt.Errorf("passwords do not match: %w", util.ErrInvalidInput)
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("register: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("register: transaction controller does not implement DBExecutor")
	}

	_, err = s.userRepo.GetUserByUsername(ctx, txExecutor, username)
	if err == nil {
		return nil, fmt.Errorf("register: %w", util.ErrDuplicateUsername)
	}
	if !errors.Is(err, util.ErrNotFound) {
		return nil, fmt.Errorf("register: failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register: failed to hash password: %w", err)
	}

	user := domain.NewUser(username, string(hash), s.startingCash)
	if err := s.userRepo.CreateUser(ctx, txExecutor, user); err != nil {
		return nil, fmt.Errorf("register: failed to create user: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("register: failed to commit transaction: %w", err)
	}

	return user, nil
}

// Login validates credentials against the stored bcrypt hash.
func (s *authService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("must provide username and password: %w", util.ErrInvalidInput)
	}

	user, err := s.userRepo.GetUserByUsername(ctx, s.dbExecutor, username)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, util.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}

	return user, nil
}
