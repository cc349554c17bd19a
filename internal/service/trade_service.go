// internal/service/trade_service.go
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/peterlaczo/cs50-finance/internal/domain"
	"github.com/peterlaczo/cs50-finance/internal/quote"
	"github.com/peterlaczo/cs50-finance/internal/repository"
	"github.com/peterlaczo/cs50-finance/internal/util"
	"github.com/peterlaczo/cs50-finance/pkg/db"
)

// TradeService defines the interface for buy/sell business logic.
// Both operations are all-or-nothing: a rejected trade leaves cash and the
// ledger exactly as they were.
type TradeService interface {
	// Buy purchases shares of symbol at the current quoted price and
	// returns the ledger entry together with the total cost.
	Buy(ctx context.Context, userID int64, symbol string, shares int64) (*domain.Transaction, decimal.Decimal, error)
	// Sell sells shares of an owned symbol at the current quoted price and
	// returns the ledger entry together with the total proceeds.
	Sell(ctx context.Context, userID int64, symbol string, shares int64) (*domain.Transaction, decimal.Decimal, error)
}

// tradeService implements the TradeService interface.
type tradeService struct {
	dbBeginner      db.DBTxBeginner // For starting transactions (e.g., *sqlx.DB)
	userRepo        repository.UserRepository
	transactionRepo repository.TransactionRepository
	quotes          quote.Provider
	beginTx         db.BeginTxFunc
	commitTx        db.CommitTxFunc
	rollbackTx      db.RollbackTxFunc
}

// NewTradeService creates a new instance of TradeService.
func NewTradeService(
	dbBeginner db.DBTxBeginner,
	userRepo repository.UserRepository,
	transactionRepo repository.TransactionRepository,
	quotes quote.Provider,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) TradeService {
	return &tradeService{
		dbBeginner:      dbBeginner,
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		quotes:          quotes,
		beginTx:         beginTx,
		commitTx:        commitTx,
		rollbackTx:      rollbackTx,
	}
}

// validateOrder checks the common buy/sell inputs before any state is touched.
func validateOrder(symbol string, shares int64) (string, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return "", fmt.Errorf("must provide a symbol: %w", util.ErrInvalidInput)
	}
	if shares < 1 {
		return "", fmt.Errorf("number of shares must be a positive integer: %w", util.ErrInvalidInput)
	}
	return symbol, nil
}

// Buy atomically executes a purchase. The user's row stays locked between
// the balance check and the writes, so concurrent trades for the same user
// cannot overspend.
func (s *tradeService) Buy(ctx context.Context, userID int64, symbol string, shares int64) (*domain.Transaction, decimal.Decimal, error) {
	symbol, err := validateOrder(symbol, shares)
	if err != nil {
		return nil, decimal.Zero, err
	}

	// Resolve the symbol before touching any state.
	q, err := s.quotes.Lookup(ctx, symbol)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("buy: %w", err)
	}
	cost := q.Price.Mul(decimal.NewFromInt(shares))

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("buy: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, decimal.Zero, fmt.Errorf("buy: transaction controller does not implement DBExecutor")
	}

	user, err := s.userRepo.GetUserByIDForUpdate(ctx, txExecutor, userID)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("buy: failed to get user %d: %w", userID, err)
	}

	if user.Cash.LessThan(cost) {
		return nil, decimal.Zero, fmt.Errorf("buy: your balance is too low: %w", util.ErrInsufficientFunds)
	}

	if err := s.userRepo.AdjustUserCash(ctx, txExecutor, userID, cost.Neg()); err != nil {
		return nil, decimal.Zero, fmt.Errorf("buy: failed to debit cash: %w", err)
	}

	transaction := domain.NewTransaction(userID, q.Symbol, shares, q.Price)
	if err := s.transactionRepo.CreateTransaction(ctx, txExecutor, transaction); err != nil {
		return nil, decimal.Zero, fmt.Errorf("buy: failed to create transaction: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, decimal.Zero, fmt.Errorf("buy: failed to commit transaction: %w", err)
	}

	return transaction, cost, nil
}

// Sell atomically executes a sale. The user's row stays locked between the
// holdings check and the writes, so concurrent trades for the same user
// cannot oversell.
func (s *tradeService) Sell(ctx context.Context, userID int64, symbol string, shares int64) (*domain.Transaction, decimal.Decimal, error) {
	symbol, err := validateOrder(symbol, shares)
	if err != nil {
		return nil, decimal.Zero, err
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("sell: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, decimal.Zero, fmt.Errorf("sell: transaction controller does not implement DBExecutor")
	}

	if _, err := s.userRepo.GetUserByIDForUpdate(ctx, txExecutor, userID); err != nil {
		return nil, decimal.Zero, fmt.Errorf("sell: failed to get user %d: %w", userID, err)
	}

	held, err := s.transactionRepo.GetSharesHeld(ctx, txExecutor, userID, symbol)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("sell: failed to get shares held: %w", err)
	}
	if held <= 0 {
		return nil, decimal.Zero, fmt.Errorf("sell: %w", util.ErrSymbolNotOwned)
	}
	if shares > held {
		return nil, decimal.Zero, fmt.Errorf("sell: %w", util.ErrInsufficientShares)
	}

	// The symbol is owned, so a failed lookup here is an inconsistency
	// between the ledger and the quote source, not a user mistake.
	q, err := s.quotes.Lookup(ctx, symbol)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("sell: quote lookup failed for owned symbol %q", symbol)
	}
	proceeds := q.Price.Mul(decimal.NewFromInt(shares))

	transaction := domain.NewTransaction(userID, q.Symbol, -shares, q.Price)
	if err := s.transactionRepo.CreateTransaction(ctx, txExecutor, transaction); err != nil {
		return nil, decimal.Zero, fmt.Errorf("sell: failed to create transaction: %w", err)
	}

	if err := s.userRepo.AdjustUserCash(ctx, txExecutor, userID, proceeds); err != nil {
		return nil, decimal.Zero, fmt.Errorf("sell: failed to credit cash: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, decimal.Zero, fmt.Errorf("sell: failed to commit transaction: %w", err)
	}

	return transaction, proceeds, nil
}
