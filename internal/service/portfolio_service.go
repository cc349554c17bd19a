// internal/service/portfolio_service.go
package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/peterlaczo/cs50-finance/internal/domain"
	"github.com/peterlaczo/cs50-finance/internal/quote"
	"github.com/peterlaczo/cs50-finance/internal/repository"
	"github.com/peterlaczo/cs50-finance/internal/util"
)

// PortfolioService defines the read-only views over the ledger.
type PortfolioService interface {
	// GetPortfolio returns the user's active holdings valued at current
	// quotes plus the total net worth. It is all-or-nothing: if any owned
	// symbol fails to quote, the whole valuation is aborted.
	GetPortfolio(ctx context.Context, userID int64) (*domain.Portfolio, error)
	// GetHistory returns the user's full ledger ordered by timestamp.
	GetHistory(ctx context.Context, userID int64) ([]domain.HistoryEntry, error)
	// GetOwnedSymbols returns the symbols the user currently holds.
	GetOwnedSymbols(ctx context.Context, userID int64) ([]string, error)
}

// portfolioService implements the PortfolioService interface.
type portfolioService struct {
	dbExecutor      repository.DBExecutor // For non-transactional reads (e.g., *sqlx.DB)
	userRepo        repository.UserRepository
	transactionRepo repository.TransactionRepository
	quotes          quote.Provider
}

// NewPortfolioService creates a new instance of PortfolioService.
func NewPortfolioService(
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	transactionRepo repository.TransactionRepository,
	quotes quote.Provider,
) PortfolioService {
	return &portfolioService{
		dbExecutor:      dbExecutor,
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		quotes:          quotes,
	}
}

// GetPortfolio aggregates the user's ledger into valued holdings.
func (s *portfolioService) GetPortfolio(ctx context.Context, userID int64) (*domain.Portfolio, error) {
	user, err := s.userRepo.GetUserByID(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("portfolio: failed to get user %d: %w", userID, err)
	}

	positions, err := s.transactionRepo.GetPositions(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("portfolio: failed to get positions: %w", err)
	}

	total := user.Cash
	holdings := make([]domain.Holding, 0, len(positions))
	for _, position := range positions {
		q, err := s.quotes.Lookup(ctx, position.Symbol)
		if err != nil {
			// No partial valuations: one unresolvable symbol aborts the view.
			return nil, fmt.Errorf("portfolio: invalid symbol '%s': %w", position.Symbol, util.ErrUnknownSymbol)
		}

		totalPrice := q.Price.Mul(decimal.NewFromInt(position.TotalShares))
		holdings = append(holdings, domain.Holding{
			Symbol:      position.Symbol,
			Name:        q.Name,
			TotalShares: position.TotalShares,
			UnitPrice:   q.Price,
			TotalPrice:  totalPrice,
		})
		total = total.Add(totalPrice)
	}

	return &domain.Portfolio{
		Cash:     user.Cash,
		Holdings: holdings,
		Total:    total,
	}, nil
}

// GetHistory returns the user's full ledger ordered by timestamp, each entry
// decorated with its absolute cash value.
func (s *portfolioService) GetHistory(ctx context.Context, userID int64) ([]domain.HistoryEntry, error) {
	if _, err := s.userRepo.GetUserByID(ctx, s.dbExecutor, userID); err != nil {
		return nil, fmt.Errorf("history: failed to get user %d: %w", userID, err)
	}

	transactions, err := s.transactionRepo.GetTransactionsByUserID(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("history: failed to get transactions: %w", err)
	}

	entries := make([]domain.HistoryEntry, 0, len(transactions))
	for _, transaction := range transactions {
		entries = append(entries, domain.HistoryEntry{
			Transaction: transaction,
			TotalPrice:  transaction.TotalPrice(),
		})
	}
	return entries, nil
}

// GetOwnedSymbols returns the symbols with an active position, for
// populating the sell form.
func (s *portfolioService) GetOwnedSymbols(ctx context.Context, userID int64) ([]string, error) {
	positions, err := s.transactionRepo.GetPositions(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("owned symbols: failed to get positions: %w", err)
	}

	symbols := make([]string, 0, len(positions))
	for _, position := range positions {
		symbols = append(symbols, position.Symbol)
	}
	return symbols, nil
}
