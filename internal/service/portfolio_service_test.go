// internal/service/portfolio_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/peterlaczo/cs50-finance/internal/domain"
	"github.com/peterlaczo/cs50-finance/internal/util"
)

// portfolioMocks bundles the mocks behind a PortfolioService under test.
type portfolioMocks struct {
	userRepo        *MockUserRepository
	transactionRepo *MockTransactionRepository
	quotes          *MockQuoteProvider
	executor        *MockDBExecutor
}

func newTestPortfolioService() (PortfolioService, *portfolioMocks) {
	m := &portfolioMocks{
		userRepo:        new(MockUserRepository),
		transactionRepo: new(MockTransactionRepository),
		quotes:          new(MockQuoteProvider),
		executor:        new(MockDBExecutor),
	}
	svc := NewPortfolioService(m.executor, m.userRepo, m.transactionRepo, m.quotes)
	return svc, m
}

func (m *portfolioMocks) assertAll(t *testing.T) {
	mock.AssertExpectationsForObjects(t, m.userRepo, m.transactionRepo, m.quotes)
}

func TestGetPortfolio(t *testing.T) {
	userID := int64(1)

	t.Run("ValuedHoldings", func(t *testing.T) {
		ctx := context.Background()
		svc, m := newTestPortfolioService()

		m.userRepo.On("GetUserByID", ctx, m.executor, userID).
			Return(&domain.User{ID: userID, Cash: decimal.NewFromInt(9000)}, nil).Once()
		m.transactionRepo.On("GetPositions", ctx, m.executor, userID).
			Return([]domain.Position{
				{Symbol: "AAPL", TotalShares: 10},
				{Symbol: "MSFT", TotalShares: 2},
			}, nil).Once()
		m.quotes.On("Lookup", ctx, "AAPL").
			Return(&domain.Quote{Symbol: "AAPL", Name: "Apple Inc", Price: decimal.NewFromInt(150)}, nil).Once()
		m.quotes.On("Lookup", ctx, "MSFT").
			Return(&domain.Quote{Symbol: "MSFT", Name: "Microsoft Corp", Price: decimal.NewFromInt(300)}, nil).Once()

		portfolio, err := svc.GetPortfolio(ctx, userID)

		assert.NoError(t, err)
		assert.True(t, portfolio.Cash.Equal(decimal.NewFromInt(9000)))
		assert.Len(t, portfolio.Holdings, 2)
		assert.Equal(t, "Apple Inc", portfolio.Holdings[0].Name)
		assert.True(t, portfolio.Holdings[0].TotalPrice.Equal(decimal.NewFromInt(1500)))
		assert.True(t, portfolio.Holdings[1].TotalPrice.Equal(decimal.NewFromInt(600)))
		// 9000 cash + 1500 AAPL + 600 MSFT
		assert.True(t, portfolio.Total.Equal(decimal.NewFromInt(11100)))

		m.assertAll(t)
	})

	t.Run("NoHoldings", func(t *testing.T) {
		ctx := context.Background()
		svc, m := newTestPortfolioService()

		m.userRepo.On("GetUserByID", ctx, m.executor, userID).
			Return(&domain.User{ID: userID, Cash: decimal.NewFromInt(10000)}, nil).Once()
		m.transactionRepo.On("GetPositions", ctx, m.executor, userID).
			Return([]domain.Position{}, nil).Once()

		portfolio, err := svc.GetPortfolio(ctx, userID)

		assert.NoError(t, err)
		assert.Empty(t, portfolio.Holdings)
		assert.True(t, portfolio.Total.Equal(decimal.NewFromInt(10000)))

		m.assertAll(t)
	})

	t.Run("UserNotFound", func(t *testing.T) {
		ctx := context.Background()
		svc, m := newTestPortfolioService()

		m.userRepo.On("GetUserByID", ctx, m.executor, userID).Return(nil, util.ErrNotFound).Once()

		portfolio, err := svc.GetPortfolio(ctx, userID)

		assert.ErrorIs(t, err, util.ErrNotFound)
		assert.Nil(t, portfolio)

		m.assertAll(t)
	})

	t.Run("LookupFailureAbortsWholeValuation", func(t *testing.T) {
		ctx := context.Background()
		svc, m := newTestPortfolioService()

		m.userRepo.On("GetUserByID", ctx, m.executor, userID).
			Return(&domain.User{ID: userID, Cash: decimal.NewFromInt(9000)}, nil).Once()
		m.transactionRepo.On("GetPositions", ctx, m.executor, userID).
			Return([]domain.Position{
				{Symbol: "AAPL", TotalShares: 10},
				{Symbol: "GONE", TotalShares: 3},
			}, nil).Once()
		m.quotes.On("Lookup", ctx, "AAPL").
			Return(&domain.Quote{Symbol: "AAPL", Name: "Apple Inc", Price: decimal.NewFromInt(150)}, nil).Once()
		m.quotes.On("Lookup", ctx, "GONE").Return(nil, util.ErrUnknownSymbol).Once()

		portfolio, err := svc.GetPortfolio(ctx, userID)

		assert.ErrorIs(t, err, util.ErrUnknownSymbol)
		assert.Contains(t, err.Error(), "GONE")
		assert.Nil(t, portfolio, "no partial valuation is returned")

		m.assertAll(t)
	})
}

func TestGetHistory(t *testing.T) {
	userID := int64(1)

	t.Run("OrderedEntriesWithTotals", func(t *testing.T) {
		ctx := context.Background()
		svc, m := newTestPortfolioService()

		now := time.Now().UTC()
		m.userRepo.On("GetUserByID", ctx, m.executor, userID).
			Return(&domain.User{ID: userID, Cash: decimal.NewFromInt(9000)}, nil).Once()
		m.transactionRepo.On("GetTransactionsByUserID", ctx, m.executor, userID).
			Return([]domain.Transaction{
				{ID: 1, UserID: userID, Symbol: "AAPL", Shares: 10, UnitPrice: decimal.NewFromInt(100), Timestamp: now},
				{ID: 2, UserID: userID, Symbol: "AAPL", Shares: -4, UnitPrice: decimal.NewFromInt(110), Timestamp: now.Add(time.Minute)},
			}, nil).Once()

		entries, err := svc.GetHistory(ctx, userID)

		assert.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.True(t, entries[0].TotalPrice.Equal(decimal.NewFromInt(1000)))
		// Sells display as an absolute value: |-4 * 110| = 440.
		assert.True(t, entries[1].TotalPrice.Equal(decimal.NewFromInt(440)))

		m.assertAll(t)
	})

	t.Run("UserNotFound", func(t *testing.T) {
		ctx := context.Background()
		svc, m := newTestPortfolioService()

		m.userRepo.On("GetUserByID", ctx, m.executor, userID).Return(nil, util.ErrNotFound).Once()

		entries, err := svc.GetHistory(ctx, userID)

		assert.ErrorIs(t, err, util.ErrNotFound)
		assert.Nil(t, entries)

		m.assertAll(t)
	})
}

func TestGetOwnedSymbols(t *testing.T) {
	ctx := context.Background()
	userID := int64(1)
	svc, m := newTestPortfolioService()

	m.transactionRepo.On("GetPositions", ctx, m.executor, userID).
		Return([]domain.Position{
			{Symbol: "AAPL", TotalShares: 10},
			{Symbol: "NFLX", TotalShares: 1},
		}, nil).Once()

	symbols, err := svc.GetOwnedSymbols(ctx, userID)

	assert.NoError(t, err)
	assert.Equal(t, []string{"AAPL", "NFLX"}, symbols)

	m.assertAll(t)
}
