package services_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/finledger/finledger_backend/internal/apperrors"
	"github.com/finledger/finledger_backend/internal/core/domain"
	portssvc "github.com/finledger/finledger_backend/internal/core/ports/services"
	"github.com/finledger/finledger_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockTxnRepo *MockTransactionRepository
	service     portssvc.ReportingSvcFacade
	userID      string
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewReportingService(suite.mockTxnRepo)
	suite.userID = uuid.NewString()
}

func (suite *ReportingServiceTestSuite) TestMonthlyReport_QueriesHalfOpenWindow() {
	ctx := context.Background()
	from := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)

	suite.mockTxnRepo.On("FindTransactionsByUserAndDateRange", ctx, suite.userID, from, to).
		Return([]domain.Transaction{}, nil).Once()

	_, err := suite.service.MonthlyReport(ctx, suite.userID, 3, 2024)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestMonthlyReport_DecemberRollsIntoNextYear() {
	ctx := context.Background()
	from := time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	suite.mockTxnRepo.On("FindTransactionsByUserAndDateRange", ctx, suite.userID, from, to).
		Return([]domain.Transaction{}, nil).Once()

	_, err := suite.service.MonthlyReport(ctx, suite.userID, 12, 2024)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestMonthlyReport_EmptyMonthIsZeroReport() {
	ctx := context.Background()

	suite.mockTxnRepo.On("FindTransactionsByUserAndDateRange", ctx, suite.userID, mock.Anything, mock.Anything).
		Return([]domain.Transaction{}, nil).Once()

	report, err := suite.service.MonthlyReport(ctx, suite.userID, 7, 2024)

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.True(report.Income.IsZero())
	suite.True(report.Expenses.IsZero())
	suite.True(report.Balance.IsZero())
}

func (suite *ReportingServiceTestSuite) TestMonthlyReport_FoldsIncomeAndExpenses() {
	ctx := context.Background()
	txns := []domain.Transaction{
		{Type: domain.Income, Amount: decimal.NewFromInt(100)},
		{Type: domain.Expense, Amount: decimal.NewFromInt(40)},
	}

	suite.mockTxnRepo.On("FindTransactionsByUserAndDateRange", ctx, suite.userID, mock.Anything, mock.Anything).
		Return(txns, nil).Once()

	report, err := suite.service.MonthlyReport(ctx, suite.userID, 3, 2024)

	suite.Require().NoError(err)
	suite.True(report.Income.Equal(decimal.NewFromInt(100)), "income was %s", report.Income)
	suite.True(report.Expenses.Equal(decimal.NewFromInt(40)), "expenses was %s", report.Expenses)
	suite.True(report.Balance.Equal(decimal.NewFromInt(60)), "balance was %s", report.Balance)
}

func (suite *ReportingServiceTestSuite) TestMonthlyReport_DecimalAmountsStayExact() {
	ctx := context.Background()
	txns := []domain.Transaction{
		{Type: domain.Income, Amount: decimal.RequireFromString("0.10")},
		{Type: domain.Income, Amount: decimal.RequireFromString("0.20")},
		{Type: domain.Expense, Amount: decimal.RequireFromString("0.30")},
	}

	suite.mockTxnRepo.On("FindTransactionsByUserAndDateRange", ctx, suite.userID, mock.Anything, mock.Anything).
		Return(txns, nil).Once()

	report, err := suite.service.MonthlyReport(ctx, suite.userID, 1, 2024)

	suite.Require().NoError(err)
	suite.True(report.Income.Equal(decimal.RequireFromString("0.30")))
	suite.True(report.Balance.IsZero())
}

func (suite *ReportingServiceTestSuite) TestMonthlyReport_BalanceCanBeNegative() {
	ctx := context.Background()
	txns := []domain.Transaction{
		{Type: domain.Income, Amount: decimal.NewFromInt(50)},
		{Type: domain.Expense, Amount: decimal.NewFromInt(80)},
	}

	suite.mockTxnRepo.On("FindTransactionsByUserAndDateRange", ctx, suite.userID, mock.Anything, mock.Anything).
		Return(txns, nil).Once()

	report, err := suite.service.MonthlyReport(ctx, suite.userID, 5, 2024)

	suite.Require().NoError(err)
	suite.True(report.Balance.Equal(decimal.NewFromInt(-30)))
}

func (suite *ReportingServiceTestSuite) TestMonthlyReport_BalanceMatchesSumsForRandomTransactions() {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 50; i++ {
		txnRepo := new(MockTransactionRepository)
		service := services.NewReportingService(txnRepo)

		var txns []domain.Transaction
		wantIncome := decimal.Zero
		wantExpenses := decimal.Zero
		for n := rng.Intn(30); n > 0; n-- {
			amount := decimal.New(rng.Int63n(10_000_000), -2)
			txnType := domain.Expense
			if rng.Intn(2) == 0 {
				txnType = domain.Income
			}
			txns = append(txns, domain.Transaction{Type: txnType, Amount: amount})
			if txnType == domain.Income {
				wantIncome = wantIncome.Add(amount)
			} else {
				wantExpenses = wantExpenses.Add(amount)
			}
		}

		txnRepo.On("FindTransactionsByUserAndDateRange", ctx, suite.userID, mock.Anything, mock.Anything).
			Return(txns, nil).Once()

		report, err := service.MonthlyReport(ctx, suite.userID, 3, 2024)

		suite.Require().NoError(err)
		suite.True(report.Income.Equal(wantIncome), "income %s, want %s", report.Income, wantIncome)
		suite.True(report.Expenses.Equal(wantExpenses), "expenses %s, want %s", report.Expenses, wantExpenses)
		suite.True(report.Balance.Equal(wantIncome.Sub(wantExpenses)),
			"balance %s, want %s", report.Balance, wantIncome.Sub(wantExpenses))
	}
}

func (suite *ReportingServiceTestSuite) TestMonthlyReport_InvalidMonth() {
	ctx := context.Background()

	for _, month := range []int{0, 13, -1} {
		report, err := suite.service.MonthlyReport(ctx, suite.userID, month, 2024)
		suite.Require().Error(err)
		suite.Nil(report)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "FindTransactionsByUserAndDateRange")
}

func (suite *ReportingServiceTestSuite) TestMonthlyReport_InvalidYear() {
	ctx := context.Background()

	report, err := suite.service.MonthlyReport(ctx, suite.userID, 3, 0)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
