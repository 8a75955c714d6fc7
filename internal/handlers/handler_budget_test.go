package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/finledger/finledger_backend/internal/core/domain"
	portssvc "github.com/finledger/finledger_backend/internal/core/ports/services"
	"github.com/finledger/finledger_backend/internal/dto"
	"github.com/finledger/finledger_backend/internal/handlers"
	"github.com/finledger/finledger_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BudgetHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockBudget *MockBudgetService
	jwtSecret  string
}

func (suite *BudgetHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "finledger-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *BudgetHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockBudget = new(MockBudgetService)

	cfg := &config.Config{JWTSecret: suite.jwtSecret}
	services := &portssvc.ServiceContainer{
		Transaction: new(MockTransactionService),
		Budget:      suite.mockBudget,
		Reporting:   new(MockReportingService),
		Category:    new(MockCategoryService),
		User:        new(MockUserService),
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *BudgetHandlerTestSuite) getBudgets(userID string, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *BudgetHandlerTestSuite) TestListBudgets_All() {
	userID := uuid.NewString()
	budgets := []domain.Budget{
		{BudgetID: uuid.NewString(), UserID: userID, Amount: decimal.NewFromInt(500), Month: 3, Year: 2024},
	}

	suite.mockBudget.On("ListBudgets", mock.Anything, userID).Return(budgets, nil).Once()

	w := suite.getBudgets(userID, "/api/v1/budgets")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListBudgetsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Budgets, 1)
	suite.mockBudget.AssertNotCalled(suite.T(), "ListBudgetsForPeriod")
	suite.mockBudget.AssertExpectations(suite.T())
}

func (suite *BudgetHandlerTestSuite) TestListBudgets_PeriodFilter() {
	userID := uuid.NewString()
	budgets := []domain.Budget{
		{BudgetID: uuid.NewString(), UserID: userID, Amount: decimal.NewFromInt(500), Month: 3, Year: 2024},
	}

	suite.mockBudget.On("ListBudgetsForPeriod", mock.Anything, userID, 3, 2024).Return(budgets, nil).Once()

	w := suite.getBudgets(userID, "/api/v1/budgets?month=3&year=2024")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListBudgetsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Budgets, 1)
	suite.mockBudget.AssertNotCalled(suite.T(), "ListBudgets")
	suite.mockBudget.AssertExpectations(suite.T())
}

func (suite *BudgetHandlerTestSuite) TestListBudgets_PeriodFilterIncomplete() {
	userID := uuid.NewString()

	w := suite.getBudgets(userID, "/api/v1/budgets?month=3")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBudget.AssertNotCalled(suite.T(), "ListBudgetsForPeriod")
	suite.mockBudget.AssertNotCalled(suite.T(), "ListBudgets")
}

func TestBudgetHandler(t *testing.T) {
	suite.Run(t, new(BudgetHandlerTestSuite))
}
