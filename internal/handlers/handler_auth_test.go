package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finledger/finledger_backend/internal/apperrors"
	"github.com/finledger/finledger_backend/internal/core/domain"
	portssvc "github.com/finledger/finledger_backend/internal/core/ports/services"
	"github.com/finledger/finledger_backend/internal/dto"
	"github.com/finledger/finledger_backend/internal/handlers"
	"github.com/finledger/finledger_backend/internal/platform/config"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockUser *MockUserService
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockUser = new(MockUserService)

	cfg := &config.Config{
		JWTSecret: "test-secret-key-that-is-long-enough",
		JWTIssuer: "finledger-test",
	}
	services := &portssvc.ServiceContainer{
		Transaction: new(MockTransactionService),
		Budget:      new(MockBudgetService),
		Reporting:   new(MockReportingService),
		Category:    new(MockCategoryService),
		User:        suite.mockUser,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *AuthHandlerTestSuite) postLogin(body []byte) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	user := &domain.User{UserID: uuid.NewString(), Email: "user@example.com"}

	suite.mockUser.On("AuthenticateUser", mock.Anything, "user@example.com", "password123").
		Return(user, nil).Once()

	body, _ := json.Marshal(dto.LoginRequest{Email: "user@example.com", Password: "password123"})
	w := suite.postLogin(body)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.NotEmpty(resp.Token)
	suite.mockUser.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestLogin_BadCredentials() {
	suite.mockUser.On("AuthenticateUser", mock.Anything, "user@example.com", "wrong").
		Return(nil, apperrors.ErrUnauthorized).Once()

	body, _ := json.Marshal(dto.LoginRequest{Email: "user@example.com", Password: "wrong"})
	w := suite.postLogin(body)

	suite.Equal(http.StatusUnauthorized, w.Code)
	var resp handlers.ErrorResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Invalid email or password", resp.Error)
}

func (suite *AuthHandlerTestSuite) TestLogin_LookupFailure() {
	suite.mockUser.On("AuthenticateUser", mock.Anything, "user@example.com", "password123").
		Return(nil, apperrors.ErrInternal).Once()

	body, _ := json.Marshal(dto.LoginRequest{Email: "user@example.com", Password: "password123"})
	w := suite.postLogin(body)

	suite.Equal(http.StatusInternalServerError, w.Code)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
