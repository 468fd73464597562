package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mindscribe/journal_ai_app/internal/apperrors"
	"github.com/mindscribe/journal_ai_app/internal/core/domain"
	portssvc "github.com/mindscribe/journal_ai_app/internal/core/ports/services"
	"github.com/mindscribe/journal_ai_app/internal/dto"
	"github.com/mindscribe/journal_ai_app/internal/handlers"
	"github.com/mindscribe/journal_ai_app/internal/platform/config"
)

// --- Test Suite ---
type BillingHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockUserService    *MockUserService
	mockJournalService *MockJournalService
	mockCreditService  *MockCreditService
	mockBillingService *MockBillingService
	jwtSecret          string
	providerID         string
	userID             string
}

func (suite *BillingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.providerID = "user_" + uuid.NewString()
	suite.userID = uuid.NewString()

	suite.mockUserService = new(MockUserService)
	suite.mockJournalService = new(MockJournalService)
	suite.mockCreditService = new(MockCreditService)
	suite.mockBillingService = new(MockBillingService)

	cfg := &config.Config{
		SessionJWTSecret: suite.jwtSecret,
		IsProduction:     true,
	}
	services := &portssvc.ServiceContainer{
		User:    suite.mockUserService,
		Journal: suite.mockJournalService,
		Credit:  suite.mockCreditService,
		Billing: suite.mockBillingService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services, nil)
}

func (suite *BillingHandlerTestSuite) generateTestToken(providerID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "journal-test",
		Subject:   providerID,
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

func (suite *BillingHandlerTestSuite) expectAuthenticatedUser() {
	suite.mockUserService.On("GetUserByProviderID", mock.Anything, suite.providerID).
		Return(&domain.User{UserID: suite.userID, ProviderID: suite.providerID}, nil).Once()
}

func (suite *BillingHandlerTestSuite) authedRequest(method, url string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			suite.FailNow("Failed to encode request body", err.Error())
		}
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.providerID))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// --- Test Cases ---

func (suite *BillingHandlerTestSuite) TestListCreditPacks_Success() {
	suite.expectAuthenticatedUser()

	packs := []dto.CreditPackResponse{
		{PriceID: "price_starter", AmountUSD: decimal.NewFromFloat(5.99), Credits: 10},
		{PriceID: "price_plus", AmountUSD: decimal.NewFromFloat(9.99), Credits: 25},
	}
	suite.mockBillingService.On("ListCreditPacks", mock.Anything).Return(packs).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, "/api/v1/credits/packs", nil))

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.CreditPackResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.Equal("price_starter", resp[0].PriceID)
	suite.mockBillingService.AssertExpectations(suite.T())
}

func (suite *BillingHandlerTestSuite) TestCreateCheckout_Success() {
	suite.expectAuthenticatedUser()

	req := dto.CreateCheckoutRequest{PriceID: "price_plus"}
	expected := &dto.CheckoutResponse{
		SessionID:   "cs_test_" + uuid.NewString(),
		CheckoutURL: "https://checkout.example.com/pay/cs_test",
	}

	suite.mockBillingService.On("CreateCheckout", mock.Anything, suite.userID, req).
		Return(expected, nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/api/v1/checkout", req))

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.CheckoutResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.SessionID, resp.SessionID)
	suite.Equal(expected.CheckoutURL, resp.CheckoutURL)
	suite.mockBillingService.AssertExpectations(suite.T())
}

func (suite *BillingHandlerTestSuite) TestCreateCheckout_UnknownPrice() {
	suite.expectAuthenticatedUser()

	req := dto.CreateCheckoutRequest{PriceID: "price_bogus"}
	suite.mockBillingService.On("CreateCheckout", mock.Anything, suite.userID, req).
		Return(nil, apperrors.ErrValidation).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/api/v1/checkout", req))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBillingService.AssertExpectations(suite.T())
}

func (suite *BillingHandlerTestSuite) TestCreateCheckout_ProviderDown() {
	suite.expectAuthenticatedUser()

	req := dto.CreateCheckoutRequest{PriceID: "price_plus"}
	suite.mockBillingService.On("CreateCheckout", mock.Anything, suite.userID, req).
		Return(nil, apperrors.ErrUpstreamFailure).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/api/v1/checkout", req))

	suite.Equal(http.StatusBadGateway, w.Code)
	suite.mockBillingService.AssertExpectations(suite.T())
}

func (suite *BillingHandlerTestSuite) TestListTransactions_Success() {
	suite.expectAuthenticatedUser()

	expected := &dto.ListTransactionsResponse{
		Transactions: []dto.TransactionResponse{
			{TransactionID: uuid.NewString(), PriceID: "price_plus", Credits: 25, Status: "COMPLETED"},
		},
	}
	suite.mockBillingService.On("ListTransactions",
		mock.Anything,
		suite.userID,
		mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
			return p.Limit == 20 // form default
		}),
	).Return(expected, nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, "/api/v1/transactions", nil))

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListTransactionsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Transactions, 1)
	suite.mockBillingService.AssertExpectations(suite.T())
}

func (suite *BillingHandlerTestSuite) TestPaymentWebhook_Success() {
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)
	signature := "t=123,v1=abc"

	suite.mockBillingService.On("HandlePaymentEvent", mock.Anything, payload, signature).
		Return(nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/webhooks/payment", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", signature)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockBillingService.AssertExpectations(suite.T())
}

func (suite *BillingHandlerTestSuite) TestPaymentWebhook_BadSignature() {
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)

	suite.mockBillingService.On("HandlePaymentEvent", mock.Anything, payload, "t=123,v1=tampered").
		Return(apperrors.ErrSignatureInvalid).Once()

	req, _ := http.NewRequest(http.MethodPost, "/webhooks/payment", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", "t=123,v1=tampered")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBillingService.AssertExpectations(suite.T())
}

func (suite *BillingHandlerTestSuite) TestPaymentWebhook_UnknownSession() {
	payload := []byte(`{"id":"evt_2","type":"checkout.session.completed"}`)
	signature := "t=123,v1=abc"

	suite.mockBillingService.On("HandlePaymentEvent", mock.Anything, payload, signature).
		Return(apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodPost, "/webhooks/payment", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", signature)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockBillingService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestBillingHandler(t *testing.T) {
	suite.Run(t, new(BillingHandlerTestSuite))
}
