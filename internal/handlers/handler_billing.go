package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/mindscribe/journal_ai_app/internal/apperrors"
	portssvc "github.com/mindscribe/journal_ai_app/internal/core/ports/services"
	"github.com/mindscribe/journal_ai_app/internal/dto"
	"github.com/mindscribe/journal_ai_app/internal/middleware"
	"github.com/mindscribe/journal_ai_app/internal/utils"
)

const paymentSignatureHeader = "Stripe-Signature"

// billingHandler handles HTTP requests related to credit purchases.
type billingHandler struct {
	billingService portssvc.BillingSvcFacade
	posthogClient  *utils.PosthogClientWrapper
}

func newBillingHandler(billingService portssvc.BillingSvcFacade) *billingHandler {
	return &billingHandler{billingService: billingService}
}

// registerBillingRoutes registers all purchase-related routes.
func registerBillingRoutes(rg *gin.RouterGroup, billingService portssvc.BillingSvcFacade, posthogClient *utils.PosthogClientWrapper) {
	h := newBillingHandler(billingService)
	h.posthogClient = posthogClient

	// Checkout creation hits the payment provider, keep it rate limited
	checkoutRate, _ := limiter.NewRateFromFormatted("10-M")
	checkoutLimiter := limiter.New(memory.NewStore(), checkoutRate)

	rg.GET("/credits/packs", h.listCreditPacks)
	rg.POST("/checkout", middleware.RateLimit(checkoutLimiter), h.createCheckout)
	rg.GET("/transactions", h.listTransactions)
}

// listCreditPacks godoc
// @Summary List purchasable credit packs
// @Description Retrieves the credit packs that can be bought via checkout
// @Tags billing
// @Produce  json
// @Success 200 {array} dto.CreditPackResponse
// @Router /credits/packs [get]
func (h *billingHandler) listCreditPacks(c *gin.Context) {
	c.JSON(http.StatusOK, h.billingService.ListCreditPacks(c.Request.Context()))
}

// createCheckout godoc
// @Summary Start a credit purchase
// @Description Records a pending purchase and opens a provider-hosted checkout session
// @Tags billing
// @Accept  json
// @Produce  json
// @Param   checkout body dto.CreateCheckoutRequest true "Credit pack to buy"
// @Success 201 {object} dto.CheckoutResponse
// @Failure 400 {object} ErrorResponse "Invalid request format or unknown price"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "Payment provider failure"
// @Router /checkout [post]
func (h *billingHandler) createCheckout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createCheckout", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	checkout, err := h.billingService.CreateCheckout(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Checkout rejected", slog.String("error", err.Error()), slog.String("price_id", req.PriceID))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrUpstreamFailure):
			logger.Error("Payment provider failure", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Checkout is temporarily unavailable"})
		default:
			logger.Error("Failed to create checkout", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create checkout"})
		}
		return
	}

	logger.Info("Checkout session created", slog.String("session_id", checkout.SessionID))
	middleware.PosthogEvent(c, h.posthogClient, "checkout_started", map[string]any{
		"price_id": req.PriceID,
	})
	c.JSON(http.StatusCreated, checkout)
}

// listTransactions godoc
// @Summary List credit purchases
// @Description Retrieves the current user's purchases, newest first, with token-based pagination
// @Tags billing
// @Produce  json
// @Param   limit query int false "Page size (default 20, max 100)"
// @Param   nextToken query string false "Pagination token from a previous response"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /transactions [get]
func (h *billingHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	resp, err := h.billingService.ListTransactions(c.Request.Context(), userID, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// handlePaymentEvent godoc
// @Summary Payment provider webhook
// @Description Verifies a payment webhook and grants credits for completed checkouts
// @Tags webhooks
// @Accept  json
// @Produce  json
// @Success 200 {object} map[string]bool
// @Failure 400 {object} ErrorResponse "Bad signature or malformed event"
// @Failure 404 {object} ErrorResponse "No transaction for the checkout session"
// @Router /webhooks/payment [post]
func (h *billingHandler) handlePaymentEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read request body"})
		return
	}

	err = h.billingService.HandlePaymentEvent(c.Request.Context(), payload, c.GetHeader(paymentSignatureHeader))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrSignatureInvalid):
			logger.Warn("Rejected payment event with bad signature")
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid signature"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Rejected malformed payment event", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Payment event references an unknown checkout session")
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Transaction not found"})
		default:
			logger.Error("Failed to process payment event", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to process event"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
