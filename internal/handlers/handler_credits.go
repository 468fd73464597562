package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindscribe/journal_ai_app/internal/apperrors"
	portssvc "github.com/mindscribe/journal_ai_app/internal/core/ports/services"
	"github.com/mindscribe/journal_ai_app/internal/dto"
	"github.com/mindscribe/journal_ai_app/internal/middleware"
)

// creditHandler handles HTTP requests related to AI credit balances.
type creditHandler struct {
	creditService portssvc.CreditSvcFacade
}

func newCreditHandler(creditService portssvc.CreditSvcFacade) *creditHandler {
	return &creditHandler{creditService: creditService}
}

// registerCreditRoutes registers all credit-related routes.
func registerCreditRoutes(rg *gin.RouterGroup, creditService portssvc.CreditSvcFacade) {
	h := newCreditHandler(creditService)
	rg.GET("/credits", h.getBalance)
}

// getBalance godoc
// @Summary Get the credit balance
// @Description Retrieves the authenticated user's remaining AI credits
// @Tags credits
// @Produce  json
// @Success 200 {object} dto.CreditBalanceResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /credits [get]
func (h *creditHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	credits, err := h.creditService.GetBalance(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
			return
		}
		logger.Error("Failed to get credit balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve credit balance"})
		return
	}

	c.JSON(http.StatusOK, dto.CreditBalanceResponse{Credits: credits})
}
