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

const identityUserCreatedEvent = "user.created"

// identityWebhookHandler provisions local users from identity provider events.
type identityWebhookHandler struct {
	userService portssvc.UserProvisioningSvc
}

func newIdentityWebhookHandler(userService portssvc.UserProvisioningSvc) *identityWebhookHandler {
	return &identityWebhookHandler{userService: userService}
}

// handleIdentityEvent godoc
// @Summary Identity provider webhook
// @Description Provisions a local user record when the identity provider reports a new sign-up
// @Tags webhooks
// @Accept  json
// @Produce  json
// @Param   event body dto.IdentityEvent true "Identity event"
// @Success 200 {object} dto.UserResponse "User already provisioned"
// @Success 201 {object} dto.UserResponse "User provisioned"
// @Success 204 "Event type ignored"
// @Failure 400 {object} ErrorResponse "Malformed event or missing primary email"
// @Router /webhooks/identity [post]
func (h *identityWebhookHandler) handleIdentityEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var event dto.IdentityEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		logger.Error("Failed to bind identity event", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid event format"})
		return
	}

	if event.Type != identityUserCreatedEvent {
		logger.Info("Ignoring identity event", slog.String("type", event.Type))
		c.Status(http.StatusNoContent)
		return
	}

	user, err := h.userService.ProvisionUser(c.Request.Context(), event.Data)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrMissingPrimaryEmail):
			logger.Warn("Identity event missing primary email", slog.String("provider_id", event.Data.ID))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Event carries no usable primary email"})
		case errors.Is(err, apperrors.ErrDuplicate):
			// Provider redelivery. Acknowledge so it stops retrying.
			logger.Info("User already provisioned", slog.String("provider_id", event.Data.ID))
			c.JSON(http.StatusOK, gin.H{"received": true})
		default:
			logger.Error("Failed to provision user", slog.String("error", err.Error()), slog.String("provider_id", event.Data.ID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to provision user"})
		}
		return
	}

	logger.Info("User provisioned", slog.String("user_id", user.UserID), slog.String("provider_id", user.ProviderID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}
