package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/clothing-store/internal/api/middleware"
	service "github.com/aaravmahajanofficial/clothing-store/internal/services"
	"github.com/aaravmahajanofficial/clothing-store/internal/utils"
	"github.com/aaravmahajanofficial/clothing-store/internal/utils/response"
)

type NotificationHandler struct {
	notificationService service.NotificationService
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// ListOrderNotifications godoc
//
//	@Summary		Order confirmation attempts
//	@Description	Every confirmation e-mail recorded for an order, newest first, with its delivery status.
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path		string	true	"Order ID (UUID)"	Format(uuid)
//	@Success		200	{array}		models.Notification
//	@Failure		400	{object}	response.ErrorResponse	"Invalid order ID format"
//	@Failure		403	{object}	response.ErrorResponse	"Admin privileges required"
//	@Failure		500	{object}	response.ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/v1/admin/orders/{id}/notifications [get]
func (h *NotificationHandler) ListOrderNotifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		orderID, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid order id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		notifications, err := h.notificationService.ListNotifications(r.Context(), orderID)
		if err != nil {
			logger.Error("Failed to list notifications", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Notifications listed", slog.String("orderId", orderID.String()), slog.Int("count", len(notifications)))
		response.Success(w, http.StatusOK, notifications)
	}
}
