package service

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/clothing-store/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/clothing-store/internal/errors"
	"github.com/aaravmahajanofficial/clothing-store/internal/metrics"
	"github.com/aaravmahajanofficial/clothing-store/internal/models"
	repository "github.com/aaravmahajanofficial/clothing-store/internal/repositories"
	"github.com/aaravmahajanofficial/clothing-store/pkg/sendGrid"
	"github.com/google/uuid"
)

type NotificationService interface {
	SendOrderConfirmation(ctx context.Context, order *models.Order, recipient string, lines []models.CartLine) (*models.Notification, error)
	ListNotifications(ctx context.Context, orderID uuid.UUID) ([]*models.Notification, error)
}

type notificationService struct {
	repo         repository.NotificationRepository
	emailService sendGrid.EmailService
}

func NewNotificationService(repo repository.NotificationRepository, emailService sendGrid.EmailService) NotificationService {
	return &notificationService{repo: repo, emailService: emailService}
}

// SendOrderConfirmation mails the order summary and records the attempt.
func (n *notificationService) SendOrderConfirmation(ctx context.Context, order *models.Order, recipient string, lines []models.CartLine) (*models.Notification, error) {

	logger := middleware.LoggerFromContext(ctx).With(slog.String("orderId", order.ID.String()))

	if recipient == "" {
		return nil, appErrors.BadRequestError("No recipient for the order confirmation")
	}

	req := orderConfirmationEmail(order, recipient, lines)

	notification := &models.Notification{
		ID:        uuid.New(),
		OrderID:   order.ID,
		Recipient: req.To,
		Subject:   req.Subject,
		Content:   req.Content,
		Status:    models.StatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := n.repo.CreateNotification(ctx, notification); err != nil {
		return nil, appErrors.DatabaseError("Failed to create notification record").WithError(err)
	}

	if err := n.emailService.Send(ctx, req); err != nil {

		notification.Status = models.StatusFailed
		notification.ErrorMessage = err.Error()
		metrics.RecordNotification(string(models.StatusFailed))

		if updateErr := n.repo.UpdateNotificationStatus(ctx, notification.ID, models.StatusFailed, notification.ErrorMessage); updateErr != nil {
			logger.Error("Failed to mark notification as failed", slog.Any("error", updateErr))
		}

		return notification, appErrors.ThirdPartyError("Failed to send order confirmation").WithError(err)
	}

	notification.Status = models.StatusSent
	metrics.RecordNotification(string(models.StatusSent))

	if err := n.repo.UpdateNotificationStatus(ctx, notification.ID, models.StatusSent, ""); err != nil {
		return notification, appErrors.DatabaseError("Notification sent but its status could not be saved").WithError(err)
	}

	logger.Info("Order confirmation sent", slog.String("notificationId", notification.ID.String()))

	return notification, nil
}

func (n *notificationService) ListNotifications(ctx context.Context, orderID uuid.UUID) ([]*models.Notification, error) {

	notifications, err := n.repo.ListNotificationsByOrder(ctx, orderID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list notifications").WithError(err)
	}

	return notifications, nil
}

func orderConfirmationEmail(order *models.Order, recipient string, lines []models.CartLine) *models.EmailNotificationRequest {

	var text, markup strings.Builder

	fmt.Fprintf(&text, "Hello %s, your order %s has been placed.\n\n", order.FirstName, order.ID)
	fmt.Fprintf(&markup, "<p>Hello %s, your order <b>%s</b> has been placed.</p><ul>", html.EscapeString(order.FirstName), order.ID)

	for _, line := range lines {
		fmt.Fprintf(&text, "- %s x%d: %s\n", line.Title, line.Qty, line.FinalPrice.StringFixed(2))
		fmt.Fprintf(&markup, "<li>%s &times;%d: %s</li>", html.EscapeString(line.Title), line.Qty, line.FinalPrice.StringFixed(2))
	}

	fmt.Fprintf(&text, "\nTotal: %s\nRequested date: %s\n", order.FinalPrice.StringFixed(2), order.OrderDate.Format(models.OrderDateLayout))
	fmt.Fprintf(&markup, "</ul><p>Total: %s<br>Requested date: %s</p>", order.FinalPrice.StringFixed(2), order.OrderDate.Format(models.OrderDateLayout))

	return &models.EmailNotificationRequest{
		To:          recipient,
		Subject:     "Your order has been placed",
		Content:     text.String(),
		HTMLContent: markup.String(),
	}
}
