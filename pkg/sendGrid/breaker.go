package sendGrid

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/clothing-store/internal/models"
	"github.com/sony/gobreaker/v2"
)

// ErrUnavailable is returned while the breaker refuses to call SendGrid.
var ErrUnavailable = errors.New("email provider unavailable")

type BreakerSettings struct {
	Name                string
	ConsecutiveFailures uint32
	Timeout             time.Duration
}

type breakerEmailService struct {
	EmailService
	cb *gobreaker.CircuitBreaker[struct{}]
}

// NewBreakerEmailService stops calling next after ConsecutiveFailures errors in a row
// and probes it again with a single request once Timeout has passed.
func NewBreakerEmailService(next EmailService, settings BreakerSettings) EmailService {

	if settings.Name == "" {
		settings.Name = "sendgrid"
	}

	if settings.ConsecutiveFailures == 0 {
		settings.ConsecutiveFailures = 5
	}

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        settings.Name,
		MaxRequests: 1,
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= settings.ConsecutiveFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			slog.Warn("Circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	})

	return &breakerEmailService{EmailService: next, cb: cb}
}

func (b *breakerEmailService) Send(ctx context.Context, req *models.EmailNotificationRequest) error {

	_, err := b.cb.Execute(func() (struct{}, error) {
		return struct{}{}, b.EmailService.Send(ctx, req)
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return err
}
