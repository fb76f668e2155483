package impl

import (
	"context"
	"log/slog"

	"nosh/internal/domain/entity"
	"nosh/internal/domain/repository"
	"nosh/internal/usecase"
)

type notificationService struct {
	gateway repository.NotificationGateway
	logger  *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(gateway repository.NotificationGateway, logger *slog.Logger) usecase.NotificationUsecase {
	return &notificationService{
		gateway: gateway,
		logger:  logger,
	}
}

// List fetches the inbox. The inbox is non-critical: a failure is logged
// and surfaces as an empty list so it never blocks a screen.
func (s *notificationService) List(ctx context.Context) ([]entity.Notification, error) {
	notifications, err := s.gateway.List(ctx)
	if err != nil {
		s.logger.Warn("Notification fetch failed", slog.Any("error", err))

		return nil, nil
	}

	return notifications, nil
}
