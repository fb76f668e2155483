package usecase

import (
	"context"

	"nosh/internal/domain/entity"
)

// NotificationUsecase covers the customer notification inbox.
type NotificationUsecase interface {
	List(ctx context.Context) ([]entity.Notification, error)
}
