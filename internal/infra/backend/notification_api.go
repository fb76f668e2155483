package backend

import (
	"context"

	"nosh/internal/domain/entity"
	"nosh/internal/domain/repository"
)

type notificationAPI struct {
	client *Client
}

// NewNotificationAPI is the constructor for the notification inbox gateway.
func NewNotificationAPI(client *Client) repository.NotificationGateway {
	return &notificationAPI{client: client}
}

func (a *notificationAPI) List(ctx context.Context) ([]entity.Notification, error) {
	return listGet[entity.Notification](ctx, a.client, endpointCustomerNotifications, nil, "")
}
