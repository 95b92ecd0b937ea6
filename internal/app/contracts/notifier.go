package contracts

import (
	"clinibook-service/internal/pkg/dto/requests"
	"context"
)

type NotificationPublisher interface {
	PublishBookingConfirmed(ctx context.Context, event *requests.BookingConfirmedEvent) error
}
