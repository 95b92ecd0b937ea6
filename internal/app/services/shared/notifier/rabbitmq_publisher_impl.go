package notifier

import (
	"clinibook-service/internal/app/config"
	"clinibook-service/internal/app/contracts"
	"clinibook-service/internal/pkg/constvars"
	"clinibook-service/internal/pkg/dto/requests"
	"clinibook-service/internal/pkg/exceptions"
	"context"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type rabbitMQPublisher struct {
	channel   *amqp.Channel
	queueName string
	logger    *zap.Logger
}

// NewRabbitMQPublisher opens a channel on the connection and declares the
// notification queue as durable.
func NewRabbitMQPublisher(conn *amqp.Connection, internalConfig *config.InternalConfig, logger *zap.Logger) (contracts.NotificationPublisher, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	queueName := internalConfig.App.NotificationQueue
	_, err = channel.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, err
	}

	return &rabbitMQPublisher{
		channel:   channel,
		queueName: queueName,
		logger:    logger,
	}, nil
}

func (p *rabbitMQPublisher) PublishBookingConfirmed(ctx context.Context, event *requests.BookingConfirmedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Headers: amqp.Table{
			"event_type": "booking.confirmed",
		},
	}
	if err := p.channel.PublishWithContext(ctx, "", p.queueName, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}

	p.logger.Info("booking confirmation published",
		zap.String("queue", p.queueName),
		zap.String(constvars.LoggingDraftIDKey, event.DraftID),
	)
	return nil
}
