package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/pipetrack/pipetrack/internal/entity"
)

// FollowUpPayload is one follow-up alert bound for the queue: the derived
// event plus enough lead/assignee context for the digest mailer to act
// without a store lookup.
type FollowUpPayload struct {
	MessageID string        `json:"message_id"`
	LeadID    string        `json:"lead_id"`
	LeadName  string        `json:"lead_name"`
	Date      string        `json:"date"`
	Bucket    entity.Bucket `json:"bucket"`
	BdaName   string        `json:"bda_name"`
	BdaEmail  string        `json:"bda_email"`
}

type ProducerInterface interface {
	PublishFollowUp(ctx context.Context, payload FollowUpPayload) error
}

type Producer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *Producer {
	return &Producer{Conn: conn, Ch: ch}
}

func (p *Producer) PublishFollowUp(ctx context.Context, payload FollowUpPayload) error {
	if payload.MessageID == "" {
		payload.MessageID = uuid.New().String()
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding follow-up payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    payload.MessageID,
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publishing follow-up alert: %w", err)
	}
	return nil
}
