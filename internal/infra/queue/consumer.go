package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AlertSender turns one queued follow-up alert into an outbound notification
// (the mail sender implements this).
type AlertSender interface {
	SendFollowUpAlert(to, bdaName, leadName, date, bucket string) error
}

// Consumer drains the follow-up queue and hands each alert to the sender.
// Decoupled from the store on purpose: everything it needs rides in the
// message.
type Consumer struct {
	Channel *amqp.Channel
	Sender  AlertSender
}

func NewConsumer(ch *amqp.Channel, sender AlertSender) *Consumer {
	return &Consumer{Channel: ch, Sender: sender}
}

func (c *Consumer) Start(queueName string) {
	msgs, err := c.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("registering follow-up consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload FollowUpPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("followup consumer: malformed message, dropping: %s", err)
				// Malformed message goes to the DLQ, no requeue.
				d.Nack(false, false)
				continue
			}

			if payload.BdaEmail == "" {
				// Unassigned lead or BDA without an email; nothing to send.
				d.Ack(false)
				continue
			}

			err := c.Sender.SendFollowUpAlert(
				payload.BdaEmail, payload.BdaName,
				payload.LeadName, payload.Date, string(payload.Bucket),
			)
			if err != nil {
				log.Printf("followup consumer: alert for lead %s failed: %s", payload.LeadID, err)
				d.Nack(false, false)
				continue
			}

			d.Ack(false)
		}
	}()

	log.Printf("followup consumer waiting on queue %q", queueName)
	<-forever
}
