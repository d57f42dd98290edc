// Package events publishes domain events (application submitted, offer
// accepted, message sent) over NATS. The resident app runs standalone by
// default, so a no-op publisher stands in when NATS is disabled.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
)

// Subjects published by the resident service.
const (
	SubjectApplicationSubmitted = "resident.application.submitted"
	SubjectOfferAccepted        = "resident.offer.accepted"
	SubjectOfferDeclined        = "resident.offer.declined"
	SubjectMessageSent          = "resident.conversation.message"
)

type Publisher interface {
	Publish(ctx context.Context, subject string, message interface{}) error
}

type natsPublisher struct {
	conn *nats.Conn
}

func NewNATSPublisher(conn *nats.Conn) (Publisher, error) {
	if conn == nil {
		return nil, fmt.Errorf("NATS connection cannot be nil")
	}
	return &natsPublisher{conn: conn}, nil
}

func (p *natsPublisher) Publish(ctx context.Context, subject string, message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message to JSON for subject %s: %w", subject, err)
	}
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish message to NATS subject %s: %w", subject, err)
	}
	return nil
}

type noopPublisher struct{}

// NewNoopPublisher returns a publisher that drops everything.
func NewNoopPublisher() Publisher { return &noopPublisher{} }

func (p *noopPublisher) Publish(ctx context.Context, subject string, message interface{}) error {
	return nil
}
