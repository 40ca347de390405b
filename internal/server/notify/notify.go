// Package notify delivers the emails the auth workflows send. Delivery
// itself happens elsewhere: senders here either log the message or hand it
// to a Kafka topic read by a mailer.
package notify

import (
	"context"
)

// Message is one outgoing email. Body is HTML.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender delivers a message or reports why it could not.
type Sender interface {
	Send(ctx context.Context, m Message) error
}
