package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

const writerBatchTimeout = 10 * time.Millisecond

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// EmailRequest is the JSON record published for every message.
type EmailRequest struct {
	From    string    `json:"from"`
	To      string    `json:"to"`
	Subject string    `json:"subject"`
	HTML    string    `json:"html"`
	SentAt  time.Time `json:"sent_at"`
}

// KafkaSender publishes messages as EmailRequest records keyed by recipient,
// so all mail for one address stays on one partition.
type KafkaSender struct {
	writer messageWriter
	from   string
	now    func() time.Time
}

func NewKafkaSender(brokers []string, topic, from string) (*KafkaSender, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka sender needs at least one broker")
	}
	if topic == "" {
		return nil, errors.New("kafka sender needs a topic")
	}

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		WriteTimeout:           10 * time.Second,
		// Send writes one message at a time; flush it instead of waiting
		// out the default one second batch window.
		BatchSize:    1,
		BatchTimeout: writerBatchTimeout,
	}
	return newKafkaSender(w, from), nil
}

func newKafkaSender(w messageWriter, from string) *KafkaSender {
	return &KafkaSender{writer: w, from: from, now: time.Now}
}

func (s *KafkaSender) Send(ctx context.Context, m Message) error {
	payload, err := json.Marshal(EmailRequest{
		From:    s.from,
		To:      m.To,
		Subject: m.Subject,
		HTML:    m.Body,
		SentAt:  s.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("encode email request: %w", err)
	}

	if err := s.writer.WriteMessages(ctx, kafka.Message{Key: []byte(m.To), Value: payload}); err != nil {
		return fmt.Errorf("publish email request: %w", err)
	}
	return nil
}

func (s *KafkaSender) Close() error {
	return s.writer.Close()
}
