package reportqueue

import (
	"context"
	"fmt"
	"sync"
	"time"

	"simoly-service/internal/app/contracts"
	"simoly-service/internal/pkg/constvars"
	"simoly-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// ReportGeneratedMessage is the payload published when a report finishes
// generating. Consumers (mailers, dashboards) key off the report ID.
type ReportGeneratedMessage struct {
	ReportID        string `json:"report_id"`
	UserID          string `json:"user_id"`
	QuestionnaireID string `json:"questionnaire_id"`
	GeneratedAt     string `json:"generated_at"`
}

// Service publishes report lifecycle events to a durable RabbitMQ queue with
// publisher confirms.
type Service struct {
	ch        *amqp.Channel
	log       *zap.Logger
	queueName string
	confirms  chan amqp.Confirmation
	mu        sync.Mutex
}

// NewService declares the durable queue and enables publisher confirms.
func NewService(conn *amqp.Connection, log *zap.Logger, queueName string) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	svc := &Service{
		ch:        ch,
		log:       log,
		queueName: queueName,
		confirms:  ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}
	return svc, nil
}

var _ contracts.ReportEventPublisher = (*Service)(nil)

// PublishReportGenerated publishes a persistent message and waits for the
// broker confirm.
func (s *Service) PublishReportGenerated(ctx context.Context, reportID, userID, questionnaireID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("ReportQueue.PublishReportGenerated called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, reportID),
	)

	body, err := json.Marshal(ReportGeneratedMessage{
		ReportID:        reportID,
		UserID:          userID,
		QuestionnaireID: questionnaireID,
		GeneratedAt:     time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := s.ch.PublishWithContext(ctx, "", s.queueName, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.queueName)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), s.queueName)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), s.queueName)
	}
	return nil
}
