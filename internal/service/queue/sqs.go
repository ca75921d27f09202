package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/kingrain94/vehicle-assess-api/internal/config"
	"github.com/kingrain94/vehicle-assess-api/internal/domain"
)

type MessageType string

const (
	MessageTypeIndex     MessageType = "INDEX"
	MessageTypeBulkIndex MessageType = "BULK_INDEX"
	MessageTypeAnalyze   MessageType = "ANALYZE"
	MessageTypeCleanup   MessageType = "CLEANUP"
)

type Message struct {
	Type      MessageType      `json:"type"`
	TenantID  string           `json:"tenant_id"`
	Bookings  []domain.Booking `json:"bookings,omitempty"`
	Timestamp time.Time        `json:"timestamp"`

	// ANALYZE
	AnalysisID string `json:"analysis_id,omitempty"`

	// CLEANUP
	BeforeDate time.Time `json:"before_date,omitempty"`
}

type ReceivedMessage struct {
	Message       Message
	ReceiptHandle *string
}

// Client is the subset of the SQS API used here
type Client interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

type SQSService struct {
	client           Client
	indexQueueURL    string
	analysisQueueURL string
	cleanupQueueURL  string
}

func NewSQSService(client Client, config *config.SQSConfig) *SQSService {
	return &SQSService{
		client:           client,
		indexQueueURL:    config.IndexQueueURL,
		analysisQueueURL: config.AnalysisQueueURL,
		cleanupQueueURL:  config.CleanupQueueURL,
	}
}

func (s *SQSService) SendIndexMessage(ctx context.Context, booking *domain.Booking) error {
	msg := Message{
		Type:      MessageTypeIndex,
		TenantID:  booking.TenantID,
		Bookings:  []domain.Booking{*booking},
		Timestamp: time.Now(),
	}

	return s.sendMessage(ctx, msg, s.indexQueueURL)
}

func (s *SQSService) SendBulkIndexMessage(ctx context.Context, bookings []domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	msg := Message{
		Type:      MessageTypeBulkIndex,
		TenantID:  bookings[0].TenantID,
		Bookings:  bookings,
		Timestamp: time.Now(),
	}

	return s.sendMessage(ctx, msg, s.indexQueueURL)
}

func (s *SQSService) SendAnalyzeMessage(ctx context.Context, tenantID, analysisID string) error {
	msg := Message{
		Type:       MessageTypeAnalyze,
		TenantID:   tenantID,
		AnalysisID: analysisID,
		Timestamp:  time.Now(),
	}

	return s.sendMessage(ctx, msg, s.analysisQueueURL)
}

func (s *SQSService) SendCleanupMessage(ctx context.Context, tenantID string, beforeDate time.Time) error {
	msg := Message{
		Type:       MessageTypeCleanup,
		TenantID:   tenantID,
		BeforeDate: beforeDate,
		Timestamp:  time.Now(),
	}

	return s.sendMessage(ctx, msg, s.cleanupQueueURL)
}

func (s *SQSService) sendMessage(ctx context.Context, msg Message, queueURL string) error {
	msgBody, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	input := &sqs.SendMessageInput{
		MessageBody: aws.String(string(msgBody)),
		QueueUrl:    aws.String(queueURL),
	}

	_, err = s.client.SendMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

func (s *SQSService) ReceiveMessages(ctx context.Context, queueURL string, maxMessages int32, waitTimeSeconds int32) ([]ReceivedMessage, error) {
	input := &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(queueURL),
		MaxNumberOfMessages: maxMessages,
		WaitTimeSeconds:     waitTimeSeconds,
	}

	output, err := s.client.ReceiveMessage(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to receive messages: %w", err)
	}

	var messages []ReceivedMessage
	for _, msg := range output.Messages {
		var message Message
		if err := json.Unmarshal([]byte(aws.ToString(msg.Body)), &message); err != nil {
			return nil, fmt.Errorf("failed to unmarshal message: %w", err)
		}
		messages = append(messages, ReceivedMessage{
			Message:       message,
			ReceiptHandle: msg.ReceiptHandle,
		})
	}

	return messages, nil
}

func (s *SQSService) DeleteMessage(ctx context.Context, queueURL string, receiptHandle *string) error {
	input := &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(queueURL),
		ReceiptHandle: receiptHandle,
	}

	_, err := s.client.DeleteMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	return nil
}
