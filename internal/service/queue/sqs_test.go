package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/vehicle-assess-api/internal/config"
	"github.com/kingrain94/vehicle-assess-api/internal/domain"
)

type fakeSQSClient struct {
	sent     []*sqs.SendMessageInput
	received []types.Message
	deleted  []*sqs.DeleteMessageInput
	sendErr  error
}

func (f *fakeSQSClient) SendMessage(_ context.Context, in *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sent = append(f.sent, in)
	return &sqs.SendMessageOutput{}, nil
}

func (f *fakeSQSClient) ReceiveMessage(_ context.Context, _ *sqs.ReceiveMessageInput, _ ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	return &sqs.ReceiveMessageOutput{Messages: f.received}, nil
}

func (f *fakeSQSClient) DeleteMessage(_ context.Context, in *sqs.DeleteMessageInput, _ ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	f.deleted = append(f.deleted, in)
	return &sqs.DeleteMessageOutput{}, nil
}

func testConfig() *config.SQSConfig {
	return &config.SQSConfig{IndexQueueURL: "index", AnalysisQueueURL: "analysis", CleanupQueueURL: "cleanup"}
}

func decodeSent(t *testing.T, in *sqs.SendMessageInput) Message {
	t.Helper()
	var msg Message
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(in.MessageBody)), &msg))
	return msg
}

func TestSendMessages_RouteToQueues(t *testing.T) {
	client := &fakeSQSClient{}
	svc := NewSQSService(client, testConfig())
	ctx := context.Background()

	require.NoError(t, svc.SendIndexMessage(ctx, &domain.Booking{ID: "b1", TenantID: "t1"}))
	require.NoError(t, svc.SendAnalyzeMessage(ctx, "t1", "a1"))
	require.NoError(t, svc.SendCleanupMessage(ctx, "t1", time.UnixMilli(1000)))
	require.Len(t, client.sent, 3)

	assert.Equal(t, "index", aws.ToString(client.sent[0].QueueUrl))
	msg := decodeSent(t, client.sent[0])
	assert.Equal(t, MessageTypeIndex, msg.Type)
	assert.Equal(t, "b1", msg.Bookings[0].ID)

	assert.Equal(t, "analysis", aws.ToString(client.sent[1].QueueUrl))
	assert.Equal(t, "a1", decodeSent(t, client.sent[1]).AnalysisID)

	assert.Equal(t, "cleanup", aws.ToString(client.sent[2].QueueUrl))
	assert.Equal(t, MessageTypeCleanup, decodeSent(t, client.sent[2]).Type)
}

func TestSendBulkIndexMessage_EmptyIsNoop(t *testing.T) {
	client := &fakeSQSClient{}
	require.NoError(t, NewSQSService(client, testConfig()).SendBulkIndexMessage(context.Background(), nil))
	assert.Empty(t, client.sent)
}

func TestSendMessage_WrapsError(t *testing.T) {
	client := &fakeSQSClient{sendErr: errors.New("boom")}
	err := NewSQSService(client, testConfig()).SendAnalyzeMessage(context.Background(), "t1", "a1")
	assert.ErrorContains(t, err, "failed to send message")
}

func TestReceiveMessages_DecodesBodies(t *testing.T) {
	body, _ := json.Marshal(Message{Type: MessageTypeAnalyze, TenantID: "t1", AnalysisID: "a1"})
	client := &fakeSQSClient{received: []types.Message{{Body: aws.String(string(body)), ReceiptHandle: aws.String("r1")}}}

	msgs, err := NewSQSService(client, testConfig()).ReceiveMessages(context.Background(), "analysis", 10, 1)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "a1", msgs[0].Message.AnalysisID)
	assert.Equal(t, "r1", aws.ToString(msgs[0].ReceiptHandle))
}
