package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kingrain94/vehicle-assess-api/internal/config"
	"github.com/kingrain94/vehicle-assess-api/internal/metrics"
	"github.com/kingrain94/vehicle-assess-api/internal/service/queue"
	"github.com/kingrain94/vehicle-assess-api/pkg/logger"
)

// Receiver is the part of the queue service the pollers consume
type Receiver interface {
	ReceiveMessages(ctx context.Context, queueURL string, maxMessages int32, waitTimeSeconds int32) ([]queue.ReceivedMessage, error)
	DeleteMessage(ctx context.Context, queueURL string, receiptHandle *string) error
}

// HandlerFunc processes one message. The message is deleted only when it returns nil.
type HandlerFunc func(ctx context.Context, msg queue.Message) error

// Poller runs a pool of goroutines that long-poll one queue and hand every
// message to a HandlerFunc.
type Poller struct {
	name         string
	receiver     Receiver
	queueURL     string
	handle       HandlerFunc
	logger       *logger.Logger
	workerCount  int
	pollInterval time.Duration
	maxMessages  int32
	waitTime     int32
	ctx          context.Context
	cancel       context.CancelFunc
	waitGroup    sync.WaitGroup
}

func NewPoller(
	name string,
	receiver Receiver,
	queueURL string,
	handle HandlerFunc,
	logger *logger.Logger,
	cfg *config.WorkerConfig,
) *Poller {
	ctx, cancel := context.WithCancel(context.Background())
	p := &Poller{
		name:         name,
		receiver:     receiver,
		queueURL:     queueURL,
		handle:       handle,
		logger:       logger.Named(name),
		workerCount:  cfg.Concurrency,
		pollInterval: cfg.PollInterval,
		maxMessages:  cfg.MaxMessages,
		waitTime:     cfg.WaitTime,
		ctx:          ctx,
		cancel:       cancel,
	}
	if p.workerCount < 1 {
		p.workerCount = 1
	}
	if p.pollInterval <= 0 {
		p.pollInterval = time.Second
	}
	return p
}

func (p *Poller) Start() {
	p.logger.Info("Starting workers", zap.Int("count", p.workerCount), zap.String("queue_url", p.queueURL))

	for i := 0; i < p.workerCount; i++ {
		p.waitGroup.Add(1)
		go p.runWorker(i)
	}
}

// Stop cancels in-flight receives and waits for every goroutine to return
func (p *Poller) Stop() {
	p.logger.Info("Stopping workers...")
	p.cancel()
	p.waitGroup.Wait()
	p.logger.Info("All workers stopped")
}

func (p *Poller) runWorker(workerID int) {
	defer p.waitGroup.Done()

	p.logger.Infof("Worker %d started", workerID)

	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.ctx.Done():
			p.logger.Infof("Worker %d shutting down", workerID)
			return
		case <-ticker.C:
			if err := p.poll(p.ctx); err != nil && p.ctx.Err() == nil {
				p.logger.Errorf("Worker %d failed to process messages: %v", workerID, err)
			}
		}
	}
}

// poll receives one batch and handles it
func (p *Poller) poll(ctx context.Context) error {
	messages, err := p.receiver.ReceiveMessages(ctx, p.queueURL, p.maxMessages, p.waitTime)
	if err != nil {
		return fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, msg := range messages {
		err := p.handle(ctx, msg.Message)
		metrics.QueueMessagesProcessed.WithLabelValues(p.name, string(msg.Message.Type), metrics.Outcome(err)).Inc()
		if err != nil {
			p.logger.Error("Failed to process message", err,
				zap.String("type", string(msg.Message.Type)),
				zap.String("tenant_id", msg.Message.TenantID),
			)
			continue
		}

		if err := p.receiver.DeleteMessage(ctx, p.queueURL, msg.ReceiptHandle); err != nil {
			p.logger.Errorf("Failed to delete message: %v", err)
		}
	}

	return nil
}
