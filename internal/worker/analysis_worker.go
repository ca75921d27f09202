package worker

import (
	"context"
	"fmt"

	"github.com/kingrain94/vehicle-assess-api/internal/config"
	"github.com/kingrain94/vehicle-assess-api/internal/service/queue"
	"github.com/kingrain94/vehicle-assess-api/pkg/logger"
)

// AnalysisProcessor runs a queued vehicle analysis to a terminal status.
// Provider failures are recorded on the analysis and do not surface as errors.
type AnalysisProcessor interface {
	Process(ctx context.Context, tenantID, analysisID string) error
}

type AnalysisWorker struct {
	*Poller
	processor AnalysisProcessor
}

func NewAnalysisWorker(
	receiver Receiver,
	sqsConfig *config.SQSConfig,
	processor AnalysisProcessor,
	logger *logger.Logger,
	cfg *config.WorkerConfig,
) *AnalysisWorker {
	w := &AnalysisWorker{processor: processor}
	w.Poller = NewPoller("analysis_worker", receiver, sqsConfig.AnalysisQueueURL, w.processMessage, logger, cfg)
	return w
}

func (w *AnalysisWorker) processMessage(ctx context.Context, msg queue.Message) error {
	if msg.Type != queue.MessageTypeAnalyze {
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
	if msg.AnalysisID == "" || msg.TenantID == "" {
		return fmt.Errorf("ANALYZE message requires tenant_id and analysis_id")
	}

	w.logger.Infof("Processing analysis %s for tenant %s", msg.AnalysisID, msg.TenantID)
	return w.processor.Process(ctx, msg.TenantID, msg.AnalysisID)
}
