package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/kingrain94/vehicle-assess-api/internal/api/dto"
	"github.com/kingrain94/vehicle-assess-api/internal/domain"
	"github.com/kingrain94/vehicle-assess-api/internal/metrics"
	"github.com/kingrain94/vehicle-assess-api/internal/repository"
	"github.com/kingrain94/vehicle-assess-api/pkg/logger"
)

const (
	StripeCheckoutCompleted   = "checkout.session.completed"
	StripeSubscriptionDeleted = "customer.subscription.deleted"
)

func stripeEventLabel(eventType string) string {
	return metrics.EventType(eventType, StripeCheckoutCompleted, StripeSubscriptionDeleted)
}

// BillingService applies payment provider events to tenants. Signatures are
// not verified.
type BillingService struct {
	repo   repository.Repository
	logger *logger.Logger
}

func NewBillingService(repo repository.Repository, logger *logger.Logger) *BillingService {
	return &BillingService{repo: repo, logger: logger}
}

func (s *BillingService) HandleStripeEvent(ctx context.Context, event dto.StripeEvent) error {
	object := event.Data.Object
	tenantID := object.Metadata["tenant_id"]

	var updates map[string]any
	switch event.Type {
	case StripeCheckoutCompleted:
		updates = map[string]any{
			"plan":                string(domain.PlanPro),
			"subscription_status": string(domain.SubscriptionActive),
		}
		if object.Customer != "" {
			updates["stripe_customer_id"] = object.Customer
		}
	case StripeSubscriptionDeleted:
		updates = map[string]any{
			"plan":                string(domain.PlanFree),
			"subscription_status": string(domain.SubscriptionCancelled),
		}
	default:
		s.logger.Info("Ignoring stripe event", zap.String("event_id", event.ID), zap.String("type", event.Type))
		metrics.WebhookEvents.WithLabelValues("stripe", stripeEventLabel(event.Type), "ignored").Inc()
		return nil
	}

	if tenantID == "" {
		s.logger.Warn("Stripe event without tenant metadata",
			zap.String("event_id", event.ID),
			zap.String("type", event.Type),
		)
		metrics.WebhookEvents.WithLabelValues("stripe", stripeEventLabel(event.Type), "ignored").Inc()
		return nil
	}

	patched, err := s.repo.Tenant().Patch(ctx, tenantID, updates)
	metrics.WebhookEvents.WithLabelValues("stripe", stripeEventLabel(event.Type), metrics.Outcome(err)).Inc()
	if err != nil {
		return err
	}
	if patched == 0 {
		s.logger.Warn("Stripe event for unknown tenant", zap.String("tenant_id", tenantID))
		return nil
	}

	s.logger.Info("Applied stripe event",
		zap.String("event_id", event.ID),
		zap.String("type", event.Type),
		zap.String("tenant_id", tenantID),
	)
	return nil
}
