package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kingrain94/vehicle-assess-api/internal/api/dto"
	"github.com/kingrain94/vehicle-assess-api/internal/domain"
	"github.com/kingrain94/vehicle-assess-api/internal/repository"
)

// PricingService stores pricing rules. Nothing evaluates them.
type PricingService struct {
	repo repository.Repository
}

func NewPricingService(repo repository.Repository) *PricingService {
	return &PricingService{repo: repo}
}

func (s *PricingService) Create(ctx context.Context, tenantID string, req dto.CreatePricingRuleRequest) (*domain.PricingRule, error) {
	rule := req.ToPricingRule(tenantID)
	if err := s.repo.PricingRule().Create(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func (s *PricingService) Get(ctx context.Context, id string) (*domain.PricingRule, error) {
	rule, err := s.repo.PricingRule().GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPricingRuleNotFound
	}
	return rule, err
}

func (s *PricingService) List(ctx context.Context, tenantID string, activeOnly bool) ([]domain.PricingRule, error) {
	return s.repo.PricingRule().List(ctx, tenantID, activeOnly)
}

func (s *PricingService) Update(ctx context.Context, id string, req dto.UpdatePricingRuleRequest) (*domain.PricingRule, error) {
	rule, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(rule)
	if err := s.repo.PricingRule().Update(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func (s *PricingService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.PricingRule().Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrPricingRuleNotFound
	}
	return nil
}
