package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/kingrain94/vehicle-assess-api/internal/api/dto"
	"github.com/kingrain94/vehicle-assess-api/internal/domain"
	"github.com/kingrain94/vehicle-assess-api/internal/mocks"
)

type PricingServiceTestSuite struct {
	suite.Suite
	mockRepo *mocks.Repository
	mockRule *mocks.PricingRuleRepository
	service  *PricingService
}

func (s *PricingServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockRule = new(mocks.PricingRuleRepository)
	s.mockRepo.On("PricingRule").Return(s.mockRule)
	s.service = NewPricingService(s.mockRepo)
}

func TestPricingService(t *testing.T) {
	suite.Run(t, new(PricingServiceTestSuite))
}

func (s *PricingServiceTestSuite) TestCreate_DefaultsActive() {
	ctx := context.Background()
	s.mockRule.On("Create", ctx, mock.AnythingOfType("*domain.PricingRule")).Return(nil)

	rule, err := s.service.Create(ctx, "tenant1", dto.CreatePricingRuleRequest{Name: "Std", ServiceType: "inspection", BasePriceCents: 9900})

	s.Require().NoError(err)
	s.True(rule.Active)
	s.Equal("tenant1", rule.TenantID)
}

func (s *PricingServiceTestSuite) TestUpdate_AppliesSetFields() {
	ctx := context.Background()
	existing := &domain.PricingRule{ID: "rule1", Name: "Std", BasePriceCents: 9900, Active: true}
	s.mockRule.On("GetByID", ctx, "rule1").Return(existing, nil)
	s.mockRule.On("Update", ctx, existing).Return(nil)

	inactive := false
	price := int64(12900)
	rule, err := s.service.Update(ctx, "rule1", dto.UpdatePricingRuleRequest{BasePriceCents: &price, Active: &inactive})

	s.Require().NoError(err)
	s.Equal("Std", rule.Name)
	s.Equal(int64(12900), rule.BasePriceCents)
	s.False(rule.Active)
}

func (s *PricingServiceTestSuite) TestGet_NotFound() {
	ctx := context.Background()
	s.mockRule.On("GetByID", ctx, "nope").Return(nil, gorm.ErrRecordNotFound)

	_, err := s.service.Get(ctx, "nope")

	s.ErrorIs(err, ErrPricingRuleNotFound)
}

func (s *PricingServiceTestSuite) TestDelete_NotFound() {
	ctx := context.Background()
	s.mockRule.On("Delete", ctx, "nope").Return(int64(0), nil)

	s.ErrorIs(s.service.Delete(ctx, "nope"), ErrPricingRuleNotFound)
}
