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

type NotificationServiceTestSuite struct {
	suite.Suite
	mockRepo *mocks.Repository
	mockPref *mocks.NotificationPreferenceRepository
	service  *NotificationService
}

func (s *NotificationServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockPref = new(mocks.NotificationPreferenceRepository)
	s.mockRepo.On("NotificationPreference").Return(s.mockPref)
	s.service = NewNotificationService(s.mockRepo)
}

func TestNotificationService(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}

func (s *NotificationServiceTestSuite) TestGet_DefaultsWhenAbsent() {
	ctx := context.Background()
	s.mockPref.On("Get", ctx, "tenant1", "user1").Return(nil, gorm.ErrRecordNotFound)

	pref, err := s.service.Get(ctx, "tenant1", "user1")

	s.Require().NoError(err)
	s.Empty(pref.ID)
	s.True(pref.EmailEnabled)
	s.Equal(domain.DefaultReminderLeadMinutes, pref.ReminderLeadMinutes)
	s.Nil(dto.FromNotificationPreference(pref).ID)
}

func (s *NotificationServiceTestSuite) TestUpsert() {
	ctx := context.Background()
	s.mockPref.On("Upsert", ctx, mock.MatchedBy(func(p *domain.NotificationPreference) bool {
		return p.TenantID == "tenant1" && p.UserID == "user1" && p.SMSEnabled && p.ReminderLeadMinutes == 30
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.NotificationPreference).ID = "pref1"
	}).Return(nil)

	pref, err := s.service.Upsert(ctx, "tenant1", "user1", dto.UpdateNotificationPreferenceRequest{SMSEnabled: true, ReminderLeadMinutes: 30})

	s.Require().NoError(err)
	s.Equal("pref1", pref.ID)
}
