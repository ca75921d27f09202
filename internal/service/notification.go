package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kingrain94/vehicle-assess-api/internal/api/dto"
	"github.com/kingrain94/vehicle-assess-api/internal/domain"
	"github.com/kingrain94/vehicle-assess-api/internal/repository"
)

type NotificationService struct {
	repo repository.Repository
}

func NewNotificationService(repo repository.Repository) *NotificationService {
	return &NotificationService{repo: repo}
}

// Get returns the saved preferences, or unsaved defaults with an empty id
func (s *NotificationService) Get(ctx context.Context, tenantID, userID string) (*domain.NotificationPreference, error) {
	pref, err := s.repo.NotificationPreference().Get(ctx, tenantID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.DefaultNotificationPreference(tenantID, userID), nil
	}
	return pref, err
}

func (s *NotificationService) Upsert(ctx context.Context, tenantID, userID string, req dto.UpdateNotificationPreferenceRequest) (*domain.NotificationPreference, error) {
	pref := &domain.NotificationPreference{
		TenantID:            tenantID,
		UserID:              userID,
		EmailEnabled:        req.EmailEnabled,
		SMSEnabled:          req.SMSEnabled,
		BookingReminders:    req.BookingReminders,
		AnalysisUpdates:     req.AnalysisUpdates,
		ReminderLeadMinutes: req.ReminderLeadMinutes,
	}
	if err := s.repo.NotificationPreference().Upsert(ctx, pref); err != nil {
		return nil, err
	}
	return pref, nil
}
