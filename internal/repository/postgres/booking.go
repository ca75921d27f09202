package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/kingrain94/vehicle-assess-api/internal/domain"
)

type BookingRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewBookingRepository(writerDB, readerDB *gorm.DB) *BookingRepository {
	return &BookingRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	return r.writerDB.WithContext(ctx).Create(booking).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var booking domain.Booking

	db, err := getTenantScope(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}

	if err := db.First(&booking, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepository) GetByCalendarEventID(ctx context.Context, eventID string) (*domain.Booking, error) {
	var booking domain.Booking
	if err := r.writerDB.WithContext(ctx).First(&booking, "calendar_event_id = ?", eventID).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepository) List(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, int64, error) {
	var bookings []domain.Booking

	db := r.readerDB.WithContext(ctx).Model(&domain.Booking{})
	if filter.TenantID == "" {
		return nil, 0, fmt.Errorf("tenant_id is required")
	}
	db = db.Where("tenant_id = ?", filter.TenantID)

	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.StartTime > 0 {
		db = db.Where("start_time >= ?", filter.StartTime)
	}
	if filter.EndTime > 0 {
		db = db.Where("start_time <= ?", filter.EndTime)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	db = paginate(db, filter.Limit, filter.Offset).Order("start_time ASC")
	if err := db.Find(&bookings).Error; err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

func (r *BookingRepository) Patch(ctx context.Context, id string, updates map[string]any) (int64, error) {
	result := r.writerDB.WithContext(ctx).Model(&domain.Booking{}).Where("id = ?", id).Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *BookingRepository) Delete(ctx context.Context, id string) (int64, error) {
	db, err := getTenantScope(r.writerDB, ctx)
	if err != nil {
		return 0, err
	}
	result := db.Delete(&domain.Booking{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

// ListBusy returns non-cancelled bookings intersecting [startMillis, endMillis).
func (r *BookingRepository) ListBusy(ctx context.Context, tenantID string, startMillis, endMillis int64) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ? AND status <> ? AND start_time < ? AND end_time > ?",
			tenantID, domain.BookingCancelled, endMillis, startMillis).
		Order("start_time ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list busy bookings: %w", err)
	}
	return bookings, nil
}

func (r *BookingRepository) CountByStatus(ctx context.Context, tenantID string) (map[domain.BookingStatus]int64, error) {
	type countResult struct {
		Status string
		Count  int64
	}
	var results []countResult

	err := r.readerDB.WithContext(ctx).Model(&domain.Booking{}).
		Select("status, COUNT(*) AS count").
		Where("tenant_id = ?", tenantID).
		Group("status").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings by status: %w", err)
	}

	counts := make(map[domain.BookingStatus]int64, len(results))
	for _, res := range results {
		counts[domain.BookingStatus(res.Status)] = res.Count
	}
	return counts, nil
}

func (r *BookingRepository) CountUpcoming(ctx context.Context, tenantID string, fromMillis, toMillis int64) (int64, error) {
	var count int64
	err := r.readerDB.WithContext(ctx).Model(&domain.Booking{}).
		Where("tenant_id = ? AND status IN ? AND start_time >= ? AND start_time < ?",
			tenantID, []domain.BookingStatus{domain.BookingPending, domain.BookingConfirmed}, fromMillis, toMillis).
		Count(&count).Error
	return count, err
}
