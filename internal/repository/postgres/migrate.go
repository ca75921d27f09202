package postgres

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kingrain94/vehicle-assess-api/internal/domain"
	"github.com/kingrain94/vehicle-assess-api/pkg/logger"
)

// MigrationStep is one named, ordered schema change.
type MigrationStep struct {
	Name string
	Up   func(tx *gorm.DB) error
}

func autoMigrate(models ...interface{}) func(tx *gorm.DB) error {
	return func(tx *gorm.DB) error {
		return tx.AutoMigrate(models...)
	}
}

func execSQL(statements ...string) func(tx *gorm.DB) error {
	return func(tx *gorm.DB) error {
		for _, stmt := range statements {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return nil
	}
}

// DefaultMigrationSteps is the schema history. Append only.
func DefaultMigrationSteps() []MigrationStep {
	return []MigrationStep{
		{Name: "0001_extensions", Up: execSQL(`CREATE EXTENSION IF NOT EXISTS pgcrypto`)},
		{Name: "0002_tenants_users_sessions", Up: autoMigrate(&domain.Tenant{}, &domain.User{}, &domain.Session{})},
		{Name: "0003_bookings_files", Up: autoMigrate(&domain.Booking{}, &domain.File{})},
		{Name: "0004_pricing_notifications", Up: autoMigrate(&domain.PricingRule{}, &domain.NotificationPreference{})},
		{Name: "0005_rate_limit_events_search_history", Up: autoMigrate(&domain.RateLimitEvent{}, &domain.SearchHistory{})},
		{Name: "0006_text_streams_analyses_embeddings", Up: autoMigrate(&domain.TextStream{}, &domain.VehicleAnalysis{}, &domain.Embedding{})},
		{Name: "0007_booking_status_index", Up: execSQL(
			`CREATE INDEX IF NOT EXISTS idx_bookings_tenant_status ON bookings (tenant_id, status)`,
			`CREATE INDEX IF NOT EXISTS idx_search_history_created_at ON search_history (tenant_id, created_at DESC)`,
		)},
	}
}

type Migrator struct {
	db     *gorm.DB
	steps  []MigrationStep
	logger *logger.Logger
}

func NewMigrator(db *gorm.DB, steps []MigrationStep, logger *logger.Logger) *Migrator {
	return &Migrator{db: db, steps: steps, logger: logger}
}

// Applied returns the names of recorded steps.
func (m *Migrator) Applied(ctx context.Context) (map[string]bool, error) {
	if err := m.db.WithContext(ctx).AutoMigrate(&domain.MigrationRecord{}); err != nil {
		return nil, fmt.Errorf("failed to create migrations table: %w", err)
	}

	var records []domain.MigrationRecord
	if err := m.db.WithContext(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to read applied migrations: %w", err)
	}

	applied := make(map[string]bool, len(records))
	for _, rec := range records {
		applied[rec.Name] = true
	}
	return applied, nil
}

// Pending returns the steps not recorded yet, in order.
func (m *Migrator) Pending(ctx context.Context) ([]MigrationStep, error) {
	applied, err := m.Applied(ctx)
	if err != nil {
		return nil, err
	}
	return pendingSteps(m.steps, applied), nil
}

func pendingSteps(steps []MigrationStep, applied map[string]bool) []MigrationStep {
	pending := make([]MigrationStep, 0, len(steps))
	for _, step := range steps {
		if !applied[step.Name] {
			pending = append(pending, step)
		}
	}
	return pending
}

// Run applies each pending step in its own transaction and records it.
func (m *Migrator) Run(ctx context.Context) ([]string, error) {
	pending, err := m.Pending(ctx)
	if err != nil {
		return nil, err
	}

	ran := make([]string, 0, len(pending))
	for _, step := range pending {
		start := time.Now()
		err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := step.Up(tx); err != nil {
				return err
			}
			return tx.Create(&domain.MigrationRecord{Name: step.Name}).Error
		})
		if err != nil {
			m.logger.Error("Migration failed", err, zap.String("step", step.Name))
			return ran, fmt.Errorf("migration %s failed: %w", step.Name, err)
		}
		m.logger.Info("Migration applied",
			zap.String("step", step.Name),
			zap.Duration("duration", time.Since(start)))
		ran = append(ran, step.Name)
	}

	return ran, nil
}
