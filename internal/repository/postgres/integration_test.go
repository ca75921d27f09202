//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"github.com/kingrain94/vehicle-assess-api/internal/config"
	"github.com/kingrain94/vehicle-assess-api/internal/domain"
	"github.com/kingrain94/vehicle-assess-api/internal/utils"
	"github.com/kingrain94/vehicle-assess-api/pkg/logger"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *tcpostgres.PostgresContainer
	conns     *config.DatabaseConnections
	repo      *postgresRepository
	tenant    *domain.Tenant
	tenantCtx context.Context
}

func TestPostgresIntegration(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := tcpostgres.Run(s.ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("vehicle_assess_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.conns, err = config.NewDatabaseConnectionsFromDSN(dsn)
	s.Require().NoError(err)

	ran, err := NewMigrator(s.conns.Writer, DefaultMigrationSteps(), logger.NewNopLogger()).Run(s.ctx)
	s.Require().NoError(err)
	s.Len(ran, len(DefaultMigrationSteps()))

	s.repo = NewPostgresRepository(s.conns).(*postgresRepository)
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.conns != nil {
		_ = s.conns.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	tenant, err := s.repo.Tenant().Create(s.ctx, &domain.Tenant{Name: "Garage", Slug: "garage-" + time.Now().Format("150405.000000")})
	s.Require().NoError(err)
	s.tenant = tenant
	s.tenantCtx = utils.WithTenantClaims(s.ctx, tenant.ID)
}

func (s *PostgresIntegrationSuite) TestMigrator_SecondRunIsNoop() {
	ran, err := NewMigrator(s.conns.Writer, DefaultMigrationSteps(), logger.NewNopLogger()).Run(s.ctx)
	s.NoError(err)
	s.Empty(ran)
}

func (s *PostgresIntegrationSuite) TestBooking_CreateListPatchAndCounts() {
	now := time.Now().UnixMilli()
	booking := &domain.Booking{
		TenantID:     s.tenant.ID,
		CustomerName: "Ada",
		ServiceType:  "inspection",
		StartTime:    now + time.Hour.Milliseconds(),
		EndTime:      now + 2*time.Hour.Milliseconds(),
		Status:       string(domain.BookingPending),
	}
	s.Require().NoError(s.repo.Booking().Create(s.ctx, booking))
	s.NotEmpty(booking.ID)
	s.NotZero(booking.CreatedAt)

	got, err := s.repo.Booking().GetByID(s.tenantCtx, booking.ID)
	s.Require().NoError(err)
	s.Equal("Ada", got.CustomerName)

	_, err = s.repo.Booking().GetByID(utils.WithTenantClaims(s.ctx, "00000000-0000-0000-0000-000000000000"), booking.ID)
	s.ErrorIs(err, gorm.ErrRecordNotFound)

	list, total, err := s.repo.Booking().List(s.ctx, domain.BookingFilter{TenantID: s.tenant.ID, Status: "pending"})
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Len(list, 1)

	upcoming, err := s.repo.Booking().CountUpcoming(s.ctx, s.tenant.ID, now, now+7*24*time.Hour.Milliseconds())
	s.NoError(err)
	s.Equal(int64(1), upcoming)

	eventID := "evt_123"
	rows, err := s.repo.Booking().Patch(s.ctx, booking.ID, map[string]any{"calendar_event_id": eventID, "status": domain.BookingConfirmed})
	s.NoError(err)
	s.Equal(int64(1), rows)

	linked, err := s.repo.Booking().GetByCalendarEventID(s.ctx, eventID)
	s.Require().NoError(err)
	s.Equal(booking.ID, linked.ID)

	counts, err := s.repo.Booking().CountByStatus(s.ctx, s.tenant.ID)
	s.NoError(err)
	s.Equal(int64(1), counts[domain.BookingConfirmed])

	busy, err := s.repo.Booking().ListBusy(s.ctx, s.tenant.ID, now, now+3*time.Hour.Milliseconds())
	s.NoError(err)
	s.Len(busy, 1)
}

func (s *PostgresIntegrationSuite) TestSession_DeleteUnknownTokenAffectsNothing() {
	rows, err := s.repo.Session().DeleteByToken(s.ctx, "does-not-exist")
	s.NoError(err)
	s.Equal(int64(0), rows)
}

func (s *PostgresIntegrationSuite) TestNotificationPreference_Upsert() {
	user := &domain.User{TenantID: s.tenant.ID, ExternalID: "ext-" + s.tenant.ID, Email: s.tenant.ID + "@example.com", Name: "Ada", Roles: domain.DefaultOwnerRoles}
	s.Require().NoError(s.repo.User().Create(s.ctx, user))

	_, err := s.repo.NotificationPreference().Get(s.ctx, s.tenant.ID, user.ID)
	s.ErrorIs(err, gorm.ErrRecordNotFound)

	pref := domain.DefaultNotificationPreference(s.tenant.ID, user.ID)
	s.Require().NoError(s.repo.NotificationPreference().Upsert(s.ctx, pref))

	pref2 := domain.DefaultNotificationPreference(s.tenant.ID, user.ID)
	pref2.SMSEnabled = true
	pref2.ReminderLeadMinutes = 15
	s.Require().NoError(s.repo.NotificationPreference().Upsert(s.ctx, pref2))

	got, err := s.repo.NotificationPreference().Get(s.ctx, s.tenant.ID, user.ID)
	s.Require().NoError(err)
	s.True(got.SMSEnabled)
	s.Equal(15, got.ReminderLeadMinutes)
}

func (s *PostgresIntegrationSuite) TestFileStats() {
	user := &domain.User{TenantID: s.tenant.ID, ExternalID: "ext-f-" + s.tenant.ID, Email: "f-" + s.tenant.ID + "@example.com", Name: "Ada", Roles: []string{"staff"}}
	s.Require().NoError(s.repo.User().Create(s.ctx, user))

	for _, size := range []int64{1024, 2048} {
		s.Require().NoError(s.repo.File().Create(s.ctx, &domain.File{
			TenantID: s.tenant.ID, UploaderID: user.ID, StorageKey: "k", FileName: "a.jpg", Size: size,
		}))
	}

	count, total, err := s.repo.File().Stats(s.ctx, s.tenant.ID)
	s.NoError(err)
	s.Equal(int64(2), count)
	s.Equal(int64(3072), total)
}

func (s *PostgresIntegrationSuite) TestEmbeddingVectorRoundTrip() {
	s.Require().NoError(s.repo.Embedding().Create(s.ctx, &domain.Embedding{
		TenantID: s.tenant.ID, SourceType: string(domain.EmbeddingSourceAnalysis), SourceID: "a1", Vector: []float32{0.5, 0.25},
	}))

	list, err := s.repo.Embedding().ListBySource(s.ctx, s.tenant.ID, string(domain.EmbeddingSourceAnalysis))
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal([]float32{0.5, 0.25}, list[0].Vector)
}
