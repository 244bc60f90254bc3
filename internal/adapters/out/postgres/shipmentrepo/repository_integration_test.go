package shipmentrepo_test

import (
	"context"
	"testing"
	"time"

	"opsboard/internal/adapters/out/postgres/shipmentrepo"
	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/shipment"
	"opsboard/internal/core/ports"
	"opsboard/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockChangeTracker is a mock implementation of the changeTracker interface.
type MockChangeTracker struct {
	mock.Mock
}

func (m *MockChangeTracker) TrackChange(event ports.ChangeEvent) {
	m.Called(event)
}

// ShipmentRepositoryIntegrationTestSuite provides integration tests for
// ShipmentRepository using PostgreSQL containers.
type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *shipmentrepo.GormShipmentRepository
	tracker    *MockChangeTracker
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&shipmentrepo.ShipmentDTO{}))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipments").Error)

	suite.tracker = new(MockChangeTracker)
	suite.repository = shipmentrepo.NewGormShipmentRepository(suite.db, suite.tracker)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ShipmentRepositoryIntegrationTestSuite) createTestShipment() *shipment.Shipment {
	s, err := shipment.NewShipment(
		kernel.NewUUID(),
		shipment.ServiceExpress,
		"12 Dock Rd",
		"88 Venue Ave",
	)
	suite.Require().NoError(err)
	return s
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_ValidShipment_Success() {
	ctx := context.Background()
	s := suite.createTestShipment()

	suite.tracker.On("TrackChange", mock.MatchedBy(func(event ports.ChangeEvent) bool {
		return event.Collection == ports.ShipmentsCollection &&
			event.Action == "INSERT" &&
			event.RecordID == s.ID().String()
	})).Once()

	err := suite.repository.Add(ctx, s)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&shipmentrepo.ShipmentDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_RoundTripsAggregate() {
	ctx := context.Background()
	s := suite.createTestShipment()
	suite.Require().NoError(s.SetPackageWeight(12.5))
	suite.Require().NoError(s.SetInventoryItems([]kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}))

	suite.tracker.On("TrackChange", mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, s))

	restored, err := suite.repository.Get(ctx, s.ID())
	suite.Require().NoError(err)

	suite.True(restored.ID().IsEqual(s.ID()))
	suite.True(restored.TrackingNumber().IsEqual(s.TrackingNumber()))
	suite.Equal(shipment.ServiceExpress, restored.ServiceType())
	suite.Equal(shipment.Processing, restored.Status())
	suite.Require().NotNil(restored.PackageWeight())
	suite.InDelta(12.5, *restored.PackageWeight(), 0.001)
	suite.Len(restored.InventoryItems(), 2)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusAndHistory() {
	ctx := context.Background()
	s := suite.createTestShipment()

	suite.tracker.On("TrackChange", mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, s))

	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	suite.Require().NoError(s.ApplyTransition(shipment.PickedUp, "driver signed manifest", at))
	suite.Require().NoError(suite.repository.Update(ctx, s))

	restored, err := suite.repository.Get(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.PickedUp, restored.Status())

	history := restored.History()
	suite.Require().Len(history, 1)
	suite.Equal("PICKED_UP", history[0].Status)
	suite.Equal("driver signed manifest", history[0].Note)
	suite.True(history[0].Timestamp.Equal(at))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()
	s := suite.createTestShipment()

	err := suite.repository.Update(ctx, s)
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetByTrackingNumber() {
	ctx := context.Background()
	s := suite.createTestShipment()

	suite.tracker.On("TrackChange", mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, s))

	restored, err := suite.repository.GetByTrackingNumber(ctx, s.TrackingNumber())
	suite.Require().NoError(err)
	suite.True(restored.ID().IsEqual(s.ID()))

	missing, err := kernel.TrackingNumberFromString("QCS00000000000")
	suite.Require().NoError(err)

	_, err = suite.repository.GetByTrackingNumber(ctx, missing)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}
