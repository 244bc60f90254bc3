package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"opsboard/internal/adapters/out/postgres"
	"opsboard/internal/adapters/out/postgres/activityrepo"
	"opsboard/internal/adapters/out/postgres/eventrepo"
	"opsboard/internal/adapters/out/postgres/inventoryrepo"
	"opsboard/internal/adapters/out/postgres/notificationrepo"
	"opsboard/internal/adapters/out/postgres/shipmentrepo"
	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/notification"
	"opsboard/internal/core/domain/model/shipment"
	"opsboard/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// recordingPublisher captures published change events for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	events []ports.ChangeEvent
}

func (p *recordingPublisher) Publish(event ports.ChangeEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) published() []ports.ChangeEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]ports.ChangeEvent(nil), p.events...)
}

// UnitOfWorkIntegrationTestSuite verifies transaction coordination and
// change-feed publication against a real PostgreSQL instance.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	publisher *recordingPublisher
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&eventrepo.EventDTO{},
		&inventoryrepo.ItemDTO{},
		&notificationrepo.NotificationDTO{},
		&activityrepo.ActivityDTO{},
	))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE shipments, events, inventory, notifications, activities").Error)

	suite.publisher = &recordingPublisher{}
	suite.factory = postgres.NewGormUnitOfWorkFactory(suite.db, suite.publisher)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newShipment() *shipment.Shipment {
	s, err := shipment.NewShipment(kernel.NewUUID(), shipment.ServiceStandard, "12 Dock Rd", "88 Venue Ave")
	suite.Require().NoError(err)
	return s
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAndPublishes() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	s := suite.newShipment()
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, s))

	n, err := notification.NewNotification(
		kernel.NewUUID(), "Shipment Update", "Shipment is being processed",
		notification.KindInfo, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.NotificationRepository().Add(ctx, n))

	suite.Require().NoError(uow.Commit(ctx))

	var count int64
	suite.Require().NoError(suite.db.Table("shipments").Count(&count).Error)
	suite.Equal(int64(1), count)

	events := suite.publisher.published()
	suite.Require().Len(events, 2)
	suite.Equal(ports.ShipmentsCollection, events[0].Collection)
	suite.Equal("INSERT", events[0].Action)
	suite.Equal(ports.NotificationsCollection, events[1].Collection)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsWritesAndEvents() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, suite.newShipment()))
	suite.Require().NoError(uow.Rollback(ctx))

	var count int64
	suite.Require().NoError(suite.db.Table("shipments").Count(&count).Error)
	suite.Equal(int64(0), count)
	suite.Empty(suite.publisher.published())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBeginFails() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionIsolation() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, suite.newShipment()))

	// Uncommitted writes must be invisible outside the transaction.
	var count int64
	suite.Require().NoError(suite.db.Table("shipments").Count(&count).Error)
	suite.Equal(int64(0), count)

	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().NoError(suite.db.Table("shipments").Count(&count).Error)
	suite.Equal(int64(1), count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
