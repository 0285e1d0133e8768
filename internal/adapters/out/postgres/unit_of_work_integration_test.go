package postgres_test

import (
	"context"
	"sync"
	"testing"

	postgresadapter "restaurant/internal/adapters/out/postgres"
	"restaurant/internal/adapters/out/postgres/deliveryrepo"
	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/adapters/out/postgres/productrepo"
	"restaurant/internal/adapters/out/postgres/staffrepo"
	"restaurant/internal/core/domain/events"
	"restaurant/internal/core/domain/model/delivery"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const testPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// recordingPublisher captures published events for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.DomainEvent
}

func (p *recordingPublisher) Publish(_ context.Context, domainEvents ...events.DomainEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, domainEvents...)
}

func (p *recordingPublisher) published() []events.DomainEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]events.DomainEvent(nil), p.events...)
}

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	publisher *recordingPublisher
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&deliveryrepo.DeliveryDTO{},
		&productrepo.ProductDTO{},
		&staffrepo.StaffDTO{},
	)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE order_items, orders, deliveries, products, staff").Error
	suite.Require().NoError(err)

	suite.publisher = &recordingPublisher{}
	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(suite.db, suite.publisher)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies the factory creates isolated unit of
// work instances that each provide access to all repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.DeliveryRepository())
	suite.NotNil(uow1.ProductRepository())
	suite.NotNil(uow1.StaffRepository())
	suite.NotNil(uow2.OrderRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
}

// TestUnitOfWork_AssignmentWorkflow verifies the full delivery assignment
// touching both affected aggregates within one transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_AssignmentWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	readyOrder := suite.createReadyForDeliveryOrder()
	driver := suite.createTestDriver()
	coordinator := services.NewDeliveryCoordinator()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, readyOrder)
	suite.Require().NoError(err)
	err = uow.StaffRepository().Add(ctx, driver)
	suite.Require().NoError(err)

	testDelivery, err := coordinator.Assign(readyOrder, driver, kernel.NewUUID(), "", "")
	suite.Require().NoError(err)

	err = uow.DeliveryRepository().Add(ctx, testDelivery)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, readyOrder)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, readyOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.OutForDelivery, retrievedOrder.Status())
	suite.Equal(2, retrievedOrder.Version())

	retrievedDelivery, err := newUow.DeliveryRepository().GetByOrderID(ctx, readyOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.Assigned, retrievedDelivery.Status())
	suite.Equal(driver.ID(), retrievedDelivery.DriverID())
	suite.Equal(readyOrder.DeliveryAddress(), retrievedDelivery.Address())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()
	driver := suite.createTestDriver()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.StaffRepository().Add(ctx, driver)
	suite.Require().NoError(err)

	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")

	_, err = newUow.StaffRepository().Get(ctx, driver.ID())
	suite.Require().Error(err, "Staff should not exist after rollback")
}

// TestUnitOfWork_EventsPublishedAfterCommit verifies the domain events of
// tracked aggregates reach the publisher exactly once, after commit.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_EventsPublishedAfterCommit() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.Empty(suite.publisher.published(), "No events should leave before commit")

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	published := suite.publisher.published()
	suite.Require().Len(published, 2)
	suite.Equal(events.OrderCreated, published[0].Type)
	suite.Equal(events.KitchenNewOrder, published[1].Type)
	suite.Empty(testOrder.DomainEvents(), "Commit should drain the aggregate's events")

	// A second commit cycle must not replay the drained events.
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(testOrder.TransitionTo(order.Confirmed))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	published = suite.publisher.published()
	suite.Require().Len(published, 3)
	suite.Equal(events.OrderStatusChanged, published[2].Type)
}

// TestUnitOfWork_NoEventsOnRollback verifies a rolled back transaction
// publishes nothing.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_NoEventsOnRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Empty(suite.publisher.published())
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := suite.createTestOrder()
	order2 := suite.createTestOrder()

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)

	err = uow2.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	_, err = uow1.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")

	_, err = uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")

	_, err = uow2.OrderRepository().Get(ctx, order2.ID())
	suite.Require().NoError(err, "UOW2 should see order2")

	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")

	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()

	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
}

// TestUnitOfWork_SecondDeliveryForOrderRejected verifies the unique index on
// the delivery's order reference surfaces as an already assigned error.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SecondDeliveryForOrderRejected() {
	ctx := context.Background()
	uow := suite.factory.Create()

	orderID := kernel.NewUUID()
	first, err := delivery.NewDelivery(kernel.NewUUID(), orderID, kernel.NewUUID(), "221B Baker Street", "")
	suite.Require().NoError(err)
	second, err := delivery.NewDelivery(kernel.NewUUID(), orderID, kernel.NewUUID(), "221B Baker Street", "")
	suite.Require().NoError(err)

	err = uow.DeliveryRepository().Add(ctx, first)
	suite.Require().NoError(err)

	err = uow.DeliveryRepository().Add(ctx, second)
	suite.Require().Error(err)

	var assignedErr *errs.AlreadyAssignedError
	suite.Require().ErrorAs(err, &assignedErr)
}

// createTestOrder creates a pending delivery order with one line.
func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *order.Order {
	price, err := kernel.NewMoneyFromString("12.50")
	suite.Require().NoError(err)
	item, err := order.NewOrderItem(kernel.NewUUID(), "Margherita", price, 2)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		order.Delivery,
		"Alice Smith",
		"+15550100",
		"221B Baker Street",
		"",
		order.Card,
		[]order.OrderItem{item},
	)
	suite.Require().NoError(err)
	return testOrder
}

// createReadyForDeliveryOrder creates an order already waiting for a driver.
func (suite *UnitOfWorkIntegrationTestSuite) createReadyForDeliveryOrder() *order.Order {
	template := suite.createTestOrder()

	restored, err := order.RestoreOrder(order.RestoreOrderParams{
		ID:              template.ID(),
		Type:            template.Type(),
		Status:          order.ReadyForDelivery,
		CustomerName:    template.CustomerName(),
		CustomerPhone:   template.CustomerPhone(),
		DeliveryAddress: template.DeliveryAddress(),
		Notes:           template.Notes(),
		Items:           template.Items(),
		TotalPrice:      template.TotalPrice(),
		IsPaid:          template.IsPaid(),
		PaymentMethod:   template.PaymentMethod(),
		Version:         1,
		CreatedAt:       template.CreatedAt(),
		UpdatedAt:       template.UpdatedAt(),
	})
	suite.Require().NoError(err)
	return restored
}

// createTestDriver creates an active courier account.
func (suite *UnitOfWorkIntegrationTestSuite) createTestDriver() *staff.Staff {
	driver, err := staff.NewStaff(kernel.NewUUID(), "Bob Driver", "bob.driver", testPasswordHash, staff.Courier)
	suite.Require().NoError(err)
	return driver
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
