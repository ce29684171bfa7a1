package queries_test

import (
	"context"
	"testing"
	"time"

	"packaging/internal/adapters/out/postgres/orderrepo"
	"packaging/internal/core/application/usecases/queries"
	"packaging/internal/core/domain/model/kernel"
	"packaging/internal/core/domain/model/order"
	"packaging/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
	nextSeq   int64
}

func (suite *GetOrdersQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))

	suite.handler = queries.NewGetOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
}

func (suite *GetOrdersQueryHandlerTestSuite) addOrder(itemCodes ...string) *order.Order {
	suite.nextSeq++
	number, err := kernel.NextOrderNumber(suite.nextSeq)
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), number, "operator-1")
	suite.Require().NoError(err)
	for _, code := range itemCodes {
		item, itemErr := order.NewItem(kernel.NewUUID(), code, "Widget "+code, "10x10x10 cm")
		suite.Require().NoError(itemErr)
		suite.Require().NoError(o.AddItem(item, "operator-1", time.Now()))
	}
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_EmptyBoard() {
	orders, err := suite.handler.Handle(context.Background(), queries.NewGetOrdersQuery())
	suite.Require().NoError(err)
	suite.Empty(orders)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_NewestFirstWithCounters() {
	first := suite.addOrder("SKU-A", "SKU-B")
	second := suite.addOrder("SKU-C")

	orders, err := suite.handler.Handle(context.Background(), queries.NewGetOrdersQuery())
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)

	suite.Equal(second.Number().String(), orders[0].Number)
	suite.Equal(first.Number().String(), orders[1].Number)
	suite.Equal(2, orders[1].TotalItems)
	suite.Equal(0, orders[1].PackedItems)
	suite.Zero(orders[1].Progress)
	suite.Equal("draft", orders[1].Status)
	suite.Equal("operator-1", orders[1].Responsible)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_IncludesOrderWithoutItems() {
	empty := suite.addOrder()

	orders, err := suite.handler.Handle(context.Background(), queries.NewGetOrdersQuery())
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal(empty.Number().String(), orders[0].Number)
	suite.Zero(orders[0].TotalItems)
	suite.Zero(orders[0].Progress)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_ProgressAndStatus() {
	suite.nextSeq++
	number, err := kernel.NextOrderNumber(suite.nextSeq)
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), number, "operator-1")
	suite.Require().NoError(err)
	for _, code := range []string{"SKU-A", "SKU-B", "SKU-C"} {
		item, itemErr := order.NewItem(kernel.NewUUID(), code, "Widget "+code, "")
		suite.Require().NoError(itemErr)
		suite.Require().NoError(o.AddItem(item, "operator-1", time.Now()))
	}
	suite.Require().NoError(o.PackItemByCode("SKU-A", "operator-1", time.Now()))
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))

	orders, err := suite.handler.Handle(context.Background(), queries.NewGetOrdersQuery())
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal("in_progress", orders[0].Status)
	suite.Equal(1, orders[0].PackedItems)
	suite.InDelta(33.33, orders[0].Progress, 0.001)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_StatusFilter() {
	suite.addOrder("SKU-A")
	inProgress := suite.addOrder("SKU-B", "SKU-C")
	suite.Require().NoError(suite.db.Exec(
		"UPDATE orders SET status = ? WHERE id = ?",
		order.InProgress.String(), inProgress.ID().Bytes(),
	).Error)

	query, err := queries.NewGetOrdersQueryWithStatus("in_progress")
	suite.Require().NoError(err)

	orders, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal(inProgress.Number().String(), orders[0].Number)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_UnknownStatusFilter() {
	_, err := queries.NewGetOrdersQueryWithStatus("shipped")
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrdersQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)
	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrdersQuery constructor")
}

func TestGetOrdersQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(GetOrdersQueryHandlerTestSuite))
}
