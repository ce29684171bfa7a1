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

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
	// No-op for query tests
}

type GetDefectiveOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetDefectiveOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
	nextSeq   int64
}

func (suite *GetDefectiveOrdersQueryHandlerTestSuite) SetupSuite() {
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

	suite.handler = queries.NewGetDefectiveOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetDefectiveOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetDefectiveOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
}

func (suite *GetDefectiveOrdersQueryHandlerTestSuite) newOrder(itemCodes ...string) *order.Order {
	suite.nextSeq++
	number, err := kernel.NextOrderNumber(suite.nextSeq)
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), number, "operator-1")
	suite.Require().NoError(err)
	for _, code := range itemCodes {
		item, itemErr := order.NewItem(kernel.NewUUID(), code, "Widget "+code, "")
		suite.Require().NoError(itemErr)
		suite.Require().NoError(o.AddItem(item, "operator-1", time.Now()))
	}
	return o
}

// newDefectiveOrder creates an order whose first item was marked defective
// at the given moment.
func (suite *GetDefectiveOrdersQueryHandlerTestSuite) newDefectiveOrder(
	defectiveAt time.Time, itemCodes ...string,
) *order.Order {
	o := suite.newOrder(itemCodes...)
	itemID := o.Items()[0].ID()
	suite.Require().NoError(o.MarkItemDefective(itemID, "crushed box", "operator-2", defectiveAt))
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func (suite *GetDefectiveOrdersQueryHandlerTestSuite) TestHandle_NoDefectiveOrders_ReturnsNotFound() {
	query, err := queries.NewGetDefectiveOrdersQuery(time.Time{}, time.Time{}, "", true)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Nil(result)
}

func (suite *GetDefectiveOrdersQueryHandlerTestSuite) TestHandle_ReturnsDefectiveOrdersWithItems() {
	ctx := context.Background()
	defectiveAt := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

	defective := suite.newDefectiveOrder(defectiveAt, "SKU-A", "SKU-B", "SKU-C")

	// A healthy order in the same range must not appear
	healthy := suite.newOrder("SKU-X")
	suite.Require().NoError(healthy.PackItemByCode("SKU-X", "operator-1", defectiveAt))
	suite.Require().NoError(suite.orderRepo.Add(ctx, healthy))

	query, err := queries.NewGetDefectiveOrdersQuery(
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		"", true,
	)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	row := result[0]
	suite.Equal(defective.Number().String(), row.Number)
	suite.Equal("operator-1", row.Responsible)
	suite.Equal("Automatic: 1 defective item(s)", row.DefectiveReason)
	suite.Equal("2026-03-10 15:30", row.DefectiveAt)
	suite.Equal(3, row.TotalItems)
	suite.Equal(0, row.PackedItems)
	suite.Equal(1, row.DefectiveItems)

	suite.Require().Len(row.Items, 1)
	suite.Equal("SKU-A", row.Items[0].ItemCode)
	suite.Equal("Widget SKU-A", row.Items[0].ProductName)
	suite.Equal("crushed box", row.Items[0].DefectiveReason)
	suite.Equal("operator-2", row.Items[0].DefectiveBy)
	suite.Equal("2026-03-10 15:30", row.Items[0].DefectiveAt)
}

func (suite *GetDefectiveOrdersQueryHandlerTestSuite) TestHandle_ExcludesOrdersOutsideRange() {
	inside := suite.newDefectiveOrder(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC), "SKU-A")
	suite.newDefectiveOrder(time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC), "SKU-B")
	suite.newDefectiveOrder(time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC), "SKU-C")

	query, err := queries.NewGetDefectiveOrdersQuery(
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		"", true,
	)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(inside.Number().String(), result[0].Number)
}

func (suite *GetDefectiveOrdersQueryHandlerTestSuite) TestHandle_IncludesLastDayOfRange() {
	lastDay := time.Date(2026, 3, 31, 23, 45, 0, 0, time.UTC)
	defective := suite.newDefectiveOrder(lastDay, "SKU-A")

	query, err := queries.NewGetDefectiveOrdersQuery(
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		"", true,
	)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(defective.Number().String(), result[0].Number)
}

func (suite *GetDefectiveOrdersQueryHandlerTestSuite) TestHandle_SortedByNumber() {
	defectiveAt := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	first := suite.newDefectiveOrder(defectiveAt, "SKU-A")
	second := suite.newDefectiveOrder(defectiveAt, "SKU-B")

	query, err := queries.NewGetDefectiveOrdersQuery(
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		"", true,
	)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(first.Number().String(), result[0].Number)
	suite.Equal(second.Number().String(), result[1].Number)
}

func (suite *GetDefectiveOrdersQueryHandlerTestSuite) TestHandle_FiltersByResponsible() {
	ctx := context.Background()
	defectiveAt := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	suite.newDefectiveOrder(defectiveAt, "SKU-A")

	suite.nextSeq++
	number, err := kernel.NextOrderNumber(suite.nextSeq)
	suite.Require().NoError(err)
	other, err := order.NewOrder(kernel.NewUUID(), number, "operator-3")
	suite.Require().NoError(err)
	item, err := order.NewItem(kernel.NewUUID(), "SKU-B", "Widget SKU-B", "")
	suite.Require().NoError(err)
	suite.Require().NoError(other.AddItem(item, "operator-3", time.Now()))
	suite.Require().NoError(other.MarkItemDefective(item.ID(), "torn bag", "operator-3", defectiveAt))
	suite.Require().NoError(suite.orderRepo.Add(ctx, other))

	query, err := queries.NewGetDefectiveOrdersQuery(
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		"operator-3", true,
	)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(other.Number().String(), result[0].Number)
}

func (suite *GetDefectiveOrdersQueryHandlerTestSuite) TestHandle_WithoutDetails_OmitsItemLines() {
	defectiveAt := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	suite.newDefectiveOrder(defectiveAt, "SKU-A", "SKU-B")

	query, err := queries.NewGetDefectiveOrdersQuery(
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		"", false,
	)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(2, result[0].TotalItems)
	suite.Equal(1, result[0].DefectiveItems)
	suite.Empty(result[0].Items)
}

func (suite *GetDefectiveOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetDefectiveOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetDefectiveOrdersQuery constructor")
}

func TestGetDefectiveOrdersQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(GetDefectiveOrdersQueryHandlerTestSuite))
}
