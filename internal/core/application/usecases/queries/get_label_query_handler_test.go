package queries_test

import (
	"context"
	"testing"
	"time"

	"packaging/internal/adapters/out/postgres/labelrepo"
	"packaging/internal/core/application/usecases/queries"
	"packaging/internal/core/domain/model/kernel"
	"packaging/internal/core/domain/model/label"
	"packaging/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetLabelQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetLabelQueryHandler
	labelRepo *labelrepo.GormLabelRepository
	nextSeq   int64
}

func (suite *GetLabelQueryHandlerTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&labelrepo.LabelDTO{}))

	suite.handler = queries.NewGetLabelQueryHandler(db)
	suite.labelRepo = labelrepo.NewGormLabelRepository(db, &mockAggregateTracker{})
}

func (suite *GetLabelQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetLabelQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE labels").Error)
}

func (suite *GetLabelQueryHandlerTestSuite) newLabel(withDocument bool) *label.Label {
	suite.nextSeq++
	number, err := kernel.NextLabelNumber(suite.nextSeq)
	suite.Require().NoError(err)
	l, err := label.NewLabel(kernel.NewUUID(), number, kernel.NewUUID(), time.Now())
	suite.Require().NoError(err)
	if withDocument {
		suite.Require().NoError(l.AttachDocument([]byte("%PDF-1.3 test")))
	}
	suite.Require().NoError(suite.labelRepo.Add(context.Background(), l))
	return l
}

func (suite *GetLabelQueryHandlerTestSuite) TestHandle_ReturnsLabelWithDocument() {
	testLabel := suite.newLabel(true)

	query, err := queries.NewGetLabelQuery(testLabel.ID())
	suite.Require().NoError(err)

	resp, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(testLabel.ID(), resp.ID)
	suite.Equal(testLabel.Number().String(), resp.Number)
	suite.Equal("shipping_label_"+testLabel.Number().String()+".pdf", resp.FileName)
	suite.Equal([]byte("%PDF-1.3 test"), resp.Document)
	suite.False(resp.IsPrinted)
}

func (suite *GetLabelQueryHandlerTestSuite) TestHandle_NoDocument_ReturnsNotFound() {
	testLabel := suite.newLabel(false)

	query, err := queries.NewGetLabelQuery(testLabel.ID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetLabelQueryHandlerTestSuite) TestHandle_UnknownLabel_ReturnsNotFound() {
	query, err := queries.NewGetLabelQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestGetLabelQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(GetLabelQueryHandlerTestSuite))
}
