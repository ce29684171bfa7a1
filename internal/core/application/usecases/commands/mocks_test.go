package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"packaging/internal/core/application/usecases/commands"
	"packaging/internal/core/domain/model/kernel"
	"packaging/internal/core/domain/model/label"
	"packaging/internal/core/domain/model/order"
	"packaging/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newDraftOrder builds a draft order with one unpacked item per code.
func newDraftOrder(t *testing.T, itemCodes ...string) *order.Order {
	t.Helper()
	number, err := kernel.NextOrderNumber(1)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), number, "operator-1")
	require.NoError(t, err)
	for _, code := range itemCodes {
		item, err := order.NewItem(kernel.NewUUID(), code, "Widget", "")
		require.NoError(t, err)
		require.NoError(t, o.AddItem(item, "operator-1", testNow()))
	}
	return o
}

func testNow() time.Time {
	return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByNumber(ctx context.Context, number kernel.OrderNumber) (*order.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockLabelRepository struct{ mock.Mock }

func (m *MockLabelRepository) Add(ctx context.Context, l *label.Label) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLabelRepository) Update(ctx context.Context, l *label.Label) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLabelRepository) Get(ctx context.Context, id kernel.UUID) (*label.Label, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*label.Label), args.Error(1)
}

func (m *MockLabelRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*label.Label, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*label.Label), args.Error(1)
}

type MockSequenceGenerator struct{ mock.Mock }

func (m *MockSequenceGenerator) Next(ctx context.Context, code string) (int64, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(int64), args.Error(1)
}

type MockLabelRenderer struct{ mock.Mock }

func (m *MockLabelRenderer) RenderLabel(l *label.Label, o *order.Order) ([]byte, error) {
	args := m.Called(l, o)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockUoW satisfies every unit of work interface used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) LabelRepository() ports.LabelRepository {
	args := m.Called()
	return args.Get(0).(ports.LabelRepository)
}

func (m *MockUoW) SequenceGenerator() ports.SequenceGenerator {
	args := m.Called()
	return args.Get(0).(ports.SequenceGenerator)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockLabelUoWFactory struct{ mock.Mock }

func (m *MockLabelUoWFactory) Create() commands.LabelUoW {
	args := m.Called()
	return args.Get(0).(commands.LabelUoW)
}
