package commands_test

import (
	"context"
	"testing"

	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/domain/model/depot"
	"depot/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockDepotRepository struct{ mock.Mock }

func (m *MockDepotRepository) Get(ctx context.Context) (*depot.Depot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*depot.Depot), args.Error(1)
}

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

func (m *MockUoW) DepotRepository() ports.DepotRepository {
	args := m.Called()
	return args.Get(0).(ports.DepotRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// mocks bundles the doubles one handler call goes through.
type mocks struct {
	repo    *MockDepotRepository
	uow     *MockUoW
	factory *MockUoWFactory
}

// expectCommit wires a unit of work that hands out d and commits.
func expectCommit(ctx context.Context, d *depot.Depot) mocks {
	m := mocks{
		repo:    new(MockDepotRepository),
		uow:     new(MockUoW),
		factory: new(MockUoWFactory),
	}

	m.factory.On("Create").Return(m.uow).Once()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("DepotRepository").Return(m.repo).Once(),
		m.repo.On("Get", ctx).Return(d, nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	return m
}

// expectAbort wires a unit of work that hands out d and is rolled back
// without a commit.
func expectAbort(ctx context.Context, d *depot.Depot) mocks {
	m := mocks{
		repo:    new(MockDepotRepository),
		uow:     new(MockUoW),
		factory: new(MockUoWFactory),
	}

	m.factory.On("Create").Return(m.uow).Once()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("DepotRepository").Return(m.repo).Once(),
		m.repo.On("Get", ctx).Return(d, nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	return m
}

func (m mocks) assert(t *testing.T) {
	t.Helper()
	m.repo.AssertExpectations(t)
	m.uow.AssertExpectations(t)
	m.factory.AssertExpectations(t)
}

func ptr(i int) *int {
	return &i
}
