package content

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListBySection(ctx context.Context, section string) ([]FieldOverride, error) {
	args := m.Called(ctx, section)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]FieldOverride), args.Error(1)
}

func (m *MockRepository) Upsert(ctx context.Context, section string, fields map[string]string, updatedBy string) error {
	args := m.Called(ctx, section, fields, updatedBy)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, section, field string) error {
	args := m.Called(ctx, section, field)
	return args.Error(0)
}

func (m *MockRepository) ListSections(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRepository) DeleteFieldsNotIn(ctx context.Context, known []string) (int64, error) {
	args := m.Called(ctx, known)
	return args.Get(0).(int64), args.Error(1)
}

func newMockService(t *testing.T, repo *MockRepository) *Service {
	t.Helper()
	log, _ := test.NewNullLogger()
	svc, err := NewService(repo, 4, nil, log)
	require.NoError(t, err)
	return svc
}

func TestService_ListBySectionErrorPropagates(t *testing.T) {
	repo := new(MockRepository)
	dbErr := errors.New("connection reset")
	repo.On("ListBySection", mock.Anything, "home").Return(nil, dbErr)

	svc := newMockService(t, repo)
	_, err := svc.GetOverrides(context.Background(), "home")
	assert.ErrorIs(t, err, dbErr)

	// failures are not cached
	_, err = svc.GetOverrides(context.Background(), "home")
	assert.ErrorIs(t, err, dbErr)
	repo.AssertNumberOfCalls(t, "ListBySection", 2)
}

func TestService_UpsertErrorKeepsCache(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListBySection", mock.Anything, "home").
		Return([]FieldOverride{{Section: "home", Field: "badge", Value: "Cached"}}, nil).Once()
	repo.On("Upsert", mock.Anything, "home", map[string]string{"badge": "New"}, "alice").
		Return(ErrValueTooLong)

	svc := newMockService(t, repo)
	ctx := context.Background()

	overrides, err := svc.GetOverrides(ctx, "home")
	require.NoError(t, err)
	assert.Equal(t, "Cached", overrides["badge"])

	_, err = svc.SetFields(ctx, "home", map[string]string{"badge": "New"}, "alice")
	assert.ErrorIs(t, err, ErrValueTooLong)

	overrides, err = svc.GetOverrides(ctx, "home")
	require.NoError(t, err)
	assert.Equal(t, "Cached", overrides["badge"])
	repo.AssertExpectations(t)
}

func TestService_ValidationSkipsRepository(t *testing.T) {
	repo := new(MockRepository)
	svc := newMockService(t, repo)

	_, err := svc.SetFields(context.Background(), "home", map[string]string{"nope": "x"}, "alice")
	assert.ErrorIs(t, err, ErrUnknownField)
	_, err = svc.RevertField(context.Background(), "BAD", "badge", "alice")
	assert.ErrorIs(t, err, ErrInvalidSection)

	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_PruneNothingKeepsCache(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListBySection", mock.Anything, "home").Return([]FieldOverride{}, nil).Once()
	repo.On("DeleteFieldsNotIn", mock.Anything, mock.Anything).Return(int64(0), nil)

	svc := newMockService(t, repo)
	ctx := context.Background()

	_, err := svc.GetOverrides(ctx, "home")
	require.NoError(t, err)

	n, err := svc.Prune(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = svc.GetOverrides(ctx, "home")
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
