package recording

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-coach-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-coach-api/internal/config"
	"github.com/vfg2006/sales-coach-api/internal/domain"
	"github.com/vfg2006/sales-coach-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func newTestService(repo *mocks.MockEntryRepository) *Service {
	service := NewService(repo, &config.Config{Entries: config.Entries{ListLimit: 30}}).(*Service)
	service.generateID = func() (string, error) { return "ENTRY0000001", nil }
	return service
}

func validForm() domain.EntryForm {
	return domain.EntryForm{
		Date: "2024-01-01", VoiceLines: "10", BTS: "5", IoT: "0", HSI: "0",
		Accessories: "2.50", Protection: "3", PlanName: "X", MRC: "50.00",
	}
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockEntryRepository(ctrl)
	service := newTestService(repo)

	repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.Entry) error {
			assert.Equal(t, "ENTRY0000001", entry.ID)
			assert.Equal(t, 15, entry.Lines())
			return nil
		})

	entry, err := service.Create(context.Background(), validForm())
	require.NoError(t, err)
	assert.Equal(t, "ENTRY0000001", entry.ID)
	assert.Equal(t, "X", entry.PlanName)
}

func TestService_CreateInvalidFormNeverReachesStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(mocks.NewMockEntryRepository(ctrl))

	form := validForm()
	form.BTS = "five"

	entry, err := service.Create(context.Background(), form)
	assert.Nil(t, entry)
	assert.ErrorIs(t, err, ErrInvalidEntry)

	var entryErr *EntryError
	require.ErrorAs(t, err, &entryErr)
	assert.Equal(t, apiErrors.ErrInvalidFormat, entryErr.Code)
	assert.Equal(t, "bts", entryErr.Field)
}

func TestService_CreateStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockEntryRepository(ctrl)
	service := newTestService(repo)

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	entry, err := service.Create(context.Background(), validForm())
	assert.Nil(t, entry)
	assert.ErrorIs(t, err, ErrDatabaseOperation)

	var entryErr *EntryError
	require.ErrorAs(t, err, &entryErr)
	assert.Equal(t, apiErrors.ErrDatabaseOperation, entryErr.Code)
}

func TestService_ListRecentLimits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockEntryRepository(ctrl)
	service := newTestService(repo)

	tests := []struct {
		requested int
		expected  int
	}{
		{0, 30},
		{-5, 30},
		{10, 10},
		{10_000, MaxListLimit},
	}

	for _, tt := range tests {
		repo.EXPECT().ListRecent(gomock.Any(), tt.expected).Return([]*domain.Entry{}, nil)

		entries, err := service.ListRecent(context.Background(), tt.requested)
		require.NoError(t, err)
		assert.Empty(t, entries)
	}
}

func TestService_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockEntryRepository(ctrl)
	service := newTestService(repo)

	entry, err := validForm().Validate()
	require.NoError(t, err)

	repo.EXPECT().ListRecent(gomock.Any(), 30).Return([]*domain.Entry{entry}, nil)

	dashboard, err := service.Dashboard(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, dashboard.Entries, 1)
	assert.Equal(t, 15, dashboard.Summary.TotalLines)
	assert.Equal(t, "20.0%", dashboard.Summary.ProtectionPercent)
	assert.Equal(t, "50.00", dashboard.Summary.AverageMRC)
}

func TestService_ClearAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockEntryRepository(ctrl)
	service := newTestService(repo)

	repo.EXPECT().DeleteAll(gomock.Any()).Return(int64(4), nil)
	deleted, err := service.ClearAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)

	repo.EXPECT().DeleteAll(gomock.Any()).Return(int64(0), errors.New("timeout"))
	_, err = service.ClearAll(context.Background())
	assert.ErrorIs(t, err, ErrDatabaseOperation)
}
