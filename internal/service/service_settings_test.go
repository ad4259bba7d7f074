package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/intern-portal/internal/mock"
	"github.com/MKhiriev/intern-portal/internal/store"
	"github.com/MKhiriev/intern-portal/models"
)

func newTestSettingsSvc(t *testing.T) (*settingsService, store.SettingsRepository) {
	t.Helper()
	repo := store.NewSettingsRepository(store.NewMemoryDocumentStore())
	svc := NewSettingsService(repo).(*settingsService)
	svc.now = func() time.Time { return testNow }
	return svc, repo
}

func TestSettingsService_DefaultsUntilLoaded(t *testing.T) {
	svc, _ := newTestSettingsSvc(t)
	assert.False(t, svc.Current().AllowCandidateEdit)

	st, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, st.AllowCandidateEdit)
	assert.Equal(t, int64(1), svc.Current().Version)
}

func TestSettingsService_Update(t *testing.T) {
	svc, repo := newTestSettingsSvc(t)
	ctx := context.Background()

	st, err := svc.Update(ctx, true)
	require.NoError(t, err)
	assert.True(t, st.AllowCandidateEdit)
	assert.Equal(t, testNow, st.UpdatedAt)
	assert.True(t, svc.Current().AllowCandidateEdit)

	stored, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, stored.AllowCandidateEdit)
}

func TestSettingsService_RefreshSeesOtherWriters(t *testing.T) {
	docs := store.NewMemoryDocumentStore()
	a := NewSettingsService(store.NewSettingsRepository(docs))
	b := NewSettingsService(store.NewSettingsRepository(docs))
	ctx := context.Background()

	_, err := a.Update(ctx, true)
	require.NoError(t, err)
	assert.False(t, b.Current().AllowCandidateEdit)

	_, err = b.Refresh(ctx)
	require.NoError(t, err)
	assert.True(t, b.Current().AllowCandidateEdit)
}

func TestSettingsService_Subscribe(t *testing.T) {
	defer goleak.VerifyNone(t)

	svc, _ := newTestSettingsSvc(t)
	ctx, cancel := context.WithCancel(context.Background())

	ch := svc.Subscribe(ctx)

	_, err := svc.Update(context.Background(), true)
	require.NoError(t, err)
	got := <-ch
	assert.True(t, got.AllowCandidateEdit)

	// an unchanged refresh is not delivered
	_, err = svc.Refresh(context.Background())
	require.NoError(t, err)
	select {
	case v := <-ch:
		t.Fatalf("unexpected delivery: %+v", v)
	default:
	}

	// a slow subscriber only keeps the latest value
	_, err = svc.Update(context.Background(), false)
	require.NoError(t, err)
	_, err = svc.Update(context.Background(), true)
	require.NoError(t, err)
	got = <-ch
	assert.True(t, got.AllowCandidateEdit)

	cancel()
	for range ch {
	}
}

func TestSettingsService_StoreDownKeepsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSettingsRepository(ctrl)
	svc := NewSettingsService(repo)

	repo.EXPECT().Get(gomock.Any()).Return(models.Settings{AllowCandidateEdit: true, Version: 3}, nil)
	_, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	repo.EXPECT().Get(gomock.Any()).Return(models.Settings{}, errors.New("timeout"))
	st, err := svc.Refresh(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
	assert.True(t, st.AllowCandidateEdit)
	assert.True(t, svc.Current().AllowCandidateEdit)
}
