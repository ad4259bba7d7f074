package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/intern-portal/models"
)

func newCandidateRepo(t *testing.T) (CandidateRepository, DocumentStore) {
	t.Helper()
	docs := NewMemoryDocumentStore()
	return NewCandidateRepository(docs), docs
}

func TestCandidateRepository_CreateNormalizesKey(t *testing.T) {
	ctx := context.Background()
	repo, docs := newCandidateRepo(t)

	rec, err := repo.Create(ctx, models.CandidateRecord{CPF: "529.982.247-25", FullName: "Maria", Role: models.RoleCandidate})
	require.NoError(t, err)
	assert.Equal(t, "52998224725", rec.CPF)
	assert.Equal(t, int64(1), rec.Version)
	assert.Equal(t, models.CandidateSchemaVersion, rec.SchemaVersion)

	_, err = docs.Get(ctx, CollectionCandidates, "52998224725")
	require.NoError(t, err)

	_, err = repo.Create(ctx, models.CandidateRecord{CPF: "52998224725"})
	require.ErrorIs(t, err, ErrCandidateAlreadyExists)

	got, err := repo.Get(ctx, "529.982.247-25")
	require.NoError(t, err)
	assert.Equal(t, "Maria", got.FullName)
}

func TestCandidateRepository_GetUpgradesOldRecords(t *testing.T) {
	ctx := context.Background()
	repo, docs := newCandidateRepo(t)

	_, err := docs.CreateIfAbsent(ctx, Document{
		Collection: CollectionCandidates,
		Key:        "52998224725",
		Body:       []byte(`{"fullName":"Maria","dateOfBirth":"2000-01-01","password":"h"}`),
	})
	require.NoError(t, err)

	rec, err := repo.Get(ctx, "52998224725")
	require.NoError(t, err)
	assert.Equal(t, "52998224725", rec.CPF)
	assert.Equal(t, models.CandidateSchemaVersion, rec.SchemaVersion)
	assert.Empty(t, rec.DateOfBirth)
	assert.Equal(t, models.RoleCandidate, rec.Role)
}

func TestCandidateRepository_GetMissing(t *testing.T) {
	repo, _ := newCandidateRepo(t)
	_, err := repo.Get(context.Background(), "52998224725")
	require.ErrorIs(t, err, ErrCandidateNotFound)
	require.ErrorIs(t, repo.Delete(context.Background(), "52998224725"), ErrCandidateNotFound)
}

func TestCandidateRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo, _ := newCandidateRepo(t)
	_, err := repo.Create(ctx, models.CandidateRecord{CPF: "52998224725", Semester: 3})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, "52998224725", func(rec *models.CandidateRecord) error {
		rec.Semester = 4
		rec.CPF = "11144477735"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Semester)
	assert.Equal(t, "52998224725", updated.CPF)
	assert.Equal(t, int64(2), updated.Version)

	boom := errors.New("boom")
	_, err = repo.Update(ctx, "52998224725", func(*models.CandidateRecord) error { return boom })
	require.ErrorIs(t, err, boom)

	_, err = repo.Update(ctx, "11144477735", func(*models.CandidateRecord) error { return nil })
	require.ErrorIs(t, err, ErrCandidateNotFound)
}

func TestCandidateRepository_ConcurrentUpdatesAreNotLost(t *testing.T) {
	ctx := context.Background()
	repo, _ := newCandidateRepo(t)
	_, err := repo.Create(ctx, models.CandidateRecord{CPF: "52998224725"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Update(ctx, "52998224725", func(rec *models.CandidateRecord) error {
				rec.Semester++
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	rec, err := repo.Get(ctx, "52998224725")
	require.NoError(t, err)
	assert.Equal(t, 4, rec.Semester)
}

func TestCandidateRepository_List(t *testing.T) {
	ctx := context.Background()
	repo, _ := newCandidateRepo(t)
	for _, c := range []string{"11144477735", "52998224725"} {
		_, err := repo.Create(ctx, models.CandidateRecord{CPF: c})
		require.NoError(t, err)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "11144477735", list[0].CPF)

	require.NoError(t, repo.Delete(ctx, "11144477735"))
	list, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
