// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-restaurant-reviews/internal/config"
	"github.com/MKhiriev/go-restaurant-reviews/internal/logger"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestOpener(t *testing.T) *Opener {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "nested", "local.db")
	opener := NewOpener(config.DB{DSN: dsn}, logger.Nop())
	t.Cleanup(func() { _ = opener.Close() })
	return opener
}

func newTestLocalStore(t *testing.T) (LocalStore, *DB) {
	t.Helper()
	db, err := newTestOpener(t).Open(context.Background())
	require.NoError(t, err)
	return NewLocalStore(db, logger.Nop()), db
}

// ─────────────────────────────────────────────
// Get / Put
// ─────────────────────────────────────────────

func TestLocalStore_GetMissingKey(t *testing.T) {
	s, _ := newTestLocalStore(t)

	_, err := s.Get(context.Background(), RestaurantsCollection, 42)
	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.NotErrorIs(t, err, ErrStorageUnavailable)
}

func TestLocalStore_PutThenGet(t *testing.T) {
	s, _ := newTestLocalStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, RestaurantsCollection, Record{Key: 1, Payload: []byte(`{"id":1}`)}))

	rec, err := s.Get(ctx, RestaurantsCollection, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rec.Key)
	assert.JSONEq(t, `{"id":1}`, string(rec.Payload))
}

func TestLocalStore_PutReplaces(t *testing.T) {
	s, _ := newTestLocalStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, ReviewsCollection, Record{Key: 3, Payload: []byte(`"old"`)}))
	require.NoError(t, s.Put(ctx, ReviewsCollection, Record{Key: 3, Payload: []byte(`"new"`)}))

	rec, err := s.Get(ctx, ReviewsCollection, 3)
	require.NoError(t, err)
	assert.Equal(t, `"new"`, string(rec.Payload))

	count, err := s.Count(ctx, ReviewsCollection)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestLocalStore_CollectionsAreIsolated(t *testing.T) {
	s, _ := newTestLocalStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, RestaurantsCollection, Record{Key: 1, Payload: []byte(`"r"`)}))

	_, err := s.Get(ctx, ReviewsCollection, 1)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

// ─────────────────────────────────────────────
// GetAll / PutAll
// ─────────────────────────────────────────────

func TestLocalStore_GetAllEmpty(t *testing.T) {
	s, _ := newTestLocalStore(t)

	records, err := s.GetAll(context.Background(), RestaurantsCollection)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestLocalStore_PutAllOrdersByKey(t *testing.T) {
	s, _ := newTestLocalStore(t)
	ctx := context.Background()

	require.NoError(t, s.PutAll(ctx, RestaurantsCollection, []Record{
		{Key: 3, Payload: []byte(`3`)},
		{Key: 1, Payload: []byte(`1`)},
		{Key: 2, Payload: []byte(`2`)},
	}))

	records, err := s.GetAll(ctx, RestaurantsCollection)
	require.NoError(t, err)
	require.Len(t, records, 3)
	for i, rec := range records {
		assert.Equal(t, int64(i+1), rec.Key)
	}
}

func TestLocalStore_PutAllEmptyIsNoop(t *testing.T) {
	s, _ := newTestLocalStore(t)
	assert.NoError(t, s.PutAll(context.Background(), RestaurantsCollection, nil))
}

// ─────────────────────────────────────────────
// Insert / Delete / Count
// ─────────────────────────────────────────────

func TestLocalStore_InsertAssignsIncreasingKeys(t *testing.T) {
	s, _ := newTestLocalStore(t)
	ctx := context.Background()

	first, err := s.Insert(ctx, PendingRequestsCollection, []byte(`"a"`))
	require.NoError(t, err)
	second, err := s.Insert(ctx, PendingRequestsCollection, []byte(`"b"`))
	require.NoError(t, err)
	assert.Greater(t, second, first)

	// удалённый ключ не переиспользуется
	require.NoError(t, s.Delete(ctx, PendingRequestsCollection, second))
	third, err := s.Insert(ctx, PendingRequestsCollection, []byte(`"c"`))
	require.NoError(t, err)
	assert.Greater(t, third, second)
}

func TestLocalStore_DeleteMissingKey(t *testing.T) {
	s, _ := newTestLocalStore(t)
	assert.NoError(t, s.Delete(context.Background(), RestaurantsCollection, 99))
}

func TestLocalStore_Count(t *testing.T) {
	s, _ := newTestLocalStore(t)
	ctx := context.Background()

	for range 3 {
		_, err := s.Insert(ctx, PendingRequestsCollection, []byte(`{}`))
		require.NoError(t, err)
	}

	count, err := s.Count(ctx, PendingRequestsCollection)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

// ─────────────────────────────────────────────
// Failures
// ─────────────────────────────────────────────

func TestLocalStore_ClosedHandleIsUnavailable(t *testing.T) {
	s, db := newTestLocalStore(t)
	ctx := context.Background()
	require.NoError(t, db.Close())

	_, err := s.Get(ctx, RestaurantsCollection, 1)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.NotErrorIs(t, err, ErrRecordNotFound)

	_, err = s.GetAll(ctx, RestaurantsCollection)
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	err = s.Put(ctx, RestaurantsCollection, Record{Key: 1, Payload: []byte(`1`)})
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	err = s.PutAll(ctx, RestaurantsCollection, []Record{{Key: 1, Payload: []byte(`1`)}})
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	_, err = s.Insert(ctx, PendingRequestsCollection, []byte(`1`))
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	_, err = s.Count(ctx, PendingRequestsCollection)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

// ─────────────────────────────────────────────
// Opener
// ─────────────────────────────────────────────

func TestOpener_ConcurrentOpenSharesHandle(t *testing.T) {
	opener := newTestOpener(t)

	const callers = 16
	handles := make([]*DB, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			handles[i], errs[i] = opener.Open(context.Background())
		}()
	}
	wg.Wait()

	for i := range callers {
		require.NoError(t, errs[i])
		assert.Same(t, handles[0], handles[i])
	}
}

func TestOpener_ReopenKeepsData(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "local.db")
	ctx := context.Background()

	first := NewOpener(config.DB{DSN: dsn}, logger.Nop())
	db, err := first.Open(ctx)
	require.NoError(t, err)
	require.NoError(t, NewLocalStore(db, logger.Nop()).Put(ctx, RestaurantsCollection, Record{Key: 7, Payload: []byte(`7`)}))
	require.NoError(t, first.Close())

	second := NewOpener(config.DB{DSN: dsn}, logger.Nop())
	t.Cleanup(func() { _ = second.Close() })
	db, err = second.Open(ctx)
	require.NoError(t, err)

	rec, err := NewLocalStore(db, logger.Nop()).Get(ctx, RestaurantsCollection, 7)
	require.NoError(t, err)
	assert.Equal(t, `7`, string(rec.Payload))
}

func TestOpener_FailureIsUnavailable(t *testing.T) {
	// каталог вместо файла БД
	dir := t.TempDir()
	opener := NewOpener(config.DB{DSN: dir}, logger.Nop())

	_, err := opener.Open(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStorageUnavailable))

	// ошибка запоминается
	_, again := opener.Open(context.Background())
	assert.Equal(t, err, again)
	assert.NoError(t, opener.Close())
}

func TestOpener_CloseBeforeOpen(t *testing.T) {
	opener := newTestOpener(t)

	require.NoError(t, opener.Close())

	// закрытый opener больше не открывает БД
	db, err := opener.Open(context.Background())
	assert.Nil(t, db)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestOpener_CloseTwice(t *testing.T) {
	opener := newTestOpener(t)
	_, err := opener.Open(context.Background())
	require.NoError(t, err)

	require.NoError(t, opener.Close())
	assert.NoError(t, opener.Close())
}

func TestOpener_ConcurrentOpenAndClose(t *testing.T) {
	opener := newTestOpener(t)

	const callers = 8
	var wg sync.WaitGroup
	for range callers {
		wg.Add(2)
		go func() {
			defer wg.Done()
			db, err := opener.Open(context.Background())
			// либо общий дескриптор, либо ошибка закрытого opener
			if err != nil {
				assert.ErrorIs(t, err, ErrStorageUnavailable)
				return
			}
			assert.NotNil(t, db)
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, opener.Close())
		}()
	}
	wg.Wait()

	db, err := opener.Open(context.Background())
	if err != nil {
		assert.ErrorIs(t, err, ErrStorageUnavailable)
		return
	}
	// Open успел первым: после Close дескриптор закрыт
	assert.Error(t, db.PingContext(context.Background()))
}

func TestCreateLocalDBFileIfNotExists(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		dsn  string
		path string
	}{
		{name: "plain path", dsn: filepath.Join(dir, "a", "plain.db"), path: filepath.Join(dir, "a", "plain.db")},
		{name: "file uri with query", dsn: "file:" + filepath.Join(dir, "b.db") + "?_busy_timeout=500", path: filepath.Join(dir, "b.db")},
		{name: "memory", dsn: ":memory:"},
		{name: "empty", dsn: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, createLocalDBFileIfNotExists(tt.dsn))
			if tt.path != "" {
				assert.FileExists(t, tt.path)
			}
		})
	}
}
