package records

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"campusapi/internal/storage"
	"campusapi/internal/storage/jsonfile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID string `json:"id"`
}

type memoryBackend struct {
	mu      sync.Mutex
	recs    []record
	loadErr error
	saveErr error
	saves   int
}

func (m *memoryBackend) Load(_ context.Context) ([]record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.loadErr != nil {
		return nil, m.loadErr
	}

	return append([]record(nil), m.recs...), nil
}

func (m *memoryBackend) Save(_ context.Context, recs []record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.saveErr != nil {
		return m.saveErr
	}

	m.recs = append([]record(nil), recs...)
	m.saves++

	return nil
}

func TestAllNeverNil(t *testing.T) {
	t.Parallel()

	c := New[record](&memoryBackend{})

	recs, err := c.All(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestAppendKeepsOrder(t *testing.T) {
	t.Parallel()

	backend := &memoryBackend{}
	c := New[record](backend)
	ctx := context.Background()

	require.NoError(t, c.Append(ctx, record{ID: "1"}))
	require.NoError(t, c.Append(ctx, record{ID: "2"}))

	recs, err := c.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []record{{ID: "1"}, {ID: "2"}}, recs)
	assert.Equal(t, 2, backend.saves)
}

func TestErrorsArePropagated(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	loadFails := New[record](&memoryBackend{loadErr: storage.ErrParse})

	_, err := loadFails.All(ctx)
	assert.ErrorIs(t, err, storage.ErrParse)
	assert.ErrorIs(t, loadFails.Append(ctx, record{ID: "1"}), storage.ErrParse)

	diskFull := errors.New("disk full")
	saveBackend := &memoryBackend{saveErr: diskFull}

	assert.ErrorIs(t, New[record](saveBackend).Append(ctx, record{ID: "1"}), diskFull)
	assert.Zero(t, saveBackend.saves)
}

func TestConcurrentAppendsAreNotLost(t *testing.T) {
	t.Parallel()

	store := jsonfile.New[record](filepath.Join(t.TempDir(), "records.json"), jsonfile.WithCreateIfMissing())
	c := New[record](store)
	ctx := context.Background()

	const n = 50

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, c.Append(ctx, record{ID: fmt.Sprint(i)}))
		}(i)
	}
	wg.Wait()

	recs, err := c.All(ctx)
	require.NoError(t, err)
	assert.Len(t, recs, n)
}

type slowSaveBackend struct {
	memoryBackend
	saving     atomic.Int32
	overlapped atomic.Bool
}

func (b *slowSaveBackend) Load(ctx context.Context) ([]record, error) {
	if b.saving.Load() > 0 {
		b.overlapped.Store(true)
	}

	return b.memoryBackend.Load(ctx)
}

func (b *slowSaveBackend) Save(ctx context.Context, recs []record) error {
	b.saving.Add(1)
	defer b.saving.Add(-1)

	time.Sleep(time.Millisecond)

	return b.memoryBackend.Save(ctx, recs)
}

func TestAllWaitsForSave(t *testing.T) {
	t.Parallel()

	backend := &slowSaveBackend{}
	c := New[record](backend)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, c.Append(ctx, record{ID: fmt.Sprint(i)}))
		}(i)
		go func() {
			defer wg.Done()
			_, err := c.All(ctx)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.False(t, backend.overlapped.Load(), "a read ran while a save was in progress")
}
