package tracking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeStatusStore struct {
	mu      sync.Mutex
	updates []string
}

func (s *fakeStatusStore) UpdateStatus(ctx context.Context, orderID string, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates = append(s.updates, status)
	return nil
}

func (s *fakeStatusStore) snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.updates...)
}

func TestReconciler_WritesBackOnDivergence(t *testing.T) {
	store := &fakeStatusStore{}
	reconciler := NewReconciler(store)

	createdAt := time.Date(2025, 5, 4, 12, 30, 0, 0, time.UTC)
	avg := 30 * time.Minute

	stage := reconciler.Reconcile(context.Background(), "order1", "processing", createdAt, createdAt.Add(13*time.Minute), avg)
	assert.Equal(t, StageOutForDelivery, stage)
	assert.Equal(t, []string{StageOutForDelivery}, store.snapshot())
}

func TestReconciler_NoWriteWhenInSync(t *testing.T) {
	store := &fakeStatusStore{}
	reconciler := NewReconciler(store)

	createdAt := time.Date(2025, 5, 4, 12, 30, 0, 0, time.UTC)
	avg := 30 * time.Minute

	stage := reconciler.Reconcile(context.Background(), "order1", StageOutForDelivery, createdAt, createdAt.Add(13*time.Minute), avg)
	assert.Equal(t, StageOutForDelivery, stage)
	assert.Empty(t, store.snapshot())
}

func TestReconciler_Idempotent(t *testing.T) {
	store := &fakeStatusStore{}
	reconciler := NewReconciler(store)

	createdAt := time.Date(2025, 5, 4, 12, 30, 0, 0, time.UTC)
	now := createdAt.Add(13 * time.Minute)
	avg := 30 * time.Minute

	first := reconciler.Reconcile(context.Background(), "order1", "processing", createdAt, now, avg)
	second := reconciler.Reconcile(context.Background(), "order1", "processing", createdAt, now, avg)
	assert.Equal(t, first, second)
}

func TestWatcher_FollowsOrderToDelivered(t *testing.T) {
	store := &fakeStatusStore{}
	reconciler := NewReconciler(store)

	watcher := NewWatcher(reconciler, "order1", time.Now(), 200*time.Millisecond)
	watcher.Start("processing")
	defer watcher.Stop()

	assert.Eventually(t, func() bool {
		updates := store.snapshot()
		return len(updates) > 0 && updates[len(updates)-1] == StageDelivered
	}, 2*time.Second, 20*time.Millisecond)
}

func TestWatcher_StopCancelsPendingTimer(t *testing.T) {
	store := &fakeStatusStore{}
	reconciler := NewReconciler(store)

	watcher := NewWatcher(reconciler, "order1", time.Now(), time.Hour)
	watcher.Start("processing")
	watcher.Stop()

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, store.snapshot())
}
