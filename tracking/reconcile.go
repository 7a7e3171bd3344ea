package tracking

import (
	"context"
	"log"
	"sync"
	"time"
)

// StatusStore writes a derived status back to the persisted order. Updates
// are last-write-wins and safe to repeat.
type StatusStore interface {
	UpdateStatus(ctx context.Context, orderID string, status string) error
}

// Reconciler compares the derived stage with the persisted status and pushes
// the derived one when they differ.
type Reconciler struct {
	Store StatusStore
}

func NewReconciler(store StatusStore) *Reconciler {
	return &Reconciler{Store: store}
}

// Reconcile returns the stage for the given clock reading, writing it back
// if it differs from the persisted status. The write is best-effort; a
// failure is logged and the derived label is still returned.
func (r *Reconciler) Reconcile(ctx context.Context, orderID, persisted string, createdAt, now time.Time, avg time.Duration) string {
	stage := StageAt(createdAt, now, avg)
	if stage != persisted {
		if err := r.Store.UpdateStatus(ctx, orderID, stage); err != nil {
			log.Printf("tracking: status write-back failed for order %s: %v", orderID, err)
		}
	}
	return stage
}

// Watcher follows a single order through its stage boundaries, reconciling
// the persisted status at each one. The timer is re-armed for the next
// boundary after each firing and stopped before re-arming, so at most one
// callback is ever pending.
type Watcher struct {
	reconciler *Reconciler
	orderID    string
	createdAt  time.Time
	avg        time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

func NewWatcher(reconciler *Reconciler, orderID string, createdAt time.Time, avg time.Duration) *Watcher {
	return &Watcher{
		reconciler: reconciler,
		orderID:    orderID,
		createdAt:  createdAt,
		avg:        avg,
	}
}

// Start schedules reconciliation at the next stage boundary. It returns
// immediately; the watcher stops itself once the order is Delivered.
func (w *Watcher) Start(persisted string) {
	w.schedule(persisted)
}

func (w *Watcher) schedule(persisted string) {
	wait, ok := NextBoundary(w.createdAt, time.Now(), w.avg)
	if !ok {
		// Already delivered; one final reconcile settles the stored status.
		w.reconciler.Reconcile(context.Background(), w.orderID, persisted, w.createdAt, time.Now(), w.avg)
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(wait, func() {
		stage := w.reconciler.Reconcile(context.Background(), w.orderID, persisted, w.createdAt, time.Now(), w.avg)
		w.schedule(stage)
	})
}

// Stop cancels any pending reconciliation. Safe to call more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopped = true
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}
