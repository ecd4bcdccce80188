package workers

import (
	"github.com/Killjoy99/eNtweniBooking/internal/config"
	"github.com/Killjoy99/eNtweniBooking/internal/logger"
	"github.com/Killjoy99/eNtweniBooking/internal/store"
)

// Workers aggregates the application's background workers.
type Workers struct {
	// LastLoginRecorder persists last-login timestamps off the request path.
	LastLoginRecorder *LastLoginRecorder

	workers []Worker
}

// NewWorkers constructs the background workers over the given storages.
func NewWorkers(storages *store.Storages, cfg config.Workers, log *logger.Logger) *Workers {
	lastLoginRecorder := NewLastLoginRecorder(storages.UserRepository, cfg.LastLoginQueueSize, log)

	return &Workers{
		LastLoginRecorder: lastLoginRecorder,
		workers:           []Worker{lastLoginRecorder},
	}
}

// Run starts every worker in registration order.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop shuts down every worker that supports orderly shutdown, in reverse
// registration order, and waits for each to drain.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		if stopper, ok := w.workers[i].(Stopper); ok {
			stopper.Stop()
		}
	}
}
