package workers

import (
	"context"
	"sync"
	"time"

	"github.com/Killjoy99/eNtweniBooking/internal/logger"
	"github.com/Killjoy99/eNtweniBooking/internal/store"
)

// lastLoginWriteTimeout bounds each timestamp write so a slow database
// cannot wedge the worker.
const lastLoginWriteTimeout = 5 * time.Second

// LastLoginRecorder persists last-login timestamps asynchronously. Logins
// enqueue the user ID and return immediately; a single consumer goroutine
// performs the writes. A full queue drops the update rather than blocking
// the login: the timestamp is informational, not part of the session
// contract.
type LastLoginRecorder struct {
	userRepository store.UserRepository
	queue          chan int64

	closeOnce sync.Once
	done      chan struct{}

	logger *logger.Logger
}

// NewLastLoginRecorder constructs a recorder with a bounded queue of the
// given size. Call Run to start the consumer.
func NewLastLoginRecorder(userRepository store.UserRepository, queueSize int, log *logger.Logger) *LastLoginRecorder {
	return &LastLoginRecorder{
		userRepository: userRepository,
		queue:          make(chan int64, queueSize),
		done:           make(chan struct{}),
		logger:         log,
	}
}

// Record enqueues a last-login update for the given user. It never blocks:
// if the queue is full the update is dropped with a warning.
func (r *LastLoginRecorder) Record(userID int64) {
	select {
	case r.queue <- userID:
	default:
		r.logger.Warn().Int64("id", userID).Msg("last-login queue full, update dropped")
	}
}

// Run starts the consumer goroutine. It drains the queue until Stop closes
// it, writing each timestamp with its own bounded context.
func (r *LastLoginRecorder) Run() {
	go func() {
		defer close(r.done)

		for userID := range r.queue {
			ctx, cancel := context.WithTimeout(context.Background(), lastLoginWriteTimeout)
			if err := r.userRepository.UpdateLastLogin(ctx, userID); err != nil {
				r.logger.Err(err).Int64("id", userID).Msg("last-login update failed")
			}
			cancel()
		}
	}()
}

// Stop closes the queue and waits for the consumer to finish the remaining
// updates. Record must not be called after Stop.
func (r *LastLoginRecorder) Stop() {
	r.closeOnce.Do(func() {
		close(r.queue)
	})
	<-r.done
}
