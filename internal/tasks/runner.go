package tasks

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/mexicanamerican/agent-zero/internal/logging"
)

// Runner dispatches detached background tasks. Completion and errors are
// invisible to the caller of Go; Wait exists so tests and shutdown paths can
// drain in-flight work.
type Runner struct {
	log *logging.Logger
	wg  sync.WaitGroup
}

// NewRunner creates a runner logging through log.
func NewRunner(log *logging.Logger) *Runner {
	if log == nil {
		log = logging.NewNop()
	}
	return &Runner{log: log}
}

// Go spawns fn on its own goroutine. A panic or returned error is logged
// under the task name and otherwise dropped.
func (r *Runner) Go(name string, fn func(ctx context.Context) error) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer func() {
			if rec := recover(); rec != nil {
				r.log.Error("background task panicked",
					zap.String("task", name),
					zap.String("panic", fmt.Sprint(rec)),
				)
			}
		}()

		if err := fn(context.Background()); err != nil {
			r.log.Warn("background task failed",
				zap.String("task", name),
				zap.Error(err),
			)
		}
	}()
}

// Wait blocks until all spawned tasks have finished.
func (r *Runner) Wait() {
	r.wg.Wait()
}
