package worker_pool

import (
	"context"
	"sync"

	"content_intelligence/internal/pkg/errors"

	log "github.com/sirupsen/logrus"
)

var ErrPoolClosed = errors.New(`worker pool is canceled; cannot accept new tasks`)

type TaskFunc func(ctx context.Context) (any, error)

// TaskResult holds the outcome of a finished task (its ID, result value, or error).
type TaskResult struct {
	ID     string
	Result any
	Err    error
}

type workItem struct {
	id string
	fn TaskFunc
}

// WorkerPool runs submitted tasks on a fixed number of goroutines. The
// submitter calls Close once every task is submitted; ResultsCh is closed
// after the last result was delivered.
type WorkerPool struct {
	tasksCh     chan workItem
	ResultsCh   chan TaskResult
	ctx         context.Context
	cancelFunc  context.CancelFunc
	wg          sync.WaitGroup
	closeOnce   sync.Once
	stopOnError bool
	log         *log.Logger
}

// NewWorkerPool initializes the worker pool with the given number of workers.
// If stopOnError is true, the pool will cancel on the first task error.
func NewWorkerPool(parentCtx context.Context, numWorkers int, stopOnError bool, logger *log.Logger) *WorkerPool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	ctx, cancel := context.WithCancel(parentCtx)
	wp := &WorkerPool{
		tasksCh:     make(chan workItem),
		ResultsCh:   make(chan TaskResult),
		ctx:         ctx,
		cancelFunc:  cancel,
		stopOnError: stopOnError,
		log:         logger,
	}
	wp.wg.Add(numWorkers)
	for i := 1; i <= numWorkers; i++ {
		go wp.worker(i)
	}
	go func() {
		wp.wg.Wait()
		wp.log.Debugf(`all workers finished, closing results channel`)
		close(wp.ResultsCh)
		cancel()
	}()
	return wp
}

// Submit hands a task to the next free worker. It blocks while every worker
// is busy and fails once the pool was canceled.
func (wp *WorkerPool) Submit(id string, taskFn TaskFunc) error {
	if wp.ctx.Err() != nil {
		wp.log.Warnf(`Submit rejected for task %s: pool is shutting down`, id)
		return ErrPoolClosed
	}
	select {
	case wp.tasksCh <- workItem{id: id, fn: taskFn}:
		return nil
	case <-wp.ctx.Done():
		wp.log.Warnf(`Submit failed for task %s: pool was canceled`, id)
		return ErrPoolClosed
	}
}

// Close signals that no more tasks will be submitted. It must be called from
// the submitting goroutine, after its last Submit.
func (wp *WorkerPool) Close() {
	wp.closeOnce.Do(func() {
		close(wp.tasksCh)
	})
}

func (wp *WorkerPool) worker(workerID int) {
	defer wp.wg.Done()
	for task := range wp.tasksCh {
		if err := wp.ctx.Err(); err != nil {
			wp.ResultsCh <- TaskResult{ID: task.id, Err: err}
			continue
		}
		wp.log.Debugf(`Worker %d starting task %s`, workerID, task.id)
		result, err := task.fn(wp.ctx)
		if err != nil {
			wp.log.WithError(err).Warnf(`Task %s failed`, task.id)
			if wp.stopOnError {
				wp.log.Warnf(`StopOnError active - canceling pool due to error in task %s`, task.id)
				wp.cancelFunc()
			}
		}
		wp.ResultsCh <- TaskResult{ID: task.id, Result: result, Err: err}
	}
	wp.log.Debugf(`Worker %d exiting: task channel closed`, workerID)
}

// Stop cancels the pool. Queued tasks are answered with the cancellation
// error; the submitter still calls Close.
func (wp *WorkerPool) Stop() {
	wp.log.Debugf(`stop requested: canceling worker pool`)
	wp.cancelFunc()
}
