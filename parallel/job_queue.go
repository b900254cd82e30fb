package parallel

import (
	"errors"
	"fmt"
	"sync"
)

func CreateJobQueue(queueSize int, poolSize int) *JobQueue {

	group := &JobQueue{
		jobsChannel: make(chan func() error, queueSize),
		waitGroup:   &sync.WaitGroup{},
		errorsLock:  &sync.Mutex{},
	}

	for i := 1; i <= poolSize; i++ {
		go group.worker()
	}
	return group
}

// JobQueue runs jobs on a fixed pool of workers and keeps their errors.
type JobQueue struct {
	jobsChannel chan func() error
	waitGroup   *sync.WaitGroup
	errorsLock  *sync.Mutex
	errors      []error
}

func (queue *JobQueue) Add(function func() error) error {
	if function == nil {
		return fmt.Errorf("nil function")
	}

	queue.waitGroup.Add(1)
	queue.jobsChannel <- function
	return nil
}

// Wait blocks until every added job finished and returns their errors joined.
func (queue *JobQueue) Wait() error {
	queue.waitGroup.Wait()
	queue.errorsLock.Lock()
	defer queue.errorsLock.Unlock()
	return errors.Join(queue.errors...)
}

func (queue *JobQueue) Close() {
	close(queue.jobsChannel)
}

func (queue *JobQueue) worker() {
	for job := range queue.jobsChannel {
		if err := job(); err != nil {
			queue.errorsLock.Lock()
			queue.errors = append(queue.errors, err)
			queue.errorsLock.Unlock()
		}
		queue.waitGroup.Done()
	}
}
