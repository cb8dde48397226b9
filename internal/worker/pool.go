package worker

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type Job func()

// Pool runs submitted jobs on a fixed number of goroutines. Stop drains the
// queue before returning.
type Pool struct {
	jobs          chan Job
	wg            sync.WaitGroup
	workers       int
	submitTimeout time.Duration
	logger        zerolog.Logger

	mu      sync.RWMutex
	stopped bool
}

func NewPool(workers, queueSize int, logger zerolog.Logger) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = workers * 10
	}
	return &Pool{
		jobs:          make(chan Job, queueSize),
		workers:       workers,
		submitTimeout: time.Second,
		logger:        logger,
	}
}

func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.work(i)
	}

	p.logger.Info().Int("workers", p.workers).Msg("Worker pool started")
}

// Submit enqueues job. It reports false when the pool is stopped or the
// queue stayed full for the submit timeout.
func (p *Pool) Submit(job Job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		return false
	}

	select {
	case p.jobs <- job:
		return true
	default:
	}

	p.logger.Warn().Msg("Worker pool queue is full")
	select {
	case p.jobs <- job:
		return true
	case <-time.After(p.submitTimeout):
		return false
	}
}

func (p *Pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()
	p.logger.Info().Msg("Worker pool stopped")
}

func (p *Pool) QueueLength() int {
	return len(p.jobs)
}

func (p *Pool) work(id int) {
	defer p.wg.Done()

	for job := range p.jobs {
		p.run(id, job)
	}
}

func (p *Pool) run(id int, job Job) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error().
				Int("worker_id", id).
				Interface("panic", r).
				Msg("Worker recovered from panic")
		}
	}()

	job()
}
