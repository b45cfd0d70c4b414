// Package worker bounds how many generations run against the model provider
// at once. Requests beyond the queue are rejected rather than piling up.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/ewilliams-labs/moodsnap/internal/core/domain"
	"github.com/ewilliams-labs/moodsnap/internal/core/ports"
)

var (
	// ErrQueueFull is returned when no queue slot is free.
	ErrQueueFull = fmt.Errorf("worker: queue full: %w", domain.ErrUpstreamUnavailable)
	// ErrStopped is returned after Stop.
	ErrStopped = errors.New("worker: pool stopped")
)

// Job is one generation waiting for a worker.
type Job struct {
	ctx    context.Context
	prompt domain.Prompt
	result chan result
}

type result struct {
	out string
	err error
}

// Pool runs generations on a fixed set of workers and implements
// ports.MoodGenerator itself, so it can sit in front of any provider.
type Pool struct {
	gen  ports.MoodGenerator
	jobs chan Job

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
}

var _ ports.MoodGenerator = (*Pool)(nil)

// NewPool creates a pool with the given queue size. Call Start before use.
func NewPool(gen ports.MoodGenerator, queueSize int) *Pool {
	if queueSize < 1 {
		queueSize = 1
	}
	return &Pool{gen: gen, jobs: make(chan Job, queueSize)}
}

// Start launches the worker goroutines.
func (p *Pool) Start(workers int) {
	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				p.processJob(job)
			}
		}()
	}
}

// Stop waits for queued jobs to finish after closing the queue.
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
}

// Submit queues a job without blocking.
func (p *Pool) Submit(job Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrStopped
	}
	select {
	case p.jobs <- job:
		return nil
	default:
		log.Printf("WARN worker: dropping %s job, queue full", job.prompt.Flow)
		return ErrQueueFull
	}
}

// Generate queues the prompt and waits for a worker to run it.
func (p *Pool) Generate(ctx context.Context, prompt domain.Prompt) (string, error) {
	job := Job{ctx: ctx, prompt: prompt, result: make(chan result, 1)}
	if err := p.Submit(job); err != nil {
		return "", err
	}
	select {
	case res := <-job.result:
		return res.out, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (p *Pool) processJob(job Job) {
	// The caller may have given up while the job sat in the queue.
	if err := job.ctx.Err(); err != nil {
		job.result <- result{err: err}
		return
	}
	out, err := p.gen.Generate(job.ctx, job.prompt)
	job.result <- result{out: out, err: err}
}
