package jobs

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/prettyirrelevant/wakaru/internal/models"
)

// Store holds jobs in memory and is safe for concurrent use. Completed
// jobs older than the retention window are dropped on the next write so
// the map cannot grow without bound.
type Store struct {
	mu        sync.RWMutex
	jobs      map[string]*Job
	retention time.Duration
	now       func() time.Time
}

const defaultRetention = time.Hour

func NewStore() *Store {
	return &Store{
		jobs:      make(map[string]*Job),
		retention: defaultRetention,
		now:       time.Now,
	}
}

// Create registers a new pending job and returns its ID.
func (s *Store) Create(filename, bank string) *Job {
	job := &Job{
		ID:        uuid.NewString(),
		Filename:  filename,
		Bank:      bank,
		Status:    StatusPending,
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictLocked()
	s.jobs[job.ID] = job
	return snapshot(job)
}

// Get returns a copy of the job, or an error if it is unknown or already
// evicted.
func (s *Store) Get(id string) (*Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return nil, fmt.Errorf("job not found: %s", id)
	}
	return snapshot(job), nil
}

// List returns all known jobs, newest first.
func (s *Store) List() []*Job {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Job, 0, len(s.jobs))
	for _, job := range s.jobs {
		result = append(result, snapshot(job))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

// Start marks the job running.
func (s *Store) Start(id string) {
	s.update(id, func(job *Job) {
		now := s.now()
		job.Status = StatusRunning
		job.StartedAt = &now
	})
}

// Progress records parsing progress for a running job. Updates after a
// terminal state are ignored.
func (s *Store) Progress(id string, percent int, message string) {
	s.update(id, func(job *Job) {
		if job.Done() {
			return
		}
		job.Progress = percent
		job.Message = message
	})
}

// Complete stores the parse result and marks the job finished.
func (s *Store) Complete(id string, transactions []models.Transaction) {
	s.update(id, func(job *Job) {
		now := s.now()
		job.Status = StatusCompleted
		job.Progress = 100
		job.Message = ""
		job.Transactions = transactions
		job.EndedAt = &now
	})
}

// Fail marks the job failed with the given reason.
func (s *Store) Fail(id string, reason error) {
	s.update(id, func(job *Job) {
		now := s.now()
		job.Status = StatusFailed
		job.Error = reason.Error()
		job.EndedAt = &now
	})
}

func (s *Store) update(id string, fn func(*Job)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if job, ok := s.jobs[id]; ok {
		fn(job)
	}
}

func (s *Store) evictLocked() {
	cutoff := s.now().Add(-s.retention)
	for id, job := range s.jobs {
		if job.Done() && job.EndedAt != nil && job.EndedAt.Before(cutoff) {
			delete(s.jobs, id)
		}
	}
}

func snapshot(job *Job) *Job {
	cp := *job
	return &cp
}
