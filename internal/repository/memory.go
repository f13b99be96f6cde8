package repository

import (
	"context"
	"sync"

	"resume-match/internal/domain/candidate"
	"resume-match/internal/domain/job"
)

// MemoryCandidateRepository is an in-process store used by tests and by
// deployments that run without Postgres.
type MemoryCandidateRepository struct {
	mu         sync.RWMutex
	nextID     int64
	candidates map[int64]*candidate.Candidate
}

func NewMemoryCandidateRepository() *MemoryCandidateRepository {
	return &MemoryCandidateRepository{nextID: 1, candidates: make(map[int64]*candidate.Candidate)}
}

func (r *MemoryCandidateRepository) Create(_ context.Context, c *candidate.Candidate) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = r.nextID
	r.nextID++
	cp := *c
	r.candidates[c.ID] = &cp
	return c.ID, nil
}

func (r *MemoryCandidateRepository) GetByID(_ context.Context, id int64) (*candidate.Candidate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.candidates[id]
	if !ok {
		return nil, ErrCandidateNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *MemoryCandidateRepository) ListAll(_ context.Context) ([]*candidate.Candidate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*candidate.Candidate, 0, len(r.candidates))
	for id := int64(1); id < r.nextID; id++ {
		if c, ok := r.candidates[id]; ok {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

type MemoryJobRepository struct {
	mu     sync.RWMutex
	nextID int64
	jobs   map[int64]*job.Job
}

func NewMemoryJobRepository() *MemoryJobRepository {
	return &MemoryJobRepository{nextID: 1, jobs: make(map[int64]*job.Job)}
}

func (r *MemoryJobRepository) Create(_ context.Context, j *job.Job) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j.ID = r.nextID
	r.nextID++
	cp := *j
	r.jobs[j.ID] = &cp
	return j.ID, nil
}

func (r *MemoryJobRepository) GetByID(_ context.Context, id int64) (*job.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, ErrJobNotFound
	}
	cp := *j
	return &cp, nil
}

func (r *MemoryJobRepository) ListAll(_ context.Context) ([]*job.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*job.Job, 0, len(r.jobs))
	for id := int64(1); id < r.nextID; id++ {
		if j, ok := r.jobs[id]; ok {
			cp := *j
			out = append(out, &cp)
		}
	}
	return out, nil
}
