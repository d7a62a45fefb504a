package services

import "sync"

// projectLocks serializes write operations per project. Locks are created on
// first use and never released; project counts stay small enough that the
// map does not need eviction.
type projectLocks struct {
	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func newProjectLocks() *projectLocks {
	return &projectLocks{locks: make(map[int]*sync.Mutex)}
}

func (p *projectLocks) lock(projectID int) *sync.Mutex {
	p.mu.Lock()
	l, ok := p.locks[projectID]
	if !ok {
		l = &sync.Mutex{}
		p.locks[projectID] = l
	}
	p.mu.Unlock()

	l.Lock()
	return l
}
