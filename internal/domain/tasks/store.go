package tasks

import (
	"sort"
	"sync"
)

type Store struct {
	mu    sync.RWMutex
	tasks map[string]Task
}

func NewStore() *Store {
	return &Store{tasks: make(map[string]Task)}
}

func (s *Store) List() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		out = append(out, task)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) Find(id string) (Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	task, ok := s.tasks[id]
	return task, ok
}

func (s *Store) Upsert(task Task) {
	s.mu.Lock()
	s.tasks[task.ID] = task
	s.mu.Unlock()
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.tasks, id)
	s.mu.Unlock()
}

func (s *Store) ReplaceAll(tasks []Task) {
	next := make(map[string]Task, len(tasks))
	for _, task := range tasks {
		next[task.ID] = task
	}
	s.mu.Lock()
	s.tasks = next
	s.mu.Unlock()
}
