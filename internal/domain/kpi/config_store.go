package kpi

import "sync"

// ConfigStore holds the live KPI configuration. Get/Replace swap the whole
// structure; there is no partial patch. Replacing the configuration never
// recomputes stored evaluations, their FinalScore stays frozen at the value
// computed when they were saved.
type ConfigStore struct {
	mu  sync.RWMutex
	cfg Configuration
}

func NewConfigStore(cfg Configuration) *ConfigStore {
	return &ConfigStore{cfg: cfg}
}

func (s *ConfigStore) Get() Configuration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Replace installs the new configuration unconditionally and returns any
// advisory weight warnings. Warnings never block the write.
func (s *ConfigStore) Replace(cfg Configuration) []string {
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
	return cfg.WeightWarnings()
}
