package service

import "sync"

// Selection tracks the entity each admin currently has open in a detail
// view. A successful (or unknown) action closes the view.
type Selection struct {
	mu      sync.Mutex
	current map[string]Target
}

// NewSelection creates an empty selection store.
func NewSelection() *Selection {
	return &Selection{current: make(map[string]Target)}
}

// Set records the target adminID has open.
func (s *Selection) Set(adminID string, target Target) {
	s.mu.Lock()
	s.current[adminID] = target
	s.mu.Unlock()
}

// Get returns the open target for adminID, if any.
func (s *Selection) Get(adminID string) (Target, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.current[adminID]
	return t, ok
}

// Clear closes adminID's detail view.
func (s *Selection) Clear(adminID string) {
	s.mu.Lock()
	delete(s.current, adminID)
	s.mu.Unlock()
}
