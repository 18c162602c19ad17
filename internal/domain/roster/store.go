package roster

import (
	"sort"
	"sync"
)

// Store keeps the peripheral collections in memory: users, salespeople and
// the principle list. Like the evaluation store it is the session's source
// of truth; bulk loads replace collections wholesale and only when the
// remote copy is non-empty.
type Store struct {
	mu         sync.RWMutex
	users      map[string]User
	sales      map[string]SalesPerson
	principles []string
}

func NewStore() *Store {
	return &Store{
		users: make(map[string]User),
		sales: make(map[string]SalesPerson),
	}
}

func (s *Store) ListUsers() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) FindUser(id string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u, ok
}

func (s *Store) UpsertUser(u User) {
	s.mu.Lock()
	s.users[u.ID] = u
	s.mu.Unlock()
}

func (s *Store) DeleteUser(id string) {
	s.mu.Lock()
	delete(s.users, id)
	s.mu.Unlock()
}

func (s *Store) ListSales() []SalesPerson {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]SalesPerson, 0, len(s.sales))
	for _, sp := range s.sales {
		out = append(out, sp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) FindSales(id string) (SalesPerson, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sp, ok := s.sales[id]
	return sp, ok
}

func (s *Store) UpsertSales(sp SalesPerson) {
	s.mu.Lock()
	s.sales[sp.ID] = sp
	s.mu.Unlock()
}

func (s *Store) DeleteSales(id string) {
	s.mu.Lock()
	delete(s.sales, id)
	s.mu.Unlock()
}

func (s *Store) Principles() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.principles))
	copy(out, s.principles)
	return out
}

// AddPrinciple appends a new principle tag, ignoring duplicates.
func (s *Store) AddPrinciple(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.principles {
		if existing == name {
			return
		}
	}
	s.principles = append(s.principles, name)
}

func (s *Store) ReplaceUsers(users []User) {
	next := make(map[string]User, len(users))
	for _, u := range users {
		next[u.ID] = u
	}
	s.mu.Lock()
	s.users = next
	s.mu.Unlock()
}

func (s *Store) ReplaceSales(sales []SalesPerson) {
	next := make(map[string]SalesPerson, len(sales))
	for _, sp := range sales {
		next[sp.ID] = sp
	}
	s.mu.Lock()
	s.sales = next
	s.mu.Unlock()
}

func (s *Store) ReplacePrinciples(principles []string) {
	next := make([]string, len(principles))
	copy(next, principles)
	s.mu.Lock()
	s.principles = next
	s.mu.Unlock()
}
