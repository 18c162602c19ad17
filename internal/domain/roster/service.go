package roster

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"salestrack/internal/domain/auth"
)

var ErrUserNotFound = errors.New("user not found")

// Mirror receives roster mutations for best-effort sync.
type Mirror interface {
	EnqueueUser(u User)
	EnqueueSalesPerson(sp SalesPerson)
	EnqueuePrinciple(name string)
}

type Service struct {
	store  *Store
	mirror Mirror
}

func NewService(store *Store, mirror Mirror) *Service {
	return &Service{store: store, mirror: mirror}
}

func (s *Service) Store() *Store {
	return s.store
}

func (s *Service) ListUsers() []User {
	return s.store.ListUsers()
}

func (s *Service) ListSales() []SalesPerson {
	return s.store.ListSales()
}

func (s *Service) Principles() []string {
	return s.store.Principles()
}

func (s *Service) FindUser(id string) (User, bool) {
	return s.store.FindUser(id)
}

func (s *Service) FindSales(id string) (SalesPerson, bool) {
	return s.store.FindSales(id)
}

func (s *Service) SaveUser(u User) User {
	if u.ID == "" {
		u.ID = "U-" + uuid.NewString()
	}
	s.store.UpsertUser(u)
	if s.mirror != nil {
		s.mirror.EnqueueUser(u)
	}
	return u
}

func (s *Service) DeleteUser(id string) {
	s.store.DeleteUser(id)
}

func (s *Service) SaveSales(sp SalesPerson) SalesPerson {
	if sp.ID == "" {
		sp.ID = "S-" + uuid.NewString()
	}
	s.store.UpsertSales(sp)
	if s.mirror != nil {
		s.mirror.EnqueueSalesPerson(sp)
	}
	return sp
}

func (s *Service) DeleteSales(id string) {
	s.store.DeleteSales(id)
}

func (s *Service) AddPrinciple(name string) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return
	}
	s.store.AddPrinciple(name)
	if s.mirror != nil {
		s.mirror.EnqueuePrinciple(name)
	}
}

// ResolveLogin finds the account matching the original sign-in form: role
// plus principle, with supervisors additionally matched by name. When no
// account matches, a throwaway session user is synthesized so the session
// still works against whatever data the actor is scoped to.
func (s *Service) ResolveLogin(role, principle, name string) User {
	for _, u := range s.store.ListUsers() {
		if u.Role != role {
			continue
		}
		if role == auth.RoleSupervisor {
			if strings.EqualFold(u.FullName, name) {
				return u
			}
			continue
		}
		if role == auth.RoleAdmin || u.Principle == principle || u.Principle == "ALL PRINCIPLE" {
			return u
		}
	}

	fullName := name
	if fullName == "" {
		fullName = role
	}
	return User{
		ID:        "temp-" + uuid.NewString(),
		FullName:  fullName,
		Role:      role,
		Principle: principle,
	}
}

// TeamOf lists the salespeople reporting to the named supervisor.
func (s *Service) TeamOf(supervisorName string) []SalesPerson {
	var team []SalesPerson
	for _, sp := range s.store.ListSales() {
		if strings.EqualFold(sp.SupervisorName, supervisorName) {
			team = append(team, sp)
		}
	}
	return team
}
