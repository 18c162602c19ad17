package tasks

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrInvalidStatus = errors.New("invalid task status")
)

// Mirror receives task mutations for best-effort sync.
type Mirror interface {
	EnqueueTask(task Task)
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

func (s *Service) List() []Task {
	return s.store.List()
}

// ListForSupervisor returns the supervisor's own checklist.
func (s *Service) ListForSupervisor(supervisorID string) []Task {
	var out []Task
	for _, task := range s.store.List() {
		if task.SupervisorID == supervisorID {
			out = append(out, task)
		}
	}
	return out
}

func (s *Service) Save(task Task) Task {
	if task.ID == "" {
		task.ID = "T-" + uuid.NewString()
	}
	if task.Priority == "" {
		task.Priority = PriorityMedium
	}
	if task.Status == "" {
		task.Status = StatusOpen
	}
	s.store.Upsert(task)
	if s.mirror != nil {
		s.mirror.EnqueueTask(task)
	}
	return task
}

// UpdateStatus moves a task through its lifecycle, stamping time in/out as
// the supervisor progresses. A completed task enters the admin approval
// queue as WAITING.
func (s *Service) UpdateStatus(id, status, timeIn, timeOut string) (Task, error) {
	if !validStatus(status) {
		return Task{}, ErrInvalidStatus
	}
	task, ok := s.store.Find(id)
	if !ok {
		return Task{}, ErrTaskNotFound
	}

	task.Status = status
	if timeIn != "" {
		task.TimeIn = timeIn
	}
	if timeOut != "" {
		task.TimeOut = timeOut
	}
	if status == StatusCompleted && task.ApprovalStatus == "" {
		task.ApprovalStatus = ApprovalWaiting
	}

	s.store.Upsert(task)
	if s.mirror != nil {
		s.mirror.EnqueueTask(task)
	}
	return task, nil
}

// SetApproval records the admin's verdict on a completed task.
func (s *Service) SetApproval(id, approval string) (Task, error) {
	if approval != ApprovalApproved && approval != ApprovalRejected && approval != ApprovalWaiting {
		return Task{}, ErrInvalidStatus
	}
	task, ok := s.store.Find(id)
	if !ok {
		return Task{}, ErrTaskNotFound
	}

	task.ApprovalStatus = approval
	s.store.Upsert(task)
	if s.mirror != nil {
		s.mirror.EnqueueTask(task)
	}
	return task, nil
}

func (s *Service) Delete(id string) {
	s.store.Delete(id)
}

func validStatus(status string) bool {
	for _, candidate := range Statuses {
		if candidate == status {
			return true
		}
	}
	return false
}
