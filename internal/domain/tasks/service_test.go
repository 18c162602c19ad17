package tasks

import "testing"

func TestSaveFillsDefaults(t *testing.T) {
	svc := NewService(NewStore(), nil)

	task := svc.Save(Task{SupervisorID: "U02", Title: "Visit Toko Mitra 10"})
	if task.ID == "" {
		t.Fatal("expected generated task id")
	}
	if task.Priority != PriorityMedium {
		t.Fatalf("expected default priority MEDIUM, got %s", task.Priority)
	}
	if task.Status != StatusOpen {
		t.Fatalf("expected default status OPEN, got %s", task.Status)
	}
}

func TestUpdateStatusStampsTimesAndQueuesApproval(t *testing.T) {
	svc := NewService(NewStore(), nil)
	task := svc.Save(Task{SupervisorID: "U02", Title: "Meeting Tim Sales"})

	task, err := svc.UpdateStatus(task.ID, StatusOngoing, "09:00", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.TimeIn != "09:00" {
		t.Fatalf("expected time in stamped, got %q", task.TimeIn)
	}
	if task.ApprovalStatus != "" {
		t.Fatalf("expected no approval status yet, got %s", task.ApprovalStatus)
	}

	task, err = svc.UpdateStatus(task.ID, StatusCompleted, "", "14:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.TimeOut != "14:00" {
		t.Fatalf("expected time out stamped, got %q", task.TimeOut)
	}
	if task.ApprovalStatus != ApprovalWaiting {
		t.Fatalf("expected completed task to wait for approval, got %s", task.ApprovalStatus)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := NewService(NewStore(), nil)
	task := svc.Save(Task{SupervisorID: "U02", Title: "Audit Stock"})

	if _, err := svc.UpdateStatus(task.ID, "DONE", "", ""); err != ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := svc.UpdateStatus("missing", StatusOpen, "", ""); err != ErrTaskNotFound {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestListForSupervisor(t *testing.T) {
	svc := NewService(NewStore(), nil)
	svc.Save(Task{SupervisorID: "U02", Title: "A"})
	svc.Save(Task{SupervisorID: "U02", Title: "B"})
	svc.Save(Task{SupervisorID: "U05", Title: "C"})

	if got := len(svc.ListForSupervisor("U02")); got != 2 {
		t.Fatalf("expected 2 tasks for U02, got %d", got)
	}
}
