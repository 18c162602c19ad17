package tasks

const (
	PriorityHigh   = "HIGH"
	PriorityMedium = "MEDIUM"
	PriorityLow    = "LOW"

	StatusOpen      = "OPEN"
	StatusPending   = "PENDING"
	StatusOngoing   = "ONGOING"
	StatusCompleted = "COMPLETED"

	ApprovalWaiting  = "WAITING"
	ApprovalApproved = "APPROVED"
	ApprovalRejected = "REJECTED"
)

var Priorities = []string{PriorityHigh, PriorityMedium, PriorityLow}

var Statuses = []string{StatusOpen, StatusPending, StatusOngoing, StatusCompleted}
