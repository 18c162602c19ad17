package tasks

// Task is a supervisor's field-operations checklist item: a store visit, a
// team meeting, a follow-up call. Time in/out are free-form HH:MM stamps the
// supervisor records on site; admins review completed tasks and set the
// approval status.
type Task struct {
	ID             string `json:"id"`
	SupervisorID   string `json:"supervisorId"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	TaskDate       string `json:"taskDate"`
	DueDate        string `json:"dueDate"`
	Priority       string `json:"priority"`
	Status         string `json:"status"`
	TimeIn         string `json:"timeIn,omitempty"`
	TimeOut        string `json:"timeOut,omitempty"`
	Attachment     string `json:"attachment,omitempty"`
	ApprovalStatus string `json:"approvalStatus,omitempty"`
}
