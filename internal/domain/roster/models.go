package roster

// User is a login account: an admin, a supervisor, a kasir or an HRD staff
// member. Supervisors are scoped to a single principle; kasir and HRD
// accounts usually carry the ALL PRINCIPLE scope.
type User struct {
	ID           string `json:"id"`
	FullName     string `json:"fullName"`
	Role         string `json:"role"`
	Principle    string `json:"principle"`
	SupervisorID string `json:"supervisorId,omitempty"`
	JoinDate     string `json:"joinDate,omitempty"`
	Avatar       string `json:"avatar,omitempty"`
	PasswordHash string `json:"-"`
}

// SalesPerson is a member of a supervisor's field team. The supervisor link
// is by name, matching how the upstream sheet stores it.
type SalesPerson struct {
	ID             string `json:"id"`
	FullName       string `json:"fullName"`
	Principle      string `json:"principle"`
	SupervisorName string `json:"supervisorName"`
	JoinDate       string `json:"joinDate"`
	Avatar         string `json:"avatar"`
}
