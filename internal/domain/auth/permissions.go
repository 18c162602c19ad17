package auth

const (
	RoleAdmin      = "ADMIN"
	RoleSupervisor = "SUPERVISOR"
	RoleKasir      = "KASIR"
	RoleHRD        = "HRD"
)

const (
	PermKPIRead        = "kpi.read"
	PermKPIRate        = "kpi.rate"
	PermKPIConfigRead  = "kpi.config.read"
	PermKPIConfigWrite = "kpi.config.write"
	PermRosterRead     = "roster.read"
	PermRosterWrite    = "roster.write"
	PermTasksRead      = "tasks.read"
	PermTasksWrite     = "tasks.write"
	PermTasksApprove   = "tasks.approve"
	PermReportsRead    = "reports.read"
	PermAdminMetrics   = "admin.metrics"
)

var Roles = []string{RoleAdmin, RoleSupervisor, RoleKasir, RoleHRD}

// RolePermissions is the static permission grid. Raters can read the roster
// and reports for their own scope; only admins touch configuration and user
// management.
var RolePermissions = map[string][]string{
	RoleAdmin: {
		PermKPIRead,
		PermKPIRate,
		PermKPIConfigRead,
		PermKPIConfigWrite,
		PermRosterRead,
		PermRosterWrite,
		PermTasksRead,
		PermTasksWrite,
		PermTasksApprove,
		PermReportsRead,
		PermAdminMetrics,
	},
	RoleSupervisor: {
		PermKPIRead,
		PermKPIRate,
		PermKPIConfigRead,
		PermRosterRead,
		PermTasksRead,
		PermTasksWrite,
		PermReportsRead,
	},
	RoleKasir: {
		PermKPIRead,
		PermKPIRate,
		PermKPIConfigRead,
		PermRosterRead,
		PermReportsRead,
	},
	RoleHRD: {
		PermKPIRead,
		PermKPIRate,
		PermKPIConfigRead,
		PermRosterRead,
		PermTasksRead,
		PermTasksApprove,
		PermReportsRead,
	},
}

// HasPermission checks the static grid.
func HasPermission(role, permission string) bool {
	for _, granted := range RolePermissions[role] {
		if granted == permission {
			return true
		}
	}
	return false
}

// ValidRole reports whether role is one of the four login roles.
func ValidRole(role string) bool {
	for _, candidate := range Roles {
		if candidate == role {
			return true
		}
	}
	return false
}
