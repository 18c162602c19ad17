package seed

import (
	"log/slog"
	"time"

	"salestrack/internal/domain/auth"
	"salestrack/internal/domain/kpi"
	"salestrack/internal/domain/roster"
	"salestrack/internal/domain/tasks"
)

// Apply loads the default dataset into empty stores: the roster, the task
// checklist, and a set of evaluations for the current month. Evaluation
// scores run through the scoring engine so FinalScore and Status always
// agree with the configuration in effect; nothing here is hand-computed.
func Apply(rosterStore *roster.Store, taskStore *tasks.Store, evalStore *kpi.Store, cfg kpi.Configuration) {
	if len(rosterStore.ListUsers()) > 0 || evalStore.Len() > 0 {
		slog.Info("seed skipped, stores already populated")
		return
	}

	for _, name := range defaultPrinciples {
		rosterStore.AddPrinciple(name)
	}
	for _, u := range defaultUsers {
		rosterStore.UpsertUser(u)
	}
	for _, sp := range defaultSales {
		rosterStore.UpsertSales(sp)
	}
	for _, task := range defaultTasks {
		taskStore.Upsert(task)
	}

	now := time.Now()
	month, year := int(now.Month()), now.Year()
	for salesID, scores := range defaultScores {
		key := kpi.Key{SalesID: salesID, Year: year, Month: month}
		evalStore.Upsert(kpi.Evaluate(nil, key, scores, cfg))
	}

	slog.Info("seed applied",
		"users", len(defaultUsers),
		"sales", len(defaultSales),
		"evaluations", len(defaultScores),
		"tasks", len(defaultTasks),
	)
}

var defaultPrinciples = []string{
	"KALBE", "UNILEVER", "KENVEU", "PERFETTI", "ALL SANCHO", "ALL PRINCIPLE",
}

var defaultUsers = []roster.User{
	{ID: "U01", FullName: "ADMIN USER", Role: auth.RoleAdmin, Principle: "ALL SANCHO"},
	{ID: "U02", FullName: "NINA AFRIDA", Role: auth.RoleSupervisor, Principle: "KALBE"},
	{ID: "U03", FullName: "ADM KASIR", Role: auth.RoleKasir, Principle: "ALL PRINCIPLE"},
	{ID: "U04", FullName: "HRD", Role: auth.RoleHRD, Principle: "ALL PRINCIPLE"},
	{ID: "U05", FullName: "SUNARIYANTO", Role: auth.RoleSupervisor, Principle: "UNILEVER"},
	{ID: "U06", FullName: "WATI", Role: auth.RoleSupervisor, Principle: "KENVEU"},
	{ID: "U07", FullName: "SHELA", Role: auth.RoleSupervisor, Principle: "PERFETTI"},
}

var defaultSales = []roster.SalesPerson{
	{ID: "S01", FullName: "ANTO", Principle: "KALBE", SupervisorName: "NINA AFRIDA", JoinDate: "2024-01-15"},
	{ID: "S02", FullName: "BUDI", Principle: "KALBE", SupervisorName: "NINA AFRIDA", JoinDate: "2024-02-20"},
	{ID: "S03", FullName: "CITRA", Principle: "KALBE", SupervisorName: "NINA AFRIDA", JoinDate: "2024-03-10"},
	{ID: "S04", FullName: "DONO", Principle: "KALBE", SupervisorName: "NINA AFRIDA", JoinDate: "2024-04-05"},
	{ID: "S05", FullName: "EKA", Principle: "KALBE", SupervisorName: "NINA AFRIDA", JoinDate: "2024-05-12"},
	{ID: "S06", FullName: "ANI", Principle: "UNILEVER", SupervisorName: "SUNARIYANTO", JoinDate: "2024-01-10"},
	{ID: "S07", FullName: "FAJAR", Principle: "UNILEVER", SupervisorName: "SUNARIYANTO", JoinDate: "2024-02-15"},
	{ID: "S08", FullName: "GITA", Principle: "UNILEVER", SupervisorName: "SUNARIYANTO", JoinDate: "2024-03-20"},
	{ID: "S09", FullName: "HADI", Principle: "UNILEVER", SupervisorName: "SUNARIYANTO", JoinDate: "2024-04-25"},
	{ID: "S10", FullName: "INDAH", Principle: "UNILEVER", SupervisorName: "SUNARIYANTO", JoinDate: "2024-05-30"},
	{ID: "S11", FullName: "ADNY", Principle: "KENVEU", SupervisorName: "WATI", JoinDate: "2024-01-05"},
	{ID: "S12", FullName: "JOKO", Principle: "KENVEU", SupervisorName: "WATI", JoinDate: "2024-02-08"},
	{ID: "S13", FullName: "KIKI", Principle: "KENVEU", SupervisorName: "WATI", JoinDate: "2024-03-15"},
	{ID: "S14", FullName: "LINA", Principle: "KENVEU", SupervisorName: "WATI", JoinDate: "2024-04-22"},
	{ID: "S15", FullName: "MIKO", Principle: "KENVEU", SupervisorName: "WATI", JoinDate: "2024-05-18"},
	{ID: "S16", FullName: "ANSYI", Principle: "PERFETTI", SupervisorName: "SHELA", JoinDate: "2024-01-25"},
	{ID: "S17", FullName: "NANDA", Principle: "PERFETTI", SupervisorName: "SHELA", JoinDate: "2024-02-28"},
	{ID: "S18", FullName: "OSCAR", Principle: "PERFETTI", SupervisorName: "SHELA", JoinDate: "2024-03-12"},
	{ID: "S19", FullName: "PUTRI", Principle: "PERFETTI", SupervisorName: "SHELA", JoinDate: "2024-04-10"},
	{ID: "S20", FullName: "QORI", Principle: "PERFETTI", SupervisorName: "SHELA", JoinDate: "2024-05-05"},
}

// Three rated salespeople per supervisor, mixing clear stays with a few
// leaves so the dashboard has something to show out of the box.
var defaultScores = map[string]kpi.ScoreData{
	"S01": {"sellOut": 90, "activeOutlet": 85, "effectiveCall": 80, "itemPerTrans": 85, "akurasiSetoran": 90, "sisaFaktur": 85, "overdue": 90, "updateSetoran": 95, "absensi": 100, "terlambat": 90, "fingerScan": 95},
	"S02": {"sellOut": 80, "activeOutlet": 80, "effectiveCall": 75, "itemPerTrans": 70, "akurasiSetoran": 85, "sisaFaktur": 80, "overdue": 75, "updateSetoran": 80, "absensi": 95, "terlambat": 85, "fingerScan": 90},
	"S03": {"sellOut": 60, "activeOutlet": 50, "effectiveCall": 55, "itemPerTrans": 60, "akurasiSetoran": 70, "sisaFaktur": 60, "overdue": 65, "updateSetoran": 70, "absensi": 80, "terlambat": 70, "fingerScan": 75},
	"S06": {"sellOut": 95, "activeOutlet": 90, "effectiveCall": 90, "itemPerTrans": 85, "akurasiSetoran": 95, "sisaFaktur": 90, "overdue": 95, "updateSetoran": 90, "absensi": 100, "terlambat": 100, "fingerScan": 100},
	"S07": {"sellOut": 50, "activeOutlet": 55, "effectiveCall": 50, "itemPerTrans": 40, "akurasiSetoran": 60, "sisaFaktur": 50, "overdue": 55, "updateSetoran": 60, "absensi": 90, "terlambat": 80, "fingerScan": 80},
	"S08": {"sellOut": 85, "activeOutlet": 85, "effectiveCall": 80, "itemPerTrans": 80, "akurasiSetoran": 80, "sisaFaktur": 85, "overdue": 80, "updateSetoran": 85, "absensi": 100, "terlambat": 95, "fingerScan": 95},
	"S11": {"sellOut": 80, "activeOutlet": 80, "effectiveCall": 80, "itemPerTrans": 80, "akurasiSetoran": 80, "sisaFaktur": 80, "overdue": 80, "updateSetoran": 80, "absensi": 80, "terlambat": 80, "fingerScan": 80},
	"S12": {"sellOut": 90, "activeOutlet": 85, "effectiveCall": 85, "itemPerTrans": 80, "akurasiSetoran": 90, "sisaFaktur": 85, "overdue": 85, "updateSetoran": 80, "absensi": 95, "terlambat": 90, "fingerScan": 90},
	"S13": {"sellOut": 78, "activeOutlet": 75, "effectiveCall": 70, "itemPerTrans": 75, "akurasiSetoran": 85, "sisaFaktur": 80, "overdue": 80, "updateSetoran": 85, "absensi": 90, "terlambat": 85, "fingerScan": 90},
	"S16": {"sellOut": 92, "activeOutlet": 90, "effectiveCall": 88, "itemPerTrans": 85, "akurasiSetoran": 90, "sisaFaktur": 90, "overdue": 90, "updateSetoran": 90, "absensi": 100, "terlambat": 100, "fingerScan": 100},
	"S17": {"sellOut": 80, "activeOutlet": 80, "effectiveCall": 80, "itemPerTrans": 80, "akurasiSetoran": 80, "sisaFaktur": 80, "overdue": 80, "updateSetoran": 80, "absensi": 80, "terlambat": 80, "fingerScan": 80},
	"S18": {"sellOut": 40, "activeOutlet": 50, "effectiveCall": 40, "itemPerTrans": 50, "akurasiSetoran": 60, "sisaFaktur": 60, "overdue": 60, "updateSetoran": 60, "absensi": 80, "terlambat": 70, "fingerScan": 70},
}

var defaultTasks = []tasks.Task{
	{ID: "T01", SupervisorID: "U02", Title: "Visit Toko Mitra 10", Description: "Survey stok dan display produk baru", TaskDate: "2025-11-23", DueDate: "2025-11-25", Priority: tasks.PriorityMedium, Status: tasks.StatusOpen},
	{ID: "T02", SupervisorID: "U02", Title: "Meeting Tim Sales", Description: "Review performance bulan November", TaskDate: "2025-11-23", DueDate: "2025-11-24", Priority: tasks.PriorityHigh, Status: tasks.StatusPending, TimeIn: "09:00"},
	{ID: "T03", SupervisorID: "U02", Title: "Follow Up Client ABC", Description: "Telepon Pak Bambang untuk order", TaskDate: "2025-11-22", DueDate: "2025-11-23", Priority: tasks.PriorityMedium, Status: tasks.StatusOngoing, TimeIn: "10:00", TimeOut: "14:00"},
	{ID: "T04", SupervisorID: "U02", Title: "Training Produk Baru", Description: "Pelatihan product knowledge untuk tim", TaskDate: "2025-11-24", DueDate: "2025-11-26", Priority: tasks.PriorityHigh, Status: tasks.StatusCompleted, ApprovalStatus: tasks.ApprovalWaiting},
	{ID: "T05", SupervisorID: "U05", Title: "Audit Stock Unilever", Description: "Check inventory produk Unilever di gudang", TaskDate: "2025-11-23", DueDate: "2025-11-24", Priority: tasks.PriorityHigh, Status: tasks.StatusOngoing, TimeIn: "08:00"},
	{ID: "T06", SupervisorID: "U05", Title: "Presentasi ke Alfamart", Description: "Tawarkan produk baru ke buyer Alfamart", TaskDate: "2025-11-22", DueDate: "2025-11-23", Priority: tasks.PriorityHigh, Status: tasks.StatusCompleted, TimeIn: "10:00", TimeOut: "15:00", ApprovalStatus: tasks.ApprovalWaiting},
	{ID: "T07", SupervisorID: "U06", Title: "Visit Distributor Utama", Description: "Follow up payment dan order baru", TaskDate: "2025-11-23", DueDate: "2025-11-24", Priority: tasks.PriorityHigh, Status: tasks.StatusOngoing, TimeIn: "09:00"},
	{ID: "T08", SupervisorID: "U06", Title: "Laporan Mingguan", Description: "Submit weekly sales report ke management", TaskDate: "2025-11-22", DueDate: "2025-11-22", Priority: tasks.PriorityHigh, Status: tasks.StatusCompleted, TimeIn: "14:00", TimeOut: "16:00", ApprovalStatus: tasks.ApprovalWaiting},
	{ID: "T09", SupervisorID: "U07", Title: "Roadshow Produk Baru", Description: "Event launching produk Perfetti di mall", TaskDate: "2025-11-23", DueDate: "2025-11-24", Priority: tasks.PriorityHigh, Status: tasks.StatusOngoing, TimeIn: "10:00"},
	{ID: "T10", SupervisorID: "U07", Title: "Review Target Bulanan", Description: "Evaluasi pencapaian sales vs target November", TaskDate: "2025-11-24", DueDate: "2025-11-25", Priority: tasks.PriorityMedium, Status: tasks.StatusPending},
}
