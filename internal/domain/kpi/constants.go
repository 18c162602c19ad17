package kpi

import "salestrack/internal/domain/auth"

// DefaultConfiguration returns the stock KPI catalog the service starts
// with. Admins may replace it at runtime; the defaults match the weights the
// sales operation has used historically.
func DefaultConfiguration() Configuration {
	return Configuration{
		Supervisor: Section{
			Role:        auth.RoleSupervisor,
			Label:       "SUPERVISOR WEIGHT",
			TotalWeight: 0.40,
			Criteria: []Criterion{
				{Key: "sellOut", Label: "SELL OUT", Weight: 0.35},
				{Key: "activeOutlet", Label: "ACTIVE OUTLET", Weight: 0.30},
				{Key: "effectiveCall", Label: "EFFECTIVE CALL", Weight: 0.25},
				{Key: "itemPerTrans", Label: "ITEM PER TRANSAKSI", Weight: 0.15},
			},
		},
		Kasir: Section{
			Role:        auth.RoleKasir,
			Label:       "ADM KASIR WEIGHT",
			TotalWeight: 0.40,
			Criteria: []Criterion{
				{Key: "akurasiSetoran", Label: "AKURASI SETORAN A1", Weight: 0.35},
				{Key: "sisaFaktur", Label: "SISA FAKTUR TERTAGIH", Weight: 0.25},
				{Key: "overdue", Label: "OVERDUE", Weight: 0.25},
				{Key: "updateSetoran", Label: "UPDATE SETORAN TF", Weight: 0.15},
			},
		},
		HRD: Section{
			Role:        auth.RoleHRD,
			Label:       "HRD WEIGHT",
			TotalWeight: 0.20,
			Criteria: []Criterion{
				{Key: "absensi", Label: "ABSENSI", Weight: 0.50},
				{Key: "terlambat", Label: "TERLAMBAT", Weight: 0.25},
				{Key: "fingerScan", Label: "FINGER SCAN TIME IN/OUT", Weight: 0.25},
			},
		},
	}
}
