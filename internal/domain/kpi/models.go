package kpi

// ScoreData maps a criterion key to its rating. Keys are open-ended: the
// configuration is runtime-mutable and admins can add custom criteria, so
// unknown keys are stored as-is. A missing key means "not yet rated", which
// is distinct from a rating of 0.
type ScoreData map[string]float64

// Clone returns a copy safe to mutate.
func (s ScoreData) Clone() ScoreData {
	out := make(ScoreData, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Merge overlays patch on top of s. Patch keys overwrite, everything else is
// retained. The receiver is not modified.
func (s ScoreData) Merge(patch ScoreData) ScoreData {
	out := s.Clone()
	for k, v := range patch {
		out[k] = v
	}
	return out
}

type Criterion struct {
	Key    string  `json:"key"`
	Label  string  `json:"label"`
	Weight float64 `json:"weight"`
}

type Section struct {
	Role        string      `json:"role"`
	Label       string      `json:"label"`
	TotalWeight float64     `json:"totalWeight"`
	Criteria    []Criterion `json:"criteria"`
}

type Configuration struct {
	Supervisor Section `json:"supervisor"`
	Kasir      Section `json:"kasir"`
	HRD        Section `json:"hrd"`
}

// Sections returns the three sections in scoring order.
func (c Configuration) Sections() []Section {
	return []Section{c.Supervisor, c.Kasir, c.HRD}
}

// SectionForRole returns the section owned by the given rater role, or false
// for roles that do not own a section (admins rate everything).
func (c Configuration) SectionForRole(role string) (Section, bool) {
	for _, section := range c.Sections() {
		if section.Role == role {
			return section, true
		}
	}
	return Section{}, false
}

// WeightWarnings reports configuration weights that drift from the expected
// distribution. Drift is allowed: the warnings are advisory and a
// configuration with drift is still accepted and used verbatim.
func (c Configuration) WeightWarnings() []string {
	var warnings []string
	total := 0.0
	for _, section := range c.Sections() {
		total += section.TotalWeight
		sum := 0.0
		for _, criterion := range section.Criteria {
			sum += criterion.Weight
		}
		if !nearlyOne(sum) {
			warnings = append(warnings, section.Label+": criteria weights sum to "+formatWeight(sum)+", expected 1.00")
		}
	}
	if !nearlyOne(total) {
		warnings = append(warnings, "section total weights sum to "+formatWeight(total)+", expected 1.00")
	}
	return warnings
}

// Completion is a latch for a section's rated state: it moves from false to
// true and never back, even if a later patch no longer covers the section.
type Completion bool

// Or merges the latch with a freshly computed completeness value.
func (c Completion) Or(now Completion) Completion {
	return c || now
}

const (
	StatusStay    = "STAY"
	StatusLeave   = "LEAVE"
	StatusPending = "PENDING"
)

// Evaluation is the monthly multi-rater score card for one salesperson.
// FinalScore and Status are derived at save time with the configuration then
// in effect; changing the configuration later does not rewrite them.
type Evaluation struct {
	SalesID         string     `json:"salesId"`
	Year            int        `json:"year"`
	Month           int        `json:"month"`
	Scores          ScoreData  `json:"scores"`
	SupervisorRated Completion `json:"supervisorRated"`
	KasirRated      Completion `json:"kasirRated"`
	HRDRated        Completion `json:"hrdRated"`
	FinalScore      float64    `json:"finalScore"`
	Status          string     `json:"status"`
}

// FullyRated reports whether all three rater sections have been latched.
func (e Evaluation) FullyRated() bool {
	return bool(e.SupervisorRated && e.KasirRated && e.HRDRated)
}

// Key identifies an evaluation: one record per salesperson per month.
type Key struct {
	SalesID string
	Year    int
	Month   int
}

func (e Evaluation) Key() Key {
	return Key{SalesID: e.SalesID, Year: e.Year, Month: e.Month}
}
