package model

// TimeEntry is a single raw row from a timesheet export. Read-only input to
// the timesheet aggregation.
type TimeEntry struct {
	JobNumber      string  `json:"jobNumber"`
	JobDescription string  `json:"jobDescription"`
	ChargeCode     string  `json:"chargeCode"`
	Hours          float64 `json:"hours"`
}

// Studio job types derived from charge codes.
const (
	TypeArtwork         = "Artwork"
	TypeCreativeArtwork = "Creative Artwork"
	TypeDigital         = "Digital"
)

// Billing categories.
const (
	CategoryCore = "CORE"
	CategoryOAB  = "OAB"
)

// JobHours is the aggregated chargeable time for one project, one record per
// distinct project ref. Immutable once produced.
type JobHours struct {
	ProjectRef string  `json:"projectRef"`
	TotalHours float64 `json:"totalHours"`
	Type       string  `json:"type"`
	CoreOAB    string  `json:"coreOab"`
}
