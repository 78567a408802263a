package model

// StudioJob is the per-project aggregate of production line items, enriched
// progressively: first by the timesheet reconciliation, then by manual edits.
// StudioHours stays nil until either source provides a value; Type and
// CoreOAB stay empty. Display/cost defaults are applied through the
// Effective* accessors, never written back into the record.
type StudioJob struct {
	ProjectRef         string   `json:"projectRef"`
	EventName          string   `json:"eventName"`
	ProjectDescription string   `json:"projectDescription"`
	ProjectOwner       string   `json:"projectOwner"`
	Lines              int      `json:"lines"`
	StudioHours        *float64 `json:"studioHours"`
	Type               string   `json:"type"`
	CoreOAB            string   `json:"coreOab"`
	StudioComment      string   `json:"studioComment"`
}

// EffectiveType returns the job type, defaulting to Artwork when unset.
func (j *StudioJob) EffectiveType() string {
	if j.Type == "" {
		return TypeArtwork
	}
	return j.Type
}

// EffectiveCoreOAB returns the billing category, defaulting to CORE when unset.
func (j *StudioJob) EffectiveCoreOAB() string {
	if j.CoreOAB == "" {
		return CategoryCore
	}
	return j.CoreOAB
}

// HoursOrZero treats missing hours as zero for cost purposes.
func (j *StudioJob) HoursOrZero() float64 {
	if j.StudioHours == nil {
		return 0
	}
	return *j.StudioHours
}
