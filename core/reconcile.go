package core

import (
	"itg.uk/invoicegen/model"
	"itg.uk/invoicegen/utils"
)

// MergeTimesheet enriches studio jobs with aggregated timesheet hours,
// left-outer joined on project ref. Every studio job is retained; timesheet
// values override existing ones when present, and jobs with no timesheet
// match keep nil hours and empty type/category. The Artwork/CORE defaults
// are read-time behaviour (StudioJob.EffectiveType and EffectiveCoreOAB),
// not stored values.
func MergeTimesheet(jobs []model.StudioJob, hours []model.JobHours) []model.StudioJob {
	byRef := make(map[string]model.JobHours, len(hours))
	for _, h := range hours {
		byRef[h.ProjectRef] = h
	}

	merged := make([]model.StudioJob, len(jobs))
	for i, job := range jobs {
		if h, ok := byRef[job.ProjectRef]; ok {
			job.StudioHours = utils.Ptr(h.TotalHours)
			if h.Type != "" {
				job.Type = h.Type
			}
			if h.CoreOAB != "" {
				job.CoreOAB = h.CoreOAB
			}
		}
		merged[i] = job
	}
	return merged
}

// MatchSummary reports how a timesheet merge went, for the caller to surface.
type MatchSummary struct {
	Matched    int      `json:"matched"`
	Total      int      `json:"total"`
	TotalHours float64  `json:"totalHours"`
	Unmatched  []string `json:"unmatched"`
}

// SummarizeMatch describes the merge result: projects with hours, overall
// hours, and the refs still missing timesheet data.
func SummarizeMatch(jobs []model.StudioJob) MatchSummary {
	summary := MatchSummary{Total: len(jobs)}
	for _, job := range jobs {
		if job.StudioHours != nil {
			summary.Matched++
			summary.TotalHours += *job.StudioHours
		} else {
			summary.Unmatched = append(summary.Unmatched, job.ProjectRef)
		}
	}
	return summary
}
