package core

import (
	"strings"

	"itg.uk/invoicegen/model"
	"itg.uk/invoicegen/utils"
)

// StudioCommentText flags studio jobs whose lines are not all approved yet.
const StudioCommentText = "check all lines are approved, artwork hours may require updating"

const statusNotApplicable = "not applicable"
const statusCompleted = "completed"

// projectState is the three-way classification of a project's content brief
// statuses. The cases are exhaustive and mutually exclusive, which keeps the
// keep/drop/comment rules below easy to audit.
type projectState int

const (
	// stateNoStatuses: the project has line items but no status list at all
	// (degenerate; kept and flagged for comment).
	stateNoStatuses projectState = iota
	// stateAllNotApplicable: every status is "not applicable"; the project
	// is excluded from the studio table entirely.
	stateAllNotApplicable
	// stateMixed: anything else; kept, commented unless every line is
	// exactly "completed".
	stateMixed
)

func classifyProject(statuses []string) projectState {
	if len(statuses) == 0 {
		return stateNoStatuses
	}
	for _, s := range statuses {
		if s != statusNotApplicable {
			return stateMixed
		}
	}
	return stateAllNotApplicable
}

func normalizeStatus(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// AggregateStudio groups annotated production lines into one StudioJob per
// surviving project ref. A project survives unless every one of its lines is
// "not applicable"; "not applicable" lines on surviving projects are excluded
// from the line count and from field aggregation but do not exclude the
// project. Hours, type and Core/OAB start unset and are filled by the
// timesheet reconciliation or manual edits.
func AggregateStudio(items []model.LineItem) []model.StudioJob {
	refs := utils.GroupKeys(items, func(it model.LineItem) string { return it.ProjectRef })
	groups := utils.GroupBy(items, func(it model.LineItem) string { return it.ProjectRef })

	var jobs []model.StudioJob
	for _, ref := range refs {
		group := groups[ref]

		statuses := utils.Map(group, func(it model.LineItem) string {
			return normalizeStatus(it.ContentBriefStatus)
		})

		comment := ""
		switch classifyProject(statuses) {
		case stateAllNotApplicable:
			continue
		case stateNoStatuses:
			comment = StudioCommentText
		case stateMixed:
			for _, s := range statuses {
				if s != statusCompleted {
					comment = StudioCommentText
					break
				}
			}
		}

		countable := utils.Filter(group, func(it model.LineItem) bool {
			return normalizeStatus(it.ContentBriefStatus) != statusNotApplicable
		})
		// Should be unreachable given the classification above, but an
		// empty remainder must not produce a row.
		if len(countable) == 0 {
			continue
		}

		first := countable[0]
		jobs = append(jobs, model.StudioJob{
			ProjectRef:         ref,
			EventName:          first.EventName,
			ProjectDescription: first.ProjectDescription,
			ProjectOwner:       first.ProjectOwner,
			Lines:              len(countable),
			StudioHours:        nil,
			Type:               "",
			CoreOAB:            "",
			StudioComment:      comment,
		})
	}
	return jobs
}
