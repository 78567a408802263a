package core

import (
	"math"
	"regexp"
	"strings"

	"itg.uk/invoicegen/model"
	"itg.uk/invoicegen/utils"
)

// Timesheet job numbers look like "1/SDG2161"; the SDG part is the project
// ref used as the join key across all tables.
var projectRefPattern = regexp.MustCompile(`1/(SDG\d+)`)

// ExtractProjectRef pulls the project ref out of a raw job number. Returns
// "" when the job number does not carry one (such rows are dropped, not
// errors).
func ExtractProjectRef(jobNumber string) string {
	m := projectRefPattern.FindStringSubmatch(jobNumber)
	if m == nil {
		return ""
	}
	return m[1]
}

// RoundUpToQuarter rounds hours up to the next multiple of 0.25. Zero stays
// zero; a sum of exactly 0 is real data, not "no data".
func RoundUpToQuarter(hours float64) float64 {
	if hours <= 0 {
		return 0.0
	}
	return math.Ceil(hours*4) / 4
}

// ClassifyType maps a charge code to a studio job type.
func ClassifyType(chargeCode string) string {
	code := strings.ToLower(chargeCode)
	switch {
	case strings.Contains(code, "creative"):
		return model.TypeCreativeArtwork
	case strings.Contains(code, "digital"), strings.Contains(code, "tec"):
		return model.TypeDigital
	default:
		return model.TypeArtwork
	}
}

// modalChargeCode returns the most frequent charge code among the entries.
// Ties break to the lexicographically smallest code so the result is
// deterministic regardless of map iteration order.
func modalChargeCode(entries []model.TimeEntry) string {
	counts := make(map[string]int)
	for _, e := range entries {
		counts[e.ChargeCode]++
	}
	best := ""
	bestCount := 0
	for code, n := range counts {
		if n > bestCount || (n == bestCount && code < best) {
			best = code
			bestCount = n
		}
	}
	return best
}

// AggregateTimesheet turns raw time entries into one JobHours record per
// project ref:
//   - rows without a recognisable project ref are dropped
//   - QC charge codes are non-chargeable and excluded
//   - hours are summed per project and rounded up to the next 0.25
//   - type comes from the modal charge code, Core/OAB from an ROI marker in
//     the first job description seen
func AggregateTimesheet(entries []model.TimeEntry) []model.JobHours {
	chargeable := utils.Filter(entries, func(e model.TimeEntry) bool {
		if strings.Contains(strings.ToLower(e.ChargeCode), "qc") {
			return false
		}
		return ExtractProjectRef(e.JobNumber) != ""
	})

	if len(chargeable) == 0 {
		return nil
	}

	groups := utils.GroupBy(chargeable, func(e model.TimeEntry) string {
		return ExtractProjectRef(e.JobNumber)
	})
	refs := utils.GroupKeys(chargeable, func(e model.TimeEntry) string {
		return ExtractProjectRef(e.JobNumber)
	})

	records := make([]model.JobHours, 0, len(refs))
	for _, ref := range refs {
		group := groups[ref]

		total := 0.0
		for _, e := range group {
			total += e.Hours
		}

		category := model.CategoryCore
		if strings.Contains(strings.ToLower(group[0].JobDescription), "roi") {
			category = model.CategoryOAB
		}

		records = append(records, model.JobHours{
			ProjectRef: ref,
			TotalHours: RoundUpToQuarter(total),
			Type:       ClassifyType(modalChargeCode(group)),
			CoreOAB:    category,
		})
	}
	return records
}
